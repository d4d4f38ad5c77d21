// internal/slug/slug.go
package slug

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/creatorbasehq/creatorbase/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxAttempts bounds the uniqueness-resolution loop.
const DefaultMaxAttempts = 5

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make normalizes text into a URL-safe slug: accents are decomposed and
// dropped, anything outside [A-Za-z0-9 _-] is removed, and runs of
// separators collapse to a single hyphen. Empty input yields an empty slug.
func Make(text string) string {
	out, _, err := transform.String(stripAccents, text)
	if err != nil {
		// Removal transforms cannot fail on valid UTF-8; fall back to the
		// raw input for anything else.
		out = text
	}

	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteRune(' ')
		}
	}

	return strings.ToLower(strings.Join(strings.Fields(b.String()), "-"))
}

// ExistsFunc reports whether a candidate slug is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// ResolveUnique finds an unused slug starting from base, appending -2, -3,
// ... for up to maxAttempts total attempts. The existence check is advisory;
// callers must still treat a unique violation at insert time as a signal to
// re-enter this loop.
func ResolveUnique(ctx context.Context, base string, exists ExistsFunc, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for i := 1; i <= maxAttempts; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", domain.Conflict("no available slug for %q after %d attempts", base, maxAttempts)
}
