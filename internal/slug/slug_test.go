package slug_test

import (
	"context"
	"errors"
	"testing"

	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Growth Team", "growth-team"},
		{"accents and punctuation", "Café & Cía!!", "cafe-cia"},
		{"underscores and hyphens collapse", "a_b--c  d", "a-b-c-d"},
		{"leading and trailing separators", "  --hello--  ", "hello"},
		{"digits survive", "Studio 54", "studio-54"},
		{"only punctuation", "!!!???", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Make(tc.in))
		})
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	inputs := []string{"Café & Cía!!", "Growth Team", "estúdio_de_gravação"}
	for _, in := range inputs {
		once := slug.Make(in)
		assert.Equal(t, once, slug.Make(once), "slugging a slug must be a no-op for %q", in)
	}
}

func TestResolveUnique(t *testing.T) {
	ctx := context.Background()

	t.Run("base is free", func(t *testing.T) {
		exists := func(ctx context.Context, candidate string) (bool, error) {
			return false, nil
		}
		got, err := slug.ResolveUnique(ctx, "acme", exists, slug.DefaultMaxAttempts)
		require.NoError(t, err)
		assert.Equal(t, "acme", got)
	})

	t.Run("suffix counts total attempts", func(t *testing.T) {
		taken := map[string]bool{"acme": true, "acme-2": true}
		var tried []string
		exists := func(ctx context.Context, candidate string) (bool, error) {
			tried = append(tried, candidate)
			return taken[candidate], nil
		}
		got, err := slug.ResolveUnique(ctx, "acme", exists, slug.DefaultMaxAttempts)
		require.NoError(t, err)
		assert.Equal(t, "acme-3", got)
		assert.Equal(t, []string{"acme", "acme-2", "acme-3"}, tried)
	})

	t.Run("exhaustion is a conflict", func(t *testing.T) {
		calls := 0
		exists := func(ctx context.Context, candidate string) (bool, error) {
			calls++
			return true, nil
		}
		_, err := slug.ResolveUnique(ctx, "acme", exists, 3)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindConflict))
		assert.Equal(t, 3, calls)
	})

	t.Run("check error propagates", func(t *testing.T) {
		boom := errors.New("connection reset")
		exists := func(ctx context.Context, candidate string) (bool, error) {
			return false, boom
		}
		_, err := slug.ResolveUnique(ctx, "acme", exists, slug.DefaultMaxAttempts)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("non-positive max falls back to default", func(t *testing.T) {
		calls := 0
		exists := func(ctx context.Context, candidate string) (bool, error) {
			calls++
			return true, nil
		}
		_, err := slug.ResolveUnique(ctx, "acme", exists, 0)
		require.Error(t, err)
		assert.Equal(t, slug.DefaultMaxAttempts, calls)
	})
}
