// internal/service/service.go
package service

import (
	"errors"
	"strings"

	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/go-playground/validator/v10"
)

// invalidInput converts a validator error into a BadRequest carrying a
// field→message map, so handlers can return the structured 400 body the web
// client expects.
func invalidInput(err error) *domain.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.BadRequest("invalid input").WithCause(err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return domain.BadRequest("validation failed").WithFields(fields)
}

// asDomain passes domain errors through untouched and wraps anything else
// as internal, so raw store errors never escape a service.
func asDomain(err error) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	return domain.Internal(err)
}
