package graphql

import (
	"context"
	"errors"

	"github.com/merqado/storefront/pkg/apperrors"
	"github.com/merqado/storefront/pkg/logger"
)

// fieldError carries the taxonomy code into the GraphQL error extensions so
// clients can tell authentication, authorization, not-found and server
// failures apart.
type fieldError struct {
	err error
}

func (e fieldError) Error() string {
	return e.err.Error()
}

func (e fieldError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": apperrors.Code(e.err)}
}

// resolverError classifies an error for the response. Server errors are
// logged with their cause here and leave only a generic message behind.
func resolverError(ctx context.Context, err error) error {
	var serverErr *apperrors.ServerError
	if errors.As(err, &serverErr) {
		logger.Error(ctx).Err(errors.Unwrap(serverErr)).Msg("resolver failed")
	}
	return fieldError{err: err}
}
