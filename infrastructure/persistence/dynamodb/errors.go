package dynamodb

import (
	"context"
	"errors"

	apperrors "github.com/evanhearne/ds-serverlessREST-lab/pkg/errors"

	"github.com/aws/smithy-go"
)

// storeError converts an SDK failure into an AppError, keeping the
// service error code when the response carried one.
func storeError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(operation).WithCause(err)
	}

	appErr := apperrors.NewDatabaseError(operation, err)

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		appErr = appErr.WithCode(apiErr.ErrorCode())
	}

	return appErr
}
