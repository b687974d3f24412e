package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/SchwenderOne/roscher4gpt5/internal/auth"
	"github.com/SchwenderOne/roscher4gpt5/internal/calculator"
	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/quickadd"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage"
)

var invalidArgument = []error{
	models.ErrInvalidDate,
	models.ErrInvalidFrequency,
	models.ErrInvalidKind,
	models.ErrEmptyName,
	models.ErrMissingDate,
	models.ErrInvalidAmount,
	models.ErrInvalidShare,
	models.ErrInvalidStatus,
	models.ErrMissingPayer,
	models.ErrInvalidQuantity,
	models.ErrInvalidItemStatus,
	calculator.ErrInvalidSplit,
	quickadd.ErrNoMatch,
	auth.ErrWeakPassword,
	auth.ErrMissingFields,
}

// connectError maps domain errors onto Connect codes. Unknown errors become
// Internal.
func connectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrSettlementEdit):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	}
	for _, target := range invalidArgument {
		if errors.Is(err, target) {
			return connect.NewError(connect.CodeInvalidArgument, err)
		}
	}
	return connect.NewError(connect.CodeInternal, err)
}

func invalidArg(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}
