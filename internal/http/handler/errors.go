package handler

import (
	"errors"
	"net/http"

	"coinledger/internal/daemon"
	"coinledger/internal/ledger"
)

// failure maps an error to the HTTP status and the detail shown to callers.
// Unexpected errors are never echoed back.
func failure(err error) (int, string, string) {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		return http.StatusBadRequest, err.Error(), ""
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound, err.Error(), ""
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusConflict, err.Error(), ledger.InsufficientFundsCode
	case errors.Is(err, ledger.ErrDuplicate):
		return http.StatusConflict, err.Error(), ""
	}

	var derr *daemon.Error
	if errors.As(err, &derr) {
		switch derr.Kind {
		case daemon.KindObjectNotFound:
			return http.StatusNotFound, derr.Message, string(derr.Kind)
		case daemon.KindBadAddress, daemon.KindWrongAmount, daemon.KindInvalidRequest:
			return http.StatusBadRequest, derr.Message, string(derr.Kind)
		case daemon.KindInsufficientFunds:
			return http.StatusConflict, derr.Message, ledger.InsufficientFundsCode
		case daemon.KindFeeTooSmall, daemon.KindConflict:
			return http.StatusConflict, derr.Message, string(derr.Kind)
		default:
			return http.StatusBadGateway, "wallet daemon unavailable", string(derr.Kind)
		}
	}

	return http.StatusInternalServerError, "unexpected error occurred", ""
}
