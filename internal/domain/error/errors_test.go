package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientBalance.Error() != "insufficient balance" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
	if ErrAlreadyProcessed.Error() != "request already processed" {
		t.Errorf("ErrAlreadyProcessed has unexpected message: %s", ErrAlreadyProcessed.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"InvalidSymbol", ErrInvalidSymbol, 4003},
		{"BelowMinimum", ErrAmountBelowMinimum, 4010},
		{"InsufficientBalance", ErrInsufficientBalance, 4101},
		{"InsufficientSupply", ErrInsufficientSupply, 4102},
		{"NoHolding", ErrNoHolding, 4103},
		{"InsufficientHolding", ErrInsufficientHolding, 4104},
		{"Forbidden", ErrForbidden, 4030},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"AssetNotFound", ErrAssetNotFound, 4041},
		{"RequestNotFound", ErrRequestNotFound, 4042},
		{"AlreadyProcessed", ErrAlreadyProcessed, 4090},
		{"DuplicateAsset", ErrDuplicateAsset, 4092},
		{"Storage", ErrStorage, 5001},
		{"DatabaseConnection", ErrDatabaseConnection, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4002},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestTradeError(t *testing.T) {
	tradeErr := NewTradeError("buy", 7, 3, "4", "2", ErrInsufficientSupply)

	expected := "buy failed for user 7, asset 3 (amount: 4, available: 2): insufficient supply"
	if tradeErr.Error() != expected {
		t.Errorf("TradeError.Error() = %s, want %s", tradeErr.Error(), expected)
	}
	if !errors.Is(tradeErr, ErrInsufficientSupply) {
		t.Errorf("errors.Is(tradeErr, ErrInsufficientSupply) = false, want true")
	}

	var te *TradeError
	if !errors.As(tradeErr, &te) {
		t.Fatalf("errors.As(tradeErr, *TradeError) = false, want true")
	}
	fields := te.LogFields()
	if fields["error_code"] != CodeInsufficientSupply {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeInsufficientSupply)
	}

	noAvailable := NewTradeError("sell", 7, 3, "1", "", ErrNoHolding)
	if noAvailable.Error() != "sell failed for user 7, asset 3 (amount: 1): no holding for asset" {
		t.Errorf("unexpected message: %s", noAvailable.Error())
	}
}

func TestRequestError(t *testing.T) {
	reqErr := NewRequestError(12, "1700000000000123", 5, "completed", "status changed before resolution", ErrAlreadyProcessed)

	if !IsAlreadyProcessedError(reqErr) {
		t.Errorf("IsAlreadyProcessedError(reqErr) = false, want true")
	}
	if ErrorCode(reqErr) != CodeAlreadyProcessed {
		t.Errorf("ErrorCode(reqErr) = %d, want %d", ErrorCode(reqErr), CodeAlreadyProcessed)
	}

	var re *RequestError
	if !errors.As(reqErr, &re) {
		t.Fatalf("errors.As(reqErr, *RequestError) = false, want true")
	}
	if re.LogFields()["status"] != "completed" {
		t.Errorf("LogFields status = %v, want completed", re.LogFields()["status"])
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(1, "500", "200")

	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("errors.Is(err, ErrInsufficientBalance) = false, want true")
	}
	if err.Error() != "insufficient balance for user 1: required 500, available 200" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestErrorClasses(t *testing.T) {
	if !IsValidationError(ErrInvalidSymbol) {
		t.Errorf("ErrInvalidSymbol should be a validation error")
	}
	if IsValidationError(ErrInsufficientSupply) {
		t.Errorf("ErrInsufficientSupply should not be a validation error")
	}
	if IsValidationError(ErrForbidden) || IsValidationError(ErrAlreadyProcessed) || IsValidationError(ErrUserNotFound) {
		t.Errorf("authorization, conflict and not-found errors should not be validation errors")
	}
	if !IsPreconditionError(ErrInsufficientHolding) {
		t.Errorf("ErrInsufficientHolding should be a precondition error")
	}
	if !IsPreconditionError(fmt.Errorf("lookup: %w", ErrAssetNotFound)) {
		t.Errorf("wrapped ErrAssetNotFound should be a precondition error")
	}
	if !IsStorageError(fmt.Errorf("%w: commit failed", ErrStorage)) {
		t.Errorf("wrapped ErrStorage should be a storage error")
	}
	if !IsConflictError(ErrDuplicateAsset) {
		t.Errorf("ErrDuplicateAsset should be a conflict error")
	}
	if !IsNotFoundError(ErrRequestNotFound) {
		t.Errorf("ErrRequestNotFound should be a not-found error")
	}
}
