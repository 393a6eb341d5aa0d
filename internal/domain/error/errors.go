package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 40xx - Validation errors
	CodeInvalidAmount       = 4001
	CodeInvalidUserID       = 4002
	CodeInvalidSymbol       = 4003
	CodeInvalidAssetName    = 4004
	CodeInvalidRate         = 4005
	CodeInvalidSupply       = 4006
	CodeEmptyUpdate         = 4007
	CodeInvalidRequestKind  = 4008
	CodeInvalidDecision     = 4009
	CodeAmountBelowMinimum  = 4010
	CodeAmountAboveMaximum  = 4011
	CodeInvalidPercentage   = 4012
	CodeInvalidProfile      = 4013
	CodeInvalidRequest      = 4014
	CodeConstraintViolation = 4015

	// 41xx - Precondition failures
	CodeInsufficientBalance = 4101
	CodeInsufficientSupply  = 4102
	CodeNoHolding           = 4103
	CodeInsufficientHolding = 4104

	// Authorization, lookup and conflict errors
	CodeForbidden          = 4030
	CodeUserNotFound       = 4040
	CodeAssetNotFound      = 4041
	CodeRequestNotFound    = 4042
	CodeAlreadyProcessed   = 4090
	CodeDuplicateUser      = 4091
	CodeDuplicateAsset     = 4092
	CodeDuplicateReference = 4093

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeStorage            = 5001
	CodeDatabaseConnection = 5030
)

// Validation errors
var (
	// ErrInvalidAmount is returned when an amount is malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidSymbol is returned when an asset symbol is not three uppercase letters followed by one lowercase letter
	ErrInvalidSymbol = errors.New("invalid asset symbol")

	// ErrInvalidAssetName is returned when an asset name is too short
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidRate is returned when an asset rate is not positive
	ErrInvalidRate = errors.New("rate must be positive")

	// ErrInvalidSupply is returned when supply values violate 0 <= available <= total, total > 0
	ErrInvalidSupply = errors.New("invalid supply")

	// ErrEmptyUpdate is returned when an asset update carries no fields
	ErrEmptyUpdate = errors.New("update carries no changes")

	ErrInvalidRequestKind = errors.New("invalid request kind")
	ErrInvalidDecision    = errors.New("invalid decision")

	// ErrAmountBelowMinimum is returned when a deposit or withdraw request is under the minimum amount
	ErrAmountBelowMinimum = errors.New("amount is below the minimum")

	// ErrAmountAboveMaximum is returned when a deposit or withdraw request is over the maximum amount
	ErrAmountAboveMaximum = errors.New("amount is above the maximum")

	ErrInvalidPercentage = errors.New("invalid percentage")

	// ErrInvalidProfile is returned when registration data is malformed
	ErrInvalidProfile = errors.New("invalid user profile")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")
)

// Precondition failures
var (
	// ErrInsufficientBalance is returned when a user has insufficient funds for an operation
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientSupply is returned when an asset's available supply cannot cover a purchase
	ErrInsufficientSupply = errors.New("insufficient supply")

	// ErrNoHolding is returned when a user sells an asset they do not hold
	ErrNoHolding = errors.New("no holding for asset")

	// ErrInsufficientHolding is returned when a user sells more than they hold
	ErrInsufficientHolding = errors.New("insufficient holding")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAssetNotFound is returned when the requested asset doesn't exist
	ErrAssetNotFound = errors.New("asset not found")

	// ErrRequestNotFound is returned when the requested deposit/withdraw request doesn't exist
	ErrRequestNotFound = errors.New("request not found")

	// ErrDuplicateUser is returned when trying to register a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateAsset is returned when an asset name or symbol is already taken
	ErrDuplicateAsset = errors.New("asset already exists")

	// ErrForbidden is returned when a caller lacks the privilege for an operation
	ErrForbidden = errors.New("operation requires privileged user")
)

// Concurrency conflicts
var (
	// ErrAlreadyProcessed is returned when a request left the pending state before this resolution
	ErrAlreadyProcessed = errors.New("request already processed")
)

// Storage errors
var (
	// ErrStorage is returned when a unit of work fails in the storage layer; callers may retry later
	ErrStorage = errors.New("storage error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDuplicateCorrelationCode is returned when no unique correlation code could be generated
	ErrDuplicateCorrelationCode = errors.New("could not allocate unique correlation code")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidSymbol):
		return CodeInvalidSymbol
	case errors.Is(err, ErrInvalidAssetName):
		return CodeInvalidAssetName
	case errors.Is(err, ErrInvalidRate):
		return CodeInvalidRate
	case errors.Is(err, ErrInvalidSupply):
		return CodeInvalidSupply
	case errors.Is(err, ErrEmptyUpdate):
		return CodeEmptyUpdate
	case errors.Is(err, ErrInvalidRequestKind):
		return CodeInvalidRequestKind
	case errors.Is(err, ErrInvalidDecision):
		return CodeInvalidDecision
	case errors.Is(err, ErrAmountBelowMinimum):
		return CodeAmountBelowMinimum
	case errors.Is(err, ErrAmountAboveMaximum):
		return CodeAmountAboveMaximum
	case errors.Is(err, ErrInvalidPercentage):
		return CodeInvalidPercentage
	case errors.Is(err, ErrInvalidProfile):
		return CodeInvalidProfile
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInsufficientSupply):
		return CodeInsufficientSupply
	case errors.Is(err, ErrNoHolding):
		return CodeNoHolding
	case errors.Is(err, ErrInsufficientHolding):
		return CodeInsufficientHolding
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrAssetNotFound):
		return CodeAssetNotFound
	case errors.Is(err, ErrRequestNotFound):
		return CodeRequestNotFound
	case errors.Is(err, ErrAlreadyProcessed):
		return CodeAlreadyProcessed
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrDuplicateAsset):
		return CodeDuplicateAsset
	case errors.Is(err, ErrDuplicateCorrelationCode):
		return CodeDuplicateReference
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrStorage):
		return CodeStorage
	default:
		return CodeInternalServer
	}
}

// TradeError carries the context of a failed buy or sell
type TradeError struct {
	Operation string
	UserID    uint64
	AssetID   uint64
	Amount    string
	// Available is the balance, supply or holding that failed to cover Amount, when known
	Available string
	Err       error
}

// Error implements the error interface for TradeError
func (e *TradeError) Error() string {
	if e.Available != "" {
		return fmt.Sprintf("%s failed for user %d, asset %d (amount: %s, available: %s): %v",
			e.Operation, e.UserID, e.AssetID, e.Amount, e.Available, e.Err)
	}
	return fmt.Sprintf("%s failed for user %d, asset %d (amount: %s): %v",
		e.Operation, e.UserID, e.AssetID, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *TradeError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TradeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "trade_error",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"asset_id":   e.AssetID,
		"amount":     e.Amount,
		"available":  e.Available,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTradeError creates a detailed trade error
func NewTradeError(operation string, userID, assetID uint64, amount, available string, err error) error {
	return &TradeError{
		Operation: operation,
		UserID:    userID,
		AssetID:   assetID,
		Amount:    amount,
		Available: available,
		Err:       err,
	}
}

// RequestError represents an error related to a deposit or withdraw request
type RequestError struct {
	RequestID uint64
	UniqueID  string
	UserID    uint64
	Status    string
	Reason    string
	Err       error
}

// Error implements the error interface for RequestError
func (e *RequestError) Error() string {
	return fmt.Sprintf("request %d (#%s, user: %d, status: %s): %s - %v",
		e.RequestID, e.UniqueID, e.UserID, e.Status, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *RequestError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RequestError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "request_error",
		"request_id": e.RequestID,
		"unique_id":  e.UniqueID,
		"user_id":    e.UserID,
		"status":     e.Status,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewRequestError creates a detailed request error
func NewRequestError(requestID uint64, uniqueID string, userID uint64, status, reason string, err error) error {
	return &RequestError{
		RequestID: requestID,
		UniqueID:  uniqueID,
		UserID:    userID,
		Status:    status,
		Reason:    reason,
		Err:       err,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// IsValidationError reports whether err was rejected before any state was read
func IsValidationError(err error) bool {
	code := ErrorCode(err)
	return code >= CodeInvalidAmount && code <= CodeConstraintViolation
}

// IsPreconditionError reports whether err is a business precondition failure
func IsPreconditionError(err error) bool {
	code := ErrorCode(err)
	return (code >= 4100 && code < 4200) || IsNotFoundError(err)
}

// IsAlreadyProcessedError checks if the error reports a lost resolution race
func IsAlreadyProcessedError(err error) bool {
	return errors.Is(err, ErrAlreadyProcessed)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsStorageError checks if the error originated in the storage layer
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage) || errors.Is(err, ErrDatabaseConnection)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrAssetNotFound) ||
		errors.Is(err, ErrRequestNotFound)
}

// IsConflictError checks if the error is a uniqueness or state conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrAlreadyProcessed) ||
		errors.Is(err, ErrDuplicateUser) ||
		errors.Is(err, ErrDuplicateAsset)
}
