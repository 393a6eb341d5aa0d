package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes deposit/withdraw requests from audit entries
type TransactionKind string

// Transaction kinds
const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdraw   TransactionKind = "withdraw"
	KindSellCrypto TransactionKind = "sell_crypto"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusRejected  TransactionStatus = "rejected"
	StatusCancelled TransactionStatus = "cancelled"
)

// Decision is an admin's verdict on a pending request
type Decision string

// Decisions
const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// ResolveOutcome reports how a resolution ended
type ResolveOutcome string

// Resolve outcomes
const (
	OutcomeApproved     ResolveOutcome = "approved"
	OutcomeRejected     ResolveOutcome = "rejected"
	OutcomeAutoRejected ResolveOutcome = "auto_rejected"
)

// PaymentReferenceLength is how many trailing characters of the correlation code users quote
const PaymentReferenceLength = 6

// Transaction is a row of the ledger's transactions table: either a
// deposit/withdraw request moving through the approval workflow, or a
// completed audit entry written by the trading engine.
type Transaction struct {
	ID          uint64
	UniqueID    string // Correlation code shown to users
	UserID      uint64
	Kind        TransactionKind
	Amount      decimal.Decimal
	Status      TransactionStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
	ProcessedBy *uint64 // Admin who resolved the request
}

// RequestView is a pending or historical transaction joined with its owner's identity
type RequestView struct {
	Transaction
	FirstName string
	LastName  string
	Email     string
}

// NewRequest creates a pending deposit or withdraw request
func NewRequest(userID uint64, kind TransactionKind, amount decimal.Decimal, uniqueID string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !kind.IsRequest() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidRequestKind, kind)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}

	return &Transaction{
		UniqueID:  uniqueID,
		UserID:    userID,
		Kind:      kind,
		Amount:    amount,
		Status:    StatusPending,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// NewSellRecord creates the completed audit entry of a sale; amount is the proceeds
func NewSellRecord(userID uint64, proceeds decimal.Decimal, uniqueID string, timeProvider coreport.TimeProvider) *Transaction {
	now := timeProvider.Now()
	return &Transaction{
		UniqueID:    uniqueID,
		UserID:      userID,
		Kind:        KindSellCrypto,
		Amount:      proceeds,
		Status:      StatusCompleted,
		CreatedAt:   now,
		ProcessedAt: &now,
	}
}

// ParseTransactionKind accepts "deposit" or "withdraw" in any case
func ParseTransactionKind(kind string) (TransactionKind, error) {
	k := TransactionKind(strings.ToLower(strings.TrimSpace(kind)))
	if !k.IsRequest() {
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidRequestKind, kind)
	}
	return k, nil
}

// ParseDecision accepts "approve" or "reject" in any case
func ParseDecision(decision string) (Decision, error) {
	d := Decision(strings.ToLower(strings.TrimSpace(decision)))
	if d != DecisionApprove && d != DecisionReject {
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidDecision, decision)
	}
	return d, nil
}

// IsRequest reports whether the kind goes through the approval workflow
func (k TransactionKind) IsRequest() bool {
	return k == KindDeposit || k == KindWithdraw
}

// IsTerminal reports whether no further transition is allowed
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected || s == StatusCancelled
}

// IsPending returns true while the request awaits an admin decision
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// PaymentReference is the tail of the correlation code users put in the payment comment
func (t *Transaction) PaymentReference() string {
	if len(t.UniqueID) <= PaymentReferenceLength {
		return t.UniqueID
	}
	return t.UniqueID[len(t.UniqueID)-PaymentReferenceLength:]
}

// BalanceDelta returns the signed balance change approving this request applies
func (t *Transaction) BalanceDelta() decimal.Decimal {
	if t.Kind == KindWithdraw {
		return t.Amount.Neg()
	}
	return t.Amount
}

// ResolveResult is the outcome of an admin resolution
type ResolveResult struct {
	Request      *Transaction
	Outcome      ResolveOutcome
	Reason       string
	BalanceAfter decimal.Decimal
}
