package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// Create opens a pending deposit or withdraw request.
//
// A withdraw must be covered by the balance at creation time; Resolve checks
// it again when the request is approved. The correlation code is unique in
// storage, so a collision is retried with a fresh code.
func (s *Service) Create(
	ctx context.Context,
	userID uint64,
	kind entity.TransactionKind,
	amount string,
) (*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !kind.IsRequest() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidRequestKind, kind)
	}

	value, err := s.validateAmount(amount)
	if err != nil {
		return nil, err
	}

	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if kind == entity.KindWithdraw && !user.CanAfford(value) {
		return nil, errs.NewInsufficientBalanceError(userID, value.String(), user.Balance.String())
	}

	txnRepo := s.uow.GetTransactionRepository(ctx)

	var txn *entity.Transaction
	for attempt := 1; attempt <= s.config.CorrelationRetries; attempt++ {
		txn, err = entity.NewRequest(userID, kind, value, s.codes.Generate(), s.timeProvider)
		if err != nil {
			return nil, err
		}

		err = txnRepo.Create(ctx, txn)
		if err == nil {
			break
		}
		if !errors.Is(err, errs.ErrDuplicateCorrelationCode) {
			s.logger.Error("Failed to store request", map[string]any{
				"user_id": userID,
				"kind":    string(kind),
				"error":   err.Error(),
			})
			return nil, err
		}

		s.logger.Warn("Correlation code collision, retrying", map[string]any{
			"user_id":   userID,
			"unique_id": txn.UniqueID,
			"attempt":   attempt,
		})
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Request created", map[string]any{
		"request_id": txn.ID,
		"unique_id":  txn.UniqueID,
		"user_id":    userID,
		"kind":       string(kind),
		"amount":     value.String(),
	})

	s.publish(ctx, coreport.EventRequestCreated, userID, map[string]any{
		"request_id":        txn.ID,
		"unique_id":         txn.UniqueID,
		"payment_reference": txn.PaymentReference(),
		"kind":              string(kind),
		"amount":            entity.FormatMoney(value),
	})

	return txn, nil
}

// validateAmount parses amount and checks it against the configured limits
func (s *Service) validateAmount(amount string) (decimal.Decimal, error) {
	value, err := entity.ParseAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}

	if value.LessThan(s.config.MinAmount) {
		return decimal.Zero, fmt.Errorf("%w: minimum is %s", errs.ErrAmountBelowMinimum, s.config.MinAmount.String())
	}
	if s.config.MaxAmount.IsPositive() && value.GreaterThan(s.config.MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: maximum is %s", errs.ErrAmountAboveMaximum, s.config.MaxAmount.String())
	}

	return value, nil
}
