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

const (
	reasonInsufficientBalance = "insufficient balance"
	statusUnknown             = "unknown"
)

// Resolve applies an admin decision to a pending request exactly once.
//
// The transition out of pending is a compare-and-swap on the status column;
// when it matches no row another resolution committed first and the call
// fails with ErrAlreadyProcessed without touching the balance.
func (s *Service) Resolve(
	ctx context.Context,
	actorID, requestID uint64,
	decision entity.Decision,
) (*entity.ResolveResult, error) {
	if !s.authorizer.IsPrivileged(ctx, actorID) {
		s.logger.Warn("Unprivileged resolve attempt", map[string]any{
			"actor_id":   actorID,
			"request_id": requestID,
		})
		return nil, errs.ErrForbidden
	}
	if decision != entity.DecisionApprove && decision != entity.DecisionReject {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidDecision, decision)
	}

	var result *entity.ResolveResult
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		txnRepo := s.uow.GetTransactionRepository(txCtx)
		userRepo := s.uow.GetUserRepository(txCtx)

		txn, err := txnRepo.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if !txn.IsPending() {
			return errs.NewRequestError(txn.ID, txn.UniqueID, txn.UserID, string(txn.Status),
				"request is no longer pending", errs.ErrAlreadyProcessed)
		}

		user, err := userRepo.GetByIDForUpdate(txCtx, txn.UserID)
		if err != nil {
			return err
		}

		target, outcome, reason, delta := s.decide(txn, user, decision)

		now := s.timeProvider.Now()
		processedBy := actorID
		swapped, err := txnRepo.TransitionStatus(txCtx, txn.ID, entity.StatusPending, target, now, &processedBy)
		if err != nil {
			return err
		}
		if !swapped {
			return errs.NewRequestError(txn.ID, txn.UniqueID, txn.UserID, s.currentStatus(txCtx, txn.ID),
				"status changed before resolution", errs.ErrAlreadyProcessed)
		}

		if !delta.IsZero() {
			if err := userRepo.AdjustBalance(txCtx, user.ID, delta); err != nil {
				return err
			}
		}

		txn.Status = target
		txn.ProcessedAt = &now
		txn.ProcessedBy = &processedBy
		result = &entity.ResolveResult{
			Request:      txn,
			Outcome:      outcome,
			Reason:       reason,
			BalanceAfter: user.Balance.Add(delta),
		}
		return nil
	})
	if err != nil {
		s.logResolveFailure(actorID, requestID, decision, err)
		return nil, err
	}

	s.logger.Info("Request resolved", map[string]any{
		"request_id":    result.Request.ID,
		"unique_id":     result.Request.UniqueID,
		"user_id":       result.Request.UserID,
		"actor_id":      actorID,
		"kind":          string(result.Request.Kind),
		"amount":        result.Request.Amount.String(),
		"outcome":       string(result.Outcome),
		"balance_after": result.BalanceAfter.String(),
	})

	payload := map[string]any{
		"request_id": result.Request.ID,
		"unique_id":  result.Request.UniqueID,
		"kind":       string(result.Request.Kind),
		"amount":     entity.FormatMoney(result.Request.Amount),
		"status":     string(result.Request.Status),
		"outcome":    string(result.Outcome),
		"balance":    entity.FormatMoney(result.BalanceAfter),
	}
	if result.Reason != "" {
		payload["reason"] = result.Reason
	}
	s.publish(ctx, coreport.EventRequestResolved, result.Request.UserID, payload)

	return result, nil
}

// decide maps a decision on a pending request to its terminal status and balance change
func (s *Service) decide(
	txn *entity.Transaction,
	user *entity.User,
	decision entity.Decision,
) (entity.TransactionStatus, entity.ResolveOutcome, string, decimal.Decimal) {
	if decision == entity.DecisionReject {
		return entity.StatusRejected, entity.OutcomeRejected, "", decimal.Zero
	}

	if txn.Kind == entity.KindWithdraw && !s.config.AllowWithdrawOverdraft && !user.CanAfford(txn.Amount) {
		return entity.StatusRejected, entity.OutcomeAutoRejected, reasonInsufficientBalance, decimal.Zero
	}

	return entity.StatusCompleted, entity.OutcomeApproved, "", txn.BalanceDelta()
}

// currentStatus re-reads the status a concurrent resolution committed
func (s *Service) currentStatus(ctx context.Context, requestID uint64) string {
	latest, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, requestID)
	if err != nil {
		return statusUnknown
	}
	return string(latest.Status)
}

func (s *Service) logResolveFailure(actorID, requestID uint64, decision entity.Decision, err error) {
	fields := map[string]any{
		"actor_id":   actorID,
		"request_id": requestID,
		"decision":   string(decision),
		"error":      err.Error(),
	}

	var reqErr *errs.RequestError
	if errors.As(err, &reqErr) {
		for k, v := range reqErr.LogFields() {
			fields[k] = v
		}
	}

	switch {
	case errs.IsAlreadyProcessedError(err):
		s.logger.Info("Request already processed", fields)
	case errs.IsStorageError(err):
		s.logger.Error("Failed to resolve request", fields)
	default:
		s.logger.Warn("Request resolution rejected", fields)
	}
}
