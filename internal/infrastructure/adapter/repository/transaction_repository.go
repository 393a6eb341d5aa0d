package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// requestKinds are the transaction kinds that move through the approval workflow
var requestKinds = []string{string(entity.KindDeposit), string(entity.KindWithdraw)}

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		UniqueID:    transaction.UniqueID,
		UserID:      transaction.UserID,
		Kind:        string(transaction.Kind),
		Amount:      model.NewAmount(transaction.Amount),
		Status:      string(transaction.Status),
		CreatedAt:   transaction.CreatedAt,
		ProcessedAt: transaction.ProcessedAt,
		ProcessedBy: transaction.ProcessedBy,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UniqueID:    m.UniqueID,
		UserID:      m.UserID,
		Kind:        entity.TransactionKind(m.Kind),
		Amount:      m.Amount.Decimal,
		Status:      entity.TransactionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		ProcessedAt: m.ProcessedAt,
		ProcessedBy: m.ProcessedBy,
	}
}

func (r *TransactionRepository) rowToView(row *model.RequestRow) entity.RequestView {
	return entity.RequestView{
		Transaction: entity.Transaction{
			ID:          row.ID,
			UniqueID:    row.UniqueID,
			UserID:      row.UserID,
			Kind:        entity.TransactionKind(row.Kind),
			Amount:      row.Amount,
			Status:      entity.TransactionStatus(row.Status),
			CreatedAt:   row.CreatedAt,
			ProcessedAt: row.ProcessedAt,
			ProcessedBy: row.ProcessedBy,
		},
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorMapper.MapError(err, EntityTypeTransaction, operation)
	if errors.Is(mapped, errs.ErrRequestNotFound) {
		return mapped
	}

	if fields == nil {
		fields = map[string]any{}
	}
	fields["operation"] = operation
	fields["error"] = err.Error()

	if errors.Is(mapped, errs.ErrDuplicateCorrelationCode) {
		r.logger.Warn("Correlation code collision", fields)
		return mapped
	}

	r.logger.Error("Database error on transactions", fields)
	return mapped
}

// Create saves a new transaction and sets its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&transactionModel)
	if result.Error != nil {
		return r.handleDatabaseError("create", result.Error, map[string]any{
			"unique_id": transaction.UniqueID,
			"user_id":   transaction.UserID,
		})
	}

	transaction.ID = transactionModel.ID
	r.logger.Debug("Transaction created", map[string]any{
		"id":        transaction.ID,
		"unique_id": transaction.UniqueID,
		"kind":      string(transaction.Kind),
	})
	return nil
}

// GetByID retrieves a deposit or withdraw request
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("id = ? AND kind IN ?", id, requestKinds).
		First(&transactionModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("get", result.Error, map[string]any{"id": id})
	}
	return r.modelToEntity(&transactionModel), nil
}

// TransitionStatus is a compare-and-swap on the status column
func (r *TransactionRepository) TransitionStatus(
	ctx context.Context,
	id uint64,
	from, to entity.TransactionStatus,
	processedAt time.Time,
	processedBy *uint64,
) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":       string(to),
			"processed_at": processedAt,
			"processed_by": processedBy,
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("transition", result.Error, map[string]any{
			"id":   id,
			"from": string(from),
			"to":   string(to),
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Info("Status transition lost", map[string]any{
			"id":   id,
			"from": string(from),
			"to":   string(to),
		})
		return false, nil
	}
	return true, nil
}

// CancelAllPending moves every pending request to cancelled
func (r *TransactionRepository) CancelAllPending(ctx context.Context, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("status = ? AND kind IN ?", string(entity.StatusPending), requestKinds).
		Updates(map[string]any{
			"status":       string(entity.StatusCancelled),
			"processed_at": at,
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("cancel pending", result.Error, nil)
	}
	return result.RowsAffected, nil
}

// CountPending returns the number of requests awaiting a decision
func (r *TransactionRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("status = ?", string(entity.StatusPending)).
		Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("count pending", result.Error, nil)
	}
	return count, nil
}

func (r *TransactionRepository) withOwners(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transactions").
		Select("transactions.id, transactions.unique_id, transactions.user_id, transactions.kind, " +
			"transactions.amount, transactions.status, transactions.created_at, " +
			"transactions.processed_at, transactions.processed_by, " +
			"users.first_name, users.last_name, users.email").
		Joins("JOIN users ON users.id = transactions.user_id")
}

func (r *TransactionRepository) scanViews(query *gorm.DB, operation string) ([]entity.RequestView, error) {
	var rows []model.RequestRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, nil)
	}

	views := make([]entity.RequestView, 0, len(rows))
	for i := range rows {
		views = append(views, r.rowToView(&rows[i]))
	}
	return views, nil
}

// ListPending returns pending requests with their owners, newest first
func (r *TransactionRepository) ListPending(ctx context.Context) ([]entity.RequestView, error) {
	query := r.withOwners(ctx).
		Where("transactions.status = ? AND transactions.kind IN ?", string(entity.StatusPending), requestKinds).
		Order("transactions.created_at DESC, transactions.id DESC")
	return r.scanViews(query, "list pending")
}

// ListRecent returns the latest transactions of any kind with their owners
func (r *TransactionRepository) ListRecent(ctx context.Context, limit int) ([]entity.RequestView, error) {
	query := r.withOwners(ctx).
		Order("transactions.created_at DESC, transactions.id DESC").
		Limit(limit)
	return r.scanViews(query, "list recent")
}

// ListByUser returns one user's transactions, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, limit int) ([]entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("list by user", result.Error, map[string]any{"user_id": userID})
	}

	transactions := make([]entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, *r.modelToEntity(&transactionModels[i]))
	}
	return transactions, nil
}
