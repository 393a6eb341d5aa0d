package repository

import (
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	EntityTypeUser         EntityType = "user"
	EntityTypeAsset        EntityType = "asset"
	EntityTypeHolding      EntityType = "holding"
	EntityTypeTransaction  EntityType = "transaction"
	EntityTypePriceHistory EntityType = "price_history"
)

// checkViolations maps the store's check constraints to the domain rule each one enforces
var checkViolations = map[string]error{
	"chk_assets_available_supply": errs.ErrInvalidSupply,
	"chk_assets_rate":             errs.ErrInvalidRate,
	"chk_holdings_amount":         errs.ErrInsufficientHolding,
	"chk_transactions_amount":     errs.ErrInvalidAmount,
}

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct {
	classifier *ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: NewErrorClassifier()}
}

// MapError maps a database error raised by operation on entityType to a domain error.
// Anything that is not a missing row, a uniqueness conflict or a known check
// constraint is wrapped with ErrStorage.
func (m *ErrorMapper) MapError(err error, entityType EntityType, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.notFound(entityType)
	}

	if name := m.classifier.CheckConstraintName(err); name != "" {
		if rule, ok := checkViolations[name]; ok {
			return fmt.Errorf("%w: %s %s violates %s", rule, operation, entityType, name)
		}
	}

	switch m.classifier.Classify(err) {
	case DuplicateKeyError:
		return m.duplicate(entityType, err)
	case LockError:
		return fmt.Errorf("%w: %s %s: lock conflict: %s", errs.ErrStorage, operation, entityType, err.Error())
	case TransientError, ConnectionError:
		return fmt.Errorf("%w: %w: %s %s: %s", errs.ErrStorage, errs.ErrDatabaseConnection, operation, entityType, err.Error())
	case ConstraintError:
		return fmt.Errorf("%w: %w: %s %s: %s", errs.ErrStorage, errs.ErrConstraintViolation, operation, entityType, err.Error())
	default:
		return fmt.Errorf("%w: %s %s: %s", errs.ErrStorage, operation, entityType, err.Error())
	}
}

// notFound maps a missing row to the entity's not found error
func (m *ErrorMapper) notFound(entityType EntityType) error {
	switch entityType {
	case EntityTypeUser:
		return errs.ErrUserNotFound
	case EntityTypeAsset:
		return errs.ErrAssetNotFound
	case EntityTypeHolding:
		return errs.ErrNoHolding
	case EntityTypeTransaction:
		return errs.ErrRequestNotFound
	default:
		return fmt.Errorf("%w: %s not found", errs.ErrStorage, entityType)
	}
}

// duplicate maps a unique index violation to the entity's conflict error
func (m *ErrorMapper) duplicate(entityType EntityType, err error) error {
	switch entityType {
	case EntityTypeUser:
		return errs.ErrDuplicateUser
	case EntityTypeAsset:
		return errs.ErrDuplicateAsset
	case EntityTypeTransaction:
		if m.classifier.IsDuplicateOn(err, "unique_id") {
			return errs.ErrDuplicateCorrelationCode
		}
		return fmt.Errorf("%w: %w: %s", errs.ErrStorage, errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %w: %s", errs.ErrStorage, errs.ErrConstraintViolation, err.Error())
	}
}
