package auth

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/logger"
	persistencemocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestIsPrivileged(t *testing.T) {
	ctx := context.Background()

	t.Run("Configured id needs no lookup", func(t *testing.T) {
		users := persistencemocks.NewMockUserRepository(t)
		authorizer := NewAdminAuthorizer(users, []uint64{1}, "admin@example.com", time.Minute, logger.NewNoopLogger())

		assert.True(t, authorizer.IsPrivileged(ctx, 1))
		assert.False(t, authorizer.IsPrivileged(ctx, 0))
	})

	t.Run("Admin email is matched once and cached", func(t *testing.T) {
		users := persistencemocks.NewMockUserRepository(t)
		users.EXPECT().GetByID(mock.Anything, uint64(42)).
			Return(&entity.User{ID: 42, Profile: entity.Profile{Email: "Admin@Example.com"}}, nil).Once()
		authorizer := NewAdminAuthorizer(users, nil, "admin@example.com", time.Minute, logger.NewNoopLogger())

		assert.True(t, authorizer.IsPrivileged(ctx, 42))
		assert.True(t, authorizer.IsPrivileged(ctx, 42))
	})

	t.Run("Admin registering after a denial is recognised at once", func(t *testing.T) {
		users := persistencemocks.NewMockUserRepository(t)
		users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errs.ErrUserNotFound).Once()
		users.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(&entity.User{ID: 7, Profile: entity.Profile{Email: "admin@example.com"}}, nil).Once()
		authorizer := NewAdminAuthorizer(users, nil, "admin@example.com", time.Minute, logger.NewNoopLogger())

		assert.False(t, authorizer.IsPrivileged(ctx, 7))
		assert.True(t, authorizer.IsPrivileged(ctx, 7))
	})

	t.Run("Registered non-admin is denied and cached", func(t *testing.T) {
		users := persistencemocks.NewMockUserRepository(t)
		users.EXPECT().GetByID(mock.Anything, uint64(8)).
			Return(&entity.User{ID: 8, Profile: entity.Profile{Email: "trader@example.com"}}, nil).Once()
		authorizer := NewAdminAuthorizer(users, nil, "admin@example.com", time.Minute, logger.NewNoopLogger())

		assert.False(t, authorizer.IsPrivileged(ctx, 8))
		assert.False(t, authorizer.IsPrivileged(ctx, 8))
	})

	t.Run("Storage failure fails closed without caching", func(t *testing.T) {
		users := persistencemocks.NewMockUserRepository(t)
		users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errs.ErrStorage).Twice()
		authorizer := NewAdminAuthorizer(users, nil, "admin@example.com", time.Minute, logger.NewNoopLogger())

		assert.False(t, authorizer.IsPrivileged(ctx, 7))
		assert.False(t, authorizer.IsPrivileged(ctx, 7))
	})

	t.Run("No admin email means only configured ids", func(t *testing.T) {
		users := persistencemocks.NewMockUserRepository(t)
		authorizer := NewAdminAuthorizer(users, []uint64{1}, "", time.Minute, logger.NewNoopLogger())

		assert.False(t, authorizer.IsPrivileged(ctx, 2))
	})
}
