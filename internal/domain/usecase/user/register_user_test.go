package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func registerRequest(id uint64) usecase.RegisterUserRequest {
	return usecase.RegisterUserRequest{
		UserID: id,
		Profile: entity.Profile{
			FirstName: "Anna",
			LastName:  "Smirnova",
			BirthDate: "01.02.1995",
			Email:     "Anna@Example.com",
			Phone:     "+79001234567",
		},
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	bonus := decimal.NewFromInt(250)

	t.Run("Successful registration", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(123)).Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().FindByEmail(mock.Anything, "anna@example.com").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.ID == 123 && user.FormattedBalance() == "250.00"
		})).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger, bonus)

		// Execute
		user, err := userUseCase.Register(ctx, registerRequest(123))

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, uint64(123), user.ID)
		assert.Equal(t, "250.00", user.FormattedBalance())
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Invalid user ID", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger, bonus)

		user, err := userUseCase.Register(ctx, registerRequest(0))

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrInvalidUserID, err)
	})

	t.Run("Invalid profile", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger, bonus)

		req := registerRequest(123)
		req.BirthDate = "1995-02-01"
		user, err := userUseCase.Register(ctx, req)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidProfile)
	})

	t.Run("Already registered ID", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(123)).Return(&entity.User{ID: 123}, nil).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger, bonus)

		_, err := userUseCase.Register(ctx, registerRequest(123))

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("Email already used", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(123)).Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().FindByEmail(mock.Anything, "anna@example.com").Return(&entity.User{ID: 9}, nil).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger, bonus)

		_, err := userUseCase.Register(ctx, registerRequest(123))

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("Repository error on create", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		dbErr := errors.New("database error")

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(123)).Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger, bonus)

		user, err := userUseCase.Register(ctx, registerRequest(123))

		assert.Nil(t, user)
		assert.Equal(t, dbErr, err)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored user", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		stored := &entity.User{ID: 5, Balance: decimal.RequireFromString("1000.5")}
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(stored, nil).Once()

		userUseCase := NewUserUseCase(mockRepo, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t), decimal.Zero)

		user, err := userUseCase.GetUser(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "1000.50", user.FormattedBalance())
	})

	t.Run("Missing user is not logged as an error", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(nil, errs.ErrUserNotFound).Once()

		userUseCase := NewUserUseCase(mockRepo, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t), decimal.Zero)

		_, err := userUseCase.GetUser(ctx, 5)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Storage failure is logged", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(nil, errs.ErrStorage).Once()
		mockLogger.EXPECT().Error("Failed to get user", mock.Anything).Once()

		userUseCase := NewUserUseCase(mockRepo, coremocks.NewMockTimeProvider(t), mockLogger, decimal.Zero)

		_, err := userUseCase.GetUser(ctx, 5)

		assert.True(t, errs.IsStorageError(err))
	})
}
