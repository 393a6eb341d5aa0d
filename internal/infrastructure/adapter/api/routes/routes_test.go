package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/requestid"
	timeprovider "github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminID = uint64(1)

type testServer struct {
	router   *gin.Engine
	users    *usecasemocks.MockUserUseCase
	trading  *usecasemocks.MockTradingUseCase
	requests *usecasemocks.MockRequestUseCase
	assets   *usecasemocks.MockAssetUseCase
	stats    *usecasemocks.MockStatsUseCase
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.RegisterValidators())

	s := &testServer{
		router:   gin.New(),
		users:    usecasemocks.NewMockUserUseCase(t),
		trading:  usecasemocks.NewMockTradingUseCase(t),
		requests: usecasemocks.NewMockRequestUseCase(t),
		assets:   usecasemocks.NewMockAssetUseCase(t),
		stats:    usecasemocks.NewMockStatsUseCase(t),
	}

	authorizer := coremocks.NewMockAuthorizer(t)
	authorizer.EXPECT().IsPrivileged(mock.Anything, adminID).Return(true).Maybe()
	authorizer.EXPECT().IsPrivileged(mock.Anything, mock.Anything).Return(false).Maybe()

	log := logger.NewNoopLogger()
	SetupMiddlewares(s.router, log, timeprovider.NewRealTimeProvider())
	SetupRoutes(s.router, Handlers{
		User:    handler.NewUserHandler(s.users, log),
		Trading: handler.NewTradingHandler(s.trading, log),
		Request: handler.NewRequestHandler(s.requests, log),
		Asset:   handler.NewAssetHandler(s.assets, log),
		Stats:   handler.NewStatsHandler(s.stats, func(context.Context) error { return nil }, log),
	}, authorizer, log)

	return s
}

func (s *testServer) do(method, path string, body any, actor string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set(middleware.ActorHeader, actor)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestHealthAndRequestID(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, requestid.Valid(rec.Header().Get(requestid.Header)))
}

func TestBuy(t *testing.T) {
	t.Run("Executes the trade", func(t *testing.T) {
		s := newTestServer(t)
		s.trading.EXPECT().Buy(mock.Anything, usecase.TradeRequest{UserID: 5, AssetID: 3, Amount: "4"}).
			Return(&entity.TradeResult{
				Side:            entity.SideBuy,
				UserID:          5,
				AssetID:         3,
				Symbol:          "BTCd",
				Amount:          dec("4"),
				Rate:            dec("100"),
				Total:           dec("400"),
				Balance:         dec("600"),
				HoldingAmount:   dec("4"),
				AvailableSupply: dec("46"),
			}, nil).Once()

		rec := s.do(http.MethodPost, "/api/v1/users/5/buy", dto.TradeRequest{AssetID: 3, Amount: "4"}, "5")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.TradeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "600.00", resp.Balance)
		assert.Equal(t, "46.00000000", resp.AvailableSupply)
		assert.Equal(t, "4.00000000", resp.Holding)
	})

	t.Run("Insufficient balance is unprocessable", func(t *testing.T) {
		s := newTestServer(t)
		s.trading.EXPECT().Buy(mock.Anything, mock.Anything).
			Return(nil, errs.NewInsufficientBalanceError(5, "2000", "1000")).Once()

		rec := s.do(http.MethodPost, "/api/v1/users/5/buy", dto.TradeRequest{AssetID: 3, Amount: "20"}, "5")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, errs.CodeInsufficientBalance, decodeError(t, rec).Code)
	})

	t.Run("Non-positive amount fails binding", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/api/v1/users/5/buy", dto.TradeRequest{AssetID: 3, Amount: "-1"}, "5")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("Malformed user id", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/api/v1/users/abc/buy", dto.TradeRequest{AssetID: 3, Amount: "1"}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidUserID, decodeError(t, rec).Code)
	})
}

func TestCreateRequest(t *testing.T) {
	s := newTestServer(t)
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s.requests.EXPECT().Create(mock.Anything, uint64(5), entity.KindDeposit, "500").
		Return(&entity.Transaction{
			ID:        11,
			UniqueID:  "1714554000000ABC123",
			UserID:    5,
			Kind:      entity.KindDeposit,
			Amount:    dec("500"),
			Status:    entity.StatusPending,
			CreatedAt: created,
		}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/users/5/requests", dto.CreateRequestRequest{Kind: "deposit", Amount: "500"}, "5")

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ABC123", resp.PaymentReference)
	assert.Equal(t, "500.00", resp.Amount)
	assert.Equal(t, "pending", resp.Status)
}

func TestResolve(t *testing.T) {
	t.Run("Admin resolves", func(t *testing.T) {
		s := newTestServer(t)
		s.requests.EXPECT().Resolve(mock.Anything, adminID, uint64(11), entity.DecisionReject).
			Return(&entity.ResolveResult{
				Request:      &entity.Transaction{ID: 11, UserID: 5, Kind: entity.KindWithdraw, Amount: dec("500"), Status: entity.StatusRejected},
				Outcome:      entity.OutcomeRejected,
				BalanceAfter: dec("1000"),
			}, nil).Once()

		rec := s.do(http.MethodPost, "/api/v1/admin/requests/11/resolve", dto.ResolveRequest{Decision: "reject"}, "1")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.ResolveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "rejected", resp.Outcome)
		assert.Equal(t, "1000.00", resp.Balance)
	})

	t.Run("Second resolution conflicts", func(t *testing.T) {
		s := newTestServer(t)
		s.requests.EXPECT().Resolve(mock.Anything, adminID, uint64(11), entity.DecisionApprove).
			Return(nil, errs.NewRequestError(11, "X", 5, "rejected", "request is no longer pending", errs.ErrAlreadyProcessed)).Once()

		rec := s.do(http.MethodPost, "/api/v1/admin/requests/11/resolve", dto.ResolveRequest{Decision: "approve"}, "1")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, errs.CodeAlreadyProcessed, decodeError(t, rec).Code)
	})

	t.Run("Non-admin is forbidden before the use case", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/api/v1/admin/requests/11/resolve", dto.ResolveRequest{Decision: "approve"}, "7")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Missing actor is forbidden", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/api/v1/admin/requests/pending", nil, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Malformed actor header", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/api/v1/admin/requests/pending", nil, "admin")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAssets(t *testing.T) {
	t.Run("Public list hides total supply", func(t *testing.T) {
		s := newTestServer(t)
		s.assets.EXPECT().List(mock.Anything, false).Return([]entity.AssetView{
			{ID: 3, Name: "Bitcoin", Symbol: "BTCd", Rate: dec("100"), AvailableSupply: dec("46")},
		}, nil).Once()

		rec := s.do(http.MethodGet, "/api/v1/assets", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "totalSupply")
	})

	t.Run("Create validates the symbol", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/api/v1/admin/assets", dto.CreateAssetRequest{
			Name: "Bitcoin", Symbol: "btcd", Rate: "100", TotalSupply: "50",
		}, "1")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "assetsymbol")
	})

	t.Run("Create lists the asset", func(t *testing.T) {
		s := newTestServer(t)
		s.assets.EXPECT().Create(mock.Anything, adminID, usecase.CreateAssetRequest{
			Name: "Bitcoin", Symbol: "BTCd", Rate: "100", TotalSupply: "50",
		}).Return(&entity.Asset{
			ID: 3, Name: "Bitcoin", Symbol: "BTCd", Rate: dec("100"), TotalSupply: dec("50"), AvailableSupply: dec("50"),
		}, nil).Once()

		rec := s.do(http.MethodPost, "/api/v1/admin/assets", dto.CreateAssetRequest{
			Name: "Bitcoin", Symbol: "BTCd", Rate: "100", TotalSupply: "50",
		}, "1")

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.AssetResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.MarketCap)
		assert.Equal(t, "5000.00", *resp.MarketCap)
	})

	t.Run("Unknown asset", func(t *testing.T) {
		s := newTestServer(t)
		s.assets.EXPECT().Get(mock.Anything, uint64(9), false).Return(nil, errs.ErrAssetNotFound).Once()

		rec := s.do(http.MethodGet, "/api/v1/assets/9", nil, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errs.CodeAssetNotFound, decodeError(t, rec).Code)
	})
}

func TestStorageFailureHidesDetails(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().GetUser(mock.Anything, uint64(5)).Return(nil, errs.ErrStorage).Once()

	rec := s.do(http.MethodGet, "/api/v1/users/5", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec).Message)
}
