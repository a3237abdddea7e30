package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/oshocredit/khata_backend/internal/apperrors"
	"github.com/oshocredit/khata_backend/internal/core/domain"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/dto"
	"github.com/oshocredit/khata_backend/internal/handlers"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) AddParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockLedgerService) AddTransaction(ctx context.Context, partyID string, req dto.CreateTransactionRequest) (*domain.Party, error) {
	args := m.Called(ctx, partyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockLedgerService) ListParties(ctx context.Context, partyType domain.PartyType, search string) []domain.Party {
	args := m.Called(ctx, partyType, search)
	return args.Get(0).([]domain.Party)
}
func (m *MockLedgerService) GetParty(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockLedgerService) Stats(ctx context.Context) domain.Stats {
	args := m.Called(ctx)
	return args.Get(0).(domain.Stats)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type PartyHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
}

func (suite *PartyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPartyRoutes(v1, suite.mockLedgerService)
}

func (suite *PartyHandlerTestSuite) TestCreateParty_Success() {
	expected := &domain.Party{
		PartyID:      uuid.NewString(),
		Name:         "Priya",
		Phone:        "9876500002",
		Type:         domain.Customer,
		Transactions: []domain.Transaction{},
		CreatedAt:    time.Now(),
	}
	suite.mockLedgerService.On("AddParty",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreatePartyRequest) bool {
			return req.Name == "Priya" && req.Type == domain.Customer
		}),
	).Return(expected, nil).Once()

	body := `{"name":"Priya","phone":"9876500002","type":"CUSTOMER"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/parties", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.PartyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.PartyID, resp.PartyID)
	suite.True(resp.Balance.IsZero())

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestCreateParty_MissingFields() {
	body := `{"name":"Priya"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/parties", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "AddParty")
}

func (suite *PartyHandlerTestSuite) TestListParties_FiltersByTypeAndSearch() {
	parties := []domain.Party{
		{PartyID: "p-1", Name: "Ramesh", Phone: "9876500001", Type: domain.Supplier},
		{PartyID: "p-2", Name: "Rajat", Phone: "9876500003", Type: domain.Supplier},
	}
	suite.mockLedgerService.On("ListParties", mock.Anything, domain.Supplier, "ra").
		Return(parties).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/parties?type=SUPPLIER&search=ra", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var rows []dto.PartySummary
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Len(rows, 2)
	suite.Equal("Ramesh", rows[0].Name)

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestListParties_InvalidType() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/parties?type=VENDOR", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "ListParties")
}

func (suite *PartyHandlerTestSuite) TestGetParty_NotFound() {
	suite.mockLedgerService.On("GetParty", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/parties/missing", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestAddTransaction_Success() {
	partyID := uuid.NewString()
	amount := decimal.NewFromInt(500)
	updated := &domain.Party{
		PartyID: partyID,
		Name:    "Priya",
		Phone:   "9876500002",
		Type:    domain.Customer,
		Transactions: []domain.Transaction{
			{TransactionID: uuid.NewString(), Amount: amount, Type: domain.Debit, Date: time.Now()},
		},
		CreatedAt: time.Now(),
	}
	suite.mockLedgerService.On("AddTransaction",
		mock.Anything,
		partyID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.Amount != nil && req.Amount.Equal(amount) && req.Type == domain.Debit
		}),
	).Return(updated, nil).Once()

	body := `{"amount":"500","type":"DEBIT"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/parties/"+partyID+"/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.PartyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("500", resp.Balance.String())

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestAddTransaction_ValidationError() {
	partyID := uuid.NewString()
	suite.mockLedgerService.On("AddTransaction", mock.Anything, partyID, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	body := `{"amount":"-10","type":"DEBIT"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/parties/"+partyID+"/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestGetStats() {
	suite.mockLedgerService.On("Stats", mock.Anything).
		Return(domain.Stats{
			TotalYouGave: decimal.NewFromInt(500),
			TotalYouGot:  decimal.NewFromInt(200),
			NetBalance:   decimal.NewFromInt(300),
		}).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var stats domain.Stats
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &stats))
	suite.Equal("300", stats.NetBalance.String())

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func TestPartyHandler(t *testing.T) {
	suite.Run(t, new(PartyHandlerTestSuite))
}
