package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reunion-planner/internal/dto"
	"reunion-planner/internal/models"
	"reunion-planner/internal/services"
	"reunion-planner/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LineItemHandlerTestSuite struct {
	suite.Suite
	echo          *echo.Echo
	ctrl          *gomock.Controller
	mockLineItems *service_mocks.MockLineItemServiceInterface
	mockReunions  *service_mocks.MockReunionServiceInterface
	handler       *LineItemHandler
	reunionID     uuid.UUID
	userID        uuid.UUID
}

func TestLineItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(LineItemHandlerTestSuite))
}

func (s *LineItemHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockLineItems = service_mocks.NewMockLineItemServiceInterface(s.ctrl)
	s.mockReunions = service_mocks.NewMockReunionServiceInterface(s.ctrl)
	s.handler = NewLineItemHandler(s.mockLineItems, s.mockReunions)
	s.reunionID = uuid.New()
	s.userID = uuid.New()
}

func (s *LineItemHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LineItemHandlerTestSuite) newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("reunionId")
	c.SetParamValues(s.reunionID.String())
	return c, rec
}

func (s *LineItemHandlerTestSuite) expectOwnedReunion() {
	s.mockReunions.EXPECT().
		GetReunion(s.reunionID, s.userID).
		Return(&models.Reunion{ID: s.reunionID, OwnerID: s.userID}, nil)
}

func (s *LineItemHandlerTestSuite) TestUpsert_Created() {
	s.expectOwnedReunion()

	item := &models.LineItem{
		ID:              uuid.New(),
		ReunionID:       s.reunionID,
		SourceModule:    models.SourceModuleVendor,
		SourceKey:       "vnd-1",
		BudgetCategory:  models.CategoryFoodBeverage,
		Label:           "Welcome Dinner",
		EstimatedAmount: decimal.RequireFromString("2500.00"),
	}
	s.mockLineItems.EXPECT().
		Upsert(s.reunionID, gomock.Any()).
		Return(item, true, nil)

	body := `{"source_module":"vendor","source_key":"vnd-1","domain_category":"Catering","label":"Welcome Dinner","estimated_amount":"2500.00"}`
	c, rec := s.newContext(http.MethodPut, body)

	s.NoError(s.handler.UpsertLineItem(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.UpsertLineItemResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Created)
	s.Equal("vnd-1", resp.LineItem.SourceKey)
}

func (s *LineItemHandlerTestSuite) TestUpsert_Updated() {
	s.expectOwnedReunion()

	item := &models.LineItem{ID: uuid.New(), ReunionID: s.reunionID, SourceKey: "vnd-1"}
	s.mockLineItems.EXPECT().
		Upsert(s.reunionID, gomock.Any()).
		Return(item, false, nil)

	body := `{"source_module":"vendor","source_key":"vnd-1","label":"Welcome Dinner","estimated_amount":"2600.00"}`
	c, rec := s.newContext(http.MethodPut, body)

	s.NoError(s.handler.UpsertLineItem(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *LineItemHandlerTestSuite) TestUpsert_ValidationFailure() {
	s.expectOwnedReunion()

	// Bad source module never reaches the service
	body := `{"source_module":"spreadsheet","source_key":"x","label":"Entry","estimated_amount":"10"}`
	c, rec := s.newContext(http.MethodPut, body)

	s.NoError(s.handler.UpsertLineItem(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("VALIDATION_001", resp.Error.Code)
}

func (s *LineItemHandlerTestSuite) TestUpsert_InvalidAmountFromService() {
	s.expectOwnedReunion()
	s.mockLineItems.EXPECT().
		Upsert(s.reunionID, gomock.Any()).
		Return(nil, false, models.ErrInvalidAmount)

	body := `{"source_module":"manual","source_key":"m-1","label":"Entry","estimated_amount":"10"}`
	c, rec := s.newContext(http.MethodPut, body)

	s.NoError(s.handler.UpsertLineItem(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("LINEITEM_002", resp.Error.Code)
}

func (s *LineItemHandlerTestSuite) TestUpsert_MissingAuth() {
	body := `{"source_module":"manual","source_key":"m-1","label":"Entry","estimated_amount":"10"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("reunionId")
	c.SetParamValues(s.reunionID.String())

	s.NoError(s.handler.UpsertLineItem(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *LineItemHandlerTestSuite) TestUpsert_ForeignReunion() {
	s.mockReunions.EXPECT().
		GetReunion(s.reunionID, s.userID).
		Return(nil, services.ErrUnauthorized)

	body := `{"source_module":"manual","source_key":"m-1","label":"Entry","estimated_amount":"10"}`
	c, rec := s.newContext(http.MethodPut, body)

	s.NoError(s.handler.UpsertLineItem(c))
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *LineItemHandlerTestSuite) TestRemove_Found() {
	s.expectOwnedReunion()
	s.mockLineItems.EXPECT().
		Remove(s.reunionID, models.SourceModuleVendor, "vnd-1").
		Return(true, nil)

	c, rec := s.newContext(http.MethodDelete, "")
	c.SetParamNames("reunionId", "sourceModule", "sourceKey")
	c.SetParamValues(s.reunionID.String(), models.SourceModuleVendor, "vnd-1")

	s.NoError(s.handler.RemoveLineItem(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.RemoveLineItemResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Removed)
}

func (s *LineItemHandlerTestSuite) TestRemove_AbsentIsStillOK() {
	s.expectOwnedReunion()
	s.mockLineItems.EXPECT().
		Remove(s.reunionID, models.SourceModuleVendor, "ghost").
		Return(false, nil)

	c, rec := s.newContext(http.MethodDelete, "")
	c.SetParamNames("reunionId", "sourceModule", "sourceKey")
	c.SetParamValues(s.reunionID.String(), models.SourceModuleVendor, "ghost")

	s.NoError(s.handler.RemoveLineItem(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.RemoveLineItemResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.Removed)
}

func (s *LineItemHandlerTestSuite) TestList_WithFilters() {
	s.expectOwnedReunion()
	s.mockLineItems.EXPECT().
		ListWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.LineItemFilters) ([]models.LineItem, int64, error) {
			s.Equal(s.reunionID, filters.ReunionID)
			s.Equal(models.SourceModuleVendor, filters.SourceModule)
			return []models.LineItem{{ID: uuid.New()}}, 1, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/?sourceModule=vendor", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("reunionId")
	c.SetParamValues(s.reunionID.String())

	s.NoError(s.handler.ListLineItems(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.LineItemListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(1), resp.Total)
}

func (s *LineItemHandlerTestSuite) TestList_BindsSyncedAndPagination() {
	s.expectOwnedReunion()
	s.mockLineItems.EXPECT().
		ListWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.LineItemFilters) ([]models.LineItem, int64, error) {
			if s.NotNil(filters.Synced) {
				s.False(*filters.Synced)
			}
			s.Equal(5, filters.Offset)
			s.Equal(maxPageLimit, filters.Limit)
			return []models.LineItem{}, 0, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/?synced=false&offset=5&limit=9999", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("reunionId")
	c.SetParamValues(s.reunionID.String())

	s.NoError(s.handler.ListLineItems(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *LineItemHandlerTestSuite) TestList_InvalidFilter() {
	s.expectOwnedReunion()

	req := httptest.NewRequest(http.MethodGet, "/?sourceModule=spreadsheet", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("reunionId")
	c.SetParamValues(s.reunionID.String())

	s.NoError(s.handler.ListLineItems(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *LineItemHandlerTestSuite) TestInvalidReunionIDParam() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("reunionId")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.ListLineItems(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("REUNION_002", resp.Error.Code)
}
