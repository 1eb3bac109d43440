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
	"github.com/stretchr/testify/suite"
)

type ReunionHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockReunionServiceInterface
	handler     *ReunionHandler
	userID      uuid.UUID
}

func TestReunionHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReunionHandlerTestSuite))
}

func (s *ReunionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockReunionServiceInterface(s.ctrl)
	s.handler = NewReunionHandler(s.mockService)
	s.userID = uuid.New()
}

func (s *ReunionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReunionHandlerTestSuite) TestCreateReunion() {
	reunion := &models.Reunion{
		ID:          uuid.New(),
		OwnerID:     s.userID,
		Title:       "Miller Family Reunion",
		ReunionType: models.ReunionTypeFamily,
	}
	s.mockService.EXPECT().
		CreateReunion(s.userID, gomock.Any()).
		Return(reunion, nil)

	body := `{"title":"Miller Family Reunion","reunion_type":"family"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.NoError(s.handler.CreateReunion(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.CreateReunionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Miller Family Reunion", resp.Reunion.Title)
}

func (s *ReunionHandlerTestSuite) TestCreateReunion_InvalidType() {
	body := `{"title":"Reunion","reunion_type":"corporate"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.NoError(s.handler.CreateReunion(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ReunionHandlerTestSuite) TestCreateReunion_MissingAuth() {
	body := `{"title":"Reunion"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.CreateReunion(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ReunionHandlerTestSuite) TestGetReunion_NotOwner() {
	reunionID := uuid.New()
	s.mockService.EXPECT().
		GetReunion(reunionID, s.userID).
		Return(nil, services.ErrUnauthorized)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("reunionId")
	c.SetParamValues(reunionID.String())

	s.NoError(s.handler.GetReunion(c))
	s.Equal(http.StatusForbidden, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("AUTH_004", resp.Error.Code)
}

func (s *ReunionHandlerTestSuite) TestGetReunion_NotFound() {
	reunionID := uuid.New()
	s.mockService.EXPECT().
		GetReunion(reunionID, s.userID).
		Return(nil, services.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("reunionId")
	c.SetParamValues(reunionID.String())

	s.NoError(s.handler.GetReunion(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ReunionHandlerTestSuite) TestListReunions_Paginated() {
	s.mockService.EXPECT().
		ListReunions(s.userID, 10, 5).
		Return([]models.Reunion{{ID: uuid.New(), OwnerID: s.userID}}, int64(11), nil)

	req := httptest.NewRequest(http.MethodGet, "/?offset=10&limit=5", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.NoError(s.handler.ListReunions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ReunionListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(11), resp.Total)
	s.Equal(10, resp.Offset)
	s.Len(resp.Reunions, 1)
}

func (s *ReunionHandlerTestSuite) TestDeleteReunion() {
	reunionID := uuid.New()
	s.mockService.EXPECT().
		DeleteReunion(reunionID, s.userID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("reunionId")
	c.SetParamValues(reunionID.String())

	s.NoError(s.handler.DeleteReunion(c))
	s.Equal(http.StatusOK, rec.Code)
}
