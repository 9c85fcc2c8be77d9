package handlers_test

import (
	"net/http"
	"testing"

	"scrimhub-backend/internal/api/handlers"
	"scrimhub-backend/internal/database/models"
	apperrors "scrimhub-backend/internal/errors"
	"scrimhub-backend/internal/mocks"
	"scrimhub-backend/internal/service"
	"scrimhub-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScrimHandlerTestSuite defines the test suite for ScrimHandler
type ScrimHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockScrimServiceInterface
	handler     *handlers.ScrimHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ScrimHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockScrimServiceInterface(suite.ctrl)
	suite.handler = handlers.NewScrimHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1", testutils.AsViewer(testViewerID))
	scrims := v1.Group("/scrims")
	{
		scrims.GET("", suite.handler.ListOpenScrims)
		scrims.POST("", suite.handler.CreateScrim)
		scrims.GET("/:id", suite.handler.GetScrim)
		scrims.DELETE("/:id", suite.handler.DisbandScrim)
		scrims.PATCH("/:id/code", suite.handler.UpdateScrimCode)
		scrims.POST("/:id/leave", suite.handler.LeaveScrim)
	}
}

// TearDownTest cleans up after each test
func (suite *ScrimHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateScrim tests the CreateScrim handler
func (suite *ScrimHandlerTestSuite) TestCreateScrim() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"host_team_id":    int64(4),
			"best_of":         5,
			"gamemode":        "Hardpoint",
			"map":             "Karachi",
			"participant_ids": []int64{7, 8},
		}

		expectedResponse := &service.ScrimResponse{
			ID:                 1,
			HostTeamID:         4,
			BestOf:             5,
			Gamemode:           "Hardpoint",
			Map:                "Karachi",
			TeamSize:           4,
			Ruleset:            models.RulesetCDL,
			Status:             models.ScrimStatusOpen,
			HostParticipantIDs: []int64{7, 8},
		}

		suite.mockService.EXPECT().
			Create(testViewerID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/scrims", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.ScrimResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.ID, response.ID)
		assert.Equal(t, models.ScrimStatusOpen, response.Status)
	})

	suite.T().Run("Not Manager", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(testViewerID, gomock.Any()).
			Return(nil, apperrors.ErrNotTeamManager).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/scrims", map[string]interface{}{
			"host_team_id": int64(4),
			"best_of":      5,
			"gamemode":     "Hardpoint",
			"map":          "Karachi",
		})

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestGetScrim tests the GetScrim handler
func (suite *ScrimHandlerTestSuite) TestGetScrim() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.ScrimResponse{
			ID:         9,
			HostTeamID: 4,
			Status:     models.ScrimStatusOpen,
		}

		suite.mockService.EXPECT().
			GetByID(int64(9)).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/scrims/9", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(int64(9)).
			Return(nil, apperrors.ErrScrimNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/scrims/9", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "scrim not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/scrims/abc", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestUpdateScrimCode tests the UpdateScrimCode handler
func (suite *ScrimHandlerTestSuite) TestUpdateScrimCode() {
	suite.T().Run("Success", func(t *testing.T) {
		code := "ABCD12"
		expectedResponse := &service.ScrimResponse{
			ID:         9,
			HostTeamID: 4,
			Status:     models.ScrimStatusOpen,
			ScrimCode:  &code,
		}

		suite.mockService.EXPECT().
			UpdateCode(testViewerID, int64(9), &service.UpdateScrimCodeRequest{ScrimCode: "abcd12"}).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/scrims/9/code", map[string]interface{}{
			"scrim_code": "abcd12",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Code Taken", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateCode(testViewerID, int64(9), gomock.Any()).
			Return(nil, apperrors.ErrScrimCodeTaken).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/scrims/9/code", map[string]interface{}{
			"scrim_code": "abcd12",
		})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestLeaveScrim tests the LeaveScrim handler
func (suite *ScrimHandlerTestSuite) TestLeaveScrim() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Leave(testViewerID, int64(9)).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/scrims/9/leave", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Host Cannot Leave", func(t *testing.T) {
		suite.mockService.EXPECT().
			Leave(testViewerID, int64(9)).
			Return(apperrors.ErrHostCannotLeave).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/scrims/9/leave", nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("Not Matched", func(t *testing.T) {
		suite.mockService.EXPECT().
			Leave(testViewerID, int64(9)).
			Return(apperrors.NewInvalidStateError("scrim is not matched")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/scrims/9/leave", nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestDisbandScrim tests the DisbandScrim handler
func (suite *ScrimHandlerTestSuite) TestDisbandScrim() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Disband(testViewerID, int64(9)).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/scrims/9", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Manager", func(t *testing.T) {
		suite.mockService.EXPECT().
			Disband(testViewerID, int64(9)).
			Return(apperrors.ErrNotTeamManager).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/scrims/9", nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestListOpenScrims tests the ListOpenScrims handler
func (suite *ScrimHandlerTestSuite) TestListOpenScrims() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := []service.ScrimResponse{
			{ID: 1, HostTeamID: 4, Status: models.ScrimStatusOpen},
			{ID: 2, HostTeamID: 5, Status: models.ScrimStatusOpen},
		}

		suite.mockService.EXPECT().
			ListOpen(nil).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/scrims", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.ScrimResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
	})

	suite.T().Run("Filtered By Game", func(t *testing.T) {
		gameID := int64(2)
		suite.mockService.EXPECT().
			ListOpen(&gameID).
			Return([]service.ScrimResponse{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/scrims?game_id=2", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestScrimHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScrimHandlerTestSuite))
}
