package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"legal-workspace-backend/internal/api/handlers"
	"legal-workspace-backend/internal/database/models"
	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/mocks"
	"legal-workspace-backend/internal/service"
	"legal-workspace-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// InviteHandlerTestSuite defines the test suite for InviteHandler
type InviteHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockInvite *mocks.MockInviteServiceInterface
	mockSeat   *mocks.MockSeatServiceInterface
	http       *testutils.HTTPTestSuite
	ownerID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *InviteHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInvite = mocks.NewMockInviteServiceInterface(suite.ctrl)
	suite.mockSeat = mocks.NewMockSeatServiceInterface(suite.ctrl)
	suite.ownerID = uuid.New()

	handler := handlers.NewInviteHandler(suite.mockInvite, suite.mockSeat)
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/accept-invite", handler.AcceptInvite)
	authed := suite.http.Router.Group("/", authenticateAs(suite.ownerID, models.RoleOwner))
	authed.POST("/send-invite", handler.SendInvite)
	authed.GET("/all-invites", handler.ListSentInvites)
	authed.DELETE("/invite/:inviteId", handler.RevokeInvite)
	authed.GET("/seat-usage", handler.SeatUsage)
}

// TearDownTest cleans up after each test
func (suite *InviteHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSendInvite tests the created response
func (suite *InviteHandlerTestSuite) TestSendInvite() {
	resp := &service.SendInviteResponse{
		Message:   "Invite sent successfully",
		InviteID:  uuid.New(),
		Email:     "associate@lawfirm.com",
		ExpiresAt: time.Now().Add(24 * time.Hour),
		EmailSent: true,
	}
	suite.mockInvite.EXPECT().
		SendInvite(gomock.Any(), suite.ownerID, &service.SendInviteRequest{Email: "associate@lawfirm.com"}).
		Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/send-invite", map[string]string{"email": "associate@lawfirm.com"})

	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal(resp.InviteID.String(), got["invite_id"])
	suite.Equal(true, got["email_sent"])
}

// TestSendInviteErrors tests how service errors reach the client
func (suite *InviteHandlerTestSuite) TestSendInviteErrors() {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"seat limit", apperrors.NewCapacityExceededError(5), http.StatusForbidden, "Seat limit reached (5 users)"},
		{"existing user", apperrors.ErrUserExists, http.StatusConflict, "user already exists"},
		{"pending invite", apperrors.ErrPendingInviteExists, http.StatusConflict, "pending invite already exists"},
		{"no workspace", apperrors.ErrNoOwnedWorkspace, http.StatusBadRequest, "No workspaces found for admin"},
		{"store failure", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockInvite.EXPECT().SendInvite(gomock.Any(), suite.ownerID, gomock.Any()).Return(nil, tt.err)

			w := suite.http.MakeRequest(http.MethodPost, "/send-invite", map[string]string{"email": "a@b.com"})

			testutils.AssertErrorResponse(suite.T(), w, tt.status, tt.message)
			suite.NotContains(w.Body.String(), "pq:")
		})
	}
}

// TestSendInviteMalformedBody tests that a broken body never reaches the service
func (suite *InviteHandlerTestSuite) TestSendInviteMalformedBody() {
	w := suite.http.MakeRequest(http.MethodPost, "/send-invite", "not-an-object")

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid request body")
}

// TestAcceptInvite tests the public acceptance endpoint
func (suite *InviteHandlerTestSuite) TestAcceptInvite() {
	suite.Run("success", func() {
		userID := uuid.New()
		suite.mockInvite.EXPECT().
			AcceptInvite(gomock.Any(), &service.AcceptInviteRequest{Token: "tok", Password: "s3cretpass"}).
			Return(&service.AcceptInviteResponse{Message: "Account created successfully", UserID: userID}, nil)

		w := suite.http.MakeRequest(http.MethodPost, "/accept-invite", map[string]string{"token": "tok", "password": "s3cretpass"})

		var got map[string]interface{}
		testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
		suite.Equal(userID.String(), got["user_id"])
	})

	suite.Run("used or expired", func() {
		suite.mockInvite.EXPECT().AcceptInvite(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidOrExpiredInvite)

		w := suite.http.MakeRequest(http.MethodPost, "/accept-invite", map[string]string{"token": "tok", "password": "s3cretpass"})

		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid or expired invite")
	})
}

// TestListSentInvites tests listing
func (suite *InviteHandlerTestSuite) TestListSentInvites() {
	suite.mockInvite.EXPECT().ListSentInvites(gomock.Any(), suite.ownerID).Return([]service.InviteResponse{
		{ID: uuid.New(), Email: "a@b.com", Status: models.InviteStatusPending},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/all-invites", nil)

	var got []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Require().Len(got, 1)
	suite.Equal(string(models.InviteStatusPending), got[0]["status"])
}

// TestRevokeInvite tests path parsing and the not-found mapping
func (suite *InviteHandlerTestSuite) TestRevokeInvite() {
	inviteID := uuid.New()

	suite.Run("success", func() {
		suite.mockInvite.EXPECT().RevokeInvite(gomock.Any(), inviteID, suite.ownerID).Return(nil)

		w := suite.http.MakeRequest(http.MethodDelete, "/invite/"+inviteID.String(), nil)
		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("not the sender", func() {
		suite.mockInvite.EXPECT().RevokeInvite(gomock.Any(), inviteID, suite.ownerID).Return(apperrors.ErrInviteNotFound)

		w := suite.http.MakeRequest(http.MethodDelete, "/invite/"+inviteID.String(), nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "invite not found")
	})

	suite.Run("malformed id", func() {
		w := suite.http.MakeRequest(http.MethodDelete, "/invite/42", nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid invite ID")
	})
}

// TestSeatUsage tests the seat usage endpoint
func (suite *InviteHandlerTestSuite) TestSeatUsage() {
	suite.mockSeat.EXPECT().ComputeSeatUsage(gomock.Any(), suite.ownerID).Return(&service.SeatUsageResponse{
		SeatLimit: 5, Used: 3, Members: 1, Pending: 2, Available: 2,
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/seat-usage", nil)

	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(float64(5), got["seat_limit"])
	suite.Equal(float64(3), got["used"])
}

// TestInviteHandlerTestSuite runs the test suite
func TestInviteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InviteHandlerTestSuite))
}
