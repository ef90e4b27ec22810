package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"legal-workspace-backend/internal/database/models"
	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/mocks"
	"legal-workspace-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AccountServiceTestSuite defines the test suite for AccountService
type AccountServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mocks          *repoMocks
	mockHasher     *mocks.MockPasswordHasher
	mockIssuer     *mocks.MockTokenIssuer
	mockTokens     *mocks.MockTokenGenerator
	mockMailer     *mocks.MockMailer
	mockStore      *mocks.MockObjectStore
	accountService *service.AccountService
	ctx            context.Context
}

// SetupTest sets up the test suite
func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mocks = newRepoMocks(suite.ctrl)
	suite.mockHasher = mocks.NewMockPasswordHasher(suite.ctrl)
	suite.mockIssuer = mocks.NewMockTokenIssuer(suite.ctrl)
	suite.mockTokens = mocks.NewMockTokenGenerator(suite.ctrl)
	suite.mockMailer = mocks.NewMockMailer(suite.ctrl)
	suite.mockStore = mocks.NewMockObjectStore(suite.ctrl)
	suite.accountService = service.NewAccountService(
		suite.mocks.repos,
		suite.mocks.tx,
		suite.mockHasher,
		suite.mockIssuer,
		suite.mockTokens,
		suite.mockMailer,
		suite.mockStore,
		service.NewValidator(),
		service.AccountConfig{
			DefaultSeatLimit: 5,
			PasswordResetTTL: 15 * time.Minute,
			SignedURLTTL:     time.Hour,
			FrontendURL:      "http://localhost:5173",
		},
	)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateAdmin tests owner bootstrap with a default workspace
func (suite *AccountServiceTestSuite) TestCreateAdmin() {
	ownerID, wsID := uuid.New(), uuid.New()

	suite.mockHasher.EXPECT().Hash("correct-horse").Return("hashed", nil)
	suite.mocks.expectTransaction()
	suite.mocks.users.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) error {
			suite.Equal("partner@firm.com", user.Email)
			suite.Equal(models.RoleOwner, user.Role)
			suite.Equal(5, user.SeatLimit)
			suite.Equal("hashed", user.PasswordHash)
			user.ID = ownerID
			return nil
		})
	suite.mocks.workspaces.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ws *models.Workspace) error {
			suite.Equal(ownerID, ws.OwnerID)
			suite.True(ws.IsDefault)
			suite.Equal(models.DefaultWorkspaceName, ws.Name)
			ws.ID = wsID
			return nil
		})
	suite.mocks.memberships.EXPECT().Link(suite.ctx, ownerID, wsID).Return(nil)
	suite.mockIssuer.EXPECT().Issue(ownerID, models.RoleOwner, &wsID).Return("jwt", nil)

	resp, err := suite.accountService.CreateAdmin(suite.ctx, &service.CreateAdminRequest{Email: "Partner@Firm.com", Password: "correct-horse"})

	suite.Require().NoError(err)
	suite.Equal("jwt", resp.Token)
	suite.Equal(ownerID, resp.User.ID)
	suite.Equal(5, resp.User.SeatLimit)
}

// TestCreateAdminDuplicateEmail tests that no token is issued for a taken email
func (suite *AccountServiceTestSuite) TestCreateAdminDuplicateEmail() {
	suite.mockHasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	suite.mocks.expectTransaction()
	suite.mocks.users.EXPECT().Create(suite.ctx, gomock.Any()).Return(apperrors.ErrUserExists)

	_, err := suite.accountService.CreateAdmin(suite.ctx, &service.CreateAdminRequest{Email: "partner@firm.com", Password: "correct-horse"})

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestLogin tests credential checks and the workspace carried in the token
func (suite *AccountServiceTestSuite) TestLogin() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@firm.com", PasswordHash: "hash", Role: models.RoleMember}
	wsID := uuid.New()

	suite.Run("success", func() {
		suite.mocks.users.EXPECT().GetByEmail(suite.ctx, "a@firm.com").Return(user, nil)
		suite.mockHasher.EXPECT().Compare("hash", "pw").Return(true, nil)
		suite.mocks.memberships.EXPECT().FirstWorkspaceID(suite.ctx, user.ID).Return(&wsID, nil)
		suite.mockIssuer.EXPECT().Issue(user.ID, models.RoleMember, &wsID).Return("jwt", nil)

		resp, err := suite.accountService.Login(suite.ctx, &service.LoginRequest{Email: "A@firm.com", Password: "pw"})
		suite.Require().NoError(err)
		suite.Equal("jwt", resp.Token)
		suite.Equal(0, resp.User.SeatLimit)
	})

	suite.Run("unknown email", func() {
		suite.mocks.users.EXPECT().GetByEmail(suite.ctx, "ghost@firm.com").Return(nil, apperrors.ErrUserNotFound)

		_, err := suite.accountService.Login(suite.ctx, &service.LoginRequest{Email: "ghost@firm.com", Password: "pw"})
		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("wrong password", func() {
		suite.mocks.users.EXPECT().GetByEmail(suite.ctx, "a@firm.com").Return(user, nil)
		suite.mockHasher.EXPECT().Compare("hash", "nope").Return(false, nil)

		_, err := suite.accountService.Login(suite.ctx, &service.LoginRequest{Email: "a@firm.com", Password: "nope"})
		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
		suite.True(apperrors.IsAuthentication(err))
	})
}

// TestRequestPasswordReset tests known and unknown addresses and delivery failures
func (suite *AccountServiceTestSuite) TestRequestPasswordReset() {
	suite.Run("unknown email is silent", func() {
		suite.mocks.users.EXPECT().ExistsByEmail(suite.ctx, "ghost@firm.com").Return(false, nil)

		suite.NoError(suite.accountService.RequestPasswordReset(suite.ctx, &service.RequestPasswordResetRequest{Email: "ghost@firm.com"}))
	})

	suite.Run("known email", func() {
		suite.mocks.users.EXPECT().ExistsByEmail(suite.ctx, "a@firm.com").Return(true, nil)
		suite.mockTokens.EXPECT().Generate().Return("reset-tok", nil)
		suite.mocks.passwordResets.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, reset *models.PasswordReset) error {
				suite.Equal("a@firm.com", reset.Email)
				suite.Equal("reset-tok", reset.Token)
				suite.WithinDuration(time.Now().Add(15*time.Minute), reset.ExpiresAt, time.Minute)
				return nil
			})
		suite.mockMailer.EXPECT().SendPasswordResetEmail(suite.ctx, "a@firm.com", "http://localhost:5173/reset-password?token=reset-tok").Return(nil)

		suite.NoError(suite.accountService.RequestPasswordReset(suite.ctx, &service.RequestPasswordResetRequest{Email: "a@firm.com"}))
	})

	suite.Run("delivery failure propagates", func() {
		mailErr := errors.New("smtp down")
		suite.mocks.users.EXPECT().ExistsByEmail(suite.ctx, "a@firm.com").Return(true, nil)
		suite.mockTokens.EXPECT().Generate().Return("reset-tok", nil)
		suite.mocks.passwordResets.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)
		suite.mockMailer.EXPECT().SendPasswordResetEmail(suite.ctx, "a@firm.com", gomock.Any()).Return(mailErr)

		err := suite.accountService.RequestPasswordReset(suite.ctx, &service.RequestPasswordResetRequest{Email: "a@firm.com"})
		suite.ErrorIs(err, mailErr)
	})
}

// TestResetPassword tests token consumption
func (suite *AccountServiceTestSuite) TestResetPassword() {
	suite.Run("invalid token", func() {
		suite.mockHasher.EXPECT().Hash("new-password").Return("hashed", nil)
		suite.mocks.expectTransaction()
		suite.mocks.passwordResets.EXPECT().LockActiveByToken(suite.ctx, "bad", gomock.Any()).Return(nil, apperrors.ErrInvalidOrExpiredResetToken)

		err := suite.accountService.ResetPassword(suite.ctx, &service.ResetPasswordRequest{Token: "bad", NewPassword: "new-password"})
		suite.ErrorIs(err, apperrors.ErrInvalidOrExpiredResetToken)
	})

	suite.Run("success", func() {
		reset := &models.PasswordReset{RecordModel: models.RecordModel{ID: uuid.New()}, Email: "a@firm.com"}
		suite.mockHasher.EXPECT().Hash("new-password").Return("hashed", nil)
		suite.mocks.expectTransaction()
		suite.mocks.passwordResets.EXPECT().LockActiveByToken(suite.ctx, "good", gomock.Any()).Return(reset, nil)
		suite.mocks.users.EXPECT().UpdatePasswordHashByEmail(suite.ctx, "a@firm.com", "hashed").Return(nil)
		suite.mocks.passwordResets.EXPECT().MarkUsed(suite.ctx, reset.ID).Return(nil)

		suite.NoError(suite.accountService.ResetPassword(suite.ctx, &service.ResetPasswordRequest{Token: "good", NewPassword: "new-password"}))
	})
}

// TestGetUserSignsPicture tests the profile picture URL
func (suite *AccountServiceTestSuite) TestGetUserSignsPicture() {
	key := "profile-images/x.png"
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@firm.com", Role: models.RoleMember, ProfilePicture: &key}
	suite.mocks.users.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)
	suite.mockStore.EXPECT().PresignGet(key, time.Hour).Return("https://signed", nil)

	resp, err := suite.accountService.GetUser(suite.ctx, user.ID)

	suite.Require().NoError(err)
	suite.Equal("https://signed", resp.ProfilePictureURL)
}

// TestUpdateProfileWithPicture tests storing a new picture and removing the old one
func (suite *AccountServiceTestSuite) TestUpdateProfileWithPicture() {
	oldKey := "profile-images/old.png"
	userID := uuid.New()
	name := " Ada "
	current := &models.User{BaseModel: models.BaseModel{ID: userID}, ProfilePicture: &oldKey}

	var storedKey string
	suite.mocks.users.EXPECT().GetByID(suite.ctx, userID).Return(current, nil)
	suite.mockStore.EXPECT().Put(suite.ctx, gomock.Any(), "image/png", []byte("png")).DoAndReturn(
		func(_ context.Context, key, _ string, _ []byte) error {
			storedKey = key
			return nil
		})
	suite.mocks.users.EXPECT().UpdateProfile(suite.ctx, userID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, n, pic *string) (*models.User, error) {
			suite.Equal("Ada", *n)
			suite.Equal(storedKey, *pic)
			return &models.User{BaseModel: models.BaseModel{ID: userID}, Name: n, ProfilePicture: pic}, nil
		})
	suite.mockStore.EXPECT().Delete(gomock.Any(), oldKey).Return(nil)
	suite.mockStore.EXPECT().PresignGet(gomock.Any(), time.Hour).Return("https://signed", nil)

	resp, err := suite.accountService.UpdateProfile(suite.ctx, userID, &service.UpdateProfileRequest{
		Name:    &name,
		Picture: &service.UploadFile{Filename: "me.PNG", Data: []byte("png")},
	})

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(storedKey, "profile-images/"+userID.String()+"/"))
	suite.True(strings.HasSuffix(storedKey, "_me.PNG"))
	suite.Equal("Ada", *resp.Name)
}

// TestUpdateProfileRejectsNonImage tests the picture type check
func (suite *AccountServiceTestSuite) TestUpdateProfileRejectsNonImage() {
	userID := uuid.New()
	suite.mocks.users.EXPECT().GetByID(suite.ctx, userID).Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil)

	_, err := suite.accountService.UpdateProfile(suite.ctx, userID, &service.UpdateProfileRequest{
		Picture: &service.UploadFile{Filename: "script.sh", Data: []byte("#!")},
	})

	suite.True(apperrors.IsValidation(err))
}

// TestDeleteUserAuthorization tests who may delete whom
func (suite *AccountServiceTestSuite) TestDeleteUserAuthorization() {
	target, requester := uuid.New(), uuid.New()

	suite.Run("member deleting someone else", func() {
		err := suite.accountService.DeleteUser(suite.ctx, target, requester, models.RoleMember)
		suite.ErrorIs(err, apperrors.ErrUserDeleteForbidden)
	})

	suite.Run("owner deleting a stranger", func() {
		suite.mocks.memberships.EXPECT().IsMemberOfOwner(suite.ctx, target, requester).Return(false, nil)

		err := suite.accountService.DeleteUser(suite.ctx, target, requester, models.RoleOwner)
		suite.ErrorIs(err, apperrors.ErrUserDeleteForbidden)
		suite.True(apperrors.IsAuthorization(err))
	})
}

// TestDeleteUserCascade tests the delete order for an owner removing their own account
func (suite *AccountServiceTestSuite) TestDeleteUserCascade() {
	pic := "profile-images/me.png"
	owner := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "owner@firm.com", Role: models.RoleOwner, ProfilePicture: &pic}
	wsID := uuid.New()

	suite.mocks.expectTransaction()
	gomock.InOrder(
		suite.mocks.users.EXPECT().GetByID(suite.ctx, owner.ID).Return(owner, nil),
		suite.mocks.workspaces.EXPECT().ListOwned(suite.ctx, owner.ID).Return([]models.Workspace{{BaseModel: models.BaseModel{ID: wsID}}}, nil),
		suite.mocks.documents.EXPECT().ListByWorkspace(suite.ctx, wsID).Return([]models.Document{{S3KeyOriginal: "doc-key"}}, nil),
		suite.mocks.documents.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil),
		suite.mocks.followedCases.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil),
		suite.mocks.extractions.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil),
		suite.mocks.memberships.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil),
		suite.mocks.invites.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil),
		suite.mocks.workspaces.EXPECT().Delete(suite.ctx, wsID).Return(nil),
		suite.mocks.memberships.EXPECT().DeleteByUser(suite.ctx, owner.ID).Return(nil),
		suite.mocks.invites.EXPECT().DeleteByEmail(suite.ctx, owner.Email).Return(nil),
		suite.mocks.invites.EXPECT().DeleteAllSentBy(suite.ctx, owner.ID).Return(nil),
		suite.mocks.passwordResets.EXPECT().DeleteByEmail(suite.ctx, owner.Email).Return(nil),
		suite.mocks.users.EXPECT().Delete(suite.ctx, owner.ID).Return(nil),
	)
	suite.mockStore.EXPECT().Delete(gomock.Any(), "doc-key").Return(nil)
	suite.mockStore.EXPECT().Delete(gomock.Any(), pic).Return(nil)

	suite.NoError(suite.accountService.DeleteUser(suite.ctx, owner.ID, owner.ID, models.RoleOwner))
}

// TestDeleteUserByOwner tests an owner removing a member of their workspaces
func (suite *AccountServiceTestSuite) TestDeleteUserByOwner() {
	ownerID := uuid.New()
	member := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "m@firm.com", Role: models.RoleMember}

	suite.mocks.memberships.EXPECT().IsMemberOfOwner(suite.ctx, member.ID, ownerID).Return(true, nil)
	suite.mocks.expectTransaction()
	suite.mocks.users.EXPECT().GetByID(suite.ctx, member.ID).Return(member, nil)
	suite.mocks.workspaces.EXPECT().ListOwned(suite.ctx, member.ID).Return(nil, nil)
	suite.mocks.memberships.EXPECT().DeleteByUser(suite.ctx, member.ID).Return(nil)
	suite.mocks.invites.EXPECT().DeleteByEmail(suite.ctx, member.Email).Return(nil)
	suite.mocks.invites.EXPECT().DeleteAllSentBy(suite.ctx, member.ID).Return(nil)
	suite.mocks.passwordResets.EXPECT().DeleteByEmail(suite.ctx, member.Email).Return(nil)
	suite.mocks.users.EXPECT().Delete(suite.ctx, member.ID).Return(nil)

	suite.NoError(suite.accountService.DeleteUser(suite.ctx, member.ID, ownerID, models.RoleOwner))
}

// TestAccountServiceTestSuite runs the test suite
func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
