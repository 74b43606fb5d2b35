package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-manager/internal/data/entity"
	"hotel-manager/internal/data/repository"
	"hotel-manager/internal/dto/request"
	"hotel-manager/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	items map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.items[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.items[id], nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.items {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.items {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.items[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role entity.UserRole) (int64, error) {
	var count int64
	for _, user := range f.items {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) ChangePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if user, ok := f.items[id]; ok {
		user.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	if user, ok := f.items[id]; ok {
		now := time.Now()
		user.LastLogin = &now
	}
	return nil
}

func (f *fakeUserRepo) UpdateSecurityQuestion(_ context.Context, id uuid.UUID, question, answerHash string) error {
	if user, ok := f.items[id]; ok {
		user.SecurityQuestion = &question
		user.SecurityAnswerHash = &answerHash
	}
	return nil
}

func (f *fakeUserRepo) SetRecoveryToken(_ context.Context, id uuid.UUID, token string, expires time.Time) error {
	if user, ok := f.items[id]; ok {
		user.RecoveryToken = &token
		user.RecoveryTokenExpires = &expires
	}
	return nil
}

func (f *fakeUserRepo) FindByValidRecoveryToken(_ context.Context, token string) (*entity.User, error) {
	for _, user := range f.items {
		if user.RecoveryToken != nil && *user.RecoveryToken == token &&
			user.RecoveryTokenExpires != nil && user.RecoveryTokenExpires.After(time.Now()) {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ClearRecoveryToken(_ context.Context, id uuid.UUID) error {
	if user, ok := f.items[id]; ok {
		user.RecoveryToken = nil
		user.RecoveryTokenExpires = nil
	}
	return nil
}

type fakeSessionRepo struct {
	items map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{items: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.items[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	for _, session := range f.items {
		if session.Token.String() == token && session.RevokedAt == nil && session.ExpiresAt.After(time.Now()) {
			return session, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	for _, session := range f.items {
		if session.Token.String() == token {
			now := time.Now()
			session.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	for _, session := range f.items {
		if session.UserID == userID && session.RevokedAt == nil {
			now := time.Now()
			session.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(_ context.Context) error {
	return nil
}

type authFixture struct {
	svc      AuthService
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	user     *entity.User
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()

	hash, err := utils.HashPassword("reception123")
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Username:     "front.desk",
		PasswordHash: hash,
		Email:        "front.desk@example.com",
		FirstName:    "Front",
		LastName:     "Desk",
		Role:         entity.RoleReceptionist,
		IsActive:     true,
	}
	users.items[user.ID] = user

	repo := &repository.Repository{
		User:    users,
		Session: sessions,
	}

	config := &utils.Config{
		Session:  utils.SessionConfig{ExpiryHours: 12},
		Recovery: utils.RecoveryConfig{TokenExpiryHours: 24},
	}

	log := zap.NewNop()
	return &authFixture{
		svc:      NewAuthService(repo, NewActivityService(&fakeActivityRepo{}, log), config, log),
		users:    users,
		sessions: sessions,
		user:     user,
	}
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)

	auth, err := f.svc.Login(context.Background(), &request.LoginRequest{
		Username: "front.desk",
		Password: "reception123",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "front.desk", auth.User.Username)
	assert.NotNil(t, f.user.LastLogin)
	assert.Len(t, f.sessions.items, 1)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), &request.LoginRequest{
		Username: "front.desk",
		Password: "wrong-password",
	}, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "reception123",
	}, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	f := newAuthFixture(t)
	f.user.IsActive = false

	_, err := f.svc.Login(context.Background(), &request.LoginRequest{
		Username: "front.desk",
		Password: "reception123",
	}, "", "")
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestLogoutRevokesSession(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	auth, err := f.svc.Login(ctx, &request.LoginRequest{
		Username: "front.desk",
		Password: "reception123",
	}, "", "")
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, auth.Token))

	session, err := f.sessions.FindValidSession(ctx, auth.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestChangePasswordRevokesOtherSessions(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	auth, err := f.svc.Login(ctx, &request.LoginRequest{
		Username: "front.desk",
		Password: "reception123",
	}, "", "")
	require.NoError(t, err)

	err = f.svc.ChangePassword(ctx, f.user.ID.String(), &request.ChangePasswordRequest{
		CurrentPassword: "reception123",
		NewPassword:     "reception456",
	})
	require.NoError(t, err)

	session, err := f.sessions.FindValidSession(ctx, auth.Token)
	require.NoError(t, err)
	assert.Nil(t, session)

	_, err = f.svc.Login(ctx, &request.LoginRequest{
		Username: "front.desk",
		Password: "reception456",
	}, "", "")
	require.NoError(t, err)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.ChangePassword(context.Background(), f.user.ID.String(), &request.ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "reception456",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordRecoveryFlow(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	err := f.svc.SetSecurityQuestion(ctx, f.user.ID.String(), &request.SetSecurityQuestionRequest{
		Question: "First pet's name?",
		Answer:   "Biscuit",
	})
	require.NoError(t, err)

	question, err := f.svc.GetSecurityQuestion(ctx, "front.desk")
	require.NoError(t, err)
	assert.Equal(t, "First pet's name?", question.Question)

	// Casing and padding of the answer do not matter.
	token, err := f.svc.RequestRecoveryToken(ctx, &request.RequestRecoveryTokenRequest{
		Username:       "front.desk",
		SecurityAnswer: "  BISCUIT ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	err = f.svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		Token:       token.Token,
		NewPassword: "fresh-password",
	})
	require.NoError(t, err)

	// Token is single-use.
	err = f.svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		Token:       token.Token,
		NewPassword: "another-password",
	})
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.svc.Login(ctx, &request.LoginRequest{
		Username: "front.desk",
		Password: "fresh-password",
	}, "", "")
	require.NoError(t, err)
}

func TestRecoveryTokenWrongAnswer(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	err := f.svc.SetSecurityQuestion(ctx, f.user.ID.String(), &request.SetSecurityQuestionRequest{
		Question: "First pet's name?",
		Answer:   "Biscuit",
	})
	require.NoError(t, err)

	_, err = f.svc.RequestRecoveryToken(ctx, &request.RequestRecoveryTokenRequest{
		Username:       "front.desk",
		SecurityAnswer: "Rex",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	f := newAuthFixture(t)

	token := "deadbeef"
	expired := time.Now().Add(-time.Hour)
	f.user.RecoveryToken = &token
	f.user.RecoveryTokenExpires = &expired

	err := f.svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:       token,
		NewPassword: "fresh-password",
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegisterUser(t *testing.T) {
	f := newAuthFixture(t)

	user, err := f.svc.RegisterUser(context.Background(), &request.RegisterUserRequest{
		Username:  "manager.one",
		Password:  "manager123",
		Email:     "manager.one@example.com",
		FirstName: "Maria",
		LastName:  "Gomez",
		Role:      "MANAGER",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleManager, user.Role)
	assert.True(t, user.IsActive)
	assert.Len(t, f.users.items, 2)
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.RegisterUser(context.Background(), &request.RegisterUserRequest{
		Username:  "front.desk",
		Password:  "manager123",
		Email:     "other@example.com",
		FirstName: "Maria",
		LastName:  "Gomez",
		Role:      "MANAGER",
	})
	assert.ErrorIs(t, err, ErrValidation)
}
