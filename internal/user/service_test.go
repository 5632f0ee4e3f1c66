// AngelaMos | 2026
// service_test.go

package user_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/bizcard-api/internal/auth"
	"github.com/carterperez-dev/bizcard-api/internal/core"
	"github.com/carterperez-dev/bizcard-api/internal/notify"
	"github.com/carterperez-dev/bizcard-api/internal/user"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) SetBusinessStatus(ctx context.Context, id string, isBusiness bool) (*user.User, error) {
	args := m.Called(ctx, id, isBusiness)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) CreateToken(claims auth.Claims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Enqueue(ctx context.Context, msg notify.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func registerRequest() user.RegisterRequest {
	return user.RegisterRequest{
		Name:     user.NamePayload{First: "Ada", Last: "Lovelace"},
		Email:    "Ada@Example.com",
		Password: "Abc123!def",
		Phone:    "050-1234567",
	}
}

func TestService_Register_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockNotifier := new(MockNotifier)
	svc := user.NewService(mockRepo, nil, mockNotifier, testLogger())

	mockRepo.On("ExistsByEmail", mock.Anything, "ada@example.com").
		Return(false, nil).
		Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
		Return(nil).
		Once()
	mockNotifier.On("Enqueue", mock.Anything, mock.AnythingOfType("notify.Message")).
		Return(nil).
		Once()

	u, err := svc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	require.Equal(t, "ada@example.com", u.Email)
	require.NotEmpty(t, u.ID)
	require.NotEqual(t, "Abc123!def", u.PasswordHash)
	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := user.NewService(mockRepo, nil, nil, testLogger())

	mockRepo.On("ExistsByEmail", mock.Anything, "ada@example.com").
		Return(true, nil).
		Once()

	_, err := svc.Register(context.Background(), registerRequest())

	require.ErrorIs(t, err, user.ErrEmailExists)
	require.EqualError(t, user.ErrEmailExists, "user already exists")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_MailFailureDoesNotFailRegistration(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockNotifier := new(MockNotifier)
	svc := user.NewService(mockRepo, nil, mockNotifier, testLogger())

	mockRepo.On("ExistsByEmail", mock.Anything, mock.Anything).
		Return(false, nil).
		Once()
	mockRepo.On("Create", mock.Anything, mock.Anything).
		Return(nil).
		Once()
	mockNotifier.On("Enqueue", mock.Anything, mock.Anything).
		Return(context.DeadlineExceeded).
		Once()

	_, err := svc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
}

func TestService_Login_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockTokens := new(MockTokenIssuer)
	mockNotifier := new(MockNotifier)
	svc := user.NewService(mockRepo, mockTokens, mockNotifier, testLogger())

	hash, err := core.HashPassword("Abc123!def")
	require.NoError(t, err)

	stored := &user.User{
		ID:           "u1",
		Email:        "ada@example.com",
		PasswordHash: hash,
		IsBusiness:   true,
	}

	mockRepo.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(stored, nil).
		Once()
	mockTokens.On("CreateToken", auth.Claims{
		UserID:     "u1",
		IsAdmin:    false,
		IsBusiness: true,
	}).Return("signed-token", nil).Once()
	mockNotifier.On("Enqueue", mock.Anything, mock.Anything).
		Return(nil).
		Once()

	token, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "Ada@Example.com",
		Password: "Abc123!def",
	})

	require.NoError(t, err)
	require.Equal(t, "signed-token", token)
	mockTokens.AssertExpectations(t)
}

func TestService_Login_SameErrorForUnknownEmailAndBadPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := user.NewService(mockRepo, nil, nil, testLogger())

	hash, err := core.HashPassword("Abc123!def")
	require.NoError(t, err)

	mockRepo.On("GetByEmail", mock.Anything, "unknown@example.com").
		Return(nil, core.ErrNotFound).
		Once()
	mockRepo.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(&user.User{ID: "u1", PasswordHash: hash}, nil).
		Once()

	_, errUnknown := svc.Login(context.Background(), user.LoginRequest{
		Email:    "unknown@example.com",
		Password: "whatever",
	})
	_, errWrongPass := svc.Login(context.Background(), user.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})

	require.ErrorIs(t, errUnknown, user.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPass, user.ErrInvalidCredentials)
	require.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestService_Update_PatchesOnlyProvidedFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := user.NewService(mockRepo, nil, nil, testLogger())

	stored := &user.User{
		ID:        "u1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "050-1234567",
		City:      "London",
	}

	mockRepo.On("GetByID", mock.Anything, "u1").
		Return(stored, nil).
		Once()
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*user.User")).
		Return(nil).
		Once()

	phone := "052-7654321"
	u, err := svc.Update(context.Background(), "u1", user.UpdateUserRequest{
		Phone: &phone,
	})

	require.NoError(t, err)
	require.Equal(t, "052-7654321", u.Phone)
	require.Equal(t, "Ada", u.FirstName)
	require.Equal(t, "London", u.City)
}

func TestToUserResponse_OmitsPasswordHash(t *testing.T) {
	u := &user.User{
		ID:           "u1",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "secret-hash",
	}

	resp := user.ToUserResponse(u)

	require.Equal(t, "u1", resp.ID)
	require.Equal(t, "ada@example.com", resp.Email)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	require.NotContains(t, string(body), "secret-hash")
	require.NotContains(t, string(body), "password")
}
