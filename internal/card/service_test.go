// AngelaMos | 2026
// service_test.go

package card_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/bizcard-api/internal/authz"
	"github.com/carterperez-dev/bizcard-api/internal/card"
	"github.com/carterperez-dev/bizcard-api/internal/core"
)

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, c *card.Card) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCardRepository) GetByID(ctx context.Context, id string) (*card.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*card.Card), args.Error(1)
}

func (m *MockCardRepository) List(ctx context.Context) ([]card.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]card.Card), args.Error(1)
}

func (m *MockCardRepository) ListByOwner(ctx context.Context, ownerID string) ([]card.Card, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]card.Card), args.Error(1)
}

func (m *MockCardRepository) Update(ctx context.Context, c *card.Card) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCardRepository) UpdateLikes(ctx context.Context, id string, likes card.Likes) error {
	args := m.Called(ctx, id, likes)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storedCard(ownerID string) *card.Card {
	return &card.Card{
		ID:        "c1",
		Title:     "Plumbing",
		BizNumber: "1234567",
		Likes:     card.Likes{},
		UserID:    ownerID,
	}
}

func TestService_Create_SetsOwnerFromActor(t *testing.T) {
	mockRepo := new(MockCardRepository)
	svc := card.NewService(mockRepo, testLogger())

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*card.Card")).
		Return(nil).
		Once()

	actor := authz.Actor{ID: "u1", IsBusiness: true}
	c, err := svc.Create(context.Background(), actor, card.CreateCardRequest{
		Title:     "Plumbing",
		BizNumber: "1234567",
	})

	require.NoError(t, err)
	require.Equal(t, "u1", c.UserID)
	require.NotEmpty(t, c.ID)
	require.NotNil(t, c.Likes)
	require.Empty(t, c.Likes)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_BusinessNonOwnerDenied(t *testing.T) {
	mockRepo := new(MockCardRepository)
	svc := card.NewService(mockRepo, testLogger())

	mockRepo.On("GetByID", mock.Anything, "c1").
		Return(storedCard("owner"), nil).
		Once()

	actor := authz.Actor{ID: "intruder", IsBusiness: true}
	title := "Hijacked"
	_, err := svc.Update(context.Background(), actor, "c1", card.UpdateCardRequest{
		Title: &title,
	})

	require.ErrorIs(t, err, card.ErrNotAllowed)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_NonBusinessNonOwnerAllowed(t *testing.T) {
	mockRepo := new(MockCardRepository)
	svc := card.NewService(mockRepo, testLogger())

	mockRepo.On("GetByID", mock.Anything, "c1").
		Return(storedCard("owner"), nil).
		Once()
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*card.Card")).
		Return(nil).
		Once()

	actor := authz.Actor{ID: "someone-else", IsBusiness: false}
	title := "Renamed"
	c, err := svc.Update(context.Background(), actor, "c1", card.UpdateCardRequest{
		Title: &title,
	})

	require.NoError(t, err)
	require.Equal(t, "Renamed", c.Title)
	require.Equal(t, "owner", c.UserID)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_NotFoundBeforePolicy(t *testing.T) {
	mockRepo := new(MockCardRepository)
	svc := card.NewService(mockRepo, testLogger())

	mockRepo.On("GetByID", mock.Anything, "missing").
		Return(nil, core.ErrNotFound).
		Once()

	actor := authz.Actor{ID: "intruder", IsBusiness: true}
	title := "x"
	_, err := svc.Update(context.Background(), actor, "missing", card.UpdateCardRequest{
		Title: &title,
	})

	require.ErrorIs(t, err, core.ErrNotFound)
	require.NotErrorIs(t, err, card.ErrNotAllowed)
}

func TestService_ToggleLike_Involution(t *testing.T) {
	mockRepo := new(MockCardRepository)
	svc := card.NewService(mockRepo, testLogger())

	stored := storedCard("owner")
	mockRepo.On("GetByID", mock.Anything, "c1").
		Return(stored, nil).
		Twice()
	mockRepo.On("UpdateLikes", mock.Anything, "c1", mock.AnythingOfType("card.Likes")).
		Return(nil).
		Twice()

	actor := authz.Actor{ID: "fan"}

	c, err := svc.ToggleLike(context.Background(), actor, "c1")
	require.NoError(t, err)
	require.True(t, c.Likes.Contains("fan"))

	c, err = svc.ToggleLike(context.Background(), actor, "c1")
	require.NoError(t, err)
	require.False(t, c.Likes.Contains("fan"))
	require.Empty(t, c.Likes)
}

func TestService_ToggleLike_NoOwnershipCheck(t *testing.T) {
	mockRepo := new(MockCardRepository)
	svc := card.NewService(mockRepo, testLogger())

	mockRepo.On("GetByID", mock.Anything, "c1").
		Return(storedCard("owner"), nil).
		Once()
	mockRepo.On("UpdateLikes", mock.Anything, "c1", mock.Anything).
		Return(nil).
		Once()

	actor := authz.Actor{ID: "stranger", IsBusiness: true}
	c, err := svc.ToggleLike(context.Background(), actor, "c1")

	require.NoError(t, err)
	require.True(t, c.Likes.Contains("stranger"))
}

func TestService_PatchBizNumber_ChecksStoredValue(t *testing.T) {
	mockRepo := new(MockCardRepository)
	svc := card.NewService(mockRepo, testLogger())

	stored := storedCard("owner")
	mockRepo.On("GetByID", mock.Anything, "c1").
		Return(stored, nil).
		Once()
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*card.Card")).
		Return(nil).
		Once()

	// The stored value is numeric, so the patch goes through even though
	// the incoming value is not.
	c, err := svc.PatchBizNumber(context.Background(), "c1", "not-a-number")

	require.NoError(t, err)
	require.Equal(t, "not-a-number", c.BizNumber)
}

func TestService_PatchBizNumber_RejectsWhenStoredNotNumeric(t *testing.T) {
	mockRepo := new(MockCardRepository)
	svc := card.NewService(mockRepo, testLogger())

	stored := storedCard("owner")
	stored.BizNumber = "not-a-number"
	mockRepo.On("GetByID", mock.Anything, "c1").
		Return(stored, nil).
		Once()

	_, err := svc.PatchBizNumber(context.Background(), "c1", "7654321")

	require.ErrorIs(t, err, card.ErrBizNumberNotNumeric)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete_ReturnsDeletedRecord(t *testing.T) {
	mockRepo := new(MockCardRepository)
	svc := card.NewService(mockRepo, testLogger())

	mockRepo.On("GetByID", mock.Anything, "c1").
		Return(storedCard("owner"), nil).
		Once()
	mockRepo.On("Delete", mock.Anything, "c1").
		Return(nil).
		Once()

	actor := authz.Actor{ID: "owner", IsBusiness: true}
	c, err := svc.Delete(context.Background(), actor, "c1")

	require.NoError(t, err)
	require.Equal(t, "c1", c.ID)
	mockRepo.AssertExpectations(t)
}

func TestLikes_Toggle(t *testing.T) {
	likes := card.Likes{"a", "b"}

	toggled := likes.Toggle("c")
	require.ElementsMatch(t, card.Likes{"a", "b", "c"}, toggled)

	toggled = toggled.Toggle("c")
	require.ElementsMatch(t, card.Likes{"a", "b"}, toggled)

	toggled = toggled.Toggle("a")
	require.ElementsMatch(t, card.Likes{"b"}, toggled)
}
