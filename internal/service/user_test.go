package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/service/ports/mocks"
)

const testTrialWindow = 14 * 24 * time.Hour

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrialWindow)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "alice"})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserService_Create_RequiresUsername(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrialWindow)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrialWindow)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "taken"})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_TrialStatus_Active(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrialWindow)

	created := time.Now().UTC().Add(-7 * 24 * time.Hour)
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", CreatedAt: created}, nil)

	status, err := svc.TrialStatus(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, status.Active)
	assert.Equal(t, created.Add(testTrialWindow), status.EndsAt)
}

func TestUserService_TrialStatus_Expired(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrialWindow)

	created := time.Now().UTC().Add(-15 * 24 * time.Hour)
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", CreatedAt: created}, nil)

	status, err := svc.TrialStatus(context.Background(), "u1")

	require.NoError(t, err)
	assert.False(t, status.Active)
}

func TestUserService_TrialStatus_UserNotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrialWindow)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.TrialStatus(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
