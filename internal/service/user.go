package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/service/ports"
)

type UserService struct {
	repo        ports.UserRepo
	trialWindow time.Duration
}

func NewUserService(repo ports.UserRepo, trialWindow time.Duration) *UserService {
	return &UserService{
		repo:        repo,
		trialWindow: trialWindow,
	}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       input.Username,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// TrialStatus computes trial eligibility from the account creation
// timestamp. Nothing is persisted: the window is a config policy, so
// changing it applies to every account uniformly.
func (s *UserService) TrialStatus(ctx context.Context, userID string) (*domain.TrialStatus, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	endsAt := user.CreatedAt.Add(s.trialWindow)
	return &domain.TrialStatus{
		Active: time.Now().UTC().Before(endsAt),
		EndsAt: endsAt,
	}, nil
}
