package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, username, password string) (int, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	hasher    Hasher
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, hasher Hasher, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		hasher:    hasher,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (int, error) {
	if err := s.validator.ValidateRegister(username, password); err != nil {
		s.log.Debug("validation failed", "username", username, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return 0, ErrTaken
	} else if !errors.Is(err, ErrNotFound) {
		return 0, fmt.Errorf("check username: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.repo.Create(ctx, username, hash)
	if err != nil {
		s.log.Error("failed to create user", "username", username, "error", err)
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", userID, "username", username)
	return userID, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	if err := s.validator.ValidateUsername(username); err != nil {
		return User{}, ErrInvalidAuth
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return User{}, ErrInvalidAuth
	}

	if err := s.hasher.Compare(u.Password, password); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}
