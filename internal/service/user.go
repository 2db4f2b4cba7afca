package service

import (
	"context"
	"fmt"
	"log/slog"

	"basegraph.app/taskhub/common/logger"
	"basegraph.app/taskhub/internal/model"
	"basegraph.app/taskhub/internal/queue"
	"basegraph.app/taskhub/internal/validation"
)

type UserService interface {
	Create(ctx context.Context, name, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	sessions SessionRunner
	events   queue.Producer
}

func NewUserService(sessions SessionRunner, events queue.Producer) UserService {
	return &userService{
		sessions: sessions,
		events:   events,
	}
}

func (s *userService) Create(ctx context.Context, name, email string) (*model.User, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "taskhub.service.user"})

	in, err := validation.User(name, email)
	if err != nil {
		return nil, err
	}

	user := &model.User{Name: in.Name, Email: in.Email}
	err = s.sessions.WithSession(ctx, func(stores StoreProvider) error {
		return stores.Users().Create(ctx, user)
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create user",
			"error", err,
			"email", in.Email,
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	slog.InfoContext(ctx, "user created", "user_id", user.ID)
	publish(ctx, s.events, queue.Event{Type: queue.EventTypeUserCreated, UserID: &user.ID})
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.sessions.WithSession(ctx, func(stores StoreProvider) error {
		var err error
		users, err = stores.Users().List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}
