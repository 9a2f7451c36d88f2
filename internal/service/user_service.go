package service

import (
	"context"
	"errors"
	"fmt"

	"dishcovery/internal/domain"
)

// UserService handles user lookup and the lazy get-or-create path used on
// a user's first authenticated action.
type UserService struct {
	store EntityStore
}

func NewUserService(store EntityStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.store.GetUser(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.store.ListUsers(ctx)
}

// Upsert inserts or overwrites a user. The username is derived from the id
// when not supplied.
func (s *UserService) Upsert(ctx context.Context, user *domain.User) error {
	if user.Username == "" && user.ID != "" {
		user.Username = deriveUsername(user.ID)
	}

	var missing []string
	if user.ID == "" {
		missing = append(missing, "id")
	}
	if user.Name == "" {
		missing = append(missing, "name")
	}
	if user.Username == "" {
		missing = append(missing, "username")
	}
	if err := domain.MissingFields(missing...); err != nil {
		return err
	}

	return s.store.UpsertUser(ctx, user)
}

// GetOrCreate resolves the user for an identity-provider subject id,
// creating a zero-variety record on first sight and refreshing the display
// name and avatar when the provider supplies new ones.
func (s *UserService) GetOrCreate(ctx context.Context, id, name, avatar string) (*domain.User, error) {
	if id == "" {
		return nil, domain.MissingFields("id")
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("resolve user: %w", err)
		}
		if name == "" {
			name = "User"
		}
		user = &domain.User{
			ID:       id,
			Name:     name,
			Username: deriveUsername(id),
			Avatar:   avatar,
		}
		if err := s.store.UpsertUser(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	changed := false
	if name != "" && name != user.Name {
		user.Name = name
		changed = true
	}
	if avatar != "" && avatar != user.Avatar {
		user.Avatar = avatar
		changed = true
	}
	if changed {
		if err := s.store.UpsertUser(ctx, user); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func deriveUsername(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return "@" + id
}
