package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"dishcovery/internal/domain"
)

// PostgresStore talks to Postgres over database/sql with lib/pq.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	var dish domain.Dish
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, name, restaurant, COALESCE(location, ''), category, COALESCE(description, ''), created_at
		FROM dishes WHERE id = $1
	`, id).Scan(&dish.ID, &dish.Name, &dish.Restaurant, &dish.Location, &dish.Category, &dish.Description, &dish.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (s *PostgresStore) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, restaurant, COALESCE(location, ''), category, COALESCE(description, ''), created_at
		FROM dishes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.Name, &dish.Restaurant, &dish.Location, &dish.Category, &dish.Description, &dish.CreatedAt); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (s *PostgresStore) CreateDish(ctx context.Context, dish *domain.Dish) error {
	return s.DB.QueryRowContext(ctx, `
		INSERT INTO dishes (id, name, restaurant, location, category, description)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''))
		RETURNING created_at
	`, dish.ID, dish.Name, dish.Restaurant, dish.Location, dish.Category, dish.Description).
		Scan(&dish.CreatedAt)
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := scanUser(s.DB.QueryRowContext(ctx, `
		SELECT id, name, username, COALESCE(avatar, ''), following, reviewed_categories, variety_score, created_at, updated_at
		FROM users WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, username, COALESCE(avatar, ''), following, reviewed_categories, variety_score, created_at, updated_at
		FROM users
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			continue
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (s *PostgresStore) UpsertUser(ctx context.Context, user *domain.User) error {
	following, err := json.Marshal(emptyIfNilStrings(user.Following))
	if err != nil {
		return fmt.Errorf("encode following: %w", err)
	}
	categories, err := json.Marshal(emptyIfNilCategories(user.ReviewedCategories))
	if err != nil {
		return fmt.Errorf("encode reviewed categories: %w", err)
	}

	return s.DB.QueryRowContext(ctx, `
		INSERT INTO users (id, name, username, avatar, following, reviewed_categories, variety_score)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			username = EXCLUDED.username,
			avatar = EXCLUDED.avatar,
			following = EXCLUDED.following,
			reviewed_categories = EXCLUDED.reviewed_categories,
			variety_score = EXCLUDED.variety_score,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`, user.ID, user.Name, user.Username, user.Avatar, following, categories, user.VarietyScore).
		Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (s *PostgresStore) ListReviewsByDish(ctx context.Context, dishID string) ([]domain.Review, error) {
	return s.listReviews(ctx, `
		SELECT id, dish_id, user_id, rating, COALESCE(comment, ''), COALESCE(image_url, ''), created_at
		FROM reviews WHERE dish_id = $1
		ORDER BY created_at DESC
	`, dishID)
}

func (s *PostgresStore) ListReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.listReviews(ctx, `
		SELECT id, dish_id, user_id, rating, COALESCE(comment, ''), COALESCE(image_url, ''), created_at
		FROM reviews WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (s *PostgresStore) ListAllReviews(ctx context.Context) ([]domain.Review, error) {
	return s.listReviews(ctx, `
		SELECT id, dish_id, user_id, rating, COALESCE(comment, ''), COALESCE(image_url, ''), created_at
		FROM reviews
		ORDER BY created_at DESC
	`)
}

func (s *PostgresStore) listReviews(ctx context.Context, query string, args ...interface{}) ([]domain.Review, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.DishID, &review.UserID, &review.Rating, &review.Comment, &review.ImageURL, &review.CreatedAt); err != nil {
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (s *PostgresStore) CreateReview(ctx context.Context, review *domain.Review) error {
	return s.DB.QueryRowContext(ctx, `
		INSERT INTO reviews (id, dish_id, user_id, rating, comment, image_url)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
		RETURNING created_at
	`, review.ID, review.DishID, review.UserID, review.Rating, review.Comment, review.ImageURL).
		Scan(&review.CreatedAt)
}

func (s *PostgresStore) DeleteReview(ctx context.Context, id, requestingUserID string) error {
	var ownerID string
	err := s.DB.QueryRowContext(ctx, `SELECT user_id FROM reviews WHERE id = $1`, id).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if ownerID != requestingUserID {
		return domain.ErrNotOwner
	}

	_, err = s.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var following, categories []byte
	err := row.Scan(&user.ID, &user.Name, &user.Username, &user.Avatar, &following, &categories, &user.VarietyScore, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(following, &user.Following); err != nil {
		user.Following = []string{}
	}
	if err := json.Unmarshal(categories, &user.ReviewedCategories); err != nil {
		user.ReviewedCategories = nil
	}
	return &user, nil
}

func emptyIfNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func emptyIfNilCategories(values []domain.FoodCategory) []domain.FoodCategory {
	if values == nil {
		return []domain.FoodCategory{}
	}
	return values
}
