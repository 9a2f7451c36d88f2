package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dishcovery/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormDish struct {
	ID          string    `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:name;not null"`
	Restaurant  string    `gorm:"column:restaurant;not null"`
	Location    string    `gorm:"column:location"`
	Category    string    `gorm:"column:category;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (gormDish) TableName() string { return "dishes" }

type gormUser struct {
	ID                 string    `gorm:"primaryKey;column:id"`
	Name               string    `gorm:"column:name;not null"`
	Username           string    `gorm:"column:username;not null"`
	Avatar             string    `gorm:"column:avatar"`
	Following          string    `gorm:"column:following;type:jsonb;default:'[]'"`
	ReviewedCategories string    `gorm:"column:reviewed_categories;type:jsonb;default:'[]'"`
	VarietyScore       int       `gorm:"column:variety_score;not null;default:0"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (gormUser) TableName() string { return "users" }

type gormReview struct {
	ID        string    `gorm:"primaryKey;column:id"`
	DishID    string    `gorm:"column:dish_id;index;not null"`
	UserID    string    `gorm:"column:user_id;index;not null"`
	Rating    int       `gorm:"column:rating;not null"`
	Comment   string    `gorm:"column:comment"`
	ImageURL  string    `gorm:"column:image_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (gormReview) TableName() string { return "reviews" }

// GormStore backs the entity store with GORM over a managed Postgres
// connection.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&gormDish{}, &gormUser{}, &gormReview{}); err != nil {
		return nil, err
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	var row gormDish
	if err := s.DB.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	dish := row.toDomain()
	return &dish, nil
}

func (s *GormStore) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	var rows []gormDish
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	dishes := make([]domain.Dish, 0, len(rows))
	for _, row := range rows {
		dishes = append(dishes, row.toDomain())
	}
	return dishes, nil
}

func (s *GormStore) CreateDish(ctx context.Context, dish *domain.Dish) error {
	row := gormDish{
		ID:          dish.ID,
		Name:        dish.Name,
		Restaurant:  dish.Restaurant,
		Location:    dish.Location,
		Category:    string(dish.Category),
		Description: dish.Description,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	dish.CreatedAt = row.CreatedAt
	return nil
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var row gormUser
	if err := s.DB.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	user := row.toDomain()
	return &user, nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []gormUser
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	return users, nil
}

func (s *GormStore) UpsertUser(ctx context.Context, user *domain.User) error {
	following, err := json.Marshal(emptyIfNilStrings(user.Following))
	if err != nil {
		return err
	}
	categories, err := json.Marshal(emptyIfNilCategories(user.ReviewedCategories))
	if err != nil {
		return err
	}

	row := gormUser{
		ID:                 user.ID,
		Name:               user.Name,
		Username:           user.Username,
		Avatar:             user.Avatar,
		Following:          string(following),
		ReviewedCategories: string(categories),
		VarietyScore:       user.VarietyScore,
	}
	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&row).Error; err != nil {
		return err
	}
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt
	return nil
}

func (s *GormStore) ListReviewsByDish(ctx context.Context, dishID string) ([]domain.Review, error) {
	return s.listReviews(ctx, "dish_id = ?", dishID)
}

func (s *GormStore) ListReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.listReviews(ctx, "user_id = ?", userID)
}

func (s *GormStore) ListAllReviews(ctx context.Context) ([]domain.Review, error) {
	return s.listReviews(ctx, "")
}

func (s *GormStore) listReviews(ctx context.Context, cond string, args ...interface{}) ([]domain.Review, error) {
	query := s.DB.WithContext(ctx).Order("created_at DESC")
	if cond != "" {
		query = query.Where(cond, args...)
	}
	var rows []gormReview
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, row.toDomain())
	}
	return reviews, nil
}

func (s *GormStore) CreateReview(ctx context.Context, review *domain.Review) error {
	row := gormReview{
		ID:       review.ID,
		DishID:   review.DishID,
		UserID:   review.UserID,
		Rating:   review.Rating,
		Comment:  review.Comment,
		ImageURL: review.ImageURL,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	review.CreatedAt = row.CreatedAt
	return nil
}

func (s *GormStore) DeleteReview(ctx context.Context, id, requestingUserID string) error {
	var row gormReview
	if err := s.DB.WithContext(ctx).Select("id", "user_id").First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if row.UserID != requestingUserID {
		return domain.ErrNotOwner
	}
	return s.DB.WithContext(ctx).Delete(&gormReview{}, "id = ?", id).Error
}

func (d gormDish) toDomain() domain.Dish {
	return domain.Dish{
		ID:          d.ID,
		Name:        d.Name,
		Restaurant:  d.Restaurant,
		Location:    d.Location,
		Category:    domain.FoodCategory(d.Category),
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func (u gormUser) toDomain() domain.User {
	user := domain.User{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		Avatar:       u.Avatar,
		VarietyScore: u.VarietyScore,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(u.Following), &user.Following); err != nil {
		user.Following = []string{}
	}
	if err := json.Unmarshal([]byte(u.ReviewedCategories), &user.ReviewedCategories); err != nil {
		user.ReviewedCategories = nil
	}
	return user
}

func (r gormReview) toDomain() domain.Review {
	return domain.Review{
		ID:        r.ID,
		DishID:    r.DishID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		ImageURL:  r.ImageURL,
		CreatedAt: r.CreatedAt,
	}
}
