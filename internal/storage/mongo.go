package storage

import (
	"context"
	"errors"
	"time"

	"dishcovery/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDish struct {
	ID          string    `bson:"id"`
	Name        string    `bson:"name"`
	Restaurant  string    `bson:"restaurant"`
	Location    string    `bson:"location,omitempty"`
	Category    string    `bson:"category"`
	Description string    `bson:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
}

type mongoUser struct {
	ID                 string    `bson:"id"`
	Name               string    `bson:"name"`
	Username           string    `bson:"username"`
	Avatar             string    `bson:"avatar,omitempty"`
	Following          []string  `bson:"following"`
	ReviewedCategories []string  `bson:"reviewed_categories"`
	VarietyScore       int       `bson:"variety_score"`
	CreatedAt          time.Time `bson:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at"`
}

type mongoReview struct {
	ID        string    `bson:"id"`
	DishID    string    `bson:"dish_id"`
	UserID    string    `bson:"user_id"`
	Rating    int       `bson:"rating"`
	Comment   string    `bson:"comment,omitempty"`
	ImageURL  string    `bson:"image_url,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

// MongoStore backs the entity store with a hosted MongoDB database.
type MongoStore struct {
	dishes  *mongo.Collection
	users   *mongo.Collection
	reviews *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		dishes:  db.Collection("dishes"),
		users:   db.Collection("users"),
		reviews: db.Collection("reviews"),
	}
}

func (s *MongoStore) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	var doc mongoDish
	err := s.dishes.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	dish := doc.toDomain()
	return &dish, nil
}

func (s *MongoStore) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	cursor, err := s.dishes.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []mongoDish
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	dishes := make([]domain.Dish, 0, len(docs))
	for _, doc := range docs {
		dishes = append(dishes, doc.toDomain())
	}
	return dishes, nil
}

func (s *MongoStore) CreateDish(ctx context.Context, dish *domain.Dish) error {
	if dish.CreatedAt.IsZero() {
		dish.CreatedAt = time.Now().UTC()
	}
	_, err := s.dishes.InsertOne(ctx, mongoDish{
		ID:          dish.ID,
		Name:        dish.Name,
		Restaurant:  dish.Restaurant,
		Location:    dish.Location,
		Category:    string(dish.Category),
		Description: dish.Description,
		CreatedAt:   dish.CreatedAt,
	})
	return err
}

func (s *MongoStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var doc mongoUser
	err := s.users.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user := doc.toDomain()
	return &user, nil
}

func (s *MongoStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []mongoUser
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toDomain())
	}
	return users, nil
}

func (s *MongoStore) UpsertUser(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	categories := make([]string, 0, len(user.ReviewedCategories))
	for _, c := range user.ReviewedCategories {
		categories = append(categories, string(c))
	}

	doc := mongoUser{
		ID:                 user.ID,
		Name:               user.Name,
		Username:           user.Username,
		Avatar:             user.Avatar,
		Following:          emptyIfNilStrings(user.Following),
		ReviewedCategories: categories,
		VarietyScore:       user.VarietyScore,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}

	_, err := s.users.ReplaceOne(ctx, bson.M{"id": user.ID}, doc, options.Replace().SetUpsert(true))
	return err
}

func (s *MongoStore) ListReviewsByDish(ctx context.Context, dishID string) ([]domain.Review, error) {
	return s.listReviews(ctx, bson.M{"dish_id": dishID})
}

func (s *MongoStore) ListReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.listReviews(ctx, bson.M{"user_id": userID})
}

func (s *MongoStore) ListAllReviews(ctx context.Context) ([]domain.Review, error) {
	return s.listReviews(ctx, bson.M{})
}

func (s *MongoStore) listReviews(ctx context.Context, filter bson.M) ([]domain.Review, error) {
	cursor, err := s.reviews.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []mongoReview
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	reviews := make([]domain.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, doc.toDomain())
	}
	return reviews, nil
}

func (s *MongoStore) CreateReview(ctx context.Context, review *domain.Review) error {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	_, err := s.reviews.InsertOne(ctx, mongoReview{
		ID:        review.ID,
		DishID:    review.DishID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		ImageURL:  review.ImageURL,
		CreatedAt: review.CreatedAt,
	})
	return err
}

func (s *MongoStore) DeleteReview(ctx context.Context, id, requestingUserID string) error {
	var doc mongoReview
	err := s.reviews.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if doc.UserID != requestingUserID {
		return domain.ErrNotOwner
	}

	_, err = s.reviews.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (d mongoDish) toDomain() domain.Dish {
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

func (u mongoUser) toDomain() domain.User {
	categories := make([]domain.FoodCategory, 0, len(u.ReviewedCategories))
	for _, c := range u.ReviewedCategories {
		categories = append(categories, domain.FoodCategory(c))
	}
	if len(categories) == 0 {
		categories = nil
	}
	following := u.Following
	if following == nil {
		following = []string{}
	}
	return domain.User{
		ID:                 u.ID,
		Name:               u.Name,
		Username:           u.Username,
		Avatar:             u.Avatar,
		Following:          following,
		ReviewedCategories: categories,
		VarietyScore:       u.VarietyScore,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (r mongoReview) toDomain() domain.Review {
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
