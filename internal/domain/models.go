package domain

import "time"

// FoodCategory classifies a dish. The set is closed; variety scoring
// counts distinct categories a user has reviewed.
type FoodCategory string

const (
	CategoryMainDish  FoodCategory = "Main Dish"
	CategoryAppetizer FoodCategory = "Appetizer"
	CategoryBeverage  FoodCategory = "Beverage"
	CategoryDessert   FoodCategory = "Dessert"
	CategoryOther     FoodCategory = "Other"
)

// Categories lists every valid food category.
func Categories() []FoodCategory {
	return []FoodCategory{
		CategoryMainDish,
		CategoryAppetizer,
		CategoryBeverage,
		CategoryDessert,
		CategoryOther,
	}
}

// Valid reports whether the category is one of the known values.
func (c FoodCategory) Valid() bool {
	switch c {
	case CategoryMainDish, CategoryAppetizer, CategoryBeverage, CategoryDessert, CategoryOther:
		return true
	}
	return false
}

// Dish is a menu item at a restaurant. Dishes are immutable after creation.
type Dish struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Restaurant  string       `json:"restaurant"`
	Location    string       `json:"location,omitempty"`
	Category    FoodCategory `json:"category"`
	Description string       `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// User is keyed by the identity provider's subject id. ReviewedCategories
// and VarietyScore are derived from the user's surviving reviews.
type User struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Username           string         `json:"username"`
	Avatar             string         `json:"avatar,omitempty"`
	Following          []string       `json:"following"`
	ReviewedCategories []FoodCategory `json:"reviewed_categories"`
	VarietyScore       int            `json:"variety_score"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Review rates a dish 1-10, optionally with a comment and photo.
type Review struct {
	ID        string    `json:"id"`
	DishID    string    `json:"dish_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewEvent is the message published to Kafka when a review is
// created or deleted.
type ReviewEvent struct {
	Type      string    `json:"type"`
	ReviewID  string    `json:"review_id"`
	DishID    string    `json:"dish_id,omitempty"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventReviewCreated = "new_review"
	EventReviewDeleted = "review_deleted"
)
