package service

import (
	"context"
	"errors"

	"dishcovery/internal/domain"

	"github.com/google/uuid"
)

var ErrInvalidCategory = errors.New("unknown food category")

// DishService covers dish lookup and creation. Dishes are never updated
// or deleted once created.
type DishService struct {
	store EntityStore
	qr    QRGenerator
}

func NewDishService(store EntityStore, qr QRGenerator) *DishService {
	return &DishService{store: store, qr: qr}
}

func (s *DishService) Create(ctx context.Context, dish *domain.Dish) error {
	if dish.ID == "" {
		dish.ID = uuid.NewString()
	}

	var missing []string
	if dish.Name == "" {
		missing = append(missing, "name")
	}
	if dish.Restaurant == "" {
		missing = append(missing, "restaurant")
	}
	if dish.Category == "" {
		missing = append(missing, "category")
	}
	if err := domain.MissingFields(missing...); err != nil {
		return err
	}
	if !dish.Category.Valid() {
		return ErrInvalidCategory
	}

	return s.store.CreateDish(ctx, dish)
}

func (s *DishService) Get(ctx context.Context, id string) (*domain.Dish, error) {
	return s.store.GetDish(ctx, id)
}

func (s *DishService) List(ctx context.Context) ([]domain.Dish, error) {
	return s.store.ListDishes(ctx)
}

// QRCode renders a PNG linking to the dish's share page.
func (s *DishService) QRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.store.GetDish(ctx, id); err != nil {
		return nil, err
	}
	return s.qr.Generate(id)
}
