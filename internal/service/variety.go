package service

import (
	"sort"

	"dishcovery/internal/domain"
)

// ComputeVarietyState derives a user's reviewed-category set and variety
// score from a review collection. Reviews whose dish is missing from
// dishesByID are skipped. The returned slice is sorted so recomputation
// over the same inputs always yields the same result.
func ComputeVarietyState(dishesByID map[string]domain.Dish, reviews []domain.Review) ([]domain.FoodCategory, int) {
	seen := make(map[domain.FoodCategory]struct{})
	for _, review := range reviews {
		dish, ok := dishesByID[review.DishID]
		if !ok {
			continue
		}
		seen[dish.Category] = struct{}{}
	}

	if len(seen) == 0 {
		return nil, 0
	}

	categories := make([]domain.FoodCategory, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	return categories, len(categories)
}
