// Package seed preloads the stores with the bundled sample menu and orders.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"grubdash-api/models"
	"grubdash-api/store"
)

var (
	//go:embed dishes.json
	dishesJSON []byte
	//go:embed orders.json
	ordersJSON []byte
)

// Dishes returns the bundled dishes.
func Dishes() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := json.Unmarshal(dishesJSON, &dishes); err != nil {
		return nil, fmt.Errorf("decode dishes seed: %w", err)
	}
	return dishes, nil
}

// Orders returns the bundled orders.
func Orders() ([]models.Order, error) {
	var orders []models.Order
	if err := json.Unmarshal(ordersJSON, &orders); err != nil {
		return nil, fmt.Errorf("decode orders seed: %w", err)
	}
	return orders, nil
}

// Load inserts the bundled records, skipping ids that already exist. It
// returns how many records were inserted.
func Load(ctx context.Context, dishes store.Store[models.Dish], orders store.Store[models.Order]) (int, error) {
	seedDishes, err := Dishes()
	if err != nil {
		return 0, err
	}
	seedOrders, err := Orders()
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, d := range seedDishes {
		ok, err := insert(ctx, dishes, d)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	for _, o := range seedOrders {
		ok, err := insert(ctx, orders, o)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

func insert[T models.Record](ctx context.Context, s store.Store[T], record T) (bool, error) {
	err := s.Create(ctx, record)
	if errors.Is(err, store.ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("seed %q: %w", record.Key(), err)
	}
	return true, nil
}
