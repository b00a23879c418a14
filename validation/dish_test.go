package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grubdash-api/models"
	"grubdash-api/validation"
)

func validDish() validation.DishPayload {
	return validation.DishPayload{
		Name:        "Dolcelatte and chickpea spaghetti",
		Description: "Spaghetti topped with a blend of dolcelatte and fresh chickpeas",
		Price:       float64(19),
		ImageURL:    "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg",
	}
}

func TestValidateDishCreate_Valid(t *testing.T) {
	v := validation.ValidateDishCreate(validDish())
	assert.Empty(t, v)
	assert.NoError(t, v.Err())
}

func TestValidateDishCreate_CollectsEveryViolation(t *testing.T) {
	v := validation.ValidateDishCreate(validation.DishPayload{})
	assert.Equal(t, validation.Violations{
		"Dish must include a name",
		"Dish must include a description",
		"Dish must include a price",
		"Dish must include a image_url",
	}, v)

	err := v.Err()
	require.Error(t, err)
	assert.Equal(t,
		"Dish must include a name,Dish must include a description,Dish must include a price,Dish must include a image_url",
		err.Error())
}

func TestValidateDishCreate_Price(t *testing.T) {
	tests := []struct {
		name  string
		price any
		ok    bool
	}{
		{"zero", float64(0), true},
		{"positive", float64(25), true},
		{"negative", float64(-5), false},
		{"string", "10", false},
		{"fraction", 9.99, false},
		{"bool", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validDish()
			p.Price = tt.price
			v := validation.ValidateDishCreate(p)
			if tt.ok {
				assert.Empty(t, v)
				return
			}
			assert.Equal(t, validation.Violations{
				"Dish must have a price that is an integer greater than or equal to 0",
			}, v)
		})
	}
}

func TestValidateDishCreate_EmptyStrings(t *testing.T) {
	p := validDish()
	p.Name = ""
	p.Description = 42.0
	v := validation.ValidateDishCreate(p)
	assert.Equal(t, validation.Violations{
		"Dish must include a name",
		"Dish must include a description",
	}, v)
}

func TestValidateDishUpdate_RouteMismatch(t *testing.T) {
	p := validDish()
	p.ID = "other"
	v := validation.ValidateDishUpdate(p, "route")
	require.Len(t, v, 1)
	assert.Equal(t, "Dish id does not match route id. Dish: other, Route: route", v[0])
}

func TestValidateDishUpdate_RouteIDOptional(t *testing.T) {
	for _, id := range []any{nil, "", "route"} {
		p := validDish()
		p.ID = id
		assert.Empty(t, validation.ValidateDishUpdate(p, "route"), "id %v", id)
	}
}

func TestDishPayload_Dish(t *testing.T) {
	got := validDish().Dish("abc")
	assert.Equal(t, models.Dish{
		ID:          "abc",
		Name:        "Dolcelatte and chickpea spaghetti",
		Description: "Spaghetti topped with a blend of dolcelatte and fresh chickpeas",
		Price:       19,
		ImageURL:    "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg",
	}, got)
}

func TestRun_PreservesCheckOrder(t *testing.T) {
	var (
		first  validation.Check[int] = func(int) []string { return []string{"first"} }
		none   validation.Check[int] = func(int) []string { return nil }
		second validation.Check[int] = func(int) []string { return []string{"second", "third"} }
	)

	v := validation.Run(0, first, none, second)
	assert.Equal(t, validation.Violations{"first", "second", "third"}, v)
	assert.Nil(t, validation.Run[int](0))
}
