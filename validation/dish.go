package validation

import "grubdash-api/models"

// DishPayload is the loosely typed body of a dish create or update.
type DishPayload struct {
	ID          any `json:"id"`
	Name        any `json:"name"`
	Description any `json:"description"`
	Price       any `json:"price"`
	ImageURL    any `json:"image_url"`
}

func dishName(p DishPayload) []string {
	if _, ok := text(p.Name); !ok {
		return []string{"Dish must include a name"}
	}
	return nil
}

func dishDescription(p DishPayload) []string {
	if _, ok := text(p.Description); !ok {
		return []string{"Dish must include a description"}
	}
	return nil
}

func dishPrice(p DishPayload) []string {
	if p.Price == nil {
		return []string{"Dish must include a price"}
	}
	price, ok := integer(p.Price)
	if !ok || validate.Var(price, "min=0") != nil {
		return []string{"Dish must have a price that is an integer greater than or equal to 0"}
	}
	return nil
}

func dishImage(p DishPayload) []string {
	if _, ok := text(p.ImageURL); !ok {
		return []string{"Dish must include a image_url"}
	}
	return nil
}

// DishFields are the checks shared by create and update.
func DishFields() []Check[DishPayload] {
	return []Check[DishPayload]{dishName, dishDescription, dishPrice, dishImage}
}

// DishMatchesRoute rejects a payload id that differs from routeID.
func DishMatchesRoute(routeID string) Check[DishPayload] {
	return func(p DishPayload) []string {
		return routeMismatch("Dish", p.ID, routeID)
	}
}

// ValidateDishCreate runs the create pipeline.
func ValidateDishCreate(p DishPayload) Violations {
	return Run(p, DishFields()...)
}

// ValidateDishUpdate runs the update pipeline for the dish at routeID.
func ValidateDishUpdate(p DishPayload, routeID string) Violations {
	checks := append([]Check[DishPayload]{DishMatchesRoute(routeID)}, DishFields()...)
	return Run(p, checks...)
}

// Dish builds a record from a payload that passed validation.
func (p DishPayload) Dish(id string) models.Dish {
	name, _ := text(p.Name)
	description, _ := text(p.Description)
	imageURL, _ := text(p.ImageURL)
	price, _ := integer(p.Price)
	return models.Dish{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
	}
}
