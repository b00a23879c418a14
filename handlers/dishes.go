package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grubdash-api/models"
	"grubdash-api/store"
	"grubdash-api/validation"
)

const dishKey = "dish"

// DishExists loads the dish named by :dishId into the context
func (h *Handler) DishExists() gin.HandlerFunc {
	return func(c *gin.Context) {
		dishID := c.Param("dishId")
		dish, err := h.dishes.Get(c.Request.Context(), dishID)
		if errors.Is(err, store.ErrNotFound) {
			h.respondError(c, notFound("Dish ID not found: %s", dishID))
			return
		}
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.Set(dishKey, dish)
		c.Next()
	}
}

func foundDish(c *gin.Context) models.Dish {
	return c.MustGet(dishKey).(models.Dish)
}

// ListDishes returns every dish
func (h *Handler) ListDishes(c *gin.Context) {
	dishes, err := h.dishes.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dishes})
}

// CreateDish validates the payload and stores a new dish
func (h *Handler) CreateDish(c *gin.Context) {
	payload, err := bindData[validation.DishPayload](c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !h.gate(c, "dishes", validation.ValidateDishCreate(payload)) {
		return
	}

	dish := payload.Dish(h.newID())
	if err := h.dishes.Create(c.Request.Context(), dish); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": dish})
}

// ReadDish returns the dish loaded by DishExists
func (h *Handler) ReadDish(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": foundDish(c)})
}

// UpdateDish replaces every field except the id
func (h *Handler) UpdateDish(c *gin.Context) {
	current := foundDish(c)
	payload, err := bindData[validation.DishPayload](c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !h.gate(c, "dishes", validation.ValidateDishUpdate(payload, current.ID)) {
		return
	}

	dish := payload.Dish(current.ID)
	if err := h.dishes.Update(c.Request.Context(), dish); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dish})
}

// DeleteDish always refuses: dishes stay on the menu once created
func (h *Handler) DeleteDish(c *gin.Context) {
	h.respondError(c, methodNotAllowed("Dish deletion is not allowed: %s", c.Param("dishId")))
}
