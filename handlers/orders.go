package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grubdash-api/models"
	"grubdash-api/statemachine"
	"grubdash-api/store"
	"grubdash-api/validation"
)

const orderKey = "order"

// OrderExists loads the order named by :orderId into the context
func (h *Handler) OrderExists() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderId")
		order, err := h.orders.Get(c.Request.Context(), orderID)
		if errors.Is(err, store.ErrNotFound) {
			h.respondError(c, notFound("Order ID not found: %s", orderID))
			return
		}
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.Set(orderKey, order)
		c.Next()
	}
}

func foundOrder(c *gin.Context) models.Order {
	return c.MustGet(orderKey).(models.Order)
}

// ListOrders returns every order
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

// CreateOrder validates the payload and stores a new order, pending unless
// a status was given
func (h *Handler) CreateOrder(c *gin.Context) {
	payload, err := bindData[validation.OrderPayload](c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !h.gate(c, "orders", validation.ValidateOrderCreate(payload)) {
		return
	}

	order := payload.Order(h.newID())
	if err := h.orders.Create(c.Request.Context(), order); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": order})
}

// ReadOrder returns the order loaded by OrderExists
func (h *Handler) ReadOrder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": foundOrder(c)})
}

// UpdateOrder replaces every field except the id and writes the order back
func (h *Handler) UpdateOrder(c *gin.Context) {
	current := foundOrder(c)
	payload, err := bindData[validation.OrderPayload](c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !h.gate(c, "orders", validation.ValidateOrderUpdate(payload, current)) {
		return
	}

	order := payload.Order(current.ID)
	if err := h.orders.Update(c.Request.Context(), order); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}

// DeleteOrder removes a pending order
func (h *Handler) DeleteOrder(c *gin.Context) {
	order := foundOrder(c)
	if err := statemachine.CanDelete(order.Status); err != nil {
		h.respondError(c, badRequest("%s", err.Error()))
		return
	}
	if err := h.orders.Delete(c.Request.Context(), order.ID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
