package validation

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"grubdash-api/models"
	"grubdash-api/statemachine"
)

// OrderPayload is the loosely typed body of an order create or update.
type OrderPayload struct {
	ID           any `json:"id"`
	DeliverTo    any `json:"deliverTo"`
	MobileNumber any `json:"mobileNumber"`
	Status       any `json:"status"`
	Dishes       any `json:"dishes"`
}

var statusRule = func() string {
	names := make([]string, len(models.OrderStatuses))
	for i, s := range models.OrderStatuses {
		names[i] = string(s)
	}
	return "oneof=" + strings.Join(names, " ")
}()

var statusViolation = func() string {
	names := make([]string, len(models.OrderStatuses))
	for i, s := range models.OrderStatuses {
		names[i] = string(s)
	}
	return "Order must have a status of " + strings.Join(names, ", ")
}()

func orderDeliverTo(p OrderPayload) []string {
	if _, ok := text(p.DeliverTo); !ok {
		return []string{"Order must include a deliverTo"}
	}
	return nil
}

func orderMobileNumber(p OrderPayload) []string {
	if _, ok := text(p.MobileNumber); !ok {
		return []string{"Order must include a mobileNumber"}
	}
	return nil
}

func orderHasDishes(p OrderPayload) []string {
	if _, ok := p.Dishes.([]any); !ok {
		return []string{"Order must include a dish"}
	}
	return nil
}

func orderDishesFilled(p OrderPayload) []string {
	dishes, ok := p.Dishes.([]any)
	if !ok || len(dishes) == 0 {
		return []string{"Order must include at least one dish"}
	}
	return nil
}

// orderDishQuantities reports each entry without a positive integer quantity.
// A non-array dishes value is already reported by orderHasDishes.
func orderDishQuantities(p OrderPayload) []string {
	dishes, ok := p.Dishes.([]any)
	if !ok {
		return nil
	}
	var out []string
	for i, d := range dishes {
		entry, _ := d.(map[string]any)
		quantity, ok := integer(entry["quantity"])
		if !ok || validate.Var(quantity, "min=1") != nil {
			out = append(out, fmt.Sprintf("Dish %d must have a quantity that is an integer greater than 0", i))
		}
	}
	return out
}

// orderOptionalStatus accepts a missing status on create.
func orderOptionalStatus(p OrderPayload) []string {
	if p.Status == nil || p.Status == "" {
		return nil
	}
	return orderRequiredStatus(p)
}

func orderRequiredStatus(p OrderPayload) []string {
	status, ok := text(p.Status)
	if !ok || validate.Var(status, statusRule) != nil {
		return []string{statusViolation}
	}
	return nil
}

// OrderStatusChange checks the requested status and rejects any change to an
// order whose current status is terminal.
func OrderStatusChange(current models.Order) Check[OrderPayload] {
	return func(p OrderPayload) []string {
		out := orderRequiredStatus(p)
		requested, _ := p.Status.(string)
		err := statemachine.CanTransition(current.Status, models.OrderStatus(requested))
		if errors.Is(err, statemachine.ErrDelivered) {
			out = append(out, err.Error())
		}
		return out
	}
}

// OrderMatchesRoute rejects a payload id that differs from routeID.
func OrderMatchesRoute(routeID string) Check[OrderPayload] {
	return func(p OrderPayload) []string {
		return routeMismatch("Order", p.ID, routeID)
	}
}

// OrderFields are the checks shared by create and update.
func OrderFields() []Check[OrderPayload] {
	return []Check[OrderPayload]{
		orderDeliverTo,
		orderMobileNumber,
		orderHasDishes,
		orderDishesFilled,
		orderDishQuantities,
	}
}

// ValidateOrderCreate runs the create pipeline.
func ValidateOrderCreate(p OrderPayload) Violations {
	return Run(p, append(OrderFields(), orderOptionalStatus)...)
}

// ValidateOrderUpdate runs the update pipeline against the stored order.
func ValidateOrderUpdate(p OrderPayload, current models.Order) Violations {
	checks := append([]Check[OrderPayload]{
		OrderStatusChange(current),
		OrderMatchesRoute(current.ID),
	}, OrderFields()...)
	return Run(p, checks...)
}

// Order builds a record from a payload that passed validation. Status
// defaults to pending.
func (p OrderPayload) Order(id string) models.Order {
	entries, _ := p.Dishes.([]any)
	dishes := make([]models.OrderDish, 0, len(entries))
	for _, e := range entries {
		entry, _ := e.(map[string]any)
		dishes = append(dishes, models.OrderDish(maps.Clone(entry)))
	}

	deliverTo, _ := text(p.DeliverTo)
	mobileNumber, _ := text(p.MobileNumber)
	status := models.StatusPending
	if s, ok := text(p.Status); ok {
		status = models.OrderStatus(s)
	}
	return models.Order{
		ID:           id,
		DeliverTo:    deliverTo,
		MobileNumber: mobileNumber,
		Status:       status,
		Dishes:       dishes,
	}
}
