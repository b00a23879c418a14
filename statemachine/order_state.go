package statemachine

import (
	"errors"
	"fmt"
	"strings"

	"grubdash-api/models"
)

var (
	// ErrDelivered is returned for any change to a delivered order
	ErrDelivered = errors.New("A delivered order cannot be changed")
	// ErrNotPending is returned when deleting an order that has progressed
	ErrNotPending = errors.New("An order cannot be deleted unless it is pending")
)

// Transition defines a status change an order may go through
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// terminal statuses accept no further changes
var terminal = map[models.OrderStatus]bool{
	models.StatusDelivered: true,
}

// Build the transition table once: every non-terminal status may move to any status
var validTransitions = func() []Transition {
	var out []Transition
	for _, from := range models.OrderStatuses {
		if terminal[from] {
			continue
		}
		for _, to := range models.OrderStatuses {
			out = append(out, Transition{From: from, To: to})
		}
	}
	return out
}()

// IsTerminal reports whether an order in status can still be changed
func IsTerminal(status models.OrderStatus) bool {
	return terminal[status]
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks if an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	if IsTerminal(from) {
		return ErrDelivered
	}
	if !to.Valid() {
		return fmt.Errorf("invalid transition: %s → %s. Valid transitions from %s are: %s",
			from, to, from, describeValidFrom(from))
	}
	return nil
}

// CanDelete allows deletion only while the order is pending
func CanDelete(status models.OrderStatus) error {
	if status != models.StatusPending {
		return ErrNotPending
	}
	return nil
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
