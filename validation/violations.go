// Package validation runs ordered field checks over request payloads and
// collects every violation before anything is mutated.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Violations is the request-scoped list of rule failures.
type Violations []string

// Check inspects one rule and returns the violations it found.
type Check[T any] func(T) []string

// Run executes every check in order and collects all of their violations.
func Run[T any](input T, checks ...Check[T]) Violations {
	var out Violations
	for _, check := range checks {
		out = append(out, check(input)...)
	}
	return out
}

// Err is the error gate: nil when there are no violations.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &Error{Violations: v}
}

// Error reports a failed validation pipeline.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	return strings.Join(e.Violations, ",")
}

// text returns v when it is a non-empty string.
func text(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || validate.Var(s, "required") != nil {
		return "", false
	}
	return s, true
}

// integer returns v as an int when it is a JSON number without a fraction.
func integer(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int(f), true
}

// routeMismatch reports a payload id that differs from the route id.
// An absent or empty payload id matches any route.
func routeMismatch(resource string, payloadID any, routeID string) []string {
	if payloadID == nil {
		return nil
	}
	if s, ok := payloadID.(string); ok && (s == "" || s == routeID) {
		return nil
	}
	return []string{fmt.Sprintf("%s id does not match route id. %s: %v, Route: %s", resource, resource, payloadID, routeID)}
}
