package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"grubdash-api/metrics"
	"grubdash-api/middleware"
	"grubdash-api/models"
	"grubdash-api/store"
	"grubdash-api/validation"
)

// Handler serves the dishes and orders resources
type Handler struct {
	dishes  store.Store[models.Dish]
	orders  store.Store[models.Order]
	newID   store.IDGenerator
	metrics *metrics.HTTPMetrics
	log     *log.Entry
}

func New(
	dishes store.Store[models.Dish],
	orders store.Store[models.Order],
	newID store.IDGenerator,
	m *metrics.HTTPMetrics,
	logger *log.Entry,
) *Handler {
	if newID == nil {
		newID = store.NewID
	}
	return &Handler{
		dishes:  dishes,
		orders:  orders,
		newID:   newID,
		metrics: m,
		log:     logger.WithField("component", "handlers"),
	}
}

// statusError is a failure with a fixed HTTP status
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string { return e.message }

func notFound(format string, args ...any) error {
	return &statusError{status: http.StatusNotFound, message: fmt.Sprintf(format, args...)}
}

func badRequest(format string, args ...any) error {
	return &statusError{status: http.StatusBadRequest, message: fmt.Sprintf(format, args...)}
}

func methodNotAllowed(format string, args ...any) error {
	return &statusError{status: http.StatusMethodNotAllowed, message: fmt.Sprintf(format, args...)}
}

// respondError maps err onto the error taxonomy and aborts the chain
func (h *Handler) respondError(c *gin.Context, err error) {
	var (
		se *statusError
		ve *validation.Error
	)
	status, message := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.As(err, &se):
		status, message = se.status, se.message
	case errors.As(err, &ve):
		status, message = http.StatusBadRequest, ve.Error()
	case errors.Is(err, store.ErrNotFound):
		status, message = http.StatusNotFound, "Record not found"
	case errors.Is(err, store.ErrConflict):
		status, message = http.StatusConflict, "Record already exists"
	default:
		_ = c.Error(err)
		h.log.WithError(err).
			WithField("request_id", middleware.GetRequestID(c)).
			Error("unexpected error")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// gate rejects the request when the pipeline found violations
func (h *Handler) gate(c *gin.Context, resource string, violations validation.Violations) bool {
	if err := violations.Err(); err != nil {
		h.metrics.ValidationFailed(resource)
		h.respondError(c, err)
		return false
	}
	return true
}

type envelope[T any] struct {
	Data *T `json:"data"`
}

// bindData decodes {"data": {...}}. A missing data object yields the zero
// payload so every field violation gets reported.
func bindData[T any](c *gin.Context) (T, error) {
	var body envelope[T]
	var zero T
	if err := c.ShouldBindJSON(&body); err != nil {
		return zero, badRequest("Request body must be valid JSON")
	}
	if body.Data == nil {
		return zero, nil
	}
	return *body.Data, nil
}
