package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"grubdash-api/handlers"
	"grubdash-api/metrics"
	"grubdash-api/models"
	"grubdash-api/routes"
	"grubdash-api/store"
)

type testServer struct {
	router *gin.Engine
	dishes store.Store[models.Dish]
	orders store.Store[models.Order]
}

func sequentialIDs() store.IDGenerator {
	var n atomic.Int64
	return func() string { return fmt.Sprintf("id-%d", n.Add(1)) }
}

func newTestServer(t *testing.T, dishes store.Store[models.Dish], orders store.Store[models.Order]) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if dishes == nil {
		dishes = store.NewMemory[models.Dish]()
	}
	if orders == nil {
		orders = store.NewMemory[models.Order]()
	}

	logger := log.New()
	logger.SetOutput(io.Discard)
	entry := log.NewEntry(logger)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	h := handlers.New(dishes, orders, sequentialIDs(), m, entry)

	return &testServer{
		router: routes.NewRouter(h, entry, m, registry),
		dishes: dishes,
		orders: orders,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func data(payload map[string]any) map[string]any {
	return map[string]any{"data": payload}
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
}
