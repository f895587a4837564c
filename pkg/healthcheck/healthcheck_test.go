package healthcheck

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func staticChecker(status Status, message string) Checker {
	return CheckerFunc(func(ctx context.Context) Check {
		return NewCheck(status, message, time.Now())
	})
}

func TestCheck_NoCheckers(t *testing.T) {
	hc := New("1.0.0", zap.NewNop())

	response := hc.Check(context.Background())

	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Empty(t, response.Checks)
	assert.False(t, response.Timestamp.IsZero())
}

func TestCheck_AggregatesStatuses(t *testing.T) {
	hc := New("1.0.0", zap.NewNop())
	hc.Register("database", staticChecker(StatusHealthy, "Connection OK"))
	hc.Register("catalog", staticChecker(StatusHealthy, "32 recipes available"))

	response := hc.Check(context.Background())

	assert.Equal(t, StatusHealthy, response.Status)
	require.Len(t, response.Checks, 2)
	assert.Equal(t, "database", response.Checks[0].Name)
	assert.Equal(t, "catalog", response.Checks[1].Name)
}

func TestCheck_OneFailureIsUnhealthy(t *testing.T) {
	hc := New("1.0.0", zap.NewNop())
	hc.Register("database", staticChecker(StatusHealthy, ""))
	hc.Register("catalog", staticChecker(StatusUnhealthy, "Recipe catalog is empty"))

	response := hc.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, response.Status)
}

func TestHandler(t *testing.T) {
	hc := New("1.0.0", zap.NewNop())
	hc.Register("database", staticChecker(StatusHealthy, "Connection OK"))

	rec := httptest.NewRecorder()
	hc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, "1.0.0", response.Version)
}

func TestHandler_Unhealthy(t *testing.T) {
	hc := New("1.0.0", zap.NewNop())
	hc.Register("database", CheckerFunc(func(ctx context.Context) Check {
		return NewCheck(StatusUnhealthy, errors.New("connection refused").Error(), time.Now())
	}))

	rec := httptest.NewRecorder()
	hc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRegister_ReRegisterReplaces(t *testing.T) {
	hc := New("1.0.0", zap.NewNop())
	hc.Register("database", staticChecker(StatusUnhealthy, "down"))
	hc.Register("database", staticChecker(StatusHealthy, "up"))

	response := hc.Check(context.Background())

	require.Len(t, response.Checks, 1)
	assert.Equal(t, StatusHealthy, response.Status)
}
