package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-app/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-app/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-app/mocks"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.HealthResponse](t, rec)
	if resp.Status != dto.HealthOK {
		t.Errorf("status = %q, want %q", resp.Status, dto.HealthOK)
	}
	if resp.Checks != nil {
		t.Errorf("checks = %v, want none on liveness", resp.Checks)
	}
}

// --- Readiness ---

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"redis": nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.HealthResponse](t, rec)
	if resp.Status != dto.HealthReady {
		t.Errorf("status = %q, want %q", resp.Status, dto.HealthReady)
	}
	if got := resp.Checks["redis"]; got.Status != dto.HealthOK || got.Error != "" {
		t.Errorf("redis check = %+v, want ok without error", got)
	}
}

func TestReadiness_Unhealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"redis":  errors.New("connection refused"),
		"memory": nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)

	resp := decodeJSON[dto.HealthResponse](t, rec)
	if resp.Status != dto.HealthNotReady {
		t.Errorf("status = %q, want %q", resp.Status, dto.HealthNotReady)
	}
	if got := resp.Checks["redis"]; got.Status != dto.HealthFailing || got.Error != "connection refused" {
		t.Errorf("redis check = %+v, want failing with %q", got, "connection refused")
	}
	if got := resp.Checks["memory"]; got.Status != dto.HealthOK {
		t.Errorf("memory check = %+v, want ok", got)
	}
	if len(resp.Failed) != 1 || resp.Failed[0] != "redis" {
		t.Errorf("failed = %v, want [redis]", resp.Failed)
	}
}

func TestReadiness_NoCheckers(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
}
