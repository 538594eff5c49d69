package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type fakePinger struct {
	down atomic.Bool
}

func (p *fakePinger) Ping(ctx context.Context) error {
	if p.down.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func check(t *testing.T, h *HealthServer, service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestCheck(t *testing.T) {
	h := NewHealthServer()

	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check(t, h, ""))

	_, err := h.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: CalculatorService})
	assert.Equal(t, codes.NotFound, status.Code(err))

	h.SetServingStatus(CalculatorService)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check(t, h, CalculatorService))

	h.SetNotServingStatus(CalculatorService)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(t, h, CalculatorService))
}

func TestShutdown(t *testing.T) {
	h := NewHealthServer()
	h.SetServingStatus(CalculatorService)

	h.Shutdown()
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(t, h, CalculatorService))

	h.SetServingStatus(CalculatorService)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(t, h, CalculatorService))
}

func TestMonitorStore(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := NewHealthServer()
	store := &fakePinger{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.MonitorStore(ctx, CalculatorService, store, 10*time.Millisecond)
	}()

	serving := func(want grpc_health_v1.HealthCheckResponse_ServingStatus) func() bool {
		return func() bool { return h.status(CalculatorService) == want }
	}

	assert.Eventually(t, serving(grpc_health_v1.HealthCheckResponse_SERVING), time.Second, 5*time.Millisecond)

	store.down.Store(true)
	assert.Eventually(t, serving(grpc_health_v1.HealthCheckResponse_NOT_SERVING), time.Second, 5*time.Millisecond)

	store.down.Store(false)
	assert.Eventually(t, serving(grpc_health_v1.HealthCheckResponse_SERVING), time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
