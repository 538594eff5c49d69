package health

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/Krimson/fluid-balance/internal/log"
)

// CalculatorService имя сервиса в протоколе grpc.health.v1
const CalculatorService = "fluidbalance.v1.Calculator"

// Pinger зависимость, доступность которой определяет статус сервиса
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthServer struct {
	grpc_health_v1.UnimplementedHealthServer
	mu       sync.RWMutex
	services map[string]grpc_health_v1.HealthCheckResponse_ServingStatus
	shutdown bool
}

func NewHealthServer() *HealthServer {
	return &HealthServer{
		services: make(map[string]grpc_health_v1.HealthCheckResponse_ServingStatus),
	}
}

func (h *HealthServer) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	service := req.GetService()

	if service == "" {
		servingStatus := grpc_health_v1.HealthCheckResponse_SERVING
		if h.shutdown {
			servingStatus = grpc_health_v1.HealthCheckResponse_NOT_SERVING
		}
		return &grpc_health_v1.HealthCheckResponse{Status: servingStatus}, nil
	}

	servingStatus, exists := h.services[service]
	if !exists {
		return nil, status.Error(codes.NotFound, "service not found")
	}

	return &grpc_health_v1.HealthCheckResponse{
		Status: servingStatus,
	}, nil
}

// Watch отдает текущий статус и держит поток до отмены клиентом
func (h *HealthServer) Watch(req *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	response, err := h.Check(stream.Context(), req)
	if err != nil {
		return err
	}

	if err := stream.Send(response); err != nil {
		return err
	}

	<-stream.Context().Done()
	return stream.Context().Err()
}

func (h *HealthServer) SetServingStatus(service string) {
	h.setStatus(service, grpc_health_v1.HealthCheckResponse_SERVING)
}

func (h *HealthServer) SetNotServingStatus(service string) {
	h.setStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
}

// Shutdown переводит все сервисы в NOT_SERVING; последующие изменения статуса игнорируются
func (h *HealthServer) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.shutdown = true
	for service := range h.services {
		h.services[service] = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
}

// MonitorStore периодически проверяет хранилище сессий и обновляет статус service.
// Работает до отмены ctx.
func (h *HealthServer) MonitorStore(ctx context.Context, service string, store Pinger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.probe(ctx, service, store)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.probe(ctx, service, store)
		}
	}
}

func (h *HealthServer) probe(ctx context.Context, service string, store Pinger) {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := store.Ping(pingCtx); err != nil {
		if h.status(service) != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
			log.Warnf("[HEALTH] Session store unavailable: %v", err)
		}
		h.SetNotServingStatus(service)
		return
	}
	h.SetServingStatus(service)
}

func (h *HealthServer) status(service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.services[service]
}

func (h *HealthServer) setStatus(service string, status grpc_health_v1.HealthCheckResponse_ServingStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.shutdown {
		return
	}
	h.services[service] = status
}
