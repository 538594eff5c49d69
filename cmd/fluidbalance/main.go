package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Krimson/fluid-balance/internal/balance"
	"github.com/Krimson/fluid-balance/internal/config"
	"github.com/Krimson/fluid-balance/internal/form"
	"github.com/Krimson/fluid-balance/internal/health"
	"github.com/Krimson/fluid-balance/internal/log"
	"github.com/Krimson/fluid-balance/internal/report"
	"github.com/Krimson/fluid-balance/internal/session"
	"github.com/Krimson/fluid-balance/internal/websocket"

	_ "github.com/Krimson/fluid-balance/docs" // Swagger docs
)

// @title Fluid Balance API
// @version 1.0
// @description Расчет суточного водного баланса: поступление, потери, оценка и PDF отчет.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

const storeProbeInterval = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(cfg.LogDebug); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newStore(ctx, cfg)
	defer store.Close()

	calc, err := balance.NewCalculator(cfg.CalculatorOptions())
	if err != nil {
		log.Fatalf("[ERROR] Invalid calculator options: %v", err)
	}
	log.Infof("[INFO] Judgment policy: %s, metabolic water policy: %s", calc.JudgmentPolicy(), calc.MetabolicPolicy())

	renderer := report.NewPDFRenderer(cfg.ReportFontPath, cfg.ReportFontFamily)
	manager := session.NewManager(store, calc, form.NewValidator(), renderer)

	hub := websocket.NewHub(manager)
	go hub.Run(ctx)

	// gRPC health
	healthServer := health.NewHealthServer()
	healthServer.SetServingStatus(health.CalculatorService)
	go healthServer.MonitorStore(ctx, health.CalculatorService, store, storeProbeInterval)

	grpcServer := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Fatalf("[ERROR] Failed to listen on gRPC port %s: %v", cfg.GRPCPort, err)
	}

	go func() {
		log.Infof("[INFO] gRPC health server listening on :%s", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Errorf("[ERROR] gRPC server stopped: %v", err)
		}
	}()

	// HTTP
	router := mux.NewRouter()
	session.NewHTTPHandler(manager).RegisterRoutes(router)
	router.HandleFunc("/ws", hub.HandleWebSocket).Methods("GET")
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      log.HTTPMiddleware(enableCORS(router)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("[INFO] Fluid balance service starting on port %s", cfg.HTTPPort)
		log.Infof("[INFO] Swagger UI: http://localhost:%s/swagger/index.html", cfg.HTTPPort)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[ERROR] HTTP server failed: %v", err)
		}
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infof("[INFO] Shutting down...")

	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("[ERROR] Server forced to shutdown: %v", err)
	}

	cancel()
	<-hub.Done()
	grpcServer.GracefulStop()

	log.Infof("[INFO] Server exited gracefully")
}

// newStore выбирает хранилище сессий: Redis, если задан адрес, иначе память процесса
func newStore(ctx context.Context, cfg *config.Config) session.Store {
	if cfg.RedisAddr == "" {
		log.Infof("[INFO] REDIS_ADDR is empty, keeping form sessions in memory")
		return session.NewMemoryStore(cfg.SessionTTL)
	}

	store := session.NewRedisStoreFromAddr(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		log.Fatalf("[ERROR] Failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
	}

	log.Infof("[INFO] Connected to Redis at %s", cfg.RedisAddr)
	return store
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}
