// Package log централизованное логирование поверх zap.
package log

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

// Init инициализирует логгер пакета
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	logger = zapLogger.Sugar()
	return nil
}

// Sugared возвращает логгер; до Init используется no-op логгер
func Sugared() *zap.SugaredLogger {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return logger
}

// Sync сбрасывает буферизованные записи
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func Debugf(template string, args ...interface{}) {
	Sugared().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	Sugared().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	Sugared().Infow(msg, keysAndValues...)
}

func Warnf(template string, args ...interface{}) {
	Sugared().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	Sugared().Errorf(template, args...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	Sugared().Errorw(msg, keysAndValues...)
}

func Fatalf(template string, args ...interface{}) {
	Sugared().Fatalf(template, args...)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack нужен для апгрейда соединения до websocket
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return h.Hijack()
}

// HTTPMiddleware пишет access-лог каждого запроса
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		Infow("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"size", rec.size,
			"remote_addr", r.RemoteAddr,
		)
	})
}
