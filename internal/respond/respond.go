// Package respond пишет ответы API в JSON либо в MessagePack (?format=msgpack).
package respond

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Krimson/fluid-balance/internal/log"
)

const (
	contentTypeJSON    = "application/json"
	contentTypeMsgPack = "application/msgpack"
)

// Data пишет data со статусом status в формате, запрошенном клиентом
func Data(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if r != nil && r.URL.Query().Get("format") == "msgpack" {
		writeMsgPack(w, status, data)
		return
	}
	writeJSON(w, status, data)
}

// Error пишет ошибку в стандартном виде {"error": ..., "status": ...}
func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	Data(w, r, status, map[string]interface{}{
		"error":  message,
		"status": status,
	})
}

// ErrorDetails то же, что Error, с дополнительными деталями (например ошибками полей)
func ErrorDetails(w http.ResponseWriter, r *http.Request, status int, message string, details interface{}) {
	Data(w, r, status, map[string]interface{}{
		"error":   message,
		"status":  status,
		"details": details,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		log.Errorf("Failed to encode JSON response: %v", err)
		writeEncodeFailure(w)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeMsgPack(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(data); err != nil {
		log.Errorf("Failed to encode MessagePack response: %v", err)
		writeEncodeFailure(w)
		return
	}

	w.Header().Set("Content-Type", contentTypeMsgPack)
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// writeEncodeFailure ответ, когда тело не удалось закодировать; статус еще не отправлен
func writeEncodeFailure(w http.ResponseWriter) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"error":"failed to encode response","status":500}` + "\n"))
}
