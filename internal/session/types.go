package session

import (
	"errors"
	"time"

	"github.com/Krimson/fluid-balance/internal/balance"
)

// ErrSessionNotFound сессия формы не найдена или истек ее TTL
var ErrSessionNotFound = errors.New("session not found")

// FormSession значения, введенные пользователем в форму, между взаимодействиями.
// Это состояние интерфейса, а не история расчетов: результат здесь не хранится.
type FormSession struct {
	ID        string         `json:"id"`
	Inputs    balance.Inputs `json:"inputs"`
	Recorder  string         `json:"recorder,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CreateSessionRequest запрос на создание сессии.
// Тело декодируется через DecodeCreateSessionRequest, поэтому допускает частичный ввод.
type CreateSessionRequest struct {
	Inputs   balance.Inputs `json:"inputs"`
	Recorder string         `json:"recorder,omitempty"`
}

// SessionResponse сессия и свежий пересчет по ее значениям
type SessionResponse struct {
	Session *FormSession   `json:"session"`
	Result  balance.Result `json:"result"`
}

// EvaluateResponse ответ на расчет без сессии
type EvaluateResponse struct {
	Inputs balance.Inputs `json:"inputs"`
	Result balance.Result `json:"result"`
}

// ReportRequest запрос на отчет без сессии
type ReportRequest struct {
	Inputs   balance.Inputs `json:"inputs"`
	Recorder string         `json:"recorder,omitempty"`
}
