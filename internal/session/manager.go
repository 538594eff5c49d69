package session

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Krimson/fluid-balance/internal/balance"
	"github.com/Krimson/fluid-balance/internal/form"
	"github.com/Krimson/fluid-balance/internal/log"
	"github.com/Krimson/fluid-balance/internal/report"
)

// Manager управляет сессиями формы и пересчетом (Application Layer).
// Результат никогда не сохраняется: каждый ответ содержит свежий пересчет.
type Manager struct {
	store     Store
	calc      *balance.Calculator
	validator *form.Validator
	renderer  report.Renderer
	now       func() time.Time
}

// NewManager создает новый менеджер сессий
func NewManager(store Store, calc *balance.Calculator, validator *form.Validator, renderer report.Renderer) *Manager {
	return &Manager{
		store:     store,
		calc:      calc,
		validator: validator,
		renderer:  renderer,
		now:       time.Now,
	}
}

// CreateSession создает сессию; req.Inputs проверяются перед сохранением
func (m *Manager) CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionResponse, error) {
	if err := m.validator.Validate(req.Inputs); err != nil {
		return nil, err
	}

	now := m.now().UTC()
	session := &FormSession{
		ID:        uuid.New().String(),
		Inputs:    req.Inputs,
		Recorder:  strings.TrimSpace(req.Recorder),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.Infof("[SESSION] Created session %s", session.ID)
	return m.respond(session), nil
}

// GetSession возвращает сессию с пересчетом по ее текущим значениям
func (m *Manager) GetSession(ctx context.Context, sessionID string) (*SessionResponse, error) {
	session, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return m.respond(session), nil
}

// UpdateInputs заменяет значения формы. Недопустимый ввод отклоняется,
// сохраненные значения при этом не меняются.
func (m *Manager) UpdateInputs(ctx context.Context, sessionID string, inputs balance.Inputs) (*SessionResponse, error) {
	session, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := m.validator.Validate(inputs); err != nil {
		return nil, err
	}

	session.Inputs = inputs
	session.UpdatedAt = m.now().UTC()

	if err := m.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.Debugf("[SESSION] Updated inputs of session %s", sessionID)
	return m.respond(session), nil
}

// DeleteSession удаляет сессию
func (m *Manager) DeleteSession(ctx context.Context, sessionID string) error {
	if err := m.store.Delete(ctx, sessionID); err != nil {
		return err
	}

	log.Infof("[SESSION] Deleted session %s", sessionID)
	return nil
}

// Evaluate проверяет ввод и выполняет расчет без сессии
func (m *Manager) Evaluate(inputs balance.Inputs) (balance.Result, error) {
	if err := m.validator.Validate(inputs); err != nil {
		return balance.Result{}, err
	}
	return m.calc.Evaluate(inputs), nil
}

// SessionReport строит PDF по значениям сессии.
// Пустой recorder означает имя, сохраненное в сессии.
func (m *Manager) SessionReport(ctx context.Context, sessionID, recorder string) ([]byte, error) {
	session, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(recorder) == "" {
		recorder = session.Recorder
	}
	return m.Report(session.Inputs, recorder)
}

// Report строит PDF по произвольному набору входных данных
func (m *Manager) Report(inputs balance.Inputs, recorder string) ([]byte, error) {
	if err := m.validator.Validate(inputs); err != nil {
		return nil, err
	}

	doc := report.Build(report.Record{
		Inputs:      inputs,
		Result:      m.calc.Evaluate(inputs),
		Recorder:    strings.TrimSpace(recorder),
		GeneratedAt: m.now(),
	})

	var buf bytes.Buffer
	if err := m.renderer.Render(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DefaultInputs значения новой формы
func (m *Manager) DefaultInputs() balance.Inputs {
	return balance.DefaultInputs()
}

// Ping проверяет доступность хранилища
func (m *Manager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}

func (m *Manager) respond(session *FormSession) *SessionResponse {
	return &SessionResponse{
		Session: session,
		Result:  m.calc.Evaluate(session.Inputs),
	}
}
