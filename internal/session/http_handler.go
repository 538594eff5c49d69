package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Krimson/fluid-balance/internal/balance"
	"github.com/Krimson/fluid-balance/internal/form"
	"github.com/Krimson/fluid-balance/internal/log"
	"github.com/Krimson/fluid-balance/internal/report"
	"github.com/Krimson/fluid-balance/internal/respond"
)

const (
	pingTimeout  = 2 * time.Second
	maxBodyBytes = 1 << 20
)

// HTTPHandler обрабатывает HTTP запросы формы и сессий (Presentation Layer)
type HTTPHandler struct {
	manager *Manager
}

// NewHTTPHandler создает новый HTTP обработчик
func NewHTTPHandler(manager *Manager) *HTTPHandler {
	return &HTTPHandler{
		manager: manager,
	}
}

// RegisterRoutes регистрирует маршруты в роутере
func (h *HTTPHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Page).Methods("GET")
	router.HandleFunc("/healthz", h.Health).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/fields", h.Fields).Methods("GET")
	api.HandleFunc("/evaluate", h.Evaluate).Methods("POST")
	api.HandleFunc("/report", h.Report).Methods("POST")

	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", h.CreateSession).Methods("POST")
	sessions.HandleFunc("/{id}", h.GetSession).Methods("GET")
	sessions.HandleFunc("/{id}", h.DeleteSession).Methods("DELETE")
	sessions.HandleFunc("/{id}/inputs", h.UpdateInputs).Methods("PUT")
	sessions.HandleFunc("/{id}/report", h.SessionReport).Methods("GET")
}

// Page отдает страницу формы. Без session_id (или с истекшим) создается новая сессия.
func (h *HTTPHandler) Page(w http.ResponseWriter, r *http.Request) {
	var (
		resp *SessionResponse
		err  error
	)

	if id := r.URL.Query().Get("session_id"); id != "" {
		resp, err = h.manager.GetSession(r.Context(), id)
	}
	if resp == nil {
		resp, err = h.manager.CreateSession(r.Context(), &CreateSessionRequest{Inputs: h.manager.DefaultInputs()})
	}
	if err != nil {
		log.Errorf("[ERROR] Failed to open form session: %v", err)
		http.Error(w, "Failed to open form session", http.StatusInternalServerError)
		return
	}

	data := form.NewPageData(resp.Session.ID, resp.Session.Inputs, resp.Result)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := form.RenderPage(w, data); err != nil {
		log.Errorf("[ERROR] %v", err)
	}
}

// Fields godoc
// @Summary Описание полей формы
// @Description Метки, единицы, допустимые диапазоны, шаг и значения по умолчанию.
// @Description С weight объем порции мочи по умолчанию считается по массе тела.
// @Tags Form
// @Produce json
// @Param weight query number false "Масса тела, кг"
// @Success 200 {array} form.Field
// @Failure 400 {object} map[string]interface{} "Недопустимая масса тела"
// @Router /api/fields [get]
func (h *HTTPHandler) Fields(w http.ResponseWriter, r *http.Request) {
	defaults := h.manager.DefaultInputs()

	if raw := r.URL.Query().Get("weight"); raw != "" {
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil || weight < 1 || weight > 300 {
			respond.Error(w, r, http.StatusBadRequest, "weight must be a number between 1 and 300")
			return
		}
		defaults = balance.DefaultInputsFor(weight)
	}

	respond.Data(w, r, http.StatusOK, form.Fields(defaults))
}

// Evaluate godoc
// @Summary Расчет водного баланса
// @Description Проверяет ввод и возвращает все производные величины и оценку.
// @Description Недостающие поля заполняются значениями новой формы (объем порции мочи - по массе тела).
// @Tags Calculation
// @Accept json
// @Produce json
// @Param inputs body balance.Inputs true "Входные данные (допускается частичный ввод)"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} map[string]interface{} "Недопустимый ввод"
// @Router /api/evaluate [post]
func (h *HTTPHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	inputs, err := readBody(w, r, DecodeInputs)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.manager.Evaluate(inputs)
	if err != nil {
		h.respondServiceError(w, r, err, "evaluate inputs")
		return
	}

	respond.Data(w, r, http.StatusOK, EvaluateResponse{Inputs: inputs, Result: result})
}

// Report godoc
// @Summary PDF отчет без сессии
// @Description Недостающие поля inputs заполняются значениями новой формы
// @Tags Report
// @Accept json
// @Produce application/pdf
// @Param request body ReportRequest true "Входные данные и имя записавшего"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]interface{} "Недопустимый ввод"
// @Failure 500 {object} map[string]interface{} "Ошибка формирования отчета"
// @Router /api/report [post]
func (h *HTTPHandler) Report(w http.ResponseWriter, r *http.Request) {
	req, err := readBody(w, r, DecodeReportRequest)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	pdf, err := h.manager.Report(req.Inputs, req.Recorder)
	if err != nil {
		h.respondServiceError(w, r, err, "generate report")
		return
	}

	writePDF(w, pdf, time.Now())
}

// CreateSession godoc
// @Summary Создать сессию формы
// @Description Недостающие поля заполняются значениями новой формы (объем порции мочи - по массе тела)
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest false "Начальные значения"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} map[string]interface{} "Недопустимый ввод"
// @Router /api/sessions [post]
func (h *HTTPHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	req, err := readBody(w, r, DecodeCreateSessionRequest)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.manager.CreateSession(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err, "create session")
		return
	}

	respond.Data(w, r, http.StatusCreated, resp)
}

// GetSession godoc
// @Summary Получить сессию
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]interface{} "Сессия не найдена"
// @Router /api/sessions/{id} [get]
func (h *HTTPHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.manager.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondServiceError(w, r, err, "get session")
		return
	}

	respond.Data(w, r, http.StatusOK, resp)
}

// UpdateInputs godoc
// @Summary Заменить значения формы
// @Description Значения заменяются целиком; недостающие поля берут значения новой формы
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param inputs body balance.Inputs true "Новые значения"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]interface{} "Недопустимый ввод"
// @Failure 404 {object} map[string]interface{} "Сессия не найдена"
// @Router /api/sessions/{id}/inputs [put]
func (h *HTTPHandler) UpdateInputs(w http.ResponseWriter, r *http.Request) {
	inputs, err := readBody(w, r, DecodeInputs)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.manager.UpdateInputs(r.Context(), mux.Vars(r)["id"], inputs)
	if err != nil {
		h.respondServiceError(w, r, err, "update inputs")
		return
	}

	respond.Data(w, r, http.StatusOK, resp)
}

// DeleteSession godoc
// @Summary Удалить сессию
// @Tags Sessions
// @Param id path string true "ID сессии"
// @Success 204
// @Failure 404 {object} map[string]interface{} "Сессия не найдена"
// @Router /api/sessions/{id} [delete]
func (h *HTTPHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.DeleteSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.respondServiceError(w, r, err, "delete session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SessionReport godoc
// @Summary PDF отчет по сессии
// @Tags Report
// @Produce application/pdf
// @Param id path string true "ID сессии"
// @Param recorder query string false "Кто записал"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{} "Сессия не найдена"
// @Failure 500 {object} map[string]interface{} "Ошибка формирования отчета"
// @Router /api/sessions/{id}/report [get]
func (h *HTTPHandler) SessionReport(w http.ResponseWriter, r *http.Request) {
	pdf, err := h.manager.SessionReport(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get("recorder"))
	if err != nil {
		h.respondServiceError(w, r, err, "generate report")
		return
	}

	writePDF(w, pdf, time.Now())
}

// Health godoc
// @Summary Проверка хранилища сессий
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]interface{}
// @Router /healthz [get]
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.manager.Ping(ctx); err != nil {
		log.Warnf("[HEALTH] Session store unavailable: %v", err)
		respond.Error(w, r, http.StatusServiceUnavailable, "session store unavailable")
		return
	}

	respond.Data(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var verrs form.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respond.ErrorDetails(w, r, http.StatusBadRequest, "Invalid input", verrs)
	case errors.Is(err, ErrSessionNotFound):
		respond.Error(w, r, http.StatusNotFound, "Session not found")
	case errors.Is(err, report.ErrGenerationFailed):
		log.Errorf("[ERROR] Failed to %s: %v", action, err)
		respond.Error(w, r, http.StatusInternalServerError, report.ErrGenerationFailed.Error())
	default:
		log.Errorf("[ERROR] Failed to %s: %v", action, err)
		respond.Error(w, r, http.StatusInternalServerError, "Failed to "+action)
	}
}

// readBody читает тело запроса (не больше maxBodyBytes) и разбирает его decode
func readBody[T any](w http.ResponseWriter, r *http.Request, decode func([]byte) (T, error)) (T, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to read request body: %w", err)
	}
	return decode(data)
}

func writePDF(w http.ResponseWriter, pdf []byte, at time.Time) {
	filename := fmt.Sprintf("fluid-balance-%s.pdf", at.Format("20060102-1504"))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Warnf("Failed to write report: %v", err)
	}
}
