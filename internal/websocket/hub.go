package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"hash/fnv"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Krimson/fluid-balance/internal/balance"
	"github.com/Krimson/fluid-balance/internal/form"
	"github.com/Krimson/fluid-balance/internal/log"
	"github.com/Krimson/fluid-balance/internal/session"
)

const (
	updateTimeout  = 5 * time.Second
	maxMessageSize = 64 << 10
	sendBuffer     = 32
	updateStripes  = 64
)

// Типы исходящих сообщений
const (
	MessageState = "state"
	MessageError = "error"
)

// SessionService операции над сессиями, нужные хабу
type SessionService interface {
	GetSession(ctx context.Context, sessionID string) (*session.SessionResponse, error)
	UpdateInputs(ctx context.Context, sessionID string, inputs balance.Inputs) (*session.SessionResponse, error)
}

// Hub управляет WebSocket соединениями форм.
// Карта клиентов и их каналы send принадлежат только горутине Run.
type Hub struct {
	sessions SessionService

	// Зарегистрированные клиенты по сессиям
	clients map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	// Рассылка всем клиентам одной сессии
	broadcast chan envelope

	// Сообщение одному клиенту (ошибки ввода)
	direct chan envelope

	done chan struct{}

	// Сохранение и постановка рассылки в очередь идут под одним замком сессии,
	// поэтому клиенты видят пересчеты в порядке сохранения
	updateLocks [updateStripes]sync.Mutex
}

// Client представляет WebSocket клиента
type Client struct {
	hub *Hub

	conn *websocket.Conn

	// Буферизованный канал исходящих сообщений
	send chan []byte

	sessionID string
}

type envelope struct {
	sessionID string
	client    *Client
	payload   []byte
}

// InboundMessage новые значения формы от клиента.
// Недостающие поля inputs берут значения новой формы, как в HTTP API.
type InboundMessage struct {
	Inputs balance.Inputs `json:"inputs"`
}

// OutboundMessage состояние сессии после пересчета либо ошибка ввода
type OutboundMessage struct {
	Type    string               `json:"type"`
	Session *session.FormSession `json:"session,omitempty"`
	Result  *balance.Result      `json:"result,omitempty"`
	Error   string               `json:"error,omitempty"`
	Details map[string]string    `json:"details,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Форма отдается тем же сервером
		return true
	},
}

// NewHub создает новый Hub
func NewHub(sessions SessionService) *Hub {
	return &Hub{
		sessions:   sessions,
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan envelope, 256),
		direct:     make(chan envelope, 256),
		done:       make(chan struct{}),
	}
}

// Done закрывается после остановки Run
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Run обслуживает хаб до отмены ctx; при остановке закрывает все соединения
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for _, clients := range h.clients {
				for client := range clients {
					close(client.send)
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			log.Infof("[WEBSOCKET] Hub stopped")
			return

		case client := <-h.register:
			if h.clients[client.sessionID] == nil {
				h.clients[client.sessionID] = make(map[*Client]bool)
			}
			h.clients[client.sessionID][client] = true
			log.Debugf("[WEBSOCKET] Client registered: %p, session: %s", client, client.sessionID)

		case client := <-h.unregister:
			h.remove(client)
			log.Debugf("[WEBSOCKET] Client unregistered: %p", client)

		case msg := <-h.broadcast:
			for client := range h.clients[msg.sessionID] {
				h.deliver(client, msg.payload)
			}

		case msg := <-h.direct:
			if h.clients[msg.client.sessionID][msg.client] {
				h.deliver(msg.client, msg.payload)
			}
		}
	}
}

// deliver отключает клиента, который не успевает читать
func (h *Hub) deliver(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	default:
		log.Warnf("[WEBSOCKET] Client %p is too slow, dropping connection", client)
		h.remove(client)
	}
}

func (h *Hub) remove(client *Client) {
	clients := h.clients[client.sessionID]
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.sessionID)
	}
}

// HandleWebSocket обрабатывает WebSocket соединения формы (GET /ws?session_id=)
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	state, err := h.sessions.GetSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		log.Errorf("[ERROR] Failed to load session %s: %v", sessionID, err)
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("[ERROR] Failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		sessionID: sessionID,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	// Текущее состояние сразу после подключения
	h.sendTo(client, stateMessage(state))
}

func (h *Hub) sendTo(client *Client, payload []byte) {
	select {
	case h.direct <- envelope{client: client, payload: payload}:
	case <-h.done:
	}
}

func (h *Hub) broadcastState(sessionID string, payload []byte) {
	select {
	case h.broadcast <- envelope{sessionID: sessionID, payload: payload}:
	case <-h.done:
	}
}

// readPump применяет присланные значения формы и рассылает пересчет
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Errorf("[ERROR] WebSocket error: %v", err)
			}
			return
		}

		c.handleMessage(data)
	}
}

func (c *Client) handleMessage(data []byte) {
	var msg struct {
		Inputs json.RawMessage `json:"inputs"`
	}
	if err := json.Unmarshal(data, &msg); err != nil || len(msg.Inputs) == 0 {
		c.hub.sendTo(c, errorMessage("Invalid message", nil))
		return
	}

	inputs, err := session.DecodeInputs(msg.Inputs)
	if err != nil {
		c.hub.sendTo(c, errorMessage("Invalid message", nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	lock := c.hub.updateLock(c.sessionID)
	lock.Lock()
	defer lock.Unlock()

	state, err := c.hub.sessions.UpdateInputs(ctx, c.sessionID, inputs)
	if err != nil {
		var verrs form.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			c.hub.sendTo(c, errorMessage("Invalid input", verrs))
		case errors.Is(err, session.ErrSessionNotFound):
			c.hub.sendTo(c, errorMessage("Session not found", nil))
		default:
			log.Errorf("[ERROR] Failed to update session %s: %v", c.sessionID, err)
			c.hub.sendTo(c, errorMessage("Failed to update inputs", nil))
		}
		return
	}

	c.hub.broadcastState(c.sessionID, stateMessage(state))
}

func (h *Hub) updateLock(sessionID string) *sync.Mutex {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(sessionID))
	return &h.updateLocks[hash.Sum32()%updateStripes]
}

// writePump отправляет сообщения клиенту
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Warnf("[WEBSOCKET] Failed to write message: %v", err)
			c.conn.Close()
			// readPump получит ошибку и снимет регистрацию; дочитываем канал до закрытия
			for range c.send {
			}
			return
		}
	}

	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func stateMessage(state *session.SessionResponse) []byte {
	return marshal(OutboundMessage{
		Type:    MessageState,
		Session: state.Session,
		Result:  &state.Result,
	})
}

func errorMessage(text string, details map[string]string) []byte {
	return marshal(OutboundMessage{
		Type:    MessageError,
		Error:   text,
		Details: details,
	})
}

func marshal(msg OutboundMessage) []byte {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("[ERROR] Failed to marshal websocket message: %v", err)
		return []byte(`{"type":"error","error":"internal error"}`)
	}
	return data
}
