package notify

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	subscriberBuffer = 16
	writeWait        = 10 * time.Second
	pingPeriod       = 30 * time.Second
)

type Subscriber struct {
	C chan Event
}

// Hub 将事件广播给所有websocket订阅者，缓冲满的订阅者会被断开
type Hub struct {
	mux  sync.RWMutex
	subs map[*Subscriber]struct{}
	log  *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		subs: make(map[*Subscriber]struct{}),
		log:  log,
	}
}

func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{C: make(chan Event, subscriberBuffer)}
	h.mux.Lock()
	h.subs[s] = struct{}{}
	h.mux.Unlock()
	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mux.Lock()
	defer h.mux.Unlock()
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		close(s.C)
	}
}

func (h *Hub) Len() int {
	h.mux.RLock()
	defer h.mux.RUnlock()
	return len(h.subs)
}

func (h *Hub) Publish(_ context.Context, e Event) {
	h.mux.Lock()
	defer h.mux.Unlock()
	for s := range h.subs {
		select {
		case s.C <- e:
		default:
			delete(h.subs, s)
			close(s.C)
			h.log.Warn("订阅者处理过慢，已断开", zap.String("event", e.Type))
		}
	}
}

// ServeWS 持续向连接写入事件，直到连接关闭或订阅被断开
func (h *Hub) ServeWS(ctx context.Context, conn *websocket.Conn) {
	s := h.Subscribe()
	defer h.Unsubscribe(s)
	defer func() {
		_ = conn.Close()
	}()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-closed:
			return
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case e, ok := <-s.C:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(e); err != nil {
				h.log.Debug("ws发送失败", zap.Error(err), zap.String("event", e.Type))
				return
			}
		}
	}
}
