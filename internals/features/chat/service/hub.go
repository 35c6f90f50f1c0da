package service

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/websocket/v2"
)

const (
	// buffer ghi mỗi kết nối; đầy thì bỏ frame thay vì chặn hub
	sendBufferSize = 64

	presenceKeyPrefix = "chat:presence:"
	presenceTTL       = 2 * time.Hour
)

// Client là một kết nối websocket đã xác thực.
// Mỗi client chỉ theo dõi tối đa một cuộc hội thoại tại một thời điểm.
type Client struct {
	Conn   *websocket.Conn
	UserID string

	conversationID string
	send           chan []byte
	closed         bool
}

func NewClient(conn *websocket.Conn, userID string) *Client {
	return &Client{
		Conn:   conn,
		UserID: userID,
		send:   make(chan []byte, sendBufferSize),
	}
}

// Send trả về kênh để write pump của client đọc frame ra socket.
func (c *Client) Send() <-chan []byte { return c.send }

type joinRequest struct {
	client         *Client
	conversationID string
}

type outbound struct {
	conversationID string
	payload        []byte
}

type delivery struct {
	client  *Client
	payload []byte
}

// Hub sở hữu toàn bộ bảng phòng chat trong một goroutine duy nhất.
// Mọi thay đổi phòng và mọi broadcast đi qua kênh của hub, nhờ đó
// thứ tự phát đúng bằng thứ tự server nhận, không cần khoá.
type Hub struct {
	rdb *redis.Client

	unregister chan *Client
	join       chan joinRequest
	broadcast  chan outbound
	deliver    chan delivery
	quit       chan struct{}

	rooms map[string]map[*Client]bool
}

func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		rdb:        rdb,
		unregister: make(chan *Client),
		join:       make(chan joinRequest),
		broadcast:  make(chan outbound, 256),
		deliver:    make(chan delivery, 256),
		quit:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]bool),
	}
}

// Unregister gỡ client khỏi phòng hiện tại và đóng kênh ghi của nó.
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

// Join chuyển client sang cuộc hội thoại mới, tự rời cuộc cũ nếu có.
func (h *Hub) Join(c *Client, conversationID string) {
	h.join <- joinRequest{client: c, conversationID: conversationID}
}

// Broadcast phát một frame tới mọi client đang theo dõi cuộc hội thoại.
func (h *Hub) Broadcast(conversationID string, payload []byte) {
	h.broadcast <- outbound{conversationID: conversationID, payload: payload}
}

// Deliver gửi một frame cho riêng một client (replay lịch sử khi join).
// Đi qua goroutine của hub nên không đua với close kênh ghi.
func (h *Hub) Deliver(c *Client, payload []byte) {
	h.deliver <- delivery{client: c, payload: payload}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.unregister:
			h.leaveRoom(c)
			if !c.closed {
				c.closed = true
				close(c.send)
			}

		case req := <-h.join:
			h.leaveRoom(req.client)
			room := h.rooms[req.conversationID]
			if room == nil {
				room = make(map[*Client]bool)
				h.rooms[req.conversationID] = room
			}
			room[req.client] = true
			req.client.conversationID = req.conversationID
			h.presenceAdd(req.conversationID, req.client.UserID)

		case d := <-h.deliver:
			if d.client.closed {
				continue
			}
			select {
			case d.client.send <- d.payload:
			default:
			}

		case out := <-h.broadcast:
			for c := range h.rooms[out.conversationID] {
				if c.closed {
					continue
				}
				select {
				case c.send <- out.payload:
				default:
					// client đọc quá chậm, bỏ frame này của riêng nó
					log.Printf("[WARN] chat: buffer đầy, bỏ frame cho user %s", c.UserID)
				}
			}

		case <-h.quit:
			for _, room := range h.rooms {
				for c := range room {
					if !c.closed {
						c.closed = true
						close(c.send)
					}
				}
			}
			h.rooms = make(map[string]map[*Client]bool)
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.quit)
}

func (h *Hub) leaveRoom(c *Client) {
	if c.conversationID == "" {
		return
	}
	if room, ok := h.rooms[c.conversationID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, c.conversationID)
		}
	}
	h.presenceRemove(c.conversationID, c.UserID)
	c.conversationID = ""
}

/* =========================================================
Presence trên redis: set thành viên online theo cuộc hội thoại
========================================================= */
func (h *Hub) presenceAdd(conversationID, userID string) {
	if h.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	key := presenceKeyPrefix + conversationID
	if err := h.rdb.SAdd(ctx, key, userID).Err(); err != nil {
		log.Printf("[WARN] chat presence add: %v", err)
		return
	}
	h.rdb.Expire(ctx, key, presenceTTL)
}

func (h *Hub) presenceRemove(conversationID, userID string) {
	if h.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.rdb.SRem(ctx, presenceKeyPrefix+conversationID, userID).Err(); err != nil {
		log.Printf("[WARN] chat presence remove: %v", err)
	}
}

// Presence trả danh sách user đang online trong cuộc hội thoại.
func (h *Hub) Presence(ctx context.Context, conversationID string) []string {
	if h.rdb == nil {
		return nil
	}
	members, err := h.rdb.SMembers(ctx, presenceKeyPrefix+conversationID).Result()
	if err != nil {
		log.Printf("[WARN] chat presence list: %v", err)
		return nil
	}
	return members
}
