package controller

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "trungtam_backend/internals/features/chat/model"
	service "trungtam_backend/internals/features/chat/service"
)

// số tin nhắn gần nhất phát lại khi vào cuộc hội thoại
const replayLimit = 50

// Event là frame JSON hai chiều trên websocket.
type Event struct {
	Type           string   `json:"type"` // join | message | typing | history | presence | error
	ConversationID string   `json:"conversation_id,omitempty"`
	SenderID       string   `json:"sender_id,omitempty"`
	Body           string   `json:"body,omitempty"`
	Members        []string `json:"members,omitempty"`
	SentAt         string   `json:"sent_at,omitempty"`
}

type ChatController struct {
	DB  *gorm.DB
	Hub *service.Hub
}

func NewChatController(db *gorm.DB, hub *service.Hub) *ChatController {
	return &ChatController{DB: db, Hub: hub}
}

/* =========================================================
GET /ws/chat?conversation_id= — đã qua AuthMiddleware khi upgrade
========================================================= */
func (ctl *ChatController) Handle(conn *websocket.Conn) {
	userID, _ := conn.Locals("user_id").(string)
	if userID == "" {
		conn.Close()
		return
	}

	client := service.NewClient(conn, userID)
	done := make(chan struct{})
	go ctl.writePump(client, done)

	// vào thẳng cuộc hội thoại nếu client truyền sẵn trên query
	if convID := conn.Query("conversation_id"); convID != "" {
		ctl.joinConversation(client, convID)
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var ev Event
		if err := sonic.Unmarshal(raw, &ev); err != nil {
			ctl.sendError(client, "frame không phải JSON hợp lệ")
			continue
		}

		switch ev.Type {
		case "join":
			ctl.joinConversation(client, ev.ConversationID)
		case "message":
			ctl.handleMessage(client, ev)
		case "typing":
			ctl.handleTyping(client, ev)
		default:
			ctl.sendError(client, "loại event không hỗ trợ: "+ev.Type)
		}
	}

	ctl.Hub.Unregister(client)
	<-done
	conn.Close()
}

// writePump là goroutine ghi duy nhất của kết nối. Kênh đóng thì thoát,
// lỗi ghi thì bỏ các frame còn lại, không coi là sự cố.
func (ctl *ChatController) writePump(client *service.Client, done chan<- struct{}) {
	defer close(done)
	broken := false
	for payload := range client.Send() {
		if broken {
			continue
		}
		if err := client.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			broken = true
		}
	}
}

func (ctl *ChatController) joinConversation(client *service.Client, convID string) {
	id, err := uuid.Parse(strings.TrimSpace(convID))
	if err != nil {
		ctl.sendError(client, "conversation_id không hợp lệ")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var conv model.ConversationModel
	if err := ctl.DB.WithContext(ctx).First(&conv, "conversation_id = ?", id).Error; err != nil {
		ctl.sendError(client, "không tìm thấy cuộc hội thoại")
		return
	}

	ctl.Hub.Join(client, id.String())

	// phát lại lịch sử gần nhất cho riêng client vừa vào
	var history []model.MessageModel
	if err := ctl.DB.WithContext(ctx).
		Where("message_conversation_id = ?", id).
		Order("message_created_at DESC").
		Limit(replayLimit).
		Find(&history).Error; err == nil {
		for i := len(history) - 1; i >= 0; i-- {
			ctl.deliverEvent(client, Event{
				Type:           "history",
				ConversationID: id.String(),
				SenderID:       history[i].MessageSenderID.String(),
				Body:           history[i].MessageBody,
				SentAt:         history[i].MessageCreatedAt.Format(time.RFC3339),
			})
		}
	}

	// đẩy danh sách thành viên online cho cả phòng
	members := ctl.Hub.Presence(ctx, id.String())
	ctl.broadcastEvent(id.String(), Event{
		Type:           "presence",
		ConversationID: id.String(),
		Members:        members,
	})
}

func (ctl *ChatController) handleMessage(client *service.Client, ev Event) {
	body := strings.TrimSpace(ev.Body)
	if body == "" || ev.ConversationID == "" {
		ctl.sendError(client, "tin nhắn thiếu nội dung hoặc cuộc hội thoại")
		return
	}
	convID, err := uuid.Parse(ev.ConversationID)
	if err != nil {
		ctl.sendError(client, "conversation_id không hợp lệ")
		return
	}
	senderID, err := uuid.Parse(client.UserID)
	if err != nil {
		ctl.sendError(client, "phiên đăng nhập không hợp lệ")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// lưu trước, phát sau: client nào nhận được là tin đã nằm trong DB
	m := model.MessageModel{
		MessageConversationID: convID,
		MessageSenderID:       senderID,
		MessageBody:           body,
	}
	if err := ctl.DB.WithContext(ctx).Create(&m).Error; err != nil {
		log.Printf("[ERROR] chat: lưu tin nhắn thất bại: %v", err)
		ctl.sendError(client, "không lưu được tin nhắn")
		return
	}

	ctl.broadcastEvent(convID.String(), Event{
		Type:           "message",
		ConversationID: convID.String(),
		SenderID:       client.UserID,
		Body:           body,
		SentAt:         m.MessageCreatedAt.Format(time.RFC3339),
	})
}

// typing chỉ phát, không lưu
func (ctl *ChatController) handleTyping(client *service.Client, ev Event) {
	if ev.ConversationID == "" {
		return
	}
	ctl.broadcastEvent(ev.ConversationID, Event{
		Type:           "typing",
		ConversationID: ev.ConversationID,
		SenderID:       client.UserID,
	})
}

func (ctl *ChatController) broadcastEvent(convID string, ev Event) {
	payload, err := sonic.Marshal(ev)
	if err != nil {
		return
	}
	ctl.Hub.Broadcast(convID, payload)
}

func (ctl *ChatController) deliverEvent(client *service.Client, ev Event) {
	payload, err := sonic.Marshal(ev)
	if err != nil {
		return
	}
	ctl.Hub.Deliver(client, payload)
}

func (ctl *ChatController) sendError(client *service.Client, msg string) {
	ctl.deliverEvent(client, Event{Type: "error", Body: msg})
}
