package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ConversationModel đại diện bảng `chat_conversations`.
type ConversationModel struct {
	ConversationID uuid.UUID `json:"conversation_id" gorm:"column:conversation_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ConversationName           string         `json:"conversation_name" gorm:"column:conversation_name;type:varchar(200);not null"`
	ConversationParticipantIDs pq.StringArray `json:"conversation_participant_ids" gorm:"column:conversation_participant_ids;type:uuid[]"`

	ConversationCreatedAt time.Time `json:"conversation_created_at" gorm:"column:conversation_created_at;type:timestamptz;not null;default:now()"`
}

func (ConversationModel) TableName() string {
	return "chat_conversations"
}

// MessageModel đại diện bảng `chat_messages`.
type MessageModel struct {
	MessageID uuid.UUID `json:"message_id" gorm:"column:message_id;type:uuid;default:gen_random_uuid();primaryKey"`

	MessageConversationID uuid.UUID `json:"message_conversation_id" gorm:"column:message_conversation_id;type:uuid;not null;index"`
	MessageSenderID       uuid.UUID `json:"message_sender_id"       gorm:"column:message_sender_id;type:uuid;not null"`
	MessageBody           string    `json:"message_body"            gorm:"column:message_body;type:text;not null"`

	MessageCreatedAt time.Time `json:"message_created_at" gorm:"column:message_created_at;type:timestamptz;not null;default:now()"`
}

func (MessageModel) TableName() string {
	return "chat_messages"
}
