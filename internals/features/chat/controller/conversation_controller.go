package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"

	model "trungtam_backend/internals/features/chat/model"
	helper "trungtam_backend/internals/helpers"
)

var validate = validator.New()

type CreateConversationRequest struct {
	Name           string      `json:"name"            validate:"required,min=1,max=200"`
	ParticipantIDs []uuid.UUID `json:"participant_ids" validate:"required,min=2,dive,required"`
}

func (r *CreateConversationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

/* =========================================================
POST /api/u/chat/conversations
========================================================= */
func (ctl *ChatController) CreateConversation(c *fiber.Ctx) error {
	var req CreateConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	participants := make(pq.StringArray, 0, len(req.ParticipantIDs))
	for _, id := range req.ParticipantIDs {
		participants = append(participants, id.String())
	}

	m := model.ConversationModel{
		ConversationName:           req.Name,
		ConversationParticipantIDs: participants,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Tạo cuộc hội thoại thất bại")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Đã tạo cuộc hội thoại", m)
}

/* =========================================================
GET /api/u/chat/conversations — các cuộc hội thoại mình tham gia
========================================================= */
func (ctl *ChatController) MyConversations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var convs []model.ConversationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("? = ANY(conversation_participant_ids)", userID.String()).
		Order("conversation_created_at DESC").
		Find(&convs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được danh sách hội thoại")
	}
	return helper.Success(c, "OK", convs)
}
