package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "trungtam_backend/internals/features/users/user/model"
)

/* =========================================================
RESPONSE
========================================================= */
type UserResponse struct {
	UserID    uuid.UUID  `json:"user_id"`
	UserName  string     `json:"user_name"`
	UserEmail string     `json:"user_email"`
	UserCode  *string    `json:"user_code,omitempty"`
	UserRole  string     `json:"user_role"`
	UserPhone *string    `json:"user_phone,omitempty"`
	ParentID  *uuid.UUID `json:"user_parent_id,omitempty"`
	IsActive  bool       `json:"user_is_active"`
	CreatedAt time.Time  `json:"user_created_at"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID,
		UserName:  m.UserName,
		UserEmail: m.UserEmail,
		UserCode:  m.UserCode,
		UserRole:  m.UserRole,
		UserPhone: m.UserPhone,
		ParentID:  m.UserParentID,
		IsActive:  m.UserIsActive,
		CreatedAt: m.UserCreatedAt,
	}
}

func FromModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

/* =========================================================
REQUEST: PATCH — chỉ đổi field có mặt
========================================================= */
type UpdateUserRequest struct {
	UserName  *string `json:"user_name,omitempty"  validate:"omitempty,min=2,max=100"`
	UserPhone *string `json:"user_phone,omitempty" validate:"omitempty,max=20"`
	UserCode  *string `json:"user_code,omitempty"  validate:"omitempty,max=30"`
	IsActive  *bool   `json:"user_is_active,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		s := strings.TrimSpace(*r.UserName)
		r.UserName = &s
	}
	if r.UserPhone != nil {
		s := strings.TrimSpace(*r.UserPhone)
		if s == "" {
			r.UserPhone = nil
		} else {
			r.UserPhone = &s
		}
	}
	if r.UserCode != nil {
		s := strings.TrimSpace(strings.ToUpper(*r.UserCode))
		if s == "" {
			r.UserCode = nil
		} else {
			r.UserCode = &s
		}
	}
}

// Apply đổ các field có mặt vào model
func (r *UpdateUserRequest) Apply(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.UserPhone != nil {
		m.UserPhone = r.UserPhone
	}
	if r.UserCode != nil {
		m.UserCode = r.UserCode
	}
	if r.IsActive != nil {
		m.UserIsActive = *r.IsActive
	}
}
