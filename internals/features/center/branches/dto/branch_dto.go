package dto

import (
	"strings"

	"github.com/google/uuid"

	model "trungtam_backend/internals/features/center/branches/model"
)

type BranchResponse struct {
	BranchID   uuid.UUID `json:"branch_id"`
	BranchName string    `json:"branch_name"`
	Address    *string   `json:"branch_address,omitempty"`
	Phone      *string   `json:"branch_phone,omitempty"`
	IsActive   bool      `json:"branch_is_active"`
}

func FromModel(m *model.BranchModel) BranchResponse {
	return BranchResponse{
		BranchID:   m.BranchID,
		BranchName: m.BranchName,
		Address:    m.BranchAddress,
		Phone:      m.BranchPhone,
		IsActive:   m.BranchIsActive,
	}
}

func FromModels(ms []model.BranchModel) []BranchResponse {
	out := make([]BranchResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

type CreateBranchRequest struct {
	BranchName string  `json:"branch_name" validate:"required,min=2,max=120"`
	Address    *string `json:"branch_address,omitempty"`
	Phone      *string `json:"branch_phone,omitempty" validate:"omitempty,max=20"`
}

func (r *CreateBranchRequest) Normalize() {
	r.BranchName = strings.TrimSpace(r.BranchName)
	if r.Address != nil {
		s := strings.TrimSpace(*r.Address)
		if s == "" {
			r.Address = nil
		} else {
			r.Address = &s
		}
	}
	if r.Phone != nil {
		s := strings.TrimSpace(*r.Phone)
		if s == "" {
			r.Phone = nil
		} else {
			r.Phone = &s
		}
	}
}
