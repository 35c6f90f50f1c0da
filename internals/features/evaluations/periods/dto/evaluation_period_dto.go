package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "trungtam_backend/internals/features/evaluations/periods/model"
)

/* =========================================================
REQUEST
========================================================= */
type CreatePeriodRequest struct {
	Name       string      `json:"name"        validate:"required,min=3,max=200"`
	StartDate  time.Time   `json:"start_date"  validate:"required"`
	EndDate    time.Time   `json:"end_date"    validate:"required"`
	BranchID   *uuid.UUID  `json:"branch_id,omitempty"`
	ClassIDs   []uuid.UUID `json:"class_ids"   validate:"dive,required"`
	TeacherIDs []uuid.UUID `json:"teacher_ids" validate:"dive,required"`
	Status     string      `json:"status"      validate:"omitempty,oneof=draft active closed"`
}

func (r *CreatePeriodRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = model.PeriodStatusDraft
	}
}

func (r *CreatePeriodRequest) ToModel() *model.EvaluationPeriodModel {
	return &model.EvaluationPeriodModel{
		EvaluationPeriodName:       r.Name,
		EvaluationPeriodStartDate:  r.StartDate,
		EvaluationPeriodEndDate:    r.EndDate,
		EvaluationPeriodBranchID:   r.BranchID,
		EvaluationPeriodClassIDs:   uuidsToArray(r.ClassIDs),
		EvaluationPeriodTeacherIDs: uuidsToArray(r.TeacherIDs),
		EvaluationPeriodStatus:     r.Status,
	}
}

type UpdatePeriodRequest struct {
	Name       *string      `json:"name,omitempty"        validate:"omitempty,min=3,max=200"`
	StartDate  *time.Time   `json:"start_date,omitempty"`
	EndDate    *time.Time   `json:"end_date,omitempty"`
	BranchID   *uuid.UUID   `json:"branch_id,omitempty"`
	ClassIDs   *[]uuid.UUID `json:"class_ids,omitempty"   validate:"omitempty,dive,required"`
	TeacherIDs *[]uuid.UUID `json:"teacher_ids,omitempty" validate:"omitempty,dive,required"`
	Status     *string      `json:"status,omitempty"      validate:"omitempty,oneof=draft active closed"`
}

func (r *UpdatePeriodRequest) Normalize() {
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		r.Name = &n
	}
	if r.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &s
	}
}

func (r *UpdatePeriodRequest) Apply(m *model.EvaluationPeriodModel) {
	if r.Name != nil {
		m.EvaluationPeriodName = *r.Name
	}
	if r.StartDate != nil {
		m.EvaluationPeriodStartDate = *r.StartDate
	}
	if r.EndDate != nil {
		m.EvaluationPeriodEndDate = *r.EndDate
	}
	if r.BranchID != nil {
		m.EvaluationPeriodBranchID = r.BranchID
	}
	if r.ClassIDs != nil {
		m.EvaluationPeriodClassIDs = uuidsToArray(*r.ClassIDs)
	}
	if r.TeacherIDs != nil {
		m.EvaluationPeriodTeacherIDs = uuidsToArray(*r.TeacherIDs)
	}
	if r.Status != nil {
		m.EvaluationPeriodStatus = *r.Status
	}
}

func uuidsToArray(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

/* =========================================================
RESPONSE
========================================================= */
type PeriodResponse struct {
	EvaluationPeriodID uuid.UUID  `json:"evaluation_period_id"`
	Name               string     `json:"name"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            time.Time  `json:"end_date"`
	BranchID           *uuid.UUID `json:"branch_id,omitempty"`
	ClassIDs           []string   `json:"class_ids"`
	TeacherIDs         []string   `json:"teacher_ids"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromModel(m *model.EvaluationPeriodModel) PeriodResponse {
	return PeriodResponse{
		EvaluationPeriodID: m.EvaluationPeriodID,
		Name:               m.EvaluationPeriodName,
		StartDate:          m.EvaluationPeriodStartDate,
		EndDate:            m.EvaluationPeriodEndDate,
		BranchID:           m.EvaluationPeriodBranchID,
		ClassIDs:           m.EvaluationPeriodClassIDs,
		TeacherIDs:         m.EvaluationPeriodTeacherIDs,
		Status:             m.EvaluationPeriodStatus,
		CreatedAt:          m.EvaluationPeriodCreatedAt,
	}
}

func FromModels(models []model.EvaluationPeriodModel) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(models))
	for i := range models {
		out = append(out, FromModel(&models[i]))
	}
	return out
}
