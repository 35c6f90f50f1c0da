package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "trungtam_backend/internals/features/attendance/model"
)

/* =========================================================
REQUEST
========================================================= */
type CreateSessionRequest struct {
	ClassID   uuid.UUID `json:"class_id"   validate:"required"`
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	Name      string    `json:"name"       validate:"required,min=3,max=200"`
}

func (r *CreateSessionRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateSessionRequest) ToModel() *model.AttendanceSessionModel {
	return &model.AttendanceSessionModel{
		AttendanceSessionClassID:   r.ClassID,
		AttendanceSessionTeacherID: r.TeacherID,
		AttendanceSessionName:      r.Name,
	}
}

type RecordEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status"     validate:"required,oneof=present absent late excused"`
	Note      *string   `json:"note,omitempty" validate:"omitempty,max=500"`
}

type RecordDayRequest struct {
	Date    time.Time     `json:"date"    validate:"required"`
	Records []RecordEntry `json:"records" validate:"required,min=1,dive"`
}

func (r *RecordDayRequest) Normalize() {
	for i := range r.Records {
		r.Records[i].Status = strings.ToLower(strings.TrimSpace(r.Records[i].Status))
		if r.Records[i].Note != nil {
			n := strings.TrimSpace(*r.Records[i].Note)
			if n == "" {
				r.Records[i].Note = nil
			} else {
				r.Records[i].Note = &n
			}
		}
	}
}

/* =========================================================
RESPONSE
========================================================= */
type SessionResponse struct {
	AttendanceSessionID uuid.UUID `json:"attendance_session_id"`
	ClassID             uuid.UUID `json:"class_id"`
	TeacherID           uuid.UUID `json:"teacher_id"`
	Name                string    `json:"name"`
	CreatedAt           time.Time `json:"created_at"`
}

func FromSessionModel(m *model.AttendanceSessionModel) SessionResponse {
	return SessionResponse{
		AttendanceSessionID: m.AttendanceSessionID,
		ClassID:             m.AttendanceSessionClassID,
		TeacherID:           m.AttendanceSessionTeacherID,
		Name:                m.AttendanceSessionName,
		CreatedAt:           m.AttendanceSessionCreatedAt,
	}
}
