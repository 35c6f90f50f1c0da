package dto

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "trungtam_backend/internals/features/center/classes/model"
)

/*
=========================================================
BranchRef — chuẩn hoá tại biên.
Client cũ gửi branch là chuỗi id trần, client mới gửi
{"id": "...", "name": "..."}. Nhận cả hai, phía trong chỉ
làm việc với uuid duy nhất.
=========================================================
*/
type BranchRef struct {
	ID   uuid.UUID
	Name string
}

func (b *BranchRef) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 || string(data) == "null" {
		return errors.New("branch trống")
	}

	// dạng chuỗi id trần
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return errors.New("branch id không hợp lệ")
		}
		b.ID = id
		return nil
	}

	// dạng object nhúng
	var obj struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(obj.ID))
	if err != nil {
		return errors.New("branch id không hợp lệ")
	}
	b.ID = id
	b.Name = strings.TrimSpace(obj.Name)
	return nil
}

/*
=========================================================
RESPONSE
=========================================================
*/
type ClassResponse struct {
	ClassID      uuid.UUID  `json:"class_id"`
	ClassName    string     `json:"class_name"`
	Grade        *string    `json:"class_grade,omitempty"`
	Subject      *string    `json:"class_subject,omitempty"`
	Fee          int64      `json:"class_fee"`
	StudentIDs   []string   `json:"class_student_ids"`
	StudentCount int        `json:"class_student_count"`
	TeacherID    *uuid.UUID `json:"class_teacher_id,omitempty"`
	BranchID     uuid.UUID  `json:"class_branch_id"`
	BranchName   string     `json:"class_branch_name,omitempty"`
	IsActive     bool       `json:"class_is_active"`
}

func FromModel(m *model.ClassModel, branchName string) ClassResponse {
	ids := make([]string, len(m.ClassStudentIDs))
	copy(ids, m.ClassStudentIDs)
	return ClassResponse{
		ClassID:      m.ClassID,
		ClassName:    m.ClassName,
		Grade:        m.ClassGrade,
		Subject:      m.ClassSubject,
		Fee:          m.ClassFee,
		StudentIDs:   ids,
		StudentCount: m.StudentCount(),
		TeacherID:    m.ClassTeacherID,
		BranchID:     m.ClassBranchID,
		BranchName:   branchName,
		IsActive:     m.ClassIsActive,
	}
}

/*
=========================================================
REQUEST: CREATE
=========================================================
*/
type CreateClassRequest struct {
	ClassName  string     `json:"class_name" validate:"required,min=2,max=120"`
	Branch     BranchRef  `json:"branch"     validate:"required"`
	Grade      *string    `json:"class_grade,omitempty"   validate:"omitempty,max=20"`
	Subject    *string    `json:"class_subject,omitempty" validate:"omitempty,max=60"`
	Fee        int64      `json:"class_fee"  validate:"gte=0"`
	StudentIDs []string   `json:"class_student_ids,omitempty" validate:"omitempty,dive,uuid4"`
	TeacherID  *uuid.UUID `json:"class_teacher_id,omitempty"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	if r.Grade != nil {
		s := strings.TrimSpace(*r.Grade)
		if s == "" {
			r.Grade = nil
		} else {
			r.Grade = &s
		}
	}
	if r.Subject != nil {
		s := strings.TrimSpace(*r.Subject)
		if s == "" {
			r.Subject = nil
		} else {
			r.Subject = &s
		}
	}
}

func (r *CreateClassRequest) ToModel() model.ClassModel {
	return model.ClassModel{
		ClassBranchID:   r.Branch.ID,
		ClassName:       r.ClassName,
		ClassGrade:      r.Grade,
		ClassSubject:    r.Subject,
		ClassFee:        r.Fee,
		ClassStudentIDs: pq.StringArray(r.StudentIDs),
		ClassTeacherID:  r.TeacherID,
		ClassIsActive:   true,
	}
}

/*
=========================================================
REQUEST: PATCH
=========================================================
*/
type UpdateClassRequest struct {
	ClassName  *string    `json:"class_name,omitempty" validate:"omitempty,min=2,max=120"`
	Grade      *string    `json:"class_grade,omitempty"`
	Subject    *string    `json:"class_subject,omitempty"`
	Fee        *int64     `json:"class_fee,omitempty" validate:"omitempty,gte=0"`
	StudentIDs []string   `json:"class_student_ids,omitempty" validate:"omitempty,dive,uuid4"`
	TeacherID  *uuid.UUID `json:"class_teacher_id,omitempty"`
	IsActive   *bool      `json:"class_is_active,omitempty"`
}

func (r *UpdateClassRequest) Apply(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.Grade != nil {
		s := strings.TrimSpace(*r.Grade)
		if s == "" {
			m.ClassGrade = nil
		} else {
			m.ClassGrade = &s
		}
	}
	if r.Subject != nil {
		s := strings.TrimSpace(*r.Subject)
		if s == "" {
			m.ClassSubject = nil
		} else {
			m.ClassSubject = &s
		}
	}
	if r.Fee != nil {
		m.ClassFee = *r.Fee
	}
	if r.StudentIDs != nil {
		m.ClassStudentIDs = pq.StringArray(r.StudentIDs)
	}
	if r.TeacherID != nil {
		m.ClassTeacherID = r.TeacherID
	}
	if r.IsActive != nil {
		m.ClassIsActive = *r.IsActive
	}
}
