package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

func IsValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// AttendanceSessionModel đại diện bảng `attendance_sessions`.
// Một session là một suất học lặp lại của lớp, điểm danh ghi theo từng ngày.
type AttendanceSessionModel struct {
	AttendanceSessionID uuid.UUID `json:"attendance_session_id" gorm:"column:attendance_session_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AttendanceSessionClassID   uuid.UUID `json:"attendance_session_class_id"   gorm:"column:attendance_session_class_id;type:uuid;not null;index"`
	AttendanceSessionTeacherID uuid.UUID `json:"attendance_session_teacher_id" gorm:"column:attendance_session_teacher_id;type:uuid;not null;index"`
	AttendanceSessionName      string    `json:"attendance_session_name"       gorm:"column:attendance_session_name;type:varchar(200);not null"`

	AttendanceSessionCreatedAt time.Time `json:"attendance_session_created_at" gorm:"column:attendance_session_created_at;type:timestamptz;not null;default:now()"`
}

func (AttendanceSessionModel) TableName() string {
	return "attendance_sessions"
}

// AttendanceRecordModel đại diện bảng `attendance_records`.
// Unique theo (session, ngày, học sinh) để ghi đè khi điểm danh lại.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `json:"attendance_record_id" gorm:"column:attendance_record_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AttendanceRecordSessionID uuid.UUID `json:"attendance_record_session_id" gorm:"column:attendance_record_session_id;type:uuid;not null;uniqueIndex:idx_attendance_day_student"`
	AttendanceRecordDate      time.Time `json:"attendance_record_date"       gorm:"column:attendance_record_date;type:date;not null;uniqueIndex:idx_attendance_day_student"`
	AttendanceRecordStudentID uuid.UUID `json:"attendance_record_student_id" gorm:"column:attendance_record_student_id;type:uuid;not null;uniqueIndex:idx_attendance_day_student"`

	AttendanceRecordStatus string  `json:"attendance_record_status" gorm:"column:attendance_record_status;type:varchar(20);not null"`
	AttendanceRecordNote   *string `json:"attendance_record_note,omitempty" gorm:"column:attendance_record_note;type:text"`

	AttendanceRecordCreatedAt time.Time `json:"attendance_record_created_at" gorm:"column:attendance_record_created_at;type:timestamptz;not null;default:now()"`
	AttendanceRecordUpdatedAt time.Time `json:"attendance_record_updated_at" gorm:"column:attendance_record_updated_at;type:timestamptz;not null;default:now()"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
