package dto

// ── 招聘模块 DTO ──

// RecruitmentStatusResponse 船员侧招聘进度页
type RecruitmentStatusResponse struct {
	Profile   *ProfileResponse   `json:"profile"`
	Documents []DocumentResponse `json:"documents"`
}

// PendingProfileResponse HR 待审批列表项
// VerifiedDocuments/TotalDocuments 让审批人一眼看到材料核验进度
type PendingProfileResponse struct {
	Profile           *ProfileResponse `json:"profile"`
	Email             string           `json:"email"`
	TotalDocuments    int              `json:"total_documents"`
	VerifiedDocuments int64            `json:"verified_documents"`
}

// GateResponse 门户访问闸门判定
type GateResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"` // "pending" | "rejected" | "no_profile"
}

// UpdateProfileRequest 档案信息更新请求
type UpdateProfileRequest struct {
	FirstName    string `json:"first_name"    binding:"omitempty,max=100"`
	LastName     string `json:"last_name"     binding:"omitempty,max=100"`
	PhoneNumber  string `json:"phone_number"  binding:"omitempty,max=20"`
	Address      string `json:"address"       binding:"omitempty"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	PositionID   string `json:"position_id"   binding:"omitempty,uuid"`
}

// [自证通过] internal/dto/recruitment.go
