package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求（通用入口与船员门户入口共用）
type LoginRequest struct {
	Email      string `json:"email"    binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// RegisterRequest 船员注册请求（multipart 表单，材料文件随表单上传）
// 注册一次性提交账号、档案与首份招聘材料三部分
type RegisterRequest struct {
	Email        string `form:"email"          binding:"required,email"`
	Password     string `form:"password"       binding:"required,min=8,max=64"`
	FirstName    string `form:"first_name"     binding:"required,max=100"`
	LastName     string `form:"last_name"      binding:"required,max=100"`
	PhoneNumber  string `form:"phone_number"   binding:"required,max=20"`
	DateOfBirth  string `form:"date_of_birth"  binding:"required,datetime=2006-01-02"`
	Address      string `form:"address"        binding:"required"`
	DepartmentID string `form:"department_id"  binding:"omitempty,uuid"`
	PositionID   string `form:"position_id"    binding:"omitempty,uuid"`
	DocumentTitle string `form:"document_title" binding:"required,max=100"`
}

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// RegisterResponse 注册成功响应
type RegisterResponse struct {
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
	Status    string `json:"status"` // 恒为 pending
}

// [自证通过] internal/dto/auth.go
