package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/arakunle22/CrewManagement/config"
	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/model"
	"github.com/arakunle22/CrewManagement/pkg/jwt"
)

type authFixture struct {
	svc      AuthService
	users    *mockUserRepo
	profiles *mockProfileRepo
	sessions *mockSessionStore
	tokens   *jwt.Manager
}

func newAuthFixture() *authFixture {
	users := newMockUserRepo()
	profiles := newMockProfileRepo(users, newMockDocumentRepo())
	sessions := newMockSessionStore()

	cfg := &config.AuthConfig{
		JWTSecret:               "test-secret",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
		SessionTimeout:          600 * time.Second,
	}
	tokens := jwt.NewManager(cfg)

	return &authFixture{
		svc:      NewAuthService(users, profiles, tokens, sessions, cfg, zap.NewNop()),
		users:    users,
		profiles: profiles,
		sessions: sessions,
		tokens:   tokens,
	}
}

// seedUser 播种账号；status 非空时附带对应状态的档案
func (f *authFixture) seedUser(t *testing.T, email, password, status string, isHR bool) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}
	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		IsCrew:       !isHR,
		IsHR:         isHR,
		IsActive:     true,
	}
	if err := f.users.Create(context.Background(), user); err != nil {
		t.Fatalf("播种账号失败: %v", err)
	}

	if status != "" {
		profileID := "profile-" + email
		f.profiles.profiles[profileID] = &model.CrewProfile{
			ProfileID:         profileID,
			UserID:            user.UserID,
			RecruitmentStatus: status,
			User:              user,
		}
	}
	return user
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture()
	f.seedUser(t, "hr@example.com", "password123", "", true)

	resp, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "hr@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 失败: %v", err)
	}

	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("应签发 Token 对")
	}
	if resp.User.Role != model.RoleHR {
		t.Errorf("角色应为 hr, got %s", resp.User.Role)
	}

	// Token 对应共享同一会话标识，且会话已初始化
	claims, err := f.tokens.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("解析 Access Token 失败: %v", err)
	}
	refreshClaims, _ := f.tokens.ParseToken(resp.RefreshToken)
	if claims.SessionID != refreshClaims.SessionID {
		t.Error("access/refresh 应共享会话标识")
	}
	if _, ok := f.sessions.activity[claims.SessionID]; !ok {
		t.Error("登录后会话应已初始化")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	f.seedUser(t, "hr@example.com", "password123", "", true)

	_, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "hr@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("密码错误应返回 ErrInvalidCredentials, got %v", err)
	}

	// 账号不存在时返回同一个错误，避免探测
	_, err = f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("账号不存在应返回 ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_DisabledAccount(t *testing.T) {
	f := newAuthFixture()
	user := f.seedUser(t, "crew@example.com", "password123", model.StatusApproved, false)
	user.IsActive = false

	_, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "crew@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("停用账号应返回 ErrAccountDisabled, got %v", err)
	}
}

func TestCrewLogin_RequiresApproval(t *testing.T) {
	f := newAuthFixture()
	f.seedUser(t, "pending@example.com", "password123", model.StatusPending, false)
	f.seedUser(t, "rejected@example.com", "password123", model.StatusRejected, false)
	f.seedUser(t, "approved@example.com", "password123", model.StatusApproved, false)
	f.seedUser(t, "hr@example.com", "password123", "", true)

	cases := []struct {
		email string
		ok    bool
	}{
		{"pending@example.com", false},
		{"rejected@example.com", false},
		{"approved@example.com", true},
		{"hr@example.com", false}, // 无档案的账号同样拒之门外
	}
	for _, tc := range cases {
		_, err := f.svc.CrewLogin(context.Background(), &dto.LoginRequest{
			Email:    tc.email,
			Password: "password123",
		})
		if tc.ok && err != nil {
			t.Errorf("%s 应能登录门户: %v", tc.email, err)
		}
		if !tc.ok && !errors.Is(err, ErrNotApproved) {
			t.Errorf("%s 应返回 ErrNotApproved, got %v", tc.email, err)
		}
	}
}

func TestRefresh_RotatesAndRevokesOldToken(t *testing.T) {
	f := newAuthFixture()
	f.seedUser(t, "crew@example.com", "password123", model.StatusApproved, false)

	resp, err := f.svc.CrewLogin(context.Background(), &dto.LoginRequest{
		Email:    "crew@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	oldClaims, _ := f.tokens.ParseToken(resp.RefreshToken)

	next, err := f.svc.Refresh(context.Background(), resp.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh 失败: %v", err)
	}

	// 旧 Refresh Token 进黑名单，二次使用被拒
	if !f.sessions.blacklist[oldClaims.ID] {
		t.Error("换发后旧 Token 应进入黑名单")
	}
	if _, err := f.svc.Refresh(context.Background(), resp.RefreshToken); err == nil {
		t.Error("已吊销的 Refresh Token 不应再换发")
	}

	// 会话标识随换发保持不变
	newClaims, _ := f.tokens.ParseToken(next.RefreshToken)
	if newClaims.SessionID != oldClaims.SessionID {
		t.Error("换发不应更换会话标识")
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	f := newAuthFixture()
	f.seedUser(t, "crew@example.com", "password123", model.StatusApproved, false)

	resp, _ := f.svc.CrewLogin(context.Background(), &dto.LoginRequest{
		Email:    "crew@example.com",
		Password: "password123",
	})

	if _, err := f.svc.Refresh(context.Background(), resp.AccessToken); err == nil {
		t.Fatal("Access Token 不应可用于换发")
	}
}

func TestLogout_RevokesTokenAndEndsSession(t *testing.T) {
	f := newAuthFixture()
	f.seedUser(t, "crew@example.com", "password123", model.StatusApproved, false)

	resp, _ := f.svc.CrewLogin(context.Background(), &dto.LoginRequest{
		Email:    "crew@example.com",
		Password: "password123",
	})
	claims, _ := f.tokens.ParseToken(resp.AccessToken)

	if err := f.svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("Logout 失败: %v", err)
	}

	if !f.sessions.blacklist[claims.ID] {
		t.Error("登出后 Token 应进入黑名单")
	}
	if _, ok := f.sessions.activity[claims.SessionID]; ok {
		t.Error("登出后会话应被删除")
	}
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture()
	user := f.seedUser(t, "crew@example.com", "password123", model.StatusApproved, false)

	err := f.svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "wrong-old",
		NewPassword: "new-password-1",
	})
	if !errors.Is(err, ErrOldPasswordWrong) {
		t.Fatalf("原密码错误应返回 ErrOldPasswordWrong, got %v", err)
	}

	if err := f.svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "new-password-1",
	}); err != nil {
		t.Fatalf("修改密码失败: %v", err)
	}

	// 新密码立即生效
	if _, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "crew@example.com",
		Password: "new-password-1",
	}); err != nil {
		t.Errorf("新密码应能登录: %v", err)
	}
	if _, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "crew@example.com",
		Password: "password123",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("旧密码不应再可用, got %v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
