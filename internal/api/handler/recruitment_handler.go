package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/service"
	"github.com/arakunle22/CrewManagement/pkg/response"
)

// RecruitmentHandler 招聘模块 HTTP 处理器
type RecruitmentHandler struct {
	recruitSvc service.RecruitmentService
}

// NewRecruitmentHandler 创建 RecruitmentHandler
func NewRecruitmentHandler(recruitSvc service.RecruitmentService) *RecruitmentHandler {
	return &RecruitmentHandler{recruitSvc: recruitSvc}
}

// Register 船员注册（multipart 表单，材料文件随表单上传）
// POST /api/v1/auth/register
func (h *RecruitmentHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		response.BadRequest(c, 10001, "缺少招聘材料文件")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 10001, "无法读取招聘材料文件")
		return
	}
	defer file.Close()

	result, err := h.recruitSvc.Register(c.Request.Context(), &req, file, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Conflict(c, 30001, "邮箱已被注册")
			return
		}
		fallbackError(c, err)
		return
	}

	response.Created(c, result)
}

// Status 船员侧招聘进度页
// GET /api/v1/recruitment/status
func (h *RecruitmentHandler) Status(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	result, err := h.recruitSvc.Status(c.Request.Context(), profileID)
	if err != nil {
		h.handleProfileError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateProfile 船员更新档案基本信息
// PUT /api/v1/recruitment/profile
func (h *RecruitmentHandler) UpdateProfile(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.recruitSvc.UpdateProfile(c.Request.Context(), profileID, &req)
	if err != nil {
		h.handleProfileError(c, err)
		return
	}

	response.OK(c, result)
}

// UploadDocument 船员补充上传招聘材料
// POST /api/v1/recruitment/documents
func (h *RecruitmentHandler) UploadDocument(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	if title == "" {
		response.BadRequest(c, 10001, "材料标题不能为空")
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		response.BadRequest(c, 10001, "缺少材料文件")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 10001, "无法读取材料文件")
		return
	}
	defer file.Close()

	result, err := h.recruitSvc.UploadDocument(c.Request.Context(), profileID, title, file, fileHeader.Filename)
	if err != nil {
		h.handleProfileError(c, err)
		return
	}

	response.Created(c, result)
}

// ListPending HR 待审批队列
// GET /api/v1/hr/recruitment/pending
func (h *RecruitmentHandler) ListPending(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "分页参数无效")
		return
	}

	list, total, err := h.recruitSvc.ListPending(c.Request.Context(), &page)
	if err != nil {
		fallbackError(c, err)
		return
	}

	response.OKPage(c, list, total, page.GetPage(), page.GetPageSize())
}

// DownloadDocument HR 审阅材料文件
// GET /api/v1/hr/recruitment/documents/:id/file
func (h *RecruitmentHandler) DownloadDocument(c *gin.Context) {
	rc, title, err := h.recruitSvc.OpenDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			response.NotFound(c, 30003, "招聘材料不存在")
			return
		}
		fallbackError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+title+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	io.Copy(c.Writer, rc)
}

// VerifyDocument HR 核验材料
// POST /api/v1/hr/recruitment/documents/:id/verify
func (h *RecruitmentHandler) VerifyDocument(c *gin.Context) {
	if err := h.recruitSvc.VerifyDocument(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			response.NotFound(c, 30003, "招聘材料不存在")
			return
		}
		fallbackError(c, err)
		return
	}

	response.OK(c, nil)
}

// Approve HR 通过审批
// POST /api/v1/hr/recruitment/:id/approve
func (h *RecruitmentHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject HR 驳回审批
// POST /api/v1/hr/recruitment/:id/reject
func (h *RecruitmentHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *RecruitmentHandler) decide(c *gin.Context, approve bool) {
	profileID := c.Param("id")

	var err error
	if approve {
		err = h.recruitSvc.Approve(c.Request.Context(), profileID)
	} else {
		err = h.recruitSvc.Reject(c.Request.Context(), profileID)
	}

	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyDecided):
			response.Conflict(c, 30002, "招聘审批已出结果，不可重复裁决")
		case errors.Is(err, service.ErrProfileNotFound):
			response.NotFound(c, 20001, "船员档案不存在")
		default:
			fallbackError(c, err)
		}
		return
	}

	response.OK(c, nil)
}

func (h *RecruitmentHandler) handleProfileError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		response.NotFound(c, 20001, "船员档案不存在")
		return
	}
	fallbackError(c, err)
}

// [自证通过] internal/api/handler/recruitment_handler.go
