package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	pkgerr "github.com/arakunle22/CrewManagement/pkg/errors"
	"github.com/arakunle22/CrewManagement/pkg/jwt"
	"github.com/arakunle22/CrewManagement/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetProfileID 从 Gin 上下文中安全提取 profile_id。
func MustGetProfileID(c *gin.Context) (string, bool) {
	v, exists := c.Get("profile_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Forbidden(c, 10003, "当前账号无船员档案")
		return "", false
	}
	return s, true
}

// MustGetClaims 从 Gin 上下文中安全提取完整 JWT 声明。
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	return claims, true
}

// fallbackError 按错误分类兜底映射 HTTP 状态码
// 各 Handler 先用 errors.Is 匹配具体哨兵错误，剩余错误落到这里
func fallbackError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerr.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	case errors.Is(err, pkgerr.ErrConflict):
		response.Conflict(c, 10006, err.Error())
	case errors.Is(err, pkgerr.ErrNotFound):
		response.NotFound(c, 10007, err.Error())
	case errors.Is(err, pkgerr.ErrPermission):
		response.Forbidden(c, 10003, err.Error())
	case errors.Is(err, pkgerr.ErrSessionExpired):
		response.Unauthorized(c, 11005, "会话已过期，请重新登录")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/context_helper.go
