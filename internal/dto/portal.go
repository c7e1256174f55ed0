package dto

// ── 船员门户 DTO ──

// DashboardResponse 门户首页聚合数据
// 今日考勤、进行中任务（至多三条）、未来排班、最新公告
type DashboardResponse struct {
	Profile       *ProfileResponse       `json:"profile"`
	Today         AttendanceResponse     `json:"today_attendance"`
	ActiveTasks   []TaskResponse         `json:"active_tasks"`
	UpcomingShift []ShiftResponse        `json:"upcoming_shifts"`
	Announcements []AnnouncementResponse `json:"announcements"`
}

// [自证通过] internal/dto/portal.go
