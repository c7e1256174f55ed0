package handler

import "github.com/arakunle22/CrewManagement/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Recruitment  *RecruitmentHandler
	Portal       *PortalHandler
	Attendance   *AttendanceHandler
	Task         *TaskHandler
	Leave        *LeaveHandler
	Shift        *ShiftHandler
	Payroll      *PayrollHandler
	Performance  *PerformanceHandler
	Announcement *AnnouncementHandler
	Org          *OrgHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Recruitment:  NewRecruitmentHandler(svc.Recruitment),
		Portal:       NewPortalHandler(svc.Portal),
		Attendance:   NewAttendanceHandler(svc.Attendance),
		Task:         NewTaskHandler(svc.Task),
		Leave:        NewLeaveHandler(svc.Leave),
		Shift:        NewShiftHandler(svc.Shift),
		Payroll:      NewPayrollHandler(svc.Payroll),
		Performance:  NewPerformanceHandler(svc.Performance),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Org:          NewOrgHandler(svc.Org),
		Export:       NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
