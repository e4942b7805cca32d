package payroll

import (
	"fmt"
	"sort"
	"time"

	"github.com/tzevk/accent-sub006/internal/attendance"
	"github.com/tzevk/accent-sub006/internal/salaryprofile"
	"github.com/tzevk/accent-sub006/internal/schedule"
)

// Warning codes embedded in a breakdown. Warnings never block generation;
// they flag slips finance should review.
const (
	WarnMissingStatutoryComponent = "MISSING_STATUTORY_COMPONENT"
	WarnInvalidGross              = "INVALID_GROSS"
)

// Components treated as earnings rather than deductions.
var earningComponents = map[string]string{
	schedule.ComponentDearnessAllowance: "Dearness Allowance",
	schedule.ComponentBonus:             "Bonus",
}

// Components paid by the employer on top of gross. Informational only,
// never part of net pay.
var employerComponents = map[string]string{
	schedule.ComponentEmployerPF: "Employer PF",
	schedule.ComponentGratuity:   "Gratuity",
}

var deductionLabels = map[string]string{
	schedule.ComponentProvidentFund:   "Provident Fund",
	schedule.ComponentHealthInsurance: "Health Insurance",
	schedule.ComponentProfessionalTax: "Professional Tax",
	schedule.ComponentWelfareFund:     "Welfare Fund",
	schedule.ComponentTDS:             "TDS",
}

// Statutory components every slip is expected to carry. Absence produces a
// warning, not an error.
var mandatoryComponents = []string{
	schedule.ComponentProvidentFund,
	schedule.ComponentProfessionalTax,
}

type CalculationInput struct {
	Profile        salaryprofile.SalaryProfile
	Attendance     attendance.Summary
	Components     map[string]schedule.ResolvedComponent
	ResolutionDate time.Time
}

type LineItem struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Breakdown is the full itemized calculation persisted on the slip. It holds
// everything needed to reproduce the numbers without re-running the engine.
type Breakdown struct {
	Month                 string     `json:"month"`
	ResolutionDate        string     `json:"resolution_date"`
	Earnings              []LineItem `json:"earnings"`
	Deductions            []LineItem `json:"deductions"`
	EmployerContributions []LineItem `json:"employer_contributions"`
	GrossSalary           int64      `json:"gross_salary"`
	TotalDeductions       int64      `json:"total_deductions"`
	NetSalary             int64      `json:"net_salary"`
	PayableDays           float64    `json:"payable_days"`
	LOPDays               float64    `json:"lop_days"`
	StandardWorkingDays   int        `json:"standard_working_days"`
	PayRatio              float64    `json:"pay_ratio"`
	AttendancePercent     float64    `json:"attendance_percent"`
	OvertimeHours         float64    `json:"overtime_hours"`
	Warnings              []string   `json:"warnings,omitempty"`
}

// BaseGross is the prorated earnings total before schedule components. The
// service resolves the schedule against this figure, so it must be computed
// the same way Calculate computes its earning lines.
func BaseGross(profile salaryprofile.SalaryProfile, summary attendance.Summary) int64 {
	ratio := summary.PayRatio
	basic := schedule.RoundHalfUp(float64(profile.Basic) * ratio)
	hra := schedule.RoundHalfUp(float64(profile.HRA) * ratio)
	allowances := schedule.RoundHalfUp(float64(profile.Allowances) * ratio)
	overtime := schedule.RoundHalfUp(summary.OvertimeHours * float64(profile.OvertimeRate))
	return basic + hra + allowances + overtime
}

// Calculate is the pure payroll core: profile, attendance summary and
// resolved schedule in, itemized breakdown out. No I/O, no clock reads.
func Calculate(input CalculationInput) Breakdown {
	ratio := input.Attendance.PayRatio
	profile := input.Profile

	basic := schedule.RoundHalfUp(float64(profile.Basic) * ratio)
	hra := schedule.RoundHalfUp(float64(profile.HRA) * ratio)
	allowances := schedule.RoundHalfUp(float64(profile.Allowances) * ratio)
	// Overtime is paid for hours actually worked, never prorated.
	overtime := schedule.RoundHalfUp(input.Attendance.OvertimeHours * float64(profile.OvertimeRate))

	earnings := []LineItem{
		{Code: "BASIC", Label: "Basic", Amount: basic},
		{Code: "HRA", Label: "HRA", Amount: hra},
		{Code: "ALLOWANCES", Label: "Allowances", Amount: allowances},
	}
	if overtime != 0 {
		earnings = append(earnings, LineItem{Code: "OVERTIME", Label: "Overtime", Amount: overtime})
	}

	gross := basic + hra + allowances + overtime

	var warnings []string
	if gross <= 0 {
		warnings = append(warnings, WarnInvalidGross)
	}

	componentEarnings := collectLineItems(input.Components, earningComponents)
	for _, item := range componentEarnings {
		gross += item.Amount
	}
	earnings = append(earnings, componentEarnings...)

	deductions := collectLineItems(input.Components, deductionLabels)
	var totalDeductions int64
	for _, item := range deductions {
		totalDeductions += item.Amount
	}

	employer := collectLineItems(input.Components, employerComponents)

	for _, code := range mandatoryComponents {
		if _, ok := input.Components[code]; !ok {
			warnings = append(warnings, fmt.Sprintf("%s:%s", WarnMissingStatutoryComponent, code))
		}
	}

	return Breakdown{
		Month:                 input.Attendance.From.Format("2006-01"),
		ResolutionDate:        input.ResolutionDate.Format("2006-01-02"),
		Earnings:              earnings,
		Deductions:            deductions,
		EmployerContributions: employer,
		GrossSalary:           gross,
		TotalDeductions:       totalDeductions,
		NetSalary:             gross - totalDeductions,
		PayableDays:           input.Attendance.PayableDays,
		LOPDays:               input.Attendance.LOPDays,
		StandardWorkingDays:   input.Attendance.StandardWorkingDays,
		PayRatio:              input.Attendance.PayRatio,
		AttendancePercent:     input.Attendance.AttendancePercent,
		OvertimeHours:         input.Attendance.OvertimeHours,
		Warnings:              warnings,
	}
}

// collectLineItems picks the resolved components matching the label set,
// sorted by code so the persisted breakdown is stable across runs.
func collectLineItems(
	components map[string]schedule.ResolvedComponent,
	labels map[string]string,
) []LineItem {
	var items []LineItem
	for code, label := range labels {
		resolved, ok := components[code]
		if !ok || resolved.Amount == 0 {
			continue
		}
		items = append(items, LineItem{Code: code, Label: label, Amount: resolved.Amount})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return items
}
