package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

func payslipLines(slip PayrollSlip, breakdown Breakdown) []string {
	lines := []string{
		fmt.Sprintf("Payslip %s", slip.SlipNumber),
		fmt.Sprintf("Employee: %s", slip.EmployeeID.String()),
		fmt.Sprintf("Month: %s", slip.Month),
		fmt.Sprintf("Payable days: %.1f of %d (LOP %.1f)",
			breakdown.PayableDays, breakdown.StandardWorkingDays, breakdown.LOPDays),
		"",
		"Earnings",
	}
	for _, item := range breakdown.Earnings {
		lines = append(lines, fmt.Sprintf("  %s: %d", item.Label, item.Amount))
	}

	lines = append(lines, "", "Deductions")
	for _, item := range breakdown.Deductions {
		lines = append(lines, fmt.Sprintf("  %s: %d", item.Label, item.Amount))
	}

	if len(breakdown.EmployerContributions) > 0 {
		lines = append(lines, "", "Employer contributions")
		for _, item := range breakdown.EmployerContributions {
			lines = append(lines, fmt.Sprintf("  %s: %d", item.Label, item.Amount))
		}
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Gross: %d", breakdown.GrossSalary),
		fmt.Sprintf("Total deductions: %d", breakdown.TotalDeductions),
		fmt.Sprintf("Net pay: %d", breakdown.NetSalary),
	)

	return lines
}

func buildSimplePayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
