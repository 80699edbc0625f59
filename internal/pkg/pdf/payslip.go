package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/payease-hq/payease-backend-go/internal/domain/salary"
)

// PayslipData carries everything the payslip layout needs. Amounts come
// straight from a stored breakdown, so rendering never recomputes salary.
type PayslipData struct {
	CompanyName  string
	EmployeeName string
	EmployeeCode string
	Email        string
	Month        time.Month
	Year         int
	Breakdown    salary.Breakdown
}

// RenderPayslip draws a single-page A4 payslip and returns the PDF bytes.
func RenderPayslip(data PayslipData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, data.CompanyName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Payslip for %s %d", data.Month.String(), data.Year))
	pdf.Ln(12)

	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", data.EmployeeName, data.EmployeeCode))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Email: %s", data.Email))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Paid days: %s of %d (LOP %s)",
		data.Breakdown.PaidDays.String(), data.Breakdown.DaysInMonth, data.Breakdown.LOPDays.String()))
	pdf.Ln(10)

	b := data.Breakdown

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	writeRow(pdf, "Basic", b.Basic)
	writeRow(pdf, "House Rent Allowance", b.HRA)
	writeRow(pdf, "Special Allowance", b.SpecialAllowance)
	pdf.SetFont("Helvetica", "B", 11)
	writeRow(pdf, "Gross Salary", b.GrossSalary)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	writeRow(pdf, "Provident Fund (Employee)", b.EmployeePF)
	writeRow(pdf, "ESI (Employee)", b.EmployeeESI)
	writeRow(pdf, "Professional Tax", b.ProfessionalTax)
	writeRow(pdf, "TDS", b.TDS)
	pdf.SetFont("Helvetica", "B", 11)
	writeRow(pdf, "Total Deductions", b.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	writeRow(pdf, "Net Salary", b.NetSalary)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Employer contributions: PF Rs. %s, ESI Rs. %s (not deducted from salary)",
		FormatRupees(b.EmployerPF), FormatRupees(b.EmployerESI)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(pdf *gofpdf.Fpdf, label string, amount int64) {
	pdf.CellFormat(120, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Rs. "+FormatRupees(amount), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}

// FormatRupees groups digits the Indian way: the last three, then pairs.
// 1234567 renders as 12,34,567.
func FormatRupees(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []byte
		for len(head) > 2 {
			parts = append([]byte(head[len(head)-2:]+","), parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]byte(head+","), parts...)
		}
		s = string(parts) + tail
	}
	if neg {
		return "-" + s
	}
	return s
}
