package payslip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/meridian-erp/erp-backend-go/internal/domain/payslip"
	"github.com/meridian-erp/erp-backend-go/internal/domain/settings"
)

// RenderPDF produces the printable payslip.
func (s *PayslipServiceImpl) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	p, err := s.PayslipRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	companyName := "Payslip"
	profile, err := s.profile.Get(ctx)
	if err != nil && !errors.Is(err, settings.ErrProfileNotFound) {
		return nil, err
	}
	if profile != nil {
		companyName = profile.CompanyName
	}

	period := time.Date(p.PeriodYear, time.Month(p.PeriodMonth), 1, 0, 0, 0, 0, time.UTC)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, companyName)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(40, 8, fmt.Sprintf("Payslip for %s", period.Format("January 2006")))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	if p.EmployeeName != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", *p.EmployeeName))
		pdf.Ln(7)
	}
	if p.EmployeeCode != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Employee Code: %s", *p.EmployeeCode))
		pdf.Ln(7)
	}
	pdf.Ln(3)
	pdf.Cell(0, 8, fmt.Sprintf("Basic: %s", p.Basic.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %s", p.Allowances.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s", p.Deductions.StringFixed(2)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net Pay: %s", p.NetPay.StringFixed(2)))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	status := "DRAFT"
	if p.Status == payslip.StatusPaid {
		status = "PAID"
		if p.PaidAt != nil {
			status = fmt.Sprintf("PAID on %s", p.PaidAt.Format("2006-01-02"))
		}
	}
	pdf.Cell(0, 8, status)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}

	// Keep a copy in document storage so the file can be served or archived
	// without re-rendering. Failure to store is not fatal.
	if s.files != nil {
		path := fmt.Sprintf("payslips/%d/%02d/%s.pdf", p.PeriodYear, p.PeriodMonth, p.ID)
		if _, err := s.files.Save(ctx, bytes.NewReader(buf.Bytes()), path); err != nil {
			slog.Warn("failed to store payslip pdf", "payslip_id", p.ID, "error", err)
		}
	}

	return buf.Bytes(), nil
}
