package services

import (
	"context"
	"fmt"

	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service instance.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// GeneralLedger builds the posted-movement report with running balances and
// side totals. Only posted vouchers contribute rows.
func (s *reportingService) GeneralLedger(ctx context.Context, params dto.GeneralLedgerParams) (*dto.GeneralLedgerReport, error) {
	rows, err := s.reportingRepo.GeneralLedgerRows(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to query general ledger rows: %w", err)
	}

	report := &dto.GeneralLedgerReport{
		Rows:         rows,
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	running := decimal.Zero
	for i := range report.Rows {
		report.TotalDebits = report.TotalDebits.Add(report.Rows[i].Debit)
		report.TotalCredits = report.TotalCredits.Add(report.Rows[i].Credit)
		running = running.Add(report.Rows[i].Debit).Sub(report.Rows[i].Credit)
		report.Rows[i].RunningBalance = running
	}
	return report, nil
}

// VoucherRegister lists voucher headers for a company and fiscal year.
func (s *reportingService) VoucherRegister(ctx context.Context, companyID string, fiscalYear string) ([]dto.VoucherRegisterRow, error) {
	rows, err := s.reportingRepo.VoucherRegisterRows(ctx, companyID, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query voucher register rows: %w", err)
	}
	return rows, nil
}

// GeneralLedgerExcel renders the ledger report as an xlsx workbook.
func (s *reportingService) GeneralLedgerExcel(ctx context.Context, params dto.GeneralLedgerParams) ([]byte, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	report, err := s.GeneralLedger(ctx, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close excel file", "error", err)
		}
	}()

	sheet := "General Ledger"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Voucher No", "Type", "Date", "Account", "Account Name", "Description", "Debit", "Credit", "Running Balance"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "I1", headerStyle)
	}

	for i, row := range report.Rows {
		rowNum := i + 2
		values := []interface{}{
			row.VoucherNo,
			row.VoucherType,
			row.TransactionDate.Format("2006-01-02"),
			row.AccountID,
			row.AccountName,
			row.Description,
			row.Debit.InexactFloat64(),
			row.Credit.InexactFloat64(),
			row.RunningBalance.InexactFloat64(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, fmt.Errorf("failed to build data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write data cell: %w", err)
			}
		}
	}

	totalsRow := len(report.Rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalsRow), "Totals")
	f.SetCellValue(sheet, fmt.Sprintf("G%d", totalsRow), report.TotalDebits.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("H%d", totalsRow), report.TotalCredits.InexactFloat64())

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize excel workbook: %w", err)
	}
	return buf.Bytes(), nil
}
