package services

import (
	"context"

	"github.com/crestprop/lease_ledger_app/internal/dto"
)

// ReportingSvcFacade produces the general ledger and voucher register reports.
type ReportingSvcFacade interface {
	GeneralLedger(ctx context.Context, params dto.GeneralLedgerParams) (*dto.GeneralLedgerReport, error)
	VoucherRegister(ctx context.Context, companyID string, fiscalYear string) ([]dto.VoucherRegisterRow, error)

	// GeneralLedgerExcel renders the ledger report as an xlsx workbook.
	GeneralLedgerExcel(ctx context.Context, params dto.GeneralLedgerParams) ([]byte, error)
}
