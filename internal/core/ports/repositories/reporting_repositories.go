package repositories

import (
	"context"

	"github.com/crestprop/lease_ledger_app/internal/dto"
)

// ReportingRepository runs the read-only report queries.
type ReportingRepository interface {
	// GeneralLedgerRows returns posted account movements in ledger order.
	GeneralLedgerRows(ctx context.Context, params dto.GeneralLedgerParams) ([]dto.GeneralLedgerRow, error)

	// VoucherRegisterRows returns voucher headers for the register report.
	VoucherRegisterRows(ctx context.Context, companyID string, fiscalYear string) ([]dto.VoucherRegisterRow, error)
}
