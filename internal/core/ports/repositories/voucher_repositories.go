package repositories

import (
	"context"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/crestprop/lease_ledger_app/internal/dto"
)

// VoucherReader defines read operations for voucher data.
type VoucherReader interface {
	// FindVoucherByNo retrieves a voucher header by its voucher number.
	FindVoucherByNo(ctx context.Context, voucherNo string) (*domain.Voucher, error)

	// FindLinesByVoucherNo retrieves all lines of a voucher.
	FindLinesByVoucherNo(ctx context.Context, voucherNo string) ([]domain.VoucherLine, error)

	// ListVouchers retrieves a filtered, token-paginated page of vouchers for a company.
	ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) ([]domain.Voucher, *string, error)
}

// VoucherWriter defines write operations for voucher data.
type VoucherWriter interface {
	// SaveVoucher persists a new voucher with its lines and attachments in one
	// transaction. The store assigns the voucher number and returns it.
	SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine, attachments []domain.Attachment) (string, error)

	// ReplaceVoucher rewrites a voucher header and its full line set in one transaction.
	ReplaceVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error

	// UpdatePostingStatus moves a voucher to a new posting status.
	UpdatePostingStatus(ctx context.Context, voucherNo string, status domain.PostingStatus, updatedBy string, at time.Time) error

	// UpdateApproval records an approval decision together with the resulting posting status.
	UpdateApproval(ctx context.Context, voucherNo string, posting domain.PostingStatus, approval domain.ApprovalStatus, approvedBy *string, approvedAt *time.Time, comments string, updatedBy string, at time.Time) error

	// ResetApproval clears approval metadata back to a pending approval state.
	ResetApproval(ctx context.Context, voucherNo string, updatedBy string, at time.Time) error

	// SaveReversal persists the reversal voucher and flags the original as
	// reversed with the back-reference, atomically. Returns the assigned
	// reversal voucher number.
	SaveReversal(ctx context.Context, reversal domain.Voucher, lines []domain.VoucherLine, originalVoucherNo string) (string, error)

	// DeleteVoucher removes a voucher and its lines.
	DeleteVoucher(ctx context.Context, voucherNo string) error
}

// AttachmentRepository defines the independent attachment lifecycle.
type AttachmentRepository interface {
	SaveAttachment(ctx context.Context, attachment domain.Attachment) error
	FindAttachmentsByVoucherNo(ctx context.Context, voucherNo string) ([]domain.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID string) error
}

// ApprovalLogRepository persists the approval audit trail.
type ApprovalLogRepository interface {
	RecordApprovalAction(ctx context.Context, entry domain.ApprovalLogEntry) error
	ListApprovalLog(ctx context.Context, voucherNo string) ([]domain.ApprovalLogEntry, error)
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces.
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
	AttachmentRepository
	ApprovalLogRepository
}
