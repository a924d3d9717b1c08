package services

import (
	"context"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/crestprop/lease_ledger_app/internal/dto"
)

// VoucherSvcFacade is the voucher ledger gateway: it guards every mutating
// operation with the balance and state-machine invariants before the store
// call, and translates store outcomes into typed results.
type VoucherSvcFacade interface {
	// Validate checks a draft and returns every violation at once.
	Validate(req dto.CreateVoucherRequest) *apperrors.ValidationErrors

	// Create validates and submits a new voucher; the store assigns the number.
	Create(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*dto.VoucherResult, error)

	// Update revalidates and replaces a voucher. Fails with a protected error
	// when the target is approved.
	Update(ctx context.Context, voucherNo string, req dto.UpdateVoucherRequest, userID string) (*dto.VoucherResult, error)

	// SubmitForApproval moves a draft to pending.
	SubmitForApproval(ctx context.Context, voucherNo string, userID string) error

	// ApproveOrReject acts on a pending voucher. Reject requires a reason.
	ApproveOrReject(ctx context.Context, voucherNo string, req dto.ApprovalActionRequest, actorUserID string) error

	// BulkApproveOrReject acts on each voucher independently and reports
	// per-item outcomes; one failure never rolls back the others.
	BulkApproveOrReject(ctx context.Context, req dto.BulkApprovalRequest, actorUserID string) (*dto.BulkApprovalResponse, error)

	// ResetApproval returns an approved or rejected voucher to pending approval.
	ResetApproval(ctx context.Context, voucherNo string, userID string) error

	// Reverse posts a linked counter-entry for a posted voucher.
	Reverse(ctx context.Context, voucherNo string, reason string, userID string) (*dto.ReverseVoucherResult, error)

	// Delete removes a draft or pending voucher.
	Delete(ctx context.Context, voucherNo string, userID string) error

	// GetVoucher retrieves a voucher with its lines.
	GetVoucher(ctx context.Context, voucherNo string) (*domain.Voucher, error)

	// ListVouchers retrieves a filtered page of vouchers.
	ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)

	// AddAttachment attaches an encoded document to a voucher.
	AddAttachment(ctx context.Context, voucherNo string, req dto.AttachmentRequest, userID string) (*domain.Attachment, error)

	// RemoveAttachment detaches a document.
	RemoveAttachment(ctx context.Context, voucherNo string, attachmentID string, userID string) error

	// ListApprovalLog returns the approval audit trail of a voucher.
	ListApprovalLog(ctx context.Context, voucherNo string) ([]domain.ApprovalLogEntry, error)
}
