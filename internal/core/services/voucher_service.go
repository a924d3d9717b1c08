package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/attachments"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/crestprop/lease_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// voucherService implements the voucher ledger gateway on top of the voucher
// repository facade. Validation runs locally and collects every violation
// before anything touches the store.
type voucherService struct {
	voucherRepo portsrepo.VoucherRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	userSvc     portssvc.UserSvcFacade
	encoder     attachments.Encoder
}

// NewVoucherService creates a new voucher service instance.
func NewVoucherService(
	voucherRepo portsrepo.VoucherRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	userSvc portssvc.UserSvcFacade,
) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo: voucherRepo,
		accountRepo: accountRepo,
		userSvc:     userSvc,
		encoder:     attachments.NewEncoder(),
	}
}

// Validate checks a voucher draft without persisting anything. Violations are
// collected rather than returned on first failure, so a caller sees the whole
// picture in one round trip. Returns nil when the draft is valid.
func (s *voucherService) Validate(req dto.CreateVoucherRequest) *apperrors.ValidationErrors {
	verrs := &apperrors.ValidationErrors{}

	if req.TransactionDate.IsZero() {
		verrs.Add("transactionDate", "transaction date is required")
	}
	if req.CompanyID == "" {
		verrs.Add("companyID", "company is required")
	}
	if req.FiscalYear == "" {
		verrs.Add("fiscalYear", "fiscal year is required")
	}
	if req.CurrencyCode == "" {
		verrs.Add("currencyCode", "currency code is required")
	}

	voucherType := domain.VoucherType(req.VoucherType)
	switch voucherType {
	case domain.JournalVoucher, domain.PaymentVoucher, domain.LeaseRevenueVoucher:
	default:
		verrs.Add("voucherType", fmt.Sprintf("unknown voucher type %q", req.VoucherType))
	}

	if voucherType == domain.PaymentVoucher {
		s.validatePaymentFields(req, verrs)
	}

	if len(req.Lines) == 0 {
		verrs.Add("lines", "at least one voucher line is required")
		return verrs
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, lineReq := range req.Lines {
		line := lineFromRequest(lineReq)
		if err := line.Validate(); err != nil {
			verrs.Add(fmt.Sprintf("lines[%d]", i), err.Error())
			continue
		}
		totalDebit = totalDebit.Add(line.DebitAmount)
		totalCredit = totalCredit.Add(line.CreditAmount)
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(accounting.BalanceTolerance) {
		verrs.Add("lines", fmt.Sprintf("voucher is not balanced: total debits %s do not match total credits %s", totalDebit.String(), totalCredit.String()))
	}

	for i, att := range req.Attachments {
		if _, err := s.encoder.Decode(att); err != nil {
			verrs.Add(fmt.Sprintf("attachments[%d]", i), err.Error())
		}
	}

	if !verrs.HasErrors() {
		return nil
	}
	return verrs
}

func (s *voucherService) validatePaymentFields(req dto.CreateVoucherRequest, verrs *apperrors.ValidationErrors) {
	if req.PaymentMethod == nil || *req.PaymentMethod == "" {
		verrs.Add("paymentMethod", "payment method is required for payment vouchers")
		return
	}
	method := domain.PaymentMethod(*req.PaymentMethod)
	switch method {
	case domain.PaymentCash, domain.PaymentCheque, domain.PaymentTransfer:
	default:
		verrs.Add("paymentMethod", fmt.Sprintf("unknown payment method %q", *req.PaymentMethod))
		return
	}
	if req.PaidTo == "" {
		verrs.Add("paidTo", "payee is required for payment vouchers")
	}
	if req.PaymentAccountID == nil || *req.PaymentAccountID == "" {
		verrs.Add("paymentAccountID", "payment account is required for payment vouchers")
	}
	if method.RequiresBankDetails() {
		if req.BankID == nil || *req.BankID == "" {
			verrs.Add("bankID", fmt.Sprintf("bank is required for %s payments", method))
		}
		if method == domain.PaymentCheque {
			if req.ChequeNo == nil || *req.ChequeNo == "" {
				verrs.Add("chequeNo", "cheque number is required for cheque payments")
			}
			if req.ChequeDate == nil {
				verrs.Add("chequeDate", "cheque date is required for cheque payments")
			}
		}
	}
}

// Create validates the request, verifies the referenced accounts, and saves a
// new voucher in DRAFT. The store assigns the voucher number.
func (s *voucherService) Create(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*dto.VoucherResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if verrs := s.Validate(req); verrs != nil {
		logger.Warn("Voucher validation failed", "violations", len(verrs.Violations))
		return nil, verrs
	}
	if err := s.checkAccounts(ctx, req.Lines); err != nil {
		return nil, err
	}

	now := time.Now()
	voucher, lines := buildVoucher(req, creatorUserID, now)
	attachments := buildAttachments(req.Attachments, creatorUserID, now)

	voucherNo, err := s.voucherRepo.SaveVoucher(ctx, voucher, lines, attachments)
	if err != nil {
		logger.Error("Failed to save voucher", "error", err)
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	logger.Info("Voucher created", "voucherNo", voucherNo, "postingID", voucher.PostingID)
	return &dto.VoucherResult{VoucherNo: voucherNo, PostingID: voucher.PostingID}, nil
}

// Update replaces the header and lines of an existing voucher. Approved and
// posted vouchers are protected; updating a rejected voucher returns it to
// DRAFT so the workflow restarts.
func (s *voucherService) Update(ctx context.Context, voucherNo string, req dto.UpdateVoucherRequest, userID string) (*dto.VoucherResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.voucherRepo.FindVoucherByNo(ctx, voucherNo)
	if err != nil {
		return nil, err
	}
	if existing.IsApproved() {
		return nil, fmt.Errorf("%w: voucher %s is approved and cannot be modified until its approval is reset", apperrors.ErrProtected, voucherNo)
	}
	if existing.PostingStatus == domain.PostingPosted {
		return nil, fmt.Errorf("%w: voucher %s is posted; create a reversal instead of editing it", apperrors.ErrProtected, voucherNo)
	}

	if verrs := s.Validate(req); verrs != nil {
		logger.Warn("Voucher validation failed", "voucherNo", voucherNo, "violations", len(verrs.Violations))
		return nil, verrs
	}
	if err := s.checkAccounts(ctx, req.Lines); err != nil {
		return nil, err
	}

	now := time.Now()
	voucher, lines := buildVoucher(req, userID, now)
	voucher.VoucherNo = existing.VoucherNo
	voucher.PostingID = existing.PostingID
	voucher.PostingStatus = existing.PostingStatus
	// Editing a rejected voucher puts it back at the start of the workflow.
	if existing.PostingStatus == domain.PostingRejected {
		voucher.PostingStatus = domain.PostingDraft
		voucher.ApprovalStatus = domain.ApprovalPending
	}
	voucher.CreatedAt = existing.CreatedAt
	voucher.CreatedBy = existing.CreatedBy
	for i := range lines {
		lines[i].VoucherNo = voucher.VoucherNo
	}

	if err := s.voucherRepo.ReplaceVoucher(ctx, voucher, lines); err != nil {
		logger.Error("Failed to update voucher", "voucherNo", voucherNo, "error", err)
		return nil, fmt.Errorf("failed to update voucher: %w", err)
	}

	logger.Info("Voucher updated", "voucherNo", voucherNo)
	return &dto.VoucherResult{VoucherNo: voucher.VoucherNo, PostingID: voucher.PostingID}, nil
}

// SubmitForApproval moves a DRAFT voucher to PENDING. Vouchers that do not
// require approval post directly.
func (s *voucherService) SubmitForApproval(ctx context.Context, voucherNo string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := s.voucherRepo.FindVoucherByNo(ctx, voucherNo)
	if err != nil {
		return err
	}
	if voucher.PostingStatus != domain.PostingDraft {
		return fmt.Errorf("%w: voucher %s is %s, only DRAFT vouchers can be submitted", apperrors.ErrConflict, voucherNo, voucher.PostingStatus)
	}

	target := domain.PostingPending
	if !voucher.RequiresApproval {
		target = domain.PostingPosted
	}
	if err := s.voucherRepo.UpdatePostingStatus(ctx, voucherNo, target, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to submit voucher: %w", err)
	}
	s.logApprovalAction(ctx, voucherNo, domain.ActionSubmit, userID, "")
	logger.Info("Voucher submitted", "voucherNo", voucherNo, "postingStatus", target)
	return nil
}

// ApproveOrReject decides a PENDING voucher. Approval posts it; rejection
// requires a non-empty reason. Only managers and admins may decide.
func (s *voucherService) ApproveOrReject(ctx context.Context, voucherNo string, req dto.ApprovalActionRequest, actorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.userSvc.GetUserByID(ctx, actorUserID)
	if err != nil {
		return fmt.Errorf("failed to load approver: %w", err)
	}
	if !actor.Role.CanApprove() {
		return fmt.Errorf("%w: role %s cannot approve or reject vouchers", apperrors.ErrForbidden, actor.Role)
	}

	voucher, err := s.voucherRepo.FindVoucherByNo(ctx, voucherNo)
	if err != nil {
		return err
	}
	if voucher.PostingStatus != domain.PostingPending {
		return fmt.Errorf("%w: voucher %s is %s, only PENDING vouchers can be approved or rejected", apperrors.ErrConflict, voucherNo, voucher.PostingStatus)
	}

	now := time.Now()
	switch req.Action {
	case "APPROVE":
		err = s.voucherRepo.UpdateApproval(ctx, voucherNo, domain.PostingPosted, domain.ApprovalApproved, &actorUserID, &now, req.Comments, actorUserID, now)
		if err == nil {
			s.logApprovalAction(ctx, voucherNo, domain.ActionApprove, actorUserID, req.Comments)
			logger.Info("Voucher approved and posted", "voucherNo", voucherNo)
		}
	case "REJECT":
		if req.Comments == "" {
			verrs := &apperrors.ValidationErrors{}
			verrs.Add("comments", "a rejection reason is required")
			return verrs
		}
		err = s.voucherRepo.UpdateApproval(ctx, voucherNo, domain.PostingRejected, domain.ApprovalRejected, &actorUserID, &now, req.Comments, actorUserID, now)
		if err == nil {
			s.logApprovalAction(ctx, voucherNo, domain.ActionReject, actorUserID, req.Comments)
			logger.Info("Voucher rejected", "voucherNo", voucherNo)
		}
	default:
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("action", fmt.Sprintf("unknown approval action %q", req.Action))
		return verrs
	}
	if err != nil {
		return fmt.Errorf("failed to record approval decision: %w", err)
	}
	return nil
}

// BulkApproveOrReject decides a batch of vouchers one by one. A failure on
// one voucher never rolls back or aborts the rest; every item reports its
// own outcome.
func (s *voucherService) BulkApproveOrReject(ctx context.Context, req dto.BulkApprovalRequest, actorUserID string) (*dto.BulkApprovalResponse, error) {
	resp := &dto.BulkApprovalResponse{
		Results: make([]dto.BulkApprovalItemResult, 0, len(req.VoucherNos)),
	}

	for _, voucherNo := range req.VoucherNos {
		item := dto.BulkApprovalItemResult{VoucherNo: voucherNo}
		err := s.ApproveOrReject(ctx, voucherNo, dto.ApprovalActionRequest{Action: req.Action, Comments: req.Comments}, actorUserID)
		if err != nil {
			item.Error = err.Error()
			resp.Failed++
		} else {
			item.Success = true
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, item)
	}

	return resp, nil
}

// ResetApproval returns a decided voucher to PENDING so it can be edited and
// re-approved. Reversed vouchers stay frozen.
func (s *voucherService) ResetApproval(ctx context.Context, voucherNo string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.userSvc.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load approver: %w", err)
	}
	if !actor.Role.CanApprove() {
		return fmt.Errorf("%w: role %s cannot reset voucher approvals", apperrors.ErrForbidden, actor.Role)
	}

	voucher, err := s.voucherRepo.FindVoucherByNo(ctx, voucherNo)
	if err != nil {
		return err
	}
	if voucher.IsReversed {
		return fmt.Errorf("%w: voucher %s has been reversed and its approval cannot be reset", apperrors.ErrConflict, voucherNo)
	}
	if !voucher.RequiresApproval || voucher.ApprovalStatus == domain.ApprovalPending {
		return fmt.Errorf("%w: voucher %s has no approval decision to reset", apperrors.ErrConflict, voucherNo)
	}

	if err := s.voucherRepo.ResetApproval(ctx, voucherNo, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to reset approval: %w", err)
	}
	s.logApprovalAction(ctx, voucherNo, domain.ActionReset, userID, "")
	logger.Info("Voucher approval reset", "voucherNo", voucherNo)
	return nil
}

// Reverse creates a posted counter-voucher with debit and credit sides
// swapped, linked both ways to the original. The original is flagged as
// reversed and can never be reversed again.
func (s *voucherService) Reverse(ctx context.Context, voucherNo string, reason string, userID string) (*dto.ReverseVoucherResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reason == "" {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("reason", "a reversal reason is required")
		return nil, verrs
	}

	original, err := s.voucherRepo.FindVoucherByNo(ctx, voucherNo)
	if err != nil {
		return nil, err
	}
	if !original.IsReversible() {
		if original.IsReversed {
			return nil, fmt.Errorf("%w: voucher %s has already been reversed", apperrors.ErrConflict, voucherNo)
		}
		return nil, fmt.Errorf("%w: voucher %s is %s, only POSTED vouchers can be reversed", apperrors.ErrConflict, voucherNo, original.PostingStatus)
	}

	originalLines, err := s.voucherRepo.FindLinesByVoucherNo(ctx, voucherNo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	reversal := domain.Voucher{
		PostingID:           uuid.NewString(),
		VoucherType:         original.VoucherType,
		CompanyID:           original.CompanyID,
		FiscalYear:          original.FiscalYear,
		TransactionDate:     now,
		PostingDate:         now,
		CurrencyCode:        original.CurrencyCode,
		ExchangeRate:        original.ExchangeRate,
		TotalAmount:         original.TotalAmount,
		Narration:           fmt.Sprintf("Reversal of %s: %s", voucherNo, original.Narration),
		PostingStatus:       domain.PostingPosted,
		RequiresApproval:    false,
		ReversalOfVoucherNo: &voucherNo,
		ReversalReason:      reason,
		AuditFields:         audit,
	}

	reversalLines := accounting.NegateLines(originalLines)
	for i := range reversalLines {
		reversalLines[i].LineID = uuid.NewString()
		reversalLines[i].VoucherNo = ""
		reversalLines[i].AuditFields = audit
	}

	reversalNo, err := s.voucherRepo.SaveReversal(ctx, reversal, reversalLines, voucherNo)
	if err != nil {
		logger.Error("Failed to save reversal", "voucherNo", voucherNo, "error", err)
		return nil, fmt.Errorf("failed to save reversal: %w", err)
	}
	s.logApprovalAction(ctx, voucherNo, domain.ActionReverse, userID, reason)

	logger.Info("Voucher reversed", "voucherNo", voucherNo, "reversalVoucherNo", reversalNo)
	return &dto.ReverseVoucherResult{ReversalVoucherNo: reversalNo}, nil
}

// Delete removes a voucher that has not yet been posted or approved.
func (s *voucherService) Delete(ctx context.Context, voucherNo string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := s.voucherRepo.FindVoucherByNo(ctx, voucherNo)
	if err != nil {
		return err
	}
	if voucher.IsApproved() {
		return fmt.Errorf("%w: voucher %s is approved and cannot be deleted", apperrors.ErrProtected, voucherNo)
	}
	if !voucher.IsDeletable() {
		return fmt.Errorf("%w: voucher %s is %s and cannot be deleted", apperrors.ErrProtected, voucherNo, voucher.PostingStatus)
	}

	if err := s.voucherRepo.DeleteVoucher(ctx, voucherNo); err != nil {
		return fmt.Errorf("failed to delete voucher: %w", err)
	}
	logger.Info("Voucher deleted", "voucherNo", voucherNo, "deletedBy", userID)
	return nil
}

// GetVoucher returns a single voucher with its lines.
func (s *voucherService) GetVoucher(ctx context.Context, voucherNo string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByNo(ctx, voucherNo)
	if err != nil {
		return nil, err
	}
	lines, err := s.voucherRepo.FindLinesByVoucherNo(ctx, voucherNo)
	if err != nil {
		return nil, err
	}
	voucher.Lines = lines
	return voucher, nil
}

// ListVouchers returns a page of vouchers matching the filter parameters.
func (s *voucherService) ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	vouchers, nextToken, err := s.voucherRepo.ListVouchers(ctx, companyID, params)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListVouchersResponse{
		Vouchers:  make([]dto.VoucherResponse, 0, len(vouchers)),
		NextToken: nextToken,
	}
	for i := range vouchers {
		if params.IncludeLines {
			lines, err := s.voucherRepo.FindLinesByVoucherNo(ctx, vouchers[i].VoucherNo)
			if err != nil {
				return nil, err
			}
			vouchers[i].Lines = lines
		}
		resp.Vouchers = append(resp.Vouchers, dto.ToVoucherResponse(&vouchers[i]))
	}
	return resp, nil
}

// AddAttachment attaches an encoded document to an existing voucher.
// Attachments have their own lifecycle and may be added after posting.
func (s *voucherService) AddAttachment(ctx context.Context, voucherNo string, req dto.AttachmentRequest, userID string) (*domain.Attachment, error) {
	voucher, err := s.voucherRepo.FindVoucherByNo(ctx, voucherNo)
	if err != nil {
		return nil, err
	}

	if _, err := s.encoder.Decode(req); err != nil {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("contentBase64", err.Error())
		return nil, verrs
	}

	now := time.Now()
	attachment := domain.Attachment{
		AttachmentID:  uuid.NewString(),
		VoucherNo:     voucher.VoucherNo,
		FileName:      req.FileName,
		ContentType:   req.ContentType,
		SizeBytes:     req.SizeBytes,
		DocumentType:  req.DocumentType,
		ContentBase64: req.ContentBase64,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.voucherRepo.SaveAttachment(ctx, attachment); err != nil {
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}
	return &attachment, nil
}

// RemoveAttachment detaches a document from a voucher.
func (s *voucherService) RemoveAttachment(ctx context.Context, voucherNo string, attachmentID string, userID string) error {
	if _, err := s.voucherRepo.FindVoucherByNo(ctx, voucherNo); err != nil {
		return err
	}
	if err := s.voucherRepo.DeleteAttachment(ctx, attachmentID); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

// ListApprovalLog returns the recorded workflow actions for a voucher.
func (s *voucherService) ListApprovalLog(ctx context.Context, voucherNo string) ([]domain.ApprovalLogEntry, error) {
	return s.voucherRepo.ListApprovalLog(ctx, voucherNo)
}

// checkAccounts verifies that every referenced account exists and is active.
func (s *voucherService) checkAccounts(ctx context.Context, lines []dto.CreateVoucherLineRequest) error {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if l.AccountID == "" {
			continue
		}
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	if len(ids) == 0 {
		return nil
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to verify accounts: %w", err)
	}

	verrs := &apperrors.ValidationErrors{}
	for _, id := range ids {
		account, ok := accounts[id]
		if !ok {
			verrs.Add("lines", fmt.Sprintf("account %s does not exist", id))
			continue
		}
		if !account.IsActive {
			verrs.Add("lines", fmt.Sprintf("account %s (%s) is inactive", account.AccountCode, id))
		}
	}
	return verrs.ErrOrNil()
}

func (s *voucherService) logApprovalAction(ctx context.Context, voucherNo string, action domain.ApprovalAction, actorUserID, comments string) {
	entry := domain.ApprovalLogEntry{
		EntryID:   uuid.NewString(),
		VoucherNo: voucherNo,
		ActorID:   actorUserID,
		Action:    action,
		Comments:  comments,
		ActedAt:   time.Now(),
	}
	if err := s.voucherRepo.RecordApprovalAction(ctx, entry); err != nil {
		// The workflow decision already committed; a missing log row is not
		// worth failing the request over.
		middleware.GetLoggerFromCtx(ctx).Error("Failed to record approval action", "voucherNo", voucherNo, "action", action, "error", err)
	}
}

func lineFromRequest(req dto.CreateVoucherLineRequest) domain.VoucherLine {
	return domain.VoucherLine{
		AccountID:       req.AccountID,
		DebitAmount:     req.DebitAmount,
		CreditAmount:    req.CreditAmount,
		TransactionType: domain.TransactionType(req.TransactionType),
		CostCenterID:    req.CostCenterID,
		CustomerID:      req.CustomerID,
		SupplierID:      req.SupplierID,
		Description:     req.Description,
	}
}

func buildVoucher(req dto.CreateVoucherRequest, userID string, now time.Time) (domain.Voucher, []domain.VoucherLine) {
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	lines := make([]domain.VoucherLine, 0, len(req.Lines))
	for _, lineReq := range req.Lines {
		line := lineFromRequest(lineReq)
		line.LineID = uuid.NewString()
		line.AuditFields = audit
		lines = append(lines, line)
	}

	postingDate := now
	if req.PostingDate != nil {
		postingDate = *req.PostingDate
	}
	exchangeRate := req.ExchangeRate
	if exchangeRate.IsZero() {
		exchangeRate = decimal.NewFromInt(1)
	}

	voucher := domain.Voucher{
		PostingID:        uuid.NewString(),
		VoucherType:      domain.VoucherType(req.VoucherType),
		CompanyID:        req.CompanyID,
		FiscalYear:       req.FiscalYear,
		TransactionDate:  req.TransactionDate,
		PostingDate:      postingDate,
		CurrencyCode:     req.CurrencyCode,
		ExchangeRate:     exchangeRate,
		TotalAmount:      accounting.VoucherAmount(lines),
		Narration:        req.Narration,
		PostingStatus:    domain.PostingDraft,
		RequiresApproval: req.RequiresApproval,
		ApprovalStatus:   domain.ApprovalPending,
		AuditFields:      audit,
	}
	if voucher.VoucherType == domain.PaymentVoucher && req.PaymentMethod != nil {
		method := domain.PaymentMethod(*req.PaymentMethod)
		voucher.PaymentMethod = &method
		voucher.PaymentAccountID = req.PaymentAccountID
		voucher.BankID = req.BankID
		voucher.ChequeNo = req.ChequeNo
		voucher.ChequeDate = req.ChequeDate
		voucher.PaidTo = req.PaidTo
	}
	return voucher, lines
}

func buildAttachments(reqs []dto.AttachmentRequest, userID string, now time.Time) []domain.Attachment {
	if len(reqs) == 0 {
		return nil
	}
	attachments := make([]domain.Attachment, 0, len(reqs))
	for _, req := range reqs {
		attachments = append(attachments, domain.Attachment{
			AttachmentID:  uuid.NewString(),
			FileName:      req.FileName,
			ContentType:   req.ContentType,
			SizeBytes:     req.SizeBytes,
			DocumentType:  req.DocumentType,
			ContentBase64: req.ContentBase64,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		})
	}
	return attachments
}
