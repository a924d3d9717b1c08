package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/core/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) FindVoucherByNo(ctx context.Context, voucherNo string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindLinesByVoucherNo(ctx context.Context, voucherNo string) ([]domain.VoucherLine, error) {
	args := m.Called(ctx, voucherNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VoucherLine), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) ([]domain.Voucher, *string, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var nextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		nextToken = &tokenVal
	}
	return args.Get(0).([]domain.Voucher), nextToken, args.Error(2)
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine, attachments []domain.Attachment) (string, error) {
	args := m.Called(ctx, voucher, lines, attachments)
	return args.String(0), args.Error(1)
}

func (m *MockVoucherRepository) ReplaceVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error {
	args := m.Called(ctx, voucher, lines)
	return args.Error(0)
}

func (m *MockVoucherRepository) UpdatePostingStatus(ctx context.Context, voucherNo string, status domain.PostingStatus, updatedBy string, at time.Time) error {
	args := m.Called(ctx, voucherNo, status, updatedBy, at)
	return args.Error(0)
}

func (m *MockVoucherRepository) UpdateApproval(ctx context.Context, voucherNo string, posting domain.PostingStatus, approval domain.ApprovalStatus, approvedBy *string, approvedAt *time.Time, comments string, updatedBy string, at time.Time) error {
	args := m.Called(ctx, voucherNo, posting, approval, approvedBy, approvedAt, comments, updatedBy, at)
	return args.Error(0)
}

func (m *MockVoucherRepository) ResetApproval(ctx context.Context, voucherNo string, updatedBy string, at time.Time) error {
	args := m.Called(ctx, voucherNo, updatedBy, at)
	return args.Error(0)
}

func (m *MockVoucherRepository) SaveReversal(ctx context.Context, reversal domain.Voucher, lines []domain.VoucherLine, originalVoucherNo string) (string, error) {
	args := m.Called(ctx, reversal, lines, originalVoucherNo)
	return args.String(0), args.Error(1)
}

func (m *MockVoucherRepository) DeleteVoucher(ctx context.Context, voucherNo string) error {
	args := m.Called(ctx, voucherNo)
	return args.Error(0)
}

func (m *MockVoucherRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindAttachmentsByVoucherNo(ctx context.Context, voucherNo string) ([]domain.Attachment, error) {
	args := m.Called(ctx, voucherNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *MockVoucherRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	args := m.Called(ctx, attachmentID)
	return args.Error(0)
}

func (m *MockVoucherRepository) RecordApprovalAction(ctx context.Context, entry domain.ApprovalLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockVoucherRepository) ListApprovalLog(ctx context.Context, voucherNo string) ([]domain.ApprovalLogEntry, error) {
	args := m.Called(ctx, voucherNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalLogEntry), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepoForVoucher struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepoForVoucher)(nil)

func (m *MockAccountRepoForVoucher) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepoForVoucher) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepoForVoucher) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepoForVoucher) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepoForVoucher) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepoForVoucher) DeactivateAccount(ctx context.Context, accountID string, updatedBy string) error {
	args := m.Called(ctx, accountID, updatedBy)
	return args.Error(0)
}

// --- Mock UserService ---
type MockUserServiceForVoucher struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserServiceForVoucher)(nil)

func (m *MockUserServiceForVoucher) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserServiceForVoucher) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserServiceForVoucher) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserServiceForVoucher) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserServiceForVoucher) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserServiceForVoucher) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	args := m.Called(ctx, userID, deleterUserID)
	return args.Error(0)
}

func (m *MockUserServiceForVoucher) AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserServiceForVoucher) FindOrCreateSSOUser(ctx context.Context, email string, name string) (*domain.User, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserServiceForVoucher) StoreRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserServiceForVoucher) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type VoucherServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockVoucherRepository
	mockAccountRepo *MockAccountRepoForVoucher
	mockUserSvc     *MockUserServiceForVoucher
	service         portssvc.VoucherSvcFacade
	ctx             context.Context

	clerkID   string
	managerID string
	accountA  string
	accountB  string
}

func (s *VoucherServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockVoucherRepository)
	s.mockAccountRepo = new(MockAccountRepoForVoucher)
	s.mockUserSvc = new(MockUserServiceForVoucher)
	s.service = services.NewVoucherService(s.mockRepo, s.mockAccountRepo, s.mockUserSvc)
	s.ctx = context.Background()

	s.clerkID = uuid.NewString()
	s.managerID = uuid.NewString()
	s.accountA = uuid.NewString()
	s.accountB = uuid.NewString()
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}

func (s *VoucherServiceTestSuite) activeAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		s.accountA: {AccountID: s.accountA, AccountCode: "1001", IsActive: true},
		s.accountB: {AccountID: s.accountB, AccountCode: "4001", IsActive: true},
	}
}

func (s *VoucherServiceTestSuite) balancedRequest(debit, credit float64) dto.CreateVoucherRequest {
	return dto.CreateVoucherRequest{
		VoucherType:      string(domain.JournalVoucher),
		CompanyID:        "CO1",
		FiscalYear:       "2026",
		TransactionDate:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CurrencyCode:     "USD",
		Narration:        "Monthly rent accrual",
		RequiresApproval: true,
		Lines: []dto.CreateVoucherLineRequest{
			{
				AccountID:       s.accountA,
				DebitAmount:     decimal.NewFromFloat(debit),
				TransactionType: string(domain.Debit),
			},
			{
				AccountID:       s.accountB,
				CreditAmount:    decimal.NewFromFloat(credit),
				TransactionType: string(domain.Credit),
			},
		},
	}
}

func (s *VoucherServiceTestSuite) manager() *domain.User {
	return &domain.User{UserID: s.managerID, Role: domain.RoleManager}
}

// --- Validate ---

func (s *VoucherServiceTestSuite) TestValidate_BalancedVoucher() {
	verrs := s.service.Validate(s.balancedRequest(500, 500))
	s.Nil(verrs)
}

func (s *VoucherServiceTestSuite) TestValidate_WithinTolerance() {
	verrs := s.service.Validate(s.balancedRequest(500, 499.99))
	s.Nil(verrs)
}

func (s *VoucherServiceTestSuite) TestValidate_Unbalanced_SingleViolation() {
	verrs := s.service.Validate(s.balancedRequest(500, 499))
	s.Require().NotNil(verrs)
	s.Require().Len(verrs.Violations, 1)
	s.Equal("lines", verrs.Violations[0].Field)
	s.Contains(verrs.Violations[0].Message, "not balanced")
}

func (s *VoucherServiceTestSuite) TestValidate_LineViolationsReportedIndividually() {
	req := s.balancedRequest(500, 500)
	// First line carries both sides, second line carries neither.
	req.Lines[0].CreditAmount = decimal.NewFromInt(500)
	req.Lines[1].CreditAmount = decimal.Zero

	verrs := s.service.Validate(req)
	s.Require().NotNil(verrs)

	fields := make([]string, 0, len(verrs.Violations))
	for _, v := range verrs.Violations {
		fields = append(fields, v.Field)
	}
	s.Contains(fields, "lines[0]")
	s.Contains(fields, "lines[1]")
}

func (s *VoucherServiceTestSuite) TestValidate_NoLines() {
	req := s.balancedRequest(500, 500)
	req.Lines = nil

	verrs := s.service.Validate(req)
	s.Require().NotNil(verrs)
	s.Require().Len(verrs.Violations, 1)
	s.Contains(verrs.Violations[0].Message, "at least one")
}

func (s *VoucherServiceTestSuite) TestValidate_ChequePaymentNeedsBankDetails() {
	method := string(domain.PaymentCheque)
	req := s.balancedRequest(500, 500)
	req.VoucherType = string(domain.PaymentVoucher)
	req.PaymentMethod = &method
	req.PaidTo = "Acme Supplies"

	verrs := s.service.Validate(req)
	s.Require().NotNil(verrs)

	fields := make(map[string]bool)
	for _, v := range verrs.Violations {
		fields[v.Field] = true
	}
	s.True(fields["paymentAccountID"])
	s.True(fields["bankID"])
	s.True(fields["chequeNo"])
	s.True(fields["chequeDate"])
}

func (s *VoucherServiceTestSuite) TestValidate_CashPaymentSkipsBankDetails() {
	method := string(domain.PaymentCash)
	paymentAccount := uuid.NewString()
	req := s.balancedRequest(500, 500)
	req.VoucherType = string(domain.PaymentVoucher)
	req.PaymentMethod = &method
	req.PaymentAccountID = &paymentAccount
	req.PaidTo = "Acme Supplies"

	verrs := s.service.Validate(req)
	s.Nil(verrs)
}

// --- Create ---

func (s *VoucherServiceTestSuite) TestCreate_Success() {
	req := s.balancedRequest(500, 500)
	s.mockAccountRepo.On("FindAccountsByIDs", s.ctx, mock.Anything).Return(s.activeAccounts(), nil).Once()
	s.mockRepo.On("SaveVoucher", s.ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.PostingStatus == domain.PostingDraft && v.TotalAmount.Equal(decimal.NewFromInt(500))
	}), mock.Anything, mock.Anything).Return("JV-2026-000042", nil).Once()

	result, err := s.service.Create(s.ctx, req, s.clerkID)

	s.Require().NoError(err)
	s.Equal("JV-2026-000042", result.VoucherNo)
	s.NotEmpty(result.PostingID)
	s.mockRepo.AssertExpectations(s.T())
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestCreate_UnbalancedNeverReachesStore() {
	req := s.balancedRequest(500, 499)

	result, err := s.service.Create(s.ctx, req, s.clerkID)

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveVoucher", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestCreate_UnknownAccount() {
	req := s.balancedRequest(500, 500)
	accounts := s.activeAccounts()
	delete(accounts, s.accountB)
	s.mockAccountRepo.On("FindAccountsByIDs", s.ctx, mock.Anything).Return(accounts, nil).Once()

	_, err := s.service.Create(s.ctx, req, s.clerkID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "does not exist")
}

// --- Update ---

func (s *VoucherServiceTestSuite) TestUpdate_ApprovedVoucherProtected() {
	voucherNo := "JV-2026-000007"
	approved := &domain.Voucher{
		VoucherNo:        voucherNo,
		PostingStatus:    domain.PostingPosted,
		RequiresApproval: true,
		ApprovalStatus:   domain.ApprovalApproved,
	}
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(approved, nil).Once()

	_, err := s.service.Update(s.ctx, voucherNo, s.balancedRequest(500, 500), s.clerkID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrProtected)
	s.mockRepo.AssertNotCalled(s.T(), "ReplaceVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestUpdate_RejectedVoucherReturnsToDraft() {
	voucherNo := "JV-2026-000008"
	rejected := &domain.Voucher{
		VoucherNo:        voucherNo,
		PostingID:        uuid.NewString(),
		PostingStatus:    domain.PostingRejected,
		RequiresApproval: true,
		ApprovalStatus:   domain.ApprovalRejected,
	}
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(rejected, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDs", s.ctx, mock.Anything).Return(s.activeAccounts(), nil).Once()
	s.mockRepo.On("ReplaceVoucher", s.ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.PostingStatus == domain.PostingDraft && v.ApprovalStatus == domain.ApprovalPending
	}), mock.Anything).Return(nil).Once()

	_, err := s.service.Update(s.ctx, voucherNo, s.balancedRequest(500, 500), s.clerkID)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

// --- Submit / Approve / Reject ---

func (s *VoucherServiceTestSuite) TestSubmit_DraftToPending() {
	voucherNo := "JV-2026-000010"
	draft := &domain.Voucher{VoucherNo: voucherNo, PostingStatus: domain.PostingDraft, RequiresApproval: true}
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(draft, nil).Once()
	s.mockRepo.On("UpdatePostingStatus", s.ctx, voucherNo, domain.PostingPending, s.clerkID, mock.Anything).Return(nil).Once()
	s.mockRepo.On("RecordApprovalAction", s.ctx, mock.MatchedBy(func(e domain.ApprovalLogEntry) bool {
		return e.Action == domain.ActionSubmit
	})).Return(nil).Once()

	err := s.service.SubmitForApproval(s.ctx, voucherNo, s.clerkID)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestSubmit_NonDraftConflicts() {
	voucherNo := "JV-2026-000011"
	posted := &domain.Voucher{VoucherNo: voucherNo, PostingStatus: domain.PostingPosted}
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(posted, nil).Once()

	err := s.service.SubmitForApproval(s.ctx, voucherNo, s.clerkID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *VoucherServiceTestSuite) TestApprove_PostsVoucher() {
	voucherNo := "JV-2026-000012"
	pending := &domain.Voucher{VoucherNo: voucherNo, PostingStatus: domain.PostingPending, RequiresApproval: true}
	s.mockUserSvc.On("GetUserByID", s.ctx, s.managerID).Return(s.manager(), nil).Once()
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(pending, nil).Once()
	s.mockRepo.On("UpdateApproval", s.ctx, voucherNo, domain.PostingPosted, domain.ApprovalApproved, mock.Anything, mock.Anything, "", s.managerID, mock.Anything).Return(nil).Once()
	s.mockRepo.On("RecordApprovalAction", s.ctx, mock.MatchedBy(func(e domain.ApprovalLogEntry) bool {
		return e.Action == domain.ActionApprove && e.ActorID == s.managerID
	})).Return(nil).Once()

	err := s.service.ApproveOrReject(s.ctx, voucherNo, dto.ApprovalActionRequest{Action: "APPROVE"}, s.managerID)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestApprove_ClerkForbidden() {
	clerk := &domain.User{UserID: s.clerkID, Role: domain.RoleClerk}
	s.mockUserSvc.On("GetUserByID", s.ctx, s.clerkID).Return(clerk, nil).Once()

	err := s.service.ApproveOrReject(s.ctx, "JV-2026-000013", dto.ApprovalActionRequest{Action: "APPROVE"}, s.clerkID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "FindVoucherByNo", mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestReject_RequiresReason() {
	voucherNo := "JV-2026-000014"
	pending := &domain.Voucher{VoucherNo: voucherNo, PostingStatus: domain.PostingPending, RequiresApproval: true}
	s.mockUserSvc.On("GetUserByID", s.ctx, s.managerID).Return(s.manager(), nil).Once()
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(pending, nil).Once()

	err := s.service.ApproveOrReject(s.ctx, voucherNo, dto.ApprovalActionRequest{Action: "REJECT"}, s.managerID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestReject_WithReason() {
	voucherNo := "JV-2026-000015"
	pending := &domain.Voucher{VoucherNo: voucherNo, PostingStatus: domain.PostingPending, RequiresApproval: true}
	s.mockUserSvc.On("GetUserByID", s.ctx, s.managerID).Return(s.manager(), nil).Once()
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(pending, nil).Once()
	s.mockRepo.On("UpdateApproval", s.ctx, voucherNo, domain.PostingRejected, domain.ApprovalRejected, mock.Anything, mock.Anything, "missing supporting documents", s.managerID, mock.Anything).Return(nil).Once()
	s.mockRepo.On("RecordApprovalAction", s.ctx, mock.Anything).Return(nil).Once()

	err := s.service.ApproveOrReject(s.ctx, voucherNo, dto.ApprovalActionRequest{Action: "REJECT", Comments: "missing supporting documents"}, s.managerID)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

// --- Bulk approval ---

func (s *VoucherServiceTestSuite) TestBulkApprove_PartialFailure() {
	pendingNos := []string{"JV-1", "JV-2", "JV-4", "JV-5"}
	allNos := []string{"JV-1", "JV-2", "JV-3", "JV-4", "JV-5"}

	s.mockUserSvc.On("GetUserByID", s.ctx, s.managerID).Return(s.manager(), nil).Times(5)
	for _, no := range pendingNos {
		s.mockRepo.On("FindVoucherByNo", s.ctx, no).Return(&domain.Voucher{VoucherNo: no, PostingStatus: domain.PostingPending, RequiresApproval: true}, nil).Once()
		s.mockRepo.On("UpdateApproval", s.ctx, no, domain.PostingPosted, domain.ApprovalApproved, mock.Anything, mock.Anything, "", s.managerID, mock.Anything).Return(nil).Once()
	}
	// JV-3 is already posted and must fail without aborting the rest.
	s.mockRepo.On("FindVoucherByNo", s.ctx, "JV-3").Return(&domain.Voucher{VoucherNo: "JV-3", PostingStatus: domain.PostingPosted}, nil).Once()
	s.mockRepo.On("RecordApprovalAction", s.ctx, mock.Anything).Return(nil).Times(4)

	resp, err := s.service.BulkApproveOrReject(s.ctx, dto.BulkApprovalRequest{VoucherNos: allNos, Action: "APPROVE"}, s.managerID)

	s.Require().NoError(err)
	s.Equal(4, resp.Succeeded)
	s.Equal(1, resp.Failed)
	s.Require().Len(resp.Results, 5)
	s.True(resp.Results[0].Success)
	s.False(resp.Results[2].Success)
	s.Contains(resp.Results[2].Error, "PENDING")
	s.True(resp.Results[4].Success)
	s.mockRepo.AssertExpectations(s.T())
}

// --- Reversal ---

func (s *VoucherServiceTestSuite) TestReverse_SwapsDebitAndCredit() {
	voucherNo := "JV-2026-000020"
	posted := &domain.Voucher{
		VoucherNo:        voucherNo,
		PostingID:        uuid.NewString(),
		VoucherType:      domain.JournalVoucher,
		CompanyID:        "CO1",
		FiscalYear:       "2026",
		CurrencyCode:     "USD",
		TotalAmount:      decimal.NewFromInt(500),
		Narration:        "Monthly rent accrual",
		PostingStatus:    domain.PostingPosted,
		RequiresApproval: true,
		ApprovalStatus:   domain.ApprovalApproved,
	}
	originalLines := []domain.VoucherLine{
		{LineID: uuid.NewString(), VoucherNo: voucherNo, AccountID: s.accountA, DebitAmount: decimal.NewFromInt(500), TransactionType: domain.Debit},
		{LineID: uuid.NewString(), VoucherNo: voucherNo, AccountID: s.accountB, CreditAmount: decimal.NewFromInt(500), TransactionType: domain.Credit},
	}

	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(posted, nil).Once()
	s.mockRepo.On("FindLinesByVoucherNo", s.ctx, voucherNo).Return(originalLines, nil).Once()
	s.mockRepo.On("SaveReversal", s.ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.PostingStatus == domain.PostingPosted &&
			v.ReversalOfVoucherNo != nil && *v.ReversalOfVoucherNo == voucherNo &&
			v.ReversalReason == "posted against wrong period"
	}), mock.MatchedBy(func(lines []domain.VoucherLine) bool {
		if len(lines) != 2 {
			return false
		}
		first := lines[0].CreditAmount.Equal(decimal.NewFromInt(500)) && lines[0].TransactionType == domain.Credit && lines[0].AccountID == s.accountA
		second := lines[1].DebitAmount.Equal(decimal.NewFromInt(500)) && lines[1].TransactionType == domain.Debit && lines[1].AccountID == s.accountB
		return first && second
	}), voucherNo).Return("JV-2026-000021", nil).Once()
	s.mockRepo.On("RecordApprovalAction", s.ctx, mock.MatchedBy(func(e domain.ApprovalLogEntry) bool {
		return e.Action == domain.ActionReverse
	})).Return(nil).Once()

	result, err := s.service.Reverse(s.ctx, voucherNo, "posted against wrong period", s.managerID)

	s.Require().NoError(err)
	s.Equal("JV-2026-000021", result.ReversalVoucherNo)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestReverse_EmptyReason() {
	_, err := s.service.Reverse(s.ctx, "JV-2026-000022", "", s.managerID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "FindVoucherByNo", mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestReverse_AlreadyReversed() {
	voucherNo := "JV-2026-000023"
	reversedBy := "JV-2026-000024"
	reversed := &domain.Voucher{
		VoucherNo:           voucherNo,
		PostingStatus:       domain.PostingPosted,
		IsReversed:          true,
		ReversedByVoucherNo: &reversedBy,
	}
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(reversed, nil).Once()

	_, err := s.service.Reverse(s.ctx, voucherNo, "duplicate entry", s.managerID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockRepo.AssertNotCalled(s.T(), "SaveReversal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestReverse_DraftConflicts() {
	voucherNo := "JV-2026-000025"
	draft := &domain.Voucher{VoucherNo: voucherNo, PostingStatus: domain.PostingDraft}
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(draft, nil).Once()

	_, err := s.service.Reverse(s.ctx, voucherNo, "wrong amounts", s.managerID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
}

// --- Delete ---

func (s *VoucherServiceTestSuite) TestDelete_Draft() {
	voucherNo := "JV-2026-000030"
	draft := &domain.Voucher{VoucherNo: voucherNo, PostingStatus: domain.PostingDraft}
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(draft, nil).Once()
	s.mockRepo.On("DeleteVoucher", s.ctx, voucherNo).Return(nil).Once()

	err := s.service.Delete(s.ctx, voucherNo, s.clerkID)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestDelete_PostedProtected() {
	voucherNo := "JV-2026-000031"
	posted := &domain.Voucher{VoucherNo: voucherNo, PostingStatus: domain.PostingPosted}
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(posted, nil).Once()

	err := s.service.Delete(s.ctx, voucherNo, s.clerkID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrProtected)
	s.mockRepo.AssertNotCalled(s.T(), "DeleteVoucher", mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestDelete_ApprovedProtected() {
	voucherNo := "JV-2026-000032"
	approved := &domain.Voucher{
		VoucherNo:        voucherNo,
		PostingStatus:    domain.PostingPending,
		RequiresApproval: true,
		ApprovalStatus:   domain.ApprovalApproved,
	}
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(approved, nil).Once()

	err := s.service.Delete(s.ctx, voucherNo, s.clerkID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrProtected)
}

// --- ResetApproval ---

func (s *VoucherServiceTestSuite) TestResetApproval_Approved() {
	voucherNo := "JV-2026-000040"
	approved := &domain.Voucher{
		VoucherNo:        voucherNo,
		PostingStatus:    domain.PostingPosted,
		RequiresApproval: true,
		ApprovalStatus:   domain.ApprovalApproved,
	}
	s.mockUserSvc.On("GetUserByID", s.ctx, s.managerID).Return(s.manager(), nil).Once()
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(approved, nil).Once()
	s.mockRepo.On("ResetApproval", s.ctx, voucherNo, s.managerID, mock.Anything).Return(nil).Once()
	s.mockRepo.On("RecordApprovalAction", s.ctx, mock.MatchedBy(func(e domain.ApprovalLogEntry) bool {
		return e.Action == domain.ActionReset
	})).Return(nil).Once()

	err := s.service.ResetApproval(s.ctx, voucherNo, s.managerID)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestResetApproval_ReversedVoucherStaysFrozen() {
	voucherNo := "JV-2026-000041"
	reversed := &domain.Voucher{
		VoucherNo:        voucherNo,
		PostingStatus:    domain.PostingPosted,
		RequiresApproval: true,
		ApprovalStatus:   domain.ApprovalApproved,
		IsReversed:       true,
	}
	s.mockUserSvc.On("GetUserByID", s.ctx, s.managerID).Return(s.manager(), nil).Once()
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(reversed, nil).Once()

	err := s.service.ResetApproval(s.ctx, voucherNo, s.managerID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockRepo.AssertNotCalled(s.T(), "ResetApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Lifecycle walk-through ---

func (s *VoucherServiceTestSuite) TestLifecycle_CreateSubmitApproveDeleteReverse() {
	voucherNo := "JV-2026-000050"

	// Create.
	s.mockAccountRepo.On("FindAccountsByIDs", s.ctx, mock.Anything).Return(s.activeAccounts(), nil).Once()
	s.mockRepo.On("SaveVoucher", s.ctx, mock.Anything, mock.Anything, mock.Anything).Return(voucherNo, nil).Once()
	result, err := s.service.Create(s.ctx, s.balancedRequest(500, 500), s.clerkID)
	s.Require().NoError(err)
	s.Equal(voucherNo, result.VoucherNo)

	// Submit.
	draft := &domain.Voucher{VoucherNo: voucherNo, PostingStatus: domain.PostingDraft, RequiresApproval: true}
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(draft, nil).Once()
	s.mockRepo.On("UpdatePostingStatus", s.ctx, voucherNo, domain.PostingPending, s.clerkID, mock.Anything).Return(nil).Once()
	s.mockRepo.On("RecordApprovalAction", s.ctx, mock.Anything).Return(nil)
	s.Require().NoError(s.service.SubmitForApproval(s.ctx, voucherNo, s.clerkID))

	// Approve posts it.
	pending := &domain.Voucher{VoucherNo: voucherNo, PostingStatus: domain.PostingPending, RequiresApproval: true}
	s.mockUserSvc.On("GetUserByID", s.ctx, s.managerID).Return(s.manager(), nil).Once()
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(pending, nil).Once()
	s.mockRepo.On("UpdateApproval", s.ctx, voucherNo, domain.PostingPosted, domain.ApprovalApproved, mock.Anything, mock.Anything, "", s.managerID, mock.Anything).Return(nil).Once()
	s.Require().NoError(s.service.ApproveOrReject(s.ctx, voucherNo, dto.ApprovalActionRequest{Action: "APPROVE"}, s.managerID))

	// Delete is now protected.
	posted := &domain.Voucher{
		VoucherNo:        voucherNo,
		PostingStatus:    domain.PostingPosted,
		RequiresApproval: true,
		ApprovalStatus:   domain.ApprovalApproved,
	}
	s.mockRepo.On("FindVoucherByNo", s.ctx, voucherNo).Return(posted, nil).Twice()
	err = s.service.Delete(s.ctx, voucherNo, s.clerkID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrProtected)

	// Reverse succeeds with swapped sides.
	lines := []domain.VoucherLine{
		{LineID: uuid.NewString(), AccountID: s.accountA, DebitAmount: decimal.NewFromInt(500), TransactionType: domain.Debit},
		{LineID: uuid.NewString(), AccountID: s.accountB, CreditAmount: decimal.NewFromInt(500), TransactionType: domain.Credit},
	}
	s.mockRepo.On("FindLinesByVoucherNo", s.ctx, voucherNo).Return(lines, nil).Once()
	s.mockRepo.On("SaveReversal", s.ctx, mock.Anything, mock.MatchedBy(func(revLines []domain.VoucherLine) bool {
		return len(revLines) == 2 && revLines[0].TransactionType == domain.Credit && revLines[1].TransactionType == domain.Debit
	}), voucherNo).Return("JV-2026-000051", nil).Once()
	revResult, err := s.service.Reverse(s.ctx, voucherNo, "period correction", s.managerID)
	s.Require().NoError(err)
	s.Equal("JV-2026-000051", revResult.ReversalVoucherNo)

	s.mockRepo.AssertExpectations(s.T())
}

func TestValidate_NoStoreInteraction(t *testing.T) {
	repo := new(MockVoucherRepository)
	accountRepo := new(MockAccountRepoForVoucher)
	userSvc := new(MockUserServiceForVoucher)
	svc := services.NewVoucherService(repo, accountRepo, userSvc)

	verrs := svc.Validate(dto.CreateVoucherRequest{VoucherType: "JOURNAL"})

	assert.NotNil(t, verrs)
	repo.AssertNotCalled(t, "SaveVoucher", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
