package services_test

import (
	"context"
	"errors"
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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ContractRepository ---
type MockContractRepository struct {
	mock.Mock
}

var _ portsrepo.ContractRepositoryFacade = (*MockContractRepository)(nil)

func (m *MockContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) ListContracts(ctx context.Context, companyID string, params dto.ListContractsParams) ([]domain.Contract, *string, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var nextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		nextToken = &tokenVal
	}
	return args.Get(0).([]domain.Contract), nextToken, args.Error(2)
}

func (m *MockContractRepository) ListBillableContracts(ctx context.Context, asOf time.Time) ([]domain.Contract, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) AdvanceNextBillingDate(ctx context.Context, contractID string, next time.Time, updatedBy string, at time.Time) error {
	args := m.Called(ctx, contractID, next, updatedBy, at)
	return args.Error(0)
}

func (m *MockContractRepository) SaveLeaseInvoice(ctx context.Context, invoice domain.LeaseInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockContractRepository) FindInvoicesByContract(ctx context.Context, contractID string) ([]domain.LeaseInvoice, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaseInvoice), args.Error(1)
}

func (m *MockContractRepository) LinkInvoiceVoucher(ctx context.Context, invoiceID string, voucherNo string, status domain.LeaseInvoiceStatus, updatedBy string, at time.Time) error {
	args := m.Called(ctx, invoiceID, voucherNo, status, updatedBy, at)
	return args.Error(0)
}

// --- Mock VoucherService ---
type MockVoucherService struct {
	mock.Mock
}

var _ portssvc.VoucherSvcFacade = (*MockVoucherService)(nil)

func (m *MockVoucherService) Validate(req dto.CreateVoucherRequest) *apperrors.ValidationErrors {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*apperrors.ValidationErrors)
}

func (m *MockVoucherService) Create(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*dto.VoucherResult, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VoucherResult), args.Error(1)
}

func (m *MockVoucherService) Update(ctx context.Context, voucherNo string, req dto.UpdateVoucherRequest, userID string) (*dto.VoucherResult, error) {
	args := m.Called(ctx, voucherNo, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VoucherResult), args.Error(1)
}

func (m *MockVoucherService) SubmitForApproval(ctx context.Context, voucherNo string, userID string) error {
	args := m.Called(ctx, voucherNo, userID)
	return args.Error(0)
}

func (m *MockVoucherService) ApproveOrReject(ctx context.Context, voucherNo string, req dto.ApprovalActionRequest, actorUserID string) error {
	args := m.Called(ctx, voucherNo, req, actorUserID)
	return args.Error(0)
}

func (m *MockVoucherService) BulkApproveOrReject(ctx context.Context, req dto.BulkApprovalRequest, actorUserID string) (*dto.BulkApprovalResponse, error) {
	args := m.Called(ctx, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BulkApprovalResponse), args.Error(1)
}

func (m *MockVoucherService) ResetApproval(ctx context.Context, voucherNo string, userID string) error {
	args := m.Called(ctx, voucherNo, userID)
	return args.Error(0)
}

func (m *MockVoucherService) Reverse(ctx context.Context, voucherNo string, reason string, userID string) (*dto.ReverseVoucherResult, error) {
	args := m.Called(ctx, voucherNo, reason, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReverseVoucherResult), args.Error(1)
}

func (m *MockVoucherService) Delete(ctx context.Context, voucherNo string, userID string) error {
	args := m.Called(ctx, voucherNo, userID)
	return args.Error(0)
}

func (m *MockVoucherService) GetVoucher(ctx context.Context, voucherNo string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListVouchersResponse), args.Error(1)
}

func (m *MockVoucherService) AddAttachment(ctx context.Context, voucherNo string, req dto.AttachmentRequest, userID string) (*domain.Attachment, error) {
	args := m.Called(ctx, voucherNo, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockVoucherService) RemoveAttachment(ctx context.Context, voucherNo string, attachmentID string, userID string) error {
	args := m.Called(ctx, voucherNo, attachmentID, userID)
	return args.Error(0)
}

func (m *MockVoucherService) ListApprovalLog(ctx context.Context, voucherNo string) ([]domain.ApprovalLogEntry, error) {
	args := m.Called(ctx, voucherNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalLogEntry), args.Error(1)
}

// --- Test Suite ---
type LeaseInvoiceServiceTestSuite struct {
	suite.Suite
	mockContractRepo *MockContractRepository
	mockVoucherSvc   *MockVoucherService
	service          portssvc.LeaseInvoiceSvcFacade
	ctx              context.Context
	actorID          string
}

func (s *LeaseInvoiceServiceTestSuite) SetupTest() {
	s.mockContractRepo = new(MockContractRepository)
	s.mockVoucherSvc = new(MockVoucherService)
	s.service = services.NewLeaseInvoiceService(s.mockContractRepo, s.mockVoucherSvc)
	s.ctx = context.Background()
	s.actorID = uuid.NewString()
}

func TestLeaseInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaseInvoiceServiceTestSuite))
}

func (s *LeaseInvoiceServiceTestSuite) billableContract(contractNo string, rent int64) domain.Contract {
	return domain.Contract{
		ContractID:        uuid.NewString(),
		ContractNo:        contractNo,
		CompanyID:         "CO1",
		PropertyUnit:      "Tower A / 1203",
		TenantID:          uuid.NewString(),
		TenantName:        "Meridian Trading LLC",
		StartDate:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC),
		MonthlyRent:       decimal.NewFromInt(rent),
		CurrencyCode:      "USD",
		ReceivableAccount: uuid.NewString(),
		RevenueAccount:    uuid.NewString(),
		Status:            domain.ContractActive,
		NextBillingDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *LeaseInvoiceServiceTestSuite) TestGenerate_PostsBalancedVoucherPerContract() {
	asOf := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	contract := s.billableContract("LC-2026-abc123", 2500)

	s.mockContractRepo.On("ListBillableContracts", s.ctx, asOf).Return([]domain.Contract{contract}, nil).Once()
	s.mockContractRepo.On("SaveLeaseInvoice", s.ctx, mock.MatchedBy(func(inv domain.LeaseInvoice) bool {
		return inv.ContractID == contract.ContractID &&
			inv.Amount.Equal(decimal.NewFromInt(2500)) &&
			inv.Status == domain.InvoiceIssued &&
			inv.PeriodStart.Equal(contract.NextBillingDate)
	})).Return(nil).Once()
	s.mockVoucherSvc.On("Create", s.ctx, mock.MatchedBy(func(req dto.CreateVoucherRequest) bool {
		if req.VoucherType != string(domain.LeaseRevenueVoucher) || len(req.Lines) != 2 {
			return false
		}
		debitOK := req.Lines[0].AccountID == contract.ReceivableAccount && req.Lines[0].DebitAmount.Equal(decimal.NewFromInt(2500))
		creditOK := req.Lines[1].AccountID == contract.RevenueAccount && req.Lines[1].CreditAmount.Equal(decimal.NewFromInt(2500))
		return debitOK && creditOK
	}), s.actorID).Return(&dto.VoucherResult{VoucherNo: "LR-2026-000003", PostingID: uuid.NewString()}, nil).Once()
	s.mockVoucherSvc.On("SubmitForApproval", s.ctx, "LR-2026-000003", s.actorID).Return(nil).Once()
	s.mockContractRepo.On("LinkInvoiceVoucher", s.ctx, mock.Anything, "LR-2026-000003", domain.InvoicePosted, s.actorID, mock.Anything).Return(nil).Once()
	s.mockContractRepo.On("AdvanceNextBillingDate", s.ctx, contract.ContractID, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), s.actorID, mock.Anything).Return(nil).Once()

	resp, err := s.service.GenerateDueInvoices(s.ctx, asOf, s.actorID)

	s.Require().NoError(err)
	s.Equal(1, resp.Generated)
	s.Empty(resp.Failures)
	s.mockContractRepo.AssertExpectations(s.T())
	s.mockVoucherSvc.AssertExpectations(s.T())
}

func (s *LeaseInvoiceServiceTestSuite) TestGenerate_FailureDoesNotAbortRun() {
	asOf := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	failing := s.billableContract("LC-2026-fail01", 1800)
	healthy := s.billableContract("LC-2026-good01", 3200)

	s.mockContractRepo.On("ListBillableContracts", s.ctx, asOf).Return([]domain.Contract{failing, healthy}, nil).Once()
	s.mockContractRepo.On("SaveLeaseInvoice", s.ctx, mock.MatchedBy(func(inv domain.LeaseInvoice) bool {
		return inv.ContractID == failing.ContractID
	})).Return(errors.New("unique constraint violated")).Once()
	s.mockContractRepo.On("SaveLeaseInvoice", s.ctx, mock.MatchedBy(func(inv domain.LeaseInvoice) bool {
		return inv.ContractID == healthy.ContractID
	})).Return(nil).Once()
	s.mockVoucherSvc.On("Create", s.ctx, mock.Anything, s.actorID).Return(&dto.VoucherResult{VoucherNo: "LR-2026-000009"}, nil).Once()
	s.mockVoucherSvc.On("SubmitForApproval", s.ctx, "LR-2026-000009", s.actorID).Return(nil).Once()
	s.mockContractRepo.On("LinkInvoiceVoucher", s.ctx, mock.Anything, "LR-2026-000009", domain.InvoicePosted, s.actorID, mock.Anything).Return(nil).Once()
	s.mockContractRepo.On("AdvanceNextBillingDate", s.ctx, healthy.ContractID, mock.Anything, s.actorID, mock.Anything).Return(nil).Once()

	resp, err := s.service.GenerateDueInvoices(s.ctx, asOf, s.actorID)

	s.Require().NoError(err)
	s.Equal(1, resp.Generated)
	s.Require().Len(resp.Failures, 1)
	s.Contains(resp.Failures[0], "LC-2026-fail01")
	s.mockContractRepo.AssertExpectations(s.T())
}

func (s *LeaseInvoiceServiceTestSuite) TestGenerate_NothingDue() {
	asOf := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s.mockContractRepo.On("ListBillableContracts", s.ctx, asOf).Return([]domain.Contract{}, nil).Once()

	resp, err := s.service.GenerateDueInvoices(s.ctx, asOf, s.actorID)

	s.Require().NoError(err)
	s.Equal(0, resp.Generated)
	s.Equal(0, resp.Skipped)
	s.Empty(resp.Failures)
}
