package ledgerstore_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/ledgerstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVoucherSvc struct {
	mock.Mock
}

var _ portssvc.VoucherSvcFacade = (*mockVoucherSvc)(nil)

func (m *mockVoucherSvc) Validate(req dto.CreateVoucherRequest) *apperrors.ValidationErrors {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*apperrors.ValidationErrors)
}

func (m *mockVoucherSvc) Create(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*dto.VoucherResult, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VoucherResult), args.Error(1)
}

func (m *mockVoucherSvc) Update(ctx context.Context, voucherNo string, req dto.UpdateVoucherRequest, userID string) (*dto.VoucherResult, error) {
	args := m.Called(ctx, voucherNo, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VoucherResult), args.Error(1)
}

func (m *mockVoucherSvc) SubmitForApproval(ctx context.Context, voucherNo string, userID string) error {
	return m.Called(ctx, voucherNo, userID).Error(0)
}

func (m *mockVoucherSvc) ApproveOrReject(ctx context.Context, voucherNo string, req dto.ApprovalActionRequest, actorUserID string) error {
	return m.Called(ctx, voucherNo, req, actorUserID).Error(0)
}

func (m *mockVoucherSvc) BulkApproveOrReject(ctx context.Context, req dto.BulkApprovalRequest, actorUserID string) (*dto.BulkApprovalResponse, error) {
	args := m.Called(ctx, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BulkApprovalResponse), args.Error(1)
}

func (m *mockVoucherSvc) ResetApproval(ctx context.Context, voucherNo string, userID string) error {
	return m.Called(ctx, voucherNo, userID).Error(0)
}

func (m *mockVoucherSvc) Reverse(ctx context.Context, voucherNo string, reason string, userID string) (*dto.ReverseVoucherResult, error) {
	args := m.Called(ctx, voucherNo, reason, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReverseVoucherResult), args.Error(1)
}

func (m *mockVoucherSvc) Delete(ctx context.Context, voucherNo string, userID string) error {
	return m.Called(ctx, voucherNo, userID).Error(0)
}

func (m *mockVoucherSvc) GetVoucher(ctx context.Context, voucherNo string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *mockVoucherSvc) ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListVouchersResponse), args.Error(1)
}

func (m *mockVoucherSvc) AddAttachment(ctx context.Context, voucherNo string, req dto.AttachmentRequest, userID string) (*domain.Attachment, error) {
	args := m.Called(ctx, voucherNo, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *mockVoucherSvc) RemoveAttachment(ctx context.Context, voucherNo string, attachmentID string, userID string) error {
	return m.Called(ctx, voucherNo, attachmentID, userID).Error(0)
}

func (m *mockVoucherSvc) ListApprovalLog(ctx context.Context, voucherNo string) ([]domain.ApprovalLogEntry, error) {
	args := m.Called(ctx, voucherNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalLogEntry), args.Error(1)
}

func TestExecute_CreateForcesDomainVoucherType(t *testing.T) {
	svc := new(mockVoucherSvc)
	dispatcher := ledgerstore.NewDispatcher(svc)
	ctx := context.Background()

	payload, _ := json.Marshal(dto.CreateVoucherRequest{
		VoucherType:     "PAYMENT", // domain segment wins
		CompanyID:       "CO1",
		FiscalYear:      "2026",
		TransactionDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		CurrencyCode:    "USD",
		Lines: []dto.CreateVoucherLineRequest{
			{AccountID: "acc-1", DebitAmount: decimal.NewFromInt(100), TransactionType: "DEBIT"},
			{AccountID: "acc-2", CreditAmount: decimal.NewFromInt(100), TransactionType: "CREDIT"},
		},
	})

	svc.On("Create", ctx, mock.MatchedBy(func(req dto.CreateVoucherRequest) bool {
		return req.VoucherType == "JOURNAL" && req.CompanyID == "CO1"
	}), "user-1").Return(&dto.VoucherResult{VoucherNo: "JV-2026-000001"}, nil).Once()

	result, err := dispatcher.Execute(ctx, ledgerstore.DomainJournal, ledgerstore.ExecuteRequest{
		Mode:    ledgerstore.ModeCreate,
		Payload: payload,
	}, "user-1")

	require.NoError(t, err)
	voucherResult, ok := result.(*dto.VoucherResult)
	require.True(t, ok)
	assert.Equal(t, "JV-2026-000001", voucherResult.VoucherNo)
	svc.AssertExpectations(t)
}

func TestExecute_GetRequiresVoucherNo(t *testing.T) {
	svc := new(mockVoucherSvc)
	dispatcher := ledgerstore.NewDispatcher(svc)

	_, err := dispatcher.Execute(context.Background(), ledgerstore.DomainJournal, ledgerstore.ExecuteRequest{
		Mode:    ledgerstore.ModeGet,
		Payload: json.RawMessage(`{}`),
	}, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	svc.AssertNotCalled(t, "GetVoucher", mock.Anything, mock.Anything)
}

func TestExecute_DecideRoutesToApproveOrReject(t *testing.T) {
	svc := new(mockVoucherSvc)
	dispatcher := ledgerstore.NewDispatcher(svc)
	ctx := context.Background()

	svc.On("ApproveOrReject", ctx, "PV-2026-000004", dto.ApprovalActionRequest{Action: "REJECT", Comments: "no quote attached"}, "mgr-1").Return(nil).Once()

	result, err := dispatcher.Execute(ctx, ledgerstore.DomainPayment, ledgerstore.ExecuteRequest{
		Mode:    ledgerstore.ModeDecide,
		Payload: json.RawMessage(`{"voucherNo":"PV-2026-000004","action":"REJECT","comments":"no quote attached"}`),
	}, "mgr-1")

	require.NoError(t, err)
	assert.NotNil(t, result)
	svc.AssertExpectations(t)
}

func TestExecute_ReversePassesReason(t *testing.T) {
	svc := new(mockVoucherSvc)
	dispatcher := ledgerstore.NewDispatcher(svc)
	ctx := context.Background()

	svc.On("Reverse", ctx, "JV-2026-000002", "entered twice", "user-1").Return(&dto.ReverseVoucherResult{ReversalVoucherNo: "JV-2026-000003"}, nil).Once()

	result, err := dispatcher.Execute(ctx, ledgerstore.DomainJournal, ledgerstore.ExecuteRequest{
		Mode:    ledgerstore.ModeReverse,
		Payload: json.RawMessage(`{"voucherNo":"JV-2026-000002","reason":"entered twice"}`),
	}, "user-1")

	require.NoError(t, err)
	revResult := result.(*dto.ReverseVoucherResult)
	assert.Equal(t, "JV-2026-000003", revResult.ReversalVoucherNo)
}

func TestExecute_SearchScopesListToDomainType(t *testing.T) {
	svc := new(mockVoucherSvc)
	dispatcher := ledgerstore.NewDispatcher(svc)
	ctx := context.Background()

	svc.On("ListVouchers", ctx, "CO1", mock.MatchedBy(func(p dto.ListVouchersParams) bool {
		return p.VoucherType == "LEASE_REVENUE" && p.PostingStatus == "POSTED"
	})).Return(&dto.ListVouchersResponse{}, nil).Once()

	_, err := dispatcher.Execute(ctx, ledgerstore.DomainLeaseRevenue, ledgerstore.ExecuteRequest{
		Mode:    ledgerstore.ModeSearch,
		Payload: json.RawMessage(`{"companyID":"CO1","postingStatus":"POSTED"}`),
	}, "user-1")

	require.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestExecute_UnknownModeAndDomain(t *testing.T) {
	svc := new(mockVoucherSvc)
	dispatcher := ledgerstore.NewDispatcher(svc)

	_, err := dispatcher.Execute(context.Background(), ledgerstore.DomainJournal, ledgerstore.ExecuteRequest{Mode: 42}, "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = dispatcher.Execute(context.Background(), ledgerstore.Domain("receipt"), ledgerstore.ExecuteRequest{Mode: ledgerstore.ModeList}, "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
