package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/crestprop/lease_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VoucherService ---
type MockVoucherService struct {
	mock.Mock
}

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

// Ensure mock implements the interface
var _ portssvc.VoucherSvcFacade = (*MockVoucherService)(nil)

// --- Test Suite ---
type VoucherHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockVoucherService
	jwtSecret   string
	userID      string
}

func (suite *VoucherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockVoucherService)
	v1 := suite.router.Group("/api/v1")
	registerVoucherRoutes(v1, suite.mockService)
}

func (suite *VoucherHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	token, err := utils.GenerateJWT(suite.userID, "ACCOUNTANT", suite.jwtSecret, time.Hour, "lla-test")
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validCreateRequest() dto.CreateVoucherRequest {
	return dto.CreateVoucherRequest{
		VoucherType:     "JOURNAL",
		CompanyID:       uuid.NewString(),
		FiscalYear:      "2026",
		TransactionDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		CurrencyCode:    "USD",
		Narration:       "August rent accrual",
		Lines: []dto.CreateVoucherLineRequest{
			{AccountID: uuid.NewString(), DebitAmount: decimal.NewFromInt(1200), TransactionType: "DEBIT"},
			{AccountID: uuid.NewString(), CreditAmount: decimal.NewFromInt(1200), TransactionType: "CREDIT"},
		},
	}
}

// --- Test Cases ---

func (suite *VoucherHandlerTestSuite) TestCreateVoucher_Success() {
	req := validCreateRequest()
	expected := &dto.VoucherResult{VoucherNo: "JV-2026-000042", PostingID: uuid.NewString()}

	suite.mockService.On("Create",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateVoucherRequest) bool {
			return r.VoucherType == req.VoucherType && len(r.Lines) == 2
		}),
		suite.userID,
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/vouchers", req)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.VoucherResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(expected.VoucherNo, got.VoucherNo)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestCreateVoucher_ValidationFailure() {
	req := validCreateRequest()

	verrs := &apperrors.ValidationErrors{}
	verrs.Add("lines", "debits and credits do not balance")
	verrs.Add("currencyCode", "currency code is required")

	suite.mockService.On("Create", mock.Anything, mock.Anything, suite.userID).
		Return(nil, verrs).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/vouchers", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body struct {
		Error      string                 `json:"error"`
		Violations []apperrors.FieldError `json:"violations"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("validation failed", body.Error)
	suite.Len(body.Violations, 2)
	suite.Equal("lines", body.Violations[0].Field)
}

func (suite *VoucherHandlerTestSuite) TestCreateVoucher_Unauthorized() {
	req, err := http.NewRequest(http.MethodPost, "/api/v1/vouchers", bytes.NewReader([]byte("{}")))
	suite.Require().NoError(err)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Create")
}

func (suite *VoucherHandlerTestSuite) TestValidateVoucher_ReportsAllViolations() {
	req := validCreateRequest()

	verrs := &apperrors.ValidationErrors{}
	verrs.Add("lines", "debits and credits do not balance")

	suite.mockService.On("Validate", mock.Anything).Return(verrs).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/vouchers/validate", req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ValidateVoucherResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsValid)
	suite.Len(resp.Errors, 1)
	suite.Equal("lines", resp.Errors[0].Field)
}

func (suite *VoucherHandlerTestSuite) TestGetVoucher_NotFound() {
	voucherNo := "JV-2026-000999"
	suite.mockService.On("GetVoucher", mock.Anything, voucherNo).
		Return(nil, apperrors.NewAppError(404, "voucher not found", apperrors.ErrNotFound)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/vouchers/"+voucherNo, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *VoucherHandlerTestSuite) TestListVouchers_RequiresCompanyID() {
	w := suite.doRequest(http.MethodGet, "/api/v1/vouchers", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListVouchers")
}

func (suite *VoucherHandlerTestSuite) TestListVouchers_Success() {
	companyID := uuid.NewString()
	next := "opaque-token"
	expected := &dto.ListVouchersResponse{
		Vouchers: []dto.VoucherResponse{
			{VoucherNo: "JV-2026-000001", PostingStatus: "POSTED"},
			{VoucherNo: "JV-2026-000002", PostingStatus: "DRAFT"},
		},
		NextToken: &next,
	}

	suite.mockService.On("ListVouchers", mock.Anything, companyID,
		mock.MatchedBy(func(p dto.ListVouchersParams) bool {
			return p.PostingStatus == "POSTED" && p.Limit == 10
		}),
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/vouchers?companyID=%s&postingStatus=POSTED&limit=10", companyID)
	w := suite.doRequest(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListVouchersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Vouchers, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *VoucherHandlerTestSuite) TestUpdateVoucher_ProtectedConflict() {
	voucherNo := "JV-2026-000010"
	req := validCreateRequest()

	suite.mockService.On("Update", mock.Anything, voucherNo, mock.Anything, suite.userID).
		Return(nil, apperrors.NewAppError(409, "approved voucher is protected", apperrors.ErrProtected)).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/vouchers/"+voucherNo, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *VoucherHandlerTestSuite) TestDeleteVoucher_Success() {
	voucherNo := "JV-2026-000011"
	suite.mockService.On("Delete", mock.Anything, voucherNo, suite.userID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/vouchers/"+voucherNo, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestDecideVoucher_RejectWithoutReason() {
	voucherNo := "JV-2026-000012"
	req := dto.ApprovalActionRequest{Action: "REJECT"}

	verrs := &apperrors.ValidationErrors{}
	verrs.Add("comments", "a rejection reason is required")

	suite.mockService.On("ApproveOrReject", mock.Anything, voucherNo, req, suite.userID).
		Return(verrs).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/vouchers/"+voucherNo+"/decision", req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *VoucherHandlerTestSuite) TestBulkDecide_ReportsPerItemOutcomes() {
	req := dto.BulkApprovalRequest{
		VoucherNos: []string{"JV-2026-000001", "JV-2026-000002", "JV-2026-000003"},
		Action:     "APPROVE",
	}
	expected := &dto.BulkApprovalResponse{
		Succeeded: 2,
		Failed:    1,
		Results: []dto.BulkApprovalItemResult{
			{VoucherNo: "JV-2026-000001", Success: true},
			{VoucherNo: "JV-2026-000002", Success: true},
			{VoucherNo: "JV-2026-000003", Success: false, Error: "voucher is not pending approval"},
		},
	}

	suite.mockService.On("BulkApproveOrReject", mock.Anything, req, suite.userID).
		Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/vouchers/bulk-decision", req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BulkApprovalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.Succeeded)
	suite.Equal(1, resp.Failed)
	suite.Len(resp.Results, 3)
	suite.False(resp.Results[2].Success)
}

func (suite *VoucherHandlerTestSuite) TestReverseVoucher_Success() {
	voucherNo := "JV-2026-000020"
	expected := &dto.ReverseVoucherResult{ReversalVoucherNo: "JV-2026-000021"}

	suite.mockService.On("Reverse", mock.Anything, voucherNo, "posted against wrong period", suite.userID).
		Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/vouchers/"+voucherNo+"/reverse",
		dto.ReverseVoucherRequest{Reason: "posted against wrong period"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ReverseVoucherResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ReversalVoucherNo, resp.ReversalVoucherNo)
}

func (suite *VoucherHandlerTestSuite) TestReverseVoucher_MissingReason() {
	w := suite.doRequest(http.MethodPost, "/api/v1/vouchers/JV-2026-000020/reverse",
		map[string]string{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Reverse")
}

func (suite *VoucherHandlerTestSuite) TestReverseVoucher_AlreadyReversed() {
	voucherNo := "JV-2026-000022"
	suite.mockService.On("Reverse", mock.Anything, voucherNo, "duplicate posting", suite.userID).
		Return(nil, apperrors.NewAppError(409, "voucher is already reversed", apperrors.ErrConflict)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/vouchers/"+voucherNo+"/reverse",
		dto.ReverseVoucherRequest{Reason: "duplicate posting"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *VoucherHandlerTestSuite) TestGetApprovalLog_Success() {
	voucherNo := "JV-2026-000030"
	entries := []domain.ApprovalLogEntry{
		{EntryID: uuid.NewString(), VoucherNo: voucherNo, ActorID: uuid.NewString(), Action: domain.ActionSubmit, ActedAt: time.Now().Add(-time.Hour)},
		{EntryID: uuid.NewString(), VoucherNo: voucherNo, ActorID: uuid.NewString(), Action: domain.ActionApprove, ActedAt: time.Now()},
	}

	suite.mockService.On("ListApprovalLog", mock.Anything, voucherNo).Return(entries, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/vouchers/"+voucherNo+"/approval-log", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []domain.ApprovalLogEntry
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

func TestVoucherHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}
