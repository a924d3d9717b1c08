package ledgerstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
)

// ExecuteRequest is the legacy envelope: an integer mode plus a payload whose
// shape depends on the mode.
type ExecuteRequest struct {
	Mode    Mode            `json:"mode" binding:"required"`
	Payload json.RawMessage `json:"payload"`
}

// keyedPayload covers the modes that address one voucher by number.
type keyedPayload struct {
	VoucherNo string `json:"voucherNo"`
	Reason    string `json:"reason,omitempty"`
	Action    string `json:"action,omitempty"`
	Comments  string `json:"comments,omitempty"`
}

// searchPayload is the filter envelope for list and search modes.
type searchPayload struct {
	CompanyID     string  `json:"companyID"`
	PostingStatus string  `json:"postingStatus,omitempty"`
	FiscalYear    string  `json:"fiscalYear,omitempty"`
	Limit         int     `json:"limit,omitempty"`
	NextToken     *string `json:"nextToken,omitempty"`
	IncludeLines  bool    `json:"includeLines,omitempty"`
}

// Dispatcher routes legacy execute calls onto the voucher gateway.
type Dispatcher struct {
	voucherSvc portssvc.VoucherSvcFacade
}

// NewDispatcher creates a dispatcher backed by the given voucher service.
func NewDispatcher(voucherSvc portssvc.VoucherSvcFacade) *Dispatcher {
	return &Dispatcher{voucherSvc: voucherSvc}
}

// Execute runs one legacy call. The domain segment fixes the voucher type;
// payloads that carry a different type are overridden, not rejected, matching
// the historical behavior.
func (d *Dispatcher) Execute(ctx context.Context, dom Domain, req ExecuteRequest, userID string) (interface{}, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucherType, err := dom.VoucherType()
	if err != nil {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("domain", err.Error())
		return nil, verrs
	}
	logger.Info("Legacy execute", "domain", string(dom), "mode", req.Mode.String())

	switch req.Mode {
	case ModeCreate:
		var createReq dto.CreateVoucherRequest
		if err := decodePayload(req.Payload, &createReq); err != nil {
			return nil, err
		}
		createReq.VoucherType = string(voucherType)
		return d.voucherSvc.Create(ctx, createReq, userID)

	case ModeUpdate:
		var updateReq struct {
			VoucherNo string `json:"voucherNo"`
			dto.CreateVoucherRequest
		}
		if err := decodePayload(req.Payload, &updateReq); err != nil {
			return nil, err
		}
		if updateReq.VoucherNo == "" {
			return nil, missingVoucherNo()
		}
		updateReq.VoucherType = string(voucherType)
		return d.voucherSvc.Update(ctx, updateReq.VoucherNo, updateReq.CreateVoucherRequest, userID)

	case ModeList, ModeSearch:
		var search searchPayload
		if err := decodePayload(req.Payload, &search); err != nil {
			return nil, err
		}
		params := dto.ListVouchersParams{
			VoucherType:   string(voucherType),
			PostingStatus: search.PostingStatus,
			FiscalYear:    search.FiscalYear,
			Limit:         search.Limit,
			NextToken:     search.NextToken,
			IncludeLines:  search.IncludeLines,
		}
		return d.voucherSvc.ListVouchers(ctx, search.CompanyID, params)

	case ModeGet:
		key, err := decodeKeyed(req.Payload)
		if err != nil {
			return nil, err
		}
		voucher, err := d.voucherSvc.GetVoucher(ctx, key.VoucherNo)
		if err != nil {
			return nil, err
		}
		resp := dto.ToVoucherResponse(voucher)
		return &resp, nil

	case ModeDelete:
		key, err := decodeKeyed(req.Payload)
		if err != nil {
			return nil, err
		}
		if err := d.voucherSvc.Delete(ctx, key.VoucherNo, userID); err != nil {
			return nil, err
		}
		return map[string]string{"voucherNo": key.VoucherNo, "status": "deleted"}, nil

	case ModeDecide:
		key, err := decodeKeyed(req.Payload)
		if err != nil {
			return nil, err
		}
		decision := dto.ApprovalActionRequest{Action: key.Action, Comments: key.Comments}
		if err := d.voucherSvc.ApproveOrReject(ctx, key.VoucherNo, decision, userID); err != nil {
			return nil, err
		}
		return map[string]string{"voucherNo": key.VoucherNo, "action": key.Action}, nil

	case ModeReverse:
		key, err := decodeKeyed(req.Payload)
		if err != nil {
			return nil, err
		}
		return d.voucherSvc.Reverse(ctx, key.VoucherNo, key.Reason, userID)

	default:
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("mode", fmt.Sprintf("unknown mode %d", int(req.Mode)))
		return nil, verrs
	}
}

func decodePayload(raw json.RawMessage, target interface{}) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, target); err != nil {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add("payload", fmt.Sprintf("payload does not decode: %v", err))
		return verrs
	}
	return nil
}

func decodeKeyed(raw json.RawMessage) (*keyedPayload, error) {
	var key keyedPayload
	if err := decodePayload(raw, &key); err != nil {
		return nil, err
	}
	if key.VoucherNo == "" {
		return nil, missingVoucherNo()
	}
	return &key, nil
}

func missingVoucherNo() error {
	verrs := &apperrors.ValidationErrors{}
	verrs.Add("voucherNo", "voucher number is required")
	return verrs
}
