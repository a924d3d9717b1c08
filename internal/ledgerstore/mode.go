// Package ledgerstore exposes the numeric-mode command interface kept for
// legacy integrations. Each voucher domain accepts a single execute call
// whose integer mode selects the operation.
package ledgerstore

import (
	"fmt"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
)

// Mode is the legacy operation selector.
type Mode int

const (
	ModeCreate  Mode = 1
	ModeUpdate  Mode = 2
	ModeList    Mode = 3
	ModeGet     Mode = 4
	ModeDelete  Mode = 5
	ModeSearch  Mode = 6
	ModeDecide  Mode = 7 // approve or reject
	ModeReverse Mode = 8
)

// String names the mode for logs and error messages.
func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeUpdate:
		return "update"
	case ModeList:
		return "list"
	case ModeGet:
		return "get"
	case ModeDelete:
		return "delete"
	case ModeSearch:
		return "search"
	case ModeDecide:
		return "approve/reject"
	case ModeReverse:
		return "reverse"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Domain is the legacy voucher domain path segment.
type Domain string

const (
	DomainJournal      Domain = "journal"
	DomainPayment      Domain = "payment"
	DomainLeaseRevenue Domain = "lease-revenue"
)

// VoucherType maps the legacy domain segment to the voucher type it carries.
func (d Domain) VoucherType() (domain.VoucherType, error) {
	switch d {
	case DomainJournal:
		return domain.JournalVoucher, nil
	case DomainPayment:
		return domain.PaymentVoucher, nil
	case DomainLeaseRevenue:
		return domain.LeaseRevenueVoucher, nil
	default:
		return "", fmt.Errorf("unknown voucher domain %q", d)
	}
}
