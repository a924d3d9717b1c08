package mapping

import (
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/crestprop/lease_ledger_app/internal/models"
)

// ToModelContract converts a domain Contract to a model Contract.
func ToModelContract(d domain.Contract) models.Contract {
	return models.Contract{
		ContractID:        d.ContractID,
		ContractNo:        d.ContractNo,
		CompanyID:         d.CompanyID,
		PropertyUnit:      d.PropertyUnit,
		TenantID:          d.TenantID,
		TenantName:        d.TenantName,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		MonthlyRent:       d.MonthlyRent,
		CurrencyCode:      d.CurrencyCode,
		ReceivableAccount: d.ReceivableAccount,
		RevenueAccount:    d.RevenueAccount,
		Status:            string(d.Status),
		TerminatedAt:      d.TerminatedAt,
		TerminationReason: d.TerminationReason,
		NextBillingDate:   d.NextBillingDate,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContract converts a model Contract to a domain Contract.
func ToDomainContract(m models.Contract) domain.Contract {
	return domain.Contract{
		ContractID:        m.ContractID,
		ContractNo:        m.ContractNo,
		CompanyID:         m.CompanyID,
		PropertyUnit:      m.PropertyUnit,
		TenantID:          m.TenantID,
		TenantName:        m.TenantName,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		MonthlyRent:       m.MonthlyRent,
		CurrencyCode:      m.CurrencyCode,
		ReceivableAccount: m.ReceivableAccount,
		RevenueAccount:    m.RevenueAccount,
		Status:            domain.ContractStatus(m.Status),
		TerminatedAt:      m.TerminatedAt,
		TerminationReason: m.TerminationReason,
		NextBillingDate:   m.NextBillingDate,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLeaseInvoice converts a domain LeaseInvoice to a model LeaseInvoice.
func ToModelLeaseInvoice(d domain.LeaseInvoice) models.LeaseInvoice {
	return models.LeaseInvoice{
		InvoiceID:    d.InvoiceID,
		InvoiceNo:    d.InvoiceNo,
		ContractID:   d.ContractID,
		CompanyID:    d.CompanyID,
		PeriodStart:  d.PeriodStart,
		PeriodEnd:    d.PeriodEnd,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		Status:       string(d.Status),
		VoucherNo:    d.VoucherNo,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeaseInvoice converts a model LeaseInvoice to a domain LeaseInvoice.
func ToDomainLeaseInvoice(m models.LeaseInvoice) domain.LeaseInvoice {
	return domain.LeaseInvoice{
		InvoiceID:    m.InvoiceID,
		InvoiceNo:    m.InvoiceNo,
		ContractID:   m.ContractID,
		CompanyID:    m.CompanyID,
		PeriodStart:  m.PeriodStart,
		PeriodEnd:    m.PeriodEnd,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Status:       domain.LeaseInvoiceStatus(m.Status),
		VoucherNo:    m.VoucherNo,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
