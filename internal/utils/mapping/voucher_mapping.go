package mapping

import (
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/crestprop/lease_ledger_app/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	var method *string
	if d.PaymentMethod != nil {
		m := string(*d.PaymentMethod)
		method = &m
	}
	return models.Voucher{
		VoucherNo:           d.VoucherNo,
		PostingID:           d.PostingID,
		VoucherType:         models.VoucherType(d.VoucherType),
		CompanyID:           d.CompanyID,
		FiscalYear:          d.FiscalYear,
		TransactionDate:     d.TransactionDate,
		PostingDate:         d.PostingDate,
		CurrencyCode:        d.CurrencyCode,
		ExchangeRate:        d.ExchangeRate,
		TotalAmount:         d.TotalAmount,
		Narration:           d.Narration,
		PostingStatus:       models.PostingStatus(d.PostingStatus),
		RequiresApproval:    d.RequiresApproval,
		ApprovalStatus:      models.ApprovalStatus(d.ApprovalStatus),
		ApprovedBy:          d.ApprovedBy,
		ApprovedAt:          d.ApprovedAt,
		ApprovalComments:    d.ApprovalComments,
		IsReversed:          d.IsReversed,
		ReversalOfVoucherNo: d.ReversalOfVoucherNo,
		ReversedByVoucherNo: d.ReversedByVoucherNo,
		ReversalReason:      d.ReversalReason,
		PaymentMethod:       method,
		PaymentAccountID:    d.PaymentAccountID,
		BankID:              d.BankID,
		ChequeNo:            d.ChequeNo,
		ChequeDate:          d.ChequeDate,
		PaidTo:              d.PaidTo,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher.
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	var method *domain.PaymentMethod
	if m.PaymentMethod != nil {
		pm := domain.PaymentMethod(*m.PaymentMethod)
		method = &pm
	}
	return domain.Voucher{
		VoucherNo:           m.VoucherNo,
		PostingID:           m.PostingID,
		VoucherType:         domain.VoucherType(m.VoucherType),
		CompanyID:           m.CompanyID,
		FiscalYear:          m.FiscalYear,
		TransactionDate:     m.TransactionDate,
		PostingDate:         m.PostingDate,
		CurrencyCode:        m.CurrencyCode,
		ExchangeRate:        m.ExchangeRate,
		TotalAmount:         m.TotalAmount,
		Narration:           m.Narration,
		PostingStatus:       domain.PostingStatus(m.PostingStatus),
		RequiresApproval:    m.RequiresApproval,
		ApprovalStatus:      domain.ApprovalStatus(m.ApprovalStatus),
		ApprovedBy:          m.ApprovedBy,
		ApprovedAt:          m.ApprovedAt,
		ApprovalComments:    m.ApprovalComments,
		IsReversed:          m.IsReversed,
		ReversalOfVoucherNo: m.ReversalOfVoucherNo,
		ReversedByVoucherNo: m.ReversedByVoucherNo,
		ReversalReason:      m.ReversalReason,
		PaymentMethod:       method,
		PaymentAccountID:    m.PaymentAccountID,
		BankID:              m.BankID,
		ChequeNo:            m.ChequeNo,
		ChequeDate:          m.ChequeDate,
		PaidTo:              m.PaidTo,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVoucherLine converts a domain VoucherLine to a model VoucherLine.
func ToModelVoucherLine(d domain.VoucherLine) models.VoucherLine {
	return models.VoucherLine{
		LineID:          d.LineID,
		VoucherNo:       d.VoucherNo,
		AccountID:       d.AccountID,
		DebitAmount:     d.DebitAmount,
		CreditAmount:    d.CreditAmount,
		TransactionType: models.TransactionType(d.TransactionType),
		CostCenterID:    d.CostCenterID,
		CustomerID:      d.CustomerID,
		SupplierID:      d.SupplierID,
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucherLine converts a model VoucherLine to a domain VoucherLine.
func ToDomainVoucherLine(m models.VoucherLine) domain.VoucherLine {
	return domain.VoucherLine{
		LineID:          m.LineID,
		VoucherNo:       m.VoucherNo,
		AccountID:       m.AccountID,
		DebitAmount:     m.DebitAmount,
		CreditAmount:    m.CreditAmount,
		TransactionType: domain.TransactionType(m.TransactionType),
		CostCenterID:    m.CostCenterID,
		CustomerID:      m.CustomerID,
		SupplierID:      m.SupplierID,
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAttachment converts a domain Attachment to a model Attachment.
func ToModelAttachment(d domain.Attachment) models.Attachment {
	return models.Attachment{
		AttachmentID:  d.AttachmentID,
		VoucherNo:     d.VoucherNo,
		FileName:      d.FileName,
		ContentType:   d.ContentType,
		SizeBytes:     d.SizeBytes,
		DocumentType:  d.DocumentType,
		ContentBase64: d.ContentBase64,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAttachment converts a model Attachment to a domain Attachment.
func ToDomainAttachment(m models.Attachment) domain.Attachment {
	return domain.Attachment{
		AttachmentID:  m.AttachmentID,
		VoucherNo:     m.VoucherNo,
		FileName:      m.FileName,
		ContentType:   m.ContentType,
		SizeBytes:     m.SizeBytes,
		DocumentType:  m.DocumentType,
		ContentBase64: m.ContentBase64,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
