package mapping

import (
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/crestprop/lease_ledger_app/internal/models"
)

// ToModelBank converts a domain Bank to a model Bank.
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{
		BankID:      d.BankID,
		Name:        d.Name,
		SwiftCode:   d.SwiftCode,
		Branch:      d.Branch,
		AccountNo:   d.AccountNo,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBank converts a model Bank to a domain Bank.
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		BankID:      m.BankID,
		Name:        m.Name,
		SwiftCode:   m.SwiftCode,
		Branch:      m.Branch,
		AccountNo:   m.AccountNo,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDepartment converts a domain Department to a model Department.
func ToModelDepartment(d domain.Department) models.Department {
	return models.Department{
		DepartmentID: d.DepartmentID,
		Code:         d.Code,
		Name:         d.Name,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepartment converts a model Department to a domain Department.
func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		DepartmentID: m.DepartmentID,
		Code:         m.Code,
		Name:         m.Name,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCountry converts a domain Country to a model Country.
func ToModelCountry(d domain.Country) models.Country {
	return models.Country{
		CountryCode: d.CountryCode,
		Name:        d.Name,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCountry converts a model Country to a domain Country.
func ToDomainCountry(m models.Country) domain.Country {
	return domain.Country{
		CountryCode: m.CountryCode,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDeduction converts a domain Deduction to a model Deduction.
func ToModelDeduction(d domain.Deduction) models.Deduction {
	return models.Deduction{
		DeductionID: d.DeductionID,
		Name:        d.Name,
		Rate:        d.Rate,
		AccountID:   d.AccountID,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeduction converts a model Deduction to a domain Deduction.
func ToDomainDeduction(m models.Deduction) domain.Deduction {
	return domain.Deduction{
		DeductionID: m.DeductionID,
		Name:        m.Name,
		Rate:        m.Rate,
		AccountID:   m.AccountID,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFiscalYear converts a domain FiscalYear to a model FiscalYear.
func ToModelFiscalYear(d domain.FiscalYear) models.FiscalYear {
	return models.FiscalYear{
		FiscalYearID: d.FiscalYearID,
		CompanyID:    d.CompanyID,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		IsOpen:       d.IsOpen,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFiscalYear converts a model FiscalYear to a domain FiscalYear.
func ToDomainFiscalYear(m models.FiscalYear) domain.FiscalYear {
	return domain.FiscalYear{
		FiscalYearID: m.FiscalYearID,
		CompanyID:    m.CompanyID,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		IsOpen:       m.IsOpen,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
