package dto

import "github.com/shopspring/decimal"

// CreateBankRequest registers a bank master record.
type CreateBankRequest struct {
	Name      string `json:"name" binding:"required"`
	SwiftCode string `json:"swiftCode,omitempty"`
	Branch    string `json:"branch,omitempty"`
	AccountNo string `json:"accountNo,omitempty"`
}

// UpdateBankRequest amends a bank master record; nil fields are left unchanged.
type UpdateBankRequest struct {
	Name      *string `json:"name,omitempty"`
	SwiftCode *string `json:"swiftCode,omitempty"`
	Branch    *string `json:"branch,omitempty"`
	AccountNo *string `json:"accountNo,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// CreateDepartmentRequest registers a department.
type CreateDepartmentRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// CreateCountryRequest registers a country.
type CreateCountryRequest struct {
	CountryCode string `json:"countryCode" binding:"required,len=2"`
	Name        string `json:"name" binding:"required"`
}

// CreateDeductionRequest registers a payment deduction.
type CreateDeductionRequest struct {
	Name      string          `json:"name" binding:"required"`
	Rate      decimal.Decimal `json:"rate" binding:"required"`
	AccountID string          `json:"accountID" binding:"required"`
}

// CreateFiscalYearRequest opens a fiscal year for a company.
type CreateFiscalYearRequest struct {
	FiscalYearID string `json:"fiscalYearID" binding:"required"`
	CompanyID    string `json:"companyID" binding:"required"`
	StartDate    string `json:"startDate" binding:"required"`
	EndDate      string `json:"endDate" binding:"required"`
}
