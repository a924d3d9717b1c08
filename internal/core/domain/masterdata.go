package domain

import "github.com/shopspring/decimal"

// Bank is a bank master record referenced by cheque/transfer payment vouchers.
type Bank struct {
	BankID    string `json:"bankID"`
	Name      string `json:"name"`
	SwiftCode string `json:"swiftCode,omitempty"`
	Branch    string `json:"branch,omitempty"`
	AccountNo string `json:"accountNo,omitempty"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}

// Department is a cost-center dimension available on voucher lines.
type Department struct {
	DepartmentID string `json:"departmentID"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Country is a country master record.
type Country struct {
	CountryCode string `json:"countryCode"` // ISO 3166-1 alpha-2
	Name        string `json:"name"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// Deduction is a standard deduction applied to payment vouchers.
type Deduction struct {
	DeductionID string          `json:"deductionID"`
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"` // percentage, e.g. 5 for 5%
	AccountID   string          `json:"accountID"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// FiscalYear is the time-bounded container vouchers post into. Postings are
// only accepted into an open year.
type FiscalYear struct {
	FiscalYearID string `json:"fiscalYearID"` // e.g. "FY2026"
	CompanyID    string `json:"companyID"`
	StartDate    string `json:"startDate"` // yyyy-mm-dd
	EndDate      string `json:"endDate"`
	IsOpen       bool   `json:"isOpen"`
	AuditFields
}
