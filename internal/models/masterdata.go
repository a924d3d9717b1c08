package models

import "github.com/shopspring/decimal"

// Bank is the persistence model for a bank master record.
type Bank struct {
	BankID    string `json:"bankID"`
	Name      string `json:"name"`
	SwiftCode string `json:"swiftCode,omitempty"`
	Branch    string `json:"branch,omitempty"`
	AccountNo string `json:"accountNo,omitempty"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}

// Department is the persistence model for a cost-center department.
type Department struct {
	DepartmentID string `json:"departmentID"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Country is the persistence model for a country master record.
type Country struct {
	CountryCode string `json:"countryCode"`
	Name        string `json:"name"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// Deduction is the persistence model for a payment deduction.
type Deduction struct {
	DeductionID string          `json:"deductionID"`
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
	AccountID   string          `json:"accountID"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// FiscalYear is the persistence model for a fiscal year.
type FiscalYear struct {
	FiscalYearID string `json:"fiscalYearID"`
	CompanyID    string `json:"companyID"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	IsOpen       bool   `json:"isOpen"`
	AuditFields
}
