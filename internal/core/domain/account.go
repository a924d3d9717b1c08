package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is a general ledger account in the chart of accounts.
type Account struct {
	AccountID       string      `json:"accountID"`
	CompanyID       string      `json:"companyID"`
	AccountCode     string      `json:"accountCode"` // user-facing code, e.g. "1001"
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	CurrencyCode    string      `json:"currencyCode"`
	ParentAccountID *string     `json:"parentAccountID,omitempty"`
	Description     string      `json:"description,omitempty"`
	IsActive        bool        `json:"isActive"`
	AuditFields
}
