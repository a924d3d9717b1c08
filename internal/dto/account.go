package dto

// CreateAccountRequest registers a general ledger account.
type CreateAccountRequest struct {
	CompanyID       string  `json:"companyID" binding:"required"`
	AccountCode     string  `json:"accountCode" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	AccountType     string  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	CurrencyCode    string  `json:"currencyCode" binding:"required,len=3"`
	ParentAccountID *string `json:"parentAccountID,omitempty"`
	Description     string  `json:"description,omitempty"`
}

// UpdateAccountRequest amends an account; nil fields are left unchanged.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}
