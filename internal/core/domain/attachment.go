package domain

// Attachment is a document owned by exactly one voucher. Content travels as
// base64; adding or removing one never touches the voucher's balance state.
type Attachment struct {
	AttachmentID  string `json:"attachmentID"`
	VoucherNo     string `json:"voucherNo"`
	FileName      string `json:"fileName"`
	ContentType   string `json:"contentType"`
	SizeBytes     int64  `json:"sizeBytes"`
	DocumentType  string `json:"documentType,omitempty"`
	ContentBase64 string `json:"contentBase64,omitempty"`
	AuditFields
}
