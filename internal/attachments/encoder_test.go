package attachments_test

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/crestprop/lease_ledger_app/internal/attachments"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	encoder := attachments.NewEncoder()
	content := []byte("%PDF-1.7 invoice scan body")

	req, err := encoder.Encode("invoice-march.pdf", content)
	require.NoError(t, err)
	assert.Equal(t, "invoice-march.pdf", req.FileName)
	assert.Equal(t, int64(len(content)), req.SizeBytes)
	assert.NotEmpty(t, req.ContentType)

	decoded, err := encoder.Decode(*req)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(content, decoded))
}

func TestEncodeRejectsEmptyContent(t *testing.T) {
	encoder := attachments.NewEncoder()

	_, err := encoder.Encode("empty.pdf", nil)
	require.Error(t, err)

	_, err = encoder.Encode("", []byte("data"))
	require.Error(t, err)
}

func TestEncodeRejectsOversizedContent(t *testing.T) {
	encoder := attachments.NewEncoder()
	oversized := make([]byte, attachments.MaxAttachmentBytes+1)

	_, err := encoder.Encode("huge.bin", oversized)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestDecodeRejectsBadBase64(t *testing.T) {
	encoder := attachments.NewEncoder()

	_, err := encoder.Decode(dto.AttachmentRequest{FileName: "x.pdf", ContentBase64: "not base64 !!"})
	require.Error(t, err)
}

func TestDecodeRejectsSizeMismatch(t *testing.T) {
	encoder := attachments.NewEncoder()
	req := dto.AttachmentRequest{
		FileName:      "x.pdf",
		ContentBase64: base64.StdEncoding.EncodeToString([]byte("abc")),
		SizeBytes:     99,
	}

	_, err := encoder.Decode(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 99")
}
