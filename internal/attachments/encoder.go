// Package attachments prepares voucher documents for transport. Files travel
// base64-encoded inside the voucher payload; the size recorded is that of the
// raw bytes, not the encoded text.
package attachments

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/crestprop/lease_ledger_app/internal/dto"
)

// MaxAttachmentBytes caps a single attachment at 10 MiB of raw content.
const MaxAttachmentBytes = 10 << 20

// Encoder turns raw file content into an attachment request payload.
type Encoder interface {
	Encode(fileName string, content []byte) (*dto.AttachmentRequest, error)
	Decode(req dto.AttachmentRequest) ([]byte, error)
}

type base64Encoder struct{}

// NewEncoder returns the standard base64 attachment encoder.
func NewEncoder() Encoder {
	return base64Encoder{}
}

// Encode wraps file bytes as an attachment request. The content type is
// sniffed from the leading bytes when possible.
func (base64Encoder) Encode(fileName string, content []byte) (*dto.AttachmentRequest, error) {
	if fileName == "" {
		return nil, fmt.Errorf("attachment file name is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("attachment %s has no content", fileName)
	}
	if len(content) > MaxAttachmentBytes {
		return nil, fmt.Errorf("attachment %s exceeds the %d byte limit", fileName, MaxAttachmentBytes)
	}

	return &dto.AttachmentRequest{
		FileName:      fileName,
		ContentType:   http.DetectContentType(content),
		SizeBytes:     int64(len(content)),
		ContentBase64: base64.StdEncoding.EncodeToString(content),
	}, nil
}

// Decode returns the raw bytes of an attachment request, verifying the
// recorded size against the decoded content.
func (base64Encoder) Decode(req dto.AttachmentRequest) ([]byte, error) {
	content, err := base64.StdEncoding.DecodeString(req.ContentBase64)
	if err != nil {
		return nil, fmt.Errorf("attachment %s content is not valid base64: %w", req.FileName, err)
	}
	if req.SizeBytes > 0 && int64(len(content)) != req.SizeBytes {
		return nil, fmt.Errorf("attachment %s decoded to %d bytes, expected %d", req.FileName, len(content), req.SizeBytes)
	}
	return content, nil
}
