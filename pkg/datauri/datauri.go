// Package datauri converts between raw image bytes and the
// data:<mime>;base64,<payload> strings exchanged with callers.
package datauri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingPayload  = errors.New("data uri: missing payload")
	ErrMissingMIMEType = errors.New("data uri: missing mime type")
)

type DataURI struct {
	MIMEType string
	Data     string // base64 payload, kept verbatim
}

// Parse splits s into its MIME type and base64 payload. The MIME type is the
// text between the first ':' and the first ';' of the header; the payload is
// everything after the first ','.
func Parse(s string) (*DataURI, error) {
	header, payload, ok := strings.Cut(s, ",")
	if !ok || payload == "" {
		return nil, ErrMissingPayload
	}

	meta, _, _ := strings.Cut(header, ";")
	_, mimeType, ok := strings.Cut(meta, ":")
	if !ok || mimeType == "" {
		return nil, ErrMissingMIMEType
	}

	return &DataURI{MIMEType: mimeType, Data: payload}, nil
}

func FromBytes(mimeType string, data []byte) *DataURI {
	return &DataURI{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}
}

func Encode(mimeType string, data []byte) string {
	return FromBytes(mimeType, data).String()
}

func (d *DataURI) String() string {
	return fmt.Sprintf("data:%s;base64,%s", d.MIMEType, d.Data)
}

func (d *DataURI) Bytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(d.Data)
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return b, nil
}

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/heic": ".heic",
}

// Extension returns a file extension for the MIME type, ".bin" when unknown.
func (d *DataURI) Extension() string {
	if ext, ok := extensions[strings.ToLower(d.MIMEType)]; ok {
		return ext
	}
	return ".bin"
}
