// Package base64 reads and writes data URLs ("data:<type>;base64,<payload>"),
// the form signatures are stored in and scans are sent to the extraction model.
package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"strings"
)

const (
	scheme = "data:"
	marker = ";base64,"
)

var ErrNotDataURL = errors.New("value is not a base64 data url")

// GetContentType returns the media type of a data URL, or "" when value is
// not one.
func GetContentType(value string) string {
	contentType, _, ok := split(value)
	if !ok {
		return ""
	}

	return contentType
}

func Decode(value string) ([]byte, string, error) {
	contentType, payload, ok := split(value)
	if !ok {
		return nil, "", ErrNotDataURL
	}

	data, err := stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err //nolint:wrapcheck
	}

	return data, contentType, nil
}

func Encode(contentType string, data []byte) string {
	return scheme + contentType + marker + stdBase64.StdEncoding.EncodeToString(data)
}

func split(value string) (string, string, bool) {
	rest, ok := strings.CutPrefix(value, scheme)
	if !ok {
		return "", "", false
	}

	contentType, payload, ok := strings.Cut(rest, marker)
	if !ok || contentType == "" {
		return "", "", false
	}

	return contentType, payload, true
}
