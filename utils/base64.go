// utils/base64.go
package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

// DataURIPrefix labels every re-encoded photo, whatever type was uploaded.
const DataURIPrefix = "data:image/jpeg;base64,"

var ErrInvalidDataURI = errors.New("invalid data uri")

// ToWire renders stored photo bytes as bare base64. nil stays nil.
func ToWire(b []byte) *string {
	if b == nil {
		return nil
	}
	s := base64.StdEncoding.EncodeToString(b)
	return &s
}

// ToDataURI is ToWire with the data URI prefix.
func ToDataURI(b []byte) *string {
	s := ToWire(b)
	if s == nil {
		return nil
	}
	uri := DataURIPrefix + *s
	return &uri
}

// DecodeBase64Image accepts bare base64 or "data:<mime>;base64,<payload>".
func DecodeBase64Image(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 || !strings.HasSuffix(s[:i], ";base64") {
			return nil, ErrInvalidDataURI
		}
		s = s[i+1:]
	}
	return base64.StdEncoding.DecodeString(s)
}
