package utils

import (
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

// DecodeUpload returns the uploaded file's bytes untouched.
func DecodeUpload(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// ReadUpload reads at most limit+1 bytes so oversized files can still be
// rejected by size without buffering them whole.
func ReadUpload(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeUpload(io.LimitReader(f, limit+1))
}

// DetectPhotoType sniffs the MIME type from content, e.g. "image/png".
func DetectPhotoType(b []byte) string {
	return mimetype.Detect(b).String()
}
