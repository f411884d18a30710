package service

import (
	"fmt"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
)

// decodeContent decodes the normalized payload of resp into a T.
func decodeContent[T any](resp *adapter.Response) (T, error) {
	var v T
	if err := resp.DecodeContent(&v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return v, nil
}

// idPath joins a collection path and a positive id.
func idPath(base string, id int64) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return fmt.Sprintf("%s/%d", base, id), nil
}
