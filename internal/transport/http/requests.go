package httptransport

import (
	"errors"
	"strings"
)

// DecodeRequest asks for a full decode of one code.
type DecodeRequest struct {
	Country string `json:"country"`
	Code    string `json:"code"`
}

func (r *DecodeRequest) Normalize() {
	r.Country = strings.ToLower(strings.TrimSpace(r.Country))
}

func (r *DecodeRequest) Validate() error {
	if r.Country == "" {
		return errors.New("country is required")
	}
	return nil
}

// ValidateRequest asks for a bare validity verdict of one code.
type ValidateRequest struct {
	Country string `json:"country"`
	Code    string `json:"code"`
}

func (r *ValidateRequest) Normalize() {
	r.Country = strings.ToLower(strings.TrimSpace(r.Country))
}

func (r *ValidateRequest) Validate() error {
	if r.Country == "" {
		return errors.New("country is required")
	}
	return nil
}

// BatchValidateRequest asks for verdicts on many codes at once.
type BatchValidateRequest struct {
	Country string   `json:"country"`
	Codes   []string `json:"codes"`
}

func (r *BatchValidateRequest) Normalize() {
	r.Country = strings.ToLower(strings.TrimSpace(r.Country))
}

func (r *BatchValidateRequest) Validate() error {
	if r.Country == "" {
		return errors.New("country is required")
	}
	if len(r.Codes) == 0 {
		return errors.New("codes must not be empty")
	}
	return nil
}
