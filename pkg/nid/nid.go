package nid

import (
	"errors"
	"fmt"
	"strings"
)

// Country identifies an issuing country module.
type Country string

const (
	CountryAlbania Country = "albania"
	CountryKosovo  Country = "kosovo"
)

// Selector errors. These concern the country argument, not the code, so
// they sit outside the format/checksum/date taxonomy.
var (
	ErrUnknownCountry     = errors.New("unknown country")
	ErrDecodeNotSupported = errors.New("country does not support decoding")
)

// Module bundles one country's decode and validate operations behind the
// two-operation surface consumers are allowed to use. The set of modules
// is closed and known at build time; adding a country means adding its
// constant tables and registering it here, with no changes to shared code.
type Module struct {
	country  Country
	decode   func(string) (Info, *Error) // nil when the payload is opaque
	validate func(string) *Error
}

// Albania decodes and validates Albanian NIDs.
var Albania = &Module{
	country:  CountryAlbania,
	decode:   albaniaDecode,
	validate: albaniaValidate,
}

// Kosovo validates Kosovo personal numbers. The 9-digit payload carries
// no decodable fields, so Decode reports ErrDecodeNotSupported.
var Kosovo = &Module{
	country:  CountryKosovo,
	validate: kosovoValidate,
}

var modules = map[Country]*Module{
	CountryAlbania: Albania,
	CountryKosovo:  Kosovo,
}

// Country returns the module's country identifier.
func (m *Module) Country() Country { return m.country }

// CanDecode reports whether the country's encoding carries decodable
// fields, or only supports validation.
func (m *Module) CanDecode() bool { return m.decode != nil }

// Decode decodes a NID string into an Info record. The error is a
// *Error with kind format, checksum or invalid_date, or
// ErrDecodeNotSupported for validate-only countries.
func (m *Module) Decode(code string) (Info, error) {
	if m.decode == nil {
		return Info{}, fmt.Errorf("%s: %w", m.country, ErrDecodeNotSupported)
	}
	info, err := m.decode(code)
	if err != nil {
		return Info{}, err
	}
	// Not `return info, err`: a nil *Error must become an untyped nil.
	return info, nil
}

// IsValid reports whether the code would decode (or validate) cleanly,
// exposing nothing beyond the boolean.
func (m *Module) IsValid(code string) bool {
	return m.validate(code) == nil
}

// Lookup resolves a country selector, case-insensitively.
func Lookup(selector string) (*Module, bool) {
	m, ok := modules[Country(strings.ToLower(selector))]
	return m, ok
}

// Countries lists the supported country modules in a stable order.
func Countries() []*Module {
	return []*Module{Albania, Kosovo}
}

// Decode resolves the selector and decodes the code with that country's
// module.
func Decode(country Country, code string) (Info, error) {
	m, ok := modules[country]
	if !ok {
		return Info{}, fmt.Errorf("%q: %w", country, ErrUnknownCountry)
	}
	return m.Decode(code)
}

// IsValid resolves the selector and validates the code. Unknown
// selectors are simply invalid.
func IsValid(country Country, code string) bool {
	m, ok := modules[country]
	if !ok {
		return false
	}
	return m.IsValid(code)
}
