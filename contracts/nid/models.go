package nid

// ContractVersion identifies the wire schema shared with API consumers.
const ContractVersion = "v0.1.0"

// DecodeResult is the decoded record returned for a structurally valid code.
// All fields are derived from the code itself; nothing here is looked up
// against an external registry.
type DecodeResult struct {
	Country    string `json:"country"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	Birthday   string `json:"birthday"`
	Sex        string `json:"sex"`
	IsNational bool   `json:"is_national"`
}

// ValidateResult carries a bare validity verdict with no error detail,
// so callers cannot distinguish why a code was rejected.
type ValidateResult struct {
	Valid bool `json:"valid"`
}

// BatchItem is the per-code verdict inside a batch validation response.
// ErrorKind is populated only when Valid is false and the country supports
// decode-level error reporting.
type BatchItem struct {
	Code      string `json:"code"`
	Valid     bool   `json:"valid"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// CountryInfo describes one supported country module.
type CountryInfo struct {
	Country   string `json:"country"`
	CanDecode bool   `json:"can_decode"`
}
