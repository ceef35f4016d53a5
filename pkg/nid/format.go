package nid

import "strings"

const digits = "0123456789"

// layout is the static shape grammar for one country: the exact code
// length and, per position, the set of accepted (uppercase) characters.
// Shape checking runs once, before any field arithmetic, so the extractor
// and checksum stages can assume positional character classes hold.
type layout struct {
	classes []string
}

func (l layout) length() int { return len(l.classes) }

// normalize uppercases ASCII letters in place so letter positions are
// matched case-insensitively throughout the pipeline.
func normalize(code string) []byte {
	b := []byte(code)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return b
}

// validateShape checks length and per-position character classes.
// codeAt lets each country attach its own detail code per position.
func (l layout) validateShape(b []byte, codeAt func(pos int) Code) *Error {
	if len(b) != l.length() {
		return formatErr(CodeInvalidLength, "code must be exactly %d characters", l.length())
	}
	for i, class := range l.classes {
		if strings.IndexByte(class, b[i]) < 0 {
			code := CodeNonDigitCharacter
			if codeAt != nil {
				code = codeAt(i)
			}
			return formatErr(code, "character %q not allowed at position %d", b[i], i+1)
		}
	}
	return nil
}

// digitsVal parses a run of pre-validated ASCII digits.
func digitsVal(b []byte) int {
	v := 0
	for _, c := range b {
		v = v*10 + int(c-'0')
	}
	return v
}
