package nid

// Kosovo personal numbers are 10-digit strings assigned by the Civil
// Registration Agency. The first 9 digits are an opaque payload and the
// 10th is a check digit, so the module validates but cannot decode:
// there is no birth date, sex or residency encoding to recover.
//
// Check digit: weights [4 3 2 7 6 5 4 3 2] over digits 1-9, then
// check = 11 - (sum mod 11), with 10 and 11 both mapping to 0.
// Numbers starting with '9' bypass check digit validation; the format
// rules still apply to them.

var kosovoWeights = [9]int{4, 3, 2, 7, 6, 5, 4, 3, 2}

var kosovoLayout = layout{classes: []string{
	digits, digits, digits, digits, digits, digits, digits, digits, digits, digits,
}}

func kosovoExpectedCheck(b []byte) int {
	sum := 0
	for i, w := range kosovoWeights {
		sum += int(b[i]-'0') * w
	}
	check := 11 - sum%11
	if check >= 10 {
		check = 0
	}
	return check
}

func kosovoValidate(code string) *Error {
	b := normalize(code)
	if err := kosovoLayout.validateShape(b, nil); err != nil {
		return err
	}

	// Series issued with a leading '9' predate the check digit scheme.
	if b[0] == '9' {
		return nil
	}

	if kosovoExpectedCheck(b) != int(b[9]-'0') {
		return checksumErr()
	}
	return nil
}
