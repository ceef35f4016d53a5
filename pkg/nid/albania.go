package nid

// Albanian NIDs are 10-character alphanumeric strings:
//
//	[decade][year digit][month code (2)][day (2)][serial (3)][check char]
//
// The decade character selects the decade base: '0'-'9' map to 1800-1890
// and 'A'-'T' map to 1900-2090. The two-digit month code jointly encodes
// calendar month, sex and national status via fixed offset bands. The
// final character is a weighted checksum over the first nine characters,
// reduced mod 23 into a fixed alphabet.

// albaniaDecadeChars maps the decade character to a base year:
// index * 10 + 1800.
const albaniaDecadeChars = "0123456789ABCDEFGHIJKLMNOPQRST"

// albaniaChecksumChars is the alphabet used both for character values in
// the checksum sum and for the check character itself.
const albaniaChecksumChars = "WABCDEFGHIJKLMNOPQRSTUV"

// albaniaMonthBands: 01-12 male national, 31-42 male foreigner,
// 51-62 female national, 81-92 female foreigner.
var albaniaMonthBands = []monthBand{
	{Lo: 1, Hi: 12, Offset: 0, Sex: SexMale, National: true},
	{Lo: 31, Hi: 42, Offset: 30, Sex: SexMale, National: false},
	{Lo: 51, Hi: 62, Offset: 50, Sex: SexFemale, National: true},
	{Lo: 81, Hi: 92, Offset: 80, Sex: SexFemale, National: false},
}

var albaniaLayout = layout{classes: []string{
	albaniaDecadeChars,
	digits, digits, digits, digits, digits, digits, digits, digits,
	albaniaChecksumChars,
}}

// albaniaFormatCode names the shape-violation reason for each position.
func albaniaFormatCode(pos int) Code {
	switch pos {
	case 0:
		return CodeInvalidDecadeChar
	case 9:
		return CodeInvalidChecksumChar
	default:
		return CodeNonDigitCharacter
	}
}

// albaniaFields holds the raw sub-fields of a shape-validated code.
// Extraction is total: shape validation already guarantees character
// classes, so no failure is possible here.
type albaniaFields struct {
	decadeChar byte
	yearDigit  byte
	monthField []byte
	dayDigits  []byte
	serial     []byte
	checkChar  byte
}

func albaniaExtract(b []byte) albaniaFields {
	return albaniaFields{
		decadeChar: b[0],
		yearDigit:  b[1],
		monthField: b[2:4],
		dayDigits:  b[4:6],
		serial:     b[6:9],
		checkChar:  b[9],
	}
}

// albaniaCharValue returns a character's numeric value in the checksum
// sum: digits map to themselves, letters to their index in the checksum
// alphabet. Shape validation guarantees membership.
func albaniaCharValue(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	for i := 0; i < len(albaniaChecksumChars); i++ {
		if albaniaChecksumChars[i] == c {
			return i
		}
	}
	return 0
}

// albaniaExpectedCheck computes the check character for the first nine
// characters. Position 0 uses weight 1 (not 0) so the decade character
// contributes to the sum.
func albaniaExpectedCheck(b []byte) byte {
	total := 0
	for i := 0; i < 9; i++ {
		weight := i
		if i == 0 {
			weight = 1
		}
		total += weight * albaniaCharValue(b[i])
	}
	return albaniaChecksumChars[total%23]
}

func albaniaVerifyChecksum(b []byte) *Error {
	if albaniaExpectedCheck(b) != b[9] {
		return checksumErr()
	}
	return nil
}

// albaniaDecode runs the full pipeline: shape, checksum, then date
// reconstruction. Stage order is fixed; the first failure wins.
func albaniaDecode(code string) (Info, *Error) {
	b := normalize(code)
	if err := albaniaLayout.validateShape(b, albaniaFormatCode); err != nil {
		return Info{}, err
	}
	if err := albaniaVerifyChecksum(b); err != nil {
		return Info{}, err
	}

	f := albaniaExtract(b)

	decadeIndex := 0
	for i := 0; i < len(albaniaDecadeChars); i++ {
		if albaniaDecadeChars[i] == f.decadeChar {
			decadeIndex = i
			break
		}
	}
	year := 1800 + decadeIndex*10 + int(f.yearDigit-'0')

	monthCode := digitsVal(f.monthField)
	month, sex, national, ok := resolveMonthBand(albaniaMonthBands, monthCode)
	if !ok {
		return Info{}, formatErr(CodeInvalidMonthCode, "invalid month code: %02d", monthCode)
	}

	day := digitsVal(f.dayDigits)
	if err := validateDate(year, month, day); err != nil {
		return Info{}, err
	}

	return Info{
		country:    CountryAlbania,
		year:       year,
		month:      month,
		day:        day,
		sex:        sex,
		isNational: national,
	}, nil
}

func albaniaValidate(code string) *Error {
	_, err := albaniaDecode(code)
	return err
}
