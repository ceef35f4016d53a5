package nid

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// validateDate checks calendar legality, including leap-year February 29.
func validateDate(year, month, day int) *Error {
	if month < 1 || month > 12 {
		return dateErr(CodeMonthOutOfRange, "month %d out of range", month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return dateErr(CodeDayOutOfRange, "day %d is out of range for %04d-%02d", day, year, month)
	}
	return nil
}

// monthBand maps a contiguous range of composite month-field values to the
// sex and residency attributes it encodes. Subtracting Offset from a value
// inside the band recovers the calendar month.
type monthBand struct {
	Lo, Hi   int
	Offset   int
	Sex      Sex
	National bool
}

// resolveMonthBand recovers (month, sex, isNational) from a composite
// month-field value given a country's band table. ok is false when the
// value falls outside every band.
func resolveMonthBand(bands []monthBand, v int) (month int, sex Sex, national bool, ok bool) {
	for _, b := range bands {
		if v >= b.Lo && v <= b.Hi {
			return v - b.Offset, b.Sex, b.National, true
		}
	}
	return 0, "", false, false
}
