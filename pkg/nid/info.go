package nid

import "fmt"

// Sex as encoded in a national ID.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Info is the immutable record decoded from a valid NID. It is produced
// only by a successful decode; fields are unexported so consumers get a
// read-only view.
type Info struct {
	country    Country
	year       int
	month      int
	day        int
	sex        Sex
	isNational bool
}

// Country returns the identifier of the issuing country module.
func (i Info) Country() Country { return i.country }

// Year returns the four-digit birth year.
func (i Info) Year() int { return i.year }

// Month returns the birth month, 1-12.
func (i Info) Month() int { return i.month }

// Day returns the birth day of month, valid for the month and year.
func (i Info) Day() int { return i.day }

// Sex returns the sex recovered from the encoded month field.
func (i Info) Sex() Sex { return i.sex }

// IsNational reports whether the code marks the holder as a national
// rather than a foreign resident.
func (i Info) IsNational() bool { return i.isNational }

// Birthday returns the birth date as a fixed-width ISO string, YYYY-MM-DD.
func (i Info) Birthday() string {
	return fmt.Sprintf("%04d-%02d-%02d", i.year, i.month, i.day)
}

// String renders the record for logs and debugging.
func (i Info) String() string {
	return fmt.Sprintf("NidInfo(%s %s sex=%s national=%t)", i.country, i.Birthday(), i.sex, i.isNational)
}
