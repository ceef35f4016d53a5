// Package nid validates and decodes national identification numbers.
//
// Each supported country has its own module with a decode function that
// turns a raw NID string into an [Info] record (birth date, sex, residency
// status) or a typed [*Error] explaining why the input was rejected.
// Modules are accessed through the country registry:
//
//	info, err := nid.Decode(nid.CountryAlbania, "J00101999W")
//	ok := nid.IsValid(nid.CountryKosovo, "1234567892")
//
// The package is purely functional: no I/O, no logging, no shared mutable
// state. Every per-country table is an immutable constant, so calls may run
// concurrently without coordination.
//
// Supported countries:
//
//   - Albania: 10-character alphanumeric NID (full decode)
//   - Kosovo: 10-digit personal number (validate only; the payload is opaque)
package nid
