// Package directory holds the immutable in-memory set of country records and
// answers the two queries the rest of the system is built on: list every
// record, and look one up by cca3 code with its border countries expanded.
//
// The directory is loaded once at process start and is read-only afterwards.
// No operation hands a caller a reference into the backing storage.
package directory

import "errors"

// CountryRecord is a single country as stored in the directory.
// Borders holds the cca3 codes of neighbouring countries and may be empty.
type CountryRecord struct {
	Name         string   `json:"name"`
	OfficialName string   `json:"official_name"`
	CCA3         string   `json:"cca3"`
	Capital      string   `json:"capital"`
	Region       string   `json:"region"`
	Area         float64  `json:"area"`
	Population   int64    `json:"population"`
	Borders      []string `json:"borders"`
}

// Expanded is a CountryRecord whose border codes have been materialized into
// full records. Expansion is one level deep: border countries keep their raw
// Borders code list and are not themselves expanded.
type Expanded struct {
	CountryRecord

	// BorderCountries holds the resolved records for CountryRecord.Borders,
	// in the same order. Codes that do not resolve are skipped, so this
	// slice can be shorter than Borders when the dataset is inconsistent.
	BorderCountries []CountryRecord `json:"border_countries"`
}

// Common directory errors.
var (
	// ErrNotFound is returned when a requested cca3 code is absent.
	ErrNotFound = errors.New("country not found")

	// ErrDuplicateCode is returned at load time when two records share a
	// cca3 code.
	ErrDuplicateCode = errors.New("duplicate cca3 code")

	// ErrSchemaVersion is returned at load time when the dataset's schema
	// version is outside the supported range.
	ErrSchemaVersion = errors.New("unsupported dataset schema version")
)

// BorderViolation describes a border code that does not resolve to any record
// in the directory. Violations only occur when the dataset is internally
// inconsistent.
type BorderViolation struct {
	// CCA3 is the code of the record holding the dangling reference.
	CCA3 string

	// Border is the unresolvable border code.
	Border string
}
