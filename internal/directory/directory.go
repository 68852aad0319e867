package directory

// Directory is the immutable in-memory country set. Records are stored by
// value in insertion order with a code index alongside for O(1) lookup; the
// index is an implementation detail and does not change observable behavior
// versus a linear scan.
type Directory struct {
	records []CountryRecord
	byCode  map[string]int
}

// New builds a Directory from records, preserving their order.
// It returns ErrDuplicateCode when two records share a cca3 code.
func New(records []CountryRecord) (*Directory, error) {
	d := &Directory{
		records: make([]CountryRecord, len(records)),
		byCode:  make(map[string]int, len(records)),
	}
	copy(d.records, records)

	for i, rec := range d.records {
		if _, exists := d.byCode[rec.CCA3]; exists {
			return nil, &LoadError{Code: rec.CCA3, Err: ErrDuplicateCode}
		}
		d.byCode[rec.CCA3] = i
	}

	return d, nil
}

// Len returns the number of records in the directory.
func (d *Directory) Len() int {
	return len(d.records)
}

// ListAll returns every record in insertion order. The returned slice is a
// fresh copy on every call so callers can never mutate the directory through
// it. ListAll always succeeds.
func (d *Directory) ListAll() []CountryRecord {
	out := make([]CountryRecord, len(d.records))
	copy(out, d.records)
	for i := range out {
		out[i].Borders = cloneBorders(d.records[i].Borders)
	}
	return out
}

// GetExpanded looks up the record whose cca3 equals code (exact,
// case-sensitive match) and returns a copy with its border codes expanded to
// full records. Border codes that do not resolve are skipped; Validate
// reports them. Returns ErrNotFound when code is absent from the directory.
func (d *Directory) GetExpanded(code string) (Expanded, error) {
	idx, ok := d.byCode[code]
	if !ok {
		return Expanded{}, ErrNotFound
	}

	rec := d.records[idx]
	rec.Borders = cloneBorders(rec.Borders)

	exp := Expanded{CountryRecord: rec}
	if len(rec.Borders) > 0 {
		exp.BorderCountries = make([]CountryRecord, 0, len(rec.Borders))
		for _, borderCode := range rec.Borders {
			borderIdx, resolved := d.byCode[borderCode]
			if !resolved {
				continue
			}
			border := d.records[borderIdx]
			border.Borders = cloneBorders(d.records[borderIdx].Borders)
			exp.BorderCountries = append(exp.BorderCountries, border)
		}
	}

	return exp, nil
}

// Validate reports every border code in the directory that does not resolve
// to a record. An empty result means the dataset is internally consistent.
func (d *Directory) Validate() []BorderViolation {
	var violations []BorderViolation
	for _, rec := range d.records {
		for _, borderCode := range rec.Borders {
			if _, ok := d.byCode[borderCode]; !ok {
				violations = append(violations, BorderViolation{
					CCA3:   rec.CCA3,
					Border: borderCode,
				})
			}
		}
	}
	return violations
}

// cloneBorders copies a border code list. Records leave the directory by
// value, but the Borders slice header would otherwise still alias the backing
// array held by the directory.
func cloneBorders(borders []string) []string {
	if borders == nil {
		return nil
	}
	out := make([]string, len(borders))
	copy(out, borders)
	return out
}
