package directory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
)

// schemaConstraint is the range of dataset schema versions this build reads.
const schemaConstraint = "^1"

// datasetFile is the on-disk envelope around the country records.
type datasetFile struct {
	SchemaVersion string          `json:"schema_version"`
	Countries     []CountryRecord `json:"countries"`
}

// LoadError wraps a dataset load failure with the offending code or path.
type LoadError struct {
	Path string
	Code string
	Err  error
}

func (e *LoadError) Error() string {
	switch {
	case e.Code != "":
		return fmt.Sprintf("loading dataset: record %q: %v", e.Code, e.Err)
	case e.Path != "":
		return fmt.Sprintf("loading dataset %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("loading dataset: %v", e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the dataset file at path and builds the directory from it.
// This is the one-time synchronous load that happens at process start,
// off the request path.
func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return d, nil
}

// Parse decodes a dataset envelope from r and builds the directory.
// The envelope's schema_version must satisfy the ^1 constraint.
func Parse(r io.Reader) (*Directory, error) {
	var file datasetFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("parsing dataset JSON: %w", err)}
	}

	if err := checkSchemaVersion(file.SchemaVersion); err != nil {
		return nil, err
	}

	return New(file.Countries)
}

// checkSchemaVersion validates the dataset schema version against the
// supported constraint.
func checkSchemaVersion(version string) error {
	if version == "" {
		return &LoadError{Err: fmt.Errorf("%w: missing schema_version", ErrSchemaVersion)}
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return &LoadError{Err: fmt.Errorf("%w: %q: %v", ErrSchemaVersion, version, err)}
	}

	constraint, err := semver.NewConstraint(schemaConstraint)
	if err != nil {
		return &LoadError{Err: fmt.Errorf("parsing schema constraint: %w", err)}
	}

	if !constraint.Check(v) {
		return &LoadError{
			Err: fmt.Errorf("%w: %q does not satisfy %q", ErrSchemaVersion, version, schemaConstraint),
		}
	}
	return nil
}
