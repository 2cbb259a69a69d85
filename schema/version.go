package schema

import (
	"github.com/Masterminds/semver/v3"
	"github.com/teranos/protodts/errors"
)

// Version is the protocol version a document declares ({"major": "1", "minor": "3"}).
type Version struct {
	Major string
	Minor string
}

// IsZero reports whether the document declared no version.
func (v Version) IsZero() bool {
	return v.Major == "" && v.Minor == ""
}

// String renders the version as "major.minor".
func (v Version) String() string {
	if v.IsZero() {
		return ""
	}
	minor := v.Minor
	if minor == "" {
		minor = "0"
	}
	return v.Major + "." + minor
}

// Semver parses the version for constraint checks.
func (v Version) Semver() (*semver.Version, error) {
	if v.IsZero() {
		return nil, errors.New("document declares no version")
	}
	sv, err := semver.NewVersion(v.String())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid protocol version %q", v.String())
	}
	return sv, nil
}

// CheckVersion verifies that every document satisfies constraint
// (e.g. ">= 1.3, < 2"). An empty constraint accepts everything.
func (s *Schema) CheckVersion(constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %q", constraint)
	}
	for _, doc := range s.Documents {
		v, err := doc.Version.Semver()
		if err != nil {
			return errors.Wrapf(err, "cannot check %s against %q", sourceName(doc), constraint)
		}
		if !c.Check(v) {
			return errors.WithHintf(
				errors.NewInvalidSchemaError("%s declares protocol %s, which does not satisfy %q",
					sourceName(doc), v.Original(), constraint),
				"update schema.version_constraint or the schema sources")
		}
	}
	return nil
}

func sourceName(doc *Document) string {
	if doc.Source == "" {
		return "schema document"
	}
	return doc.Source
}
