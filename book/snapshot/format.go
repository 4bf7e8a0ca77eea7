package snapshot

import "fmt"

/* Format is the text encoding of a library snapshot
 * JSON is the default and matches the historical library.txt layout.
 */
type Format int

const (
	JSON Format = iota + 1
	YAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// NewFormat creates a Format from a string
func NewFormat(s string) Format {
	switch s {
	case "yaml", "yml":
		return YAML
	default:
		return JSON
	}
}

// Validate checks if the format is valid
func (f Format) Validate() error {
	if f != JSON && f != YAML {
		return fmt.Errorf("invalid snapshot format: %d", f)
	}
	return nil
}
