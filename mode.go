package colprint

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

// Mode selects how a value is converted to the text block for its column.
type Mode int

const (
	Display Mode = iota // fmt.Stringer if implemented, else %v
	Debug               // Go-syntax representation (%#v)
	Pretty              // multi-line deep dump with types and indentation
	YAML                // YAML document
	JSON                // indented JSON
)

// String returns the template verb for the mode.
func (m Mode) String() string {
	switch m {
	case Display:
		return "{}"
	case Debug:
		return "{:?}"
	case Pretty:
		return "{:#?}"
	case YAML:
		return "{:yaml}"
	case JSON:
		return "{:json}"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// dumpConf keeps Pretty output deterministic and free of run-to-run noise.
var dumpConf = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Stringify converts v to a text block using mode m. The result may span
// multiple lines (Pretty, YAML, and JSON usually do).
func Stringify(v any, m Mode) (string, error) {
	switch m {
	case Display:
		return displayText(v), nil
	case Debug:
		return fmt.Sprintf("%#v", v), nil
	case Pretty:
		return strings.TrimRight(dumpConf.Sdump(v), "\n"), nil
	case YAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil
	case JSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedMode, int(m))
	}
}
