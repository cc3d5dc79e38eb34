package colprint

import (
	"fmt"
	"strings"
)

// colSpec is one parsed template verb: the conversion mode for its column
// and the literal separator text that followed the verb.
type colSpec struct {
	mode Mode
	sep  string
}

// parseTemplate splits a format template like "{} | {:#?}" into column
// specs. Literal text between two verbs becomes the separator after the
// left verb's column; literal text before the first verb is dropped.
func parseTemplate(format string) ([]colSpec, error) {
	var specs []colSpec
	rest := format
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		if len(specs) > 0 {
			specs[len(specs)-1].sep = rest[:open]
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: unclosed verb %q", ErrInvalidTemplate, rest[open:])
		}
		mode, err := verbMode(rest[open : open+end+1])
		if err != nil {
			return nil, err
		}
		specs = append(specs, colSpec{mode: mode})
		rest = rest[open+end+1:]
	}
	if len(specs) > 0 {
		specs[len(specs)-1].sep = rest
	}
	return specs, nil
}

func verbMode(verb string) (Mode, error) {
	switch verb {
	case "{}":
		return Display, nil
	case "{:?}":
		return Debug, nil
	case "{:#?}":
		return Pretty, nil
	case "{:yaml}":
		return YAML, nil
	case "{:json}":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%w: unknown verb %q", ErrInvalidTemplate, verb)
	}
}
