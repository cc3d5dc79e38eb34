package colprint

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidTemplate = errors.New("invalid template")
	ErrUnsupportedMode = errors.New("unsupported mode")
)

// Write renders blocks with [Render] and writes the result to w followed by
// a trailing newline. With no blocks, nothing is written.
func Write(w io.Writer, sep string, blocks ...string) error {
	if len(blocks) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, Render(sep, blocks...))
	return err
}

// Sprint converts each value in [Display] mode and renders the resulting
// columns joined by sep.
func Sprint(sep string, values ...any) string {
	blocks := make([]string, len(values))
	for i, v := range values {
		blocks[i] = displayText(v)
	}
	return Render(sep, blocks...)
}

// Sprintf renders values as columns according to a format template and
// returns the text without a trailing newline. Template verbs select the
// conversion mode per column; literal text between verbs becomes the
// separator between those columns. When the number of verbs and values
// differ, the shorter count wins and extras are ignored.
func Sprintf(format string, values ...any) (string, error) {
	specs, err := parseTemplate(format)
	if err != nil {
		return "", err
	}
	n := min(len(specs), len(values))
	if n == 0 {
		return "", nil
	}
	cols := make([]column, n)
	seps := make([]string, n)
	for i := 0; i < n; i++ {
		block, err := Stringify(values[i], specs[i].mode)
		if err != nil {
			return "", err
		}
		cols[i] = newColumn(block)
		if i < n-1 {
			seps[i] = specs[i].sep
		}
	}
	return joinColumns(cols, seps), nil
}

// Fprintf renders values according to a format template and writes the
// result to w followed by a trailing newline. Nothing is written when the
// rendered text is empty.
func Fprintf(w io.Writer, format string, values ...any) error {
	out, err := Sprintf(format, values...)
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// Printf is [Fprintf] to standard output.
func Printf(format string, values ...any) error {
	return Fprintf(os.Stdout, format, values...)
}

func displayText(v any) string {
	if str, ok := v.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", v)
}
