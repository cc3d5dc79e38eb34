// Package colprint renders values side by side as aligned text columns.
//
// Each value becomes one column. A value's string form may span multiple
// lines (a pretty-printed struct, a YAML document, a small report); colprint
// splits every column into lines, pads each line to the width of the
// column's widest line, and joins the columns row by row with a separator.
// Widths are measured in terminal display cells, so multi-byte and
// East Asian wide characters line up correctly.
//
// # Core
//
// [Render] is the whole engine. It takes pre-stringified blocks and a
// separator and returns the aligned text:
//
//	out := colprint.Render(" | ", "Alice", "30")
//	// "Alice | 30"
//
// Shorter columns are filled with space cells so every column keeps its
// width on every row. Every cell is padded to its column's full width,
// including cells in the last column.
//
// # Conversion Modes
//
// [Stringify] converts a value to a block using a [Mode]:
//
//   - [Display] — fmt.Stringer if implemented, else %v
//   - [Debug] — Go-syntax representation (%#v)
//   - [Pretty] — multi-line deep dump with types and indentation
//   - [YAML] — YAML document
//   - [JSON] — indented JSON
//
// # Format Templates
//
// [Printf], [Fprintf], and [Sprintf] accept a template that pairs each
// value with a mode and carries the separators as literal text:
//
//	colprint.Printf("{} | {:#?}", person, stats)
//
// Verbs are {} (Display), {:?} (Debug), {:#?} (Pretty), {:yaml}, and
// {:json}. Literal text between two verbs separates those columns on every
// row. Literal text before the first verb or after the last is dropped:
// separators only ever appear between adjacent columns. When the number of
// verbs and values differ, the shorter count wins.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidTemplate] — malformed template (unclosed brace, unknown verb)
//   - [ErrUnsupportedMode] — unknown [Mode] value
package colprint
