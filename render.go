package colprint

import "strings"

// column is the padded line sequence derived from one block.
type column struct {
	lines []string
	width int
}

func newColumn(block string) column {
	lines := splitLines(block)
	width := 0
	for _, line := range lines {
		if w := displayWidth(line); w > width {
			width = w
		}
	}
	return column{lines: lines, width: width}
}

// cell returns the row-th line padded to the column width. Rows past the end
// of the column render as all-space cells.
func (c column) cell(row int) string {
	if row >= len(c.lines) {
		return strings.Repeat(" ", c.width)
	}
	return padRight(c.lines[row], c.width)
}

// splitLines breaks a block into lines. One trailing line terminator is
// dropped, so "a\n" is a single line. Both \n and \r\n are accepted. A block
// with no line break is exactly one line; an empty block is one empty line.
func splitLines(block string) []string {
	block = strings.TrimSuffix(block, "\n")
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// joinColumns emits one output line per row, writing seps[i] after column i.
// len(seps) must equal len(cols); the last entry is usually empty. Rows are
// joined with a single \n and there is no trailing newline.
func joinColumns(cols []column, seps []string) string {
	rows := 0
	for _, c := range cols {
		if len(c.lines) > rows {
			rows = len(c.lines)
		}
	}
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for i, c := range cols {
			sb.WriteString(c.cell(row))
			sb.WriteString(seps[i])
		}
	}
	return sb.String()
}

// Render aligns blocks side by side as text columns. Each block is split
// into lines, every line is padded to the display width of the block's
// widest line, and the columns are joined row by row with sep between
// adjacent columns. Shorter columns contribute all-space cells for their
// missing rows. With no blocks, Render returns "".
func Render(sep string, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}
	cols := make([]column, len(blocks))
	seps := make([]string, len(blocks))
	for i, block := range blocks {
		cols[i] = newColumn(block)
		if i < len(blocks)-1 {
			seps[i] = sep
		}
	}
	return joinColumns(cols, seps)
}
