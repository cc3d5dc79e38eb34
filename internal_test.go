package colprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a"}, splitLines("a"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
	// One trailing terminator is dropped.
	assert.Equal(t, []string{"a"}, splitLines("a\n"))
	assert.Equal(t, []string{"a", ""}, splitLines("a\n\n"))
	// Windows line endings.
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb\r\n"))
	// An empty block is a single empty line.
	assert.Equal(t, []string{""}, splitLines(""))
}

func TestDisplayWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, displayWidth(""))
	assert.Equal(t, 2, displayWidth("ab"))
	assert.Equal(t, 2, displayWidth("日"))
	assert.Equal(t, 5, displayWidth("héllo"))
}

func TestPadRight(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "ab", padRight("ab", 2))
	// Never truncates.
	assert.Equal(t, "abc", padRight("abc", 1))
	// Wide characters count as two cells.
	assert.Equal(t, "日  ", padRight("日", 4))
}

func TestNewColumn(t *testing.T) {
	t.Parallel()
	c := newColumn("a\nbbb")
	assert.Equal(t, 3, c.width)
	assert.Equal(t, "a  ", c.cell(0))
	assert.Equal(t, "bbb", c.cell(1))
	// Rows past the end are all-space cells.
	assert.Equal(t, "   ", c.cell(5))
}

func TestParseTemplate(t *testing.T) {
	t.Parallel()
	specs, err := parseTemplate("{} | {:#?}")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, colSpec{mode: Display, sep: " | "}, specs[0])
	assert.Equal(t, colSpec{mode: Pretty, sep: ""}, specs[1])
}

func TestParseTemplateAllVerbs(t *testing.T) {
	t.Parallel()
	specs, err := parseTemplate("{}{:?}{:#?}{:yaml}{:json}")
	require.NoError(t, err)
	require.Len(t, specs, 5)
	modes := make([]Mode, len(specs))
	for i, s := range specs {
		modes[i] = s.mode
	}
	assert.Equal(t, []Mode{Display, Debug, Pretty, YAML, JSON}, modes)
}

func TestParseTemplateLeadingLiteralDropped(t *testing.T) {
	t.Parallel()
	specs, err := parseTemplate(">> {}|{}")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "|", specs[0].sep)
}

func TestParseTemplateTrailingLiteral(t *testing.T) {
	t.Parallel()
	// Trailing text parses onto the last spec; rendering never emits a
	// separator after the final column, so it stays unused.
	specs, err := parseTemplate("{}!")
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "!", specs[0].sep)
}

func TestParseTemplateErrors(t *testing.T) {
	t.Parallel()
	_, err := parseTemplate("{} {:?")
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	_, err = parseTemplate("{:bogus}")
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestJoinColumnsRowCount(t *testing.T) {
	t.Parallel()
	cols := []column{newColumn("a\nb\nc"), newColumn("x")}
	out := joinColumns(cols, []string{"-", ""})
	assert.Len(t, strings.Split(out, "\n"), 3)
	assert.False(t, strings.HasSuffix(out, "\n"))
}
