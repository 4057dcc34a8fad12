package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":     FormatText,
		"text": FormatText,
		"json": FormatJSON,
		"yaml": FormatYAML,
		"yml":  FormatYAML,
		"fzf":  FormatFZF,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatter_Print(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewFormatter(FormatJSON, &buf).Print(sample{Name: "To Do", Count: 2}))
	assert.JSONEq(t, `{"name":"To Do","count":2}`, buf.String())

	buf.Reset()
	require.NoError(t, NewFormatter(FormatYAML, &buf).Print(sample{Name: "To Do", Count: 2}))
	assert.Equal(t, "name: To Do\ncount: 2\n", buf.String())

	buf.Reset()
	require.NoError(t, NewFormatter(FormatText, &buf).Print("plain"))
	assert.Equal(t, "plain\n", buf.String())
}

func TestFormatter_Structured(t *testing.T) {
	assert.True(t, NewFormatter(FormatJSON, nil).Structured())
	assert.True(t, NewFormatter(FormatYAML, nil).Structured())
	assert.False(t, NewFormatter(FormatText, nil).Structured())
	assert.False(t, NewFormatter(FormatFZF, nil).Structured())
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Table([]string{"Name", "Tasks"}, [][]string{
		{"To Do", "2"},
		{"In Progress", "10"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Name         Tasks", lines[0])
	assert.Equal(t, "-----------  -----", lines[1])
	assert.Equal(t, "To Do        2", lines[2])
	assert.Equal(t, "In Progress  10", lines[3])
}

func TestPrinter_QuietSuppressesChatter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).Quiet(true)

	p.Success("done")
	p.Info("fyi")
	p.Subtle("id: 1")
	assert.Empty(t, buf.String())

	p.Error("broken")
	assert.Contains(t, buf.String(), "broken")
}
