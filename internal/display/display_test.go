package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/datasplit/internal/config"
	"github.com/backmassage/datasplit/internal/term"
)

func TestPlainProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(config.ProgressPlain, &buf)

	p.Start("rose", 3)
	for i := 1; i <= 3; i++ {
		p.Step(i)
	}
	p.Done()

	want := "\r[rose] processing [1/3]" +
		"\r[rose] processing [2/3]" +
		"\r[rose] processing [3/3]\n"
	assert.Equal(t, want, buf.String())
}

func TestPlainProgress_EmptyClassStillEndsLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(config.ProgressPlain, &buf)
	p.Start("tulips", 0)
	p.Done()
	assert.Equal(t, "\n", buf.String())
}

func TestBarProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(config.ProgressBar, &buf)

	p.Start("daisy", 4)
	for i := 1; i <= 4; i++ {
		p.Step(i)
	}
	p.Done()

	out := buf.String()
	assert.Contains(t, out, "[daisy] processing")
	assert.Contains(t, out, "4/4")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestNoProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(config.ProgressNone, &buf)
	p.Start("rose", 2)
	p.Step(1)
	p.Done()
	assert.Empty(t, buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	rows := []SummaryRow{
		{Class: "rose", Files: 10, Train: 9, Val: 1, Bytes: 2048},
		{Class: "tulips", Files: 20, Train: 18, Val: 2, Bytes: 1024},
	}
	require.NoError(t, PrintSummary(&buf, rows))

	out := buf.String()
	assert.Contains(t, out, "rose")
	assert.Contains(t, out, "tulips")
	assert.Contains(t, out, "27")
	assert.Contains(t, out, "2.0 KiB")
}

func TestPrintBanner(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.NotEmpty(t, buf.String())
	assert.NotContains(t, buf.String(), "\033[")
}
