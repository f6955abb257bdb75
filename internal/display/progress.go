package display

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/datasplit/internal/config"
)

// Progress reports per-class copy progress. Start is called once per class,
// Step after each file with the number of files handled so far, and Done when
// the class is complete.
type Progress interface {
	Start(class string, total int)
	Step(done int)
	Done()
}

// NewProgress returns the reporter for style, writing to w.
func NewProgress(style config.ProgressStyle, w io.Writer) Progress {
	switch style {
	case config.ProgressBar:
		return &barProgress{w: w}
	case config.ProgressNone:
		return noProgress{}
	default:
		return &plainProgress{w: w}
	}
}

// plainProgress rewrites "[class] processing [i/n]" in place with a carriage
// return and ends each class with a newline.
type plainProgress struct {
	w     io.Writer
	class string
	total int
}

func (p *plainProgress) Start(class string, total int) {
	p.class, p.total = class, total
}

func (p *plainProgress) Step(done int) {
	fmt.Fprintf(p.w, "\r[%s] processing [%d/%d]", p.class, done, p.total)
}

func (p *plainProgress) Done() {
	fmt.Fprintln(p.w)
}

// barProgress renders one progress bar per class.
type barProgress struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (p *barProgress) Start(class string, total int) {
	p.bar = nil
	if total <= 0 {
		// A zero max makes progressbar fall back to a spinner.
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription("["+class+"] processing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
	)
}

func (p *barProgress) Step(done int) {
	if p.bar != nil {
		_ = p.bar.Set(done)
	}
}

func (p *barProgress) Done() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
	fmt.Fprintln(p.w)
}

type noProgress struct{}

func (noProgress) Start(string, int) {}
func (noProgress) Step(int)          {}
func (noProgress) Done()             {}
