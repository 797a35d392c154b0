package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

// UI prints the command line front end's output that is not a log line.
type UI interface {
	// Title prints a main title.
	Title(title string)
	// Section prints a section header.
	Section(title string)
	// Table renders rows, the first one being the header.
	Table(rows [][]string) error
	// Println prints a line without styling.
	Println(args ...interface{})
	// WithWriter returns a new UI instance writing to the specified writer.
	WithWriter(w io.Writer) UI
}

// PtermUI is an implementation of UI using pterm.
type PtermUI struct {
	writer io.Writer
}

// NewPtermUI creates a new PtermUI instance.
func NewPtermUI() *PtermUI {
	return &PtermUI{
		writer: os.Stdout,
	}
}

// Ensure PtermUI implements UI
var _ UI = (*PtermUI)(nil)

func (p *PtermUI) Title(title string) {
	pterm.DefaultHeader.WithFullWidth().WithWriter(p.writer).Println(title)
}

func (p *PtermUI) Section(title string) {
	pterm.DefaultSection.WithWriter(p.writer).Println(title)
}

func (p *PtermUI) Table(rows [][]string) error {
	return pterm.DefaultTable.WithHasHeader().WithWriter(p.writer).WithData(rows).Render()
}

func (p *PtermUI) Println(args ...interface{}) {
	fmt.Fprintln(p.writer, args...)
}

func (p *PtermUI) WithWriter(w io.Writer) UI {
	return &PtermUI{
		writer: w,
	}
}

// NoOpUI discards everything. Used when printing is disabled.
type NoOpUI struct{}

var _ UI = (*NoOpUI)(nil)

func (n *NoOpUI) Title(title string)          {}
func (n *NoOpUI) Section(title string)        {}
func (n *NoOpUI) Table(rows [][]string) error { return nil }
func (n *NoOpUI) Println(args ...interface{}) {}
func (n *NoOpUI) WithWriter(w io.Writer) UI   { return n }
