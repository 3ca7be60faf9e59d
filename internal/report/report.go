// Package report renders resolved packages as fixed-field text blocks.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aayushdutt/zuluquery/internal/zulu"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// labelWidth fits the longest label, "Distro Version:", plus one space
const labelWidth = 16

// Printer writes report blocks to an output stream
type Printer struct {
	w          io.Writer
	labelStyle lipgloss.Style
}

// New creates a Printer for w. Labels are only styled when w is a color terminal.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:          w,
		labelStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA")),
	}
}

// Print writes one block for p followed by a blank line.
// os and arch come from the request, not from the package.
func (p *Printer) Print(prod zulu.Product, checksum, os, arch string) error {
	fields := []struct {
		label string
		value string
	}{
		{"Product", prod.Product},
		{"Is latest", strconv.FormatBool(prod.Latest)},
		{"Name", prod.Name},
		{"UUID", prod.UUID},
		{"Java Version", prod.JavaVersion},
		{"Distro Version", prod.DistroVersion},
		{"OS", os},
		{"Arch", arch},
		{"SHA256", checksum},
		{"URL", prod.DownloadURL},
	}

	var b strings.Builder
	for _, f := range fields {
		label := f.label + ":"
		pad := max(labelWidth-ansi.StringWidth(label), 1)
		b.WriteString(p.labelStyle.Render(label))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(f.value)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	_, err := io.WriteString(p.w, b.String())
	return err
}

// NoPackages reports an empty result
func (p *Printer) NoPackages() error {
	_, err := fmt.Fprintln(p.w, "No packages found.")
	return err
}
