package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

type Printer struct {
	w      io.Writer
	format string
}

func NewPrinter(w io.Writer, format string) *Printer {
	return &Printer{w: w, format: format}
}

func (p *Printer) JSON() bool {
	return p.format == FormatJSON
}

// Print writes v as JSON when JSON output is selected and calls render
// otherwise.
func (p *Printer) Print(v interface{}, render func()) error {
	if p.JSON() {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	render()
	return nil
}

// Table renders rows under header. An empty header renders a key/value
// table.
func (p *Printer) Table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(p.w)
	if len(header) > 0 {
		table.SetHeader(header)
	}
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// ArgOrStdin returns args[i] if present. Otherwise it reads the value from
// stdin, prompting first when stdin is a terminal.
func ArgOrStdin(args []string, i int, prompt string) (string, error) {
	if len(args) > i {
		return strings.TrimSpace(args[i]), nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, prompt)
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "error reading stdin")
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("no input given")
	}
	return line, nil
}
