// Package prompt collects integer parameters interactively.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when the input stream ends before a value is accepted.
var ErrNoInput = errors.New("no input")

// Prompter reads answers from in and writes prompts and messages to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading line by line from in. Lines may be of any
// length.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine returns the next line without its terminator. A final line without
// a newline is returned as is; io.EOF is only reported once nothing is left.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

// Int prompts for an integer. An empty answer returns def; a non-integer or a
// value below minAllowed is rejected and the prompt repeats.
func (p *Prompter) Int(label string, def, minAllowed int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s [default %d]: ", label, def)
		line, err := p.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return 0, fmt.Errorf("%s: %w", label, ErrNoInput)
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read %q: %w", label, err)
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			return def, nil
		}
		v, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid integer")
			continue
		}
		if v < minAllowed {
			fmt.Fprintf(p.out, "Please enter a value not less than %d\n", minAllowed)
			continue
		}
		return v, nil
	}
}

// Field describes one prompted parameter.
type Field struct {
	Label   string
	Default int
	Min     int
}

// Values are the grid and value-range answers gathered by Collect.
type Values struct {
	Rows, Cols int
	Min, Max   int
}

// Bounds of the grid and value prompts.
const (
	RowsFloor = 1
	ColsFloor = 1
	MinFloor  = 0
	MaxFloor  = 1
)

// Collect asks for rows, columns, minimum and maximum using d as the
// defaults, then keeps asking for the maximum until it exceeds the minimum.
func (p *Prompter) Collect(d Values) (Values, error) {
	fields := []Field{
		{"Enter number of rows", d.Rows, RowsFloor},
		{"Enter number of columns", d.Cols, ColsFloor},
		{"Enter minimum value", d.Min, MinFloor},
		{"Enter maximum value", d.Max, MaxFloor},
	}

	answers := make([]int, len(fields))
	for i, f := range fields {
		v, err := p.Int(f.Label, f.Default, f.Min)
		if err != nil {
			return Values{}, err
		}
		answers[i] = v
	}

	v := Values{Rows: answers[0], Cols: answers[1], Min: answers[2], Max: answers[3]}
	for v.Max <= v.Min {
		fmt.Fprintf(p.out, "Maximum value must be greater than minimum value %d\n", v.Min)
		m, err := p.Int("Re-enter maximum value", d.Max, MaxFloor)
		if err != nil {
			return Values{}, err
		}
		v.Max = m
	}
	return v, nil
}
