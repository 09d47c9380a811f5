// Package prompt collects parameters through sequential stdin prompts with
// bracketed defaults. A value that fails to parse aborts the whole session;
// the caller reports one error and produces no partial output.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader prompts on out and reads answers from in.
type Reader struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Reader.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewScanner(in), out: out}
}

func (r *Reader) read(label string, def string) string {
	fmt.Fprintf(r.out, "%s [%s]: ", label, def)
	if !r.in.Scan() {
		return ""
	}
	return strings.TrimSpace(r.in.Text())
}

// Float prompts for a number; an empty answer takes the default.
func (r *Reader) Float(label string, def float64) (float64, error) {
	answer := r.read(label, strconv.FormatFloat(def, 'g', -1, 64))
	if answer == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q for %s", answer, label)
	}
	return v, nil
}

// Bool prompts for a yes/no answer; anything starting with y counts as yes.
func (r *Reader) Bool(label string, def bool) bool {
	defText := "no"
	if def {
		defText = "yes"
	}
	answer := strings.ToLower(r.read(label, defText))
	if answer == "" {
		return def
	}
	return strings.HasPrefix(answer, "y")
}

// String prompts for a free-form answer; an empty answer takes the default.
func (r *Reader) String(label, def string) string {
	if answer := r.read(label, def); answer != "" {
		return answer
	}
	return def
}
