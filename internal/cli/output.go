// This file defines the result presentation layer for the command-line
// tool. Functions follow a naming convention: Display* writes formatted
// output to an io.Writer, Format* returns a formatted string with no I/O,
// and Write* writes to a named file. Keeping kernel operations themselves
// free of any presentation logic lets bigint stay a pure calculation
// library while the CLI owns how results look.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/agbruneau/bigint/bigint"
)

// Result is the structured outcome of one kernel operation: the decimal
// value plus cheap size estimates and the wall-clock time the operation
// took, the common payload behind every display mode.
type Result struct {
	Op       string
	Value    string
	Digits   int
	BitLen   int
	Duration time.Duration
}

// NewResult captures x's value and size estimates as a Result for op,
// timestamped with the elapsed duration the caller measured around the
// kernel call.
func NewResult(op string, x *bigint.Int, elapsed time.Duration) Result {
	return Result{
		Op:       op,
		Value:    x.String(),
		Digits:   x.DecimalDigits(),
		BitLen:   x.BitLen(),
		Duration: elapsed,
	}
}

// jsonResult is the wire shape for FormatJSONResult, independent of
// Result's field names so the CLI's JSON contract does not drift silently
// if Result's internal layout changes.
type jsonResult struct {
	Op         string  `json:"op"`
	Value      string  `json:"value"`
	Digits     int     `json:"digits"`
	BitLength  int     `json:"bit_length"`
	DurationMS float64 `json:"duration_ms"`
}

// FormatQuietResult returns the bare decimal value, with no surrounding
// text, suitable for piping into another program.
func FormatQuietResult(r Result) string {
	return r.Value
}

// DisplayQuietResult writes FormatQuietResult's output to out, followed by
// a newline.
func DisplayQuietResult(out io.Writer, r Result) {
	fmt.Fprintln(out, FormatQuietResult(r))
}

// FormatVerboseResult renders r as a multi-line human-readable summary:
// the decimal result, its digit count and bit-length estimate, and how
// long the kernel call took.
func FormatVerboseResult(r Result) string {
	return fmt.Sprintf(
		"%s = %s\n  digits: %d\n  bits:   %d\n  took:   %s\n",
		r.Op, r.Value, r.Digits, r.BitLen, r.Duration,
	)
}

// DisplayVerboseResult writes FormatVerboseResult's output to out.
func DisplayVerboseResult(out io.Writer, r Result) {
	fmt.Fprint(out, FormatVerboseResult(r))
}

// FormatJSONResult renders r as a single-line JSON object carrying op,
// value, digits, bit_length, and duration_ms.
func FormatJSONResult(r Result) (string, error) {
	jr := jsonResult{
		Op:         r.Op,
		Value:      r.Value,
		Digits:     r.Digits,
		BitLength:  r.BitLen,
		DurationMS: float64(r.Duration.Microseconds()) / 1000,
	}
	b, err := json.Marshal(jr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DisplayJSONResult writes FormatJSONResult's output to out, followed by a
// newline.
func DisplayJSONResult(out io.Writer, r Result) error {
	s, err := FormatJSONResult(r)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s)
	return nil
}

// DisplayResult picks a rendering of r according to the CLI's output
// flags and writes it to out. json takes priority over quiet, which takes
// priority over verbose; with none set, only the bare decimal value is
// printed (the same as quiet, but this keeps the default path independent
// of the quiet flag's semantics).
func DisplayResult(out io.Writer, r Result, verbose, quiet, jsonOut bool) error {
	switch {
	case jsonOut:
		return DisplayJSONResult(out, r)
	case quiet:
		DisplayQuietResult(out, r)
		return nil
	case verbose:
		DisplayVerboseResult(out, r)
		return nil
	default:
		fmt.Fprintln(out, r.Value)
		return nil
	}
}

// WriteResultToFile renders r with FormatVerboseResult and writes it to the
// named file, creating or truncating it.
func WriteResultToFile(path string, r Result) error {
	return writeFile(path, FormatVerboseResult(r))
}
