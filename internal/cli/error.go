package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/agbruneau/bigint/bigint"
	apperrors "github.com/agbruneau/bigint/internal/errors"
)

// ExitCodeFor maps an error returned by a kernel operation or by the CLI's
// own flag/timeout handling to the process exit code the application
// reports on err.
func ExitCodeFor(err error) int {
	if err == nil {
		return apperrors.ExitSuccess
	}

	var timeout apperrors.TimeoutError
	if errors.As(err, &timeout) {
		return apperrors.ExitErrorTimeout
	}
	var cfg apperrors.ConfigError
	if errors.As(err, &cfg) {
		return apperrors.ExitErrorConfig
	}
	var val apperrors.ValidationError
	if errors.As(err, &val) {
		return apperrors.ExitErrorConfig
	}

	// Any of the three kernel error kinds is a generic runtime failure from
	// the CLI's point of view: the input parsed fine but the operation
	// itself could not be carried out.
	var zde *bigint.ZeroDivisionError
	var nre *bigint.NegativeRadicandError
	var fle *bigint.FFTLimitExceededError
	if errors.As(err, &zde) || errors.As(err, &nre) || errors.As(err, &fle) {
		return apperrors.ExitErrorGeneric
	}

	return apperrors.ExitErrorGeneric
}

// DisplayError writes a one-line "bigcalc: <op>: <error>" message to out.
func DisplayError(out io.Writer, op string, err error) {
	fmt.Fprintf(out, "bigcalc: %s: %v\n", op, err)
}
