package utmups

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ErrOutOfRange is matched by every error returned from this package.
var ErrOutOfRange = errors.New("out of range")

// RangeError reports an input or result that falls outside the legal range of
// a conversion. The message names the offending value and, for bound
// violations, the legal interval.
type RangeError struct {
	msg string
}

func (e *RangeError) Error() string {
	return e.msg
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func outOfRange(format string, args ...interface{}) error {
	return errors.WithStack(&RangeError{msg: fmt.Sprintf(format, args...)})
}

// str renders a number with six significant digits.
func str(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
