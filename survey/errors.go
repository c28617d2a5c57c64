package survey

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	MissingCalibration Kind = iota + 1
	AmbiguousCalibration
	InvalidCalibrationLine
	CurvedSegment
	NoExportableGeometry
	DegenerateGeometry
	DuplicateTraverse
)

var kindNames = map[Kind]string{
	MissingCalibration:     "missing calibration",
	AmbiguousCalibration:   "ambiguous calibration",
	InvalidCalibrationLine: "invalid calibration line",
	CurvedSegment:          "curved segment",
	NoExportableGeometry:   "no exportable geometry",
	DegenerateGeometry:     "degenerate geometry",
	DuplicateTraverse:      "duplicate traverse",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by every stage of the conversion. ID names the offending
// record when there is one.
type Error struct {
	Kind   Kind
	ID     string
	Detail string
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.ID != "" {
		msg += fmt.Sprintf(" in %q", e.ID)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func newError(kind Kind, id string, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, ID: id, Detail: fmt.Sprintf(format, args...)}
}

// IsKind reports whether any error in err's chain is a conversion error of
// the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
