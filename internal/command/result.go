package command

import (
	stderrors "errors"
	"fmt"

	"github.com/holoterm/holoterm/internal/errors"
)

// Kind classifies a result's output for presentation (color choice at
// the terminal); it carries no other semantics.
type Kind string

const (
	// KindInfo is neutral informational output
	KindInfo Kind = "info"
	// KindSuccess is positive confirmation output
	KindSuccess Kind = "success"
	// KindError is error output
	KindError Kind = "error"
	// KindWarning is cautionary output
	KindWarning Kind = "warning"
	// KindAscii is ASCII art output, rendered verbatim
	KindAscii Kind = "ascii"
	// KindMath is a computed numeric result
	KindMath Kind = "math"
)

// UploadKind selects which media type the host's file picker should be
// scoped to.
type UploadKind string

const (
	// UploadNone means no upload was requested
	UploadNone UploadKind = ""
	// UploadImage requests an image file picker
	UploadImage UploadKind = "image"
	// UploadVideo requests a video file picker
	UploadVideo UploadKind = "video"
)

// PowerUp is a celebratory notification request for the host's banner
// surface.
type PowerUp struct {
	Type    string
	Message string
}

// Result is the uniform outcome of one command execution. It describes
// what happened and which side effects the host should apply; it is
// created fresh per invocation and immutable once returned.
type Result struct {
	Success      bool
	Output       []string
	Kind         Kind
	ClearScreen  bool
	ExitHologram bool
	PowerUp      *PowerUp
	Upload       UploadKind
}

// OK builds a plain success result with optional output lines.
func OK(lines ...string) Result {
	return Result{Success: true, Kind: KindSuccess, Output: lines}
}

// Info builds a success result of info kind.
func Info(lines ...string) Result {
	return Result{Success: true, Kind: KindInfo, Output: lines}
}

// Infof builds a single-line info result.
func Infof(format string, args ...interface{}) Result {
	return Info(fmt.Sprintf(format, args...))
}

// Math builds a computed-result line.
func Math(line string) Result {
	return Result{Success: true, Kind: KindMath, Output: []string{line}}
}

// Ascii builds an art result from the body lines.
func Ascii(body []string) Result {
	return Result{Success: true, Kind: KindAscii, Output: body}
}

// Errorf builds a single-line error result.
func Errorf(format string, args ...interface{}) Result {
	return Result{Success: false, Kind: KindError, Output: []string{fmt.Sprintf(format, args...)}}
}

// ErrorLines builds a multi-line error result.
func ErrorLines(lines ...string) Result {
	return Result{Success: false, Kind: KindError, Output: lines}
}

// FromError converts a handler error into an error result, keeping the
// structured message and dropping anything unsafe to show for plain
// unexpected errors.
func FromError(err error) Result {
	if err == nil {
		return OK()
	}

	var holoErr *errors.HoloError
	if !stderrors.As(err, &holoErr) {
		return Errorf("internal error: %v", err)
	}

	switch holoErr.Type {
	case errors.ErrorTypeUsage:
		return Errorf("Usage: %s", holoErr.Message)
	case errors.ErrorTypeCollaborator, errors.ErrorTypeTimeout:
		return Errorf("%s (service may be offline)", holoErr.Message)
	default:
		return Errorf("%s", holoErr.Message)
	}
}
