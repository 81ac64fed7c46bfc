package colors

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	success   = color.New(color.FgGreen).SprintFunc()
	failure   = color.New(color.FgRed).SprintFunc()
	warning   = color.New(color.FgYellow).SprintFunc()
	secondary = color.New(color.FgBlue).SprintFunc()
	emphasis  = color.New(color.Bold).SprintFunc()
)

func Success(a ...interface{}) string {
	return success(a...)
}

func Failure(a ...interface{}) string {
	return failure(a...)
}

func Warning(a ...interface{}) string {
	return warning(a...)
}

func Title(a ...interface{}) string {
	return emphasis(a...)
}

// Index renders a one-based list position e.g. "2."
func Index(position int) string {
	return emphasis(fmt.Sprintf("%d.", position))
}

// SubIndex renders a position within a nested list e.g. the emergency contacts of a person
func SubIndex(position int) string {
	return secondary(fmt.Sprintf("%d.", position))
}

// HTTPStatus colors 'status' by class, client errors in yellow & server errors in red
func HTTPStatus(status int) string {
	switch {
	case status >= 500:
		return failure(status)
	case status >= 400:
		return warning(status)
	default:
		return success(status)
	}
}

// Elapsed renders a duration e.g. "[1.5ms]"
func Elapsed(d time.Duration) string {
	return warning(fmt.Sprintf("[%v]", d))
}
