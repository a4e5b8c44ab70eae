package envassert

import (
	"context"
	"fmt"
	"runtime"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// Assert panics via the logger in ctx if assertions are enabled (see
// Enabled) and mustBeTrue is false. The extraArgs (if any) are
// appended to the diagnostic.
func Assert(
	ctx context.Context,
	mustBeTrue bool,
	extraArgs ...any,
) {
	if !Enabled() {
		return
	}
	if mustBeTrue {
		return
	}

	if len(extraArgs) == 0 {
		logger.Panic(ctx, failureMessage(1))
		return
	}

	logger.Panic(ctx, append([]any{failureMessage(1) + ":"}, extraArgs...)...)
}

// Assertf is Assert with a printf-style message.
func Assertf(
	ctx context.Context,
	mustBeTrue bool,
	format string,
	args ...any,
) {
	if !Enabled() {
		return
	}
	if mustBeTrue {
		return
	}

	logger.Panicf(ctx, "%s: %s", failureMessage(1), fmt.Sprintf(format, args...))
}

// AssertNoError panics via the logger in ctx if assertions are
// enabled and err is not nil.
func AssertNoError(
	ctx context.Context,
	err error,
) {
	if !Enabled() {
		return
	}
	if err == nil {
		return
	}

	logger.Panicf(ctx, "%s: %v", failureMessage(1), err)
}

// failureMessage prefixes the failure text with the assertion's call
// site: panic recovery buries the location in the middle of the
// panicking stack otherwise.
func failureMessage(callDepth int) string {
	msg := "assertion failed"
	if _, file, line, ok := runtime.Caller(callDepth + 1); ok {
		msg = fmt.Sprintf("%s:%d: %s", file, line, msg)
	}
	return msg
}
