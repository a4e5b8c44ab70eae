package envassert

import (
	"os"
	"sync"
)

// EnvKeyEnable is the name of the environment variable that enables
// assertions. Only the exact value "true" enables them; any other
// value (including "TRUE" and "1") or an unset variable leaves them
// disabled.
const EnvKeyEnable = "RUST_ENV_ASSERT"

var (
	enabledOnce sync.Once
	enabled     bool
)

// Enabled reports whether assertions are enabled in this process.
//
// The environment is read on the first call only, and the result is
// cached for the lifetime of the process: mutating the variable
// afterwards does not change the answer.
func Enabled() bool {
	enabledOnce.Do(func() {
		enabled = os.Getenv(EnvKeyEnable) == "true"
	})
	return enabled
}
