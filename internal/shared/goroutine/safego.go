// Package goroutine wraps background goroutine launches with panic
// recovery. Fan-out side effects and feed subscribers run through SafeGo
// so a panic in one of them never takes the server down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"crest/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine, logging any panic with its stack
// under the given name instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
