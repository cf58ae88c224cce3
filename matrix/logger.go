// SPDX-License-Identifier: MIT

package matrix

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// levelOff sits above every level the package emits, so the default logger
// reports Enabled == false and callers never format their attributes.
const levelOff = slog.LevelError + 64

// silent is installed at start-up and whenever SetLogger(nil) is called.
var silent = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelOff}))

var active atomic.Pointer[slog.Logger]

func init() { active.Store(silent) }

// SetLogger routes the diagnostics of matrix, linalg and opmode to l.
// Nothing is logged until it is called; nil restores silence.
//
// Levels:
//   - [slog.LevelDebug]: LU row exchanges, storage reallocation after a structural edit
//   - [slog.LevelWarn]: calls served by the accelerated stub backend
//
// It is safe to call while other goroutines operate on their own matrices.
//
//	matrix.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger { return active.Load() }
