package debug

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Stack returns a compact trace of the calling goroutine, one
// "function\n\tfile:line" entry per frame.
func Stack() string {
	var sbb strings.Builder
	WriteStack(&sbb)
	return sbb.String()
}

// WriteStack writes the trace to sbb. Without the debug build tag the panic
// machinery frames are dropped and file paths are trimmed to their base.
func WriteStack(sbb *strings.Builder) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	if n == 0 {
		return
	}

	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		function := shortName(frame.Function)
		file := frame.File

		if !Debug {
			if strings.Contains(function, "runtime.gopanic") {
				continue
			}
			file = filepath.Base(file)
		}

		sbb.WriteString(function)
		sbb.WriteString("\n\t")
		sbb.WriteString(file)
		sbb.WriteByte(':')
		sbb.WriteString(strconv.Itoa(frame.Line))
		sbb.WriteByte('\n')

		// the test or runtime entry point is where user code starts
		if !more || function == "runtime.main" || function == "testing.tRunner" {
			break
		}
	}
}

func shortName(function string) string {
	if i := strings.LastIndexByte(function, '/'); i >= 0 {
		return function[i+1:]
	}
	return function
}
