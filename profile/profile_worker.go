package profile

import (
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"

	"github.com/google/pprof/profile"
)

// chCommands serializes session registration, removal and sampling onto the
// worker goroutine, in send order. The buffer lets RecordNode return without
// waiting for the sample to be resolved.
var chCommands = make(chan command, 100)
var onceInit sync.Once

type command struct {
	p      *Profile
	pc     []uintptr
	remove bool
}

func worker() {
	for c := range chCommands {
		switch {
		case c.p == nil:
			collectSample(c.pc)
		case c.remove:
			unregister(c.p)
		default:
			sessions = append(sessions, c.p)
		}
	}
}

func unregister(p *Profile) {
	for i := range sessions {
		if sessions[i] == p {
			sessions[i] = sessions[len(sessions)-1]
			sessions = sessions[:len(sessions)-1]
			break
		}
	}
	atomic.AddUint32(&activeSessions, ^uint32(0))

	// Stop blocks on chDone; past this point the session sees no new samples
	close(p.chDone)
}

// collectSample runs on the worker goroutine.
func collectSample(pc []uintptr) {
	if len(sessions) == 0 {
		return
	}

	// resolve and filter the stack once; each session then maps the frames
	// to its own function and location tables.
	var stack []runtime.Frame
	frames := runtime.CallersFrames(pc)
	for {
		frame, more := frames.Next()

		if frame.Function == "runtime.main" || strings.HasPrefix(frame.Function, "testing.") {
			// entry point of the graph construction
			break
		}

		if !filterBuilderPrivateFunc(frame.Function) {
			// generics display poorly in pprof
			// https://github.com/golang/go/issues/54105
			frame.Function = strings.ReplaceAll(frame.Function, "[...]", "[T]")
			stack = append(stack, frame)
		}

		if !more {
			break
		}
	}

	for _, session := range sessions {
		sample := &profile.Sample{Value: []int64{1}}
		for i := range stack {
			sample.Location = append(sample.Location, session.getLocation(&stack[i]))
		}
		session.pprof.Sample = append(session.pprof.Sample, sample)
	}
}

// shortFunctionName trims the package path, keeping pkg.Func.
func shortFunctionName(f string) string {
	if i := strings.LastIndexByte(f, '/'); i >= 0 {
		return f[i+1:]
	}
	return f
}

func filterBuilderPrivateFunc(f string) bool {
	const builderPrefix = "/graph.(*Builder"
	i := strings.Index(f, builderPrefix)
	if i < 0 {
		return false
	}
	// filter unexported builder methods from the trace, so samples attribute
	// to the public constructor call sites.
	rest := f[i+len(builderPrefix):]
	if j := strings.Index(rest, ")."); j >= 0 && j+2 < len(rest) {
		c := []rune(rest[j+2:])[0]
		if unicode.IsLower(c) {
			return true
		}
	}
	return false
}
