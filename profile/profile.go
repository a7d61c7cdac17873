// Package profile collects pprof compatible profiles of graph construction.
//
// A profile attributes every node added to a Builder to the call site that
// created it, which makes it easy to see which part of a program grows a
// graph the most. Builders are single-goroutine objects and so is this
// package: Start, Stop and the recording hooks must run in the goroutine
// that drives the Builder.
package profile

import (
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/Roee-87/succinct-take-home/logger"
	"github.com/google/pprof/profile"
)

// active sessions, owned by the worker goroutine
var sessions []*Profile

// read by RecordNode on the hot path, so kept separate from sessions
var activeSessions uint32

// Profile is a profiling session started with Start.
type Profile struct {
	// destination of the serialized profile; empty means discard
	filePath string

	// pprof format: https://github.com/google/pprof/blob/main/proto/README.md
	pprof profile.Profile

	functions map[string]*profile.Function
	locations map[uint64]*profile.Location

	chDone chan struct{}
}

// Option configures a Profile.
type Option func(*Profile)

// WithPath sets the file the profile is written to when the session stops.
// The default is ./graph.pprof.
func WithPath(path string) Option {
	return func(p *Profile) {
		p.filePath = path
	}
}

// WithNoOutput keeps the profile in memory only; nothing is written to disk.
func WithNoOutput() Option {
	return WithPath("")
}

// Start opens a profiling session. Every node added to any Builder between
// Start and Stop is recorded. Sessions may overlap; each one collects its
// own samples.
func Start(options ...Option) *Profile {
	// the worker serializes session bookkeeping and sample collection
	onceInit.Do(func() {
		go worker()
	})

	p := &Profile{
		functions: make(map[string]*profile.Function),
		locations: make(map[uint64]*profile.Location),
		filePath:  filepath.Join(".", "graph.pprof"),
		chDone:    make(chan struct{}),
	}
	p.pprof.SampleType = []*profile.ValueType{{Type: "nodes", Unit: "count"}}

	for _, option := range options {
		option(p)
	}

	log := logger.Logger()
	if p.filePath == "" {
		log.Warn().Msg("graph profiling enabled [not writing to disk]")
	} else {
		log.Info().Str("path", p.filePath).Msg("graph profiling enabled")
	}

	// register with the worker before flagging the session active, so a
	// sample recorded after the increment always finds the session.
	chCommands <- command{p: p}
	atomic.AddUint32(&activeSessions, 1)

	return p
}

// Stop ends the session. If a path is configured the profile is written to it.
func (p *Profile) Stop() {
	log := logger.Logger()

	if p.chDone == nil {
		log.Fatal().Msg("graph profile stopped multiple times")
	}

	// the worker closes chDone once it dropped the session; samples sent
	// before this command are collected, later ones are not ours.
	chCommands <- command{p: p, remove: true}
	<-p.chDone
	p.chDone = nil

	if p.filePath == "" {
		log.Warn().Msg("graph profiling disabled [not writing to disk]")
		return
	}

	f, err := os.Create(p.filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create graph profile")
	}
	defer f.Close()
	if err := p.pprof.Write(f); err != nil {
		log.Error().Err(err).Msg("writing profile")
	}
	log.Info().Str("path", p.filePath).Msg("graph profiling disabled")
}

// NbNodes returns the number of samples, one per recorded node, collected by
// the session.
func (p *Profile) NbNodes() int {
	return len(p.pprof.Sample)
}

// RecordNode attributes one node to the call sites on the current stack, for
// every active session. It is a no-op when no session is active.
func RecordNode() {
	if atomic.LoadUint32(&activeSessions) == 0 {
		return
	}

	// capture the stack here, resolve it on the worker side;
	// skip runtime.Callers, RecordNode and the builder internal caller
	pc := make([]uintptr, 20)
	n := runtime.Callers(3, pc)
	if n == 0 {
		return
	}
	chCommands <- command{pc: pc[:n]}
}

func (p *Profile) getLocation(frame *runtime.Frame) *profile.Location {
	if l, ok := p.locations[uint64(frame.PC)]; ok {
		return l
	}

	fKey := frame.File + frame.Function
	f, ok := p.functions[fKey]
	if !ok {
		f = &profile.Function{
			ID:         uint64(len(p.functions) + 1),
			Name:       shortFunctionName(frame.Function),
			SystemName: frame.Function,
			Filename:   frame.File,
		}
		p.functions[fKey] = f
		p.pprof.Function = append(p.pprof.Function, f)
	}

	l := &profile.Location{
		ID:   uint64(len(p.locations) + 1),
		Line: []profile.Line{{Function: f, Line: int64(frame.Line)}},
	}
	p.locations[uint64(frame.PC)] = l
	p.pprof.Location = append(p.pprof.Location, l)
	return l
}
