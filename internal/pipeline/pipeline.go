// Package pipeline describes the per-file stages of a check run and the
// progress events they emit. Сами стадии живут в driver; здесь только
// словарь, по которому UI и текстовый вывод понимают друг друга.
package pipeline

import "time"

// Stage describes one phase of the front end.
type Stage string

const (
	// StageLex is raw tokenization.
	StageLex Stage = "lex"
	// StageTerminate is the statement-termination pass.
	StageTerminate Stage = "terminate"
	// StageParse is statement-level parsing.
	StageParse Stage = "parse"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is currently in a stage.
	StatusWorking Status = "working"
	// StatusDone indicates the file passed every stage.
	StatusDone Status = "done"
	// StatusError indicates the file produced errors.
	StatusError Status = "error"
	// StatusCached indicates the file was served from the disk cache.
	StatusCached Status = "cached"
)

// Event reports progress for a file (or for the whole run when File is
// empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use: check workers report from their own goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}
