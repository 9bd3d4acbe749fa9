package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/babaam/internal/core"
)

// CueSink receives the audio-visual cues the simulation emits each tick.
// The terminal build has no audio device, so the default sink just logs;
// a richer frontend can map cue names to actual sounds.
type CueSink interface {
	Handle(cue core.Cue)
}

// LogCueSink writes cues to a structured logger at debug level.
type LogCueSink struct {
	logger *log.Logger
}

// NewLogCueSink creates a sink writing to the given logger.
func NewLogCueSink(logger *log.Logger) *LogCueSink {
	return &LogCueSink{logger: logger}
}

// Handle logs one cue.
func (s *LogCueSink) Handle(cue core.Cue) {
	if s.logger == nil {
		return
	}
	switch cue.Kind {
	case core.CueLoopStart:
		s.logger.Debug("cue loop start", "name", cue.Name)
	case core.CueLoopStop:
		s.logger.Debug("cue loop stop", "name", cue.Name)
	default:
		s.logger.Debug("cue", "name", cue.Name)
	}
}

// NopCueSink discards all cues.
type NopCueSink struct{}

// Handle discards the cue.
func (NopCueSink) Handle(core.Cue) {}
