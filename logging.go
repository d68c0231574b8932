package assemble

import (
	"time"

	"github.com/goliatone/go-assemble/codec"
)

// BuildOp identifies the operation a BuildEvent describes.
type BuildOp string

const (
	OpAddSource BuildOp = "add-source"
	OpBuild     BuildOp = "build"
	OpEncode    BuildOp = "encode"
)

// BuildEvent describes one builder operation for logging.
type BuildEvent struct {
	Op       BuildOp
	Origin   string
	Format   codec.Format
	SourceID string
	Duration time.Duration
	Err      error
}

// BuildLogger records builder events.
type BuildLogger interface {
	LogBuild(BuildEvent)
}

// BuildLoggerFunc adapts a function to BuildLogger.
type BuildLoggerFunc func(BuildEvent)

// LogBuild implements BuildLogger.
func (f BuildLoggerFunc) LogBuild(event BuildEvent) {
	if f != nil {
		f(event)
	}
}

type noopBuildLogger struct{}

func (noopBuildLogger) LogBuild(BuildEvent) {}
