package assemble

import "github.com/goliatone/go-assemble/schema"

// Option configures a Builder at construction time.
type Option func(*builderConfig)

type builderConfig struct {
	descriptor schema.Descriptor
	logger     BuildLogger
}

func applyOptions(opts []Option) builderConfig {
	cfg := builderConfig{logger: noopBuildLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithDescriptor overrides the reflection-derived schema for the target type.
func WithDescriptor(desc schema.Descriptor) Option {
	return func(cfg *builderConfig) {
		cfg.descriptor = desc
	}
}

// WithLogger attaches a build observer. The library never logs on its own:
// events are only handed to the logger the caller injects.
func WithLogger(logger BuildLogger) Option {
	return func(cfg *builderConfig) {
		if logger == nil {
			cfg.logger = noopBuildLogger{}
			return
		}
		cfg.logger = logger
	}
}
