package loader

import (
	"log"

	"github.com/Carmen-Shannon/oxy-obj/engine/model"
	"github.com/Carmen-Shannon/oxy-obj/engine/obj"
	"github.com/Carmen-Shannon/oxy-obj/engine/profiler"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithModel is an option builder that pre-populates the model cache with a model.
//
// Parameters:
//   - key: the cache key for the model
//   - model: the model to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the model option to a loader
func WithModel(key string, model model.Model) LoaderBuilderOption {
	return func(l *loader) {
		l.modelCache[key] = model
	}
}

// WithParserOptions is an option builder that forwards options to the backend's OBJ parser.
// Validation and triangulation are always enabled by the backend regardless of these options.
//
// Parameters:
//   - options: the parser options, e.g. obj.WithChunkSize or obj.WithCarriageReturnTrim
//
// Returns:
//   - LoaderBuilderOption: a function that applies the parser options to a loader
func WithParserOptions(options ...obj.ParserBuilderOption) LoaderBuilderOption {
	return func(l *loader) {
		l.parserOptions = append(l.parserOptions, options...)
	}
}

// WithWorkers sets the number of worker goroutines LoadAll parses files on.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - LoaderBuilderOption: a function that applies the workers option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n < 1 {
			n = 1
		}
		l.workers = n
	}
}

// WithLogger is an option builder that sets a logger receiving one line per loaded model.
//
// Parameters:
//   - logger: the logger to write to, or nil to disable logging
//
// Returns:
//   - LoaderBuilderOption: a function that applies the logger option to a loader
func WithLogger(logger *log.Logger) LoaderBuilderOption {
	return func(l *loader) {
		l.logger = logger
	}
}

// WithProfiler is an option builder that sets a profiler tracking parse throughput.
//
// Parameters:
//   - p: the profiler to feed
//
// Returns:
//   - LoaderBuilderOption: a function that applies the profiler option to a loader
func WithProfiler(p *profiler.Profiler) LoaderBuilderOption {
	return func(l *loader) {
		l.profiler = p
	}
}
