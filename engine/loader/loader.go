package loader

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-obj/engine/model"
	"github.com/Carmen-Shannon/oxy-obj/engine/obj"
	"github.com/Carmen-Shannon/oxy-obj/engine/profiler"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeOBJ selects the Wavefront OBJ loader backend.
	BackendTypeOBJ LoaderBackendType = iota
)

// loadQueueSize is the task queue length of the LoadAll worker pool.
const loadQueueSize = 256

// ErrUnsupportedFormat is returned when no backend handles a file extension.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	modelCache map[string]model.Model

	backendType   LoaderBackendType
	backend       loaderBackend
	parserOptions []obj.ParserBuilderOption

	workers int

	// poolMu serializes LoadAll batches with Close so a batch never runs on a stopped pool.
	poolMu sync.Mutex
	pool   worker.DynamicWorkerPool

	logger   *log.Logger
	profiler *profiler.Profiler
}

// Loader defines the public-facing interface for loading and caching 3D models.
// It abstracts the file format behind a generic backend and manages a cache of
// previously loaded models. A Loader is safe for concurrent use.
type Loader interface {
	// Load imports a model file and caches the result.
	// If the model is already cached (by file path), the cached version is returned.
	// The backend is selected based on the file extension (.obj → OBJ backend).
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - model.Model: the loaded and cached model
	//   - error: error if loading fails
	Load(path string) (model.Model, error)

	// LoadReader imports a model from a reader stream and caches it by the given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded model
	//   - r: the reader providing model data
	//
	// Returns:
	//   - model.Model: the loaded model
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader) (model.Model, error)

	// LoadAll imports several model files concurrently on the loader's worker pool.
	// Each file is parsed into its own mesh, so files never share parser state.
	// The returned slice matches the order of paths; entries for files that failed are nil
	// and their errors are joined into the returned error.
	//
	// Parameters:
	//   - paths: the file paths to load
	//
	// Returns:
	//   - []model.Model: the loaded models in input order
	//   - error: the joined errors of every failed file, or nil
	LoadAll(paths []string) ([]model.Model, error)

	// Get retrieves a cached model by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - model.Model: the cached model or nil
	Get(name string) model.Model

	// Models returns the full model cache.
	//
	// Returns:
	//   - map[string]model.Model: all cached models keyed by name
	Models() map[string]model.Model

	// Close stops the worker pool started by LoadAll, if any. It waits for a running LoadAll
	// to finish. A later LoadAll starts a new pool.
	Close()
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeOBJ)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:          sync.RWMutex{},
		modelCache:  make(map[string]model.Model),
		backendType: backendType,
		workers:     max(1, runtime.NumCPU()-1),
	}

	for _, option := range options {
		option(l)
	}

	// Build the backend after options so WithParserOptions reaches the parser.
	switch backendType {
	case BackendTypeOBJ:
		l.backend = newOBJLoaderBackend(l.parserOptions...)
	}
	return l
}

func (l *loader) Load(path string) (model.Model, error) {
	if cached := l.Get(path); cached != nil {
		return cached, nil
	}

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	imported, stats, err := backend.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return l.store(path, imported, stats, time.Since(start)), nil
}

func (l *loader) LoadReader(name string, r io.Reader) (model.Model, error) {
	if cached := l.Get(name); cached != nil {
		return cached, nil
	}
	if l.backend == nil {
		return nil, fmt.Errorf("failed to load from reader %q: no backend configured", name)
	}

	start := time.Now()
	imported, stats, err := l.backend.LoadReader(name, r)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	return l.store(name, imported, stats, time.Since(start)), nil
}

func (l *loader) LoadAll(paths []string) ([]model.Model, error) {
	results := make([]model.Model, len(paths))
	errs := make([]error, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	l.poolMu.Lock()
	defer l.poolMu.Unlock()
	if l.pool == nil {
		l.pool = worker.NewDynamicWorkerPool(l.workers, loadQueueSize, time.Second)
	}

	// The pool's own Wait blocks until workers idle-exit, so a WaitGroup marks the batch.
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		l.pool.SubmitTask(worker.Task{
			ID:      i,
			Payload: path,
			Do: func() (any, error) {
				defer wg.Done()
				m, err := l.Load(path)
				results[i], errs[i] = m, err
				return m, err
			},
		})
	}
	wg.Wait()

	return results, errors.Join(errs...)
}

func (l *loader) Get(name string) model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.modelCache[name]
}

func (l *loader) Models() map[string]model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]model.Model, len(l.modelCache))
	for k, v := range l.modelCache {
		result[k] = v
	}
	return result
}

func (l *loader) Close() {
	l.poolMu.Lock()
	defer l.poolMu.Unlock()

	if l.pool != nil {
		l.pool.Stop()
		l.pool = nil
	}
}

// resolveBackend selects an appropriate loader backend based on the file extension.
// Currently only Wavefront OBJ is supported.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".obj":
		if l.backendType == BackendTypeOBJ && l.backend != nil {
			return l.backend, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// store converts an ImportedModel into a Model and caches it under key.
// When another goroutine cached the same key first, that model wins so every caller
// sees a single instance per key.
//
// Parameters:
//   - key: the cache key
//   - imported: the CPU-side model produced by the backend
//   - stats: the parse counters reported by the backend
//   - elapsed: the wall time spent loading
//
// Returns:
//   - model.Model: the cached model
func (l *loader) store(key string, imported *model.ImportedModel, stats obj.ParseStats, elapsed time.Duration) model.Model {
	m := model.NewModel(model.WithImportedModel(imported))

	l.mu.Lock()
	if cached, ok := l.modelCache[key]; ok {
		l.mu.Unlock()
		return cached
	}
	l.modelCache[key] = m
	l.mu.Unlock()

	if l.profiler != nil {
		l.profiler.Track(key, stats.Bytes, elapsed)
	}
	if l.logger != nil {
		l.logger.Printf("[Loader] %s: %d lines, %d bytes in %d reads, %d vertices, %d indices (%s)",
			key, stats.Lines, stats.Bytes, stats.Reads, m.VertexCount(), m.IndexCount(), elapsed)
	}
	return m
}
