package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-obj/engine/model"
	"github.com/Carmen-Shannon/oxy-obj/engine/obj"
)

// loaderBackend defines the generic interface for loading models from files or streams.
// Concrete implementations (e.g., objLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Load performs a full model import from the given file path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *model.ImportedModel: the imported model data
	//   - obj.ParseStats: counters describing the parse
	//   - error: error if loading fails
	Load(path string) (*model.ImportedModel, obj.ParseStats, error)

	// LoadReader imports a model from a reader stream.
	//
	// Parameters:
	//   - name: the name to give the imported model
	//   - r: the reader providing model data
	//
	// Returns:
	//   - *model.ImportedModel: the imported model data
	//   - obj.ParseStats: counters describing the parse
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader) (*model.ImportedModel, obj.ParseStats, error)
}
