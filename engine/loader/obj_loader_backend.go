package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-obj/common"
	"github.com/Carmen-Shannon/oxy-obj/engine/model"
	"github.com/Carmen-Shannon/oxy-obj/engine/obj"
)

// objLoaderBackendImpl is the implementation of objLoaderBackend.
type objLoaderBackendImpl struct {
	parser    obj.Parser
	extractor objMeshExtractor
}

// objLoaderBackend is a loaderBackend implementation for Wavefront OBJ files.
// Every parse is validated and triangulated before the mesh is extracted.
type objLoaderBackend interface {
	loaderBackend
}

var _ objLoaderBackend = &objLoaderBackendImpl{}

// newOBJLoaderBackend creates a new OBJ loader backend.
//
// Parameters:
//   - parserOptions: options applied to the backend's parser before validation and triangulation are enabled
//
// Returns:
//   - objLoaderBackend: the loader backend for OBJ files
func newOBJLoaderBackend(parserOptions ...obj.ParserBuilderOption) objLoaderBackend {
	options := append([]obj.ParserBuilderOption{}, parserOptions...)
	options = append(options, obj.WithValidation(true), obj.WithTriangulation(true))

	return &objLoaderBackendImpl{
		parser:    obj.NewParser(options...),
		extractor: newOBJMeshExtractor(),
	}
}

func (b *objLoaderBackendImpl) Load(path string) (*model.ImportedModel, obj.ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, obj.ParseStats{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return b.LoadReader(common.ModelName(path), f)
}

func (b *objLoaderBackendImpl) LoadReader(name string, r io.Reader) (*model.ImportedModel, obj.ParseStats, error) {
	mesh := obj.NewMesh()
	stats, err := b.parser.ParseInto(mesh, r)
	if err != nil {
		return nil, stats, err
	}

	imported, err := b.extractor.Extract(name, mesh)
	if err != nil {
		return nil, stats, fmt.Errorf("mesh extraction failed: %w", err)
	}

	return &model.ImportedModel{
		Name:   name,
		Meshes: []model.ImportedMesh{*imported},
		Source: mesh,
	}, stats, nil
}
