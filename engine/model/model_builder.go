package model

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithImportedModel is an option builder that populates the Model from an ImportedModel.
// The name is taken from the imported model unless another option sets it afterwards, and
// the meshes are packed into the Model's vertex and index buffers.
//
// Parameters:
//   - imported: the CPU-side model produced by a loader backend
//
// Returns:
//   - ModelBuilderOption: a function that applies the imported model to a model
func WithImportedModel(imported *ImportedModel) ModelBuilderOption {
	return func(m *model) {
		if imported == nil {
			return
		}
		m.name = imported.Name
		m.source = imported.Source
		m.meshes = imported.Meshes
		m.pack()
	}
}

// WithMeshes is an option builder that sets the meshes of the Model and packs them.
//
// Parameters:
//   - meshes: the meshes to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the meshes option to a model
func WithMeshes(meshes ...ImportedMesh) ModelBuilderOption {
	return func(m *model) {
		m.meshes = meshes
		m.pack()
	}
}
