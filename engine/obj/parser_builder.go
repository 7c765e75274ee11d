package obj

// ParserBuilderOption is a functional option for configuring a Parser via NewParser.
type ParserBuilderOption func(*parser)

// WithChunkSize is an option builder that sets the size of the scratch buffer the source is read into.
// Values below 1 are treated as 1. Parse results do not depend on the chunk size.
//
// Parameters:
//   - size: the scratch buffer size in bytes
//
// Returns:
//   - ParserBuilderOption: a function that applies the chunk size option to a parser
func WithChunkSize(size int) ParserBuilderOption {
	return func(p *parser) {
		p.chunkSize = max(size, 1)
	}
}

// WithCarriageReturnTrim is an option builder that strips a trailing '\r' from every line before it is parsed,
// so files with CRLF line endings parse like their LF counterparts.
//
// Parameters:
//   - trim: true to strip carriage returns
//
// Returns:
//   - ParserBuilderOption: a function that applies the option to a parser
func WithCarriageReturnTrim(trim bool) ParserBuilderOption {
	return func(p *parser) {
		p.trimCR = trim
	}
}

// WithValidation is an option builder that runs Check after parsing and fails the parse on an invalid mesh.
//
// Parameters:
//   - validate: true to validate parsed meshes
//
// Returns:
//   - ParserBuilderOption: a function that applies the option to a parser
func WithValidation(validate bool) ParserBuilderOption {
	return func(p *parser) {
		p.validate = validate
	}
}

// WithTriangulation is an option builder that runs Triangulate after parsing (and after validation, if enabled).
//
// Parameters:
//   - triangulate: true to triangulate parsed meshes
//
// Returns:
//   - ParserBuilderOption: a function that applies the option to a parser
func WithTriangulation(triangulate bool) ParserBuilderOption {
	return func(p *parser) {
		p.triangulate = triangulate
	}
}
