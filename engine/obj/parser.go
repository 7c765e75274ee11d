// Package obj parses Wavefront OBJ geometry into flat attribute and face buffers, validates face
// indices, and fan-triangulates polygon faces.
package obj

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultChunkSize is the default size in bytes of the parser's scratch buffer.
const DefaultChunkSize = 64 * 1024

var errNilMesh = errors.New("obj: nil mesh")

// ParseStats describes the work done by a single parse.
type ParseStats struct {
	// Bytes is the number of bytes read from the source.
	Bytes int64

	// Lines is the number of lines dispatched, including ignored ones.
	Lines int

	// Reads is the number of Read calls issued against the source.
	Reads int
}

// parser is the implementation of the Parser interface.
type parser struct {
	chunkSize   int
	trimCR      bool
	validate    bool
	triangulate bool
}

// Parser reads OBJ streams into Meshes.
// A Parser holds only configuration, so one instance may be shared by concurrent parses
// as long as each parse writes to its own Mesh and reads from its own source.
type Parser interface {
	// ParseFile opens and parses the OBJ file at path into a new Mesh.
	//
	// Parameters:
	//   - path: the file path to read
	//
	// Returns:
	//   - *Mesh: the parsed mesh, nil on failure
	//   - error: error if the file cannot be opened or read, or a configured post-pass fails
	ParseFile(path string) (*Mesh, error)

	// ParseReader parses an OBJ stream into a new Mesh.
	//
	// Parameters:
	//   - r: the reader providing OBJ text
	//
	// Returns:
	//   - *Mesh: the parsed mesh, nil on failure
	//   - error: error if reading fails or a configured post-pass fails
	ParseReader(r io.Reader) (*Mesh, error)

	// ParseInto streams r into an existing Mesh, appending to whatever it already holds.
	// Lines are split on '\n' and dispatched in file order regardless of how the reader chunks its data.
	// Configured validation and triangulation run after the stream is exhausted.
	//
	// Parameters:
	//   - m: the mesh to append to
	//   - r: the reader providing OBJ text
	//
	// Returns:
	//   - ParseStats: counters describing the parse
	//   - error: error if reading fails or a configured post-pass fails
	ParseInto(m *Mesh, r io.Reader) (ParseStats, error)
}

var _ Parser = &parser{}

// NewParser creates a new Parser with the provided options applied.
//
// Parameters:
//   - options: a variadic list of ParserBuilderOption functions to configure the Parser
//
// Returns:
//   - Parser: a new Parser instance
func NewParser(options ...ParserBuilderOption) Parser {
	p := &parser{
		chunkSize: DefaultChunkSize,
	}

	for _, option := range options {
		option(p)
	}
	return p
}

// ParseFile parses the OBJ file at path with a default Parser.
//
// Parameters:
//   - path: the file path to read
//
// Returns:
//   - *Mesh: the parsed mesh, nil on failure
//   - error: error if the file cannot be opened or read
func ParseFile(path string) (*Mesh, error) {
	return NewParser().ParseFile(path)
}

func (p *parser) ParseFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open obj file %s: %w", path, err)
	}
	defer f.Close()

	m, err := p.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

func (p *parser) ParseReader(r io.Reader) (*Mesh, error) {
	m := NewMesh()
	if _, err := p.ParseInto(m, r); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *parser) ParseInto(m *Mesh, r io.Reader) (ParseStats, error) {
	if m == nil {
		return ParseStats{}, errNilMesh
	}

	stats, err := p.stream(m, r)
	if err != nil {
		return stats, err
	}

	if p.validate {
		if err := Check(m); err != nil {
			return stats, fmt.Errorf("failed to validate mesh: %w", err)
		}
	}
	if p.triangulate {
		if err := Triangulate(m); err != nil {
			return stats, fmt.Errorf("failed to triangulate mesh: %w", err)
		}
	}
	return stats, nil
}

// stream reads r chunk by chunk and dispatches every complete line to ParseLine.
// The unterminated tail of each chunk is moved to the front of the scratch buffer and completed by
// the next read. A line longer than the scratch buffer doubles the buffer.
func (p *parser) stream(m *Mesh, r io.Reader) (ParseStats, error) {
	var stats ParseStats
	buf := make([]byte, max(p.chunkSize, 1))
	size := 0

	for {
		n, readErr := r.Read(buf[size:])
		stats.Reads++
		stats.Bytes += int64(n)
		size += n

		line := 0
		for line < size {
			eol := bytes.IndexByte(buf[line:size], '\n')
			if eol < 0 {
				break
			}
			p.dispatch(m, buf[line:line+eol])
			stats.Lines++
			line += eol + 1
		}

		size = copy(buf, buf[line:size])
		if size == len(buf) {
			grown := make([]byte, len(buf)*2)
			copy(grown, buf)
			buf = grown
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return stats, fmt.Errorf("failed to read obj stream: %w", readErr)
		}
	}

	if size > 0 {
		p.dispatch(m, buf[:size])
		stats.Lines++
	}
	return stats, nil
}

// dispatch hands one line to ParseLine, trimming a trailing carriage return when configured.
func (p *parser) dispatch(m *Mesh, line []byte) {
	if p.trimCR && len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	ParseLine(m, line)
}
