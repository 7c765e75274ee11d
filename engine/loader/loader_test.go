package loader

import (
	"bytes"
	"errors"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-obj/engine/model"
	"github.com/Carmen-Shannon/oxy-obj/engine/obj"
	"github.com/Carmen-Shannon/oxy-obj/engine/profiler"
)

const quadOBJ = `# unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`

const texturedTriangleOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

// writeOBJ writes content to name inside a fresh temp dir and returns the path.
func writeOBJ(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func near(a, b [3]float32) bool {
	for i := range 3 {
		if math.Abs(float64(a[i]-b[i])) > 1e-6 {
			return false
		}
	}
	return true
}

func TestLoadQuad(t *testing.T) {
	l := NewLoader(BackendTypeOBJ)
	defer l.Close()

	path := writeOBJ(t, "quad.obj", quadOBJ)
	m, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m.Name() != "quad" {
		t.Errorf("name = %q, want quad", m.Name())
	}
	if m.VertexCount() != 4 || m.IndexCount() != 6 {
		t.Fatalf("counts = (%d, %d), want (4, 6)", m.VertexCount(), m.IndexCount())
	}

	mesh := m.Meshes()[0]
	if mesh.TriangleCount() != 2 {
		t.Errorf("triangles = %d, want 2", mesh.TriangleCount())
	}
	for i, v := range mesh.Vertices {
		if !near(v.Normal, [3]float32{0, 0, 1}) {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
	if mesh.BoundingMin != [3]float32{0, 0, 0} || mesh.BoundingMax != [3]float32{1, 1, 0} {
		t.Errorf("bounds = (%v, %v)", mesh.BoundingMin, mesh.BoundingMax)
	}

	src := m.Source()
	if src == nil || src.FaceCount() != 2 || src.PositionCount() != 4 {
		t.Fatalf("source mesh not triangulated: %+v", src)
	}
}

func TestLoadCachesByPath(t *testing.T) {
	l := NewLoader(BackendTypeOBJ)
	path := writeOBJ(t, "quad.obj", quadOBJ)

	first, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := l.Load(path)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if first != second {
		t.Error("second Load did not return the cached model")
	}
	if l.Get(path) != first {
		t.Error("Get did not return the cached model")
	}
	if len(l.Models()) != 1 {
		t.Errorf("cache holds %d models, want 1", len(l.Models()))
	}
}

func TestLoadReaderKeepsFileAttributes(t *testing.T) {
	l := NewLoader(BackendTypeOBJ)

	m, err := l.LoadReader("tri", strings.NewReader(texturedTriangleOBJ))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if l.Get("tri") != m {
		t.Fatal("model not cached under its name")
	}

	vertices := m.Meshes()[0].Vertices
	if len(vertices) != 3 {
		t.Fatalf("%d vertices, want 3", len(vertices))
	}
	want := [][2]float32{{0, 0}, {1, 0}, {0, 1}}
	for i, v := range vertices {
		if v.TexCoord != want[i] {
			t.Errorf("vertex %d texcoord = %v, want %v", i, v.TexCoord, want[i])
		}
		if v.Normal != [3]float32{0, 0, 1} {
			t.Errorf("vertex %d normal = %v, want file normal", i, v.Normal)
		}
	}
}

func TestLoadSplitsVerticesOnDistinctAttributes(t *testing.T) {
	const seam = `v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
vt 0 0
vt 1 1
f 1/1 2/1 3/1
f 2/2 4/2 3/2
`
	l := NewLoader(BackendTypeOBJ)
	m, err := l.LoadReader("seam", strings.NewReader(seam))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	// Positions 2 and 3 appear with two different texcoords each.
	if m.VertexCount() != 6 {
		t.Errorf("vertices = %d, want 6", m.VertexCount())
	}
	for i, v := range m.Meshes()[0].Vertices {
		if !near(v.Normal, [3]float32{0, 0, 1}) {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	l := NewLoader(BackendTypeOBJ)

	if _, err := l.Load(writeOBJ(t, "quad.gltf", quadOBJ)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("gltf error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := l.Load(filepath.Join(t.TempDir(), "missing.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	bad := writeOBJ(t, "bad.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n")
	if _, err := l.Load(bad); !errors.Is(err, obj.ErrPositionOutOfRange) {
		t.Errorf("bad index error = %v, want ErrPositionOutOfRange", err)
	}
	if l.Get(bad) != nil {
		t.Error("failed load was cached")
	}
}

func TestLoadAll(t *testing.T) {
	l := NewLoader(BackendTypeOBJ, WithWorkers(2))
	defer l.Close()

	paths := []string{
		writeOBJ(t, "quad.obj", quadOBJ),
		writeOBJ(t, "broken.obj", "v 0 0 0\nf 1 2 3\n"),
		writeOBJ(t, "tri.obj", texturedTriangleOBJ),
	}

	models, err := l.LoadAll(paths)
	if !errors.Is(err, obj.ErrPositionOutOfRange) {
		t.Fatalf("LoadAll error = %v, want ErrPositionOutOfRange", err)
	}
	if len(models) != 3 {
		t.Fatalf("%d results, want 3", len(models))
	}
	if models[0] == nil || models[0].Name() != "quad" {
		t.Errorf("result 0 = %v, want quad", models[0])
	}
	if models[1] != nil {
		t.Error("failed file produced a model")
	}
	if models[2] == nil || models[2].Name() != "tri" {
		t.Errorf("result 2 = %v, want tri", models[2])
	}

	// A second batch reuses the pool and the cache.
	again, err := l.LoadAll(paths[:1])
	if err != nil || again[0] != models[0] {
		t.Errorf("second batch = (%v, %v), want cached quad", again, err)
	}
}

func TestLoadAllAfterClose(t *testing.T) {
	l := NewLoader(BackendTypeOBJ, WithWorkers(1))

	first := writeOBJ(t, "quad.obj", quadOBJ)
	if _, err := l.LoadAll([]string{first}); err != nil {
		t.Fatalf("first LoadAll: %v", err)
	}
	l.Close()

	second := writeOBJ(t, "tri.obj", texturedTriangleOBJ)
	type result struct {
		models []model.Model
		err    error
	}
	done := make(chan result, 1)
	go func() {
		models, err := l.LoadAll([]string{second})
		done <- result{models, err}
	}()

	select {
	case r := <-done:
		if r.err != nil || len(r.models) != 1 || r.models[0] == nil {
			t.Fatalf("LoadAll after Close = (%v, %v)", r.models, r.err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("LoadAll after Close did not return")
	}

	l.Close()
	l.Close()
}

func TestCloseConcurrentWithLoadAll(t *testing.T) {
	l := NewLoader(BackendTypeOBJ, WithWorkers(2))
	path := writeOBJ(t, "quad.obj", quadOBJ)

	done := make(chan error, 1)
	go func() {
		_, err := l.LoadAll([]string{path, path, path})
		done <- err
	}()
	l.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("LoadAll: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("LoadAll racing Close did not return")
	}
	l.Close()
}

func TestLoadAllEmpty(t *testing.T) {
	l := NewLoader(BackendTypeOBJ)
	models, err := l.LoadAll(nil)
	if err != nil || len(models) != 0 {
		t.Fatalf("LoadAll(nil) = (%v, %v)", models, err)
	}
	l.Close()
}

func TestLoaderOptions(t *testing.T) {
	var logs bytes.Buffer
	p := profiler.NewProfiler()
	preset := model.NewModel(model.WithName("preset"))

	l := NewLoader(BackendTypeOBJ,
		WithModel("preset", preset),
		WithLogger(log.New(&logs, "", 0)),
		WithProfiler(p),
		WithParserOptions(obj.WithChunkSize(8), obj.WithCarriageReturnTrim(true)),
	)

	if l.Get("preset") != preset {
		t.Fatal("preset model missing from cache")
	}

	crlf := strings.ReplaceAll(quadOBJ, "\n", "\r\n")
	m, err := l.LoadReader("crlf", strings.NewReader(crlf))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if m.IndexCount() != 6 {
		t.Errorf("indices = %d, want 6", m.IndexCount())
	}

	if !strings.HasPrefix(logs.String(), "[Loader] crlf:") {
		t.Errorf("log = %q", logs.String())
	}
	if s := p.Snapshot(); s.Files != 1 || s.Bytes != int64(len(crlf)) {
		t.Errorf("profiler snapshot = %+v, want 1 file of %d bytes", s, len(crlf))
	}
}

func TestLoadBoundsIgnoreUnreferencedPositions(t *testing.T) {
	const stray = `v 0 0 0
v 1 0 0
v 0 1 0
v 50 -20 9
f 1 2 3
`
	l := NewLoader(BackendTypeOBJ)
	m, err := l.LoadReader("stray", strings.NewReader(stray))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	mesh := m.Meshes()[0]
	if mesh.BoundingMin != [3]float32{0, 0, 0} || mesh.BoundingMax != [3]float32{1, 1, 0} {
		t.Errorf("bounds = (%v, %v), want referenced geometry only", mesh.BoundingMin, mesh.BoundingMax)
	}
	if got := m.BoundingRadius(); got != 1 {
		t.Errorf("radius = %g, want 1", got)
	}
}

func TestExtractRequiresTriangles(t *testing.T) {
	mesh := obj.NewMesh()
	obj.ParseLine(mesh, []byte("v 0 0 0"))
	obj.ParseLine(mesh, []byte("v 1 0 0"))
	obj.ParseLine(mesh, []byte("v 1 1 0"))
	obj.ParseLine(mesh, []byte("v 0 1 0"))
	obj.ParseLine(mesh, []byte("f 1 2 3 4"))

	e := newOBJMeshExtractor()
	if _, err := e.Extract("quad", mesh); err == nil {
		t.Fatal("expected error for untriangulated mesh")
	}

	if err := obj.Triangulate(mesh); err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	out, err := e.Extract("", mesh)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.Name != "obj_mesh" || len(out.Indices) != 6 {
		t.Errorf("extracted %q with %d indices", out.Name, len(out.Indices))
	}
}

func TestGenerateNormalsDegenerate(t *testing.T) {
	vertices := []model.GPUVertex{
		{Position: [3]float32{0, 0, 0}},
		{Position: [3]float32{1, 0, 0}},
		{Position: [3]float32{2, 0, 0}},
	}
	generateNormals(vertices, []uint32{0, 1, 2}, []int32{0, 1, 2}, []bool{true, true, false}, 3)

	if vertices[0].Normal != [3]float32{0, 1, 0} || vertices[1].Normal != [3]float32{0, 1, 0} {
		t.Errorf("degenerate normals = %v, %v, want +Y", vertices[0].Normal, vertices[1].Normal)
	}
	if vertices[2].Normal != ([3]float32{}) {
		t.Errorf("vertex with a file normal was overwritten: %v", vertices[2].Normal)
	}
}
