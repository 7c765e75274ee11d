// Command objinfo prints geometry statistics for Wavefront OBJ files.
//
// Usage:
//
//	objinfo [-triangulate] [-validate] [-crlf] [-workers N] [-profile] [-v] file.obj...
//
// Without -triangulate each file is parsed as written and its raw counts are reported.
// With -triangulate the files are loaded concurrently through the model loader, which also
// validates them and reports triangle and output vertex counts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-obj/common"
	"github.com/Carmen-Shannon/oxy-obj/engine/loader"
	"github.com/Carmen-Shannon/oxy-obj/engine/model"
	"github.com/Carmen-Shannon/oxy-obj/engine/obj"
	"github.com/Carmen-Shannon/oxy-obj/engine/profiler"
)

func main() {
	triangulate := flag.Bool("triangulate", false, "fan-triangulate faces and report triangle and vertex counts")
	validate := flag.Bool("validate", false, "reject files whose face indices are out of range")
	crlf := flag.Bool("crlf", false, "strip a trailing carriage return from every line")
	workers := flag.Int("workers", max(1, runtime.NumCPU()-1), "number of files parsed concurrently with -triangulate")
	profile := flag.Bool("profile", false, "log parse throughput and memory statistics")
	verbose := flag.Bool("v", false, "log every loaded file and the GPU vertex layout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: objinfo [flags] file.obj...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var prof *profiler.Profiler
	if *profile {
		prof = profiler.NewProfiler()
	}

	parserOptions := []obj.ParserBuilderOption{obj.WithCarriageReturnTrim(*crlf)}

	var failed bool
	if *triangulate {
		failed = loadAll(flag.Args(), parserOptions, *workers, prof, *verbose)
	} else {
		parserOptions = append(parserOptions, obj.WithValidation(*validate))
		failed = parseAll(flag.Args(), parserOptions, prof)
	}

	if prof != nil {
		prof.Report()
	}
	if failed {
		os.Exit(1)
	}
}

// loadAll loads the files through a Loader and prints one summary per model.
func loadAll(paths []string, parserOptions []obj.ParserBuilderOption, workers int, prof *profiler.Profiler, verbose bool) bool {
	options := []loader.LoaderBuilderOption{
		loader.WithParserOptions(parserOptions...),
		loader.WithWorkers(workers),
	}
	if prof != nil {
		options = append(options, loader.WithProfiler(prof))
	}
	if verbose {
		log.Printf("[objinfo] vertex layout: %s", model.DescribeLayout(model.GPUVertexLayout()))
		options = append(options, loader.WithLogger(log.Default()))
	}

	l := loader.NewLoader(loader.BackendTypeOBJ, options...)
	defer l.Close()

	models, err := l.LoadAll(paths)
	for i, m := range models {
		if m == nil {
			continue
		}
		src := m.Source()
		bmin, bmax := m.Bounds()
		fmt.Printf("%s: positions=%d texcoords=%d normals=%d triangles=%d vertices=%d indices=%d bounds=%v..%v\n",
			paths[i], src.PositionCount(), src.TexCoordCount(), src.NormalCount(),
			src.FaceCount(), m.VertexCount(), m.IndexCount(), bmin, bmax)
	}
	if err != nil {
		log.Printf("[objinfo] %v", err)
		return true
	}
	return false
}

// parseAll parses the files one after another and prints their raw counts.
func parseAll(paths []string, parserOptions []obj.ParserBuilderOption, prof *profiler.Profiler) bool {
	p := obj.NewParser(parserOptions...)
	failed := false

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			log.Printf("[objinfo] failed to open %s: %v", path, err)
			failed = true
			continue
		}

		m := obj.NewMesh()
		start := time.Now()
		stats, err := p.ParseInto(m, f)
		elapsed := time.Since(start)
		f.Close()
		if err != nil {
			log.Printf("[objinfo] failed to parse %s: %v", path, err)
			failed = true
			continue
		}
		if prof != nil {
			prof.Track(path, stats.Bytes, elapsed)
		}

		bmin, bmax := common.CalculateBoundingBox(m.Positions.Data())
		fmt.Printf("%s: positions=%d texcoords=%d normals=%d faces=%d face-vertices=%d lines=%d bounds=%v..%v\n",
			path, m.PositionCount(), m.TexCoordCount(), m.NormalCount(),
			m.FaceCount(), m.FaceVertexTotal(), stats.Lines, bmin, bmax)
	}
	return failed
}
