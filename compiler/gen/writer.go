package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dave/jennifer/jen"
	"github.com/google/uuid"
	"golang.org/x/tools/imports"
)

// FileWriter renders Jennifer files and streams them to disk one at a
// time, post-processing each with goimports-style formatting. It is safe
// for concurrent use; the generator calls it from its worker pool.
type FileWriter struct {
	outDir string
	dryRun bool

	// Metrics for performance monitoring
	mu        sync.Mutex
	metrics   WriterMetrics
	artifacts []Artifact
}

// WriterMetrics tracks generation performance.
type WriterMetrics struct {
	// RunID tags the metrics of one generation run.
	RunID          string
	FilesGenerated int
	TotalBytes     int64
	RenderTime     int64 // nanoseconds
	FormatTime     int64 // nanoseconds
	WriteTime      int64 // nanoseconds
}

// Artifact describes one generated file.
type Artifact struct {
	// Name of the file, relative to the output directory.
	Name string
	// Size of the rendered content in bytes.
	Size int64
}

// ArtifactSet lists the artifacts of one generation run in name order.
type ArtifactSet struct {
	artifacts []Artifact
}

// All returns the artifacts in name order.
func (s *ArtifactSet) All() []Artifact {
	if s == nil {
		return nil
	}
	return s.artifacts
}

// Names returns the artifact file names in name order.
func (s *ArtifactSet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.artifacts))
	for i, a := range s.artifacts {
		names[i] = a.Name
	}
	return names
}

// Len returns the number of artifacts.
func (s *ArtifactSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.artifacts)
}

// Size returns the total rendered size in bytes.
func (s *ArtifactSet) Size() int64 {
	if s == nil {
		return 0
	}
	var n int64
	for _, a := range s.artifacts {
		n += a.Size
	}
	return n
}

// NewFileWriter creates a writer for the given output directory.
func NewFileWriter(outDir string) *FileWriter {
	return &FileWriter{
		outDir:  outDir,
		metrics: WriterMetrics{RunID: uuid.NewString()},
	}
}

// Write renders f and writes it under the writer's output directory.
// In dry-run mode the file is rendered and recorded but nothing touches
// the disk.
func (w *FileWriter) Write(f *jen.File, name string) error {
	started := time.Now()

	// 1. Render the file
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError("render", name, "render file", err)
	}
	rendered := time.Now()

	// 2. Re-format and prune imports a generator registered but never
	// used. This also re-parses the output, so broken code fails here
	// instead of at the consumer's next build.
	fullPath := filepath.Join(w.outDir, name)
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		// Write unformatted file for debugging (errors intentionally ignored as we're already in error state)
		debugPath := fullPath + ".error"
		if !w.dryRun {
			_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
			_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		}
		return NewGenerationError("format", name, fmt.Sprintf("unformatted output written to %s", debugPath), err)
	}
	formattedAt := time.Now()

	// 3. Write file
	if !w.dryRun {
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return NewGenerationError("write", name, "create directory", err)
		}
		if err := os.WriteFile(fullPath, formatted, 0o644); err != nil {
			return NewGenerationError("write", name, "write file", err)
		}
	}

	// Update metrics
	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(formatted))
	w.metrics.RenderTime += rendered.Sub(started).Nanoseconds()
	w.metrics.FormatTime += formattedAt.Sub(rendered).Nanoseconds()
	w.metrics.WriteTime += time.Since(formattedAt).Nanoseconds()
	w.artifacts = append(w.artifacts, Artifact{Name: name, Size: int64(len(formatted))})
	w.mu.Unlock()

	return nil
}

// Metrics returns a copy of the accumulated metrics.
func (w *FileWriter) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Artifacts returns the files recorded so far, sorted by name.
func (w *FileWriter) Artifacts() *ArtifactSet {
	w.mu.Lock()
	defer w.mu.Unlock()
	artifacts := make([]Artifact, len(w.artifacts))
	copy(artifacts, w.artifacts)
	sort.Slice(artifacts, func(i, j int) bool { return artifacts[i].Name < artifacts[j].Name })
	return &ArtifactSet{artifacts: artifacts}
}
