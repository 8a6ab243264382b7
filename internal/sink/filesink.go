// Package sink persists extracted resources to the filesystem.
//
// Parse errors never originate here; everything the sink returns is an I/O
// failure from the destination, wrapped with file context.
package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/palmkit/prc"
)

// DefaultHeaderName is used for the raw header dump when no name is set.
const DefaultHeaderName = "header.hdr"

// FileSink writes resources under a destination directory with atomic
// writes: content goes to a temp file in the target directory, then a
// rename publishes it. Partially written files are never visible at the
// final path.
//
// Each resource is named <type><id>.bin, with the type rendered printably
// and the id in four hex digits. Duplicate (type, id) entries collide on
// the same path; with overwrite disabled the later one is skipped.
type FileSink struct {
	destDir    string
	headerName string
	overwrite  bool
	byType     bool
	compress   bool
	level      zstd.EncoderLevel
}

// Option configures a FileSink.
type Option func(*FileSink)

// WithOverwrite allows overwriting existing files.
// By default, existing files are skipped.
func WithOverwrite(overwrite bool) Option {
	return func(s *FileSink) {
		s.overwrite = overwrite
	}
}

// WithByType groups output into per-category subdirectories using
// prc.CategoryDir. By default all files land directly in the destination.
func WithByType(byType bool) Option {
	return func(s *FileSink) {
		s.byType = byType
	}
}

// WithZstd compresses each output with zstd at the given level and appends
// a .zst suffix to the file name. The raw header dump is never compressed.
func WithZstd(level zstd.EncoderLevel) Option {
	return func(s *FileSink) {
		s.compress = true
		s.level = level
	}
}

// WithHeaderName sets the file name for the raw 78-byte header dump.
func WithHeaderName(name string) Option {
	return func(s *FileSink) {
		s.headerName = name
	}
}

// New creates a FileSink rooted at destDir. Directories are created as
// needed when writing.
func New(destDir string, opts ...Option) *FileSink {
	s := &FileSink{
		destDir:    destDir,
		headerName: DefaultHeaderName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the destination path for a resource, including the category
// directory and compression suffix when those options are set.
func (s *FileSink) Path(entry prc.ResourceEntry) string {
	name := fmt.Sprintf("%s%04x.bin", entry.Type, entry.ID)
	if s.compress {
		name += ".zst"
	}
	if s.byType {
		return filepath.Join(s.destDir, prc.CategoryDir(entry.Type), name)
	}
	return filepath.Join(s.destDir, name)
}

// ShouldProcess returns false if the destination already exists and
// overwrite is disabled.
func (s *FileSink) ShouldProcess(entry prc.ResourceEntry) bool {
	if s.overwrite {
		return true
	}
	_, err := os.Stat(s.Path(entry))
	return os.IsNotExist(err)
}

// Committer receives one resource's bytes and publishes or discards them.
type Committer interface {
	io.Writer

	// Commit publishes the written content at the final path.
	Commit() error

	// Discard drops the written content, removing the temp file.
	Discard() error
}

// Writer returns a Committer for the resource. Parent directories are
// created here so a sink for an empty directory layout stays side-effect
// free until something is written.
func (s *FileSink) Writer(entry prc.ResourceEntry) (Committer, error) {
	return s.newCommitter(s.Path(entry))
}

// PutHeader writes the raw header bytes, atomically like any resource.
func (s *FileSink) PutHeader(raw []byte) error {
	c, err := s.newRawCommitter(filepath.Join(s.destDir, s.headerName))
	if err != nil {
		return err
	}
	if _, err := c.Write(raw); err != nil {
		_ = c.Discard()
		return fmt.Errorf("write %s: %w", s.headerName, err)
	}
	if err := c.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", s.headerName, err)
	}
	return nil
}

func (s *FileSink) newCommitter(destPath string) (Committer, error) {
	c, err := s.newRawCommitter(destPath)
	if err != nil {
		return nil, err
	}
	if !s.compress {
		return c, nil
	}

	enc, err := zstd.NewWriter(c.tempFile, zstd.WithEncoderLevel(s.level))
	if err != nil {
		_ = c.Discard()
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	return &zstdCommitter{raw: c, enc: enc}, nil
}

func (s *FileSink) newRawCommitter(destPath string) (*fileCommitter, error) {
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}

	// Temp file in the same directory so the final rename is atomic.
	tempFile, err := os.CreateTemp(dir, ".prc-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &fileCommitter{
		destPath: destPath,
		tempFile: tempFile,
	}, nil
}

// fileCommitter writes to a temp file and renames on Commit.
type fileCommitter struct {
	destPath string
	tempFile *os.File
}

// Write implements io.Writer.
func (c *fileCommitter) Write(p []byte) (int, error) {
	return c.tempFile.Write(p)
}

// Commit closes the temp file and renames it to the final path.
func (c *fileCommitter) Commit() error {
	tempPath := c.tempFile.Name()
	if err := c.tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tempPath, c.destPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("rename to %s: %w", c.destPath, err)
	}
	return nil
}

// Discard closes and removes the temp file.
func (c *fileCommitter) Discard() error {
	tempPath := c.tempFile.Name()
	_ = c.tempFile.Close()
	return os.Remove(tempPath)
}

// zstdCommitter compresses through an encoder into the underlying temp file.
type zstdCommitter struct {
	raw *fileCommitter
	enc *zstd.Encoder
}

func (c *zstdCommitter) Write(p []byte) (int, error) {
	return c.enc.Write(p)
}

func (c *zstdCommitter) Commit() error {
	if err := c.enc.Close(); err != nil {
		_ = c.raw.Discard()
		return fmt.Errorf("finish zstd stream: %w", err)
	}
	return c.raw.Commit()
}

func (c *zstdCommitter) Discard() error {
	_ = c.enc.Close()
	return c.raw.Discard()
}
