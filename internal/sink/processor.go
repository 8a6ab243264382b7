package sink

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/palmkit/prc"
)

// Processor drains a parsed file into a FileSink: the raw header first,
// then every resource in directory order.
type Processor struct {
	workers  int
	progress func(entry prc.ResourceEntry, path string)
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithWorkers sets the number of concurrent writers. Values <= 1 process
// serially. Resource payloads are independent read-only views over the same
// immutable buffer, so concurrent writers need no locking.
func WithWorkers(n int) ProcessorOption {
	return func(p *Processor) {
		p.workers = n
	}
}

// WithProgress installs a callback invoked after each resource is
// committed. With multiple workers the callbacks arrive in commit order,
// not directory order, and may run on different goroutines.
func WithProgress(fn func(entry prc.ResourceEntry, path string)) ProcessorOption {
	return func(p *Processor) {
		p.progress = fn
	}
}

// NewProcessor creates a Processor.
func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process extracts f through s. Written counts resources committed; entries
// skipped by ShouldProcess are not counted. The first error stops
// processing and is returned; in-flight parallel writes are discarded, not
// committed.
func (p *Processor) Process(f *prc.File, s *FileSink) (written int, err error) {
	if err := s.PutHeader(f.RawHeader()); err != nil {
		return 0, err
	}

	if p.workers <= 1 {
		return p.processSerial(f, s)
	}
	return p.processParallel(f, s)
}

func (p *Processor) processSerial(f *prc.File, s *FileSink) (int, error) {
	written := 0
	for entry, payload := range f.Resources() {
		if !s.ShouldProcess(entry) {
			continue
		}
		if err := p.writeOne(s, entry, payload); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (p *Processor) processParallel(f *prc.File, s *FileSink) (int, error) {
	var g errgroup.Group
	g.SetLimit(p.workers)

	results := make(chan struct{}, f.NumResources())
	for entry, payload := range f.Resources() {
		if !s.ShouldProcess(entry) {
			continue
		}
		g.Go(func() error {
			if err := p.writeOne(s, entry, payload); err != nil {
				return err
			}
			results <- struct{}{}
			return nil
		})
	}

	err := g.Wait()
	close(results)
	return len(results), err
}

func (p *Processor) writeOne(s *FileSink, entry prc.ResourceEntry, payload []byte) error {
	w, err := s.Writer(entry)
	if err != nil {
		return fmt.Errorf("resource %s #%d: %w", entry.Type, entry.ID, err)
	}
	if _, err := w.Write(payload); err != nil {
		_ = w.Discard()
		return fmt.Errorf("resource %s #%d: %w", entry.Type, entry.ID, err)
	}
	if err := w.Commit(); err != nil {
		return fmt.Errorf("resource %s #%d: %w", entry.Type, entry.ID, err)
	}
	if p.progress != nil {
		p.progress(entry, s.Path(entry))
	}
	return nil
}
