package rng

import (
	"crypto/rand"
	"errors"
	"io"
	"sync"
	"sync/atomic"
)

// MaxOperations is the number of reads served by one generator instance
// before it is rebuilt from the source factory.
const MaxOperations = 1_000_000

var (
	ErrNilSource         = errors.New("rng: source factory cannot be nil")
	ErrSourceUnavailable = errors.New("rng: random source unavailable")
	ErrShortRead         = errors.New("rng: short read from random source")
)

// SourceFunc constructs a fresh random byte stream. It is invoked once at
// construction time and again on every reseed.
type SourceFunc func() (io.Reader, error)

// Option configures a Reseeding reader.
type Option func(*Reseeding)

// WithSource replaces the default crypto/rand source factory.
func WithSource(fn SourceFunc) Option {
	return func(r *Reseeding) {
		r.newSource = fn
	}
}

// Reseeding is an io.Reader of uniform random bytes that rebuilds its
// underlying generator after MaxOperations reads. Safe for concurrent use.
type Reseeding struct {
	mu        sync.RWMutex
	source    io.Reader
	newSource SourceFunc
	count     atomic.Int64
}

// New builds a Reseeding reader. It fails if the source factory cannot
// produce an initial generator, which indicates a misconfigured host.
func New(opts ...Option) (*Reseeding, error) {
	r := &Reseeding{
		newSource: func() (io.Reader, error) { return rand.Reader, nil },
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.newSource == nil {
		return nil, ErrNilSource
	}

	source, err := r.newSource()
	if err != nil {
		return nil, errors.Join(ErrSourceUnavailable, err)
	}
	r.source = source

	return r, nil
}

// Read fills p with random bytes, counting one operation regardless of the
// buffer size. Short reads from the underlying source are treated as errors
// so callers always get either a full buffer or a failure.
func (r *Reseeding) Read(p []byte) (int, error) {
	if r.count.Add(1) > MaxOperations {
		if err := r.reseed(); err != nil {
			return 0, err
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n, err := io.ReadFull(r.source, p)
	if err != nil {
		return n, errors.Join(ErrShortRead, err)
	}
	return n, nil
}

// reseed rebuilds the generator once the operation budget is exhausted.
// The count is re-checked under the exclusive lock so concurrent readers
// racing past the threshold trigger only one rebuild.
func (r *Reseeding) reseed() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count.Load() <= MaxOperations {
		return nil
	}

	source, err := r.newSource()
	if err != nil {
		return errors.Join(ErrSourceUnavailable, err)
	}
	r.source = source
	r.count.Store(0)

	return nil
}
