package tablestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/geodataio/meshconv/blobstore"
	"github.com/segmentio/ksuid"
)

// ErrNotFound is returned when a Ref does not resolve to a stored table.
var ErrNotFound = errors.New("tablestore: table not found")

// Ref is an immutable opaque handle to a stored table.
//
// The textual form carries the table kind as a prefix
// (e.g. "vertex/2E9tV...parquet") purely for debuggability; callers must
// treat the whole value as opaque.
type Ref string

func newRef(kind Kind) Ref {
	return Ref(fmt.Sprintf("%s/%s.parquet", kind, ksuid.New().String()))
}

func (r Ref) kind() (Kind, error) {
	name, _, ok := strings.Cut(string(r), "/")
	if !ok {
		return 0, fmt.Errorf("tablestore: malformed ref %q", string(r))
	}
	k, ok := kindByName(name)
	if !ok {
		return 0, fmt.Errorf("tablestore: malformed ref %q: unknown kind %q", string(r), name)
	}
	return k, nil
}

// Store saves and loads columnar tables by opaque reference.
//
// Implementations must be safe for concurrent use by independent export and
// import calls. Save always produces a fresh Ref; a stored table is never
// mutated in place.
type Store interface {
	Save(ctx context.Context, t *Table) (Ref, error)
	Load(ctx context.Context, ref Ref) (*Table, error)
}

// ParquetStore is the default Store: tables are encoded as Parquet and the
// bytes kept in a blobstore.
type ParquetStore struct {
	blobs blobstore.BlobStore
}

// NewParquetStore creates a table store over the given blob store.
func NewParquetStore(blobs blobstore.BlobStore) *ParquetStore {
	return &ParquetStore{blobs: blobs}
}

// NewMemoryStore creates a table store backed by an in-memory blob store.
// Intended for tests and ephemeral conversions.
func NewMemoryStore() *ParquetStore {
	return NewParquetStore(blobstore.NewMemoryStore())
}

// Save encodes the table and stores it under a fresh reference.
func (s *ParquetStore) Save(ctx context.Context, t *Table) (Ref, error) {
	data, err := encodeParquet(t)
	if err != nil {
		return "", err
	}

	ref := newRef(t.Kind)
	if err := s.blobs.Put(ctx, string(ref), data); err != nil {
		return "", fmt.Errorf("tablestore: save %s table: %w", t.Kind, err)
	}
	return ref, nil
}

// Load retrieves and decodes the table behind ref.
func (s *ParquetStore) Load(ctx context.Context, ref Ref) (*Table, error) {
	kind, err := ref.kind()
	if err != nil {
		return nil, err
	}

	data, err := s.blobs.Get(ctx, string(ref))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, string(ref))
		}
		return nil, fmt.Errorf("tablestore: load %s: %w", string(ref), err)
	}

	return decodeParquet(kind, data)
}
