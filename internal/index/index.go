// Package index stores (value, row id) pairs in a pebble database,
// ordered by value.
package index

import (
	"io"

	"github.com/Tianpingan/tinysql/internal/encoding"
	"github.com/Tianpingan/tinysql/internal/types"
	"github.com/Tianpingan/tinysql/lib/pebbleutil"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/sirupsen/logrus"
)

// Options configure an index.
type Options struct {
	// InMemory keeps the index in memory. Path is ignored.
	InMemory bool
	// Sync forces an fsync on every write.
	Sync bool
	// Logger receives the index and pebble logs. Nil disables logging.
	Logger logrus.FieldLogger
}

// Index is an ordered secondary index over values of a single type.
// It is safe for concurrent use.
type Index struct {
	db   *pebble.DB
	t    types.Type
	size int
	wo   *pebble.WriteOptions
	log  logrus.FieldLogger
}

// Open an index of values of type t stored at path.
func Open(path string, t types.Type, opts *Options) (*Index, error) {
	if opts == nil {
		opts = &Options{}
	}

	size, err := t.Size()
	if err != nil {
		return nil, errors.Wrap(err, "cannot index type")
	}

	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	log = log.WithField("component", "index")

	var popts pebble.Options
	popts.Comparer = NewComparer(t)
	popts.Logger = pebbleutil.NewLogger(opts.Logger)
	if opts.InMemory {
		popts.FS = vfs.NewMem()
		path = ""
	}

	db, err := pebble.Open(path, &popts)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open index at %q", path)
	}

	wo := pebble.NoSync
	if opts.Sync {
		wo = pebble.Sync
	}

	log.WithFields(logrus.Fields{
		"path":      path,
		"type":      t.String(),
		"in_memory": opts.InMemory,
	}).Debug("index opened")

	return &Index{
		db:   db,
		t:    t,
		size: size,
		wo:   wo,
		log:  log,
	}, nil
}

// Type returns the type of the indexed values.
func (idx *Index) Type() types.Type {
	return idx.t
}

// Set adds the pair (v, rowID) to the index. Setting an existing pair is a no-op.
func (idx *Index) Set(v types.Value, rowID uint64) error {
	k, err := idx.key(v, rowID)
	if err != nil {
		return err
	}

	return errors.WithStack(idx.db.Set(k, nil, idx.wo))
}

// Delete removes the pair (v, rowID) from the index, if present.
func (idx *Index) Delete(v types.Value, rowID uint64) error {
	k, err := idx.key(v, rowID)
	if err != nil {
		return err
	}

	return errors.WithStack(idx.db.Delete(k, idx.wo))
}

// Batch groups writes to an index. Nothing is visible until Commit.
// A Batch must not be used concurrently.
type Batch struct {
	idx *Index
	b   *pebble.Batch
	n   int
}

// NewBatch returns an empty batch. It must be closed after use.
func (idx *Index) NewBatch() *Batch {
	return &Batch{idx: idx, b: idx.db.NewBatch()}
}

// Set adds the pair (v, rowID) to the batch.
func (b *Batch) Set(v types.Value, rowID uint64) error {
	k, err := b.idx.key(v, rowID)
	if err != nil {
		return err
	}

	if err := b.b.Set(k, nil, nil); err != nil {
		return errors.WithStack(err)
	}
	b.n++
	return nil
}

// Len returns the number of pairs set in the batch.
func (b *Batch) Len() int {
	return b.n
}

// Commit applies every pair of the batch atomically.
func (b *Batch) Commit() error {
	b.idx.log.WithField("pairs", b.n).Debug("committing batch")
	return errors.WithStack(b.b.Commit(b.idx.wo))
}

// Close releases the batch. Uncommitted pairs are discarded.
func (b *Batch) Close() error {
	return errors.WithStack(b.b.Close())
}

// Lookup returns the row ids associated with v, in ascending order.
func (idx *Index) Lookup(v types.Value) ([]uint64, error) {
	var ids []uint64

	err := idx.Iterate(v, func(cur types.Value, rowID uint64) error {
		if ok, err := types.IsEqual(cur, v); err != nil || !ok {
			return errStop
		}
		ids = append(ids, rowID)
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}

	return ids, nil
}

var errStop = errors.New("stop")

// Iterate calls fn for every pair whose value is greater than or equal to pivot,
// in ascending order. A nil pivot iterates over the whole index.
// Iteration stops at the first error returned by fn.
func (idx *Index) Iterate(pivot types.Value, fn func(v types.Value, rowID uint64) error) (err error) {
	var seek []byte
	if pivot != nil {
		seek, err = idx.key(pivot, 0)
		if err != nil {
			return err
		}
	}

	it := idx.db.NewIter(nil)
	defer func() {
		err = errors.CombineErrors(err, it.Close())
	}()

	var valid bool
	if seek == nil {
		valid = it.First()
	} else {
		valid = it.SeekGE(seek)
	}

	for ; valid; valid = it.Next() {
		v, rowID, err := idx.decodeKey(it.Key())
		if err != nil {
			return err
		}

		if err := fn(v, rowID); err != nil {
			return err
		}
	}

	return it.Error()
}

// Close the index.
func (idx *Index) Close() error {
	idx.log.Debug("closing index")
	return errors.WithStack(idx.db.Close())
}

func (idx *Index) key(v types.Value, rowID uint64) ([]byte, error) {
	if v == nil {
		return nil, errors.Wrapf(types.ErrTypeMismatch, "index of %s cannot store a missing value", idx.t)
	}
	if v.Type() != idx.t {
		return nil, errors.Wrapf(types.ErrTypeMismatch, "index of %s cannot store %s", idx.t, v.Type())
	}

	k := make([]byte, 0, idx.size+encoding.Uint64Size)
	k = v.Encode(k)
	return encoding.EncodeUint64(k, rowID), nil
}

func (idx *Index) decodeKey(k []byte) (types.Value, uint64, error) {
	if len(k) != idx.size+encoding.Uint64Size {
		return nil, 0, errors.Wrapf(types.ErrCorruptedValue, "invalid index key of %d bytes", len(k))
	}

	v, err := types.Decode(k, idx.t)
	if err != nil {
		return nil, 0, err
	}

	return v, encoding.DecodeUint64(k[idx.size:]), nil
}
