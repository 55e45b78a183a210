package store

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// tmpSuffix distinguishes in-flight writes from committed record files.
const tmpSuffix = ".tmp"

// File is the disk-backed store. Records are written with a temp-file +
// fsync + rename protocol so that a crash or concurrent reader never
// observes a partially written record: at any instant the record file either
// does not exist or is fully written. The cache directory and record files
// are restricted to the owning user.
//
// The store keeps no state between calls; the filesystem is the single
// source of truth. Concurrent saves for the same node race at the rename
// step and the last rename wins, which is accepted for the per-process,
// per-node usage pattern this cache serves.
type File[T any] struct {
	resolver   PathResolver
	serializer Serializer[T]
}

// NewFile creates a disk-backed store using the given path resolver and
// record serializer.
func NewFile[T any](resolver PathResolver, serializer Serializer[T]) *File[T] {
	return &File[T]{
		resolver:   resolver,
		serializer: serializer,
	}
}

// Save writes the record for nodeID, atomically replacing any previous
// record. The write order is fixed: encode, write to a sibling temp file,
// sync to stable storage, restrict permissions, then rename onto the final
// path. Nothing touches the final path until the rename, so a failure at any
// earlier step leaves the previous record intact.
func (s *File[T]) Save(ctx context.Context, nodeID string, record T) error {
	if err := s.ensureRoot(); err != nil {
		return err
	}

	// Encode before any filesystem mutation.
	data, err := s.serializer.Encode(record)
	if err != nil {
		return &SerializationError{Node: nodeID, Err: err}
	}

	final := s.resolver.RecordPath(nodeID)
	tmp := final + tmpSuffix

	if err := writeSync(tmp, data); err != nil {
		return fmt.Errorf("writing record for node %q: %w", nodeID, err)
	}

	if err := restrict(tmp, fileMode); err != nil {
		return fmt.Errorf("restricting record permissions for node %q: %w", nodeID, err)
	}

	// Atomic on POSIX filesystems: readers see the old record or the new
	// one, never a mix. On failure (e.g. cross-device link) the temp file is
	// left in place for diagnosis.
	if err := os.Rename(tmp, final); err != nil {
		return fmt.Errorf("committing record for node %q: %w", nodeID, err)
	}

	log.Ctx(ctx).Debug().Str("node", nodeID).Str("path", final).Msg("credential record saved")
	return nil
}

// Load reads the record for nodeID. A missing record file is the designed
// "no credentials" state and yields (zero, false, nil). A record that exists
// but does not decode yields a DeserializationError.
func (s *File[T]) Load(ctx context.Context, nodeID string) (T, bool, error) {
	var zero T

	path := s.resolver.RecordPath(nodeID)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("reading record for node %q: %w", nodeID, err)
	}

	record, err := s.serializer.Decode(data)
	if err != nil {
		return zero, false, &DeserializationError{Node: nodeID, Path: path, Err: err}
	}

	return record, true, nil
}

// Remove deletes the record for nodeID. Absence of the record file is a
// no-op success: absence is the sole representation of "no credentials", so
// there is nothing to write in its place.
func (s *File[T]) Remove(ctx context.Context, nodeID string) error {
	path := s.resolver.RecordPath(nodeID)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("removing record for node %q: %w", nodeID, err)
	}

	log.Ctx(ctx).Debug().Str("node", nodeID).Str("path", path).Msg("credential record removed")
	return nil
}

// Close releases nothing: the store holds no resources between calls.
func (s *File[T]) Close() error {
	return nil
}

// ensureRoot lazily creates the cache root with owner-only permissions.
// A pre-existing directory is left untouched, permissions included.
func (s *File[T]) ensureRoot() error {
	root := s.resolver.Root()

	if _, err := os.Stat(root); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking cache directory %s: %w", root, err)
	}

	if err := os.MkdirAll(root, dirMode); err != nil {
		return fmt.Errorf("creating cache directory %s: %w", root, err)
	}

	// MkdirAll's mode is masked by umask; chmod guarantees the exact bits.
	if err := restrict(root, dirMode); err != nil {
		return fmt.Errorf("restricting cache directory %s: %w", root, err)
	}

	return nil
}

// writeSync writes data to path and forces it to stable storage before
// returning. The file is created owner-only so the record is never exposed,
// even transiently, with wider permissions.
func writeSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
