package cachedir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// maxSlugLength bounds the human-readable portion of a record filename so
	// that very long node identifiers still produce valid paths.
	maxSlugLength = 64

	// hashLength is the number of hex characters of the node identifier's
	// SHA-256 digest appended to the slug. The digest disambiguates node
	// identifiers that sanitize to the same slug.
	hashLength = 12

	defaultExt = ".json"
)

// Resolver maps node identifiers to record file paths under a single cache
// root directory. The mapping is deterministic: the same node identifier
// always resolves to the same path, and distinct identifiers resolve to
// distinct paths.
type Resolver struct {
	root string
	ext  string
}

// NewResolver creates a resolver for the given cache root. When root is
// empty, the default root is used. Record files carry the ".json" extension
// unless overridden with WithExtension.
func NewResolver(root string) (Resolver, error) {
	if root == "" {
		var err error
		root, err = DefaultRoot()
		if err != nil {
			return Resolver{}, err
		}
	}
	return Resolver{root: root, ext: defaultExt}, nil
}

// WithExtension returns a copy of the resolver whose record files carry the
// given extension, matching the serializer the store writes records with.
func (r Resolver) WithExtension(ext string) Resolver {
	r.ext = ext
	return r
}

// DefaultRoot returns the standard cache location, ~/.merobox/auth_cache.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".merobox", "auth_cache"), nil
}

// Root returns the cache root directory.
func (r Resolver) Root() string {
	return r.root
}

// RecordPath returns the path of the record file for the given node
// identifier. The filename has the form "<slug>-<hash><ext>": a sanitized,
// length-bounded rendering of the identifier for human readability, plus a
// short digest for collision resistance.
func (r Resolver) RecordPath(nodeID string) string {
	return filepath.Join(r.root, r.fileName(nodeID))
}

func (r Resolver) fileName(nodeID string) string {
	sum := sha256.Sum256([]byte(nodeID))
	digest := hex.EncodeToString(sum[:])[:hashLength]
	return slug(nodeID) + "-" + digest + r.ext
}

// slug renders a node identifier safe for use in a filename. Characters
// outside [a-z0-9._-] are replaced with '-', uppercase is folded so the name
// is stable on case-insensitive filesystems, and leading dots are dropped to
// avoid producing hidden or traversal-prone names.
func slug(nodeID string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(nodeID) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_', c == '-':
			b.WriteRune(c)
		case c == '.':
			if b.Len() == 0 {
				b.WriteRune('-')
			} else {
				b.WriteRune(c)
			}
		default:
			b.WriteRune('-')
		}
	}

	s := b.String()
	if len(s) > maxSlugLength {
		s = s[:maxSlugLength]
	}
	if s == "" {
		s = "node"
	}
	return s
}

// Entry describes one record file present in the cache root.
type Entry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// Entries lists the record files currently present in the cache root, sorted
// by name. A missing root directory yields an empty list, matching the
// store's treatment of absence as the empty state.
func (r Resolver) Entries() ([]Entry, error) {
	dirEntries, err := os.ReadDir(r.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache directory %s: %w", r.root, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), r.ext) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("reading cache entry %s: %w", de.Name(), err)
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			Path:    filepath.Join(r.root, de.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}
