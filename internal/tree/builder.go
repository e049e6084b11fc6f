package tree

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"snapdiff/internal/hash"
)

// Build captures a snapshot of the subtree rooted at path. include is the
// whitelist of shell globs applied to file base names; empty means every
// file. Returns ErrNotFound if path does not exist, and ErrIO on any read
// or listing failure — no partial tree is ever returned.
//
// Directory entries are taken in os.ReadDir order, which is sorted by name.
// Child order, and with it every folder digest, is therefore independent of
// the OS enumeration order.
func Build(path string, include []string) (*Snapshot, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "resolving %s: %v", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", abs)
		}
		return nil, errors.Wrapf(ErrIO, "stat %s: %v", abs, err)
	}

	root, err := buildNode(abs, info.IsDir(), include)
	if err != nil {
		return nil, err
	}

	patterns := make([]string, len(include))
	copy(patterns, include)

	return &Snapshot{
		ID:      uuid.New().String(),
		Path:    abs,
		Include: patterns,
		Created: time.Now(),
		Root:    root,
	}, nil
}

func buildNode(path string, isDir bool, include []string) (*Node, error) {
	name := filepath.Base(path)

	if !isDir {
		rev, err := hash.File(path)
		if err != nil {
			return nil, errors.Wrapf(ErrIO, "hashing %s: %v", path, err)
		}
		return &Node{Kind: File, Name: name, Rev: rev}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "listing %s: %v", path, err)
	}

	var children []*Node
	for _, entry := range entries {
		ok, err := Include(entry, include)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		child, err := buildNode(filepath.Join(path, entry.Name()), entry.IsDir(), include)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	revs := make([]string, len(children))
	for i, child := range children {
		revs[i] = child.Rev
	}

	return &Node{Kind: Folder, Name: name, Rev: hash.Tree(revs), Children: children}, nil
}
