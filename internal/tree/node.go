// Package tree holds the snapshot data model: a content-addressed tree of
// file and folder nodes, the entry filter and builder that capture one from
// a live path, JSON persistence, and status-filtered traversal.
package tree

import "time"

// Kind distinguishes file nodes from folder nodes.
type Kind int

const (
	File Kind = iota
	Folder
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Folder:
		return "folder"
	}
	return "unknown"
}

// Status classifies a node relative to a prior snapshot. The builder leaves
// every node Unmodified; only the diff engine produces the other values.
type Status int

const (
	Unmodified Status = iota
	Modified
	Added
	Removed
)

func (s Status) String() string {
	switch s {
	case Unmodified:
		return "unmodified"
	case Modified:
		return "modified"
	case Added:
		return "added"
	case Removed:
		return "removed"
	}
	return "unknown"
}

// Node is one entry in a snapshot tree. Rev is the content digest: for a
// file, the digest of its bytes; for a folder, the digest of its children's
// digests in child order. Children is owned exclusively by the node and is
// always empty for files. Nodes are never mutated once built.
type Node struct {
	Kind     Kind
	Name     string
	Rev      string
	Status   Status
	Children []*Node
}

// Snapshot is an immutable capture of the subtree rooted at Path. Include
// holds the whitelist globs the snapshot was built with, retained so the
// same root can be re-captured for comparison. An empty Include means every
// file was eligible.
type Snapshot struct {
	ID      string
	Path    string
	Include []string
	Created time.Time
	Root    *Node
}

// StatusSet selects which statuses a traversal should yield.
type StatusSet map[Status]struct{}

// Statuses builds a StatusSet from its arguments.
func Statuses(ss ...Status) StatusSet {
	set := make(StatusSet, len(ss))
	for _, s := range ss {
		set[s] = struct{}{}
	}
	return set
}

// Has reports whether s is in the set.
func (set StatusSet) Has(s Status) bool {
	_, ok := set[s]
	return ok
}
