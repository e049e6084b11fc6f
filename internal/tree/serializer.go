package tree

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Record is the wire form of a Node.
type Record struct {
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	Rev      string   `json:"rev"`
	Status   string   `json:"status"`
	Children []Record `json:"children"`
}

// snapshotFile is the persisted document: the tree plus the metadata needed
// to re-capture the same root later.
type snapshotFile struct {
	Generator string    `json:"generator"`
	ID        string    `json:"id"`
	Created   time.Time `json:"created"`
	Root      string    `json:"root"`
	Include   []string  `json:"include"`
	Tree      Record    `json:"tree"`
}

const generator = "snapdiff"

// ToRecord converts a node tree to its wire form. It cannot fail for a
// well-formed in-memory tree.
func ToRecord(n *Node) Record {
	children := make([]Record, len(n.Children))
	for i, child := range n.Children {
		children[i] = ToRecord(child)
	}
	return Record{
		Type:     n.Kind.String(),
		Name:     n.Name,
		Rev:      n.Rev,
		Status:   n.Status.String(),
		Children: children,
	}
}

// FromRecord validates a wire record and assembles a fresh Node tree.
// Recorded revs and statuses are trusted as-is; nothing is recomputed.
// Returns ErrFormat on missing fields, unrecognized type/status values, or
// a file record carrying children.
func FromRecord(r Record) (*Node, error) {
	if r.Name == "" {
		return nil, errors.Wrap(ErrFormat, "missing name")
	}
	if r.Rev == "" {
		return nil, errors.Wrapf(ErrFormat, "node %s: missing rev", r.Name)
	}

	kind, err := parseKind(r.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "node %s", r.Name)
	}
	status, err := parseStatus(r.Status)
	if err != nil {
		return nil, errors.Wrapf(err, "node %s", r.Name)
	}

	if kind == File && len(r.Children) > 0 {
		return nil, errors.Wrapf(ErrFormat, "file %s has children", r.Name)
	}

	var children []*Node
	for _, rc := range r.Children {
		child, err := FromRecord(rc)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return &Node{Kind: kind, Name: r.Name, Rev: r.Rev, Status: status, Children: children}, nil
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "file":
		return File, nil
	case "folder":
		return Folder, nil
	case "":
		return 0, errors.Wrap(ErrFormat, "missing type")
	}
	return 0, errors.Wrapf(ErrFormat, "unknown type %q", s)
}

func parseStatus(s string) (Status, error) {
	switch s {
	case "unmodified":
		return Unmodified, nil
	case "modified":
		return Modified, nil
	case "added":
		return Added, nil
	case "removed":
		return Removed, nil
	case "":
		return 0, errors.Wrap(ErrFormat, "missing status")
	}
	return 0, errors.Wrapf(ErrFormat, "unknown status %q", s)
}

// Save writes a snapshot to path as pretty-printed JSON.
func Save(snap *Snapshot, path string) error {
	doc := snapshotFile{
		Generator: generator,
		ID:        snap.ID,
		Created:   snap.Created,
		Root:      snap.Path,
		Include:   snap.Include,
		Tree:      ToRecord(snap.Root),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling snapshot")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	return nil
}

// Load reads a snapshot saved by Save. Returns ErrFormat if the document or
// any node record is malformed.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var doc snapshotFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrFormat, "%s: %v", path, err)
	}
	if doc.Root == "" {
		return nil, errors.Wrapf(ErrFormat, "%s: missing root path", path)
	}

	root, err := FromRecord(doc.Tree)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	include := doc.Include
	if include == nil {
		include = []string{}
	}

	return &Snapshot{
		ID:      doc.ID,
		Path:    doc.Root,
		Include: include,
		Created: doc.Created,
		Root:    root,
	}, nil
}
