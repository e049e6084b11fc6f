// Package compare implements the snapshot diff: merging an old and a new
// tree into a fresh result tree annotated with per-node statuses.
package compare

import (
	"snapdiff/internal/tree"
)

// Compare diffs two trees. A nil argument means the node is absent on that
// side: nil old marks the new subtree Added, nil new marks the old subtree
// Removed, both nil yields nil. The result is built from scratch — neither
// input is mutated, and no node is shared between inputs and output — so
// the same snapshot can back any number of concurrent comparisons.
//
// When a whole subtree appears or vanishes, every node in it is forced to
// Added or Removed, not just the subtree root, so status-filtered traversal
// sees the files inside.
func Compare(old, new *tree.Node) *tree.Node {
	switch {
	case old == nil && new == nil:
		return nil
	case old == nil:
		return withStatus(new, tree.Added)
	case new == nil:
		return withStatus(old, tree.Removed)
	}

	// A file turned into a folder or vice versa. There is no structural
	// correspondence to recurse into: the result takes new's shape with the
	// root Modified and the (unpaired) descendants Added.
	if old.Kind != new.Kind {
		result := withStatus(new, tree.Added)
		result.Status = tree.Modified
		return result
	}

	status := tree.Unmodified
	if old.Rev != new.Rev {
		status = tree.Modified
	}

	if old.Kind == tree.File {
		return &tree.Node{Kind: tree.File, Name: new.Name, Rev: new.Rev, Status: status}
	}

	children := mergeChildren(old.Children, new.Children)
	// A folder whose own digest is stable can still be dragged to Modified
	// by a modified child. Added/Removed children need no such escalation:
	// they change the child digest set and with it the folder's own rev.
	for _, child := range children {
		if child.Status == tree.Modified {
			status = tree.Modified
			break
		}
	}

	return &tree.Node{Kind: tree.Folder, Name: new.Name, Rev: new.Rev, Status: status, Children: children}
}

// mergeChildren pairs old and new children by exact name and recurses. The
// result keeps first-seen order: old names in old order, then names present
// only on the new side in new order.
func mergeChildren(old, new []*tree.Node) []*tree.Node {
	oldByName := byName(old)
	newByName := byName(new)

	names := make([]string, 0, len(old)+len(new))
	for _, n := range old {
		names = append(names, n.Name)
	}
	for _, n := range new {
		if _, seen := oldByName[n.Name]; !seen {
			names = append(names, n.Name)
		}
	}

	var merged []*tree.Node
	for _, name := range names {
		if child := Compare(oldByName[name], newByName[name]); child != nil {
			merged = append(merged, child)
		}
	}
	return merged
}

func byName(nodes []*tree.Node) map[string]*tree.Node {
	m := make(map[string]*tree.Node, len(nodes))
	for _, n := range nodes {
		m[n.Name] = n
	}
	return m
}

// withStatus deep-copies n with every node's status forced to s.
func withStatus(n *tree.Node, s tree.Status) *tree.Node {
	var children []*tree.Node
	if len(n.Children) > 0 {
		children = make([]*tree.Node, len(n.Children))
		for i, child := range n.Children {
			children[i] = withStatus(child, s)
		}
	}
	return &tree.Node{Kind: n.Kind, Name: n.Name, Rev: n.Rev, Status: s, Children: children}
}
