package tree

import "path/filepath"

// VisitFunc receives a matching file node and the OS-native path of its
// containing directory.
type VisitFunc func(n *Node, dir string)

// ForEach walks root depth-first in pre-order and calls fn for every file
// node whose status is in filter. Folder nodes are descended into but never
// yielded. rootPath is the filesystem path root was captured from; each
// folder's path is accumulated from it, so a file's dir argument is the
// absolute path of its parent directory. An empty filter yields nothing.
func ForEach(root *Node, rootPath string, filter StatusSet, fn VisitFunc) {
	if root == nil || len(filter) == 0 {
		return
	}

	// A snapshot rooted at a single file: its containing directory is the
	// root path's parent.
	if root.Kind == File {
		if filter.Has(root.Status) {
			fn(root, filepath.Dir(rootPath))
		}
		return
	}

	visit(root, rootPath, filter, fn)
}

func visit(folder *Node, path string, filter StatusSet, fn VisitFunc) {
	for _, child := range folder.Children {
		if child.Kind == File {
			if filter.Has(child.Status) {
				fn(child, path)
			}
			continue
		}
		visit(child, filepath.Join(path, child.Name), filter, fn)
	}
}
