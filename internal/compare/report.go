package compare

import (
	"fmt"
	"path/filepath"
	"strings"

	"snapdiff/internal/tree"
)

// HasChanges reports whether any node in a diff result carries a status
// other than Unmodified.
func HasChanges(result *tree.Node) bool {
	if result == nil {
		return false
	}
	if result.Status != tree.Unmodified {
		return true
	}
	for _, child := range result.Children {
		if HasChanges(child) {
			return true
		}
	}
	return false
}

// FormatReport renders a diff result as a human-readable change listing.
// rootPath is the filesystem path the snapshots were captured from.
func FormatReport(result *tree.Node, rootPath string) string {
	if !HasChanges(result) {
		return "No changes detected."
	}

	added := collect(result, rootPath, tree.Added)
	modified := collect(result, rootPath, tree.Modified)
	removed := collect(result, rootPath, tree.Removed)

	var b strings.Builder
	b.WriteString("Changes detected:\n\n")

	if len(added) > 0 {
		fmt.Fprintf(&b, "ADDED (%d files):\n", len(added))
		for _, path := range added {
			fmt.Fprintf(&b, "  + %s\n", path)
		}
		b.WriteString("\n")
	}

	if len(modified) > 0 {
		fmt.Fprintf(&b, "MODIFIED (%d files):\n", len(modified))
		for _, path := range modified {
			fmt.Fprintf(&b, "  ~ %s\n", path)
		}
		b.WriteString("\n")
	}

	if len(removed) > 0 {
		fmt.Fprintf(&b, "REMOVED (%d files):\n", len(removed))
		for _, path := range removed {
			fmt.Fprintf(&b, "  - %s\n", path)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Summary: %d added, %d modified, %d removed\n",
		len(added), len(modified), len(removed))

	return b.String()
}

func collect(result *tree.Node, rootPath string, status tree.Status) []string {
	var paths []string
	tree.ForEach(result, rootPath, tree.Statuses(status), func(n *tree.Node, dir string) {
		paths = append(paths, filepath.Join(dir, n.Name))
	})
	return paths
}
