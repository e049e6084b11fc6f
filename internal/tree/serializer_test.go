package tree

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleTree() *Node {
	return &Node{
		Kind: Folder, Name: "root", Rev: "revroot", Status: Modified,
		Children: []*Node{
			{Kind: File, Name: "a.txt", Rev: "reva", Status: Added},
			{Kind: Folder, Name: "sub", Rev: "revsub", Status: Unmodified,
				Children: []*Node{
					{Kind: File, Name: "b.txt", Rev: "revb", Status: Removed},
				}},
		},
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	original := sampleTree()

	got, err := FromRecord(ToRecord(original))
	if err != nil {
		t.Fatalf("FromRecord failed: %v", err)
	}

	if diff := cmp.Diff(original, got); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRecord_TrustsStatuses(t *testing.T) {
	// Reconstruction does not recompute anything
	r := Record{Type: "file", Name: "x", Rev: "made-up", Status: "removed"}
	n, err := FromRecord(r)
	if err != nil {
		t.Fatalf("FromRecord failed: %v", err)
	}
	if n.Rev != "made-up" || n.Status != Removed {
		t.Error("FromRecord should round-trip rev and status as supplied")
	}
}

func TestFromRecord_Invalid(t *testing.T) {
	tests := []struct {
		desc string
		r    Record
	}{
		{"missing name", Record{Type: "file", Rev: "r", Status: "unmodified"}},
		{"missing rev", Record{Type: "file", Name: "a", Status: "unmodified"}},
		{"missing type", Record{Name: "a", Rev: "r", Status: "unmodified"}},
		{"unknown type", Record{Type: "symlink", Name: "a", Rev: "r", Status: "unmodified"}},
		{"missing status", Record{Type: "file", Name: "a", Rev: "r"}},
		{"unknown status", Record{Type: "file", Name: "a", Rev: "r", Status: "renamed"}},
		{"file with children", Record{Type: "file", Name: "a", Rev: "r", Status: "unmodified",
			Children: []Record{{Type: "file", Name: "b", Rev: "r2", Status: "unmodified"}}}},
		{"invalid child", Record{Type: "folder", Name: "d", Rev: "r", Status: "unmodified",
			Children: []Record{{Type: "file", Name: "", Rev: "r2", Status: "unmodified"}}}},
	}

	for _, tt := range tests {
		_, err := FromRecord(tt.r)
		if !errors.Is(err, ErrFormat) {
			t.Errorf("%s: expected ErrFormat, got %v", tt.desc, err)
		}
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a.txt": "a", "sub/b.txt": "b",
	})

	snap, err := Build(tmpDir, []string{"*.txt"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "snap.json")
	if err := Save(snap, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ID != snap.ID {
		t.Errorf("ID = %q, want %q", loaded.ID, snap.ID)
	}
	if loaded.Path != snap.Path {
		t.Errorf("Path = %q, want %q", loaded.Path, snap.Path)
	}
	if diff := cmp.Diff(snap.Include, loaded.Include); diff != "" {
		t.Errorf("Include mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(snap.Root, loaded.Root); diff != "" {
		t.Errorf("Tree mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("Expected ErrFormat, got %v", err)
	}
}

func TestLoad_MissingRootPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noroot.json")
	doc := `{"generator":"snapdiff","tree":{"type":"file","name":"a","rev":"r","status":"unmodified","children":[]}}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("Expected ErrFormat, got %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	_, err := Load("/nonexistent/snap.json")
	if err == nil {
		t.Error("Load should fail for a missing file")
	}
}
