package tree

import (
	"io/fs"
	"testing"
)

// fakeEntry implements just enough of fs.DirEntry for filter tests.
type fakeEntry struct {
	name string
	dir  bool
}

func (e fakeEntry) Name() string               { return e.name }
func (e fakeEntry) IsDir() bool                { return e.dir }
func (e fakeEntry) Type() fs.FileMode          { return 0 }
func (e fakeEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrInvalid }

func TestInclude_DotDirectoryExcluded(t *testing.T) {
	for _, include := range [][]string{nil, {"*.txt"}, {"*"}} {
		ok, err := Include(fakeEntry{name: ".git", dir: true}, include)
		if err != nil {
			t.Fatalf("Include failed: %v", err)
		}
		if ok {
			t.Errorf("Dot directory should be excluded regardless of whitelist %v", include)
		}
	}
}

func TestInclude_DirectoryAlwaysIncluded(t *testing.T) {
	// Whitelist applies to files only
	ok, err := Include(fakeEntry{name: "src", dir: true}, []string{"*.md"})
	if err != nil {
		t.Fatalf("Include failed: %v", err)
	}
	if !ok {
		t.Error("Non-dot directory should be included despite non-matching whitelist")
	}
}

func TestInclude_FileWhitelist(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		want    bool
	}{
		{"a.txt", []string{"*.txt"}, true},
		{"a.txt", []string{"*.md"}, false},
		{"a.txt", []string{}, true},
		{"a.txt", nil, true},
		{"a.txt", []string{"*.md", "a.???"}, true},
		{".hidden", []string{}, true}, // dot rule applies to directories only
	}

	for _, tt := range tests {
		ok, err := Include(fakeEntry{name: tt.name}, tt.include)
		if err != nil {
			t.Fatalf("Include(%q, %v) failed: %v", tt.name, tt.include, err)
		}
		if ok != tt.want {
			t.Errorf("Include(%q, %v) = %v, want %v", tt.name, tt.include, ok, tt.want)
		}
	}
}

func TestInclude_BadPattern(t *testing.T) {
	_, err := Include(fakeEntry{name: "a.txt"}, []string{"[unterminated"})
	if err == nil {
		t.Error("Malformed glob should be an error, not a silent skip")
	}
}
