package hash

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

const bufferSize = 32 * 1024 // 32KB buffer for streaming

// File computes the hex-encoded xxHash of a file's contents, streaming so
// large files are never held in memory whole. The file handle is held only
// for the duration of the call.
func File(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()

	h := xxhash.New()
	buf := make([]byte, bufferSize)

	for {
		n, err := file.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrapf(err, "reading %s", path)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Bytes computes the hex-encoded xxHash of a byte slice.
func Bytes(data []byte) string {
	h := xxhash.New()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Tree computes a directory digest from its children's digests, hashed as a
// single concatenation in child order. The digest is a pure function of the
// ordered child list; callers keep children sorted by name, which makes the
// digest independent of OS enumeration order.
func Tree(childRevs []string) string {
	h := xxhash.New()
	for _, rev := range childRevs {
		h.WriteString(rev)
	}
	return hex.EncodeToString(h.Sum(nil))
}
