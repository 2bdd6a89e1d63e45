package jschema

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// RunInputs names the files whose content decides whether a generation
// run can be skipped. Watch mode keeps the digest of the last run and
// regenerates only when it changes.
type RunInputs struct {
	// Schema is the path of the JSON Schema document.
	Schema string

	// Hints is the path of the hints file, empty when the run has none.
	Hints string
}

// Digest hashes the content of the run inputs. Two runs with equal
// digests read identical inputs and write identical artifacts, so the
// second one is redundant. File events that leave content unchanged,
// such as an editor chmod or the second write of an atomic save, keep
// the digest stable.
func (in RunInputs) Digest() (string, error) {
	h := sha256.New()
	for _, path := range []string{in.Schema, in.Hints} {
		if path == "" {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", err
		}
		// File boundary marker, so that moving bytes from one input to
		// the other changes the sum.
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
