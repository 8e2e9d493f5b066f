package pep

import (
	"os"

	"github.com/pkg/errors"
)

// Save serializes img and writes it to path, overwriting any existing
// file. It is the only place besides Load that touches the filesystem;
// the core codec never does.
func Save(img Image, path string) error {
	data := img.Serialize()
	if data == nil {
		return errors.New("pep: cannot serialize an empty image")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "pep: writing %s", path)
	}
	return nil
}

// Load reads path and deserializes it into an Image. Deserialize itself
// never errors on malformed content; Load only reports failures reading
// the file.
func Load(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, errors.Wrapf(err, "pep: reading %s", path)
	}
	return Deserialize(data), nil
}
