package gamedata

import (
	"encoding/json"
	"io/fs"

	"github.com/samdwyer/dungeonascend/internal/errors"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	return LoadFS[T](dataFS, filename)
}

// LoadFS reads and unmarshals a JSON file from fsys.
func LoadFS[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, errors.WrapWithCode(err, errors.CodeNotFound, "failed to read "+filename).
			WithMeta("file", filename)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to parse JSON from "+filename).
			WithMeta("file", filename)
	}

	return result, nil
}

// MustLoad reads and unmarshals an embedded JSON file, panicking on error.
// Use this only for data compiled into the binary.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
