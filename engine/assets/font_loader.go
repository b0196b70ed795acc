package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"
)

// LoadFont reads a TTF/OTF file from the assets directory.
func LoadFont(name string) ([]byte, error) {
	path := filepath.Join("assets", "fonts", name)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	return b, nil
}

// DefaultFont returns the embedded Go Regular face, so an overlay renders
// text without shipping any files.
func DefaultFont() []byte {
	return goregular.TTF
}
