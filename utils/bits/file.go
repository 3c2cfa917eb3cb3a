package bits

import (
	"fmt"
	"os"
)

// Load reads the whole file at path into a new Buffer whose length equals the file size.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return FromBytes(data), nil
}

// Save writes the logical bytes of b to path, truncating any existing file.
func (b *Buffer) Save(path string) error {
	if err := os.WriteFile(path, b.data, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
