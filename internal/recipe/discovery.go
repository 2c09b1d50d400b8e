package recipe

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// recipeExtension identifies AutoPkg recipe override files.
const recipeExtension = ".recipe"

// Discover walks the overrides directory and returns the file names of all
// recipe overrides found, in walk order. Only the base file name is
// returned; AutoPkg resolves overrides by name, not path.
func Discover(dir string) ([]string, error) {
	var recipes []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), recipeExtension) {
			recipes = append(recipes, d.Name())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover recipes in %s: %w", dir, err)
	}
	return recipes, nil
}
