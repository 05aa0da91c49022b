package filesystem

import (
	"os"
	"path/filepath"
)

func Abs(p string) string {
	p, err := filepath.Abs(p)
	if err != nil {
		panic(err)
	}

	return p
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
