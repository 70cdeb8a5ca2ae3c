package utils

import (
	"io/fs"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type TestData struct {
	Label  string
	Enable bool
	Input  string
	Want   string
	Err    string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}

// FindSourceFiles returns every .expr file under dir.
func FindSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if filepath.Ext(path) == ".expr" {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}
