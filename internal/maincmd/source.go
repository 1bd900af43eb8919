package maincmd

import "os"

// sourceFile pairs a file's raw bytes with the name used for position
// reporting.
type sourceFile struct {
	name string
	src  []byte
}

func readSources(paths []string) ([]sourceFile, error) {
	files := make([]sourceFile, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, sourceFile{name: p, src: b})
	}
	return files, nil
}
