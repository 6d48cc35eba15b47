package render_test

import "testing/fstest"

// templateFS turns a map of paths to template source into an fs.FS.
func templateFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for path, src := range files {
		fsys[path] = &fstest.MapFile{Data: []byte(src)}
	}
	return fsys
}
