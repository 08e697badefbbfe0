// internal/assets/data.go
package assets

import (
	"embed"
	"io/fs"
	"log"
	"os"
)

//go:embed data/*.json
var embedded embed.FS

// DataFS returns the definition files. An empty dir selects the embedded set;
// otherwise files are read from dir so designers can iterate without a rebuild.
func DataFS(dir string) fs.FS {
	if dir != "" {
		log.Printf("Assets: loading definitions from %s", dir)
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// fs.Sub fails only on an invalid path literal.
		panic(err)
	}
	return sub
}
