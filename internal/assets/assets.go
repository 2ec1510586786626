// Package assets embeds the site's stylesheet, script and icons and exposes
// them, or an on-disk override, as an fs.FS.
package assets

import (
	"embed"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/fusionprintdesign/fusionsite/internal/animation"
)

//go:embed static
var embedded embed.FS

// MotionStylesheet is the generated file name of the animation presets.
const MotionStylesheet = "motion.css"

// Embedded returns the compiled-in static files.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err) // the directory is part of the binary
	}

	return sub
}

// FS returns dir when set, otherwise the embedded files.
func FS(dir string) fs.FS {
	if strings.TrimSpace(dir) == "" {
		return Embedded()
	}

	return os.DirFS(dir)
}

// Motion returns the generated animation stylesheet.
func Motion() []byte {
	return []byte(animation.Stylesheet())
}

// ModTime is used for the generated stylesheet, which has no file on disk.
var ModTime = time.Now()
