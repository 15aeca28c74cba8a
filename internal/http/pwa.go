package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shellDocument = "index.html"

// apiPrefixes are the first path segments owned by the JSON API. Unmatched
// paths under them get a 404 instead of the shell document.
var apiPrefixes = []string{"workouts", "generate-tip", "exercises", "analysis"}

// PWAController serves the frontend bundle with client-side routing fallback.
type PWAController struct {
	dir string
}

func NewPWAController(dir string) *PWAController {
	return &PWAController{dir: dir}
}

// Serve handles every request no API route matched.
// Existing files are served as-is; any other GET falls back to the shell.
func (pc *PWAController) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		respondNotFound(c, "Not Found")
		return
	}

	// Clean against a rooted path so ".." can never leave the frontend dir
	rel := strings.TrimPrefix(path.Clean("/"+c.Request.URL.Path), "/")
	if isAPIPath(rel) {
		respondNotFound(c, "Not Found")
		return
	}

	if rel != "" && pc.serveFile(c, filepath.Join(pc.dir, filepath.FromSlash(rel))) {
		return
	}

	if !pc.serveFile(c, filepath.Join(pc.dir, shellDocument)) {
		requestLogger(c).Error("shell document missing", zap.String("dir", pc.dir))
		respondNotFound(c, "Not Found")
	}
}

// serveFile writes a regular file with its natural content type.
// http.ServeContent is used over c.File to avoid ServeFile's index.html redirect.
func (pc *PWAController) serveFile(c *gin.Context, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return true
}

func isAPIPath(rel string) bool {
	for _, prefix := range apiPrefixes {
		if strings.HasPrefix(rel, prefix) {
			return true
		}
	}
	return false
}
