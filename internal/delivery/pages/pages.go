package pages

import (
	"io/fs"
	"net/http"
	"path/filepath"
)

const IndexFile = "index.html"

// PagesHandler serves the front end: the entry page and everything under
// the static directory.
type PagesHandler struct {
	staticDir string
}

func NewPagesHandler(staticDir string) *PagesHandler {
	return &PagesHandler{staticDir: staticDir}
}

// Index godoc
// @Summary Front-end entry page
// @Produce html
// @Success 200 {string} string "index.html"
// @Router / [get]
func (p *PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(p.staticDir, IndexFile))
}

// Static serves files below the static directory; prefix is stripped from
// the request path first. Directories are reported as missing, so there is
// no listing.
func (p *PagesHandler) Static(prefix string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(filesOnly{http.Dir(p.staticDir)}))
}

type filesOnly struct {
	root http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.root.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
