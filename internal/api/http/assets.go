package http

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mind-engage/gabarito/internal/storage"
)

// GET /download/{filename}
func DownloadHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "filename")
		if u, err := url.PathUnescape(name); err == nil {
			name = u
		}
		a, err := d.Assets.Open(name)
		if errors.Is(err, storage.ErrNotFound) {
			msg := fmt.Sprintf("Arquivo da prova não encontrado! Verifique se '%s' está na pasta '%s'.", name, d.StaticDir)
			http.Error(w, msg, http.StatusNotFound)
			return
		}
		if err != nil {
			d.Log.Error("open asset", zap.String("file", name), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		defer a.Close()

		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename}))
		http.ServeContent(w, r, a.Filename, a.ModTime, a)
	}
}
