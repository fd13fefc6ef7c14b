package http

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/mind-engage/gabarito/internal/results"
)

// GET /admin/notas
// No authentication: anyone who can reach the server can read every result.
func AdminListHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := d.Store.ListAll(r.Context())
		if err != nil {
			d.Log.Error("list results", zap.Error(err))
			http.Error(w, "Erro ao carregar notas: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if err := d.Pages.render(w, http.StatusOK, pageAdmin, recs); err != nil {
			d.Log.Error("render admin", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// GET /admin/notas.xlsx
func AdminExportHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := d.Store.ListAll(r.Context())
		if err != nil {
			d.Log.Error("list results", zap.Error(err))
			http.Error(w, "Erro ao carregar notas: "+err.Error(), http.StatusInternalServerError)
			return
		}
		var buf bytes.Buffer
		if err := results.WriteXLSX(&buf, recs); err != nil {
			d.Log.Error("export results", zap.Error(err))
			http.Error(w, "Erro ao exportar notas: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="notas.xlsx"`)
		_, _ = buf.WriteTo(w)
	}
}
