package api

import (
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/kjannette/carprice-stats/internal/analysis"
)

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	z, err := parseZ(r, analysis.DefaultZ)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := analysis.Run(s.state, z)
	if errors.Is(err, analysis.ErrUnavailable) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		log.WithFields(log.Fields{"component": "api", "request_id": requestID(r)}).WithError(err).Error("analysis failed")
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
