package api

import (
	"net/http"
	"time"

	"github.com/kjannette/carprice-stats/internal/dataset"
)

type healthResponse struct {
	Status    string        `json:"status"`
	Timestamp string        `json:"timestamp"`
	Dataset   datasetHealth `json:"dataset"`
}

type datasetHealth struct {
	Status   string `json:"status"`
	Source   string `json:"source"`
	Records  int    `json:"records"`
	LoadedAt string `json:"loadedAt,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	switch st := s.state.(type) {
	case dataset.Loaded:
		resp.Dataset = datasetHealth{
			Status:   "loaded",
			Source:   st.Source,
			Records:  st.Table.Len(),
			LoadedAt: st.LoadedAt.Format(time.RFC3339),
		}
	case dataset.Unavailable:
		resp.Status = "degraded"
		resp.Dataset = datasetHealth{Status: "unavailable", Source: st.Source, Reason: st.Reason}
	}

	writeJSON(w, http.StatusOK, resp)
}
