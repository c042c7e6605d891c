package api

import "net/http"

const (
	ServiceName = "Car Price Statistics API"
	Version     = "1.0.0"
)

type welcomeResponse struct {
	Message string            `json:"message"`
	Version string            `json:"version"`
	Routes  map[string]string `json:"routes"`
}

func welcome() welcomeResponse {
	return welcomeResponse{
		Message: "Welcome to the " + ServiceName,
		Version: Version,
		Routes: map[string]string{
			"/":         "This route (welcome information)",
			"/analysis": "Runs the full statistical analysis; optional ?z= threshold (default 3)",
			"/health":   "Service and dataset status",
		},
	}
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, welcome())
}
