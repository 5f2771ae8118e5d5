package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sentiolabs/moodsense/internal/mood"
)

// AnalyzeResponse wraps every /api/analyze reply. Result is set on success,
// Error on failure; Success disambiguates for clients that ignore the
// status code.
type AnalyzeResponse struct {
	Success bool         `json:"success"`
	Result  *mood.Result `json:"result,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// analyze handles POST /api/analyze
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var signals mood.Signals
	if err := json.NewDecoder(r.Body).Decode(&signals); err != nil {
		writeJSON(w, http.StatusInternalServerError, AnalyzeResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	result := mood.Analyze(signals)

	slog.Info("signals scored",
		"analysis_id", uuid.NewString(),
		"mood", result.Mood,
		"stress_level", result.StressLevel,
		"confidence", result.Confidence)

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Success: true,
		Result:  &result,
	})
}
