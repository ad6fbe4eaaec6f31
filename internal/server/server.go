package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/materials"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/measure"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/validation"
	"github.com/ethan8585g/RoofReport-v2-sub001/pkg/vision"
)

// Server exposes the measurement engine over HTTP. Detection JSON goes in
// the request body; calibration comes from the configured context unless
// the request overrides it with a ground_area query parameter.
type Server struct {
	calibration measure.CalibrationContext
	port        int
}

// New creates a server with the given default calibration.
func New(cal measure.CalibrationContext, port int) *Server {
	return &Server{
		calibration: cal,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/measure", s.handleMeasure)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("POST /api/materials", s.handleMaterials)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("roofreport server starting on http://localhost%s", addr)
	log.Printf("Reference ground area: %.1f m2", s.calibration.ReferenceGroundAreaM2)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"service": "roofreport",
		"endpoints": []string{
			"POST /api/measure",
			"POST /api/validate",
			"POST /api/materials",
		},
	})
}

// calibrationFor returns the request calibration: the server default, or
// the ground_area query override when present and positive.
func (s *Server) calibrationFor(r *http.Request) measure.CalibrationContext {
	cal := s.calibration
	if v := r.URL.Query().Get("ground_area"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cal.ReferenceGroundAreaM2 = f
		}
	}
	return cal
}

func (s *Server) handleMeasure(w http.ResponseWriter, r *http.Request) {
	analysis, err := vision.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	opts := measure.Options{
		CountMissingAsNorth: r.URL.Query().Get("missing_as_north") == "true",
	}

	report, vr, err := measure.MeasureValidated(analysis, s.calibrationFor(r), opts)
	if err != nil {
		if errors.Is(err, measure.ErrInvalidAnalysis) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":      err.Error(),
				"validation": vr,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"report_id":    uuid.NewString(),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"validation":   vr,
		"measurement":  report,
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	analysis, err := vision.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, validation.ValidateAnalysis(analysis))
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	analysis, err := vision.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	shingle := materials.ShingleType(r.URL.Query().Get("shingle"))
	switch shingle {
	case materials.ShingleArchitectural, materials.Shingle3Tab:
	case "":
		shingle = materials.ShingleArchitectural
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown shingle type %q", shingle))
		return
	}

	report, vr, err := measure.MeasureValidated(analysis, s.calibrationFor(r), measure.Options{})
	if err != nil {
		if errors.Is(err, measure.ErrInvalidAnalysis) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":      err.Error(),
				"validation": vr,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"report_id":    uuid.NewString(),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"measurement":  report,
		"estimate":     materials.EstimateQuantities(report, shingle),
		"waste_table":  materials.WasteTable(report.TotalAreaSqFt),
		"yield":        materials.ComputeYield(report, shingle),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
