// Package server exposes the schedule and comparison computations over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/mortgage-forecast/internal/config"
	"github.com/iwvelando/mortgage-forecast/internal/forecast"
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
	"github.com/iwvelando/mortgage-forecast/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the schedule and
// comparison API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Amortization schedule and yearly tax summary for the configured mortgage
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Net worth projections for the configured houses
	mux.HandleFunc("/api/compare", h.handleCompare)

	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type scheduleResponse struct {
	forecast.ScheduleResult
	CSV       string   `json:"csv"`
	YearlyCSV string   `json:"yearlyCsv"`
	Warnings  []string `json:"warnings,omitempty"`
	Duration  string   `json:"duration"`
}

type comparisonResponse struct {
	forecast.ComparisonResult
	CSV      string   `json:"csv"`
	Warnings []string `json:"warnings,omitempty"`
	Duration string   `json:"duration"`
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSchedule"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	cfg, ok := h.loadRequestConfig(w, r, op)
	if !ok {
		return
	}
	warnings := cfg.ValidateConfiguration()

	result, err := forecast.GetSchedule(h.logger, *cfg)
	if err != nil {
		h.respondErrorWithOp(w, statusForError(err), fmt.Sprintf("failed to compute schedule: %v", err), op)
		return
	}

	csvData, err := output.CsvScheduleString(result)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render schedule: %v", err), op)
		return
	}
	yearlyCSV, err := output.CsvYearlySummaryString(result)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render yearly summary: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("schedule computed",
		zap.String("op", op),
		zap.Int("payments", len(result.Payments)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, scheduleResponse{
		ScheduleResult: result,
		CSV:            csvData,
		YearlyCSV:      yearlyCSV,
		Warnings:       warnings,
		Duration:       elapsed.String(),
	})
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCompare"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	cfg, ok := h.loadRequestConfig(w, r, op)
	if !ok {
		return
	}
	warnings := cfg.ValidateConfiguration()

	result, err := forecast.GetComparison(h.logger, *cfg)
	if err != nil {
		h.respondErrorWithOp(w, statusForError(err), fmt.Sprintf("failed to compute comparison: %v", err), op)
		return
	}

	csvData, err := output.CsvComparisonString(result)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render comparison: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("comparison computed",
		zap.String("op", op),
		zap.Int("houses", len(result.Projections)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, comparisonResponse{
		ComparisonResult: result,
		CSV:              csvData,
		Warnings:         warnings,
		Duration:         elapsed.String(),
	})
}

// loadRequestConfig reads the configuration from the request body. JSON
// bodies are converted to YAML; anything else is treated as YAML. A multipart
// upload is read from its "file" field.
func (h *handler) loadRequestConfig(w http.ResponseWriter, r *http.Request, op string) (*config.Configuration, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	data, err := h.readBody(r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return nil, false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return nil, false
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		data, err = jsonToYAML(data)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), op)
			return nil, false
		}
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(data))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return nil, false
	}
	return cfg, true
}

func (h *handler) readBody(r *http.Request) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return io.ReadAll(r.Body)
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		return nil, fmt.Errorf("failed to parse upload: %w", err)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New("missing configuration file")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.readBody"),
				zap.Error(closeErr),
			)
		}
	}()
	return io.ReadAll(file)
}

func jsonToYAML(data []byte) ([]byte, error) {
	var payload map[string]interface{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}
	return yaml.Marshal(payload)
}

// statusForError maps computation errors onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, loans.ErrInvalidInput), errors.Is(err, forecast.ErrNoHouses):
		return http.StatusBadRequest
	case errors.Is(err, loans.ErrNumericDegenerate):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
