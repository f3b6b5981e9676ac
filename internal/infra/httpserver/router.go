package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/bryanwahyu/image-analyzer/internal/application/analysis"
	domain "github.com/bryanwahyu/image-analyzer/internal/domain/analysis"
	"github.com/bryanwahyu/image-analyzer/internal/middleware"
)

const welcomeMessage = "Welcome to Gemini Image Analyzer API! Use POST /analysis to upload an image."

// uploadField is the multipart form field carrying the image.
const uploadField = "file"

var errMissingFile = errors.New("no file uploaded")

type Router struct {
	analysisSvc *appanalysis.Service
}

func NewRouter(analysisSvc *appanalysis.Service) http.Handler {
	r := &Router{analysisSvc: analysisSvc}
	mux := chi.NewRouter()

	// allow all for dev; tighten in production
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	mux.Use(middleware.RequestID)
	mux.Use(middleware.LoggingMiddleware)

	mux.Get("/health", middleware.HealthHandler)
	mux.Get("/", r.wrap(r.handleHome))
	mux.Post("/analysis", r.wrap(r.handleAnalysis))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps pipeline errors to HTTP statuses; handlers stay error-returning.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		switch {
		case errors.Is(err, errMissingFile),
			errors.Is(err, domain.ErrNotImage),
			errors.Is(err, domain.ErrEmptyUpload):
			writeDetail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrQuotaExceeded):
			writeDetail(w, http.StatusTooManyRequests, err.Error())
		default:
			writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Server error: %v", err))
		}
	}
}

// GET /
func (r *Router) handleHome(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]string{"message": welcomeMessage})
}

// POST /analysis
// Multipart form with one image file; the response is one of three shapes
// depending on what the model answered.
func (r *Router) handleAnalysis(w http.ResponseWriter, req *http.Request) error {
	file, header, err := req.FormFile(uploadField)
	if err != nil {
		return errMissingFile
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}

	upload := domain.Upload{
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}

	result, err := r.analysisSvc.Analyze(req.Context(), upload)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	switch result.Status {
	case domain.StatusSuccess:
		return json.NewEncoder(w).Encode(map[string]any{
			"status": result.Status,
			"data":   result.Data,
		})
	case domain.StatusPartial:
		return json.NewEncoder(w).Encode(map[string]any{
			"status": result.Status,
			"raw":    result.Raw,
		})
	default:
		// model answered, but not with JSON: bad gateway, raw text kept for debugging
		w.WriteHeader(http.StatusBadGateway)
		return json.NewEncoder(w).Encode(map[string]any{
			"status": result.Status,
			"detail": result.Detail,
			"ai_raw": result.AIRaw,
		})
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
