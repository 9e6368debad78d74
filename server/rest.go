package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/moodshop/moodshop/pkg/domain"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":           "ok",
		"version":          s.version,
		"time":             time.Now().UTC(),
		"catalog_size":     len(s.catalog.All()),
		"spotify_enabled":  s.playlists.Available(),
		"detect_threshold": s.detector.Threshold(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// detectResponse is the full detect pipeline result. Recommendations and
// playlists are present only when the detection clears the threshold.
type detectResponse struct {
	Detection       domain.Detection  `json:"detection"`
	MeetsThreshold  bool              `json:"meets_threshold"`
	Recommendations []domain.Item     `json:"recommendations,omitempty"`
	Playlists       []domain.Playlist `json:"playlists,omitempty"`
}

// detectHandler runs the full pipeline: classify the uploaded face image,
// then rank products and search playlists for the detected emotion. A failed
// or low-confidence detection returns the detection alone.
func (s *Server) detectHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, _, err := r.FormFile("image")
	if err != nil {
		renderError(w, r, fmt.Errorf("image file is required"), http.StatusBadRequest)
		return
	}
	defer file.Close() //nolint:errcheck // read-only file

	imageData, err := io.ReadAll(file)
	if err != nil {
		renderError(w, r, fmt.Errorf("can't read image"), http.StatusBadRequest)
		return
	}

	det := s.detector.Detect(ctx, imageData)
	resp := detectResponse{Detection: det, MeetsThreshold: s.detector.Meets(det)}
	if !resp.MeetsThreshold {
		renderJSON(w, r, http.StatusOK, resp)
		return
	}

	topN := s.config.GetRecommendConfig().TopN
	resp.Recommendations = s.ranker.Rank(det.Emotion, s.catalog.All(), topN)
	resp.Playlists = s.playlists.GetByMood(ctx, det.Emotion, topN)
	renderJSON(w, r, http.StatusOK, resp)
}

// recommendationsHandler ranks catalog items for a given emotion
func (s *Server) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	emotion := strings.TrimSpace(r.URL.Query().Get("emotion"))
	if emotion == "" {
		renderError(w, r, fmt.Errorf("emotion parameter is required"), http.StatusBadRequest)
		return
	}

	topN, err := queryTopN(r, s.config.GetRecommendConfig().TopN)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	items := s.ranker.Rank(emotion, s.catalog.All(), topN)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"emotion":         domain.NormalizeEmotion(emotion),
		"recommendations": items,
		"count":           len(items),
	})
}

// playlistsHandler searches mood-matched playlists
func (s *Server) playlistsHandler(w http.ResponseWriter, r *http.Request) {
	mood := strings.TrimSpace(r.URL.Query().Get("mood"))
	if mood == "" {
		renderError(w, r, fmt.Errorf("mood parameter is required"), http.StatusBadRequest)
		return
	}

	topN, err := queryTopN(r, s.config.GetRecommendConfig().TopN)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	playlists := s.playlists.GetByMood(r.Context(), mood, topN)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"mood":      strings.ToLower(mood),
		"playlists": playlists,
		"count":     len(playlists),
	})
}

// listProductsHandler returns the full catalog
func (s *Server) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	items := s.catalog.All()
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"products": items,
		"count":    len(items),
	})
}

// getProductHandler returns a single product by ID
func (s *Server) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid product ID"), http.StatusBadRequest)
		return
	}

	item, ok := s.catalog.GetByID(id)
	if !ok {
		renderError(w, r, fmt.Errorf("product %d not found", id), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, item)
}

// searchProductsHandler searches products by name or mood tag
func (s *Server) searchProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		renderError(w, r, fmt.Errorf("q parameter is required"), http.StatusBadRequest)
		return
	}

	items := s.catalog.Search(query)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"products": items,
		"count":    len(items),
	})
}

// addProductHandler adds a new product to the catalog
func (s *Server) addProductHandler(w http.ResponseWriter, r *http.Request) {
	var item domain.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.catalog.Add(item); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		log.Printf("[ERROR] failed to add product: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, item)
}

// addFeedbackHandler records a user feedback event
func (s *Server) addFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var rec domain.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.feedback.Append(rec); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		log.Printf("[ERROR] failed to record feedback: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, map[string]string{"status": "recorded"})
}

// feedbackSummaryHandler returns aggregated feedback stats, summary is null
// when no feedback has been recorded yet
func (s *Server) feedbackSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := s.feedback.Summarize()
	if err != nil {
		log.Printf("[ERROR] failed to summarize feedback: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"summary": summary})
}

// queryTopN parses the optional n query parameter
func queryTopN(r *http.Request, def int) (int, error) {
	nStr := r.URL.Query().Get("n")
	if nStr == "" {
		return def, nil
	}
	n, err := strconv.Atoi(nStr)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("n must be a positive integer")
	}
	return n, nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
