package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodshop/moodshop/pkg/config"
	"github.com/moodshop/moodshop/pkg/domain"
	"github.com/moodshop/moodshop/server/mocks"
)

// defaultMocks returns mocks with sensible defaults, tests override what they need
func defaultMocks() (*mocks.ConfigProviderMock, *mocks.CatalogMock, *mocks.RecommenderMock,
	*mocks.PlaylistFinderMock, *mocks.FeedbackStoreMock, *mocks.DetectorMock) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
		GetRecommendConfigFunc: func() config.RecommendConfig {
			return config.RecommendConfig{TopN: 5, Jitter: 0.1}
		},
	}
	catalog := &mocks.CatalogMock{
		AllFunc: func() []domain.Item {
			return []domain.Item{
				{ID: 1, Name: "Headphones", Price: 99.99, MoodTags: []string{"music", "joy"}},
				{ID: 2, Name: "Oil Set", Price: 45.50, MoodTags: []string{"relaxation", "comfort"}},
			}
		},
	}
	ranker := &mocks.RecommenderMock{
		RankFunc: func(emotion string, items []domain.Item, topN int) []domain.Item {
			if topN > len(items) {
				topN = len(items)
			}
			return items[:topN]
		},
	}
	playlists := &mocks.PlaylistFinderMock{
		AvailableFunc: func() bool { return true },
		GetByMoodFunc: func(ctx context.Context, mood string, topN int) []domain.Playlist {
			return []domain.Playlist{{Name: "Happy Vibes", URL: "https://open.spotify.com/playlist/1", TotalTracks: 42, Owner: "Spotify"}}
		},
	}
	feedback := &mocks.FeedbackStoreMock{}
	detector := &mocks.DetectorMock{
		ThresholdFunc: func() float64 { return 0.6 },
	}
	return cfg, catalog, ranker, playlists, feedback, detector
}

func TestServer_statusHandler(t *testing.T) {
	cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
	srv := New(cfg, catalog, ranker, playlists, feedback, detector, "1.2.3", false)

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.statusHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &status)
	require.NoError(t, err)

	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.InDelta(t, 2, status["catalog_size"], 0.0001)
	assert.Equal(t, true, status["spotify_enabled"])
	assert.NotEmpty(t, status["time"])
}

// multipartImage builds a multipart body with an image field
func multipartImage(t *testing.T, field string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "face.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestServer_detectHandler(t *testing.T) {
	t.Run("confident detection returns recommendations and playlists", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		detector.DetectFunc = func(ctx context.Context, imageData []byte) domain.Detection {
			assert.Equal(t, []byte("fake-image-bytes"), imageData)
			return domain.Detection{Success: true, Emotion: "happy", Confidence: 0.9}
		}
		detector.MeetsFunc = func(det domain.Detection) bool { return true }
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		body, contentType := multipartImage(t, "image", []byte("fake-image-bytes"))
		req := httptest.NewRequest("POST", "/api/v1/detect", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		srv.detectHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp detectResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.MeetsThreshold)
		assert.Equal(t, "happy", resp.Detection.Emotion)
		assert.Len(t, resp.Recommendations, 2)
		assert.Len(t, resp.Playlists, 1)

		// ranker and playlist finder both got the detected emotion
		require.Len(t, ranker.RankCalls(), 1)
		assert.Equal(t, "happy", ranker.RankCalls()[0].Emotion)
		require.Len(t, playlists.GetByMoodCalls(), 1)
		assert.Equal(t, "happy", playlists.GetByMoodCalls()[0].Mood)
	})

	t.Run("low confidence returns detection only", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		detector.DetectFunc = func(ctx context.Context, imageData []byte) domain.Detection {
			return domain.Detection{Success: true, Emotion: "fear", Confidence: 0.4}
		}
		detector.MeetsFunc = func(det domain.Detection) bool { return false }
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		body, contentType := multipartImage(t, "image", []byte("img"))
		req := httptest.NewRequest("POST", "/api/v1/detect", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		srv.detectHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp detectResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.MeetsThreshold)
		assert.Equal(t, "fear", resp.Detection.Emotion)
		assert.Empty(t, resp.Recommendations)
		assert.Empty(t, resp.Playlists)

		// no downstream calls on a rejected detection
		assert.Empty(t, ranker.RankCalls())
		assert.Empty(t, playlists.GetByMoodCalls())
	})

	t.Run("failed detection returns detection only", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		detector.DetectFunc = func(ctx context.Context, imageData []byte) domain.Detection {
			return domain.Detection{Error: "no face detected"}
		}
		detector.MeetsFunc = func(det domain.Detection) bool { return false }
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		body, contentType := multipartImage(t, "image", []byte("img"))
		req := httptest.NewRequest("POST", "/api/v1/detect", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		srv.detectHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp detectResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Detection.Success)
		assert.Equal(t, "no face detected", resp.Detection.Error)
		assert.Empty(t, ranker.RankCalls())
	})

	t.Run("missing image field", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		body, contentType := multipartImage(t, "photo", []byte("img"))
		req := httptest.NewRequest("POST", "/api/v1/detect", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		srv.detectHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "image file is required")
	})
}

func TestServer_recommendationsHandler(t *testing.T) {
	t.Run("default topN from config", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/recommendations?emotion=Happy", http.NoBody)
		w := httptest.NewRecorder()
		srv.recommendationsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Emotion         string        `json:"emotion"`
			Recommendations []domain.Item `json:"recommendations"`
			Count           int           `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "happy", resp.Emotion)
		assert.Equal(t, 2, resp.Count)

		require.Len(t, ranker.RankCalls(), 1)
		assert.Equal(t, 5, ranker.RankCalls()[0].TopN)
	})

	t.Run("explicit n", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/recommendations?emotion=sad&n=1", http.NoBody)
		w := httptest.NewRecorder()
		srv.recommendationsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, ranker.RankCalls(), 1)
		assert.Equal(t, 1, ranker.RankCalls()[0].TopN)
	})

	t.Run("missing emotion", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/recommendations", http.NoBody)
		w := httptest.NewRecorder()
		srv.recommendationsHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "emotion parameter is required")
	})

	t.Run("invalid n", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		for _, n := range []string{"zero", "0", "-3"} {
			req := httptest.NewRequest("GET", "/api/v1/recommendations?emotion=happy&n="+n, http.NoBody)
			w := httptest.NewRecorder()
			srv.recommendationsHandler(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code, "n=%s", n)
		}
	})
}

func TestServer_playlistsHandler(t *testing.T) {
	t.Run("found playlists", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/playlists?mood=Energetic&n=3", http.NoBody)
		w := httptest.NewRecorder()
		srv.playlistsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Mood      string            `json:"mood"`
			Playlists []domain.Playlist `json:"playlists"`
			Count     int               `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "energetic", resp.Mood)
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "Happy Vibes", resp.Playlists[0].Name)

		require.Len(t, playlists.GetByMoodCalls(), 1)
		assert.Equal(t, "Energetic", playlists.GetByMoodCalls()[0].Mood)
		assert.Equal(t, 3, playlists.GetByMoodCalls()[0].TopN)
	})

	t.Run("missing mood", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/playlists", http.NoBody)
		w := httptest.NewRecorder()
		srv.playlistsHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "mood parameter is required")
	})
}

func TestServer_productHandlers(t *testing.T) {
	t.Run("list products", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/products", http.NoBody)
		w := httptest.NewRecorder()
		srv.listProductsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Headphones")
		assert.Contains(t, w.Body.String(), `"count":2`)
	})

	t.Run("get product by id", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		catalog.GetByIDFunc = func(id int64) (domain.Item, bool) {
			if id == 1 {
				return domain.Item{ID: 1, Name: "Headphones", Price: 99.99}, true
			}
			return domain.Item{}, false
		}
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/products/1", http.NoBody)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		srv.getProductHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var item domain.Item
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
		assert.Equal(t, "Headphones", item.Name)
	})

	t.Run("product not found", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		catalog.GetByIDFunc = func(id int64) (domain.Item, bool) { return domain.Item{}, false }
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/products/99", http.NoBody)
		req.SetPathValue("id", "99")
		w := httptest.NewRecorder()
		srv.getProductHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid product id", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/products/abc", http.NoBody)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()
		srv.getProductHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("search products", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		catalog.SearchFunc = func(query string) []domain.Item {
			assert.Equal(t, "music", query)
			return []domain.Item{{ID: 1, Name: "Headphones"}}
		}
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/products/search?q=music", http.NoBody)
		w := httptest.NewRecorder()
		srv.searchProductsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Headphones")
	})

	t.Run("search requires query", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/products/search", http.NoBody)
		w := httptest.NewRecorder()
		srv.searchProductsHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("add product", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		catalog.AddFunc = func(item domain.Item) error {
			assert.Equal(t, "Yoga Mat", item.Name)
			return nil
		}
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		body := `{"product_id": 11, "name": "Yoga Mat", "price": 29.99, "mood_tags": ["calm", "relaxation"]}`
		req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.addProductHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, catalog.AddCalls(), 1)
	})

	t.Run("add product validation error", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		catalog.AddFunc = func(item domain.Item) error {
			return fmt.Errorf("%w: product name is required", domain.ErrValidation)
		}
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(`{"price": 5}`))
		w := httptest.NewRecorder()
		srv.addProductHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "product name is required")
	})

	t.Run("add product persistence error", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		catalog.AddFunc = func(item domain.Item) error { return errors.New("disk full") }
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(`{"name": "x", "price": 5, "mood_tags": ["a"]}`))
		w := httptest.NewRecorder()
		srv.addProductHandler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("add product bad body", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader("not json"))
		w := httptest.NewRecorder()
		srv.addProductHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_feedbackHandlers(t *testing.T) {
	t.Run("record feedback", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		feedback.AppendFunc = func(rec domain.Record) error {
			assert.Equal(t, "happy", rec.DetectedEmotion)
			assert.Equal(t, 5, rec.Rating)
			return nil
		}
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		body := `{"detected_emotion": "happy", "confidence": 0.9, "rating": 5, "feedback_text": "spot on", "num_recommendations": 5}`
		req := httptest.NewRequest("POST", "/api/v1/feedback", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.addFeedbackHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "recorded")
		require.Len(t, feedback.AppendCalls(), 1)
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		feedback.AppendFunc = func(rec domain.Record) error {
			return fmt.Errorf("%w: rating must be between 1 and 5, got 9", domain.ErrValidation)
		}
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		body := `{"detected_emotion": "happy", "confidence": 0.9, "rating": 9}`
		req := httptest.NewRequest("POST", "/api/v1/feedback", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.addFeedbackHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "rating must be between 1 and 5")
	})

	t.Run("persistence error maps to 500", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		feedback.AppendFunc = func(rec domain.Record) error { return errors.New("disk full") }
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		body := `{"detected_emotion": "happy", "confidence": 0.9, "rating": 3}`
		req := httptest.NewRequest("POST", "/api/v1/feedback", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.addFeedbackHandler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("summary", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		feedback.SummarizeFunc = func() (*domain.Summary, error) {
			return &domain.Summary{
				TotalFeedback:       3,
				AverageRating:       4.0,
				EmotionDistribution: map[string]int{"happy": 2, "sad": 1},
			}, nil
		}
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/feedback/summary", http.NoBody)
		w := httptest.NewRecorder()
		srv.feedbackSummaryHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Summary *domain.Summary `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Summary)
		assert.Equal(t, 3, resp.Summary.TotalFeedback)
		assert.InDelta(t, 4.0, resp.Summary.AverageRating, 0.0001)
	})

	t.Run("empty summary is null", func(t *testing.T) {
		cfg, catalog, ranker, playlists, feedback, detector := defaultMocks()
		feedback.SummarizeFunc = func() (*domain.Summary, error) { return nil, nil }
		srv := New(cfg, catalog, ranker, playlists, feedback, detector, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/feedback/summary", http.NoBody)
		w := httptest.NewRecorder()
		srv.feedbackSummaryHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Summary *domain.Summary `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Nil(t, resp.Summary)
	})
}
