// Package spotify adapts the Spotify Web API into mood-matched playlist
// lookups. Callers never see provider schema, pagination or availability:
// every failure degrades to an empty result.
package spotify

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/moodshop/moodshop/pkg/config"
	"github.com/moodshop/moodshop/pkg/domain"
)

// searcher is the slice of the Spotify client the adapter needs
type searcher interface {
	Search(ctx context.Context, query string, t spotify.SearchType, opts ...spotify.RequestOption) (*spotify.SearchResult, error)
}

// Adapter wraps an authenticated Spotify client. Initialization is one-shot:
// a failed init leaves the adapter Unavailable for the process lifetime and
// every query short-circuits to an empty result.
type Adapter struct {
	client    searcher
	vocab     config.Vocabulary
	cfg       config.SpotifyConfig
	available bool
}

// New builds the adapter, authenticating with the client-credentials flow and
// performing one smoke-test search. Missing credentials, auth failures and
// network failures all produce an Unavailable adapter, never an error.
func New(ctx context.Context, cfg config.SpotifyConfig, vocab config.Vocabulary) *Adapter {
	a := &Adapter{vocab: vocab, cfg: cfg}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		log.Printf("[WARN] spotify credentials not set, playlist recommendations disabled")
		return a
	}

	auth := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	httpClient := auth.Client(ctx)
	httpClient.Timeout = cfg.Timeout

	client := spotify.New(httpClient)

	// smoke test, catches bad credentials and unreachable provider early
	if _, err := client.Search(ctx, "test", spotify.SearchTypePlaylist, spotify.Limit(1)); err != nil {
		log.Printf("[WARN] spotify smoke test failed, playlist recommendations disabled: %v", err)
		return a
	}

	a.client = client
	a.available = true
	log.Printf("[INFO] spotify client initialized")
	return a
}

// newWithClient wires a pre-built search client, used in tests
func newWithClient(client searcher, cfg config.SpotifyConfig, vocab config.Vocabulary) *Adapter {
	return &Adapter{client: client, vocab: vocab, cfg: cfg, available: client != nil}
}

// Available reports whether the provider can be queried
func (a *Adapter) Available() bool {
	return a.available
}

// GetByMood returns up to topN mood-matched playlists. It issues one bounded
// search per vocabulary term (capped by config), over-fetching 2x to absorb
// dedup and filtering losses. The call never fails: per-term errors are
// logged and treated as zero results for that term.
func (a *Adapter) GetByMood(ctx context.Context, mood string, topN int) []domain.Playlist {
	if !a.available || topN <= 0 {
		return []domain.Playlist{}
	}

	terms := a.vocab.SearchTerms(mood)
	if len(terms) > a.cfg.MaxTerms {
		terms = terms[:a.cfg.MaxTerms]
	}

	var raw []domain.Playlist
	for _, term := range terms {
		raw = append(raw, a.searchTerm(ctx, term)...)
		if len(raw) >= 2*topN {
			break
		}
	}

	res := filterQuality(dedupByName(raw))
	if len(res) > topN {
		res = res[:topN]
	}
	log.Printf("[DEBUG] found %d playlists for mood %q", len(res), mood)
	return res
}

// searchTerm runs a single bounded provider search, retrying transient
// failures before giving the term up
func (a *Adapter) searchTerm(ctx context.Context, term string) []domain.Playlist {
	query := term + " playlist"

	var result *spotify.SearchResult
	retrier := repeater.NewBackoff(3, 100*time.Millisecond, repeater.WithMaxDelay(time.Second))
	err := retrier.Do(ctx, func() error {
		var searchErr error
		result, searchErr = a.client.Search(ctx, query, spotify.SearchTypePlaylist,
			spotify.Limit(a.cfg.PageSize), spotify.Market(a.cfg.Market))
		return searchErr
	})
	if err != nil {
		log.Printf("[WARN] spotify search for %q failed: %v", query, err)
		return nil
	}
	if result == nil || result.Playlists == nil {
		return nil
	}

	playlists := make([]domain.Playlist, 0, len(result.Playlists.Playlists))
	for _, p := range result.Playlists.Playlists {
		playlist, err := normalize(p)
		if err != nil {
			// malformed provider entries are skipped, not fatal
			log.Printf("[DEBUG] skipping playlist from search %q: %v", query, err)
			continue
		}
		playlists = append(playlists, playlist)
	}
	return playlists
}

// normalize converts a raw provider playlist into the domain shape
func normalize(p spotify.SimplePlaylist) (domain.Playlist, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Playlist{}, fmt.Errorf("missing name")
	}
	url := p.ExternalURLs["spotify"]
	if url == "" {
		return domain.Playlist{}, fmt.Errorf("missing external url")
	}

	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0].URL
	}
	owner := p.Owner.DisplayName
	if owner == "" {
		owner = "Unknown"
	}

	return domain.Playlist{
		Name:        p.Name,
		URL:         url,
		Image:       image,
		TotalTracks: int(p.Tracks.Total),
		Owner:       owner,
	}, nil
}

// dedupByName drops case-insensitive duplicate names, first occurrence wins
// and input order is preserved
func dedupByName(playlists []domain.Playlist) []domain.Playlist {
	seen := make(map[string]struct{}, len(playlists))
	res := make([]domain.Playlist, 0, len(playlists))
	for _, p := range playlists {
		key := strings.ToLower(p.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, p)
	}
	return res
}

// filterQuality drops placeholder and near-empty playlists: names of 3
// characters or fewer, or 10 tracks or fewer
func filterQuality(playlists []domain.Playlist) []domain.Playlist {
	res := make([]domain.Playlist, 0, len(playlists))
	for _, p := range playlists {
		if len(p.Name) <= 3 || p.TotalTracks <= 10 {
			continue
		}
		res = append(res, p)
	}
	return res
}
