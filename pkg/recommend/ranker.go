// Package recommend implements mood-to-product relevance ranking.
package recommend

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/moodshop/moodshop/pkg/config"
	"github.com/moodshop/moodshop/pkg/domain"
)

// Ranker scores catalog items against the emotion vocabulary.
// Scores are Jaccard similarity over tag sets plus a small random
// perturbation so repeated calls don't always return identical near-ties.
type Ranker struct {
	vocab  config.Vocabulary
	jitter float64

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rnd *rand.Rand
}

// Params holds ranker construction parameters
type Params struct {
	Jitter float64     // perturbation half-width, 0.1 by default
	Source rand.Source // optional, injectable for deterministic tests
}

// NewRanker creates a ranker for the given vocabulary
func NewRanker(vocab config.Vocabulary, params Params) *Ranker {
	src := params.Source
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Ranker{
		vocab:  vocab,
		jitter: params.Jitter,
		rnd:    rand.New(src), //nolint:gosec // ranking jitter, not crypto
	}
}

// Rank returns the topN most relevant items for the emotion. An unknown
// emotion is not an error: it yields a uniform random sample instead.
// The working scores are internal and never leak into the result.
func (r *Ranker) Rank(emotion string, items []domain.Item, topN int) []domain.Item {
	if topN <= 0 || len(items) == 0 {
		return []domain.Item{}
	}
	if topN > len(items) {
		topN = len(items)
	}

	tags, known := r.vocab.DescriptorTags(domain.NormalizeEmotion(emotion))
	if !known {
		return r.sample(items, topN)
	}

	emotionSet := tagSet(tags)

	type scored struct {
		item  domain.Item
		score float64
	}
	scores := make([]scored, len(items))

	r.mu.Lock()
	for i, item := range items {
		s := jaccard(emotionSet, item.TagSet())
		s += r.rnd.Float64()*2*r.jitter - r.jitter
		scores[i] = scored{item: item, score: s}
	}
	r.mu.Unlock()

	sort.Slice(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	res := make([]domain.Item, topN)
	for i := 0; i < topN; i++ {
		res[i] = scores[i].item
	}
	return res
}

// sample returns n random items without replacement
func (r *Ranker) sample(items []domain.Item, n int) []domain.Item {
	r.mu.Lock()
	perm := r.rnd.Perm(len(items))
	r.mu.Unlock()

	res := make([]domain.Item, n)
	for i := 0; i < n; i++ {
		res[i] = items[perm[i]]
	}
	return res
}

// jaccard computes |a∩b| / |a∪b| over two tag sets
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[domain.NormalizeEmotion(t)] = struct{}{}
	}
	return set
}
