package domain

import (
	"fmt"
	"strings"
)

// Item represents a catalog product entry
type Item struct {
	ID       int64    `json:"product_id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	ImageURL string   `json:"image_url"`
	MoodTags []string `json:"mood_tags"`
}

// HasTag reports whether the item carries the given mood tag, case-insensitive
func (i Item) HasTag(tag string) bool {
	want := strings.ToLower(strings.TrimSpace(tag))
	for _, t := range i.MoodTags {
		if strings.ToLower(strings.TrimSpace(t)) == want {
			return true
		}
	}
	return false
}

// TagSet returns the item's mood tags lower-cased and trimmed, as a set
func (i Item) TagSet() map[string]struct{} {
	set := make(map[string]struct{}, len(i.MoodTags))
	for _, t := range i.MoodTags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

// JoinTags renders mood tags in the comma-joined storage form
func (i Item) JoinTags() string {
	return strings.Join(i.MoodTags, ", ")
}

// SplitTags parses the comma-joined storage form into a tag list
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// FormatPrice renders a price for display, e.g. "$99.99"
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
