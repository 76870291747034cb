package scrape

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dewmyth/screenwatch/pkg/domain"
)

// ErrNoImpressions indicates the page carried no parsable impression payload.
// This is the "no data this cycle" condition, distinct from a fetch failure.
var ErrNoImpressions = errors.New("no impression data found")

var (
	markerRe      = regexp.MustCompile(`"event"\s*:\s*"productImpression"`)
	impressionsRe = regexp.MustCompile(`"impressions"\s*:\s*\[`)
)

// Extractor pulls the impressions array out of the page's inline analytics scripts.
// The source embeds tracking payloads in script blocks; exactly one of them is
// tagged with the productImpression event and carries the listing data.
type Extractor struct{}

// NewExtractor creates a new impression extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scans inline script blocks in document order, finds the first one
// containing the productImpression marker and decodes the impressions array that
// follows it. An empty array is a valid steady state and yields zero items.
func (e *Extractor) Extract(markup string) ([]domain.Impression, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	var payload string
	var found bool
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		loc := markerRe.FindStringIndex(text)
		if loc == nil {
			return true // keep scanning
		}
		// first marker wins, stop scanning further scripts either way
		found = true
		payload = text[loc[1]:]
		return false
	})

	if !found {
		return nil, ErrNoImpressions
	}

	span, err := captureImpressionsArray(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoImpressions, err)
	}

	var impressions []domain.Impression
	if err := json.Unmarshal([]byte(span), &impressions); err != nil {
		return nil, fmt.Errorf("%w: decode impressions: %s", ErrNoImpressions, err)
	}

	return impressions, nil
}

// captureImpressionsArray locates the impressions key in the text following the
// event marker and returns the bracket-balanced array literal after it. An
// explicit bracket count is used instead of a greedy pattern so nested arrays
// and objects inside item fields don't cut the span short.
func captureImpressionsArray(text string) (string, error) {
	loc := impressionsRe.FindStringIndex(text)
	if loc == nil {
		return "", errors.New("impressions key missing after event marker")
	}

	// loc[1]-1 points at the opening bracket matched by the pattern
	rest := text[loc[1]-1:]

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// brackets inside string values don't count
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth == 0 {
				return rest[:i+1], nil
			}
		}
	}

	return "", errors.New("unbalanced impressions array")
}
