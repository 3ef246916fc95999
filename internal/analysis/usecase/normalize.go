package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/model"
)

const (
	defaultScore     = 50
	defaultSentiment = model.SentimentNeutral
	defaultAlignment = model.AlignmentPartial

	maxKeywords        = 5
	maxRecommendations = 5
	maxRiskFactors     = 3
	maxOpportunities   = 3
	maxQuoteLength     = 150
)

var (
	// Greedy: spans from the first '{' to the last '}' of the response.
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
	leadingIntPattern = regexp.MustCompile(`^\s*[+-]?\d+`)

	fallbackKeywords        = []string{"lifestyle", "content", "engagement", "community", "brand"}
	fallbackRecommendations = []string{
		"Run a short trial campaign before committing to a long-term partnership",
		"Agree on clear disclosure and creative guidelines up front",
		"Track engagement against a pre-campaign baseline",
	}
	fallbackRiskFactors   = []string{"Limited data available for a confident risk assessment"}
	fallbackOpportunities = []string{
		"Test product integration in the creator's most engaging content format",
		"Explore co-created content to improve authenticity",
	}
)

// normalizeResponse extracts the JSON object from raw model output and coerces it into a complete
// AnalysisResult. Each field that is missing or has the wrong shape gets its own default.
// Only a response with no decodable object at all is rejected with *analysis.ParseError.
func normalizeResponse(raw, brand, influencer string) (model.AnalysisResult, error) {
	match := jsonObjectPattern.FindString(raw)
	if match == "" {
		return model.AnalysisResult{}, &analysis.ParseError{Reason: "no JSON object found in response"}
	}

	// The decoder stops after the first complete value, so prose or a second object after it is ignored.
	dec := json.NewDecoder(strings.NewReader(match))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return model.AnalysisResult{}, &analysis.ParseError{Reason: "response JSON could not be decoded", Err: err}
	}

	return model.AnalysisResult{
		OverallSentiment:   normalizeSentiment(obj["overallSentiment"]),
		SentimentScore:     normalizeScore(obj["sentimentScore"]),
		BrandAlignment:     normalizeAlignment(obj["brandAlignment"]),
		TopKeywords:        normalizeList(obj["topKeywords"], maxKeywords, fallbackKeywords),
		AIQuote:            normalizeQuote(obj["aiQuote"], brand, influencer),
		ContentAnalysis:    normalizeContentAnalysis(obj["contentAnalysis"], brand),
		Recommendations:    normalizeList(obj["recommendations"], maxRecommendations, fallbackRecommendations),
		RiskFactors:        normalizeList(obj["riskFactors"], maxRiskFactors, fallbackRiskFactors),
		Opportunities:      normalizeList(obj["opportunities"], maxOpportunities, fallbackOpportunities),
		EngagementInsights: normalizeInsights(obj["engagementInsights"], brand, influencer),
	}, nil
}

func normalizeSentiment(v any) model.Sentiment {
	if s, ok := v.(string); ok && model.Sentiment(s).IsValid() {
		return model.Sentiment(s)
	}
	return defaultSentiment
}

func normalizeAlignment(v any) model.Alignment {
	if s, ok := v.(string); ok && model.Alignment(s).IsValid() {
		return model.Alignment(s)
	}
	return defaultAlignment
}

// normalizeScore truncates numbers, reads the leading integer of strings and clamps to [0,100].
func normalizeScore(v any) int {
	f, ok := numberValue(v)
	if !ok {
		return defaultScore
	}
	return int(math.Max(0, math.Min(100, math.Trunc(f))))
}

func numberValue(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case int:
		f = float64(n)
	case string:
		m := leadingIntPattern.FindString(n)
		if m == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// normalizeList keeps the non-empty strings of an array, in order, up to limit.
// Anything that is not an array is replaced by a copy of fallback.
func normalizeList(v any, limit int, fallback []string) []string {
	items, ok := v.([]any)
	if !ok {
		return append([]string(nil), fallback...)
	}
	out := make([]string, 0, min(len(items), limit))
	for _, item := range items {
		if len(out) == limit {
			break
		}
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func normalizeQuote(v any, brand, influencer string) string {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		s = defaultQuote(brand, influencer)
	}
	return truncateRunes(s, maxQuoteLength)
}

func defaultQuote(brand, influencer string) string {
	return fmt.Sprintf("%s's content shows potential for %s brand partnership.", influencer, brand)
}

func normalizeInsights(v any, brand, influencer string) string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return defaultInsights(brand, influencer)
}

func defaultInsights(brand, influencer string) string {
	return fmt.Sprintf("%s's audience engagement is within the typical range for the platform; "+
		"measure %s campaign results against a pre-partnership baseline.", influencer, brand)
}

func normalizeContentAnalysis(v any, brand string) []model.ContentAnalysis {
	items, ok := v.([]any)
	if !ok {
		return []model.ContentAnalysis{}
	}
	out := make([]model.ContentAnalysis, 0, len(items))
	for _, item := range items {
		fields, _ := item.(map[string]any)
		out = append(out, normalizeContentEntry(fields, brand))
	}
	return out
}

func normalizeContentEntry(fields map[string]any, brand string) model.ContentAnalysis {
	entry := model.ContentAnalysis{
		PostIndex:    normalizePostIndex(fields["postIndex"]),
		Sentiment:    normalizeSentiment(fields["sentiment"]),
		BrandMention: truthy(fields["brandMention"]),
	}
	if s, ok := fields["aiComment"].(string); ok && strings.TrimSpace(s) != "" {
		entry.AIComment = s
	} else {
		entry.AIComment = defaultComment(entry.PostIndex, entry.Sentiment, brand)
	}
	return entry
}

func defaultComment(index int, sentiment model.Sentiment, brand string) string {
	return fmt.Sprintf("Post %d reads as %s in tone for %s.", index, strings.ToLower(string(sentiment)), brand)
}

func normalizePostIndex(v any) int {
	f, ok := numberValue(v)
	if !ok || f < 1 || f > math.MaxInt32 {
		return 1
	}
	return int(f)
}

// truthy coerces a loosely typed flag. Strings go through strconv.ParseBool and otherwise count as
// true when non-empty; numbers are true when non-zero; objects and arrays are true.
func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case json.Number:
		f, err := b.Float64()
		return err == nil && f != 0
	case float64:
		return b != 0
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed
		}
		return b != ""
	default:
		return true
	}
}
