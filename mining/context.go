// Copyright 2025 AudienceLab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mining

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/audiencelab/intentforge/core"
)

// Position of a keyword's first occurrence within a text zone.
type Position string

const (
	PositionBeginning Position = "beginning"
	PositionMiddle    Position = "middle"
	PositionEnd       Position = "end"
)

// zoneWeights ranks zones by signal strength: titles carry the most,
// registrable domains the least.
var zoneWeights = map[core.Zone]float64{
	core.ZoneTitle:    3.0,
	core.ZoneSnippet:  2.0,
	core.ZoneMainText: 1.0,
	core.ZoneURL:      1.5,
	core.ZoneDomain:   0.5,
}

var positionWeights = map[Position]float64{
	PositionBeginning: 1.2,
	PositionMiddle:    1.0,
	PositionEnd:       1.1,
}

// Main-text length thresholds for the length adjustment.
const (
	mediumTextLength = 500
	longTextLength   = 1000
)

// contextStops is the reduced stop set used only for context-zone keyword
// extraction; the full stop tiers are deliberately not applied here.
var contextStops = wordSet(`
the a an and or but in on at to for of with by
is are was were be been being have has had do does did
will would could should may might can this that these those
i you he she it we they me him her us them
`)

var nonWord = regexp.MustCompile(`[^a-z0-9_\s]+`)

// ContextScore computes the weight of a single keyword occurrence:
// zone weight, position weight, a length adjustment for substantial main
// text, and a specificity bonus for multi-word keywords.
func ContextScore(keyword string, zone core.Zone, pos Position, textLength int) float64 {
	base, ok := zoneWeights[zone]
	if !ok {
		base = 1.0
	}
	posWeight, ok := positionWeights[pos]
	if !ok {
		posWeight = 1.0
	}

	lengthAdj := 1.0
	if zone == core.ZoneMainText {
		switch {
		case textLength > longTextLength:
			lengthAdj = 1.1
		case textLength > mediumTextLength:
			lengthAdj = 1.05
		}
	}

	wordBonus := float64(len(strings.Fields(keyword))) * 0.1
	if wordBonus > 0.5 {
		wordBonus = 0.5
	}

	return base * posWeight * lengthAdj * (1 + wordBonus)
}

// ExtractKeywordsWithContext walks every zone of every document and records
// a scored occurrence for each keyword found there.
func ExtractKeywordsWithContext(docs []core.Document) map[string][]core.ZoneScore {
	scores := make(map[string][]core.ZoneScore)

	record := func(keyword string, zone core.Zone, pos Position, textLength int) {
		scores[keyword] = append(scores[keyword], core.ZoneScore{
			Zone:  zone,
			Score: ContextScore(keyword, zone, pos, textLength),
		})
	}

	for _, doc := range docs {
		if doc.Title != "" {
			for _, kw := range contextKeywords(doc.Title) {
				record(kw, core.ZoneTitle, PositionBeginning, len(doc.Title))
			}
		}
		if doc.Snippet != "" {
			for _, kw := range contextKeywords(doc.Snippet) {
				record(kw, core.ZoneSnippet, PositionMiddle, len(doc.Snippet))
			}
		}
		if doc.MainText != "" {
			for _, kw := range contextKeywords(doc.MainText) {
				pos := positionInText(kw, doc.MainText)
				record(kw, core.ZoneMainText, pos, len(doc.MainText))
			}
		}
		if doc.Link != "" {
			for _, kw := range urlKeywords(doc.Link) {
				record(kw, core.ZoneURL, PositionMiddle, len(doc.Link))
			}
		}
		if doc.Domain != "" {
			for _, kw := range domainKeywords(doc.Domain) {
				record(kw, core.ZoneDomain, PositionMiddle, len(doc.Domain))
			}
		}
	}

	return scores
}

// AggregateScores sums every occurrence of a keyword and applies a
// diversity bonus growing with the number of occurrences, capped at 2x.
func AggregateScores(zoneScores map[string][]core.ZoneScore) map[string]float64 {
	aggregated := make(map[string]float64, len(zoneScores))
	for keyword, scores := range zoneScores {
		if len(scores) == 0 {
			continue
		}
		var total float64
		for _, zs := range scores {
			total += zs.Score
		}
		bonus := float64(len(scores)) * 0.2
		if bonus > 1.0 {
			bonus = 1.0
		}
		aggregated[keyword] = total * (1 + bonus)
	}
	return aggregated
}

// RankedKeyword is a keyword with its aggregated context score and a count
// of occurrences per zone.
type RankedKeyword struct {
	Keyword   string
	Score     float64
	ZoneCount map[core.Zone]int
}

// TopKeywords returns the topN context-scored keywords across all zones of
// the documents, highest score first.
func TopKeywords(docs []core.Document, topN int) []RankedKeyword {
	zoneScores := ExtractKeywordsWithContext(docs)
	aggregated := AggregateScores(zoneScores)

	ranked := make([]RankedKeyword, 0, len(aggregated))
	for keyword, score := range aggregated {
		counts := make(map[core.Zone]int)
		for _, zs := range zoneScores[keyword] {
			counts[zs.Zone]++
		}
		ranked = append(ranked, RankedKeyword{Keyword: keyword, Score: score, ZoneCount: counts})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// contextKeywords extracts meaningful words plus their bigrams and
// trigrams from a text zone.
func contextKeywords(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	words := strings.Fields(cleaned)

	meaningful := make([]string, 0, len(words))
	for _, w := range words {
		if !contextStops[w] && len(w) >= 3 {
			meaningful = append(meaningful, w)
		}
	}

	keywords := make([]string, 0, len(meaningful)*3)
	keywords = append(keywords, meaningful...)
	keywords = append(keywords, NGrams(meaningful, 2)...)
	keywords = append(keywords, NGrams(meaningful, 3)...)
	return keywords
}

// urlKeywords pulls keywords out of the URL path and query parameters.
func urlKeywords(rawURL string) []string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		cleaned := nonWord.ReplaceAllString(strings.ToLower(rawURL), " ")
		var out []string
		for _, w := range strings.Fields(cleaned) {
			if len(w) >= 3 {
				out = append(out, w)
			}
		}
		return out
	}

	var keywords []string
	for _, part := range strings.Split(strings.Trim(parsed.Path, "/"), "/") {
		if len(part) >= 3 {
			keywords = append(keywords, part)
		}
	}
	for name, values := range parsed.Query() {
		if len(name) >= 3 {
			keywords = append(keywords, name)
		}
		for _, v := range values {
			if len(v) >= 3 {
				keywords = append(keywords, v)
			}
		}
	}
	return keywords
}

var tldSuffix = regexp.MustCompile(`\.[a-z]{2,}$`)

// domainKeywords splits a registrable domain into its meaningful parts.
func domainKeywords(domain string) []string {
	cleaned := strings.TrimPrefix(strings.ToLower(domain), "www.")
	cleaned = tldSuffix.ReplaceAllString(cleaned, "")

	var keywords []string
	for _, part := range strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == '.' || r == '-'
	}) {
		if len(part) >= 3 {
			keywords = append(keywords, part)
		}
	}
	return keywords
}

// positionInText locates the first occurrence of a keyword and maps it to
// a coarse position: the first 30% of the text counts as the beginning,
// the last 30% as the end.
func positionInText(keyword, text string) Position {
	if text == "" || keyword == "" {
		return PositionMiddle
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(keyword))
	if idx < 0 {
		return PositionMiddle
	}
	length := float64(len(text))
	switch {
	case float64(idx) < length*0.3:
		return PositionBeginning
	case float64(idx) > length*0.7:
		return PositionEnd
	default:
		return PositionMiddle
	}
}
