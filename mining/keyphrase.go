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
	"regexp"
	"sort"
	"strings"
)

// KeyphraseStrategy produces candidate keyphrases from cleaned text.
// Strategies run in a fixed order and each reports its candidates
// explicitly; there is no fallback chain between them.
type KeyphraseStrategy interface {
	// Name identifies the strategy in results and logs.
	Name() string
	// Candidates returns raw candidate phrases from the text.
	Candidates(text string) []string
}

// KeyphraseCandidate is a scored candidate with the strategies that
// produced it.
type KeyphraseCandidate struct {
	Phrase     string
	Score      float64
	Count      int
	Strategies []string
}

// KeyphraseExtractor combines an ordered list of strategies with
// frequency-based scoring and quality filtering.
type KeyphraseExtractor struct {
	strategies []KeyphraseStrategy
}

// NewKeyphraseExtractor builds an extractor for the detected domain.
// Verticals with a registered extraction pattern set get a domain-pattern
// strategy first; every extractor carries the n-gram and technical-term
// strategies.
func NewKeyphraseExtractor(domain string) *KeyphraseExtractor {
	var strategies []KeyphraseStrategy
	if patterns := DomainPatterns(domain); len(patterns) > 0 {
		strategies = append(strategies, &domainPatternStrategy{domain: domain, patterns: patterns})
	}
	strategies = append(strategies,
		&ngramStrategy{},
		&technicalTermStrategy{},
	)
	return &KeyphraseExtractor{strategies: strategies}
}

// Strategies returns the names of the configured strategies in run order.
func (e *KeyphraseExtractor) Strategies() []string {
	names := make([]string, 0, len(e.strategies))
	for _, s := range e.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Extract runs every strategy over the text, scores the pooled candidates
// by occurrence count with specificity and domain bonuses, filters out
// low-quality phrases, and returns up to topN candidates ranked by score.
func (e *KeyphraseExtractor) Extract(text string, topN int) []KeyphraseCandidate {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	counts := make(map[string]int)
	sources := make(map[string][]string)
	for _, s := range e.strategies {
		for _, phrase := range s.Candidates(cleaned) {
			phrase = strings.Join(strings.Fields(phrase), " ")
			if phrase == "" {
				continue
			}
			counts[phrase]++
			if !containsString(sources[phrase], s.Name()) {
				sources[phrase] = append(sources[phrase], s.Name())
			}
		}
	}

	var candidates []KeyphraseCandidate
	for phrase, count := range counts {
		if count < 2 {
			continue
		}
		score := float64(count)
		if containsString(sources[phrase], "domain_patterns") {
			score *= 2.0
		}
		if isTechnicalWord(phrase) {
			score *= 1.5
		}
		switch len(strings.Fields(phrase)) {
		case 2:
			score *= 1.1
		case 3:
			score *= 1.3
		}
		if score < 2.0 || !isQualityPhrase(phrase) {
			continue
		}
		candidates = append(candidates, KeyphraseCandidate{
			Phrase:     phrase,
			Score:      score,
			Count:      count,
			Strategies: sources[phrase],
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Phrase < candidates[j].Phrase
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}

// ExtractPhrases is a convenience wrapper returning just the phrases.
func (e *KeyphraseExtractor) ExtractPhrases(text string, topN int) []string {
	candidates := e.Extract(text, topN)
	phrases := make([]string, 0, len(candidates))
	for _, c := range candidates {
		phrases = append(phrases, c.Phrase)
	}
	return phrases
}

// domainPatternStrategy surfaces phrases matching the vertical's
// extraction patterns.
type domainPatternStrategy struct {
	domain   string
	patterns []*regexp.Regexp
}

func (s *domainPatternStrategy) Name() string { return "domain_patterns" }

func (s *domainPatternStrategy) Candidates(text string) []string {
	var out []string
	for _, p := range s.patterns {
		out = append(out, p.FindAllString(text, -1)...)
	}
	return out
}

// ngramStrategy surfaces bigrams and trigrams built from the
// stop-filtered token stream, minus blocklisted fragments.
type ngramStrategy struct{}

func (s *ngramStrategy) Name() string { return "ngrams" }

func (s *ngramStrategy) Candidates(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if !isStopword(w) && len(w) > 2 {
			filtered = append(filtered, w)
		}
	}

	var out []string
	for _, ng := range NGrams(filtered, 2) {
		if !isBlockedPhrase(ng) {
			out = append(out, ng)
		}
	}
	for _, ng := range NGrams(filtered, 3) {
		if !isBlockedPhrase(ng) {
			out = append(out, ng)
		}
	}
	return out
}

// technicalTermStrategy surfaces single tokens with technical suffixes.
type technicalTermStrategy struct{}

func (s *technicalTermStrategy) Name() string { return "technical_terms" }

func (s *technicalTermStrategy) Candidates(text string) []string {
	var out []string
	for _, w := range strings.Fields(text) {
		if isTechnicalWord(w) {
			out = append(out, w)
		}
	}
	return out
}

var technicalSuffixes = []string{
	"api", "sdk", "ssl", "tls", "http", "json", "xml", "sql", "auth",
	"encrypt", "secure", "integrat", "automation", "monitoring",
	"analytics", "dashboard", "reporting",
}

func isTechnicalWord(word string) bool {
	lower := strings.ToLower(word)
	for _, suffix := range technicalSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

var genericSingles = map[string]bool{
	"thing": true, "things": true, "stuff": true, "way": true, "ways": true,
	"time": true, "times": true, "place": true, "places": true,
}

// isQualityPhrase rejects phrases that are too short, too long, blocked,
// generic singles, or made entirely of stopwords.
func isQualityPhrase(phrase string) bool {
	if len(phrase) < 3 || len(phrase) > 50 {
		return false
	}
	if isBlockedPhrase(phrase) {
		return false
	}
	words := strings.Fields(phrase)
	if len(words) == 1 && genericSingles[words[0]] {
		return false
	}
	meaningful := 0
	for _, w := range words {
		if !isStopword(w) && len(w) > 2 {
			meaningful++
		}
	}
	return meaningful > 0
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
