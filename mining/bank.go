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
	"sort"
	"strings"

	"github.com/audiencelab/intentforge/core"
)

// Bank assembly limits.
const (
	maxExactTerms      = 15
	minExactTerms      = 8
	maxSemanticTerms   = 12
	maxActionModifiers = 8
	maxDisambiguators  = 3
	maxTopDomains      = 10

	maxRawTerms   = 50
	maxRawPhrases = 30
)

// BuildKeywordBank assembles the curated keyword bank from scored documents.
// Phrases are preferred for the exact-term tier; unigrams backfill only when
// fewer than minExactTerms phrases cleared support. Seeds contribute to the
// disambiguator list.
func BuildKeywordBank(docs []core.Document, seeds []string) *core.KeywordBank {
	scores := ScoreTerms(docs)

	type item struct {
		term string
		df   int
	}
	items := make([]item, 0, len(scores))
	for term, df := range scores {
		items = append(items, item{term: term, df: df})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].df != items[j].df {
			return items[i].df > items[j].df
		}
		return items[i].term < items[j].term
	})

	var phrases, unis []string
	for _, it := range items {
		switch len(strings.Fields(it.term)) {
		case 2, 3:
			phrases = append(phrases, CleanTerm(it.term))
		case 1:
			unis = append(unis, it.term)
		}
	}

	exactTerms := make([]string, 0, maxExactTerms)
	for _, p := range phrases {
		if len(exactTerms) == maxExactTerms {
			break
		}
		exactTerms = append(exactTerms, p)
	}
	if len(exactTerms) < minExactTerms {
		for _, u := range unis {
			if len(exactTerms) == minExactTerms {
				break
			}
			if IsGoodUnigram(u) {
				exactTerms = append(exactTerms, CleanTerm(u))
			}
		}
	}

	exactSet := make(map[string]bool, len(exactTerms))
	for _, t := range exactTerms {
		exactSet[t] = true
	}
	semanticTerms := make([]string, 0, maxSemanticTerms)
	for _, p := range phrases {
		if len(semanticTerms) == maxSemanticTerms {
			break
		}
		if !exactSet[p] {
			semanticTerms = append(semanticTerms, p)
		}
	}

	// Action modifiers keep lexicon precedence: transactional first,
	// generic last, and only modifiers actually present in the evidence.
	var modifiers []string
	modifierSet := make(map[string]bool)
	for _, group := range [][]string{txnModifiers, evalModifiers, implModifiers, genericModifiers} {
		for _, m := range group {
			if _, present := scores[m]; present && !modifierSet[m] {
				modifiers = append(modifiers, m)
				modifierSet[m] = true
			}
		}
	}
	if len(modifiers) > maxActionModifiers {
		modifiers = modifiers[:maxActionModifiers]
	}

	var disambiguators []string
	if len(exactTerms) > 0 {
		n := 2
		if len(exactTerms) < n {
			n = len(exactTerms)
		}
		disambiguators = append(disambiguators, exactTerms[:n]...)
	}
	for i, s := range seeds {
		if i == 2 {
			break
		}
		dup := false
		for _, d := range disambiguators {
			if d == s {
				dup = true
				break
			}
		}
		if !dup {
			disambiguators = append(disambiguators, s)
		}
	}
	if len(disambiguators) > maxDisambiguators {
		disambiguators = disambiguators[:maxDisambiguators]
	}

	domainCounts := make(map[string]int)
	var domainOrder []string
	for _, doc := range docs {
		if doc.Domain == "" {
			continue
		}
		if domainCounts[doc.Domain] == 0 {
			domainOrder = append(domainOrder, doc.Domain)
		}
		domainCounts[doc.Domain]++
	}
	sort.SliceStable(domainOrder, func(i, j int) bool {
		return domainCounts[domainOrder[i]] > domainCounts[domainOrder[j]]
	})
	if len(domainOrder) > maxTopDomains {
		domainOrder = domainOrder[:maxTopDomains]
	}

	return &core.KeywordBank{
		ExactTerms:      exactTerms,
		SemanticTerms:   semanticTerms,
		ActionModifiers: modifiers,
		Disambiguators:  disambiguators,
		StopTerms:       ForbiddenTerms(),
		TopDomains:      domainOrder,
		EvidenceCount:   len(docs),
	}
}

// ExtractRawContent bundles maximal signal from the documents with minimal
// filtering: true occurrence counts rather than document frequencies, the
// combined source text, and per-document source metadata. It feeds
// description generation, which wants raw material over curation.
func ExtractRawContent(docs []core.Document, seeds []string) *core.RawContent {
	var (
		rawTexts   []string
		allTerms   []string
		docSources []core.DocSource
	)

	for _, doc := range docs {
		fullText := doc.Title + " " + doc.Snippet + " " + doc.MainText
		rawTexts = append(rawTexts, fullText)

		for _, t := range Tokenize(fullText) {
			if len(t) >= 3 && !domainBan[t] && !enhancedStops[t] {
				allTerms = append(allTerms, t)
			}
		}

		docSources = append(docSources, core.DocSource{
			Title:      doc.Title,
			Snippet:    doc.Snippet,
			Domain:     doc.Domain,
			Link:       doc.Link,
			TextLength: len(fullText),
		})
	}

	termCounts := make(map[string]int)
	for _, t := range allTerms {
		termCounts[t]++
	}

	topTerms := make([]string, 0, maxRawTerms)
	for _, term := range rankByCount(termCounts, 100) {
		if isStopword(term) || len(term) < 3 || digitsOnly.MatchString(term) {
			continue
		}
		topTerms = append(topTerms, term)
		if len(topTerms) == maxRawTerms {
			break
		}
	}

	phraseCounts := make(map[string]int)
	for _, text := range rawTexts {
		toks := Tokenize(text)
		for _, ng := range NGrams(toks, 2) {
			phraseCounts[ng]++
		}
		for _, ng := range NGrams(toks, 3) {
			phraseCounts[ng]++
		}
	}

	var topPhrases []string
	filteredPhraseCounts := make(map[string]int)
	for _, phrase := range rankByCount(phraseCounts, 50) {
		if isBlockedPhrase(phrase) {
			continue
		}
		filteredPhraseCounts[phrase] = phraseCounts[phrase]
		if len(topPhrases) < maxRawPhrases {
			topPhrases = append(topPhrases, phrase)
		}
	}

	combined := strings.Join(rawTexts, " ")

	if seeds == nil {
		seeds = []string{}
	}

	return &core.RawContent{
		RawTexts:          rawTexts,
		CombinedText:      combined,
		TopTerms:          topTerms,
		TopPhrases:        topPhrases,
		TermFrequencies:   topCounts(termCounts, 100),
		PhraseFrequencies: filteredPhraseCounts,
		DocSources:        docSources,
		TotalDocs:         len(docSources),
		TotalTextLength:   len(combined),
		Seeds:             seeds,
		EvidenceCount:     len(docSources),
	}
}

// EnrichBank merges extracted keyphrases into the bank's semantic terms,
// phrases first, deduplicated, capped at max(10, topN).
func EnrichBank(bank *core.KeywordBank, phrases []string, topN int) *core.KeywordBank {
	if bank == nil || len(phrases) == 0 {
		return bank
	}

	limit := topN
	if limit < 10 {
		limit = 10
	}

	merged := make([]string, 0, limit)
	seen := make(map[string]bool)
	for _, p := range append(append([]string{}, phrases...), bank.SemanticTerms...) {
		if seen[p] {
			continue
		}
		seen[p] = true
		merged = append(merged, p)
		if len(merged) == limit {
			break
		}
	}
	bank.SemanticTerms = merged
	return bank
}

// rankByCount returns the topN keys ordered by descending count, with
// lexicographic order as the deterministic tie-break.
func rankByCount(counts map[string]int, topN int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > topN {
		keys = keys[:topN]
	}
	return keys
}

func topCounts(counts map[string]int, topN int) map[string]int {
	out := make(map[string]int, topN)
	for _, k := range rankByCount(counts, topN) {
		out[k] = counts[k]
	}
	return out
}
