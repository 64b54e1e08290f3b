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
	"strings"

	"github.com/audiencelab/intentforge/core"
)

// Minimum number of distinct documents a candidate must appear in.
// Unigrams carry a higher bar than phrases.
const (
	minUnigramSupport = 4
	minPhraseSupport  = 2
)

// ScoreTerms computes document-frequency support for unigram, bigram and
// trigram candidates across the documents. Each document contributes at
// most once per candidate regardless of repetition within the page.
// Candidates below their minimum support are dropped.
func ScoreTerms(docs []core.Document) map[string]int {
	seen := make(map[string]map[int]bool)

	for docIdx, doc := range docs {
		text := doc.Title + " " + doc.Snippet + " " + doc.MainText
		toks := Tokenize(text)

		unis := make([]string, 0, len(toks))
		for _, t := range toks {
			if IsGoodUnigram(t) {
				unis = append(unis, t)
			}
		}

		// Phrases are built from the stopword-filtered stream so that
		// n-gram windows skip over function words.
		filtered := make([]string, 0, len(toks))
		for _, t := range toks {
			if !isStopword(t) {
				filtered = append(filtered, t)
			}
		}

		candidates := make(map[string]bool)
		for _, t := range unis {
			candidates[t] = true
		}
		for _, ng := range NGrams(filtered, 2) {
			candidates[ng] = true
		}
		for _, ng := range NGrams(filtered, 3) {
			candidates[ng] = true
		}

		for ng := range candidates {
			if seen[ng] == nil {
				seen[ng] = make(map[int]bool)
			}
			seen[ng][docIdx] = true
		}
	}

	scores := make(map[string]int)
	for term, idxs := range seen {
		df := len(idxs)
		minDF := minPhraseSupport
		if !strings.Contains(term, " ") {
			minDF = minUnigramSupport
		}
		if df >= minDF {
			scores[term] = df
		}
	}
	return scores
}
