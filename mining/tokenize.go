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
	"strings"
)

var (
	// boilerplateMarkers matches cookie banners, auth prompts and similar
	// web chrome that leaks into scraped text.
	boilerplateMarkers = regexp.MustCompile(`(?i)(cookie|privacy|terms|subscribe|login|sign in|sign up|accept|advertis|newsletter)`)

	// nonToken matches everything outside the token alphabet: lowercase
	// letters, digits, hyphen, space.
	nonToken = regexp.MustCompile(`[^a-z0-9\- ]+`)

	digitsOnly = regexp.MustCompile(`^[0-9]+$`)
)

// Tokenize lowercases text, strips boilerplate markers and characters
// outside the token alphabet, and splits on whitespace. Stopword removal is
// not applied here; callers filter per n-gram size.
func Tokenize(text string) []string {
	text = boilerplateMarkers.ReplaceAllString(strings.ToLower(text), " ")
	text = nonToken.ReplaceAllString(text, " ")
	return strings.Fields(text)
}

// NGrams returns all contiguous n-token windows joined by single spaces.
// It returns nil when the token slice is shorter than n.
func NGrams(tokens []string, n int) []string {
	if len(tokens) < n {
		return nil
	}
	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], " "))
	}
	return grams
}

// IsGoodUnigram reports whether a single token is a viable candidate term:
// not in any stop tier or the domain banlist, at least 4 characters, and
// not purely numeric.
func IsGoodUnigram(t string) bool {
	if isStopword(t) || domainBan[t] {
		return false
	}
	return len(t) >= 4 && !digitsOnly.MatchString(t)
}

// CleanTerm normalizes a term for presentation: known brand tokens get
// their canonical casing, multi-word phrases are lightly title-cased, and
// unigrams pass through unchanged.
func CleanTerm(t string) string {
	if fixed, ok := brandFixes[t]; ok {
		return fixed
	}
	words := strings.Split(t, " ")
	if len(words) < 2 {
		return t
	}
	for i, w := range words {
		if w != strings.ToUpper(w) {
			words[i] = capitalize(w)
		}
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
