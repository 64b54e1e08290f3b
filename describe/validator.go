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


package describe

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule numbers for the five validation checks.
const (
	RuleSearchVolume  = 1 // subject too specific or obscure to find
	RuleAudience      = 2 // mentions who uses or buys
	RuleBusinessModel = 3 // mentions pricing, quality tiers, business model
	RuleLength        = 4 // too many words
	RuleExplanation   = 5 // explains the classification instead of the subject
)

// maxDescriptionWords caps a description at roughly 2-3 sentences.
const maxDescriptionWords = 50

// audienceKeywords flag descriptions that talk about who uses the product
// instead of the product itself.
var audienceKeywords = []string{
	"audience", "users", "people", "customers", "clients", "buyers",
	"consumers", "professionals", "businesses", "companies", "organizations",
	"individuals", "teams", "departments", "managers", "executives",
	"developers", "marketers", "salespeople", "administrators",
	"who", "those who", "anyone who", "people who", "users who",
}

// metaKeywords flag business-model and quality-tier language.
var metaKeywords = []string{
	"luxury", "premium", "affordable", "budget", "low-cost", "high-end",
	"quality", "premium quality", "best", "top-rated", "leading",
	"enterprise", "small business", "startup", "freemium", "subscription",
	"one-time", "monthly", "annual", "pricing", "cost", "price",
	"business model", "revenue", "profit", "ROI", "investment",
}

// explanationKeywords flag descriptions that describe the classification
// machinery rather than the subject.
var explanationKeywords = []string{
	"by focusing on", "the taxonomy", "segments", "targeting",
	"rather than", "instead of", "this includes", "this excludes",
	"the intent", "the algorithm", "measurement", "tracking",
	"classification", "segmentation", "audience targeting",
}

// commonTerms are broad product/service words; a description carrying none
// of them is likely too obscure to have search volume behind it.
var commonTerms = []string{
	"email", "deliverability", "service", "tool", "software",
	"solution", "platform", "system", "technology", "product",
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// Result reports the outcome of validating one description.
type Result struct {
	Valid       bool
	WordCount   int
	FailedRules []int
	Issues      []string
	Suggestions []string
}

// Validate checks a description against all five rules. It never returns
// an error: an invalid description is an expected outcome, captured in the
// Result.
func Validate(description, topic string) Result {
	result := Result{
		Valid:     true,
		WordCount: len(strings.Fields(description)),
	}

	if !hasSufficientSearchVolume(description) {
		result.fail(RuleSearchVolume,
			"description may be too specific or obscure - insufficient search volume",
			"broaden the topic to include more common search terms")
	}

	if issues := keywordHits(description, audienceKeywords); len(issues) > 0 {
		result.failAll(RuleAudience, issues, "audience")
		result.Suggestions = append(result.Suggestions,
			"remove audience-focused language, focus only on the product/service")
	}

	if issues := keywordHits(description, metaKeywords); len(issues) > 0 {
		result.failAll(RuleBusinessModel, issues, "meta")
		result.Suggestions = append(result.Suggestions,
			"remove business model, pricing, or quality descriptors")
	}

	if result.WordCount > maxDescriptionWords {
		result.fail(RuleLength,
			fmt.Sprintf("description too long (%d words)", result.WordCount),
			"keep description to 2-3 sentences maximum")
	}

	if issues := keywordHits(description, explanationKeywords); len(issues) > 0 {
		result.failAll(RuleExplanation, issues, "explanation")
		result.Suggestions = append(result.Suggestions,
			"remove explanations about intent or targeting - focus only on the subject")
	}

	return result
}

// ValidateAndFix validates a description and, when it fails, strips every
// flagged keyword as a whole word, collapses whitespace, and re-validates.
// It returns the (possibly repaired) description with its final result.
func ValidateAndFix(description, topic string) (string, Result) {
	result := Validate(description, topic)
	if result.Valid {
		return description, result
	}

	fixed := description
	for _, group := range [][]string{audienceKeywords, metaKeywords, explanationKeywords} {
		for _, keyword := range group {
			pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
			fixed = pattern.ReplaceAllString(fixed, "")
		}
	}
	fixed = strings.TrimSpace(regexp.MustCompile(`\s+`).ReplaceAllString(fixed, " "))

	return fixed, Validate(fixed, topic)
}

func (r *Result) fail(rule int, issue, suggestion string) {
	r.Valid = false
	r.FailedRules = append(r.FailedRules, rule)
	r.Issues = append(r.Issues, issue)
	r.Suggestions = append(r.Suggestions, suggestion)
}

func (r *Result) failAll(rule int, hits []string, kind string) {
	r.Valid = false
	r.FailedRules = append(r.FailedRules, rule)
	for _, hit := range hits {
		r.Issues = append(r.Issues, fmt.Sprintf("contains %s keyword: %q", kind, hit))
	}
}

// hasSufficientSearchVolume is a cheap heuristic: a findable description
// has at least five words and mentions at least one broad product term.
func hasSufficientSearchVolume(description string) bool {
	words := wordPattern.FindAllString(strings.ToLower(description), -1)
	if len(words) < 5 {
		return false
	}
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}
	for _, term := range commonTerms {
		if wordSet[term] {
			return true
		}
	}
	return false
}

// keywordHits returns the keywords present in the description as
// substrings, preserving list order.
func keywordHits(description string, keywords []string) []string {
	lower := strings.ToLower(description)
	var hits []string
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			hits = append(hits, keyword)
		}
	}
	return hits
}
