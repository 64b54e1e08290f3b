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
)

func wordSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

// stopwords is the base tier of function words.
var stopwords = wordSet(`
a an and are as at be by for from has have how i in is it its of on or that the to was were what when where which who why will with you your
`)

// extraStops is the second tier: frequent but uninformative content words.
var extraStops = wordSet(`
about across after also because before can could does each find get good great help here into like make many may more most much new now off one our out over see show since some take than then there these thing things those through try under use used using very via way well while within without work year years
`)

// enhancedStops is the third tier: question words, generic verbs and
// adjectives, and web-boilerplate vocabulary.
var enhancedStops = wordSet(`
what when where why how which who whom whose
here there now then today yesterday tomorrow
very really quite rather just only even still also
too as like such so than more most less least
much many few several some any all every each
both either neither no not never always often sometimes
usually generally typically commonly frequently rarely seldom
get got getting make made making take took taking
give gave giving go went going come came coming
see saw seeing look looked looking find found finding
use used using want wanted wanting need needed needing
know knew knowing think thought thinking feel felt feeling
good bad big small large little new old young
high low long short wide narrow thick thin
easy hard difficult simple complex important necessary
possible impossible available unavailable ready
click clicked clicking page pages website web site
link links button buttons menu menus form forms
data information content text image images file files
download downloads upload uploads search searches searching
result results list lists item items product products
service services tool tools feature features option options
`)

// domainBan holds trivial junk unigrams that survive the stop tiers but
// never carry intent signal.
var domainBan = map[string]bool{
	"this":  true,
	"home":  true,
	"water": true,
}

// brandFixes maps lowercased brand tokens to their canonical casing.
var brandFixes = map[string]string{
	"leaffilter": "LeafFilter",
}

// Intent modifier lexicons, in precedence order: transactional terms
// outrank evaluative ones, which outrank implementation and generic terms.
var (
	txnModifiers     = []string{"pricing", "price", "cost", "quote", "buy", "near me", "tickets", "registration", "warranty"}
	evalModifiers    = []string{"reviews", "review", "vs", "compare", "alternatives", "best"}
	implModifiers    = []string{"installation", "installer", "install", "replacement", "setup", "integration", "api", "docs", "specs", "materials"}
	genericModifiers = []string{"what is", "guide", "definition", "overview"}
)

// forbiddenTerms lists audience and business-model words that downstream
// description generation must avoid.
var forbiddenTerms = []string{
	"homeowner", "homeowners", "manager", "owner", "marketer", "student", "developer", "cio", "smb", "enterprise",
	"middle aged", "parents", "men", "women", "luxury", "affordable", "budget", "trusted", "premium",
	"award-winning", "top rated", "quality", "this intent", "represents interest", "captures research",
}

// blockPhrases holds substring fragments that disqualify a phrase from the
// raw-content top lists: generic filler, web boilerplate, navigation text
// and marketing fluff.
var blockPhrases = []string{
	"these services send your", "if you", "if you d", "you d like", "d like to", "like to",
	"need to", "want to", "going to", "trying to", "planning to", "looking to",
	"in the", "on the", "at the", "of the", "to the", "for the", "with the",
	"it s", "that s", "there s", "here s", "what s", "how s", "when s",
	"you re", "they re", "we re", "i m", "he s", "she s",

	"click here", "learn more", "read more", "find out", "get started",
	"sign up", "sign in", "log in", "create account", "join now",
	"subscribe to", "follow us", "contact us", "get in touch",

	"best in", "top rated", "award winning", "trusted by", "used by",
	"recommended by", "chosen by", "selected by", "featured in",

	"home page", "main page", "about us", "our services", "our products",
	"customer support", "help center", "faq", "privacy policy", "terms of service",

	"in this article", "in this guide", "in this post", "in this blog",
	"as mentioned", "as stated", "as noted", "according to",
	"for example", "for instance", "such as", "like this",

	"cookie policy", "terms of use", "disclaimer",
	"copyright", "all rights reserved", "powered by", "built with",

	"take a look", "check out", "have a look", "give it a try",
	"start using", "begin using", "continue reading", "keep reading",
}

// isStopword reports whether the token belongs to any stop tier.
func isStopword(t string) bool {
	return stopwords[t] || extraStops[t] || enhancedStops[t]
}

// isBlockedPhrase reports whether the phrase contains any block fragment.
func isBlockedPhrase(phrase string) bool {
	lower := strings.ToLower(phrase)
	for _, blocked := range blockPhrases {
		if strings.Contains(lower, blocked) {
			return true
		}
	}
	return false
}

// ForbiddenTerms returns the audience/business-model banlist in sorted order.
// The result is a copy; callers may mutate it freely.
func ForbiddenTerms() []string {
	out := make([]string, len(forbiddenTerms))
	copy(out, forbiddenTerms)
	sort.Strings(out)
	return out
}
