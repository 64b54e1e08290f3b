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

// ClusterOther collects keywords no semantic cluster claimed.
const ClusterOther = "other_keywords"

// clusterDef pairs a cluster name with its match patterns and seed
// keywords. Definition order is the tie-break: the first cluster matching a
// keyword claims it.
type clusterDef struct {
	name     string
	patterns []*regexp.Regexp
	keywords []string
}

// emailDeliverabilityClusters groups terms from the email deliverability
// vertical into its recurring sub-topics.
var emailDeliverabilityClusters = []clusterDef{
	{
		name: "authentication_protocols",
		patterns: compileAll([]string{
			`\b(spf|dkim|dmarc)\b`,
			`\b(authentication|verification)\s+(protocol|method|system)\b`,
			`\b(ssl|tls)\s+(certificate|cert)\b`,
		}),
		keywords: []string{"spf", "dkim", "dmarc", "authentication", "verification", "ssl", "tls"},
	},
	{
		name: "delivery_metrics",
		patterns: compileAll([]string{
			`\b(bounce|open|click|unsubscribe)\s+rate\b`,
			`\b(delivery|deliverability)\s+rate\b`,
			`\b(engagement|performance)\s+metrics\b`,
		}),
		keywords: []string{"bounce rate", "open rate", "click rate", "delivery rate", "engagement rate"},
	},
	{
		name: "reputation_management",
		patterns: compileAll([]string{
			`\b(sender|domain|ip)\s+reputation\b`,
			`\b(blacklist|whitelist|greylist)\b`,
			`\b(postmaster)\s+(tool|tools)\b`,
		}),
		keywords: []string{"sender reputation", "domain reputation", "ip reputation", "blacklist", "whitelist"},
	},
	{
		name: "spam_filtering",
		patterns: compileAll([]string{
			`\b(spam|junk)\s+(filter|folder)\b`,
			`\b(spam)\s+(trap|score|analysis)\b`,
			`\b(inbox|promotions)\s+(placement|folder)\b`,
		}),
		keywords: []string{"spam filter", "spam folder", "spam trap", "inbox placement", "promotions folder"},
	},
	{
		name: "list_management",
		patterns: compileAll([]string{
			`\b(list)\s+(hygiene|cleaning|validation)\b`,
			`\b(subscriber|email)\s+(list|database)\b`,
			`\b(opt-in|opt-out|unsubscribe)\b`,
		}),
		keywords: []string{"list hygiene", "subscriber list", "opt-in", "opt-out", "unsubscribe"},
	},
	{
		name: "email_campaigns",
		patterns: compileAll([]string{
			`\b(cold|bulk|mass)\s+email\b`,
			`\b(email)\s+(campaign|marketing|automation)\b`,
			`\b(campaign)\s+(monitoring|tracking)\b`,
		}),
		keywords: []string{"cold email", "bulk email", "email campaign", "email marketing"},
	},
}

// genericTechClusters is the fallback grouping for every other vertical.
var genericTechClusters = []clusterDef{
	{
		name: "api_integration",
		patterns: compileAll([]string{
			`\b(api|apis)\s+(integration|endpoint|key)\b`,
			`\b(rest|graphql|soap)\s+(api|service)\b`,
		}),
		keywords: []string{"api integration", "rest api", "graphql", "endpoint"},
	},
	{
		name: "cloud_services",
		patterns: compileAll([]string{
			`\b(cloud|saas|software)\s+(service|platform)\b`,
			`\b(aws|azure|gcp|google)\s+(service|platform)\b`,
		}),
		keywords: []string{"cloud service", "saas", "aws", "azure", "gcp"},
	},
	{
		name: "security_features",
		patterns: compileAll([]string{
			`\b(security|secure|encryption)\s+(feature|protocol)\b`,
			`\b(two-factor|2fa|mfa)\s+(authentication)\b`,
		}),
		keywords: []string{"security", "encryption", "two-factor", "authentication"},
	},
	{
		name: "monitoring_analytics",
		patterns: compileAll([]string{
			`\b(monitoring|tracking|analytics)\s+(tool|platform)\b`,
			`\b(real-time|realtime)\s+(monitoring|tracking)\b`,
		}),
		keywords: []string{"monitoring", "analytics", "real-time", "tracking"},
	},
}

func clusterDefsFor(domain string) []clusterDef {
	if domain == "email_deliverability" {
		return emailDeliverabilityClusters
	}
	return genericTechClusters
}

// ClusterKeywords groups keywords into semantic clusters for the given
// domain. A keyword belongs to the first cluster whose patterns match it or
// whose seed keywords share a substring with it in either direction;
// unmatched keywords land in ClusterOther.
func ClusterKeywords(keywords []string, domain string) map[string][]string {
	defs := clusterDefsFor(domain)

	clusters := make(map[string][]string)
	var unclustered []string

	for _, keyword := range keywords {
		lower := strings.ToLower(keyword)
		assigned := false

		for _, def := range defs {
			for _, p := range def.patterns {
				if p.MatchString(lower) {
					clusters[def.name] = append(clusters[def.name], keyword)
					assigned = true
					break
				}
			}
			if !assigned {
				for _, ck := range def.keywords {
					ckLower := strings.ToLower(ck)
					if strings.Contains(lower, ckLower) || strings.Contains(ckLower, lower) {
						clusters[def.name] = append(clusters[def.name], keyword)
						assigned = true
						break
					}
				}
			}
			if assigned {
				break
			}
		}

		if !assigned {
			unclustered = append(unclustered, keyword)
		}
	}

	if len(unclustered) > 0 {
		clusters[ClusterOther] = unclustered
	}
	return clusters
}

// PrimaryClusters selects the maxClusters largest clusters. The catch-all
// cluster is discounted to half weight so a semantic cluster of equal size
// always outranks it.
func PrimaryClusters(clusters map[string][]string, maxClusters int) map[string][]string {
	type scored struct {
		name  string
		score float64
	}

	ranked := make([]scored, 0, len(clusters))
	for name, keywords := range clusters {
		weight := 1.0
		if name == ClusterOther {
			weight = 0.5
		}
		ranked = append(ranked, scored{name: name, score: float64(len(keywords)) * weight})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > maxClusters {
		ranked = ranked[:maxClusters]
	}

	out := make(map[string][]string, len(ranked))
	for _, s := range ranked {
		out[s.name] = clusters[s.name]
	}
	return out
}
