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

// DomainGeneral is returned when no vertical produces any detection hit.
const DomainGeneral = "general"

// vertical pairs a label with its detection patterns and, where available,
// the extraction patterns used for domain-specific keyphrase matching.
// Registration order is the tie-break: the first vertical reaching the
// maximum hit count wins.
type vertical struct {
	label      string
	detection  []*regexp.Regexp
	extraction []*regexp.Regexp
}

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

var verticals = []vertical{
	{
		label: "email_deliverability",
		detection: compileAll([]string{
			`\b(email|mail)\s+(deliverability|delivery|inbox|spam)\b`,
			`\b(sender|domain|ip)\s+reputation\b`,
			`\b(spf|dkim|dmarc)\b`,
			`\b(bounce|open|click)\s+rate\b`,
		}),
		extraction: compileAll([]string{
			`\b(email|mail)\s+(deliverability|delivery|inbox|spam|reputation)\b`,
			`\b(sender|domain|ip)\s+(reputation|authentication|verification)\b`,
			`\b(spf|dkim|dmarc|authentication|verification)\b`,
			`\b(inbox|spam|folder|placement|delivery)\s+(rate|score|test)\b`,
			`\b(email|mail)\s+(service|provider|tool|platform)\b`,
			`\b(cold|bulk|mass)\s+(email|mail)\b`,
			`\b(email|mail)\s+(campaign|marketing|automation)\b`,
			`\b(bounce|bounced|bouncing)\s+(rate|rates|email|emails)\b`,
			`\b(open|opened|opening)\s+(rate|rates|email|emails)\b`,
			`\b(click|clicked|clicking)\s+(rate|rates|through|throughs)\b`,
			`\b(unsubscribe|unsubscribed|unsubscribing)\s+(rate|rates)\b`,
			`\b(spam|junk)\s+(filter|filters|folder|folders)\b`,
			`\b(blacklist|whitelist|greylist)\b`,
			`\b(mailbox|mailboxes)\s+(provider|providers)\b`,
			`\b(postmaster|postmasters)\s+(tool|tools)\b`,
			`\b(authentication|authenticated|authenticating)\s+(protocol|protocols)\b`,
			`\b(verification|verified|verifying)\s+(process|processes)\b`,
			`\b(encryption|encrypted|encrypting)\s+(email|emails)\b`,
			`\b(ssl|tls)\s+(certificate|certificates)\b`,
			`\b(delivery|delivered|delivering)\s+(rate|rates|status)\b`,
			`\b(reputation|reputations)\s+(score|scores|monitoring)\b`,
			`\b(engagement|engaged|engaging)\s+(rate|rates|metrics)\b`,
			`\b(performance|performing)\s+(metrics|monitoring)\b`,
		}),
	},
	{
		label: "seo_marketing",
		detection: compileAll([]string{
			`\b(seo|search\s+engine)\s+(optimization|ranking)\b`,
			`\b(keyword|backlink|link\s+building)\b`,
			`\b(google|bing|yahoo)\s+(ranking|algorithm)\b`,
			`\b(page\s+rank|domain\s+authority)\b`,
		}),
		extraction: compileAll([]string{
			`\b(seo|search\s+engine)\s+(optimization|ranking|performance)\b`,
			`\b(keyword|keywords)\s+(research|optimization|ranking)\b`,
			`\b(backlink|backlinks|link\s+building)\b`,
			`\b(on-page|off-page)\s+(seo|optimization)\b`,
			`\b(technical|local|mobile)\s+(seo|optimization)\b`,
			`\b(google|bing|yahoo)\s+(ranking|algorithm|update)\b`,
			`\b(page\s+rank|domain\s+authority|page\s+authority)\b`,
			`\b(core\s+web\s+vitals|page\s+speed|mobile\s+friendly)\b`,
			`\b(long-tail|short-tail)\s+(keyword|keywords)\b`,
			`\b(content|content\s+marketing)\s+(optimization|strategy)\b`,
			`\b(meta|title|description)\s+(tag|tags|optimization)\b`,
			`\b(schema|structured\s+data|rich\s+snippets)\b`,
		}),
	},
	{
		label: "social_media",
		detection: compileAll([]string{
			`\b(social\s+media|facebook|instagram|twitter|linkedin)\s+(marketing|management)\b`,
			`\b(engagement|follower|post|content)\s+(rate|growth|strategy)\b`,
			`\b(influencer|viral|trending)\b`,
		}),
		extraction: compileAll([]string{
			`\b(facebook|instagram|twitter|linkedin|tiktok|youtube)\s+(marketing|management|strategy)\b`,
			`\b(social\s+media|social)\s+(marketing|management|strategy|platform)\b`,
			`\b(engagement|follower|post|content)\s+(rate|growth|strategy|optimization)\b`,
			`\b(like|share|comment|retweet)\s+(rate|engagement)\b`,
			`\b(reach|impression|visibility)\s+(optimization|strategy)\b`,
			`\b(content|post|story|reel)\s+(creation|scheduling|automation)\b`,
			`\b(influencer|viral|trending)\s+(marketing|campaign)\b`,
			`\b(social\s+media|social)\s+(advertising|ads|campaign)\b`,
			`\b(social\s+media|social)\s+(analytics|monitoring|tracking)\b`,
			`\b(sentiment|brand|reputation)\s+(analysis|monitoring)\b`,
		}),
	},
	{
		label: "ecommerce",
		detection: compileAll([]string{
			`\b(ecommerce|online\s+store|shopify|woocommerce)\b`,
			`\b(payment|checkout|cart|inventory)\s+(system|platform)\b`,
			`\b(product|catalog|pricing)\s+(management|optimization)\b`,
		}),
		extraction: compileAll([]string{
			`\b(ecommerce|online\s+store|shopify|woocommerce|magento)\s+(platform|solution)\b`,
			`\b(payment|checkout|cart)\s+(system|platform|gateway)\b`,
			`\b(inventory|product|catalog)\s+(management|system|platform)\b`,
			`\b(conversion|sales|revenue)\s+(optimization|tracking|analytics)\b`,
			`\b(cart|checkout|abandonment)\s+(recovery|optimization)\b`,
			`\b(product|pricing)\s+(optimization|strategy)\b`,
			`\b(customer|user)\s+(experience|journey|satisfaction)\b`,
			`\b(review|rating|feedback)\s+(management|system)\b`,
			`\b(shipping|delivery|fulfillment)\s+(management|optimization)\b`,
		}),
	},
	{
		label: "crm_sales",
		detection: compileAll([]string{
			`\b(crm|customer\s+relationship)\s+(management|system|platform)\b`,
			`\b(sales|lead|prospect)\s+(management|tracking|automation)\b`,
			`\b(pipeline|funnel|conversion)\s+(management|optimization)\b`,
		}),
		extraction: compileAll([]string{
			`\b(crm|customer\s+relationship)\s+(management|system|platform|software)\b`,
			`\b(sales|lead|prospect)\s+(management|tracking|automation|pipeline)\b`,
			`\b(contact|customer|client)\s+(management|database|tracking)\b`,
			`\b(pipeline|funnel|conversion)\s+(management|optimization|tracking)\b`,
			`\b(lead|prospect|opportunity)\s+(scoring|qualification|nurturing)\b`,
			`\b(sales|revenue)\s+(forecasting|analytics|reporting)\b`,
			`\b(sales|marketing)\s+(automation|workflow|process)\b`,
			`\b(email|campaign)\s+(automation|sequence|drip)\b`,
			`\b(task|activity|follow-up)\s+(automation|reminder)\b`,
		}),
	},
	{
		label: "analytics_data",
		detection: compileAll([]string{
			`\b(analytics|data|business\s+intelligence)\s+(platform|tool|dashboard)\b`,
			`\b(reporting|metrics|kpi|dashboard)\s+(tool|platform)\b`,
			`\b(big\s+data|machine\s+learning|ai)\s+(platform|solution)\b`,
		}),
		extraction: compileAll([]string{
			`\b(analytics|data|business\s+intelligence)\s+(platform|tool|dashboard|solution)\b`,
			`\b(reporting|metrics|kpi|dashboard)\s+(tool|platform|system)\b`,
			`\b(data|business)\s+(visualization|dashboard|reporting)\b`,
			`\b(big\s+data|machine\s+learning|ai|artificial\s+intelligence)\s+(platform|solution|tool)\b`,
			`\b(data|database)\s+(warehouse|lake|mining|analysis)\b`,
			`\b(real-time|realtime)\s+(analytics|monitoring|tracking)\b`,
			`\b(performance|business|operational)\s+(metrics|kpis|analytics)\b`,
			`\b(predictive|prescriptive|descriptive)\s+(analytics|analysis)\b`,
		}),
	},
	{
		label: "cybersecurity",
		detection: compileAll([]string{
			`\b(cybersecurity|security|threat|vulnerability)\s+(management|platform|tool)\b`,
			`\b(firewall|antivirus|malware|phishing)\s+(protection|detection)\b`,
			`\b(compliance|gdpr|hipaa|sox)\s+(compliance|management)\b`,
		}),
		extraction: compileAll([]string{
			`\b(cybersecurity|security|threat|vulnerability)\s+(management|platform|tool|solution)\b`,
			`\b(firewall|antivirus|malware|phishing)\s+(protection|detection|prevention)\b`,
			`\b(security|cyber)\s+(monitoring|incident|response)\b`,
			`\b(compliance|gdpr|hipaa|sox|pci)\s+(compliance|management|monitoring)\b`,
			`\b(security|cyber)\s+(policy|governance|risk)\s+(management)\b`,
			`\b(identity|access)\s+(management|authentication|authorization)\b`,
			`\b(threat|intrusion|anomaly)\s+(detection|prevention|response)\b`,
			`\b(security|cyber)\s+(audit|assessment|testing)\b`,
		}),
	},
	{
		label: "project_management",
		detection: compileAll([]string{
			`\b(project\s+management|task|workflow)\s+(tool|platform|software)\b`,
			`\b(agile|scrum|kanban)\s+(management|tool|platform)\b`,
			`\b(collaboration|team|communication)\s+(tool|platform)\b`,
		}),
		extraction: compileAll([]string{
			`\b(project\s+management|task|workflow)\s+(tool|platform|software|system)\b`,
			`\b(agile|scrum|kanban)\s+(management|tool|platform|methodology)\b`,
			`\b(collaboration|team|communication)\s+(tool|platform|software)\b`,
			`\b(project|task)\s+(planning|scheduling|tracking|monitoring)\b`,
			`\b(resource|time|budget)\s+(management|tracking|allocation)\b`,
			`\b(risk|issue|change)\s+(management|tracking|monitoring)\b`,
			`\b(team|collaboration|communication)\s+(management|platform|tool)\b`,
			`\b(document|file)\s+(management|sharing|collaboration)\b`,
		}),
	},
	{
		label: "hr_recruitment",
		detection: compileAll([]string{
			`\b(hr|human\s+resources|recruitment|hiring)\s+(software|platform|tool)\b`,
			`\b(applicant|candidate|resume)\s+(tracking|management|screening)\b`,
			`\b(employee|performance|payroll)\s+(management|system)\b`,
		}),
		extraction: compileAll([]string{
			`\b(hr|human\s+resources|recruitment|hiring)\s+(software|platform|tool|system)\b`,
			`\b(applicant|candidate|resume)\s+(tracking|management|screening|system)\b`,
			`\b(employee|performance|payroll)\s+(management|system|platform)\b`,
			`\b(job|position|vacancy)\s+(posting|management|tracking)\b`,
			`\b(interview|screening|assessment)\s+(management|scheduling|tracking)\b`,
			`\b(onboarding|offboarding)\s+(process|management|automation)\b`,
			`\b(performance|appraisal|review)\s+(management|tracking|system)\b`,
			`\b(attendance|time|leave)\s+(management|tracking|system)\b`,
			`\b(compensation|benefits|payroll)\s+(management|system)\b`,
		}),
	},
	{
		label: "accounting_finance",
		detection: compileAll([]string{
			`\b(accounting|bookkeeping|financial)\s+(software|platform|tool)\b`,
			`\b(invoice|expense|budget)\s+(management|tracking|automation)\b`,
			`\b(tax|compliance|audit)\s+(software|platform)\b`,
		}),
		extraction: compileAll([]string{
			`\b(accounting|bookkeeping|financial)\s+(software|platform|tool|system)\b`,
			`\b(invoice|expense|budget)\s+(management|tracking|automation|system)\b`,
			`\b(tax|compliance|audit)\s+(software|platform|management)\b`,
			`\b(financial|accounting)\s+(reporting|analysis|planning)\b`,
			`\b(cash|revenue|expense)\s+(flow|management|tracking)\b`,
			`\b(budget|forecasting|planning)\s+(management|tool|system)\b`,
			`\b(gaap|ifrs|tax)\s+(compliance|reporting|management)\b`,
			`\b(financial|accounting)\s+(audit|reconciliation|close)\b`,
		}),
	},
	{
		// Detection-only vertical: no dedicated extraction pattern set exists,
		// so keyphrase extraction falls back to the generic strategies.
		label: "legal_social_services",
		detection: compileAll([]string{
			`\b(legal|law|attorney|lawyer)\s+(services|assistance|representation|support)\b`,
			`\b(social\s+security|ssi|ssdi)\s+(disability|benefits|assistance)\b`,
			`\b(disability|disabilities)\s+(benefits|assistance|representation|legal)\b`,
			`\b(government|public)\s+(benefits|assistance|services)\b`,
			`\b(appeal|appeals)\s+(process|hearing|representation)\b`,
			`\b(administrative|law)\s+(judge|hearing|process)\b`,
			`\b(medical|health)\s+(evidence|records|documentation)\b`,
			`\b(legal\s+aid|pro\s+bono)\s+(services|assistance)\b`,
			`\b(civil|legal)\s+(rights|services|assistance)\b`,
			`\b(income|financial)\s+(assistance|support|benefits)\b`,
		}),
	},
}

// DetectDomain scores the combined seed keywords and text content against
// every registered vertical's detection patterns and returns the label with
// the most total pattern hits. Ties resolve to the earlier registered
// vertical; zero hits everywhere yields DomainGeneral.
func DetectDomain(seeds []string, textContent string) string {
	combined := strings.Join(seeds, " ") + " " + strings.ToLower(textContent)

	best := DomainGeneral
	bestScore := 0
	for _, v := range verticals {
		score := 0
		for _, p := range v.detection {
			score += len(p.FindAllString(combined, -1))
		}
		if score > bestScore {
			best = v.label
			bestScore = score
		}
	}
	return best
}

// DomainPatterns returns the extraction patterns registered for the label,
// or nil when the vertical is unknown or detection-only.
func DomainPatterns(label string) []*regexp.Regexp {
	for _, v := range verticals {
		if v.label == label {
			return v.extraction
		}
	}
	return nil
}

// Domains returns all registered vertical labels in registration order.
func Domains() []string {
	out := make([]string, 0, len(verticals))
	for _, v := range verticals {
		out = append(out, v.label)
	}
	return out
}
