package openai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/audiencelab/intentforge/ai"
)

// writerSystemPrompt anchors every request: exact output format, keyphrase
// grounding, and the two-sentence description structure.
const writerSystemPrompt = `You are an expert marketer and intent classification specialist. Follow the exact format requested in the prompt. Be specific and concise. Focus on creating audience segments for targeting prospects, not describing the audience itself.

CRITICAL: When generating descriptions, you MUST use specific keyphrases from the EXTRACTED KEYPHRASES list provided in the content analysis. Do not create generic descriptions - use the exact extracted keyphrases to ensure accuracy and specificity.

DESCRIPTION FORMAT: Start with "This intent represents interest in..." and focus on the technical/business aspects, not marketing language. The second sentence should start with "It encompasses..." and list specific implementation details, methodologies, and capabilities mentioned in the extracted keyphrases.

STRUCTURE:
- First sentence: Explain WHAT it's used for and WHERE/WHY (can be longer)
- Second sentence: Explain HOW it's implemented with specific technical/business details (can be longer)

MANDATORY: You MUST include at least 3-4 specific keyphrases from the EXTRACTED KEYPHRASES list in your description. Do not paraphrase or generalize - use the exact keyphrases as they appear in the list.

IMPORTANT NAME FORMATTING: Generate names that are readable and properly formatted with spaces between words. Avoid camelCase or concatenated words. Use natural language formatting like "Roofing System Installation" instead of "RoofingSystemInstallationAndRepairIntent".`

const writerPreamble = "You are an expert marketer creating an audience using intent to target prospects."

// validationRules mirrors the description validator in the describe package;
// stating them up front saves repair round-trips.
const validationRules = `VALIDATION RULES - Follow these exactly:

1. SOMETHING TO FIND: Ensure the topic has sufficient search volume. If too specific/obscure, broaden it.

2. NO AUDIENCE DETAILS: Do NOT include anything about who might use/buy the service. Focus ONLY on the product/service itself.

3. NO BUSINESS MODEL: Do NOT include pricing, quality descriptors, business models, or meta information.

4. CONCISE: Keep to 2-3 sentences maximum. Remove unnecessary words.

5. NO EXPLANATION: Do NOT explain intent, targeting, or classification. Focus only on the subject matter.

BAD EXAMPLES:
- "Users seeking email deliverability solutions for their marketing campaigns" (audience focus)
- "Premium email deliverability services for enterprise customers" (business model)
- "This intent captures users researching email deliverability to improve their sender reputation" (explanation)

GOOD EXAMPLES:
- "Email deliverability solutions and inbox placement optimization"
- "SPF, DKIM, and DMARC authentication for email delivery"
- "Email deliverability testing and reputation monitoring"`

const responseFormat = `Return Data in the following format:
NAME1 : RECOMMENDED NAME
NAME2 : RECOMMENDED NAME
NAME3 : RECOMMENDED NAME
DESCRIPTION: RECOMMENDED DESCRIPTION`

// readableNamesHint is used by the topic-style prompts (service and the
// generic fallback), which have no brand/product name to disambiguate.
const readableNamesHint = `Use the related information to recommend three improved names that will be used by a large language classification model to analyze intent using urls and domain traffic. IMPORTANT: Generate names that are readable and properly formatted with spaces between words (e.g., "Roofing System Installation" not "RoofingSystemInstallationAndRepairIntent").`

const descriptionInstruction = `Recommend a two sentence description %s. IMPORTANT: Use specific keyphrases from the EXTRACTED KEYPHRASES list in your description. Start with "This intent represents interest in..." and focus on technical/business aspects, not marketing language. The second sentence should start with "It encompasses..." and list specific implementation details. Make descriptions comprehensive and detailed - include specific implementation details, methodologies, and technical capabilities. Do not include details about the audience.`

// combinedTextLimit bounds how much raw document text is quoted in the
// subject header of the entity-style prompts.
const combinedTextLimit = 500

// buildWriterPrompt assembles the lens-specific user prompt from the
// request's topic, taxonomy context, and mined evidence.
func buildWriterPrompt(req *ai.IntentRequest) string {
	var header, nameInstruction, descTail string

	switch req.Lens {
	case ai.LensService:
		header = fmt.Sprintf("Here's an intent topic, and description.\n\nTopic: %s\nCategory: %s\nSubCategory: %s",
			req.Topic, req.Category, req.Subcategory)
		nameInstruction = readableNamesHint
		descTail = "of the service using related LSI keywords and SEO best practices specific to the service"
	case ai.LensBrand:
		header = entityHeader("intent brand", "Brand", req)
		nameInstruction = entityNameInstruction("brand")
		descTail = "of the intent using related LSI keywords and SEO best practices that uniquely identify that brand"
	case ai.LensEvent:
		header = entityHeader("event you'd like to track intent for", "Event", req)
		nameInstruction = entityNameInstruction("event")
		descTail = "of the intent using related LSI keywords and SEO best practices that are specific to the event"
	case ai.LensProduct:
		header = entityHeader("intent product", "Product", req)
		nameInstruction = entityNameInstruction("product")
		descTail = "of the intent using related LSI keywords and SEO best practices for that product"
	case ai.LensSolution:
		header = entityHeader("intent solution", "Solution", req)
		nameInstruction = entityNameInstruction("solution")
		descTail = "of the intent using related LSI keywords and SEO best practices specific to the solution"
	case ai.LensFunction:
		header = fmt.Sprintf("Here's an intent of a technical concept or function, and a description of the desired user intent.\nTechnical Concept/Function: %s\nDescription of Intent: %s...",
			req.Topic, truncate(req.CombinedText, combinedTextLimit))
		nameInstruction = `Use the related information to recommend three improved names that will be used by a large language classification model to analyze intent using URLs and domain traffic. Include enough keywords in the name to specify a particular intent related to this concept, distinguishing it from other contexts or applications of the same function (e.g., distinguishing "SSL certificate providers" from "SSL implementation tutorials").`
		descTail = "of the intent using related LSI keywords and SEO best practices specific to this technical concept"
	default:
		header = fmt.Sprintf("Here's an intent topic, and description.\n\nTopic: %s\nLens: %s\nCategory/SubCategory: %s / %s",
			req.Topic, req.Lens, req.Category, req.Subcategory)
		nameInstruction = readableNamesHint
		descTail = "using related LSI keywords and SEO best practices specific to the topic"
	}

	return strings.Join([]string{
		writerPreamble,
		header,
		contentContext(req),
		nameInstruction + "\n" + fmt.Sprintf(descriptionInstruction, descTail),
		validationRules,
		responseFormat,
	}, "\n\n")
}

// entityHeader introduces a named entity (brand, product, ...) along with a
// sample of the raw document text describing it.
func entityHeader(intro, label string, req *ai.IntentRequest) string {
	return fmt.Sprintf("Here's an %s, and description.\n%s: %s\n%s Description: %s...",
		intro, label, req.Topic, label, truncate(req.CombinedText, combinedTextLimit))
}

func entityNameInstruction(kind string) string {
	return fmt.Sprintf("Use the related information to recommend three improved names that will be used by a large language classification model to analyze intent using urls and domain traffic. Include enough keywords in the name to uniquely identify that %s compared to other common uses of the words in the %s name.", kind, kind)
}

// contentContext summarizes the mined evidence the model must ground its
// names and description on.
func contentContext(req *ai.IntentRequest) string {
	var b strings.Builder
	b.WriteString("CONTENT ANALYSIS:\n")
	fmt.Fprintf(&b, "- Documents analyzed: %d\n", req.TotalDocs)
	fmt.Fprintf(&b, "- Total text length: %d characters\n", req.TotalTextLength)
	fmt.Fprintf(&b, "- Seed keywords: %s\n", strings.Join(req.Seeds, ", "))
	fmt.Fprintf(&b, "- EXTRACTED KEYPHRASES: %s\n", strings.Join(head(req.Keyphrases, 15), ", "))
	fmt.Fprintf(&b, "- Top frequency terms: %s\n", strings.Join(head(req.TopTerms, 10), ", "))
	fmt.Fprintf(&b, "- Top frequency phrases: %s\n", strings.Join(head(req.TopPhrases, 8), ", "))
	fmt.Fprintf(&b, "- Most frequent terms: %s\n", strings.Join(mostFrequent(req.TermFrequencies, 8), ", "))
	fmt.Fprintf(&b, "- Most frequent phrases: %s", strings.Join(mostFrequent(req.PhraseFrequencies, 5), ", "))
	return b.String()
}

// mostFrequent returns the n highest-count keys, ties broken
// lexicographically for deterministic prompts.
func mostFrequent(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return head(keys, n)
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
