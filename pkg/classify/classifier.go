// Package classify maps normalized chat messages to health topics and
// selects the prewritten advice text for a topic and language.
package classify

import (
	"strings"

	"github.com/ama-arogya/arogya/pkg/text"
)

// GeneralTopic is the topic reported when no keyword matches.
const GeneralTopic = "general"

// defaultLanguage is the language every topic is guaranteed to have text in.
const defaultLanguage = "en"

// Topic pairs a topic name with the keywords that select it. Keywords mix
// English, Hindi, Odia, and common romanized spellings.
type Topic struct {
	Name     string
	Keywords []string
}

// topics is matched in declaration order; the first topic with any keyword
// occurring as a substring of the normalized message wins. Keep keywords
// specific to their topic: a generic word here shadows every later topic.
var topics = []Topic{
	{Name: "fever", Keywords: []string{
		"fever", "ज्वर", "बुखार", "ଜ୍ବର", "jwor", "bukhar", "temperature",
	}},
	{Name: "headache", Keywords: []string{
		"headache", "सिरदर्द", "ମାଥା ବଥା", "migraine", "head pain", "matha",
	}},
	{Name: "cough", Keywords: []string{
		"cough", "खांसी", "କାଶ", "khansi", "kash", "throat",
	}},
	{Name: "stomach_pain", Keywords: []string{
		"stomach", "पेट", "ପେଟ", "pet dard", "abdomen", "belly",
	}},
	{Name: "pregnancy", Keywords: []string{
		"pregnancy", "pregnant", "गर्भावस्था", "ଗର୍ଭାବସ୍ଥା", "garbha", "maternal",
	}},
	{Name: "vaccination", Keywords: []string{
		"vaccination", "vaccine", "टीका", "ଟୀକା", "tika", "immunization",
	}},
}

// Classifier matches messages against the topic table.
type Classifier struct {
	norm *text.Normalizer
}

// New creates a Classifier that normalizes input through norm before matching.
func New(norm *text.Normalizer) *Classifier {
	return &Classifier{norm: norm}
}

// Classify returns the first topic whose keyword set matches the already
// normalized message, or ok=false when nothing matches.
func (c *Classifier) Classify(normalized string) (string, bool) {
	if normalized == "" {
		return "", false
	}
	for _, t := range topics {
		for _, kw := range t.Keywords {
			if strings.Contains(normalized, kw) {
				return t.Name, true
			}
		}
	}
	return "", false
}

// Respond returns the prewritten text for a topic in the requested language.
// A topic without text in that language falls back to its English text; an
// unknown topic gets the general response.
func (c *Classifier) Respond(topic, language string) string {
	table, ok := responses[topic]
	if !ok {
		table = responses[GeneralTopic]
	}
	if text, ok := table[language]; ok {
		return text
	}
	return table[defaultLanguage]
}

// GenerateResponse normalizes message, classifies it, and returns the
// response text with the winning topic name. Unmatched messages get the
// general response and the general topic.
func (c *Classifier) GenerateResponse(message, language string) (string, string) {
	topic, ok := c.Classify(c.norm.Normalize(message))
	if !ok {
		topic = GeneralTopic
	}
	return c.Respond(topic, language), topic
}

// Topics returns the topic names in match order.
func Topics() []string {
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names
}
