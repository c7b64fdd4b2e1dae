package security

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMaxMessageLength bounds message size in code points.
const DefaultMaxMessageLength = 1000

// DefaultMaxSenderIDLength bounds sender identifiers.
const DefaultMaxSenderIDLength = 100

// dangerousPatterns is the denylist of markup and script injection shapes
// rejected by validation and stripped again by Sanitize as defense in depth.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)<iframe[^>]*>`),
	regexp.MustCompile(`(?i)eval\s*\(`),
	regexp.MustCompile(`(?i)document\.`),
	regexp.MustCompile(`(?i)window\.`),
}

var senderIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// nonLanguageChars matches everything a language code may not contain.
var nonLanguageChars = regexp.MustCompile(`[^a-zA-Z-]`)

// Message is a validated, sanitized message with its resolved language.
type Message struct {
	Text     string
	Language string
}

// Validator screens inbound chat messages before they reach the classifier.
type Validator struct {
	maxMessageLen  int
	maxSenderIDLen int
	defaultLang    string
	supported      map[string]bool
}

// NewValidator creates a Validator. supported must include defaultLang.
func NewValidator(maxMessageLen, maxSenderIDLen int, defaultLang string, supported []string) *Validator {
	if maxMessageLen <= 0 {
		maxMessageLen = DefaultMaxMessageLength
	}
	if maxSenderIDLen <= 0 {
		maxSenderIDLen = DefaultMaxSenderIDLength
	}
	set := make(map[string]bool, len(supported))
	for _, l := range supported {
		set[l] = true
	}
	return &Validator{
		maxMessageLen:  maxMessageLen,
		maxSenderIDLen: maxSenderIDLen,
		defaultLang:    defaultLang,
		supported:      set,
	}
}

// ValidateMessage applies the validation rules in order: presence, length,
// denylist, language normalization, sanitization. An invalid language is
// silently corrected to the default, never rejected.
func (v *Validator) ValidateMessage(text, language string) (Message, error) {
	if text == "" {
		return Message{}, &ValidationError{
			Kind:    KindMissingField,
			Message: "message is required",
		}
	}
	if utf8.RuneCountInString(text) > v.maxMessageLen {
		return Message{}, &ValidationError{
			Kind:    KindTooLong,
			Message: fmt.Sprintf("message too long, maximum %d characters allowed", v.maxMessageLen),
		}
	}
	for _, p := range dangerousPatterns {
		if p.MatchString(text) {
			return Message{}, &ValidationError{
				Kind:    KindUnsafeContent,
				Message: "message contains potentially harmful content",
			}
		}
	}

	return Message{
		Text:     v.sanitize(text),
		Language: v.NormalizeLanguage(language),
	}, nil
}

// ValidateSenderID checks a sender identifier: non-empty, bounded, and
// limited to letters, digits, underscore, and hyphen.
func (v *Validator) ValidateSenderID(id string) error {
	if id == "" {
		return &ValidationError{
			Kind:    KindMissingField,
			Message: "sender_id is required",
		}
	}
	if len(id) > v.maxSenderIDLen {
		return &ValidationError{
			Kind:    KindTooLong,
			Message: fmt.Sprintf("sender_id too long, maximum %d characters allowed", v.maxSenderIDLen),
		}
	}
	if !senderIDPattern.MatchString(id) {
		return &ValidationError{
			Kind:    KindUnsafeContent,
			Message: "sender_id may only contain letters, digits, underscore, and hyphen",
		}
	}
	return nil
}

// NormalizeLanguage lowercases a language code, strips everything outside
// letters and hyphen, caps it at 10 characters, and falls back to the
// default language when the remainder is not supported.
func (v *Validator) NormalizeLanguage(language string) string {
	cleaned := strings.ToLower(nonLanguageChars.ReplaceAllString(language, ""))
	if len(cleaned) > 10 {
		cleaned = cleaned[:10]
	}
	if !v.supported[cleaned] {
		return v.defaultLang
	}
	return cleaned
}

// Sanitize neutralizes text with the default maximum length. It is applied
// both to inbound content and to anything leaving the system, cached values
// included, and is idempotent so double application is harmless.
func Sanitize(text string) string {
	return sanitize(text, DefaultMaxMessageLength)
}

func (v *Validator) sanitize(text string) string {
	return sanitize(text, v.maxMessageLen)
}

// sanitize strips control characters, removes denylisted substrings until
// none remain, entity-escapes HTML-significant characters and the forward
// slash, truncates to maxLen code points without splitting an entity, and
// trims surrounding whitespace.
func sanitize(text string, maxLen int) string {
	text = stripControls(text)
	text = removeDangerous(text)
	text = escapeHTML(text)
	text = truncateEntitySafe(text, maxLen)
	return strings.TrimSpace(text)
}

// stripControls drops C0 control characters other than tab and newline,
// and DEL.
func stripControls(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\t' || r == '\n' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7F {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// removeDangerous strips denylist matches repeatedly: removing one match
// can splice a new one together, so it runs to a fixed point.
func removeDangerous(s string) string {
	for {
		out := s
		for _, p := range dangerousPatterns {
			out = p.ReplaceAllString(out, "")
		}
		if out == s {
			return out
		}
		s = out
	}
}

// entities the escaper emits; a leading & followed by one of these is
// already escaped and must not be escaped again.
var entityNames = []string{"amp;", "lt;", "gt;", "quot;", "#x27;", "#x2F;"}

// escapeHTML escapes & < > " ' and / to their entity forms. Existing
// entities pass through untouched, which makes the escape idempotent.
func escapeHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '&':
			if followsEntity(s[i+1:]) {
				b.WriteByte('&')
			} else {
				b.WriteString("&amp;")
			}
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#x27;")
		case '/':
			b.WriteString("&#x2F;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func followsEntity(rest string) bool {
	for _, name := range entityNames {
		if strings.HasPrefix(rest, name) {
			return true
		}
	}
	return false
}

// truncateEntitySafe cuts s to at most maxLen code points. If the cut lands
// inside an entity, the partial entity is dropped so a later sanitize pass
// sees no bare ampersand.
func truncateEntitySafe(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)[:maxLen]
	// The longest entity is 6 runes; a trailing '&' without its ';' means
	// the cut split one.
	for i := len(runes) - 1; i >= 0 && i >= len(runes)-6; i-- {
		if runes[i] == ';' {
			break
		}
		if runes[i] == '&' {
			runes = runes[:i]
			break
		}
	}
	return string(runes)
}
