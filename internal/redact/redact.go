package redact

import (
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// tokenPattern splits running dialogue into word tokens: an optional
// escaped control marker (a backslash plus one word character, e.g. the
// \N line break) followed by a run of word characters with apostrophes
// allowed inside. Unicode letter and number classes stand in for \w so
// accented words tokenize whole. The marker is preserved verbatim when
// the token it precedes is hidden.
var tokenPattern = regexp.MustCompile(`(\\[\p{L}\p{N}_])?([\p{L}\p{N}_](?:['\p{L}\p{N}_]*[\p{L}\p{N}_])?)`)

// shouldRedact reports whether text is dialogue. Lines that open with a
// style block are control data and pass through unmodified.
func shouldRedact(text string) bool {
	return !strings.HasPrefix(text, "{")
}

func underscores(word string) string {
	return strings.Repeat("_", utf8.RuneCountInString(word))
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wholeWord reports whether the match at [start,end) stands alone, with
// no word rune directly before or after it.
func wholeWord(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

// WordListPolicy hides whole-word, case-insensitive occurrences of a
// fixed set of words.
type WordListPolicy struct {
	pattern *regexp.Regexp
}

// NewWordListPolicy builds a policy from the given words. Words are
// matched literally (regex metacharacters carry no meaning) and only as
// whole words, so a listed "cat" never touches "concatenate". Longer
// words take precedence when one listed word prefixes another. An empty
// list yields a policy that changes nothing.
func NewWordListPolicy(words []string) *WordListPolicy {
	escaped := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		escaped = append(escaped, regexp.QuoteMeta(word))
	}
	if len(escaped) == 0 {
		return &WordListPolicy{}
	}
	sort.SliceStable(escaped, func(i, j int) bool {
		return len(escaped[i]) > len(escaped[j])
	})
	pattern := regexp.MustCompile(`(?i)(` + strings.Join(escaped, "|") + `)`)
	return &WordListPolicy{pattern: pattern}
}

// Apply returns text with every listed word replaced by an underscore
// run of the same length. Word boundaries are checked rune by rune
// rather than with the pattern's own \b, which only understands ASCII.
func (p *WordListPolicy) Apply(text string) string {
	if p.pattern == nil || !shouldRedact(text) {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range p.pattern.FindAllStringIndex(text, -1) {
		if !wholeWord(text, m[0], m[1]) {
			continue
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(underscores(text[m[0]:m[1]]))
		last = m[1]
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// RandomPolicy hides each word token independently, keeping it with
// probability keepRatio.
type RandomPolicy struct {
	keepRatio float64
	rng       *rand.Rand
}

// NewRandomPolicy builds a policy that keeps each word with probability
// keepRatio in [0,1]. The random source is injected so callers can seed
// it; a nil rng falls back to a time-seeded source.
func NewRandomPolicy(keepRatio float64, rng *rand.Rand) *RandomPolicy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomPolicy{keepRatio: keepRatio, rng: rng}
}

// Apply returns text with a fresh independent draw per word token. Escaped
// control markers attached to a token survive even when the token is
// hidden.
func (p *RandomPolicy) Apply(text string) string {
	if !shouldRedact(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:m[0]])
		if m[2] >= 0 {
			b.WriteString(text[m[2]:m[3]])
		}
		word := text[m[4]:m[5]]
		if p.rng.Float64() > p.keepRatio {
			b.WriteString(underscores(word))
		} else {
			b.WriteString(word)
		}
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
