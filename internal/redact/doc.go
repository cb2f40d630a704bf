// Package redact rewrites subtitle dialogue so selected words are hidden
// behind underscore runs of equal length.
//
// Two policies exist: WordListPolicy hides specific words loaded from a
// line-oriented file, RandomPolicy hides each word independently with a
// configurable keep probability. Both leave lines that open with a style
// block (a leading '{') untouched, since those carry formatting rather
// than dialogue. Policies compile their matching state once and can be
// applied to any number of lines.
package redact
