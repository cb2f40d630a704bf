// Package language maps between ISO 639 language codes, full language
// names, and the metadata tags ffmpeg-family tools attach to subtitle
// streams. It only serves display and stream-tag lookup; the codes a user
// passes to the merge command are used verbatim for extraction and cache
// naming.
package language
