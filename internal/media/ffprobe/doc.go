// Package ffprobe shells out to ffprobe and decodes the container and
// stream metadata the tracks command needs, most importantly the set of
// embedded subtitle streams with their language tags.
package ffprobe
