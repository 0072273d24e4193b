// Package prompt implements the interactive question engine: it renders a
// question, reads one line, retries until the answer is accepted, and
// replaces the transient input line with a permanent confirmation line.
// It has no knowledge of what the answers are used for.
package prompt
