// Package fetch is the HTTP boundary of the sticker pipeline: it turns
// source URLs into byte buffers with a bounded timeout and no retries.
// The pipeline core itself never performs network I/O.
package fetch
