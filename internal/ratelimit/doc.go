// Package ratelimit implements a per-client sliding window admission check
// for the generation endpoint. State is in-memory and process-local: a
// placeholder for a distributed counter store, good enough as a best-effort
// abuse guard but not a security boundary.
package ratelimit
