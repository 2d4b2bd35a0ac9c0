// Package domain defines the core business entities of the blog generation
// pipeline and the rules that keep them valid, independent of storage,
// transport, or LLM provider details.
package domain
