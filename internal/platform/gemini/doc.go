// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It owns the provider-specific concerns: prompt
// construction, text extraction from candidate parts, and the ordered
// multi-model fallback policy.
package gemini
