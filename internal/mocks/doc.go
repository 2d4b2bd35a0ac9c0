// Package mocks provides shared test doubles for the application's core
// interfaces. Mocks use function fields so individual tests can script
// behavior without defining new types.
package mocks
