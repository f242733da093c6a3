// Package prompt provides interactive terminal prompts.
//
// Prompts render on stderr so that stdout stays clean for data output.
package prompt
