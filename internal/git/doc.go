// Package git runs git operations via the external git CLI.
//
// All operations use [os/exec] through the internal cmd package rather
// than a Go git library, so user configuration (SSH keys, credential
// helpers, aliases) keeps working exactly as it does on the command line.
//
// gt performs no validation of its own: it does not check whether the
// working directory is a repository, and git's error messages and exit
// codes pass through to the caller unmodified.
package git
