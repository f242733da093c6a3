// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// gt shells out to the git CLI rather than using a Go git library. This
// approach is simpler, more reliable, and ensures compatibility with user
// configurations (SSH keys, credential helpers, global git config).
//
// Two execution modes exist:
//
//   - [AttachContext]: the child inherits the caller's standard streams.
//     Used for pass-through aliases where git's own output is the result.
//   - [OutputContext]: stdout is captured and returned, stderr is captured
//     and folded into the returned error. Used when gt post-processes the
//     output (branch numbering, log truncation).
//
// Both honor context cancellation and echo the command line through the
// context logger when verbose mode is enabled.
package cmd
