// Package logging provides concrete implementations of the
// scormpack.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to stderr
//   - NullLogger: discards all messages (default for library use)
//
// All logger implementations are safe for concurrent use by multiple
// goroutines.
package logging
