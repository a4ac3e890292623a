// Package logging provides structured logging for the wikied client.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the client. Because the editor draws the whole
// terminal, logging is silent by default and must be opted into with the
// WIKIED_LOG_LEVEL environment variable; output goes to stderr so it can be
// redirected away from the UI.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (fetches, editor transitions)
//   - Info: Normal operations (save attempts, outcomes)
//   - Warn: Non-fatal issues (failed saves, login walls)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("save completed",
//	    zap.String("outcome", "saved"),
//	    zap.String("article", "rabbit-hole@r5"),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
