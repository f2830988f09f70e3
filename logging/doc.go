// Package logging builds the zerolog loggers used by the engine and the CLI.
package logging
