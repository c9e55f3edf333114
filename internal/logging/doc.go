// Package logging builds the zerolog loggers used by jable.
//
// Loggers write to stderr or to a file, in console or JSON format. Each
// presentation session is tagged with a ULID session ID so that log lines from
// one interactive run can be correlated.
package logging
