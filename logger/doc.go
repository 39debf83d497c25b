// Package logger provides structured logging built on zerolog.
//
// The client packages log through *Logger so applications embedding the
// library can control level, format, and destination in one place:
//
//	log := logger.New(logger.Config{Level: "debug", Format: "console"}, "viking")
//
// Use Nop() to silence the library entirely.
package logger
