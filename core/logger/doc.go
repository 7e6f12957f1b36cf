// Package logger records what the interpreter ran, one JSON object per line,
// so sessions can be summarized after the fact.
package logger
