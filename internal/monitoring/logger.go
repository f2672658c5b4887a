// Package monitoring holds the diagnostic logger shared by the datagen packages.
package monitoring

import "log"

// Logf reports file writes and preview rendering. It defaults to log.Printf;
// the CLI swaps it out for -quiet and tests capture or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Capture redirects Logf into a slice until the returned restore func is
// called. The slice receives the raw format strings.
func Capture() (lines *[]string, restore func()) {
	prev := Logf
	var got []string
	Logf = func(format string, v ...interface{}) {
		got = append(got, format)
	}
	return &got, func() { Logf = prev }
}
