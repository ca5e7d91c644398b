// Package logging gates the tool's DEBUG output behind the -v flag. INFO
// and ERROR lines go through stdlib log directly and are always printed.
package logging

import "log"

var verbose bool

// SetVerbose enables or disables DEBUG output. Called once at startup.
func SetVerbose(v bool) {
	verbose = v
}

// Debugf logs a DEBUG-prefixed message when verbose mode is on.
func Debugf(format string, args ...interface{}) {
	if !verbose {
		return
	}
	log.Printf("DEBUG: "+format, args...)
}
