package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// ContainsString returns true if targetString is one of sliceOfStrings. The comparison ignores case
// and surrounding spaces, since every value we look up comes from user input.
func ContainsString(targetString string, sliceOfStrings []string) bool {
	return IndexOfString(targetString, sliceOfStrings) >= 0
}

// IndexOfString returns the position of targetString in sliceOfStrings or -1 if it is not there
func IndexOfString(targetString string, sliceOfStrings []string) int {
	target := Normalize(targetString)
	for i := range sliceOfStrings {
		if Normalize(sliceOfStrings[i]) == target {
			return i
		}
	}
	return -1
}

// Normalize lower-cases the value and trims spaces
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
