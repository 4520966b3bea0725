package utils

import (
	"runtime"
	"strings"
)

// GetCallerFunctionName retrieves the name of the calling function without its package
// path, keeping the receiver: "(*productConsole).Submit".
// skip determines how many stack frames to ascend.
func GetCallerFunctionName(skip int) string {
	pc := make([]uintptr, 1)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return "<unknown>"
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	if frame.Function == "" {
		return "<unknown>"
	}
	return ShortFunctionName(frame.Function)
}

// ShortFunctionName trims the import path and package name off a fully qualified function name.
func ShortFunctionName(full string) string {
	name := full
	if i := strings.LastIndexByte(name, '/'); i != -1 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}
	return name
}
