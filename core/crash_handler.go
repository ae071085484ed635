package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// HandleCrash is the unified panic handler that prints the stack trace
// before exiting. Drivers may install a terminal restore hook first.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if hook := crashHook; hook != nil {
		hook()
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\nCRASH DETECTED: %v\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()
	os.Exit(1)
}

var crashHook func()

// SetCrashHook registers a cleanup function (e.g. terminal reset) that runs
// before the stack trace is printed. Last registration wins.
func SetCrashHook(fn func()) {
	crashHook = fn
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
