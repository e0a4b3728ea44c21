package main

import (
	"os"
)

// main hands off to the cobra command tree. Wiring lives in app.go and the
// HTTP surface in router.go; business logic lives in internal packages.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
