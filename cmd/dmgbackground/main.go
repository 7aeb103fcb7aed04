package main

import (
	"os"

	"github.com/ds124wfegd/dmg-background/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], app.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}))
}
