package main

import (
	"os"

	"github.com/jobvista/jobvista/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
