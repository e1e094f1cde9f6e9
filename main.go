package main

import (
	"os"

	"foodie-finder-backend/cmd"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		cmd.Seed()
		return
	}
	cmd.Run()
}
