package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker <purge|schedule> [flags]")
	}

	switch os.Args[1] {
	case "purge":
		RunPurge(os.Args[2:])
	case "schedule":
		RunSchedule(os.Args[2:])
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
