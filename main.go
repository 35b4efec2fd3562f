package main

import (
	"log"

	"github.com/heoga/fitness/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
