package main

import (
	"log"

	"bj-platform/internal/app"
)

func main() {
	server := app.NewServer()
	log.Fatal(server.Start())
}
