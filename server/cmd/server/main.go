package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wandermere/verse/server/core"
	"github.com/wandermere/verse/shared/protocol"
)

func main() {
	port := flag.Uint("port", 7777, "Server port")
	tickRate := flag.Int("tickrate", 10, "Snapshot rate (updates per second)")
	name := flag.String("name", "Verse Server", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server := core.NewServer(*tickRate, *name, *version)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting server %q on port %d (tick rate: %d/s, version: %s)",
		*name, *port, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
