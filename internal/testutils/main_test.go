package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain purges the shared Postgres container when the package's tests end or are interrupted
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("testutils: interrupted, purging shared container")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}
