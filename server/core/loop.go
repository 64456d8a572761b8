package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// Loop pushes esync snapshots to every client at the tick rate. The server
// holds no simulation of its own; clients simulate and report.
type Loop struct {
	tickRate int
	stopChan chan struct{}
}

func NewLoop(tickRate int) *Loop {
	return &Loop{
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (l *Loop) TickRate() int {
	return l.tickRate
}

func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Sync loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("Sync loop stopped")
			return
		case <-ticker.C:
			if err := srvsync.DoSync(); err != nil {
				log.Printf("Sync error: %v", err)
			}
		}
	}
}

func (l *Loop) Stop() {
	close(l.stopChan)
}
