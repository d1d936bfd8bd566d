package service

import (
	"log"
	"sync"

	"go-hubstock-ws/internal/ledger"
	"go-hubstock-ws/internal/model"
	"go-hubstock-ws/internal/repository"
)

// EventSink atomically applies a move set to the ledger and accepts the
// resulting event for durable storage. Implementations must queue
// events in apply order.
type EventSink interface {
	Record(moves []ledger.Move, build func(stock []model.StockEntry) repository.StockEvent) error
}

type journalEntry struct {
	event   repository.StockEvent
	inverse []ledger.Move
}

// Journal decouples the hot path from the database: services append a
// fully-applied event and return, a single writer goroutine persists
// each event in its own transaction. The ledger stays authoritative; a
// crash between apply and persist loses at most the queued events and
// never leaves a half-written one.
type Journal struct {
	mu     sync.Mutex
	queue  chan journalEntry
	store  repository.EventStore
	ledger *ledger.Ledger
	wg     sync.WaitGroup
}

func NewJournal(store repository.EventStore, led *ledger.Ledger, queueSize int) *Journal {
	return &Journal{
		queue:  make(chan journalEntry, queueSize),
		store:  store,
		ledger: led,
	}
}

// Record applies the moves and enqueues the resulting event under one
// critical section. Post-event quantities come out of the apply itself
// and events land on the queue in apply order, so the writer can never
// upsert a stale snapshot over a newer one.
func (j *Journal) Record(moves []ledger.Move, build func(stock []model.StockEntry) repository.StockEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	applied, err := j.ledger.Apply(moves)
	if err != nil {
		return err
	}
	j.queue <- journalEntry{event: build(stockEntries(applied)), inverse: inverseOf(moves)}
	return nil
}

// Start launches the writer goroutine.
func (j *Journal) Start() {
	j.wg.Add(1)
	go j.worker()
}

// Close stops accepting events and blocks until the queue is drained.
func (j *Journal) Close() {
	close(j.queue)
	j.wg.Wait()
}

func (j *Journal) worker() {
	defer j.wg.Done()
	for entry := range j.queue {
		if err := j.store.Persist(entry.event); err != nil {
			log.Printf("journal: failed to persist event: %v", err)

			// Roll the ledger back so memory and store agree again.
			if len(entry.inverse) > 0 {
				if _, rbErr := j.ledger.Apply(entry.inverse); rbErr != nil {
					log.Printf("journal: CRITICAL rollback failed: %v", rbErr)
				} else {
					log.Println("journal: rolled back ledger for failed event")
				}
			}
		}
	}
}

// stockEntries converts applied ledger entries into persistence rows.
func stockEntries(applied []ledger.Entry) []model.StockEntry {
	rows := make([]model.StockEntry, 0, len(applied))
	for _, e := range applied {
		rows = append(rows, model.StockEntry{
			LocationCode: e.Location,
			SKU:          e.SKU,
			Quantity:     e.Quantity,
		})
	}
	return rows
}

// inverseOf negates a move set for compensation.
func inverseOf(moves []ledger.Move) []ledger.Move {
	inverse := make([]ledger.Move, len(moves))
	for i, m := range moves {
		inverse[i] = ledger.Move{Location: m.Location, SKU: m.SKU, Delta: -m.Delta}
	}
	return inverse
}
