// Package notify fans operation events out to messaging backends after the
// facade completes a mutating call. Delivery is best-effort: a failing
// backend is logged and never affects the storage operation's result.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Event matches the S3 event notification JSON format so downstream
// consumers built for bucket notifications work unchanged.
type Event struct {
	Records []EventRecord `json:"Records"`
}

type EventRecord struct {
	EventVersion string `json:"eventVersion"`
	EventSource  string `json:"eventSource"`
	EventTime    string `json:"eventTime"`
	EventName    string `json:"eventName"`
	S3           Detail `json:"s3"`
}

type Detail struct {
	Bucket Bucket `json:"bucket"`
	Object Object `json:"object"`
}

type Bucket struct {
	Name string `json:"name"`
}

type Object struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	ETag string `json:"eTag,omitempty"`
}

// Backend is the interface for event delivery backends.
type Backend interface {
	Name() string
	Publish(ctx context.Context, payload []byte) error
	Close() error
}

// Dispatcher serializes events and hands them to a worker pool for
// delivery to all registered backends.
type Dispatcher struct {
	workerCh   chan []byte
	wg         sync.WaitGroup
	maxWorkers int
	timeout    time.Duration
	backends   []Backend
	mu         sync.Mutex
}

func NewDispatcher(maxWorkers, queueSize, timeoutSecs int) *Dispatcher {
	return &Dispatcher{
		workerCh:   make(chan []byte, queueSize),
		maxWorkers: maxWorkers,
		timeout:    time.Duration(timeoutSecs) * time.Second,
	}
}

// Start launches the delivery workers. They run until ctx is cancelled or
// Stop closes the queue.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.maxWorkers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case payload, ok := <-d.workerCh:
					if !ok {
						return
					}
					d.deliver(payload)
				}
			}
		}()
	}
}

// AddBackend registers a delivery backend.
func (d *Dispatcher) AddBackend(b Backend) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.backends = append(d.backends, b)
	slog.Info("notify backend registered", "backend", b.Name())
}

// Stop drains the queue, waits for the workers and closes all backends.
func (d *Dispatcher) Stop() {
	close(d.workerCh)
	d.wg.Wait()
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, b := range d.backends {
		b.Close()
	}
}

// Dispatch enqueues an event for delivery. Non-blocking: when the queue is
// full the event is dropped with a warning rather than stalling the
// storage operation.
func (d *Dispatcher) Dispatch(bucket, key, eventType string, size int64, etag string) {
	event := Event{
		Records: []EventRecord{{
			EventVersion: "2.1",
			EventSource:  "s3bridge",
			EventTime:    time.Now().UTC().Format(time.RFC3339),
			EventName:    eventType,
			S3: Detail{
				Bucket: Bucket{Name: bucket},
				Object: Object{Key: key, Size: size, ETag: etag},
			},
		}},
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("notify error marshaling event", "error", err)
		return
	}

	select {
	case d.workerCh <- payload:
	default:
		slog.Warn("notify queue full, dropping event", "event", eventType, "bucket", bucket, "key", key)
	}
}

func (d *Dispatcher) deliver(payload []byte) {
	d.mu.Lock()
	backends := make([]Backend, len(d.backends))
	copy(backends, d.backends)
	d.mu.Unlock()

	for _, b := range backends {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := b.Publish(ctx, payload); err != nil {
			slog.Error("notify backend publish error", "backend", b.Name(), "error", err)
		}
		cancel()
	}
}
