// Package audit keeps a local journal of facade operations in a bbolt
// database. Every operation is recorded, success or failure, so transfers
// can be reconstructed after the fact without backend-side logging.
package audit

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var entriesBucket = []byte("entries")

// Entry is one recorded operation.
type Entry struct {
	Seq    uint64    `json:"seq"`
	Time   time.Time `json:"time"`
	Op     string    `json:"op"`
	Bucket string    `json:"bucket,omitempty"`
	Key    string    `json:"key,omitempty"`
	Status string    `json:"status"` // "ok" or "error"
	Error  string    `json:"error,omitempty"`
}

// Log is an append-only operation journal.
type Log struct {
	db *bolt.DB
}

// Open opens (or creates) the journal at path.
func Open(path string) (*Log, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(entriesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init audit log: %w", err)
	}
	return &Log{db: db}, nil
}

func (l *Log) Close() error {
	return l.db.Close()
}

// Record appends an entry for the given operation outcome. It satisfies
// the facade's Auditor interface. Append failures are reported through the
// returned error of Append; Record itself deliberately swallows them so a
// broken journal never fails a storage operation.
func (l *Log) Record(op, bucket, key string, opErr error) {
	entry := Entry{
		Time:   time.Now().UTC(),
		Op:     op,
		Bucket: bucket,
		Key:    key,
		Status: "ok",
	}
	if opErr != nil {
		entry.Status = "error"
		entry.Error = opErr.Error()
	}
	_ = l.Append(entry)
}

// Append writes one entry under the next sequence number.
func (l *Log) Append(entry Entry) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(entriesBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		entry.Seq = seq

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return b.Put(seqKey(seq), data)
	})
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) ([]Entry, error) {
	var entries []Entry
	err := l.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(entriesBucket).Cursor()
		for k, v := c.Last(); k != nil && len(entries) < limit; k, v = c.Prev() {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Len returns the number of recorded entries.
func (l *Log) Len() (int, error) {
	var n int
	err := l.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(entriesBucket).Stats().KeyN
		return nil
	})
	return n, err
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}
