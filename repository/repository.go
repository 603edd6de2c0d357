// Package repository layers typed accessors over the record store, one
// repository per bucket. Reads return plain slices and never fail; every
// mutation runs its read-modify-write cycle inside a store transaction and
// returns the stored value or an error.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"spacare-backend/storage"
)

// ErrNotFound is returned by lookups and updates addressing an id that is
// not in the bucket.
var ErrNotFound = errors.New("not found")

func readAll[T any](s *storage.Store, bucket string) []T {
	var records []T
	if err := json.Unmarshal(s.Read(bucket), &records); err != nil {
		log.Printf("repository: error decoding bucket %s: %v", bucket, err)
		return nil
	}
	return records
}

func writeAll[T any](s *storage.Store, bucket string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding bucket %s: %w", bucket, err)
	}
	if !s.Write(bucket, data) {
		return fmt.Errorf("persisting bucket %s failed", bucket)
	}
	return nil
}
