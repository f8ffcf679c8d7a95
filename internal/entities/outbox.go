package entities

import "time"

type OutboxRecord struct {
	ID           int64
	Topic        string
	AggregateID  string
	Payload      []byte
	CreatedAt    time.Time
	DispatchedAt *time.Time
	Attempts     int
	LastError    *string
}
