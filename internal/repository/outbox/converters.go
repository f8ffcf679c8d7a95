package outbox

import (
	"marketplace/internal/entities"
)

func ToDomain(r *OutboxRecordDB) *entities.OutboxRecord {
	if r == nil {
		return nil
	}

	return &entities.OutboxRecord{
		ID:           r.ID,
		Topic:        r.Topic,
		AggregateID:  r.AggregateID,
		Payload:      r.Payload,
		CreatedAt:    r.CreatedAt,
		DispatchedAt: r.DispatchedAt,
		Attempts:     r.Attempts,
		LastError:    r.LastError,
	}
}

func ToDomainList(recordsDB []OutboxRecordDB) []entities.OutboxRecord {
	if len(recordsDB) == 0 {
		return []entities.OutboxRecord{}
	}

	result := make([]entities.OutboxRecord, len(recordsDB))
	for i, recordDB := range recordsDB {
		result[i] = *ToDomain(&recordDB)
	}
	return result
}
