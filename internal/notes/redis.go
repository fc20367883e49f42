package notes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"wardview/pkg"
)

const noteKeyPrefix = "wardview:notes:"

// RedisStore persists notes as a Redis list per patient id.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a Redis-backed note store from an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Append implements Store.
func (s *RedisStore) Append(ctx context.Context, patientID, text string) (pkg.Note, error) {
	note := newNote(patientID, text)
	payload, err := json.Marshal(note)
	if err != nil {
		return pkg.Note{}, err
	}
	if err := s.client.RPush(ctx, noteKey(patientID), payload).Err(); err != nil {
		return pkg.Note{}, fmt.Errorf("append note: %w", err)
	}
	return note, nil
}

// List implements Store.
func (s *RedisStore) List(ctx context.Context, patientID string) ([]pkg.Note, error) {
	values, err := s.client.LRange(ctx, noteKey(patientID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	notes := make([]pkg.Note, 0, len(values))
	for _, v := range values {
		var note pkg.Note
		if err := json.Unmarshal([]byte(v), &note); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func noteKey(patientID string) string {
	return noteKeyPrefix + patientID
}
