package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/campus-hub/academic-records/internal/domain/grade"
)

// DefaultTranscriptTTL bounds staleness in case an invalidation is missed.
const DefaultTranscriptTTL = 10 * time.Minute

// TranscriptCache caches assembled transcripts per student. Grade write
// commands invalidate the entry, so a cached transcript never outlives the
// grades it was computed from by more than the TTL.
type TranscriptCache struct {
	cache *Cache
	ttl   time.Duration
}

// NewTranscriptCache creates a TranscriptCache over the generic cache.
func NewTranscriptCache(cache *Cache) *TranscriptCache {
	return &TranscriptCache{
		cache: cache,
		ttl:   DefaultTranscriptTTL,
	}
}

// TranscriptKey returns the cache key for a student's transcript.
func TranscriptKey(studentID int64) string {
	return fmt.Sprintf("%s%d", PrefixTranscript, studentID)
}

// Get returns the cached transcript for a student, or ErrCacheMiss.
func (t *TranscriptCache) Get(ctx context.Context, studentID int64) (*grade.Transcript, error) {
	var tr grade.Transcript
	if err := t.cache.Get(ctx, TranscriptKey(studentID), &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

// Set stores a transcript for a student.
func (t *TranscriptCache) Set(ctx context.Context, studentID int64, tr *grade.Transcript) error {
	if tr == nil {
		return ErrCacheNilValue
	}
	return t.cache.Set(ctx, TranscriptKey(studentID), tr, t.ttl)
}

// Invalidate drops the cached transcript for a student.
func (t *TranscriptCache) Invalidate(ctx context.Context, studentID int64) error {
	return t.cache.Delete(ctx, TranscriptKey(studentID))
}
