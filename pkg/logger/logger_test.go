package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(Options{Output: buf, Level: level}), buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) LogEntry {
	t.Helper()
	var entry LogEntry
	err := json.Unmarshal(buf.Bytes(), &entry)
	assert.NoError(t, err)
	return entry
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	// Unknown strings fall back to info.
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, buf := newTestLogger(LevelWarn)

	log.Debug("dropped")
	log.Info("dropped")
	assert.Equal(t, 0, buf.Len())

	log.Warn("kept")
	assert.NotEqual(t, 0, buf.Len())
}

func TestLogger_JSONOutput(t *testing.T) {
	log, buf := newTestLogger(LevelInfo)

	log.Info("grade recorded", GradeID(7), StudentID(42), Score(88.5))

	entry := decodeEntry(t, buf)
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "grade recorded", entry.Message)
	assert.EqualValues(t, 7, entry.Fields["grade_id"])
	assert.EqualValues(t, 42, entry.Fields["student_id"])
	assert.EqualValues(t, 88.5, entry.Fields["score"])
}

func TestLogger_With(t *testing.T) {
	base, buf := newTestLogger(LevelInfo)
	log := base.With(Component("query.get_transcript"))

	log.Info("cache miss", NIM("2021001"))

	entry := decodeEntry(t, buf)
	assert.Equal(t, "query.get_transcript", entry.Fields["component"])
	assert.Equal(t, "2021001", entry.Fields["nim"])

	// The parent logger is unaffected.
	buf.Reset()
	base.Info("plain")
	entry = decodeEntry(t, buf)
	assert.NotContains(t, entry.Fields, "component")
}

func TestErrField(t *testing.T) {
	assert.Equal(t, "connection refused", Err(errors.New("connection refused")).Value)
	assert.Nil(t, Err(nil).Value)
}

func TestContextRoundTrip(t *testing.T) {
	log, _ := newTestLogger(LevelDebug)

	ctx := WithContext(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))

	// Absent logger yields a usable default.
	assert.NotNil(t, FromContext(context.Background()))
}
