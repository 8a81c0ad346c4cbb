package trace

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() Event {
	return Event{
		Timestamp: time.Date(2024, 3, 1, 12, 30, 0, 500, time.UTC),
		PassID:    "0b9c2f3e-7d4a-4e8b-9d55-0c3f1f1a2b3c",
		Phase:     PhaseBind,
		Owner:     "*screens.Login",
		Kind:      "field",
		Member:    "username",
		ElementID: 201,
		Outcome:   "bound",
	}
}

func TestEncodeDecodeEvent(t *testing.T) {
	ev := sampleEvent()
	data, err := EncodeEvent(ev)
	require.NoError(t, err)

	got, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.True(t, ev.Timestamp.Equal(got.Timestamp))
	got.Timestamp = ev.Timestamp
	assert.Equal(t, ev, got)

	// canonical encoding is deterministic
	again, err := EncodeEvent(ev)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestDecodeEvent_Garbage(t *testing.T) {
	_, err := DecodeEvent([]byte{0xff, 0x00})
	require.Error(t, err)
}

func TestStreamRecorderAndReader(t *testing.T) {
	var buf bytes.Buffer
	rec := NewStreamRecorder(&buf)
	first := sampleEvent()
	second := sampleEvent()
	second.Phase = PhaseClick
	second.Member = "submit"
	second.Outcome = OutcomeInvocationFailed
	second.Error = "boom"
	rec.Record(first)
	rec.Record(second)
	require.NoError(t, rec.Err())

	rd := NewReader(&buf)
	ev, err := rd.Next()
	require.NoError(t, err)
	assert.Equal(t, "username", ev.Member)
	ev, err = rd.Next()
	require.NoError(t, err)
	assert.Equal(t, PhaseClick, ev.Phase)
	assert.Equal(t, "boom", ev.Error)
	_, err = rd.Next()
	assert.Equal(t, io.EOF, err)
	assert.NoError(t, rd.Close())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestStreamRecorder_KeepsFirstError(t *testing.T) {
	rec := NewStreamRecorder(failingWriter{})
	rec.Record(sampleEvent())
	rec.Record(sampleEvent())
	require.ErrorContains(t, rec.Err(), "disk full")
}

func TestFileRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.cbor")
	rec, err := NewFileRecorder(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			ev := sampleEvent()
			ev.ElementID = id
			rec.Record(ev)
		}(i)
	}
	wg.Wait()
	require.NoError(t, rec.Close())
	require.NoError(t, rec.Close())
	rec.Record(sampleEvent()) // dropped after close

	// files are appended to
	rec, err = NewFileRecorder(path)
	require.NoError(t, err)
	rec.Record(sampleEvent())
	require.NoError(t, rec.Close())

	rd, err := OpenReader(path)
	require.NoError(t, err)
	defer rd.Close()
	events, err := rd.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 11)

	seen := map[int]bool{}
	for _, ev := range events[:10] {
		seen[ev.ElementID] = true
	}
	assert.Len(t, seen, 10)
}

func TestOpenReader_Missing(t *testing.T) {
	_, err := OpenReader(filepath.Join(t.TempDir(), "missing.cbor"))
	require.Error(t, err)
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := NewSlogAdapter(logger)

	ok := sampleEvent()
	failed := sampleEvent()
	failed.Member = "avatar"
	failed.Outcome = "not-found"
	failed.Error = "annobind: element not found: 299"
	click := sampleEvent()
	click.Phase = PhaseClick
	click.Outcome = OutcomeInvocationFailed
	click.Error = "boom"

	adapter.Record(ok)
	adapter.Record(failed)
	adapter.Record(click)

	dec := json.NewDecoder(&buf)
	var records []map[string]interface{}
	for dec.More() {
		var rec map[string]interface{}
		require.NoError(t, dec.Decode(&rec))
		records = append(records, rec)
	}
	require.Len(t, records, 3)

	assert.Equal(t, "DEBUG", records[0]["level"])
	assert.Equal(t, "binding", records[0]["msg"])
	assert.Equal(t, "username", records[0]["member"])
	assert.Equal(t, float64(201), records[0]["id"])
	assert.Equal(t, "BIND", records[0]["phase"])
	assert.NotContains(t, records[0], "error")

	assert.Equal(t, "WARN", records[1]["level"])
	assert.Equal(t, "annobind: element not found: 299", records[1]["error"])

	assert.Equal(t, "ERROR", records[2]["level"])
	assert.Equal(t, "CLICK", records[2]["phase"])
}

func TestMultiRecorder(t *testing.T) {
	a, b := &Collector{}, &Collector{}
	m := NewMultiRecorder(a, nil, b, NoopRecorder{})
	m.Record(sampleEvent())
	m.Record(sampleEvent())
	assert.Len(t, a.Events(), 2)
	assert.Len(t, b.Events(), 2)

	a.Reset()
	assert.Empty(t, a.Events())
	assert.Len(t, b.Events(), 2)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "BIND", PhaseBind.String())
	assert.Equal(t, "CLICK", PhaseClick.String())
	assert.Equal(t, "UNKNOWN", Phase(9).String())
}
