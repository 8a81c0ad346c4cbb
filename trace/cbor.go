package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create trace CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create trace CBOR decoder mode: %v", err))
	}
}

// EncodeEvent encodes an event to CBOR.
func EncodeEvent(event Event) ([]byte, error) {
	return encMode.Marshal(event)
}

// DecodeEvent decodes an event from CBOR.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := decMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// StreamRecorder appends events to a writer as a sequence of CBOR items. It
// is safe for concurrent use. Encoding errors do not reach the binder; the
// first one is kept and returned by Err.
type StreamRecorder struct {
	mu      sync.Mutex
	encoder *cbor.Encoder
	err     error
}

// NewStreamRecorder returns a recorder writing to w.
func NewStreamRecorder(w io.Writer) *StreamRecorder {
	return &StreamRecorder{encoder: encMode.NewEncoder(w)}
}

// Record encodes the event.
func (s *StreamRecorder) Record(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	s.err = s.encoder.Encode(event)
}

// Err returns the first encoding error, if any.
func (s *StreamRecorder) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// FileRecorder appends events to a file. It is safe for concurrent use.
type FileRecorder struct {
	*StreamRecorder

	mu     sync.Mutex
	file   *os.File
	closed bool
}

// NewFileRecorder opens (or creates) the file at path for appending.
func NewFileRecorder(path string) (*FileRecorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileRecorder{StreamRecorder: NewStreamRecorder(f), file: f}, nil
}

// Record encodes the event unless the recorder has been closed.
func (f *FileRecorder) Record(event Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.StreamRecorder.Record(event)
}

// Close closes the file. Later events are dropped. It is safe to call Close
// more than once.
func (f *FileRecorder) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	return f.file.Close()
}

// Reader decodes a stream of events written by a StreamRecorder.
type Reader struct {
	decoder *cbor.Decoder
	closer  io.Closer
}

// NewReader returns a reader decoding events from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{decoder: decMode.NewDecoder(r)}
}

// OpenReader opens the trace file at path.
func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rd := NewReader(f)
	rd.closer = f
	return rd, nil
}

// Next returns the next event. It returns io.EOF at the end of the stream.
func (r *Reader) Next() (Event, error) {
	var event Event
	if err := r.decoder.Decode(&event); err != nil {
		if errors.Is(err, io.EOF) {
			return Event{}, io.EOF
		}
		return Event{}, fmt.Errorf("decoding trace event: %w", err)
	}
	return event, nil
}

// ReadAll returns all remaining events.
func (r *Reader) ReadAll() ([]Event, error) {
	var events []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, event)
	}
}

// Close closes the underlying file for readers created with OpenReader.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

var (
	_ Recorder = (*StreamRecorder)(nil)
	_ Recorder = (*FileRecorder)(nil)
)
