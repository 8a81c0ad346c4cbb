// Package trace records what happens during binding passes and click
// dispatch as a stream of events.
//
// The binder sends one Event per annotated member it visits and one per
// failed click. Recorders decide what to do with them: NoopRecorder drops
// them, SlogAdapter renders them through a slog.Logger, FileRecorder and
// StreamRecorder append them to a CBOR stream that Reader can decode later
// (the bindgen trace command prints such files), Collector keeps them in
// memory for tests, and MultiRecorder fans out to several recorders.
package trace
