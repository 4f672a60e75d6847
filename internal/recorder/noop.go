package recorder

// NoopRecorder is used when no journal path is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordMonth(_ *MonthEntry) error    { return nil }
func (n *NoopRecorder) Recent(_ int) ([]MonthEntry, error) { return nil, nil }
func (n *NoopRecorder) Close() error                       { return nil }
