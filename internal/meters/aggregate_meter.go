package meters

// AggregateMeter summarizes fixed-size batches of samples into min, mean and max.
//
// Samples are accumulated until threshold of them have been added; the batch is
// then closed and its summary becomes visible through Average and Values, where
// it stays unchanged while the next batch accumulates. Extremes of the batch in
// progress are kept apart from the published ones so readers never observe a
// partial batch.
//
// The mean is computed in float32. A sum outside the float32 range reports a
// mean of 0, and integer sums wrap on overflow. NaN samples are not supported.
//
// An AggregateMeter is owned by a single caller and is not safe for concurrent use.
type AggregateMeter[T Number] struct {
	threshold uint8
	count     uint8
	sum       T

	pendingMin T
	pendingMax T

	lastMin   T
	lastMax   T
	lastAvg   float32
	hasReport bool

	lowest  T
	highest T

	unit string
}

// NewAggregateMeter creates an AggregateMeter that reports every threshold samples.
// Returns ErrInvalidThreshold when threshold is zero.
func NewAggregateMeter[T Number](threshold uint8) (*AggregateMeter[T], error) {
	if threshold == 0 {
		return nil, ErrInvalidThreshold
	}

	lowest, highest := bounds[T]()
	return &AggregateMeter[T]{
		threshold:  threshold,
		pendingMin: highest,
		pendingMax: lowest,
		lowest:     lowest,
		highest:    highest,
	}, nil
}

// WithUnit sets the display unit carried by reports and returns m.
func (m *AggregateMeter[T]) WithUnit(unit string) *AggregateMeter[T] {
	m.unit = unit
	return m
}

// Add accumulates v into the current batch and closes the batch when it reaches the threshold.
func (m *AggregateMeter[T]) Add(v T) {
	m.sum += v
	m.count++

	if v > m.pendingMax {
		m.pendingMax = v
	}
	if v < m.pendingMin {
		m.pendingMin = v
	}

	if m.count < m.threshold {
		return
	}

	m.lastAvg = toFloat32(m.sum) / float32(m.count)
	m.lastMin = m.pendingMin
	m.lastMax = m.pendingMax

	m.pendingMin = m.highest
	m.pendingMax = m.lowest
	m.count = 0
	m.sum = 0
	m.hasReport = true
}

// Average returns the mean of the last completed batch.
func (m *AggregateMeter[T]) Average() (float32, bool) {
	if !m.hasReport {
		return 0, false
	}
	return m.lastAvg, true
}

// Values returns the summary of the last completed batch.
func (m *AggregateMeter[T]) Values() (Report[T], bool) {
	if !m.hasReport {
		return Report[T]{}, false
	}
	return NewReport(m.lastMin, m.lastAvg, m.lastMax).WithUnit(m.unit), true
}

// Threshold returns the batch size.
func (m *AggregateMeter[T]) Threshold() uint8 { return m.threshold }

// Unit returns the unit attached to reports.
func (m *AggregateMeter[T]) Unit() string { return m.unit }

// Pending returns the number of samples in the batch in progress.
func (m *AggregateMeter[T]) Pending() uint8 { return m.count }
