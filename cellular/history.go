package cellular

// TrackingSample is one diagnostic snapshot of the cellular state during an
// analysis. History is purely diagnostic; no prediction depends on it.
type TrackingSample struct {
	Time      float64 // [s]
	CellSize  float64 // [m]
	WaveSpeed float64 // [m/s]
	Pressure  float64 // [Pa]
}

const historyCapacity = 1000

// trackingHistory is a fixed-capacity ring buffer holding the most recent
// samples; the oldest entry is overwritten first.
type trackingHistory struct {
	buf   [historyCapacity]TrackingSample
	next  int
	count int
}

func (h *trackingHistory) Push(s TrackingSample) {
	h.buf[h.next] = s
	h.next = (h.next + 1) % historyCapacity
	if h.count < historyCapacity {
		h.count++
	}
}

// Samples returns the retained history, oldest first.
func (h *trackingHistory) Samples() []TrackingSample {
	out := make([]TrackingSample, h.count)
	start := h.next - h.count
	if start < 0 {
		start += historyCapacity
	}
	for i := 0; i < h.count; i++ {
		out[i] = h.buf[(start+i)%historyCapacity]
	}
	return out
}
