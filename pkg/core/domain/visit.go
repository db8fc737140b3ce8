package domain

import "time"

// VisitorRecord is a single page load. SourceAddress and ArrivalTime together
// identify the record; the same address produces a new record on every load.
type VisitorRecord struct {
	SourceAddress string `json:"sourceAddress"`
	ArrivalTime   int64  `json:"arrivalTime"` // unix seconds
}

// NewVisitorRecord stamps a record for addr at t, truncated to whole seconds.
func NewVisitorRecord(addr string, t time.Time) VisitorRecord {
	return VisitorRecord{
		SourceAddress: addr,
		ArrivalTime:   t.Unix(),
	}
}

// Key returns the composite identity of the record.
func (r VisitorRecord) Key() VisitorKey {
	return VisitorKey{SourceAddress: r.SourceAddress, ArrivalTime: r.ArrivalTime}
}

// VisitorKey is the (source address, arrival time) pair.
type VisitorKey struct {
	SourceAddress string
	ArrivalTime   int64
}

// VisitorCount is derived from a full scan of the store, never stored.
type VisitorCount struct {
	Count int `json:"visitorCount"`
}
