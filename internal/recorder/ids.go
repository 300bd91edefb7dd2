package recorder

import (
	"sync/atomic"
	"time"
)

// UID is a monotonically increasing identifier assigned to every event in
// the log (spec §3 "uid"), never reused within one capture; Start restarts
// the numbering at 1 along with a fresh log. UID order is allocation order,
// not causal order — causal order is encoded by the explicit edges the
// graph builder draws from the signal-state maps, never inferred from UID
// or TimePoint (spec §3 "TimePoint is a layout hint only").
type UID uint64

// TimePoint is microseconds elapsed since the owning Event Recorder's
// Start call (spec §3 "time").
type TimePoint int64

// uidSource hands out UIDs in allocation order. Unlike the teacher's
// IdentityManager, there is no free list: a UID is never released for
// reuse, because the event log is an append-only record of everything
// that happened, not a set of live resources.
type uidSource struct {
	next atomic.Uint64
}

// Next returns the next unused UID. The zero value is never issued so a
// zero UID reliably means "no such event" to callers that compare against
// the zero value.
func (s *uidSource) Next() UID {
	return UID(s.next.Add(1))
}

// clock converts wall-clock time into TimePoint values relative to an
// epoch set by Start.
type clock struct {
	epoch time.Time
}

func (c *clock) reset(now time.Time) {
	c.epoch = now
}

func (c *clock) now(at time.Time) TimePoint {
	if c.epoch.IsZero() {
		return 0
	}
	return TimePoint(at.Sub(c.epoch).Microseconds())
}
