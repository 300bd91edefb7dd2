package recorder

import (
	"fmt"
	"sync"

	"github.com/vsagraph/vsa/vk"
)

// queueInfo is one entry of the queue identity table (spec §3 "queues":
// handle, device, default name derived from family flags, name overridable
// by a debug-naming call).
type queueInfo struct {
	Device vk.Device
	Family uint32
	Index  uint32
	Name   string
}

// queueTable tracks every vk.Queue handle the recorder has seen, along
// with a human-readable name (spec §4.3 GetDeviceQueue/GetDeviceQueue2,
// DebugMarkerSetObjectNameEXT/SetDebugUtilsObjectNameEXT).
type queueTable struct {
	mu   sync.Mutex
	info map[vk.Queue]*queueInfo
}

func newQueueTable() *queueTable {
	return &queueTable{info: make(map[vk.Queue]*queueInfo)}
}

// observe records queue as belonging to device, with a default name
// derived from the family's capability flags the first time it is seen. A
// queue handle the driver hands back for the same (device, family, index)
// is idempotent to re-observe.
func (t *queueTable) observe(device vk.Device, family, index uint32, flags vk.QueueFamilyFlags, queue vk.Queue) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.info[queue]; ok {
		return
	}
	t.info[queue] = &queueInfo{
		Device: device,
		Family: family,
		Index:  index,
		Name:   defaultQueueName(family, index, flags),
	}
}

// rename overrides a queue's recorded name (spec §4.3 debug-naming calls,
// "when the named object is a queue, rewrite its recorded name").
func (t *queueTable) rename(queue vk.Queue, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	info, ok := t.info[queue]
	if !ok {
		return
	}
	info.Name = name
}

// name returns the recorded name for queue, or "" if the queue was never
// observed.
func (t *queueTable) name(queue vk.Queue) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if info, ok := t.info[queue]; ok {
		return info.Name
	}
	return ""
}

// deviceFor returns the device a queue belongs to, or the zero value if
// the queue was never observed.
func (t *queueTable) deviceFor(queue vk.Queue) vk.Device {
	t.mu.Lock()
	defer t.mu.Unlock()
	if info, ok := t.info[queue]; ok {
		return info.Device
	}
	return 0
}

// namesSnapshot returns a copy of the queue handle -> name table.
func (t *queueTable) namesSnapshot() map[vk.Queue]string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[vk.Queue]string, len(t.info))
	for q, info := range t.info {
		out[q] = info.Name
	}
	return out
}

func (t *queueTable) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.info = make(map[vk.Queue]*queueInfo)
}

// defaultQueueName derives a human-readable queue name from its family's
// capability flags, following the most capable-first ordering used in the
// target API's own default queue labelling (graphics first, then compute,
// then transfer, then sparse-binding-only).
func defaultQueueName(family, index uint32, flags vk.QueueFamilyFlags) string {
	var kind string
	switch {
	case flags&vk.QueueGraphics != 0:
		kind = "graphics"
	case flags&vk.QueueCompute != 0:
		kind = "compute"
	case flags&vk.QueueTransfer != 0:
		kind = "transfer"
	case flags&vk.QueueSparseBinding != 0:
		kind = "sparse"
	default:
		kind = "queue"
	}
	return fmt.Sprintf("%s[%d:%d]", kind, family, index)
}
