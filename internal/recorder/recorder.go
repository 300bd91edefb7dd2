// Package recorder implements the Event Recorder (spec §4.3): the causal
// core that turns a stream of intercepted calls into an append-only event
// log plus the signal-state maps needed to reconstruct which event caused
// which. It is grounded on azhirnov/VulkanSyncGraph's SyncAnalyzer, with
// its global recursive_mutex translated into reentrantMutex and its
// std::variant event union translated into Event/EventKind.
package recorder

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vsagraph/vsa/vk"
)

// Recorder implements captx.Analyzer. It is created once per Capture
// Context and is always analyzer #0 (spec §4.2).
type Recorder struct {
	mu reentrantMutex

	recording bool

	log  []Event
	uids uidSource
	clk  clock

	threads *threadTable
	queues  *queueTable

	// signalSemaphores maps a semaphore handle to the UID of the event
	// that will signal it next; a single producer at a time (spec §3
	// "signal_semaphores"). Consumed (erased) by the wait that matches it.
	signalSemaphores map[vk.Semaphore]UID

	// signalFences maps a fence handle to every UID waiting to be observed
	// through it since the last reset (spec §3 "signal_fences"): a
	// multimap because acquires against the same fence append to it; a
	// submit with that fence replaces the entry with its own FenceSignal,
	// and a wait or status read copies rather than erases.
	signalFences map[vk.Fence][]UID

	// swapchains maps a swapchain handle to the producing UID for each
	// image index acquired so far, grown or overwritten per acquire (spec
	// §3 "swapchains").
	swapchains map[vk.Swapchain][]UID

	// queueFamilyFlags caches each device's queue family capability flags,
	// supplied once at OnCreateDevice, so OnGetDeviceQueue can derive a
	// default name without another next-layer round trip.
	queueFamilyFlags map[vk.Device][]vk.QueueFamilyProperties
}

// New returns an idle Recorder with an empty log.
func New() *Recorder {
	r := &Recorder{
		threads:          newThreadTable(),
		queues:           newQueueTable(),
		signalSemaphores: make(map[vk.Semaphore]UID),
		signalFences:     make(map[vk.Fence][]UID),
		swapchains:       make(map[vk.Swapchain][]UID),
		queueFamilyFlags: make(map[vk.Device][]vk.QueueFamilyProperties),
	}
	return r
}

// Start begins a new capture session: the log from any previous session is
// discarded and the clock restarts at zero (spec §4.2 Start).
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.log = nil
	r.uids = uidSource{}
	r.clk.reset(time.Now())
	r.threads.clear()
	r.queues.clear()
	r.recording = true
}

// Stop ends the current capture session and clears the signal-state maps
// (spec §3 "the signal-state maps are empty after Stop completes"; §8
// Property 3). The event log itself and the identity tables are left
// intact so the Graph Builder can still read them via Snapshot after Stop
// returns; they are only discarded by the next Start.
func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recording = false
	r.signalSemaphores = make(map[vk.Semaphore]UID)
	r.signalFences = make(map[vk.Fence][]UID)
	r.swapchains = make(map[vk.Swapchain][]UID)
}

// Snapshot is the graph builder's read interface onto the recorder: a copy
// of the event log plus the thread and queue name tables, taken under the
// recorder's lock (spec §4.4 "the graph builder reads the recorder's log
// and identity tables, never its signal-state maps directly").
type Snapshot struct {
	Events      []Event
	ThreadNames map[ThreadID]string
	QueueNames  map[vk.Queue]string
}

// Snapshot returns a point-in-time copy of the event log and identity
// tables. Safe to call whether or not a capture is in progress.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]Event, len(r.log))
	copy(events, r.log)

	return Snapshot{
		Events:      events,
		ThreadNames: r.threads.snapshot(),
		QueueNames:  r.queues.namesSnapshot(),
	}
}

// appendLocked assigns a UID and thread/time header to ev and appends it to
// the log, returning the UID so callers can wire SemaphoreDeps/FenceDeps/
// Batches references to it. Caller must hold r.mu.
func (r *Recorder) appendLocked(ev Event) UID {
	return r.appendAtLocked(ev, r.clk.now(time.Now()))
}

// appendAtLocked is appendLocked with an explicit TimePoint, used when an
// interception must force two of its own events apart by exactly one
// TimePoint regardless of wall-clock resolution (spec §4.3 QueueSubmit
// step 6: "append a FenceSignal event at time T+1 ... forces the layout
// engine to place the fence node strictly after the submit"). Caller must
// hold r.mu.
func (r *Recorder) appendAtLocked(ev Event, t TimePoint) UID {
	ev.UID = r.uids.Next()
	ev.Thread = r.threads.idFor(currentOSThreadID())
	ev.Time = t
	r.log = append(r.log, ev)
	return ev.UID
}

func (r *Recorder) OnCreateInstance(vk.Instance, vk.InstanceFunctions) {}

func (r *Recorder) OnCreateDevice(physicalDevice vk.PhysicalDevice, device vk.Device, fns vk.DeviceFunctions, queueFamilies []vk.QueueFamilyProperties) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queueFamilyFlags[device] = queueFamilies
}

func (r *Recorder) OnGetDeviceQueue(device vk.Device, family, index uint32, queue vk.Queue) {
	r.observeQueue(device, family, index, queue)
}

func (r *Recorder) OnGetDeviceQueue2(device vk.Device, family, index uint32, queue vk.Queue) {
	r.observeQueue(device, family, index, queue)
}

func (r *Recorder) observeQueue(device vk.Device, family, index uint32, queue vk.Queue) {
	r.mu.Lock()
	flags := vk.QueueFamilyFlags(0)
	if props := r.queueFamilyFlags[device]; int(family) < len(props) {
		flags = props[family].Flags
	}
	r.mu.Unlock()

	r.queues.observe(device, family, index, flags, queue)
}

// OnQueueSubmit is the central event of the causal graph (spec §4.3
// QueueSubmit, grounded on SyncAnalyzer.cpp's QueueSubmit): it consumes
// each batch's wait semaphores, writes each batch's signal semaphores, and
// produces one QueueSubmit event with one child CmdBatch event per batch,
// plus a FenceSignal event one TimePoint later if fence is non-null.
func (r *Recorder) OnQueueSubmit(queue vk.Queue, batches []vk.SubmitBatch, fence vk.Fence, result vk.Result) {
	if !result.IsSuccess() {
		r.logTolerated("QueueSubmit", result)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return
	}

	batchUIDs := make([]UID, 0, len(batches))
	queueDevice := r.queues.deviceFor(queue)

	// Clearing stale producers here (spec §4.3 QueueSubmit step 2) keeps a
	// fence reused across submits without an intervening ResetFences from
	// reporting dependencies on the prior submit that fence once guarded.
	if fence != 0 {
		delete(r.signalFences, fence)
	}

	// T is captured once for the whole interception: every event this call
	// produces shares it, except FenceSignal which is forced to T+1 (spec
	// §4.3 QueueSubmit step 6).
	t := r.clk.now(time.Now())

	for _, b := range batches {
		var deps []UID
		for _, sem := range b.WaitSemaphores {
			if uid, ok := r.signalSemaphores[sem]; ok {
				deps = append(deps, uid)
				delete(r.signalSemaphores, sem)
			}
		}

		batchUID := r.appendAtLocked(Event{
			Kind:             EventCmdBatch,
			Device:           queueDevice,
			Queue:            queue,
			SemaphoreDeps:    deps,
			WaitSemaphores:   b.WaitSemaphores,
			SignalSemaphores: b.SignalSemaphores,
			Result:           result,
		}, t)
		batchUIDs = append(batchUIDs, batchUID)

		for _, sem := range b.SignalSemaphores {
			r.signalSemaphores[sem] = batchUID
		}
	}

	r.appendAtLocked(Event{
		Kind:    EventQueueSubmit,
		Device:  queueDevice,
		Queue:   queue,
		Fence:   fence,
		Batches: batchUIDs,
		Result:  result,
	}, t)

	if fence != 0 {
		fenceUID := r.appendAtLocked(Event{
			Kind:      EventFenceSignal,
			Device:    queueDevice,
			Queue:     queue,
			Fence:     fence,
			FenceDeps: batchUIDs,
		}, t+1)
		r.signalFences[fence] = []UID{fenceUID}
	}
}

func (r *Recorder) OnQueueWaitIdle(queue vk.Queue, result vk.Result) {
	if !result.IsSuccess() {
		r.logTolerated("QueueWaitIdle", result)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return
	}
	r.appendLocked(Event{Kind: EventQueueWaitIdle, Device: r.queues.deviceFor(queue), Queue: queue, Result: result})
}

func (r *Recorder) OnDeviceWaitIdle(device vk.Device, result vk.Result) {
	if !result.IsSuccess() {
		r.logTolerated("DeviceWaitIdle", result)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return
	}
	r.appendLocked(Event{Kind: EventDeviceWaitIdle, Device: device, Result: result})
}

// OnQueueBindSparse is a tolerated no-op: the original source's handler
// body is entirely commented out, and sparse-resident resources are out of
// scope for this layer (spec §4.3 "QueueBindSparse: no-op").
func (r *Recorder) OnQueueBindSparse(vk.Queue, []vk.SubmitBatch, vk.Fence, vk.Result) {}

func (r *Recorder) OnResetFences(device vk.Device, fences []vk.Fence, result vk.Result) {
	if !result.IsSuccess() {
		r.logTolerated("ResetFences", result)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range fences {
		delete(r.signalFences, f)
	}
}

// OnGetFenceStatus mirrors a successful WaitForFences-of-one: on OK or
// TIMEOUT it copies (not erases) the fence's accumulated signal UIDs into
// a WaitForFences event with wait_for_all forced true (spec §4.3
// GetFenceStatus). NotReady is the ordinary "still pending" poll result
// and produces no event.
func (r *Recorder) OnGetFenceStatus(device vk.Device, fence vk.Fence, result vk.Result) {
	if result == vk.NotReady {
		return
	}
	switch result {
	case vk.Success, vk.Timeout:
	default:
		r.logTolerated("GetFenceStatus", result)
		return
	}
	r.recordFenceWait(device, []vk.Fence{fence}, true, result == vk.Timeout)
}

func (r *Recorder) OnWaitForFences(device vk.Device, fences []vk.Fence, waitAll bool, result vk.Result) {
	switch result {
	case vk.Success, vk.Timeout:
	default:
		r.logTolerated("WaitForFences", result)
		return
	}
	r.recordFenceWait(device, fences, waitAll, result == vk.Timeout)
}

// recordFenceWait emits exactly one WaitForFences event per call (spec §3
// data model: "WaitForFences | fences[], fence_deps: [UID], wait_for_all,
// timed_out" is a single record, not one per fence; grounded on
// SyncAnalyzer::vki_WaitForFences, which assigns the full fence list onto
// one `cmd` and concatenates every fence's signal UIDs into one
// `cmd.fenceDeps`). Emitted unconditionally, even when no fence yet has a
// producer — an unsignaled wait is a boundary behavior, not an omission
// (spec §8 "A wait on a semaphore that was never signaled emits ... with
// empty wait_deps — not an error"; the same applies to fences).
func (r *Recorder) recordFenceWait(device vk.Device, fences []vk.Fence, waitAll, timedOut bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return
	}

	var deps []UID
	for _, f := range fences {
		deps = append(deps, r.signalFences[f]...)
	}

	r.appendLocked(Event{
		Kind:       EventWaitForFences,
		Device:     device,
		Fences:     append([]vk.Fence(nil), fences...),
		FenceDeps:  deps,
		WaitForAll: waitAll,
		TimedOut:   timedOut,
	})
}

// OnAcquireNextImage records the acquired image's producer edges (the
// semaphore/fence this acquire will itself signal) and stores this event's
// UID as the new producer of that swapchain image index, so a later
// QueuePresent of the same image can depend on it (spec §3 "swapchains":
// "grown or overwritten per acquire"; no anchor in the original source,
// see SPEC_FULL.md).
func (r *Recorder) OnAcquireNextImage(device vk.Device, swapchain vk.Swapchain, semaphore vk.Semaphore, fence vk.Fence, imageIndex uint32, result vk.Result) {
	switch result {
	case vk.Success, vk.Timeout:
	default:
		r.logTolerated("AcquireNextImage", result)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return
	}

	uid := r.appendLocked(Event{
		Kind:       EventAcquireImage,
		Device:     device,
		Swapchain:  swapchain,
		ImageIndex: imageIndex,
		Result:     result,
	})

	if semaphore != 0 {
		r.signalSemaphores[semaphore] = uid
	}
	if fence != 0 {
		r.signalFences[fence] = append(r.signalFences[fence], uid)
	}

	images := r.swapchains[swapchain]
	for uint32(len(images)) <= imageIndex {
		images = append(images, 0)
	}
	images[imageIndex] = uid
	r.swapchains[swapchain] = images
}

// OnQueuePresent consumes each wait semaphore and records a dependency on
// the swapchain image's last producer, so the graph can draw both the
// semaphore edge and the swapchain-provenance edge into the same present
// event (spec §4.3 QueuePresent).
func (r *Recorder) OnQueuePresent(queue vk.Queue, info vk.PresentInfo, result vk.Result) {
	switch result {
	case vk.Success, vk.SuboptimalKHR:
	default:
		r.logTolerated("QueuePresent", result)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return
	}

	var semDeps []UID
	for _, sem := range info.WaitSemaphores {
		if uid, ok := r.signalSemaphores[sem]; ok {
			semDeps = append(semDeps, uid)
			delete(r.signalSemaphores, sem)
		}
	}

	var swapchainDeps []UID
	for i, sc := range info.Swapchains {
		if i >= len(info.ImageIndices) {
			break
		}
		idx := info.ImageIndices[i]
		if images := r.swapchains[sc]; int(idx) < len(images) && images[idx] != 0 {
			swapchainDeps = append(swapchainDeps, images[idx])
		}
	}

	r.appendLocked(Event{
		Kind:          EventQueuePresent,
		Device:        r.queues.deviceFor(queue),
		Queue:         queue,
		SemaphoreDeps: semDeps,
		SwapchainDeps: swapchainDeps,
		Result:        result,
	})
}

func (r *Recorder) OnDebugMarkerSetObjectNameEXT(device vk.Device, info vk.DebugObjectName) {
	r.renameIfQueue(info)
}

func (r *Recorder) OnSetDebugUtilsObjectNameEXT(device vk.Device, info vk.DebugObjectName) {
	r.renameIfQueue(info)
}

func (r *Recorder) renameIfQueue(info vk.DebugObjectName) {
	if info.ObjectType != vk.ObjectTypeQueue {
		return
	}
	r.queues.rename(vk.Queue(info.Object), info.Name)
}

// logTolerated records a diagnostic for a next-layer failure the recorder
// deliberately does not mutate state for (spec §7 "next-layer failure:
// don't mutate signal-state except for tolerated partial-success kinds").
func (r *Recorder) logTolerated(call string, result vk.Result) {
	log.Debug().Str("call", call).Int32("result", int32(result)).Msg("vsa: next-layer call did not succeed, skipping sync-state update")
}
