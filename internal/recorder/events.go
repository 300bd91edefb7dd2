package recorder

import "github.com/vsagraph/vsa/vk"

// ThreadID identifies an application thread in the thread-identity table
// (spec §3 "thread_ids"). It is an opaque, process-local handle — never the
// OS thread ID itself — assigned the first time a thread is seen.
type ThreadID uint32

// EventKind discriminates the union of CPU-side sync events the recorder
// produces (spec §4.3). The original source models this union with a
// tagged std::variant (SyncAnalyzer.h GlobalSyncs_t); Go has no sum type,
// so EventKind plus a struct-of-optional-fields plays that role, matching
// the Analyzer interface's own sum-type-vs-interface justification.
type EventKind int

const (
	EventQueueSubmit EventKind = iota
	EventCmdBatch
	EventFenceSignal
	EventQueueWaitIdle
	EventDeviceWaitIdle
	EventWaitForFences
	EventAcquireImage
	EventQueuePresent
)

// String names an EventKind for diagnostics and .dot emission.
func (k EventKind) String() string {
	switch k {
	case EventQueueSubmit:
		return "QueueSubmit"
	case EventCmdBatch:
		return "CmdBatch"
	case EventFenceSignal:
		return "FenceSignal"
	case EventQueueWaitIdle:
		return "QueueWaitIdle"
	case EventDeviceWaitIdle:
		return "DeviceWaitIdle"
	case EventWaitForFences:
		return "WaitForFences"
	case EventAcquireImage:
		return "AcquireImage"
	case EventQueuePresent:
		return "QueuePresent"
	default:
		return "Unknown"
	}
}

// Event is one entry in the event log. Every event carries the shared
// header fields (spec §4.3 "every event carries thread, time, uid"); the
// Kind-specific fields that don't apply to a given kind are left zero.
type Event struct {
	UID      UID
	Kind     EventKind
	Thread   ThreadID
	Time     TimePoint
	Device   vk.Device

	// Queue is set on CmdBatch, QueueSubmit, FenceSignal, QueueWaitIdle and
	// QueuePresent.
	Queue vk.Queue

	// SemaphoreDeps lists producer UIDs consumed from signal_semaphores by
	// this event (CmdBatch.wait_deps, QueuePresent's semaphore wait_deps).
	SemaphoreDeps []UID

	// SwapchainDeps lists the AcquireImage UID that produced each
	// presented image, in QueuePresent.Swapchains order (spec §3
	// "QueuePresent ... swapchains: [(Swapchain,UID)]").
	SwapchainDeps []UID

	// FenceDeps lists the CmdBatch UIDs a FenceSignal depends on, or the
	// FenceSignal and AcquireImage UIDs a WaitForFences event read from
	// signal_fences
	// (spec §3 "FenceSignal ... depends_on", "WaitForFences ...
	// fence_deps").
	FenceDeps []UID

	// Batches lists the per-batch child UIDs a QueueSubmit produced, one
	// CmdBatch event per vk.SubmitBatch (spec §4.3 "QueueSubmit ... batches").
	Batches []UID

	// WaitSemaphores and SignalSemaphores are set on CmdBatch, mirroring
	// the originating vk.SubmitBatch (used only for diagnostics; the causal
	// effect is already captured via SemaphoreDeps and the signal map writes).
	WaitSemaphores   []vk.Semaphore
	SignalSemaphores []vk.Semaphore

	// Fence is set on QueueSubmit (the fence signaled by this submit, if
	// any) and FenceSignal. ResetFences is not itself an event (spec §4.3:
	// resets clear state but are not logged as an event).
	Fence vk.Fence

	// Fences is set on WaitForFences: the full fence list the call waited
	// on (spec §3 "WaitForFences ... fences[]"), one event per call rather
	// than one per fence, mirroring SyncAnalyzer::vki_WaitForFences.
	Fences []vk.Fence

	// WaitForAll and TimedOut are set on WaitForFences (spec §3
	// "WaitForFences ... wait_for_all, timed_out"): WaitForAll mirrors the
	// call's own wait-all argument (forced true for a GetFenceStatus poll,
	// which waits on exactly one fence); TimedOut is true iff the
	// next-layer result was the tolerated timeout code rather than success.
	WaitForAll bool
	TimedOut   bool

	// Swapchain, ImageIndex are set on AcquireImage and QueuePresent.
	Swapchain  vk.Swapchain
	ImageIndex uint32

	// Result is the next-layer result code observed for this call.
	Result vk.Result
}
