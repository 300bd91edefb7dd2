package captx

import (
	"sync"
	"sync/atomic"

	"github.com/vsagraph/vsa/vk"
)

// idle is the capture_frames sentinel meaning "not currently capturing"
// (spec §3 Capture Context "capture_frames: -1 means idle").
const idle int32 = -1

// Context is one Capture Context per live target-API instance (spec §4.2).
// Its next-layer function tables are written once during construction and
// read concurrently afterward without locking (spec §5 "Shared-resource
// policy"); its analyzer list is likewise frozen once interception
// notifications start. After that point the frame countdown mutates, and
// so does Window, which the façade sets when a window surface is created;
// only the countdown is synchronized.
type Context struct {
	mu sync.Mutex

	instanceFns vk.InstanceFunctions
	deviceFns   vk.DeviceFunctions

	analyzers []Analyzer

	captureFrames atomic.Int32

	// Window is the native window tag used by the external hotkey bridge
	// (spec §3 Capture Context "window").
	Window vk.WindowHandle

	// OnCaptureStop, if set, runs after every analyzer's Stop hook has
	// fired (both from an explicit Stop and from OnPresent's countdown
	// reaching zero). This is the join point the façade uses to read the
	// recorder's Snapshot and hand it to the Graph Builder without the
	// Capture Context needing to know the Event Recorder or Graph
	// Builder types exist (spec §4.2: "additional analyzers may be
	// registered ... without touching the façade" — the same
	// decoupling applies to what happens to the log once capture ends).
	OnCaptureStop func()
}

// New creates an idle Capture Context with no analyzers registered.
// Callers append analyzers with RegisterAnalyzer before the context is
// published to the Handle Registry; the recorder is always analyzer #0.
func New() *Context {
	c := &Context{}
	c.captureFrames.Store(idle)
	return c
}

// RegisterAnalyzer appends an analyzer. Must only be called during context
// construction, before the context becomes reachable from interceptions —
// the analyzer list is not synchronized for mutation after that point.
func (c *Context) RegisterAnalyzer(a Analyzer) {
	c.analyzers = append(c.analyzers, a)
}

// Notify calls fn once for every registered analyzer, in registration
// order (the recorder is always first). This is how the façade delivers
// the per-call notifications required by spec §4.5 step 4.
func (c *Context) Notify(fn func(Analyzer)) {
	for _, a := range c.analyzers {
		fn(a)
	}
}

// InstanceFunctions returns the resolved next-layer instance function
// table. Safe for concurrent use: the table is immutable after InitInstance.
func (c *Context) InstanceFunctions() vk.InstanceFunctions {
	return c.instanceFns
}

// DeviceFunctions returns the resolved next-layer device function table.
func (c *Context) DeviceFunctions() vk.DeviceFunctions {
	return c.deviceFns
}

// InitInstance populates the instance function table and notifies every
// analyzer (spec §4.2 InitInstance).
func (c *Context) InitInstance(instance vk.Instance, fns vk.InstanceFunctions) {
	c.instanceFns = fns
	for _, a := range c.analyzers {
		a.OnCreateInstance(instance, fns)
	}
}

// InitDevice populates the device function table and notifies every
// analyzer (spec §4.2 InitDevice). queueFamilies is the physical device's
// queue family property list, queried once by the façade during device
// creation, so analyzers can derive default queue names without each
// having to call back into the next layer themselves.
func (c *Context) InitDevice(physicalDevice vk.PhysicalDevice, device vk.Device, fns vk.DeviceFunctions, queueFamilies []vk.QueueFamilyProperties) {
	c.deviceFns = fns
	for _, a := range c.analyzers {
		a.OnCreateDevice(physicalDevice, device, fns, queueFamilies)
	}
}

// Start sets the capture budget and runs every analyzer's Start hook
// (spec §4.2 Start).
func (c *Context) Start(frames int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.captureFrames.Store(frames)
	for _, a := range c.analyzers {
		a.Start()
	}
}

// Stop runs every analyzer's Stop hook and resets the budget to idle. Safe
// to call even when no capture is in progress.
func (c *Context) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, a := range c.analyzers {
		a.Stop()
	}
	c.captureFrames.Store(idle)
	if c.OnCaptureStop != nil {
		c.OnCaptureStop()
	}
}

// OnPresent decrements the capture budget when it is positive; when it
// reaches zero every analyzer's Stop hook fires and the budget returns to
// idle (spec §4.2 OnPresent).
func (c *Context) OnPresent() {
	c.mu.Lock()
	defer c.mu.Unlock()

	frames := c.captureFrames.Load()
	if frames <= 0 {
		return
	}

	frames--
	c.captureFrames.Store(frames)
	if frames == 0 {
		for _, a := range c.analyzers {
			a.Stop()
		}
		c.captureFrames.Store(idle)
		if c.OnCaptureStop != nil {
			c.OnCaptureStop()
		}
	}
}

// Capturing reports whether a capture is currently in progress.
func (c *Context) Capturing() bool {
	return c.captureFrames.Load() != idle
}
