// Package handle implements the Handle Registry (spec §4.1): the routing
// layer that maps every target-API handle the façade receives back to the
// Capture Context that owns it. Unlike the teacher's Registry[T, M], these
// handles are allocated and owned by the next-layer driver, never by us —
// we never recycle a slot, so there is no epoch to check and no free list
// to maintain. The shape this package borrows from the teacher is the
// per-kind map block and the RWMutex-guarded struct, not the ID scheme.
package handle

import (
	"sync"

	"github.com/vsagraph/vsa/internal/captx"
	"github.com/vsagraph/vsa/vk"
)

// Registry routes every handle kind the façade sees back to the Capture
// Context it belongs to (spec §4.1). One Registry is process-wide; see
// Global.
type Registry struct {
	mu sync.RWMutex

	instances       map[vk.Instance]*captx.Context
	physicalDevices map[vk.PhysicalDevice]*captx.Context
	devices         map[vk.Device]*captx.Context
	queues          map[vk.Queue]*captx.Context
	commandBuffers  map[vk.CommandBuffer]*captx.Context
	windows         map[vk.WindowHandle]*captx.Context
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		instances:       make(map[vk.Instance]*captx.Context),
		physicalDevices: make(map[vk.PhysicalDevice]*captx.Context),
		devices:         make(map[vk.Device]*captx.Context),
		queues:          make(map[vk.Queue]*captx.Context),
		commandBuffers:  make(map[vk.CommandBuffer]*captx.Context),
		windows:         make(map[vk.WindowHandle]*captx.Context),
	}
}

// AssociateInstance records that instance belongs to ctx.
func (r *Registry) AssociateInstance(instance vk.Instance, ctx *captx.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[instance] = ctx
}

// Instance returns the Capture Context instance belongs to, or nil if the
// handle is not registered (spec §7 "routing miss").
func (r *Registry) Instance(instance vk.Instance) *captx.Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.instances[instance]
}

// ForgetInstance removes instance's own routing entry. Physical devices,
// devices, queues, command buffers and windows associated with the same
// Capture Context are left registered.
func (r *Registry) ForgetInstance(instance vk.Instance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.instances, instance)
}

// AssociatePhysicalDevice records that physicalDevice belongs to ctx.
func (r *Registry) AssociatePhysicalDevice(physicalDevice vk.PhysicalDevice, ctx *captx.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.physicalDevices[physicalDevice] = ctx
}

// PhysicalDevice returns the Capture Context physicalDevice belongs to.
func (r *Registry) PhysicalDevice(physicalDevice vk.PhysicalDevice) *captx.Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.physicalDevices[physicalDevice]
}

// AssociateDevice records that device belongs to ctx.
func (r *Registry) AssociateDevice(device vk.Device, ctx *captx.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices[device] = ctx
}

// Device returns the Capture Context device belongs to.
func (r *Registry) Device(device vk.Device) *captx.Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.devices[device]
}

// ForgetDevice removes device's own routing entry. Queues and command
// buffers obtained from it stay registered: the registry does not record
// which device a queue or command buffer came from.
func (r *Registry) ForgetDevice(device vk.Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.devices, device)
}

// AssociateQueue records that queue belongs to ctx.
func (r *Registry) AssociateQueue(queue vk.Queue, ctx *captx.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queues[queue] = ctx
}

// Queue returns the Capture Context queue belongs to.
func (r *Registry) Queue(queue vk.Queue) *captx.Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.queues[queue]
}

// AssociateCommandBuffers records that every buffer in buffers belongs to
// ctx, as allocated by a single AllocateCommandBuffers call.
func (r *Registry) AssociateCommandBuffers(buffers []vk.CommandBuffer, ctx *captx.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cb := range buffers {
		r.commandBuffers[cb] = ctx
	}
}

// CommandBuffer returns the Capture Context cb belongs to.
func (r *Registry) CommandBuffer(cb vk.CommandBuffer) *captx.Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.commandBuffers[cb]
}

// ForgetCommandBuffers removes every handle in buffers, mirroring a
// FreeCommandBuffers call.
func (r *Registry) ForgetCommandBuffers(buffers []vk.CommandBuffer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cb := range buffers {
		delete(r.commandBuffers, cb)
	}
}

// AssociateWindow records the Capture Context a native window surface
// belongs to, the join point the external hotkey bridge uses (spec §3
// Capture Context "window"; see also CaptureContextForWindow).
func (r *Registry) AssociateWindow(w vk.WindowHandle, ctx *captx.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[w] = ctx
}

// Window returns the Capture Context associated with a native window, or
// nil if none is registered.
func (r *Registry) Window(w vk.WindowHandle) *captx.Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.windows[w]
}

// Counts reports how many handles of each kind are currently registered,
// for diagnostics and tests (teacher analogue: Hub.ResourceCounts).
type Counts struct {
	Instances       int
	PhysicalDevices int
	Devices         int
	Queues          int
	CommandBuffers  int
	Windows         int
}

// Counts returns the current per-kind handle counts.
func (r *Registry) Counts() Counts {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Counts{
		Instances:       len(r.instances),
		PhysicalDevices: len(r.physicalDevices),
		Devices:         len(r.devices),
		Queues:          len(r.queues),
		CommandBuffers:  len(r.commandBuffers),
		Windows:         len(r.windows),
	}
}
