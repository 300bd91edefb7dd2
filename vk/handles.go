// Package vk is a Go-native stand-in for the target graphics/compute API's
// ABI: opaque handles, the sync-relevant call argument shapes, and result
// codes. It has no cgo dependency and does not talk to a real driver — the
// interception layer built on top of it receives already-resolved
// next-layer function pointers (see InstanceFunctions and DeviceFunctions)
// exactly as the real loader handshake would hand them over.
package vk

// Handle is the common shape of every opaque, pointer-sized API handle.
type Handle uintptr

// IsNull reports whether h is the null handle.
func (h Handle) IsNull() bool { return h == 0 }

// Instance, PhysicalDevice, Device, Queue, CommandBuffer and WindowHandle
// are the six handle kinds the Handle Registry routes on (spec §3).
type (
	Instance       Handle
	PhysicalDevice Handle
	Device         Handle
	Queue          Handle
	CommandBuffer  Handle
	WindowHandle   Handle
)

// Semaphore, Fence and Swapchain are handles that appear only in call
// arguments; they are never routed through the Handle Registry themselves.
type (
	Semaphore Handle
	Fence     Handle
	Swapchain Handle
)

// Result mirrors the target API's result-code domain closely enough for
// the sync-relevant subset this layer cares about.
type Result int32

const (
	Success              Result = 0
	NotReady             Result = 1
	Timeout              Result = 2
	SuboptimalKHR        Result = 1000001003
	ErrorOutOfDateKHR    Result = -1000001004
	ErrorDeviceLost      Result = -4
	ErrorUnknown         Result = -13
	ErrorInitFailed      Result = -3
	ErrorLayerNotPresent Result = -6
)

// IsSuccess reports whether r is the unconditional success code.
func (r Result) IsSuccess() bool { return r == Success }
