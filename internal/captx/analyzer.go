// Package captx implements the Capture Context (spec §4.2): the per-instance
// bundle of resolved next-layer function tables, the registered analyzer
// list, and the frame-countdown capture budget.
package captx

import "github.com/vsagraph/vsa/vk"

// Analyzer is the capability set a registered observer implements (spec
// §4.2 "the analyzer abstraction is a capability set"). The Event Recorder
// is always analyzer #0; additional analyzers can be registered without
// the Interception Façade changing at all.
//
// A fixed interface plays the role the spec's design notes describe as
// "a sum-type enumerating analyzer kinds plus a fixed dispatch switch, or a
// small vector of function-pointer tuples" — Go has no sum types, and an
// interface value already is a function-pointer tuple (a vtable pointer
// plus data), so this is the direct idiomatic translation of either option.
type Analyzer interface {
	Start()
	Stop()

	OnCreateInstance(instance vk.Instance, fns vk.InstanceFunctions)
	OnCreateDevice(physicalDevice vk.PhysicalDevice, device vk.Device, fns vk.DeviceFunctions, queueFamilies []vk.QueueFamilyProperties)

	OnGetDeviceQueue(device vk.Device, family, index uint32, queue vk.Queue)
	OnGetDeviceQueue2(device vk.Device, family, index uint32, queue vk.Queue)
	OnQueueSubmit(queue vk.Queue, batches []vk.SubmitBatch, fence vk.Fence, result vk.Result)
	OnQueueWaitIdle(queue vk.Queue, result vk.Result)
	OnDeviceWaitIdle(device vk.Device, result vk.Result)
	OnQueueBindSparse(queue vk.Queue, batches []vk.SubmitBatch, fence vk.Fence, result vk.Result)
	OnResetFences(device vk.Device, fences []vk.Fence, result vk.Result)
	OnGetFenceStatus(device vk.Device, fence vk.Fence, result vk.Result)
	OnWaitForFences(device vk.Device, fences []vk.Fence, waitAll bool, result vk.Result)
	OnAcquireNextImage(device vk.Device, swapchain vk.Swapchain, semaphore vk.Semaphore, fence vk.Fence, imageIndex uint32, result vk.Result)
	OnQueuePresent(queue vk.Queue, info vk.PresentInfo, result vk.Result)
	OnDebugMarkerSetObjectNameEXT(device vk.Device, info vk.DebugObjectName)
	OnSetDebugUtilsObjectNameEXT(device vk.Device, info vk.DebugObjectName)
}
