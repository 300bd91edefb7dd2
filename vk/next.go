package vk

// GetInstanceProcAddrFunc is the next layer's vkGetInstanceProcAddr, saved
// during the loader handshake (spec §6 "Loader handshake").
type GetInstanceProcAddrFunc func(instance Instance, name string) uintptr

// GetDeviceProcAddrFunc is the device-level analogue.
type GetDeviceProcAddrFunc func(device Device, name string) uintptr

// InstanceFunctions is the resolved next-layer instance-level function
// table (spec §3 Capture Context "next_instance_fns"). Only the
// sync-relevant and handshake-relevant entry points are modeled; every
// other instance call is a pure pass-through the façade forwards without
// going through this table (spec §6).
type InstanceFunctions struct {
	GetInstanceProcAddr      GetInstanceProcAddrFunc
	DestroyInstance          func(Instance)
	EnumeratePhysicalDevices func(Instance) ([]PhysicalDevice, Result)
	GetPhysicalDeviceQueueFamilyProperties func(PhysicalDevice) []QueueFamilyProperties
	CreateDevice             func(PhysicalDevice) (Device, Result)
	CreateWindowSurface      func(Instance, WindowHandle) (Handle, Result)
}

// DeviceFunctions is the resolved next-layer device-level function table
// (spec §3 Capture Context "next_device_fns"), covering exactly the
// sync-relevant catalog from spec §6 plus the handful of lifecycle calls
// the Handle Registry needs to stay correct (AllocateCommandBuffers,
// FreeCommandBuffers, DestroyDevice).
type DeviceFunctions struct {
	GetDeviceProcAddr GetDeviceProcAddrFunc
	DestroyDevice     func(Device)

	AllocateCommandBuffers func(Device, int) ([]CommandBuffer, Result)
	FreeCommandBuffers     func(Device, []CommandBuffer)

	GetDeviceQueue  func(device Device, family, index uint32) Queue
	GetDeviceQueue2 func(device Device, family, index uint32) Queue

	QueueSubmit    func(queue Queue, batches []SubmitBatch, fence Fence) Result
	QueueWaitIdle  func(queue Queue) Result
	DeviceWaitIdle func(device Device) Result
	QueueBindSparse func(queue Queue, batches []SubmitBatch, fence Fence) Result

	ResetFences    func(device Device, fences []Fence) Result
	GetFenceStatus func(device Device, fence Fence) Result
	WaitForFences  func(device Device, fences []Fence, waitAll bool, timeoutNS uint64) Result

	AcquireNextImage  func(device Device, swapchain Swapchain, timeoutNS uint64, semaphore Semaphore, fence Fence) (imageIndex uint32, result Result)
	AcquireNextImage2 func(device Device, swapchain Swapchain, timeoutNS uint64, semaphore Semaphore, fence Fence) (imageIndex uint32, result Result)

	QueuePresent func(queue Queue, info PresentInfo) Result

	DebugMarkerSetObjectNameEXT func(device Device, info DebugObjectName) Result
	SetDebugUtilsObjectNameEXT  func(device Device, info DebugObjectName) Result
}
