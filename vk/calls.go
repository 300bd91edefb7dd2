package vk

// QueueFamilyFlags describes the capability bits of a queue family, used
// only to derive a default queue name (spec §3 queues.name).
type QueueFamilyFlags uint32

const (
	QueueGraphics QueueFamilyFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

// QueueFamilyProperties is the subset of the real struct this layer needs
// to derive default queue names.
type QueueFamilyProperties struct {
	Flags      QueueFamilyFlags
	QueueCount uint32
}

// SubmitBatch is one element of a multi-batch VkQueueSubmit (spec GLOSSARY
// "Submit batch").
type SubmitBatch struct {
	WaitSemaphores   []Semaphore
	SignalSemaphores []Semaphore
	CommandBuffers   []CommandBuffer
}

// PresentInfo is the argument shape of QueuePresent.
type PresentInfo struct {
	WaitSemaphores []Semaphore
	Swapchains     []Swapchain
	ImageIndices   []uint32
}

// ObjectType identifies what kind of handle a debug-naming call is naming.
// Only Queue is acted on by the recorder (spec §4.3).
type ObjectType int

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypeQueue
)

// DebugObjectName is the argument shape shared by DebugMarkerSetObjectNameEXT
// and SetDebugUtilsObjectNameEXT after the two ABIs are normalized by the
// façade.
type DebugObjectName struct {
	ObjectType ObjectType
	Object     Handle
	Name       string
}
