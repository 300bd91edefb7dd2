package vsa

import (
	"github.com/rs/zerolog/log"

	"github.com/vsagraph/vsa/internal/handle"
	"github.com/vsagraph/vsa/internal/vsaerr"
	"github.com/vsagraph/vsa/vk"
)

// CreateDevice associates the new device handle with the context of the
// physical device it was created from (spec §4.1 "On successful device
// creation") and initializes the context's device function table,
// notifying every analyzer (spec §4.2 InitDevice).
func CreateDevice(physicalDevice vk.PhysicalDevice, device vk.Device, fns vk.DeviceFunctions, queueFamilies []vk.QueueFamilyProperties) vk.Result {
	ctx := handle.Global().PhysicalDevice(physicalDevice)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "CreateDevice").Msg("vsa: routing miss, no-op pass-through")
		return vk.ErrorUnknown
	}

	handle.Global().AssociateDevice(device, ctx)
	ctx.InitDevice(physicalDevice, device, fns, queueFamilies)
	return vk.Success
}

// DestroyDevice removes the device's routing entry before forwarding to
// the next layer. Its queues and command buffers keep their entries.
func DestroyDevice(device vk.Device) {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "DestroyDevice").Msg("vsa: routing miss, no-op pass-through")
		return
	}

	handle.Global().ForgetDevice(device)
	if fns := ctx.DeviceFunctions(); fns.DestroyDevice != nil {
		fns.DestroyDevice(device)
	}
}

// GetDeviceProcAddr mirrors GetInstanceProcAddr at the device level (spec
// §6).
func GetDeviceProcAddr(device vk.Device, name string) uintptr {
	if interceptedNames[name] {
		return 1
	}

	ctx := handle.Global().Device(device)
	if ctx == nil {
		return 0
	}
	if next := ctx.DeviceFunctions().GetDeviceProcAddr; next != nil {
		return next(device, name)
	}
	return 0
}

// GetDeviceQueue associates the returned queue handle with the device's
// context (spec §4.1 "On successful queue retrieval") and notifies the
// recorder so it can derive the queue's default name (spec §4.3
// GetDeviceQueue).
func GetDeviceQueue(device vk.Device, family, index uint32) vk.Queue {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "GetDeviceQueue").Msg("vsa: routing miss, no-op pass-through")
		return 0
	}

	fns := ctx.DeviceFunctions()
	if fns.GetDeviceQueue == nil {
		return 0
	}
	queue := fns.GetDeviceQueue(device, family, index)
	if queue == 0 {
		return queue
	}

	handle.Global().AssociateQueue(queue, ctx)
	notifyAnalyzers(ctx, func(a analyzer) { a.OnGetDeviceQueue(device, family, index, queue) })
	return queue
}

// GetDeviceQueue2 is the extended-info variant of GetDeviceQueue.
func GetDeviceQueue2(device vk.Device, family, index uint32) vk.Queue {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "GetDeviceQueue2").Msg("vsa: routing miss, no-op pass-through")
		return 0
	}

	fns := ctx.DeviceFunctions()
	if fns.GetDeviceQueue2 == nil {
		return 0
	}
	queue := fns.GetDeviceQueue2(device, family, index)
	if queue == 0 {
		return queue
	}

	handle.Global().AssociateQueue(queue, ctx)
	notifyAnalyzers(ctx, func(a analyzer) { a.OnGetDeviceQueue2(device, family, index, queue) })
	return queue
}

// AllocateCommandBuffers associates each returned command-buffer handle
// with the device's context (spec §4.1 "On successful command-buffer
// allocation").
func AllocateCommandBuffers(device vk.Device, count int) ([]vk.CommandBuffer, vk.Result) {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "AllocateCommandBuffers").Msg("vsa: routing miss, no-op pass-through")
		return nil, vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	if fns.AllocateCommandBuffers == nil {
		return nil, vk.Success
	}
	buffers, result := fns.AllocateCommandBuffers(device, count)
	if result.IsSuccess() {
		handle.Global().AssociateCommandBuffers(buffers, ctx)
	}
	return buffers, result
}

// FreeCommandBuffers removes the freed handles from the registry (spec
// §4.1 "freed command buffers are removed").
func FreeCommandBuffers(device vk.Device, buffers []vk.CommandBuffer) {
	ctx := handle.Global().Device(device)
	handle.Global().ForgetCommandBuffers(buffers)
	if ctx == nil {
		return
	}
	if fns := ctx.DeviceFunctions(); fns.FreeCommandBuffers != nil {
		fns.FreeCommandBuffers(device, buffers)
	}
}
