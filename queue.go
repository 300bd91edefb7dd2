package vsa

import (
	"github.com/rs/zerolog/log"

	"github.com/vsagraph/vsa/internal/handle"
	"github.com/vsagraph/vsa/internal/vsaerr"
	"github.com/vsagraph/vsa/vk"
)

// QueueSubmit forwards to the next layer and notifies every analyzer with
// the canonical argument tuple plus result (spec §4.5; the recorder's own
// mutation rules are in §4.3, implemented in internal/recorder).
func QueueSubmit(queue vk.Queue, batches []vk.SubmitBatch, fence vk.Fence) vk.Result {
	ctx := handle.Global().Queue(queue)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "QueueSubmit").Msg("vsa: routing miss, no-op pass-through")
		return vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	result := vk.ErrorUnknown
	if fns.QueueSubmit != nil {
		result = fns.QueueSubmit(queue, batches, fence)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnQueueSubmit(queue, batches, fence, result) })
	return result
}

// QueueWaitIdle forwards and notifies (spec §4.3 QueueWaitIdle).
func QueueWaitIdle(queue vk.Queue) vk.Result {
	ctx := handle.Global().Queue(queue)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "QueueWaitIdle").Msg("vsa: routing miss, no-op pass-through")
		return vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	result := vk.ErrorUnknown
	if fns.QueueWaitIdle != nil {
		result = fns.QueueWaitIdle(queue)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnQueueWaitIdle(queue, result) })
	return result
}

// DeviceWaitIdle forwards and notifies (spec §4.3 DeviceWaitIdle).
func DeviceWaitIdle(device vk.Device) vk.Result {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "DeviceWaitIdle").Msg("vsa: routing miss, no-op pass-through")
		return vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	result := vk.ErrorUnknown
	if fns.DeviceWaitIdle != nil {
		result = fns.DeviceWaitIdle(device)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnDeviceWaitIdle(device, result) })
	return result
}

// QueueBindSparse forwards and notifies; the recorder itself treats this
// as a no-op (spec §4.3 "QueueBindSparse: no-op", §9 open question).
func QueueBindSparse(queue vk.Queue, batches []vk.SubmitBatch, fence vk.Fence) vk.Result {
	ctx := handle.Global().Queue(queue)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "QueueBindSparse").Msg("vsa: routing miss, no-op pass-through")
		return vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	result := vk.ErrorUnknown
	if fns.QueueBindSparse != nil {
		result = fns.QueueBindSparse(queue, batches, fence)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnQueueBindSparse(queue, batches, fence, result) })
	return result
}

// QueuePresent forwards, notifies, and on success drives the Capture
// Context's frame countdown (spec §4.3 "Call context.OnPresent() ... at
// the end"; spec §4.5 returns the next-layer result unchanged).
func QueuePresent(queue vk.Queue, info vk.PresentInfo) vk.Result {
	ctx := handle.Global().Queue(queue)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "QueuePresent").Msg("vsa: routing miss, no-op pass-through")
		return vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	result := vk.ErrorUnknown
	if fns.QueuePresent != nil {
		result = fns.QueuePresent(queue, info)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnQueuePresent(queue, info, result) })

	switch result {
	case vk.Success, vk.SuboptimalKHR:
		ctx.OnPresent()
	}
	return result
}
