package vsa

import (
	"github.com/rs/zerolog/log"

	"github.com/vsagraph/vsa/internal/handle"
	"github.com/vsagraph/vsa/internal/vsaerr"
	"github.com/vsagraph/vsa/vk"
)

// AcquireNextImage forwards to the next layer and notifies every analyzer
// (spec §4.3 AcquireNextImage{,2}). Both ABI variants have identical
// causal effect, so both forward to the same Analyzer.OnAcquireNextImage
// hook (spec §6 "the recorder hooks fire for exactly this set").
func AcquireNextImage(device vk.Device, swapchain vk.Swapchain, timeoutNS uint64, semaphore vk.Semaphore, fence vk.Fence) (uint32, vk.Result) {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "AcquireNextImage").Msg("vsa: routing miss, no-op pass-through")
		return 0, vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	var imageIndex uint32
	result := vk.ErrorUnknown
	if fns.AcquireNextImage != nil {
		imageIndex, result = fns.AcquireNextImage(device, swapchain, timeoutNS, semaphore, fence)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnAcquireNextImage(device, swapchain, semaphore, fence, imageIndex, result) })
	return imageIndex, result
}

// AcquireNextImage2 is the extended-info variant of AcquireNextImage.
func AcquireNextImage2(device vk.Device, swapchain vk.Swapchain, timeoutNS uint64, semaphore vk.Semaphore, fence vk.Fence) (uint32, vk.Result) {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "AcquireNextImage2").Msg("vsa: routing miss, no-op pass-through")
		return 0, vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	var imageIndex uint32
	result := vk.ErrorUnknown
	if fns.AcquireNextImage2 != nil {
		imageIndex, result = fns.AcquireNextImage2(device, swapchain, timeoutNS, semaphore, fence)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnAcquireNextImage(device, swapchain, semaphore, fence, imageIndex, result) })
	return imageIndex, result
}
