package vsa

import (
	"github.com/rs/zerolog/log"

	"github.com/vsagraph/vsa/internal/handle"
	"github.com/vsagraph/vsa/internal/vsaerr"
	"github.com/vsagraph/vsa/vk"
)

// ResetFences forwards to the next layer and notifies every analyzer (spec
// §4.3 ResetFences: "on success, erase each fence from signal_fences").
func ResetFences(device vk.Device, fences []vk.Fence) vk.Result {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "ResetFences").Msg("vsa: routing miss, no-op pass-through")
		return vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	result := vk.ErrorUnknown
	if fns.ResetFences != nil {
		result = fns.ResetFences(device, fences)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnResetFences(device, fences, result) })
	return result
}

// GetFenceStatus forwards and notifies (spec §4.3 GetFenceStatus): a
// successful or timed-out poll records a host-side WaitForFences event, a
// "not ready" poll produces no event at all.
func GetFenceStatus(device vk.Device, fence vk.Fence) vk.Result {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "GetFenceStatus").Msg("vsa: routing miss, no-op pass-through")
		return vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	result := vk.ErrorUnknown
	if fns.GetFenceStatus != nil {
		result = fns.GetFenceStatus(device, fence)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnGetFenceStatus(device, fence, result) })
	return result
}

// WaitForFences forwards and notifies (spec §4.3 WaitForFences). timeoutNS
// is forwarded to the next layer unchanged; the recorder never imposes its
// own timeout (spec §5 "Cancellation & timeouts").
func WaitForFences(device vk.Device, fences []vk.Fence, waitAll bool, timeoutNS uint64) vk.Result {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "WaitForFences").Msg("vsa: routing miss, no-op pass-through")
		return vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	result := vk.ErrorUnknown
	if fns.WaitForFences != nil {
		result = fns.WaitForFences(device, fences, waitAll, timeoutNS)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnWaitForFences(device, fences, waitAll, result) })
	return result
}
