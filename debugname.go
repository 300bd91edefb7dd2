package vsa

import (
	"github.com/rs/zerolog/log"

	"github.com/vsagraph/vsa/internal/handle"
	"github.com/vsagraph/vsa/internal/vsaerr"
	"github.com/vsagraph/vsa/vk"
)

// DebugMarkerSetObjectNameEXT forwards to the next layer and notifies
// every analyzer; the recorder rewrites its recorded queue name when
// info.ObjectType is a queue (spec §4.3 "when the named object is a
// queue, rewrite queues[h].name").
func DebugMarkerSetObjectNameEXT(device vk.Device, info vk.DebugObjectName) vk.Result {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "DebugMarkerSetObjectNameEXT").Msg("vsa: routing miss, no-op pass-through")
		return vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	result := vk.ErrorUnknown
	if fns.DebugMarkerSetObjectNameEXT != nil {
		result = fns.DebugMarkerSetObjectNameEXT(device, info)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnDebugMarkerSetObjectNameEXT(device, info) })
	return result
}

// SetDebugUtilsObjectNameEXT is the newer-ABI analogue of
// DebugMarkerSetObjectNameEXT; both forward to the same recorder effect.
func SetDebugUtilsObjectNameEXT(device vk.Device, info vk.DebugObjectName) vk.Result {
	ctx := handle.Global().Device(device)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "SetDebugUtilsObjectNameEXT").Msg("vsa: routing miss, no-op pass-through")
		return vk.ErrorUnknown
	}

	fns := ctx.DeviceFunctions()
	result := vk.ErrorUnknown
	if fns.SetDebugUtilsObjectNameEXT != nil {
		result = fns.SetDebugUtilsObjectNameEXT(device, info)
	}
	notifyAnalyzers(ctx, func(a analyzer) { a.OnSetDebugUtilsObjectNameEXT(device, info) })
	return result
}
