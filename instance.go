package vsa

import (
	"github.com/rs/zerolog/log"

	"github.com/vsagraph/vsa/internal/captx"
	"github.com/vsagraph/vsa/internal/handle"
	"github.com/vsagraph/vsa/internal/recorder"
	"github.com/vsagraph/vsa/internal/vsaerr"
	"github.com/vsagraph/vsa/vk"
)

// interceptedNames is the set of entry points this layer implements
// itself rather than deferring straight to the next layer (spec §6
// "lookup the layer's own table first"). Every other call is a pure
// pass-through (spec §1 "thin pass-through of every non-sync API entry
// point"), which this façade forwards without going through the table.
var interceptedNames = map[string]bool{
	"vkGetDeviceQueue":                  true,
	"vkGetDeviceQueue2":                 true,
	"vkQueueSubmit":                     true,
	"vkQueueWaitIdle":                   true,
	"vkDeviceWaitIdle":                  true,
	"vkQueueBindSparse":                 true,
	"vkResetFences":                     true,
	"vkGetFenceStatus":                  true,
	"vkWaitForFences":                   true,
	"vkAcquireNextImageKHR":             true,
	"vkAcquireNextImage2KHR":            true,
	"vkQueuePresentKHR":                 true,
	"vkDebugMarkerSetObjectNameEXT":     true,
	"vkSetDebugUtilsObjectNameEXT":      true,
	"vkCreateInstance":                  true,
	"vkDestroyInstance":                 true,
	"vkCreateDevice":                    true,
	"vkDestroyDevice":                   true,
	"vkEnumerateInstanceExtensionProperties": true,
	"vkEnumerateDeviceExtensionProperties":   true,
	"vkEnumerateInstanceLayerProperties":     true,
	"vkEnumerateDeviceLayerProperties":       true,
}

// CreateInstance constructs a fresh Capture Context for a successfully
// created instance and associates it in the Handle Registry (spec §4.1
// "On a successful instance creation"). The next layer's own
// vkCreateInstance call is the dispatch-table-construction concern §1
// declares out of scope; by the time this is called, instance and fns are
// already the product of that (external) handshake.
func CreateInstance(instance vk.Instance, fns vk.InstanceFunctions) vk.Result {
	ctx := captx.New()
	rec := recorder.New()
	ctx.RegisterAnalyzer(rec)
	ctx.InitInstance(instance, fns)
	wireCaptureOutput(ctx, rec)

	handle.Global().AssociateInstance(instance, ctx)
	return vk.Success
}

// DestroyInstance removes the instance's routing entry before forwarding
// to the next layer, per the façade's destroy-ordering rule (spec §4.5
// step 3: "destruction notifies before the next-layer call so the context
// is still reachable" — here there is no sync-relevant notification to
// make, only registry bookkeeping, which must still happen first).
func DestroyInstance(instance vk.Instance) {
	ctx := handle.Global().Instance(instance)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "DestroyInstance").Msg("vsa: routing miss, no-op pass-through")
		return
	}

	handle.Global().ForgetInstance(instance)
	if fns := ctx.InstanceFunctions(); fns.DestroyInstance != nil {
		fns.DestroyInstance(instance)
	}
}

// EnumeratePhysicalDevices associates every returned physical-device
// handle with the instance's Capture Context (spec §4.1 "On successful
// physical-device enumeration").
func EnumeratePhysicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, vk.Result) {
	ctx := handle.Global().Instance(instance)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "EnumeratePhysicalDevices").Msg("vsa: routing miss, no-op pass-through")
		return nil, vk.ErrorUnknown
	}

	fns := ctx.InstanceFunctions()
	if fns.EnumeratePhysicalDevices == nil {
		return nil, vk.Success
	}

	devices, result := fns.EnumeratePhysicalDevices(instance)
	if !result.IsSuccess() {
		return devices, result
	}

	for _, pd := range devices {
		handle.Global().AssociatePhysicalDevice(pd, ctx)
	}
	return devices, result
}

// CreateWindowSurface associates the returned native window handle with
// the instance's Capture Context, the join point the external hotkey
// bridge relies on (spec §4.1 "On successful window-surface creation").
func CreateWindowSurface(instance vk.Instance, window vk.WindowHandle) (vk.Handle, vk.Result) {
	ctx := handle.Global().Instance(instance)
	if ctx == nil {
		log.Debug().Err(vsaerr.ErrRoutingMiss).Str("call", "CreateWindowSurface").Msg("vsa: routing miss, no-op pass-through")
		return 0, vk.ErrorUnknown
	}

	fns := ctx.InstanceFunctions()
	if fns.CreateWindowSurface == nil {
		return 0, vk.Success
	}

	surface, result := fns.CreateWindowSurface(instance, window)
	if result.IsSuccess() {
		handle.Global().AssociateWindow(window, ctx)
		ctx.Window = window
	}
	return surface, result
}

// GetInstanceProcAddr is this façade's own trampoline (spec §6): it
// resolves names this layer intercepts to its own functions; anything
// else defers to the routed context's next-layer GetInstanceProcAddr.
func GetInstanceProcAddr(instance vk.Instance, name string) uintptr {
	if interceptedNames[name] {
		return 1 // non-null sentinel: this layer owns the symbol
	}

	ctx := handle.Global().Instance(instance)
	if ctx == nil {
		return 0
	}
	if next := ctx.InstanceFunctions().GetInstanceProcAddr; next != nil {
		return next(instance, name)
	}
	return 0
}
