// Package vsa is the Interception Façade (spec §4.5): the fixed set of
// entry points the target API's loader calls directly. Each entry point
// resolves its Capture Context via the Handle Registry, forwards to the
// next layer, and notifies every registered analyzer with the call's
// canonical arguments plus result — grounded on
// azhirnov/VulkanSyncGraph's LayerManager.h/.cpp static vki_* trampolines.
package vsa

import "github.com/vsagraph/vsa/vk"

// Layer metadata (spec §6 "Layer metadata"). The layer advertises zero
// instance and zero device extensions.
const (
	LayerName        = "VK_LAYER_VSAGRAPH_sync_recorder"
	LayerDescription = "Records causal host/device synchronization activity and emits a dependency graph"
	LayerImplVersion = 1

	// LayerSpecVersion is the target API spec version this layer was
	// built against. It has no bearing on the recorder's own semantics.
	LayerSpecVersion = 1_003_000 // 1.3.0 as major*1_000_000 + minor*1_000 + patch, not the packed VK_MAKE_API_VERSION encoding
)

// ExtensionProperties is the fixed shape returned by the Enumerate*
// ExtensionProperties entry points. This layer exposes none.
type ExtensionProperties struct {
	Name        string
	SpecVersion uint32
}

// LayerProperties is the fixed shape returned by the Enumerate*
// LayerProperties entry points.
type LayerProperties struct {
	Name           string
	SpecVersion    uint32
	ImplVersion    uint32
	Description    string
}

// Properties returns this layer's fixed descriptor.
func Properties() LayerProperties {
	return LayerProperties{
		Name:        LayerName,
		SpecVersion: LayerSpecVersion,
		ImplVersion: LayerImplVersion,
		Description: LayerDescription,
	}
}

// EnumerateInstanceLayerProperties returns the one-element fixed layer
// list (spec §6).
func EnumerateInstanceLayerProperties() []LayerProperties {
	return []LayerProperties{Properties()}
}

// EnumerateDeviceLayerProperties returns the same fixed layer descriptor
// at the device level, matching the target API's convention that device
// layer enumeration mirrors instance layer enumeration for layers that
// don't distinguish the two (spec §6).
func EnumerateDeviceLayerProperties(vk.PhysicalDevice) []LayerProperties {
	return []LayerProperties{Properties()}
}

// EnumerateInstanceExtensionProperties implements the required, corrected
// behavior from the spec's Open Questions (§9): when layerName matches
// this layer's name, report zero extensions and success; for any other
// layer name this layer has nothing to say, so it reports "layer not
// present" rather than guessing at another layer's extensions.
func EnumerateInstanceExtensionProperties(layerName string) ([]ExtensionProperties, vk.Result) {
	if layerName != LayerName {
		return nil, vk.ErrorLayerNotPresent
	}
	return nil, vk.Success
}

// EnumerateDeviceExtensionProperties is the device-level analogue of
// EnumerateInstanceExtensionProperties.
func EnumerateDeviceExtensionProperties(physicalDevice vk.PhysicalDevice, layerName string) ([]ExtensionProperties, vk.Result) {
	if layerName != LayerName {
		return nil, vk.ErrorLayerNotPresent
	}
	return nil, vk.Success
}
