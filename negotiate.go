package vsa

import (
	"github.com/rs/zerolog/log"

	"github.com/vsagraph/vsa/internal/vsaerr"
	"github.com/vsagraph/vsa/vk"
)

// negotiateInterfaceVersion is the highest loader/layer negotiation
// interface version this façade supports (spec §6 "clamps the returned
// interface version to the supported value"). Dispatch-table construction
// itself is out of scope (spec §1); this entry point only needs to hand
// back the two trampolines the loader will call through.
const negotiateInterfaceVersion = 2

// LoaderLayerInterface is the version-negotiation struct the host loader
// passes to NegotiateLoaderLayerInterface. LoaderInterfaceVersion is
// in/out: the loader writes its requested version in, the layer clamps it
// down on the way out if it only supports an older interface.
type LoaderLayerInterface struct {
	LoaderInterfaceVersion    uint32
	GetInstanceProcAddr       vk.GetInstanceProcAddrFunc
	GetDeviceProcAddr         vk.GetDeviceProcAddrFunc
	GetPhysicalDeviceProcAddr uintptr // always left null: this layer has none
}

// NegotiateLoaderLayerInterface is the fixed ABI entry point the loader
// calls before anything else (spec §6 "version-negotiation entry"). It
// writes this façade's own GetInstanceProcAddr/GetDeviceProcAddr into the
// struct, leaves the physical-device trampoline null, and clamps the
// negotiated version down to what this layer supports.
func NegotiateLoaderLayerInterface(iface *LoaderLayerInterface) vk.Result {
	if iface == nil {
		err := vsaerr.NewHandshakeError("NegotiateLoaderLayerInterface", nil)
		log.Error().Err(err).Msg("vsa: loader passed a nil negotiation struct")
		return vk.ErrorInitFailed
	}

	if iface.LoaderInterfaceVersion > negotiateInterfaceVersion {
		iface.LoaderInterfaceVersion = negotiateInterfaceVersion
	}

	iface.GetInstanceProcAddr = GetInstanceProcAddr
	iface.GetDeviceProcAddr = GetDeviceProcAddr
	iface.GetPhysicalDeviceProcAddr = 0

	return vk.Success
}
