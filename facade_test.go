package vsa_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vsa "github.com/vsagraph/vsa"
	"github.com/vsagraph/vsa/internal/handle"
	"github.com/vsagraph/vsa/vk"
)

// fakeDriver stands in for the next-layer driver this façade forwards to.
// Every handle it hands back is unique across a test run so successive
// tests in this package never collide inside the process-wide Handle
// Registry.
type fakeDriver struct {
	nextHandle uintptr
}

func (d *fakeDriver) alloc() uintptr {
	d.nextHandle++
	return d.nextHandle
}

func (d *fakeDriver) instanceFunctions() vk.InstanceFunctions {
	return vk.InstanceFunctions{
		EnumeratePhysicalDevices: func(vk.Instance) ([]vk.PhysicalDevice, vk.Result) {
			return []vk.PhysicalDevice{vk.PhysicalDevice(d.alloc())}, vk.Success
		},
		CreateWindowSurface: func(vk.Instance, vk.WindowHandle) (vk.Handle, vk.Result) {
			return vk.Handle(d.alloc()), vk.Success
		},
	}
}

func (d *fakeDriver) deviceFunctions() vk.DeviceFunctions {
	return vk.DeviceFunctions{
		GetDeviceQueue: func(device vk.Device, family, index uint32) vk.Queue {
			return vk.Queue(d.alloc())
		},
		QueueSubmit: func(queue vk.Queue, batches []vk.SubmitBatch, fence vk.Fence) vk.Result {
			return vk.Success
		},
		WaitForFences: func(device vk.Device, fences []vk.Fence, waitAll bool, timeoutNS uint64) vk.Result {
			return vk.Success
		},
		QueuePresent: func(queue vk.Queue, info vk.PresentInfo) vk.Result {
			return vk.Success
		},
	}
}

func TestFacade_EndToEndCaptureWritesDotFile(t *testing.T) {
	handle.ResetGlobal()
	t.Cleanup(handle.ResetGlobal)

	driver := &fakeDriver{nextHandle: 1000}
	instance := vk.Instance(driver.alloc())

	require.Equal(t, vk.Success, vsa.CreateInstance(instance, driver.instanceFunctions()))

	physicalDevices, result := vsa.EnumeratePhysicalDevices(instance)
	require.Equal(t, vk.Success, result)
	require.Len(t, physicalDevices, 1)

	device := vk.Device(driver.alloc())
	require.Equal(t, vk.Success, vsa.CreateDevice(physicalDevices[0], device, driver.deviceFunctions(), nil))

	queue := vsa.GetDeviceQueue(device, 0, 0)
	require.NotZero(t, queue)

	path := filepath.Join(t.TempDir(), "capture.dot")
	vsa.SetOutputPath(path)
	vsa.SetTagCaptures(false)

	ctx, ok := vsa.InstanceContext(instance)
	require.True(t, ok)
	ctx.Start(1)

	require.Equal(t, vk.Success, vsa.QueueSubmit(queue, []vk.SubmitBatch{{}}, 0))
	require.Equal(t, vk.Success, vsa.QueuePresent(queue, vk.PresentInfo{}))

	assert.False(t, ctx.Capturing(), "countdown of 1 must have ended the capture after one present")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph vsa_sync_graph")
	assert.Contains(t, string(data), "QueueSubmit")
}

func TestFacade_CreateWindowSurfaceWiresHotkeyLookup(t *testing.T) {
	handle.ResetGlobal()
	t.Cleanup(handle.ResetGlobal)

	driver := &fakeDriver{nextHandle: 2000}
	instance := vk.Instance(driver.alloc())
	require.Equal(t, vk.Success, vsa.CreateInstance(instance, driver.instanceFunctions()))

	window := vk.WindowHandle(driver.alloc())
	_, result := vsa.CreateWindowSurface(instance, window)
	require.Equal(t, vk.Success, result)

	ctx, ok := vsa.CaptureContextForWindow(window)
	assert.True(t, ok)
	assert.NotNil(t, ctx)
}

func TestFacade_RoutingMissReturnsErrorUnknown(t *testing.T) {
	handle.ResetGlobal()
	t.Cleanup(handle.ResetGlobal)

	result := vsa.QueueSubmit(vk.Queue(999999), []vk.SubmitBatch{{}}, 0)
	assert.Equal(t, vk.ErrorUnknown, result)
}

func TestFacade_DestroyDeviceRoutingMissIsNoop(t *testing.T) {
	handle.ResetGlobal()
	t.Cleanup(handle.ResetGlobal)

	assert.NotPanics(t, func() {
		vsa.DestroyDevice(vk.Device(424242))
	})
}

func TestNegotiateLoaderLayerInterface_NilStructIsHandshakeFailure(t *testing.T) {
	result := vsa.NegotiateLoaderLayerInterface(nil)
	assert.Equal(t, vk.ErrorInitFailed, result)
}

func TestNegotiateLoaderLayerInterface_ClampsVersionAndFillsTrampolines(t *testing.T) {
	iface := &vsa.LoaderLayerInterface{LoaderInterfaceVersion: 99}
	result := vsa.NegotiateLoaderLayerInterface(iface)

	require.Equal(t, vk.Success, result)
	assert.LessOrEqual(t, iface.LoaderInterfaceVersion, uint32(2))
	assert.NotNil(t, iface.GetInstanceProcAddr)
	assert.NotNil(t, iface.GetDeviceProcAddr)
	assert.Zero(t, iface.GetPhysicalDeviceProcAddr)
}

func TestEnumerateInstanceExtensionProperties(t *testing.T) {
	props, result := vsa.EnumerateInstanceExtensionProperties(vsa.LayerName)
	assert.Equal(t, vk.Success, result)
	assert.Empty(t, props)

	_, result = vsa.EnumerateInstanceExtensionProperties("some other layer")
	assert.Equal(t, vk.ErrorLayerNotPresent, result)
}

func TestEnumerateInstanceLayerProperties(t *testing.T) {
	layers := vsa.EnumerateInstanceLayerProperties()
	require.Len(t, layers, 1)
	assert.Equal(t, vsa.LayerName, layers[0].Name)
}
