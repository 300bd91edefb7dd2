package handle

import (
	"testing"

	"github.com/vsagraph/vsa/internal/captx"
	"github.com/vsagraph/vsa/vk"
)

func TestRegistry_InstanceRoundTrip(t *testing.T) {
	r := New()
	ctx := captx.New()

	if got := r.Instance(vk.Instance(1)); got != nil {
		t.Fatalf("unregistered instance returned %v, want nil", got)
	}

	r.AssociateInstance(vk.Instance(1), ctx)
	if got := r.Instance(vk.Instance(1)); got != ctx {
		t.Fatalf("Instance() = %v, want %v", got, ctx)
	}

	r.ForgetInstance(vk.Instance(1))
	if got := r.Instance(vk.Instance(1)); got != nil {
		t.Fatalf("Instance() after ForgetInstance = %v, want nil", got)
	}
}

func TestRegistry_DeviceForgetDoesNotTouchOtherKinds(t *testing.T) {
	r := New()
	ctx := captx.New()

	r.AssociateDevice(vk.Device(1), ctx)
	r.AssociateQueue(vk.Queue(1), ctx)

	r.ForgetDevice(vk.Device(1))

	if got := r.Device(vk.Device(1)); got != nil {
		t.Fatalf("Device() after ForgetDevice = %v, want nil", got)
	}
	if got := r.Queue(vk.Queue(1)); got != ctx {
		t.Fatalf("Queue() = %v, want %v (unaffected by ForgetDevice)", got, ctx)
	}
}

func TestRegistry_CommandBufferBatchAssociateAndForget(t *testing.T) {
	r := New()
	ctx := captx.New()
	buffers := []vk.CommandBuffer{1, 2, 3}

	r.AssociateCommandBuffers(buffers, ctx)
	for _, cb := range buffers {
		if got := r.CommandBuffer(cb); got != ctx {
			t.Fatalf("CommandBuffer(%d) = %v, want %v", cb, got, ctx)
		}
	}

	r.ForgetCommandBuffers(buffers[:2])
	if got := r.CommandBuffer(buffers[0]); got != nil {
		t.Fatalf("CommandBuffer(%d) after forget = %v, want nil", buffers[0], got)
	}
	if got := r.CommandBuffer(buffers[2]); got != ctx {
		t.Fatalf("CommandBuffer(%d) = %v, want %v (not forgotten)", buffers[2], got, ctx)
	}
}

func TestRegistry_WindowAssociation(t *testing.T) {
	r := New()
	ctx := captx.New()
	r.AssociateWindow(vk.WindowHandle(42), ctx)

	if got := r.Window(vk.WindowHandle(42)); got != ctx {
		t.Fatalf("Window() = %v, want %v", got, ctx)
	}
	if got := r.Window(vk.WindowHandle(99)); got != nil {
		t.Fatalf("Window() for unregistered handle = %v, want nil", got)
	}
}

func TestRegistry_Counts(t *testing.T) {
	r := New()
	ctx := captx.New()

	r.AssociateInstance(vk.Instance(1), ctx)
	r.AssociatePhysicalDevice(vk.PhysicalDevice(1), ctx)
	r.AssociateDevice(vk.Device(1), ctx)
	r.AssociateQueue(vk.Queue(1), ctx)
	r.AssociateCommandBuffers([]vk.CommandBuffer{1, 2}, ctx)
	r.AssociateWindow(vk.WindowHandle(1), ctx)

	got := r.Counts()
	want := Counts{Instances: 1, PhysicalDevices: 1, Devices: 1, Queues: 1, CommandBuffers: 2, Windows: 1}
	if got != want {
		t.Fatalf("Counts() = %+v, want %+v", got, want)
	}
}
