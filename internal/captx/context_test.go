package captx

import (
	"testing"

	"github.com/vsagraph/vsa/vk"
)

// fakeAnalyzer counts Start/Stop/OnCreateInstance calls so tests can assert
// on lifecycle hooks without depending on the real recorder.
type fakeAnalyzer struct {
	starts, stops, creates int
}

func (f *fakeAnalyzer) Start() { f.starts++ }
func (f *fakeAnalyzer) Stop()  { f.stops++ }

func (f *fakeAnalyzer) OnCreateInstance(vk.Instance, vk.InstanceFunctions)                 { f.creates++ }
func (f *fakeAnalyzer) OnCreateDevice(vk.PhysicalDevice, vk.Device, vk.DeviceFunctions, []vk.QueueFamilyProperties) {
}
func (f *fakeAnalyzer) OnGetDeviceQueue(vk.Device, uint32, uint32, vk.Queue)            {}
func (f *fakeAnalyzer) OnGetDeviceQueue2(vk.Device, uint32, uint32, vk.Queue)           {}
func (f *fakeAnalyzer) OnQueueSubmit(vk.Queue, []vk.SubmitBatch, vk.Fence, vk.Result)   {}
func (f *fakeAnalyzer) OnQueueWaitIdle(vk.Queue, vk.Result)                             {}
func (f *fakeAnalyzer) OnDeviceWaitIdle(vk.Device, vk.Result)                           {}
func (f *fakeAnalyzer) OnQueueBindSparse(vk.Queue, []vk.SubmitBatch, vk.Fence, vk.Result) {}
func (f *fakeAnalyzer) OnResetFences(vk.Device, []vk.Fence, vk.Result)                  {}
func (f *fakeAnalyzer) OnGetFenceStatus(vk.Device, vk.Fence, vk.Result)                 {}
func (f *fakeAnalyzer) OnWaitForFences(vk.Device, []vk.Fence, bool, vk.Result)          {}
func (f *fakeAnalyzer) OnAcquireNextImage(vk.Device, vk.Swapchain, vk.Semaphore, vk.Fence, uint32, vk.Result) {
}
func (f *fakeAnalyzer) OnQueuePresent(vk.Queue, vk.PresentInfo, vk.Result)   {}
func (f *fakeAnalyzer) OnDebugMarkerSetObjectNameEXT(vk.Device, vk.DebugObjectName) {}
func (f *fakeAnalyzer) OnSetDebugUtilsObjectNameEXT(vk.Device, vk.DebugObjectName)  {}

func TestContext_NewIsIdle(t *testing.T) {
	c := New()
	if c.Capturing() {
		t.Fatal("fresh Context reports Capturing() == true")
	}
}

func TestContext_StartStopRunsAnalyzerHooks(t *testing.T) {
	c := New()
	a := &fakeAnalyzer{}
	c.RegisterAnalyzer(a)

	c.Start(3)
	if !c.Capturing() {
		t.Fatal("Capturing() == false after Start")
	}
	if a.starts != 1 {
		t.Fatalf("analyzer.starts = %d, want 1", a.starts)
	}

	c.Stop()
	if c.Capturing() {
		t.Fatal("Capturing() == true after Stop")
	}
	if a.stops != 1 {
		t.Fatalf("analyzer.stops = %d, want 1", a.stops)
	}
}

func TestContext_OnPresentCountdownStopsAtZero(t *testing.T) {
	c := New()
	a := &fakeAnalyzer{}
	c.RegisterAnalyzer(a)

	c.Start(2)
	c.OnPresent()
	if !c.Capturing() {
		t.Fatal("Capturing() == false after first OnPresent, want still capturing (budget was 2)")
	}
	if a.stops != 0 {
		t.Fatalf("analyzer.stops = %d after first OnPresent, want 0", a.stops)
	}

	c.OnPresent()
	if c.Capturing() {
		t.Fatal("Capturing() == true after countdown exhausted")
	}
	if a.stops != 1 {
		t.Fatalf("analyzer.stops = %d after countdown exhausted, want 1", a.stops)
	}
}

func TestContext_OnPresentNoopWhenIdle(t *testing.T) {
	c := New()
	a := &fakeAnalyzer{}
	c.RegisterAnalyzer(a)

	c.OnPresent()
	if a.stops != 0 {
		t.Fatalf("analyzer.stops = %d, want 0 (no capture in progress)", a.stops)
	}
}

func TestContext_OnCaptureStopFiresOnExplicitStop(t *testing.T) {
	c := New()
	c.RegisterAnalyzer(&fakeAnalyzer{})

	fired := 0
	c.OnCaptureStop = func() { fired++ }

	c.Start(1)
	c.Stop()
	if fired != 1 {
		t.Fatalf("OnCaptureStop fired %d times, want 1", fired)
	}
}

func TestContext_OnCaptureStopFiresOnCountdownExhaustion(t *testing.T) {
	c := New()
	c.RegisterAnalyzer(&fakeAnalyzer{})

	fired := 0
	c.OnCaptureStop = func() { fired++ }

	c.Start(1)
	c.OnPresent()
	if fired != 1 {
		t.Fatalf("OnCaptureStop fired %d times after countdown exhaustion, want 1", fired)
	}
}

func TestContext_InitInstanceNotifiesAnalyzers(t *testing.T) {
	c := New()
	a := &fakeAnalyzer{}
	c.RegisterAnalyzer(a)

	fns := vk.InstanceFunctions{DestroyInstance: func(vk.Instance) {}}
	c.InitInstance(vk.Instance(1), fns)
	if c.InstanceFunctions().DestroyInstance == nil {
		t.Fatal("InstanceFunctions() did not round-trip")
	}
	if a.creates != 1 {
		t.Fatalf("analyzer.creates = %d, want 1", a.creates)
	}
}
