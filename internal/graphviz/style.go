// Package graphviz implements the Graph Builder/Emitter (spec §4.4): it
// turns a recorder.Snapshot into Graphviz .dot text describing the causal
// sync graph. Grounded on azhirnov/VulkanSyncGraph's SyncAnalyzer.cpp
// _SaveDotFile, translating its per-event-kind Visit lambda and NodeStyle
// struct into Go value types and a dispatch switch over recorder.EventKind.
package graphviz

import "github.com/vsagraph/vsa/internal/recorder"

// nodeStyle is the Graphviz node attribute set for one event kind (spec §6
// "per-event nodes colored by kind").
type nodeStyle struct {
	FillColor string
	FontColor string
	FontSize  int
}

const defaultFontSize = 14

var eventStyles = map[recorder.EventKind]nodeStyle{
	recorder.EventQueueSubmit:    {FillColor: "blue", FontColor: "white", FontSize: defaultFontSize},
	recorder.EventCmdBatch:       {FillColor: "darkslategray", FontColor: "lightgray", FontSize: defaultFontSize},
	recorder.EventFenceSignal:    {FillColor: "gold", FontColor: "black", FontSize: 10},
	recorder.EventQueueWaitIdle:  {FillColor: "red", FontColor: "white", FontSize: defaultFontSize},
	recorder.EventDeviceWaitIdle: {FillColor: "red", FontColor: "white", FontSize: defaultFontSize},
	recorder.EventWaitForFences:  {FillColor: "red", FontColor: "white", FontSize: defaultFontSize},
	recorder.EventAcquireImage:   {FillColor: "lime", FontColor: "black", FontSize: defaultFontSize},
	recorder.EventQueuePresent:   {FillColor: "lime", FontColor: "black", FontSize: defaultFontSize},
}

var (
	threadAnchorStyle = nodeStyle{FillColor: "indigo", FontColor: "white", FontSize: defaultFontSize}
	queueAnchorStyle  = nodeStyle{FillColor: "darkslategray", FontColor: "lightgray", FontSize: defaultFontSize}
)

// Edge colors (spec §6 "edges colored by kind").
const (
	edgeColorSemaphore   = "orange"
	edgeColorSwapchain   = "lime"
	edgeColorSubmit      = "skyblue" // CPU->GPU submit edges
	edgeColorWait        = "red"     // GPU->CPU wait edges
	edgeColorCPUTimeline = "skyblue"
	edgeColorGPUTimeline = "darkgreen"
)

// hasCPUNode reports whether kind produces a CPU-side node (recorded
// thread), per spec §4.4's node-family table.
func hasCPUNode(kind recorder.EventKind) bool {
	switch kind {
	case recorder.EventQueueSubmit, recorder.EventQueueWaitIdle, recorder.EventDeviceWaitIdle,
		recorder.EventWaitForFences, recorder.EventAcquireImage, recorder.EventQueuePresent:
		return true
	default:
		return false
	}
}

// hasGPUNode reports whether kind produces a GPU-side node (recorded
// queue).
func hasGPUNode(kind recorder.EventKind) bool {
	switch kind {
	case recorder.EventCmdBatch, recorder.EventFenceSignal,
		recorder.EventAcquireImage, recorder.EventQueuePresent:
		return true
	default:
		return false
	}
}

// pairsCPUAndGPU reports whether kind emits both its own CPU and GPU nodes
// joined by a direct edge (Submit, Present, Acquire — spec §4.4).
func pairsCPUAndGPU(kind recorder.EventKind) bool {
	switch kind {
	case recorder.EventQueueSubmit, recorder.EventQueuePresent, recorder.EventAcquireImage:
		return true
	default:
		return false
	}
}
