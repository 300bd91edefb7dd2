package graphviz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsagraph/vsa/internal/recorder"
	"github.com/vsagraph/vsa/vk"
)

func sampleSnapshot() recorder.Snapshot {
	r := recorder.New()
	r.Start()
	r.OnGetDeviceQueue(vk.Device(1), 0, 0, vk.Queue(11))
	r.OnQueueSubmit(vk.Queue(11), []vk.SubmitBatch{{SignalSemaphores: []vk.Semaphore{1}}}, 5, vk.Success)
	r.OnWaitForFences(vk.Device(1), []vk.Fence{5}, true, vk.Success)
	return r.Snapshot()
}

// Property 5: building twice from the same log yields byte-identical output.
func TestBuild_Idempotent(t *testing.T) {
	snap := sampleSnapshot()
	first := Build(snap)
	second := Build(snap)
	assert.Equal(t, first, second)
}

func TestBuild_ContainsDigraphHeaderAndFooter(t *testing.T) {
	out := Build(sampleSnapshot())
	assert.True(t, strings.HasPrefix(out, "digraph vsa_sync_graph {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestBuild_QueueSubmitNodesUseItsStyle(t *testing.T) {
	out := Build(sampleSnapshot())
	style := eventStyles[recorder.EventQueueSubmit]
	assert.Contains(t, out, "fillcolor=\""+style.FillColor+"\"")
}

func TestBuild_SemaphoreEdgeUsesOrange(t *testing.T) {
	r := recorder.New()
	r.Start()
	r.OnQueueSubmit(vk.Queue(1), []vk.SubmitBatch{{SignalSemaphores: []vk.Semaphore{7}}}, 0, vk.Success)
	r.OnQueueSubmit(vk.Queue(2), []vk.SubmitBatch{{WaitSemaphores: []vk.Semaphore{7}}}, 0, vk.Success)

	out := Build(r.Snapshot())
	assert.Contains(t, out, `color="`+edgeColorSemaphore+`"`)
}

func TestBuild_RankClusterGroupsSameTimePoint(t *testing.T) {
	r := recorder.New()
	r.Start()
	// A submit's CmdBatch and QueueSubmit events share one TimePoint.
	r.OnQueueSubmit(vk.Queue(1), []vk.SubmitBatch{{}}, 0, vk.Success)

	out := Build(r.Snapshot())
	require.Contains(t, out, "rank=same")
}

func TestBuild_EmptySnapshotStillValidDot(t *testing.T) {
	r := recorder.New()
	r.Start()
	out := Build(r.Snapshot())
	assert.True(t, strings.HasPrefix(out, "digraph vsa_sync_graph {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestBuild_ThreadAndQueueAnchorsChained(t *testing.T) {
	out := Build(sampleSnapshot())
	assert.Contains(t, out, "style=invis")
}

func TestSortedEvents_OrdersByUID(t *testing.T) {
	events := []recorder.Event{
		{UID: 3},
		{UID: 1},
		{UID: 2},
	}
	out := sortedEvents(events)
	require.Len(t, out, 3)
	assert.Equal(t, recorder.UID(1), out[0].UID)
	assert.Equal(t, recorder.UID(2), out[1].UID)
	assert.Equal(t, recorder.UID(3), out[2].UID)
}
