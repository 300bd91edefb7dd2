package graphviz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vsagraph/vsa/internal/recorder"
)

// Build renders a recorder.Snapshot as Graphviz .dot text. The output is
// deterministic for a given snapshot (events, thread ids and queue handles
// are all sorted before emission) so repeated calls over the same data are
// idempotent (spec §4.4 "idempotence").
func Build(snap recorder.Snapshot) string {
	var b strings.Builder

	b.WriteString("digraph vsa_sync_graph {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  bgcolor=\"black\";\n")
	b.WriteString("  fontcolor=\"white\";\n")
	b.WriteString("  node [shape=box, style=filled];\n")
	b.WriteString("  edge [fontcolor=\"white\"];\n\n")

	events := sortedEvents(snap.Events)

	writeThreadAnchors(&b, snap)
	writeQueueAnchors(&b, snap)
	writeAnchorChain(&b, snap)
	writeEventNodes(&b, events)
	writeRankClusters(&b, events)
	writeTimelineEdges(&b, events)
	writeCausalEdges(&b, events)

	b.WriteString("}\n")
	return b.String()
}

func threadNodeID(id recorder.ThreadID) string { return fmt.Sprintf("thread_%d", id) }
func queueNodeID(q uintptr) string              { return fmt.Sprintf("queue_%d", q) }
func cpuNodeID(uid recorder.UID) string         { return fmt.Sprintf("e%d_cpu", uid) }
func gpuNodeID(uid recorder.UID) string         { return fmt.Sprintf("e%d_gpu", uid) }

// primaryNodeID is the node a dependency edge should land on or originate
// from when the referencing code doesn't need to distinguish sides: the
// GPU node if the kind has one, else the CPU node.
func primaryNodeID(ev recorder.Event) string {
	if hasGPUNode(ev.Kind) {
		return gpuNodeID(ev.UID)
	}
	return cpuNodeID(ev.UID)
}

func writeThreadAnchors(b *strings.Builder, snap recorder.Snapshot) {
	ids := make([]recorder.ThreadID, 0, len(snap.ThreadNames))
	for id := range snap.ThreadNames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		writeNode(b, threadNodeID(id), snap.ThreadNames[id], threadAnchorStyle)
	}
	b.WriteString("\n")
}

func writeQueueAnchors(b *strings.Builder, snap recorder.Snapshot) {
	type kv struct {
		handle uintptr
		name   string
	}
	var queues []kv
	for q, name := range snap.QueueNames {
		queues = append(queues, kv{handle: uintptr(q), name: name})
	}
	sort.Slice(queues, func(i, j int) bool { return queues[i].handle < queues[j].handle })

	for _, q := range queues {
		writeNode(b, queueNodeID(q.handle), q.name, queueAnchorStyle)
	}
	b.WriteString("\n")
}

// writeAnchorChain links every anchor node (thread and queue) together
// with invisible, zero-length edges in a stable order, so they stack
// vertically at the initial rank instead of scattering (spec §4.4 "Thread
// and queue anchors ... connected among themselves with invisible
// min-length-zero edges in stable order").
func writeAnchorChain(b *strings.Builder, snap recorder.Snapshot) {
	var ids []string
	threadIDs := make([]recorder.ThreadID, 0, len(snap.ThreadNames))
	for id := range snap.ThreadNames {
		threadIDs = append(threadIDs, id)
	}
	sort.Slice(threadIDs, func(i, j int) bool { return threadIDs[i] < threadIDs[j] })
	for _, id := range threadIDs {
		ids = append(ids, threadNodeID(id))
	}

	var queueHandles []uintptr
	for q := range snap.QueueNames {
		queueHandles = append(queueHandles, uintptr(q))
	}
	sort.Slice(queueHandles, func(i, j int) bool { return queueHandles[i] < queueHandles[j] })
	for _, q := range queueHandles {
		ids = append(ids, queueNodeID(q))
	}

	for i := 1; i < len(ids); i++ {
		fmt.Fprintf(b, "  %s -> %s [style=invis, minlen=0];\n", ids[i-1], ids[i])
	}
	b.WriteString("\n")
}

func writeEventNodes(b *strings.Builder, events []recorder.Event) {
	for _, ev := range events {
		style := eventStyles[ev.Kind]
		if hasCPUNode(ev.Kind) {
			writeNode(b, cpuNodeID(ev.UID), eventLabel(ev)+"\\n(CPU)", style)
		}
		if hasGPUNode(ev.Kind) {
			writeNode(b, gpuNodeID(ev.UID), eventLabel(ev)+"\\n(GPU)", style)
		}
	}
	b.WriteString("\n")
}

func eventLabel(ev recorder.Event) string {
	switch ev.Kind {
	case recorder.EventAcquireImage, recorder.EventQueuePresent:
		return fmt.Sprintf("%s\\nimage %d", ev.Kind, ev.ImageIndex)
	case recorder.EventFenceSignal:
		return fmt.Sprintf("%s\\nfence %#x", ev.Kind, ev.Fence)
	default:
		return fmt.Sprintf("%s\\nuid %d", ev.Kind, ev.UID)
	}
}

func writeNode(b *strings.Builder, id, label string, style nodeStyle) {
	if label == "" {
		label = id
	}
	fmt.Fprintf(b, "  %s [label=%q, fillcolor=%q, fontcolor=%q, fontsize=%d];\n",
		id, label, style.FillColor, style.FontColor, style.FontSize)
}

// writeRankClusters groups every node sharing a TimePoint into the same
// Graphviz rank, so the graph lays out roughly in wall-clock order (spec
// §4.4 "rank clusters"; TimePoint remains a layout hint only, never a
// causal-order source — the edges drawn in writeCausalEdges are the only
// source of causal order).
func writeRankClusters(b *strings.Builder, events []recorder.Event) {
	byTime := make(map[recorder.TimePoint][]string)
	for _, ev := range events {
		if hasCPUNode(ev.Kind) {
			byTime[ev.Time] = append(byTime[ev.Time], cpuNodeID(ev.UID))
		}
		if hasGPUNode(ev.Kind) {
			byTime[ev.Time] = append(byTime[ev.Time], gpuNodeID(ev.UID))
		}
	}

	times := make([]recorder.TimePoint, 0, len(byTime))
	for t := range byTime {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	for _, t := range times {
		nodes := byTime[t]
		if len(nodes) < 2 {
			continue
		}
		sort.Strings(nodes)
		fmt.Fprintf(b, "  { rank=same; %s; }\n", strings.Join(nodes, "; "))
	}
	b.WriteString("\n")
}

// writeTimelineEdges draws the per-thread CPU timeline and per-queue GPU
// timeline as dotted chains (spec §4.4 "Timeline edges"; §6 colors: dotted
// sky-blue for CPU, dark-green for GPU).
func writeTimelineEdges(b *strings.Builder, events []recorder.Event) {
	lastByThread := make(map[recorder.ThreadID]string)
	lastByQueue := make(map[uintptr]string)

	for _, ev := range events {
		if hasCPUNode(ev.Kind) {
			node := cpuNodeID(ev.UID)
			prev, ok := lastByThread[ev.Thread]
			if !ok {
				prev = threadNodeID(ev.Thread)
			}
			fmt.Fprintf(b, "  %s -> %s [color=%q, style=dotted];\n", prev, node, edgeColorCPUTimeline)
			lastByThread[ev.Thread] = node
		}

		if hasGPUNode(ev.Kind) && ev.Queue != 0 {
			node := gpuNodeID(ev.UID)
			qh := uintptr(ev.Queue)
			prev, ok := lastByQueue[qh]
			if !ok {
				prev = queueNodeID(qh)
			}
			fmt.Fprintf(b, "  %s -> %s [color=%q, style=dotted];\n", prev, node, edgeColorGPUTimeline)
			lastByQueue[qh] = node
		}
	}
	b.WriteString("\n")
}

// writeCausalEdges draws every explicit causal edge: the CPU/GPU pairing
// for Submit/Present/Acquire, the CPU->GPU submit edges from a Submit to
// its batches, the semaphore/swapchain/fence dependency edges, and the
// QueueWaitIdle edge from the queue's most recent GPU node to the wait's
// CPU node (spec §4.4 "Causal edges by kind").
func writeCausalEdges(b *strings.Builder, events []recorder.Event) {
	byUID := make(map[recorder.UID]recorder.Event, len(events))
	for _, ev := range events {
		byUID[ev.UID] = ev
	}

	lastGPUByQueue := make(map[uintptr]string)

	for _, ev := range events {
		if pairsCPUAndGPU(ev.Kind) {
			fmt.Fprintf(b, "  %s -> %s [color=%q];\n", cpuNodeID(ev.UID), gpuNodeID(ev.UID), edgeColorSubmit)
		}

		for _, child := range ev.Batches {
			fmt.Fprintf(b, "  %s -> %s [color=%q];\n", cpuNodeID(ev.UID), gpuNodeID(child), edgeColorSubmit)
		}

		for _, dep := range ev.SemaphoreDeps {
			producer, ok := byUID[dep]
			if !ok {
				continue
			}
			fmt.Fprintf(b, "  %s -> %s [color=%q];\n", primaryNodeID(producer), primaryNodeID(ev), edgeColorSemaphore)
		}

		for _, dep := range ev.SwapchainDeps {
			producer, ok := byUID[dep]
			if !ok {
				continue
			}
			fmt.Fprintf(b, "  %s -> %s [color=%q];\n", primaryNodeID(producer), primaryNodeID(ev), edgeColorSwapchain)
		}

		if ev.Kind == recorder.EventFenceSignal {
			// CmdBatch -> FenceSignal completion edges share the queue's
			// GPU family; no dedicated color is specified for them in
			// §6, so they use the fence node's own fill color.
			for _, dep := range ev.FenceDeps {
				if producer, ok := byUID[dep]; ok {
					fmt.Fprintf(b, "  %s -> %s [color=%q];\n", primaryNodeID(producer), gpuNodeID(ev.UID), "gold")
				}
			}
		}

		if ev.Kind == recorder.EventWaitForFences {
			for _, dep := range ev.FenceDeps {
				if producer, ok := byUID[dep]; ok {
					fmt.Fprintf(b, "  %s -> %s [color=%q];\n", gpuNodeID(producer.UID), cpuNodeID(ev.UID), edgeColorWait)
				}
			}
		}

		if ev.Kind == recorder.EventQueueWaitIdle && ev.Queue != 0 {
			qh := uintptr(ev.Queue)
			if from, ok := lastGPUByQueue[qh]; ok {
				fmt.Fprintf(b, "  %s -> %s [color=%q];\n", from, cpuNodeID(ev.UID), edgeColorWait)
			}
		}

		if hasGPUNode(ev.Kind) && ev.Queue != 0 {
			lastGPUByQueue[uintptr(ev.Queue)] = gpuNodeID(ev.UID)
		}
	}
}

func sortedEvents(events []recorder.Event) []recorder.Event {
	out := make([]recorder.Event, len(events))
	copy(out, events)
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out
}
