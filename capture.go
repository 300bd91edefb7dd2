package vsa

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vsagraph/vsa/internal/captx"
	"github.com/vsagraph/vsa/internal/graphviz"
	"github.com/vsagraph/vsa/internal/handle"
	"github.com/vsagraph/vsa/internal/profile"
	"github.com/vsagraph/vsa/internal/recorder"
	"github.com/vsagraph/vsa/vk"
)

// defaultOutputPath mirrors the original source's single fixed capture
// path, generalized per spec §6 to "a configured path ending in .dot"
// instead of a hardcoded Windows drive path.
const defaultOutputPath = "sync_graph.dot"

var outputCfg = struct {
	mu     sync.Mutex
	path   string
	tagged bool
}{path: defaultOutputPath}

// SetOutputPath configures the path every capture writes its .dot file to.
// Safe to call at any time; takes effect on the next Stop. path must end
// in ".dot" and contain no spaces (spec §6) — WriteFileTolerant enforces
// this and simply drops a misconfigured capture rather than panicking.
func SetOutputPath(path string) {
	outputCfg.mu.Lock()
	defer outputCfg.mu.Unlock()
	outputCfg.path = path
}

// SetTagCaptures opts into the supplemental capture-session file naming
// (SPEC_FULL.md "Capture-session file naming"): when enabled, each
// capture's output file gets a short uuid-derived tag appended to its
// stem, so successive captures in one process are preserved instead of
// overwriting each other. Off by default, matching spec §6's literal
// "remove previous output, then write" behavior for a single fixed path.
func SetTagCaptures(tag bool) {
	outputCfg.mu.Lock()
	defer outputCfg.mu.Unlock()
	outputCfg.tagged = tag
}

// Configure applies a loaded capture profile's output settings (see
// internal/profile). DefaultFrames is returned for callers that want to
// use it as the frames argument to ctx.Start; this function does not
// start a capture itself.
func Configure(p profile.Profile) int32 {
	SetOutputPath(p.OutputPath)
	SetTagCaptures(p.TagCaptures)
	return p.DefaultFrames
}

func resolveOutputPath() string {
	outputCfg.mu.Lock()
	path, tagged := outputCfg.path, outputCfg.tagged
	outputCfg.mu.Unlock()

	if !tagged {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s-%s%s", stem, uuid.NewString()[:8], ext)
}

// wireCaptureOutput connects a freshly created Capture Context's recorder
// to the Graph Builder: when the context's capture budget reaches zero
// (spec §4.2 OnPresent) or Stop is called directly, the recorder's
// Snapshot is built into .dot text and written out, tolerating any
// failure per spec §7 kind 4.
func wireCaptureOutput(ctx *captx.Context, rec *recorder.Recorder) {
	emitter := &graphviz.Emitter{}
	ctx.OnCaptureStop = func() {
		emitter.WriteFileTolerant(resolveOutputPath(), rec.Snapshot())
	}
}

// InstanceContext returns the Capture Context associated with instance, if
// any. Supplemental to the window-keyed hotkey contract (spec §6): a host
// application driving capture programmatically, without a window surface,
// uses this instead of CaptureContextForWindow.
func InstanceContext(instance vk.Instance) (*captx.Context, bool) {
	ctx := handle.Global().Instance(instance)
	return ctx, ctx != nil
}

// CaptureContextForWindow is the fixed external-trigger contract spec §6
// requires: "a (window_handle)→context lookup used by an OS-specific
// hotkey bridge". The bridge itself — the Win32/X11 message hook that
// decides when to call ctx.Start/ctx.Stop — is out of scope (spec §1);
// this is only the join point it needs.
func CaptureContextForWindow(w vk.WindowHandle) (*captx.Context, bool) {
	ctx := handle.Global().Window(w)
	return ctx, ctx != nil
}
