package graphviz

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vsagraph/vsa/internal/recorder"
	"github.com/vsagraph/vsa/internal/vsaerr"
)

// ErrPathHasSpaces is returned by WriteFile when path contains a space
// character, mirroring the original source's _Visualize path guard — the
// external `dot` tool this capture feeds into does not reliably quote
// paths with spaces on every platform.
var ErrPathHasSpaces = errors.New("graphviz: output path must not contain spaces")

// ErrWrongExtension is returned by WriteFile when path does not end in
// ".dot".
var ErrWrongExtension = errors.New("graphviz: output path must end in .dot")

// Emitter writes a recorder.Snapshot out as a .dot file (spec §4.4, §6
// "Output-file policy"). OnWritten, if set, is called after a successful
// write with the path and byte count — the supplemental hook SPEC_FULL.md
// adds in place of the original source's direct `dot -Tpng -O` invocation,
// so this layer never shells out to an external tool itself.
type Emitter struct {
	OnWritten func(path string, bytes int)
}

// WriteFile validates path, removes any existing file at that path,
// creates its parent directory if needed, and writes the rendered graph as
// UTF-8 text with no byte-order mark.
func (e *Emitter) WriteFile(path string, snap recorder.Snapshot) error {
	if strings.ContainsRune(path, ' ') {
		return ErrPathHasSpaces
	}
	if filepath.Ext(path) != ".dot" {
		return ErrWrongExtension
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return vsaerr.NewEmissionError(path, fmt.Errorf("create output directory: %w", err))
		}
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return vsaerr.NewEmissionError(path, fmt.Errorf("remove previous output: %w", err))
	}

	text := Build(snap)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return vsaerr.NewEmissionError(path, fmt.Errorf("write output: %w", err))
	}

	if e.OnWritten != nil {
		e.OnWritten(path, len(text))
	}
	return nil
}

// WriteFileTolerant is the façade's call site: it logs and swallows any
// error rather than propagating it, matching the error-handling policy for
// output-emission failure (spec §7: "log once, drop capture, stay
// usable" — a failed graph write must never take down the intercepted
// application).
func (e *Emitter) WriteFileTolerant(path string, snap recorder.Snapshot) {
	if err := e.WriteFile(path, snap); err != nil {
		log.Error().Err(err).Str("path", path).Msg("vsa: failed to write sync graph, dropping this capture")
	}
}
