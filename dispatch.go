package vsa

import "github.com/vsagraph/vsa/internal/captx"

// analyzer is a package-local alias so call sites read naturally as
// "notify every analyzer" without importing captx everywhere.
type analyzer = captx.Analyzer

// notifyAnalyzers delivers a single notification to every analyzer
// registered on ctx (spec §4.5 step 4: "notifies every registered analyzer
// ... with the full argument tuple plus the result").
func notifyAnalyzers(ctx *captx.Context, fn func(analyzer)) {
	ctx.Notify(fn)
}
