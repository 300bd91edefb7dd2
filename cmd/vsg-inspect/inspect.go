package main

import (
	"regexp"
	"sort"
	"strings"
)

// report is the summary vsg-inspect prints for one .dot file.
type report struct {
	Valid        bool
	NodeCount    int
	EdgeCount    int
	EdgesByColor map[string]int
}

func (r report) sortedEdgeColorKeys() []string {
	keys := make([]string, 0, len(r.EdgesByColor))
	for k := range r.EdgesByColor {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	nodeLineRe = regexp.MustCompile(`(?m)^\s*\S+\s*\[label=`)
	edgeLineRe = regexp.MustCompile(`(?m)^\s*\S+\s*->\s*\S+\s*\[(.*)\];`)
	colorAttrRe = regexp.MustCompile(`color="([a-zA-Z]+)"`)
)

// inspect parses .dot text well enough to count node and edge declarations
// without a full Graphviz grammar — this tool only ever reads output this
// layer's own Emitter produced, so it only needs to recognize that shape.
func inspect(text string) report {
	r := report{
		Valid:        strings.Contains(text, "digraph"),
		EdgesByColor: make(map[string]int),
	}

	r.NodeCount = len(nodeLineRe.FindAllString(text, -1))

	for _, m := range edgeLineRe.FindAllStringSubmatch(text, -1) {
		r.EdgeCount++
		color := "none"
		if strings.Contains(m[1], "style=invis") {
			color = "invisible"
		} else if strings.Contains(m[1], "style=dotted") {
			color = "timeline"
		} else if cm := colorAttrRe.FindStringSubmatch(m[1]); cm != nil {
			color = cm[1]
		}
		r.EdgesByColor[color]++
	}

	return r
}
