// SPDX-License-Identifier: MIT
// Package report renders an analysis.Report as a plain-text summary.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/geosocial/analysis"
	"github.com/katalvlaran/geosocial/ingest"
)

const rule = "============================================================"

// Write prints rep to w section by section.
func Write(w io.Writer, rep *analysis.Report) error {
	bw := bufio.NewWriter(w)
	p := &printer{w: bw}

	p.header("RUN")
	p.line("run id", rep.RunID)
	p.line("seed", fmt.Sprint(rep.Seed))
	p.loader("locations", rep.LocationStats)
	p.loader("connections", rep.ConnectionStats)

	p.header("WORKING GRAPH")
	g := rep.Graph
	p.line("nodes", count(g.Nodes))
	p.line("edges", count(g.Edges))
	p.line("hubs / drawn", count(g.Hubs)+" / "+count(g.Drawn))
	p.line("owners available", count(g.Available))

	p.communities(rep)
	p.forest(rep)
	p.paths(rep)

	p.header("TIMINGS")
	var total time.Duration
	for _, t := range rep.Timings {
		p.line(t.Stage, t.Duration.Round(time.Millisecond).String())
		total += t.Duration
	}
	p.line("total", total.Round(time.Millisecond).String())

	if p.err != nil {
		return p.err
	}

	return bw.Flush()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) header(title string) { p.printf("\n%s\n%s\n", title, rule) }

func (p *printer) line(key, value string) { p.printf("  %-22s %s\n", key+":", value) }

func (p *printer) loader(name string, st *ingest.Stats) {
	if st == nil {
		return
	}
	p.line(name, fmt.Sprintf("%s rows, %s loaded, %s skipped", count(st.Rows), count(st.Loaded), count(st.Skipped)))
	if st.Connections > 0 {
		p.line("  per user", decimal(st.AveragePerUser()))
	}
}

func (p *printer) communities(rep *analysis.Report) {
	p.header("COMMUNITIES (label propagation)")
	if rep.Communities == nil {
		p.line("status", "not computed")
		return
	}
	st := rep.CommunityStats
	p.line("communities", count(st.Communities))
	p.line("iterations", fmt.Sprintf("%d (converged: %t)", rep.Communities.Iterations, rep.Communities.Converged))
	p.line("nodes analysed", count(st.Nodes))
	p.line("largest / smallest", count(st.Largest)+" / "+count(st.Smallest))
	p.line("mean / median size", decimal(st.Mean)+" / "+count(st.Median))
	p.line("internal edges", count(st.InternalEdges))
	p.line("external edges", count(st.ExternalEdges))
	p.line("cohesion", fmt.Sprintf("%.1f%%", 100*st.Cohesion))
	p.line("modularity", fmt.Sprintf("%.4f", st.Modularity))
	for _, b := range st.Buckets {
		label := fmt.Sprintf("size %d-%d", b.Min, b.Max)
		if b.Max == 0 {
			label = fmt.Sprintf("size %d+", b.Min)
		}
		p.line(label, count(b.Count))
	}
	if len(st.Top) > 0 {
		sizes := make([]string, len(st.Top))
		for i, s := range st.Top {
			sizes[i] = count(s)
		}
		p.line("top sizes", strings.Join(sizes, ", "))
	}
}

func (p *printer) forest(rep *analysis.Report) {
	p.header("MINIMUM SPANNING FOREST")
	if rep.Forest == nil {
		p.line("status", "not computed")
		return
	}
	st := rep.ForestStats
	p.line("edges", count(st.Edges)+" of "+count(rep.Forest.Candidates)+" located")
	p.line("total weight", decimal(st.TotalWeight)+" km")
	p.line("nodes", count(st.Nodes))
	p.line("degree max / min", count(st.MaxDegree)+" / "+count(st.MinDegree))
	p.line("degree mean", fmt.Sprintf("%.2f", st.MeanDegree))
	p.line("leaves", count(st.Leaves))
	p.line("hubs", count(st.Hubs))
	if len(st.HubExamples) > 0 {
		ids := make([]string, len(st.HubExamples))
		for i, id := range st.HubExamples {
			ids[i] = fmt.Sprint(id)
		}
		p.line("hub examples", strings.Join(ids, ", "))
	}
	p.line("reduction", fmt.Sprintf("%.1f%% of %s edges", st.Reduction, count(st.OriginalEdges)))
}

func (p *printer) paths(rep *analysis.Report) {
	p.header("SHORTEST PATHS (sampled)")
	est := rep.Paths
	if est == nil {
		p.line("status", "skipped, fewer than two nodes")
		return
	}
	p.line("average length", fmt.Sprintf("%.2f", est.Average))
	p.line("std dev", fmt.Sprintf("%.2f", est.StdDev))
	p.line("successes", count(est.Successes))
	p.line("failures", count(est.Failures))
	p.line("max depth", count(est.MaxDepth))
	for d := 1; d <= est.MaxDepth; d++ {
		if n := est.Histogram[d]; n > 0 {
			p.line(fmt.Sprintf("depth %d", d), count(n))
		}
	}
	if len(rep.ExamplePath) > 0 {
		hops := make([]string, len(rep.ExamplePath))
		for i, id := range rep.ExamplePath {
			hops[i] = fmt.Sprint(id)
		}
		p.line("example path", strings.Join(hops, " -> "))
	}
}

func count(n int) string { return humanize.Comma(int64(n)) }

// decimal rounds to one decimal place; CommafWithDigits alone truncates.
func decimal(v float64) string { return humanize.CommafWithDigits(math.Round(v*10)/10, 1) }
