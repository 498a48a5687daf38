// Package report renders analysis results as terminal tables.
//
// Every function returns the rendered text; callers decide where it goes.
// Unreachable distances print as UNREACHABLE, infinite differences as ∞.
package report

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/cityroute/analysis"
	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/store"
)

// UnreachableText replaces the distance of an unreachable location.
const UnreachableText = "UNREACHABLE"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// Minutes formats a distance.
func Minutes(d float64) string {
	if dijkstra.IsUnreachable(d) {
		return UnreachableText
	}

	return strconv.FormatFloat(d, 'f', -1, 64)
}

// Delta formats a difference or delay, which may be infinite.
func Delta(d float64) string {
	switch {
	case math.IsInf(d, 1):
		return "∞"
	case math.IsInf(d, -1):
		return "-∞"
	case d > 0:
		return "+" + strconv.FormatFloat(d, 'f', -1, 64)
	default:
		return strconv.FormatFloat(d, 'f', -1, 64)
	}
}

// Path joins a route with arrows; an empty route prints as "-".
func Path(p []string) string {
	if len(p) == 0 {
		return "-"
	}

	return strings.Join(p, " → ")
}

// Routes lists every location reachable or not from r's source, closest
// first, with its category taken from g.
func Routes(g *core.Graph, r *dijkstra.Result) string {
	t := newTable("#", "Location", "Category", "Minutes", "Route")
	for i, row := range analysis.RankByDistance(r, false) {
		cat, _ := g.Category(row.Location)
		t.Row(strconv.Itoa(i+1), row.Location, string(cat), Minutes(row.Distance), Path(r.PathTo(row.Location)))
	}

	return titleStyle.Render("Routes from "+r.Source()) + "\n" + t.String() + "\n"
}

// Comparison renders a two-source comparison and its recommendation.
func Comparison(c *analysis.Comparison) string {
	t := newTable("Target", c.SourceA, c.SourceB, "Faster", "Difference")
	for _, row := range c.Targets {
		t.Row(row.Target, Minutes(row.DistanceA), Minutes(row.DistanceB), winnerName(c, row.Winner), Delta(row.Diff))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s vs %s", c.SourceA, c.SourceB)))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n")
	fmt.Fprintf(&b, "mean %s: %s\n", c.SourceA, Minutes(c.MeanA))
	fmt.Fprintf(&b, "mean %s: %s\n", c.SourceB, Minutes(c.MeanB))
	if best, ok := c.Recommended(); ok {
		b.WriteString(okStyle.Render("recommended: "+best) + "\n")
	} else {
		b.WriteString("recommended: either (equal means)\n")
	}

	return b.String()
}

func winnerName(c *analysis.Comparison, w analysis.Winner) string {
	switch w {
	case analysis.WinnerA:
		return c.SourceA
	case analysis.WinnerB:
		return c.SourceB
	default:
		return "tie"
	}
}

// RouteChange renders the route to one target before and after a perturbation.
func RouteChange(rc *analysis.RouteChange) string {
	t := newTable("", "Minutes", "Route")
	t.Row("before", Minutes(rc.Before), Path(rc.BeforePath))
	t.Row("after", Minutes(rc.After), Path(rc.AfterPath))

	status := okStyle.Render("route unchanged")
	if rc.Changed {
		status = warnStyle.Render("route changed")
	}

	return titleStyle.Render("Route to "+rc.Target) + "\n" + t.String() + "\n" +
		fmt.Sprintf("%s, delay %s\n", status, Delta(rc.Delay))
}

// Impact renders a CongestionImpact report, one row per target.
func Impact(im *analysis.Impact) string {
	t := newTable("Target", "Before", "After", "Delay", "Changed", "New route")
	for _, c := range im.Changes {
		changed := "no"
		if c.Changed {
			changed = "yes"
		}
		t.Row(c.Target, Minutes(c.Before), Minutes(c.After), Delta(c.Delay), changed, Path(c.AfterPath))
	}
	ps := make([]string, len(im.Perturbations))
	for i, p := range im.Perturbations {
		ps[i] = p.String()
	}

	return titleStyle.Render(fmt.Sprintf("Congestion from %s (%s)", im.Source, strings.Join(ps, ", "))) +
		"\n" + t.String() + "\n"
}

// Dispatch renders the best source per target and the coverage summary.
func Dispatch(p *analysis.Plan) string {
	t := newTable("Target", "Dispatch from", "Minutes")
	for _, a := range p.Assignments {
		src := a.Source
		if src == "" {
			src = "-"
		}
		t.Row(a.Target, src, Minutes(a.Distance))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Dispatch plan"))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n")
	for _, src := range slices.Sorted(maps.Keys(p.Coverage)) {
		fmt.Fprintf(&b, "mean %s: %s\n", src, Minutes(p.Coverage[src]))
	}
	b.WriteString(okStyle.Render("recommended: "+p.Recommended) + "\n")

	return b.String()
}

// Runs renders stored run history.
func Runs(runs []store.Run) string {
	t := newTable("ID", "When", "Label", "Network", "Source", "Reachable")
	for _, r := range runs {
		t.Row(
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Label,
			r.Network,
			r.Source,
			fmt.Sprintf("%d/%d", r.Reachable, r.Locations),
		)
	}

	return t.String() + "\n"
}
