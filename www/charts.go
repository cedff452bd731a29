package www

import (
	"strconv"
	"strings"

	"fleetdash/fleet"
	"fleetdash/livestate"
)

// sparkline scales values into an SVG polyline points attribute spanning
// width x height. The largest value touches the top edge.
func sparkline(values []int, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	top := livestate.Max(values)
	step := 0.0
	if len(values) > 1 {
		step = float64(width) / float64(len(values)-1)
	}
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		x := step * float64(i)
		y := float64(height) - float64(v)*float64(height)/float64(top)
		b.WriteString(strconv.FormatFloat(x, 'f', 1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(y, 'f', 1, 64))
	}
	return b.String()
}

func pointValues(pts []livestate.Point) []int {
	out := make([]int, len(pts))
	for i, p := range pts {
		out[i] = p.Value
	}
	return out
}

// bar is one column of a bar chart, already in SVG coordinates.
type bar struct {
	Label  string
	Value  int
	X      int
	Y      int
	Width  int
	Height int
}

func barChart(labels []string, values []int, width, height int) []bar {
	if len(values) == 0 {
		return nil
	}
	top := livestate.Max(values)
	slot := width / len(values)
	out := make([]bar, len(values))
	for i, v := range values {
		h := v * height / top
		out[i] = bar{
			Label:  labels[i],
			Value:  v,
			X:      i*slot + slot/4,
			Y:      height - h,
			Width:  slot / 2,
			Height: h,
		}
	}
	return out
}

func insuranceBars(months []fleet.InsuranceMonth, width, height int) (premium, claims []bar) {
	labels := make([]string, len(months))
	p := make([]int, len(months))
	c := make([]int, len(months))
	for i, m := range months {
		labels[i], p[i], c[i] = m.Month, m.Premium, m.Claims
	}
	return barChart(labels, p, width, height), barChart(labels, c, width, height)
}

// segment is one band of a stacked percentage bar.
type segment struct {
	Kind   string
	Pct    int
	Offset int
}

func maintenanceStack(m fleet.MaintenanceMonth) []segment {
	return []segment{
		{Kind: "emergency", Pct: m.Emergency, Offset: 0},
		{Kind: "non-scheduled", Pct: m.NonScheduled, Offset: m.Emergency},
		{Kind: "scheduled", Pct: m.Scheduled, Offset: m.Emergency + m.NonScheduled},
	}
}
