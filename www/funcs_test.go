package www

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdash/fleet"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1,613.35", money(1613.35))
	assert.Equal(t, "$22,150.00", money(22150.0))
	assert.Equal(t, "$5,000", money(5000))
	assert.Equal(t, "12,450", count(12450))
}

func TestCell(t *testing.T) {
	assert.Equal(t, "$29.99", cell("price", 29.99))
	assert.Equal(t, "75%", cell("fuelLevel", 75))
	assert.Equal(t, "4.8", cell("performance", 4.8))
	assert.Equal(t, "Truck 101", cell("name", "Truck 101"))
}

func TestBadge(t *testing.T) {
	assert.Equal(t, "green", badge("Available"))
	assert.Equal(t, "red", badge("critical"))
	assert.Equal(t, "gray", badge("Something Else"))
}

func TestWithParam(t *testing.T) {
	params := url.Values{"q": {"truck"}, "sort": {"name"}}
	assert.Equal(t, "/vehicle-management?q=truck", withParam("/vehicle-management", params, "sort", ""))
	assert.Equal(t, "/vehicle-management?q=truck&sort=status", withParam("/vehicle-management", params, "sort", "status"))
	assert.Equal(t, "/issues", withParam("/issues", nil, "view", ""))
	// the input is not modified
	assert.Equal(t, "name", params.Get("sort"))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "0.0,10.0 50.0,5.0 100.0,0.0", sparkline([]int{0, 5, 10}, 100, 10))
	assert.Equal(t, "", sparkline(nil, 100, 10))
	assert.Equal(t, "0.0,0.0", sparkline([]int{3}, 100, 10))
}

func TestBarChart(t *testing.T) {
	bars := barChart([]string{"Jan", "Feb"}, []int{50, 100}, 200, 100)
	require.Len(t, bars, 2)
	want := []bar{
		{Label: "Jan", Value: 50, X: 25, Y: 50, Width: 50, Height: 50},
		{Label: "Feb", Value: 100, X: 125, Y: 0, Width: 50, Height: 100},
	}
	if diff := cmp.Diff(want, bars); diff != "" {
		t.Errorf("bars mismatch (-want +got):\n%s", diff)
	}
}

func TestMaintenanceStack(t *testing.T) {
	segs := maintenanceStack(fleet.MaintenanceMonth{Month: "Jan", Emergency: 25, NonScheduled: 35, Scheduled: 40})
	want := []segment{
		{Kind: "emergency", Pct: 25, Offset: 0},
		{Kind: "non-scheduled", Pct: 35, Offset: 25},
		{Kind: "scheduled", Pct: 40, Offset: 60},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestAPISort(t *testing.T) {
	cols := []fleet.ColumnInfo{
		{Key: "name", Sortable: true},
		{Key: "status", Sortable: true},
		{Key: "phone"},
	}
	cases := []struct {
		name    string
		query   string
		want    fleet.SortState
		wantErr bool
	}{
		{name: "none", query: "", want: fleet.SortState{}},
		{name: "sort only", query: "sort=name", want: fleet.SortState{Key: "name", Direction: fleet.Ascending}},
		{name: "sort desc", query: "sort=name&dir=desc", want: fleet.SortState{Key: "name", Direction: fleet.Descending}},
		{name: "unknown sort key passes through", query: "sort=bogus", want: fleet.SortState{Key: "bogus", Direction: fleet.Ascending}},
		{name: "order_by", query: "order_by=status", want: fleet.SortState{Key: "status", Direction: fleet.Ascending}},
		{name: "order_by desc", query: "order_by=name+desc", want: fleet.SortState{Key: "name", Direction: fleet.Descending}},
		{name: "order_by first field wins", query: "order_by=status+desc,name", want: fleet.SortState{Key: "status", Direction: fleet.Descending}},
		{name: "order_by unknown", query: "order_by=bogus", wantErr: true},
		{name: "order_by not sortable", query: "order_by=phone", wantErr: true},
		{name: "order_by malformed", query: "order_by=name+sideways", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			got, err := apiSort(params, cols)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseQuery(t *testing.T) {
	params := url.Values{"q": {"  john "}, "status": {"Available"}, "type": {""}, "by": {"due"}}
	q := parseQuery(params, fleet.SortState{Key: "name", Direction: fleet.Ascending})
	assert.Equal(t, "john", q.Search)
	assert.Equal(t, map[string]string{"status": "Available"}, q.Filters)
	assert.Equal(t, "due", q.By)
	assert.Equal(t, "name", q.Sort.Key)
}

func TestGroupTasksByDate(t *testing.T) {
	days := groupTasksByDate(fleet.Default().ServiceTasks)
	require.Len(t, days, 6)
	assert.Equal(t, "2024-05-25", days[0].Date)
	assert.Equal(t, "2024-06-10", days[len(days)-1].Date)
}

func TestHitHref(t *testing.T) {
	assert.Equal(t, "/vehicle-management?q=Van+203", hitHref(fleet.EntityVehicles, "Van 203"))
	assert.Equal(t, "/equipment-management?q=Excavator+XL2000", hitHref(fleet.EntityEquipment, "Excavator XL2000"))
	assert.Equal(t, "/dashboard", hitHref("drivers", "x"))
}

func TestSafeRedirect(t *testing.T) {
	assert.Equal(t, "/issues", safeRedirect("/issues", "/dashboard"))
	assert.Equal(t, "/dashboard", safeRedirect("//evil.example", "/dashboard"))
	assert.Equal(t, "/dashboard", safeRedirect("https://evil.example", "/dashboard"))
	assert.Equal(t, "/dashboard", safeRedirect("", "/dashboard"))
	assert.Equal(t, "/dashboard", safeRedirect(`/\evil.example/x`, "/dashboard"))
	assert.Equal(t, "/dashboard", safeRedirect(`/\\evil.example`, "/dashboard"))
	assert.Equal(t, "/dashboard", safeRedirect("/\t/evil.example", "/dashboard"))
	assert.Equal(t, "/dashboard", safeRedirect("/\n/evil.example", "/dashboard"))
	assert.Equal(t, "/vehicles?sort=name", safeRedirect("/vehicles?sort=name", "/dashboard"))
}
