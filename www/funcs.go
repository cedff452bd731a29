package www

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"fleetdash/fleet"
)

var printer = message.NewPrinter(language.English)

// money formats v as US dollars with thousands separators.
func money(v any) string {
	switch x := v.(type) {
	case float64:
		return printer.Sprintf("$%.2f", x)
	case int:
		return printer.Sprintf("$%d", x)
	}
	return fleet.FormatCell(v)
}

func count(n int) string { return printer.Sprintf("%d", n) }

var (
	moneyColumns   = map[string]bool{"price": true, "totalSpent": true}
	percentColumns = map[string]bool{"fuelLevel": true, "batteryHealth": true, "utilization": true, "health": true, "progress": true}
	badgeColumns   = map[string]bool{"status": true, "urgency": true, "priority": true}
)

// cell formats a listing value for the column it belongs to.
func cell(key string, v any) string {
	switch {
	case moneyColumns[key]:
		return money(v)
	case percentColumns[key]:
		return fleet.FormatCell(v) + "%"
	case key == "performance":
		if f, ok := v.(float64); ok {
			return strconv.FormatFloat(f, 'f', 1, 64)
		}
	}
	return fleet.FormatCell(v)
}

var badgeColors = map[string]string{
	"Available":         "green",
	"In Use":            "blue",
	"Maintenance":       "yellow",
	"Operational":       "green",
	"Idle":              "gray",
	"Under Maintenance": "yellow",
	"Passed":            "green",
	"Failed":            "red",
	"Pending":           "yellow",
	"critical":          "red",
	"high":              "orange",
	"medium":            "yellow",
	"In Progress":       "blue",
	"Completed":         "green",
	"Overdue":           "red",
	"Scheduled":         "blue",
	"Delayed":           "red",
	"High":              "red",
	"Medium":            "yellow",
	"Low":               "green",
	"On Time":           "green",
	"Active":            "green",
	"On Leave":          "yellow",
}

func badge(v any) string {
	if c, ok := badgeColors[fleet.FormatCell(v)]; ok {
		return c
	}
	return "gray"
}

// withParam returns path with params, key replaced by value. An empty value
// removes key.
func withParam(path string, params url.Values, key, value string) string {
	q := url.Values{}
	for k, vs := range params {
		q[k] = append([]string(nil), vs...)
	}
	if value == "" {
		q.Del(key)
	} else {
		q.Set(key, value)
	}
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

type statCard struct {
	Title string
	Value any
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money":      money,
		"count":      count,
		"cell":       cell,
		"badge":      badge,
		"isBadge":    func(key string) bool { return badgeColumns[key] },
		"isProgress": func(key string) bool { return percentColumns[key] },
		"arrow":      func(s fleet.SortState, key string) string { return s.Arrow(key) },
		"ago":        func(t time.Time) string { return humanize.Time(t) },
		"sparkline":  sparkline,
		"points":     pointValues,
		"stack":      maintenanceStack,
		"withParam":  withParam,
		"lower":      strings.ToLower,
		"join":       strings.Join,
		"stat":       func(title string, value any) statCard { return statCard{Title: title, Value: value} },
		"add":        func(a, b int) int { return a + b },
	}
}
