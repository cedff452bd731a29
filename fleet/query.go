package fleet

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// SortState is the column a table is ordered by. A zero SortState keeps
// dataset order.
type SortState struct {
	Key       string    `json:"key,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Toggle returns the state after a click on column key: ascending on a new
// column, flipping to descending only when key is already ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key && s.Direction == Ascending {
		return SortState{Key: key, Direction: Descending}
	}
	return SortState{Key: key, Direction: Ascending}
}

// Arrow is the header marker for column key.
func (s SortState) Arrow(key string) string {
	if s.Key != key || key == "" {
		return ""
	}
	if s.Direction == Descending {
		return "↓"
	}
	return "↑"
}

// String encodes the state as "key:direction".
func (s SortState) String() string {
	if s.Key == "" {
		return ""
	}
	return s.Key + ":" + string(s.Direction)
}

// ParseSortState decodes the String form. Anything malformed yields the zero state.
func ParseSortState(v string) SortState {
	key, dir, ok := strings.Cut(v, ":")
	if !ok || key == "" {
		return SortState{}
	}
	switch Direction(dir) {
	case Ascending, Descending:
		return SortState{Key: key, Direction: Direction(dir)}
	}
	return SortState{}
}

// Query is everything a page control can change: the search box, the
// enumerated filters, the column sort and the sort selector.
type Query struct {
	Search  string            `json:"search,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
	Sort    SortState         `json:"sort"`
	By      string            `json:"by,omitempty"`
}

// FilterValue returns the active value for param, or "All".
func (q Query) FilterValue(param string) string {
	if v := q.Filters[param]; v != "" {
		return v
	}
	return "All"
}

// Column is a displayable and sortable field of T. Value returns a string,
// an int or a float64.
type Column[T any] struct {
	Key      string
	Label    string
	Sortable bool
	Value    func(T) any
}

// Filter is an exact-match control on an enumerated field. Fold makes the
// match case-insensitive.
type Filter[T any] struct {
	Param   string
	Label   string
	Options []string
	Value   func(T) string
	Fold    bool
}

type ColumnInfo struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
}

type FilterInfo struct {
	Param   string   `json:"param"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
	Active  string   `json:"active"`
}

type SelectorInfo struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Listing is the result of running a Query against one entity.
type Listing struct {
	Entity    string         `json:"entity"`
	Query     Query          `json:"query"`
	Total     int            `json:"total"`
	Count     int            `json:"count"`
	Columns   []ColumnInfo   `json:"columns"`
	Filters   []FilterInfo   `json:"filters,omitempty"`
	Selectors []SelectorInfo `json:"selectors,omitempty"`
	Rows      any            `json:"rows"`
	Records   [][]any        `json:"-"`
}

func (l *Listing) Empty() bool { return l.Count == 0 }

// Partial reports whether filtering removed some but not all rows.
func (l *Listing) Partial() bool { return l.Count > 0 && l.Count < l.Total }

type preset struct {
	label string
	sort  SortState
}

type table[T any] struct {
	entity   string
	load     func(Source) ([]T, error)
	search   []func(T) string
	filters  []Filter[T]
	columns  []Column[T]
	presets  map[string]preset
	selector []string
}

func (t *table[T]) name() string { return t.entity }

func (t *table[T]) columnInfo() []ColumnInfo {
	out := make([]ColumnInfo, len(t.columns))
	for i, c := range t.columns {
		out[i] = ColumnInfo{Key: c.Key, Label: c.Label, Sortable: c.Sortable}
	}
	return out
}

func (t *table[T]) list(src Source, q Query) (*Listing, error) {
	all, err := t.load(src)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", t.entity, err)
	}
	rows := t.apply(all, q)

	l := &Listing{
		Entity: t.entity,
		Query:  q,
		Total:  len(all),
		Count:  len(rows),
		Rows:   rows,
	}
	l.Columns = t.columnInfo()
	for _, f := range t.filters {
		l.Filters = append(l.Filters, FilterInfo{
			Param:   f.Param,
			Label:   f.Label,
			Options: append([]string{"All"}, f.Options...),
			Active:  q.FilterValue(f.Param),
		})
	}
	for _, key := range t.selector {
		l.Selectors = append(l.Selectors, SelectorInfo{Value: key, Label: t.presets[key].label})
	}
	l.Records = make([][]any, len(rows))
	for i, r := range rows {
		rec := make([]any, len(t.columns))
		for j, c := range t.columns {
			rec[j] = c.Value(r)
		}
		l.Records[i] = rec
	}
	return l, nil
}

func (t *table[T]) apply(all []T, q Query) []T {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]T, 0, len(all))
	for _, row := range all {
		if t.matchSearch(row, term) && t.matchFilters(row, q.Filters) {
			out = append(out, row)
		}
	}

	sort := q.Sort
	if p, ok := t.presets[q.By]; ok {
		sort = p.sort
	}
	col, ok := t.column(sort.Key)
	if !ok {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		c := compareValues(col.Value(a), col.Value(b))
		if sort.Direction == Descending {
			return -c
		}
		return c
	})
	return out
}

func (t *table[T]) matchSearch(row T, term string) bool {
	if term == "" {
		return true
	}
	for _, field := range t.search {
		if strings.Contains(strings.ToLower(field(row)), term) {
			return true
		}
	}
	return false
}

func (t *table[T]) matchFilters(row T, filters map[string]string) bool {
	for _, f := range t.filters {
		want := filters[f.Param]
		if f.Fold {
			if want == "" || strings.EqualFold(want, "all") {
				continue
			}
			if !strings.EqualFold(f.Value(row), want) {
				return false
			}
			continue
		}
		if want == "" || want == "All" {
			continue
		}
		if f.Value(row) != want {
			return false
		}
	}
	return true
}

func (t *table[T]) column(key string) (Column[T], bool) {
	if key == "" {
		return Column[T]{}, false
	}
	for _, c := range t.columns {
		if c.Key == key && c.Sortable {
			return c, true
		}
	}
	return Column[T]{}, false
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return strings.Compare(av, bv)
	case int:
		bv, _ := b.(int)
		return cmp.Compare(av, bv)
	case int64:
		bv, _ := b.(int64)
		return cmp.Compare(av, bv)
	case float64:
		bv, _ := b.(float64)
		return cmp.Compare(av, bv)
	}
	return 0
}
