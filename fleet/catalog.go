package fleet

import (
	"errors"
	"fmt"
	"strconv"
)

// Entity keys used in URLs, the JSON API and exports.
const (
	EntityVehicles     = "vehicles"
	EntityEquipment    = "equipment"
	EntityParts        = "parts"
	EntityInspections  = "inspections"
	EntityIssues       = "issues"
	EntityWorkOrders   = "work-orders"
	EntityServiceTasks = "service-tasks"
	EntityFuel         = "fuel"
	EntityVendors      = "vendors"
	EntityContacts     = "contacts"
	EntityReminders    = "reminders"
)

var ErrUnknownEntity = errors.New("unknown entity")

type lister interface {
	name() string
	columnInfo() []ColumnInfo
	list(src Source, q Query) (*Listing, error)
}

// Catalog runs page queries against a Source.
type Catalog struct {
	src    Source
	tables map[string]lister
	order  []string
}

func NewCatalog(src Source) *Catalog {
	c := &Catalog{src: src, tables: make(map[string]lister)}
	for _, t := range []lister{
		vehicleTable, equipmentTable, partTable, inspectionTable, issueTable,
		workOrderTable, serviceTaskTable, fuelTable, vendorTable, contactTable, reminderTable,
	} {
		c.tables[t.name()] = t
		c.order = append(c.order, t.name())
	}
	return c
}

func (c *Catalog) Source() Source { return c.src }

// Entities lists the entity keys in sidebar order.
func (c *Catalog) Entities() []string {
	return append([]string(nil), c.order...)
}

// List applies q to entity. It returns ErrUnknownEntity for a key it does not serve.
func (c *Catalog) List(entity string, q Query) (*Listing, error) {
	t, ok := c.tables[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	return t.list(c.src, q)
}

func str[T any](f func(T) string) func(T) any { return func(t T) any { return f(t) } }

var vehicleTable = &table[Vehicle]{
	entity: EntityVehicles,
	load:   Source.Vehicles,
	search: []func(Vehicle) string{
		func(v Vehicle) string { return v.Name },
		func(v Vehicle) string { return v.Driver },
	},
	filters: []Filter[Vehicle]{
		{Param: "status", Label: "Status", Options: VehicleStatuses, Value: func(v Vehicle) string { return v.Status }},
		{Param: "type", Label: "Type", Options: VehicleTypes, Value: func(v Vehicle) string { return v.Type }},
	},
	columns: []Column[Vehicle]{
		{Key: "name", Label: "Name", Sortable: true, Value: str(func(v Vehicle) string { return v.Name })},
		{Key: "type", Label: "Type", Sortable: true, Value: str(func(v Vehicle) string { return v.Type })},
		{Key: "status", Label: "Status", Sortable: true, Value: str(func(v Vehicle) string { return v.Status })},
		{Key: "driver", Label: "Driver", Sortable: true, Value: str(func(v Vehicle) string { return v.Driver })},
		{Key: "fuelLevel", Label: "Fuel Level", Sortable: true, Value: func(v Vehicle) any { return v.FuelLevel }},
		{Key: "batteryHealth", Label: "Battery Health", Sortable: true, Value: func(v Vehicle) any { return v.BatteryHealth }},
		{Key: "lastMaintenance", Label: "Last Maintenance", Sortable: true, Value: str(func(v Vehicle) string { return v.LastMaintenance })},
		{Key: "nextService", Label: "Next Service", Sortable: true, Value: str(func(v Vehicle) string { return v.NextService })},
	},
}

var equipmentTable = &table[Equipment]{
	entity: EntityEquipment,
	load:   Source.Equipment,
	search: []func(Equipment) string{
		func(e Equipment) string { return e.Name },
	},
	filters: []Filter[Equipment]{
		{Param: "status", Label: "Status", Options: EquipmentStatuses, Value: func(e Equipment) string { return e.Status }},
	},
	columns: []Column[Equipment]{
		{Key: "name", Label: "Name", Sortable: true, Value: str(func(e Equipment) string { return e.Name })},
		{Key: "status", Label: "Status", Sortable: true, Value: str(func(e Equipment) string { return e.Status })},
		{Key: "lastMaintenance", Label: "Last Maintenance", Sortable: true, Value: str(func(e Equipment) string { return e.LastMaintenance })},
		{Key: "nextMaintenance", Label: "Next Maintenance", Sortable: true, Value: str(func(e Equipment) string { return e.NextMaintenance })},
		{Key: "utilization", Label: "Utilization", Sortable: true, Value: func(e Equipment) any { return e.Utilization }},
		{Key: "health", Label: "Health", Sortable: true, Value: func(e Equipment) any { return e.Health }},
	},
}

var partTable = &table[Part]{
	entity: EntityParts,
	load:   Source.Parts,
	search: []func(Part) string{
		func(p Part) string { return p.Name },
	},
	filters: []Filter[Part]{
		{Param: "category", Label: "Category", Options: PartCategories, Value: func(p Part) string { return p.Category }},
	},
	columns: []Column[Part]{
		{Key: "name", Label: "Name", Sortable: true, Value: str(func(p Part) string { return p.Name })},
		{Key: "category", Label: "Category", Sortable: true, Value: str(func(p Part) string { return p.Category })},
		{Key: "stock", Label: "Stock", Sortable: true, Value: func(p Part) any { return p.Stock }},
		{Key: "price", Label: "Price", Sortable: true, Value: func(p Part) any { return p.Price }},
		{Key: "lastOrdered", Label: "Last Ordered", Sortable: true, Value: str(func(p Part) string { return p.LastOrdered })},
	},
}

var inspectionTable = &table[Inspection]{
	entity: EntityInspections,
	load:   Source.Inspections,
	search: []func(Inspection) string{
		func(i Inspection) string { return i.Vehicle },
	},
	filters: []Filter[Inspection]{
		{Param: "status", Label: "Status", Options: InspectionStatuses, Value: func(i Inspection) string { return i.Status }},
	},
	columns: []Column[Inspection]{
		{Key: "vehicle", Label: "Vehicle", Sortable: true, Value: str(func(i Inspection) string { return i.Vehicle })},
		{Key: "date", Label: "Date", Sortable: true, Value: str(func(i Inspection) string { return i.Date })},
		{Key: "status", Label: "Status", Sortable: true, Value: str(func(i Inspection) string { return i.Status })},
		{Key: "inspector", Label: "Inspector", Sortable: true, Value: str(func(i Inspection) string { return i.Inspector })},
		{Key: "score", Label: "Score", Sortable: true, Value: func(i Inspection) any { return i.Score }},
	},
}

var issueTable = &table[Issue]{
	entity: EntityIssues,
	load:   Source.Issues,
	search: []func(Issue) string{
		func(i Issue) string { return i.Vehicle },
		func(i Issue) string { return i.Fault },
	},
	filters: []Filter[Issue]{
		{Param: "urgency", Label: "Urgency", Options: IssueUrgencies, Value: func(i Issue) string { return i.Urgency }},
	},
	columns: []Column[Issue]{
		{Key: "vehicle", Label: "Vehicle", Sortable: true, Value: str(func(i Issue) string { return i.Vehicle })},
		{Key: "fault", Label: "Fault", Sortable: true, Value: str(func(i Issue) string { return i.Fault })},
		{Key: "urgency", Label: "Urgency", Sortable: true, Value: str(func(i Issue) string { return i.Urgency })},
		{Key: "progress", Label: "Progress", Sortable: true, Value: func(i Issue) any { return i.Progress }},
	},
}

var workOrderTable = &table[WorkOrder]{
	entity: EntityWorkOrders,
	load:   Source.WorkOrders,
	search: []func(WorkOrder) string{
		func(w WorkOrder) string { return w.Title },
		func(w WorkOrder) string { return w.Vehicle },
	},
	filters: []Filter[WorkOrder]{
		{Param: "status", Label: "Status", Options: WorkOrderStatuses, Value: func(w WorkOrder) string { return w.Status }},
	},
	columns: []Column[WorkOrder]{
		{Key: "title", Label: "Title", Sortable: true, Value: str(func(w WorkOrder) string { return w.Title })},
		{Key: "vehicle", Label: "Vehicle", Sortable: true, Value: str(func(w WorkOrder) string { return w.Vehicle })},
		{Key: "assignee", Label: "Assignee", Sortable: true, Value: str(func(w WorkOrder) string { return w.Assignee })},
		{Key: "status", Label: "Status", Sortable: true, Value: str(func(w WorkOrder) string { return w.Status })},
		{Key: "dueDate", Label: "Due Date", Sortable: true, Value: str(func(w WorkOrder) string { return w.DueDate })},
		{Key: "progress", Label: "Progress", Sortable: true, Value: func(w WorkOrder) any { return w.Progress }},
	},
	presets: map[string]preset{
		"created": {label: "Sort: Date Created"},
		"due":     {label: "Sort: Due Date", sort: SortState{Key: "dueDate", Direction: Ascending}},
		"status":  {label: "Sort: Status", sort: SortState{Key: "status", Direction: Ascending}},
	},
	selector: []string{"created", "due", "status"},
}

var serviceTaskTable = &table[ServiceTask]{
	entity: EntityServiceTasks,
	load:   Source.ServiceTasks,
	search: []func(ServiceTask) string{
		func(t ServiceTask) string { return t.Title },
		func(t ServiceTask) string { return t.Vehicle },
	},
	filters: []Filter[ServiceTask]{
		{Param: "status", Label: "Status", Options: ServiceTaskStatuses, Value: func(t ServiceTask) string { return t.Status }},
		{Param: "type", Label: "Type", Options: ServiceTaskTypes, Value: func(t ServiceTask) string { return t.Type }},
	},
	columns: []Column[ServiceTask]{
		{Key: "title", Label: "Title", Sortable: true, Value: str(func(t ServiceTask) string { return t.Title })},
		{Key: "vehicle", Label: "Vehicle", Sortable: true, Value: str(func(t ServiceTask) string { return t.Vehicle })},
		{Key: "assignee", Label: "Assignee", Sortable: true, Value: str(func(t ServiceTask) string { return t.Assignee })},
		{Key: "status", Label: "Status", Sortable: true, Value: str(func(t ServiceTask) string { return t.Status })},
		{Key: "date", Label: "Date", Sortable: true, Value: str(func(t ServiceTask) string { return t.Date })},
		{Key: "time", Label: "Time", Value: str(func(t ServiceTask) string { return t.Time })},
		{Key: "type", Label: "Type", Sortable: true, Value: str(func(t ServiceTask) string { return t.Type })},
	},
}

var fuelTable = &table[FuelEntry]{
	entity: EntityFuel,
	load:   Source.FuelEntries,
	search: []func(FuelEntry) string{
		func(f FuelEntry) string { return f.Vehicle },
	},
	columns: []Column[FuelEntry]{
		{Key: "vehicle", Label: "Vehicle", Sortable: true, Value: str(func(f FuelEntry) string { return f.Vehicle })},
		{Key: "date", Label: "Date", Value: str(func(f FuelEntry) string { return f.Date })},
		{Key: "usage", Label: "Usage", Value: str(func(f FuelEntry) string { return f.Usage })},
		{Key: "volume", Label: "Volume", Value: str(func(f FuelEntry) string { return f.Volume })},
		{Key: "total", Label: "Total", Value: str(func(f FuelEntry) string { return f.Total })},
		{Key: "fuelEconomy", Label: "Fuel Economy", Value: str(func(f FuelEntry) string { return f.FuelEconomy })},
		{Key: "costPerMeter", Label: "Cost per Meter", Value: str(func(f FuelEntry) string { return f.CostPerMeter })},
	},
}

var vendorTable = &table[Vendor]{
	entity: EntityVendors,
	load:   Source.Vendors,
	search: []func(Vendor) string{
		func(v Vendor) string { return v.Name },
		func(v Vendor) string { return v.Type },
	},
	filters: []Filter[Vendor]{
		{Param: "type", Label: "Type", Options: VendorTypes, Value: func(v Vendor) string { return v.Type }, Fold: true},
	},
	columns: []Column[Vendor]{
		{Key: "name", Label: "Name", Sortable: true, Value: str(func(v Vendor) string { return v.Name })},
		{Key: "type", Label: "Type", Sortable: true, Value: str(func(v Vendor) string { return v.Type })},
		{Key: "lastOrder", Label: "Last Order", Sortable: true, Value: str(func(v Vendor) string { return v.LastOrder })},
		{Key: "totalSpent", Label: "Total Spent", Sortable: true, Value: func(v Vendor) any { return v.TotalSpent }},
		{Key: "performance", Label: "Performance", Sortable: true, Value: func(v Vendor) any { return v.Performance }},
	},
	presets: map[string]preset{
		"name":        {label: "Sort by: Name", sort: SortState{Key: "name", Direction: Ascending}},
		"performance": {label: "Sort by: Performance", sort: SortState{Key: "performance", Direction: Descending}},
		"spent":       {label: "Sort by: Total Spent", sort: SortState{Key: "totalSpent", Direction: Descending}},
	},
	selector: []string{"name", "performance", "spent"},
}

var contactTable = &table[Contact]{
	entity: EntityContacts,
	load:   Source.Contacts,
	search: []func(Contact) string{
		func(c Contact) string { return c.Name },
		func(c Contact) string { return c.Role },
	},
	columns: []Column[Contact]{
		{Key: "name", Label: "Name", Sortable: true, Value: str(func(c Contact) string { return c.Name })},
		{Key: "role", Label: "Role", Sortable: true, Value: str(func(c Contact) string { return c.Role })},
		{Key: "phone", Label: "Phone", Value: str(func(c Contact) string { return c.Phone })},
		{Key: "email", Label: "Email", Value: str(func(c Contact) string { return c.Email })},
		{Key: "vehicle", Label: "Vehicle", Sortable: true, Value: str(func(c Contact) string { return c.Vehicle })},
	},
}

var reminderTable = &table[Reminder]{
	entity: EntityReminders,
	load:   Source.Reminders,
	search: []func(Reminder) string{
		func(r Reminder) string { return r.Title },
		func(r Reminder) string { return r.Vehicle },
	},
	filters: []Filter[Reminder]{
		{Param: "type", Label: "Type", Options: ReminderTypes, Value: func(r Reminder) string { return r.Type }},
		{Param: "priority", Label: "Priority", Options: ReminderPriorities, Value: func(r Reminder) string { return r.Priority }},
		{Param: "status", Label: "Status", Options: ReminderStatuses, Value: func(r Reminder) string { return r.Status }},
	},
	columns: []Column[Reminder]{
		{Key: "title", Label: "Title", Sortable: true, Value: str(func(r Reminder) string { return r.Title })},
		{Key: "vehicle", Label: "Vehicle", Sortable: true, Value: str(func(r Reminder) string { return r.Vehicle })},
		{Key: "type", Label: "Type", Sortable: true, Value: str(func(r Reminder) string { return r.Type })},
		{Key: "dueDate", Label: "Due Date", Sortable: true, Value: str(func(r Reminder) string { return r.DueDate })},
		{Key: "priority", Label: "Priority", Sortable: true, Value: str(func(r Reminder) string { return r.Priority })},
		{Key: "status", Label: "Status", Sortable: true, Value: str(func(r Reminder) string { return r.Status })},
	},
}

// Columns describes entity's table columns without loading any rows.
func (c *Catalog) Columns(entity string) ([]ColumnInfo, error) {
	t, ok := c.tables[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	return t.columnInfo(), nil
}

// FormatCell renders an exported cell value as text.
func FormatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
