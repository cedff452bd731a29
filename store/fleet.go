package store

import (
	"fmt"

	"fleetdash/fleet"
)

var _ fleet.Source = (*DB)(nil)

type scanner interface {
	Scan(dest ...any) error
}

// queryRows runs query and scans every row with scan, keeping row order.
func queryRows[T any](db *DB, table, query string, scan func(scanner, *T) error) ([]T, error) {
	rows, err := db.Query(db.Q(query))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()
	var out []T
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (db *DB) Vehicles() ([]fleet.Vehicle, error) {
	return queryRows(db, "vehicles", `SELECT id, name, vehicle_type, status, driver, fuel_level, battery_health, last_maintenance, next_service FROM vehicles ORDER BY id`,
		func(s scanner, v *fleet.Vehicle) error {
			return s.Scan(&v.ID, &v.Name, &v.Type, &v.Status, &v.Driver, &v.FuelLevel, &v.BatteryHealth, &v.LastMaintenance, &v.NextService)
		})
}

func (db *DB) Equipment() ([]fleet.Equipment, error) {
	return queryRows(db, "equipment", `SELECT id, name, status, last_maintenance, next_maintenance, utilization, health FROM equipment ORDER BY id`,
		func(s scanner, e *fleet.Equipment) error {
			return s.Scan(&e.ID, &e.Name, &e.Status, &e.LastMaintenance, &e.NextMaintenance, &e.Utilization, &e.Health)
		})
}

func (db *DB) Parts() ([]fleet.Part, error) {
	return queryRows(db, "parts", `SELECT id, name, category, stock, price, last_ordered FROM parts ORDER BY id`,
		func(s scanner, p *fleet.Part) error {
			return s.Scan(&p.ID, &p.Name, &p.Category, &p.Stock, &p.Price, &p.LastOrdered)
		})
}

func (db *DB) Inspections() ([]fleet.Inspection, error) {
	return queryRows(db, "inspections", `SELECT id, vehicle, inspected_on, status, inspector, score FROM inspections ORDER BY id`,
		func(s scanner, i *fleet.Inspection) error {
			return s.Scan(&i.ID, &i.Vehicle, &i.Date, &i.Status, &i.Inspector, &i.Score)
		})
}

func (db *DB) Issues() ([]fleet.Issue, error) {
	return queryRows(db, "issues", `SELECT id, vehicle, fault, urgency, progress FROM issues ORDER BY id`,
		func(s scanner, i *fleet.Issue) error {
			return s.Scan(&i.ID, &i.Vehicle, &i.Fault, &i.Urgency, &i.Progress)
		})
}

func (db *DB) WorkOrders() ([]fleet.WorkOrder, error) {
	return queryRows(db, "work_orders", `SELECT id, title, vehicle, assignee, status, due_date, progress FROM work_orders ORDER BY id`,
		func(s scanner, w *fleet.WorkOrder) error {
			return s.Scan(&w.ID, &w.Title, &w.Vehicle, &w.Assignee, &w.Status, &w.DueDate, &w.Progress)
		})
}

func (db *DB) ServiceTasks() ([]fleet.ServiceTask, error) {
	return queryRows(db, "service_tasks", `SELECT id, title, vehicle, assignee, status, scheduled_date, scheduled_time, task_type FROM service_tasks ORDER BY id`,
		func(s scanner, t *fleet.ServiceTask) error {
			return s.Scan(&t.ID, &t.Title, &t.Vehicle, &t.Assignee, &t.Status, &t.Date, &t.Time, &t.Type)
		})
}

func (db *DB) FuelEntries() ([]fleet.FuelEntry, error) {
	return queryRows(db, "fuel_entries", `SELECT id, vehicle, entry_date, meter_usage, volume, total, fuel_economy, cost_per_meter FROM fuel_entries ORDER BY id`,
		func(s scanner, f *fleet.FuelEntry) error {
			return s.Scan(&f.ID, &f.Vehicle, &f.Date, &f.Usage, &f.Volume, &f.Total, &f.FuelEconomy, &f.CostPerMeter)
		})
}

func (db *DB) Vendors() ([]fleet.Vendor, error) {
	return queryRows(db, "vendors", `SELECT id, name, vendor_type, last_order, total_spent, performance FROM vendors ORDER BY id`,
		func(s scanner, v *fleet.Vendor) error {
			return s.Scan(&v.ID, &v.Name, &v.Type, &v.LastOrder, &v.TotalSpent, &v.Performance)
		})
}

func (db *DB) Contacts() ([]fleet.Contact, error) {
	return queryRows(db, "contacts", `SELECT id, name, role, phone, email, vehicle FROM contacts ORDER BY id`,
		func(s scanner, c *fleet.Contact) error {
			return s.Scan(&c.ID, &c.Name, &c.Role, &c.Phone, &c.Email, &c.Vehicle)
		})
}

func (db *DB) Reminders() ([]fleet.Reminder, error) {
	return queryRows(db, "reminders", `SELECT id, title, vehicle, reminder_type, due_date, priority, status FROM reminders ORDER BY id`,
		func(s scanner, r *fleet.Reminder) error {
			return s.Scan(&r.ID, &r.Title, &r.Vehicle, &r.Type, &r.DueDate, &r.Priority, &r.Status)
		})
}

// Counts returns the row count of every entity table, for diagnostics.
func (db *DB) Counts() (map[string]int, error) {
	out := make(map[string]int, len(seedTables))
	for _, t := range seedTables {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + t).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", t, err)
		}
		out[t] = n
	}
	return out, nil
}
