package store

import (
	"fmt"

	"fleetdash/fleet"
)

var seedTables = []string{
	"vehicles", "equipment", "parts", "inspections", "issues", "work_orders",
	"service_tasks", "fuel_entries", "vendors", "contacts", "reminders",
}

// Seed replaces the contents of every entity table with d. Rows are never
// edited in place, so each start-up restores the built-in data.
func (db *DB) Seed(d *fleet.Dataset) error {
	if err := fleet.Validate(d); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer tx.Rollback()

	for _, t := range seedTables {
		if _, err := tx.Exec("DELETE FROM " + t); err != nil {
			return fmt.Errorf("seed: clear %s: %w", t, err)
		}
	}

	ins := func(table, query string, args ...any) error {
		if _, err := tx.Exec(db.Q(query), args...); err != nil {
			return fmt.Errorf("seed: insert %s: %w", table, err)
		}
		return nil
	}
	if err := seedAll(d, ins); err != nil {
		return err
	}
	return tx.Commit()
}

func seedAll(d *fleet.Dataset, ins func(table, query string, args ...any) error) error {
	for _, v := range d.Vehicles {
		if err := ins("vehicles", `INSERT INTO vehicles (id, name, vehicle_type, status, driver, fuel_level, battery_health, last_maintenance, next_service) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			v.ID, v.Name, v.Type, v.Status, v.Driver, v.FuelLevel, v.BatteryHealth, v.LastMaintenance, v.NextService); err != nil {
			return err
		}
	}
	for _, e := range d.Equipment {
		if err := ins("equipment", `INSERT INTO equipment (id, name, status, last_maintenance, next_maintenance, utilization, health) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.Status, e.LastMaintenance, e.NextMaintenance, e.Utilization, e.Health); err != nil {
			return err
		}
	}
	for _, p := range d.Parts {
		if err := ins("parts", `INSERT INTO parts (id, name, category, stock, price, last_ordered) VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Category, p.Stock, p.Price, p.LastOrdered); err != nil {
			return err
		}
	}
	for _, i := range d.Inspections {
		if err := ins("inspections", `INSERT INTO inspections (id, vehicle, inspected_on, status, inspector, score) VALUES (?, ?, ?, ?, ?, ?)`,
			i.ID, i.Vehicle, i.Date, i.Status, i.Inspector, i.Score); err != nil {
			return err
		}
	}
	for _, i := range d.Issues {
		if err := ins("issues", `INSERT INTO issues (id, vehicle, fault, urgency, progress) VALUES (?, ?, ?, ?, ?)`,
			i.ID, i.Vehicle, i.Fault, i.Urgency, i.Progress); err != nil {
			return err
		}
	}
	for _, w := range d.WorkOrders {
		if err := ins("work_orders", `INSERT INTO work_orders (id, title, vehicle, assignee, status, due_date, progress) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			w.ID, w.Title, w.Vehicle, w.Assignee, w.Status, w.DueDate, w.Progress); err != nil {
			return err
		}
	}
	for _, t := range d.ServiceTasks {
		if err := ins("service_tasks", `INSERT INTO service_tasks (id, title, vehicle, assignee, status, scheduled_date, scheduled_time, task_type) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Title, t.Vehicle, t.Assignee, t.Status, t.Date, t.Time, t.Type); err != nil {
			return err
		}
	}
	for _, f := range d.FuelEntries {
		if err := ins("fuel_entries", `INSERT INTO fuel_entries (id, vehicle, entry_date, meter_usage, volume, total, fuel_economy, cost_per_meter) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			f.ID, f.Vehicle, f.Date, f.Usage, f.Volume, f.Total, f.FuelEconomy, f.CostPerMeter); err != nil {
			return err
		}
	}
	for _, v := range d.Vendors {
		if err := ins("vendors", `INSERT INTO vendors (id, name, vendor_type, last_order, total_spent, performance) VALUES (?, ?, ?, ?, ?, ?)`,
			v.ID, v.Name, v.Type, v.LastOrder, v.TotalSpent, v.Performance); err != nil {
			return err
		}
	}
	for _, c := range d.Contacts {
		if err := ins("contacts", `INSERT INTO contacts (id, name, role, phone, email, vehicle) VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Role, c.Phone, c.Email, c.Vehicle); err != nil {
			return err
		}
	}
	for _, r := range d.Reminders {
		if err := ins("reminders", `INSERT INTO reminders (id, title, vehicle, reminder_type, due_date, priority, status) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Title, r.Vehicle, r.Type, r.DueDate, r.Priority, r.Status); err != nil {
			return err
		}
	}
	return nil
}
