package fleet

import (
	"errors"
	"fmt"
	"slices"
)

// Dataset is one complete copy of every record list the pages render.
type Dataset struct {
	Vehicles     []Vehicle
	Equipment    []Equipment
	Parts        []Part
	Inspections  []Inspection
	Issues       []Issue
	WorkOrders   []WorkOrder
	ServiceTasks []ServiceTask
	FuelEntries  []FuelEntry
	Vendors      []Vendor
	Contacts     []Contact
	Reminders    []Reminder
}

// Default returns a fresh copy of the built-in demo data. Callers may modify
// the result without affecting other copies.
func Default() *Dataset {
	return &Dataset{
		Vehicles: []Vehicle{
			{1, "Truck 101", "Truck", VehicleAvailable, "John Doe", 75, 90, "2024-05-15", "2024-06-15"},
			{2, "Van 203", "Van", VehicleInUse, "Jane Smith", 45, 85, "2024-05-10", "2024-06-10"},
			{3, "Car 305", "Car", VehicleMaintenance, "Mike Johnson", 60, 75, "2024-05-20", "2024-06-20"},
			{4, "Bus 401", "Bus", VehicleAvailable, "Sarah Brown", 80, 95, "2024-05-18", "2024-06-18"},
			{5, "Motorcycle 501", "Motorcycle", VehicleInUse, "Chris Lee", 30, 88, "2024-05-12", "2024-06-12"},
		},
		Equipment: []Equipment{
			{1, "Excavator XL2000", EquipmentOperational, "2024-05-01", "2024-08-01", 85, 92},
			{2, "Forklift F100", EquipmentUnderMaintenance, "2024-05-10", "2024-05-17", 0, 60},
			{3, "Crane C500", EquipmentOperational, "2024-04-15", "2024-07-15", 72, 88},
			{4, "Bulldozer B2000", EquipmentIdle, "2024-05-05", "2024-08-05", 45, 95},
			{5, "Generator G1000", EquipmentOperational, "2024-04-20", "2024-07-20", 98, 78},
		},
		Parts: []Part{
			{1, "Air Filter", "Engine", 15, 29.99, "2024-05-15"},
			{2, "Brake Pads", "Brakes", 8, 45.5, "2024-05-10"},
			{3, "Oil Filter", "Engine", 20, 12.99, "2024-05-18"},
			{4, "Spark Plugs", "Ignition", 30, 8.99, "2024-05-12"},
			{5, "Windshield Wipers", "Exterior", 12, 22.5, "2024-05-20"},
		},
		Inspections: []Inspection{
			{1, "Ford F-150", "2024-05-15", InspectionPassed, "John Doe", 95},
			{2, "Toyota Camry", "2024-05-14", InspectionFailed, "Jane Smith", 65},
			{3, "Chevrolet Silverado", "2024-05-13", InspectionPending, "Mike Johnson", 0},
			{4, "Honda Civic", "2024-05-12", InspectionPassed, "Sarah Brown", 88},
			{5, "Tesla Model 3", "2024-05-11", InspectionPassed, "Chris Lee", 98},
		},
		Issues: []Issue{
			{1, "Truck 001", "Engine Overheating", "high", 75},
			{2, "Van 003", "Brake System Failure", "critical", 30},
			{3, "Car 005", "Transmission Issues", "medium", 50},
		},
		WorkOrders: []WorkOrder{
			{1, "Oil Change - Fleet A", "Truck 101", "John Doe", "In Progress", "2024-06-01", 65},
			{2, "Brake Inspection - Fleet B", "Van 203", "Jane Smith", "Pending", "2024-06-03", 0},
			{3, "Tire Rotation - Fleet C", "Car 305", "Mike Johnson", "Completed", "2024-05-28", 100},
			{4, "Engine Diagnostics - Fleet A", "Truck 102", "Sarah Brown", "Overdue", "2024-05-25", 30},
			{5, "Annual Maintenance - Fleet D", "Bus 401", "Chris Lee", "In Progress", "2024-06-10", 45},
			{6, "Transmission Service - Fleet B", "Van 205", "Alex Chen", "Pending", "2024-06-05", 0},
		},
		ServiceTasks: []ServiceTask{
			{1, "Oil Change", "Truck 101", "John Doe", "Scheduled", "2024-06-01", "09:00 AM", "Maintenance"},
			{2, "Brake Inspection", "Van 203", "Jane Smith", "In Progress", "2024-06-03", "10:30 AM", "Inspection"},
			{3, "Tire Rotation", "Car 305", "Mike Johnson", "Completed", "2024-05-28", "02:00 PM", "Maintenance"},
			{4, "Engine Diagnostics", "Truck 102", "Sarah Brown", "Delayed", "2024-05-25", "11:00 AM", "Repair"},
			{5, "Annual Maintenance", "Bus 401", "Chris Lee", "Scheduled", "2024-06-10", "08:00 AM", "Maintenance"},
			{6, "Transmission Service", "Van 205", "Alex Chen", "In Progress", "2024-06-05", "01:30 PM", "Repair"},
		},
		FuelEntries: []FuelEntry{
			{1, "2100. [2016 Ford F-150]", "Wed, May. 2, 2024, :07am", "56,362 mi", "19.113 gallons", "$46.23", "13.45 mpg(US)", "$0.18 / mile"},
			{2, "1100. [2018 Toyota Prius]", "Tue, May. 21, 2024, 11:28pm", "20,682 mi", "7.010 gallons", "$17.26", "60.63 mpg(US)", "$0.04 / mile"},
			{3, "2100. [2016 Ford F-150]", "Sun, May. 19, 2024, 9:22pm", "56,105 mi", "18.371 gallons", "$45.82", "14.81 mpg(US)", "$0.17 / mile"},
			{4, "3100. [2014 Chevrolet Express Cargo]", "Sun, May. 19, 2024, 7:07am", "136,654 mi", "23.124 gallons", "$62.41", "18.77 mpg(US)", "$0.14 / mile"},
		},
		Vendors: []Vendor{
			{1, "AutoPro Services", "Maintenance", "2024-05-15", 12450, 4.8},
			{2, "TireMaster Co.", "Tires", "2024-05-10", 8320, 4.5},
			{3, "FleetFuel Inc.", "Fuel", "2024-05-18", 22150, 4.9},
			{4, "AutoParts Express", "Parts", "2024-05-12", 5780, 4.2},
			{5, "CleanFleet Services", "Cleaning", "2024-05-16", 3200, 4.6},
		},
		Contacts: []Contact{
			{1, "Abebe Bekele", "Tractor Operator", "+251 91 234 5678", "abebe.bekele@hetosa.coop", "Tractor"},
			{2, "Tigist Mengistu", "Logistics Coordinator", "+251 92 345 6789", "tigist.mengistu@hetosa.coop", "Truck"},
			{3, "Dawit Tadesse", "Harvester Operator", "+251 93 456 7890", "dawit.tadesse@hetosa.coop", "Tractor"},
			{4, "Hiwot Gebre", "Fleet Manager", "+251 94 567 8901", "hiwot.gebre@hetosa.coop", "Truck"},
			{5, "Yohannes Alemu", "Maintenance Technician", "+251 95 678 9012", "yohannes.alemu@hetosa.coop", "Tractor"},
		},
		Reminders: []Reminder{
			{1, "Truck Inspection Due", "Truck 101", "Inspection", "2024-06-05", "High", "Pending"},
			{2, "Van License Renewal", "Van 203", "Documentation", "2024-06-10", "Medium", "In Progress"},
			{3, "Car Maintenance", "Car 305", "Maintenance", "2024-06-15", "Low", "Completed"},
			{4, "Truck Insurance Expiry", "Truck 102", "Documentation", "2024-06-01", "High", "Overdue"},
			{5, "Bus Fuel Efficiency Check", "Bus 401", "Inspection", "2024-06-20", "Medium", "Pending"},
			{6, "Fleet Driver Training", "All Fleet", "Training", "2024-06-25", "Low", "In Progress"},
		},
	}
}

// Validate checks every enumerated field against its declared values.
func Validate(d *Dataset) error {
	var errs []error
	check := func(entity string, id int64, field, value string, allowed []string) {
		if !slices.Contains(allowed, value) {
			errs = append(errs, fmt.Errorf("%s %d: %s %q not in %v", entity, id, field, value, allowed))
		}
	}
	for _, v := range d.Vehicles {
		check("vehicle", v.ID, "status", v.Status, VehicleStatuses)
		check("vehicle", v.ID, "type", v.Type, VehicleTypes)
	}
	for _, e := range d.Equipment {
		check("equipment", e.ID, "status", e.Status, EquipmentStatuses)
	}
	for _, p := range d.Parts {
		check("part", p.ID, "category", p.Category, PartCategories)
	}
	for _, i := range d.Inspections {
		check("inspection", i.ID, "status", i.Status, InspectionStatuses)
	}
	for _, i := range d.Issues {
		check("issue", i.ID, "urgency", i.Urgency, IssueUrgencies)
	}
	for _, w := range d.WorkOrders {
		check("work order", w.ID, "status", w.Status, WorkOrderStatuses)
	}
	for _, t := range d.ServiceTasks {
		check("service task", t.ID, "status", t.Status, ServiceTaskStatuses)
		check("service task", t.ID, "type", t.Type, ServiceTaskTypes)
	}
	for _, v := range d.Vendors {
		check("vendor", v.ID, "type", v.Type, VendorTypes)
	}
	for _, r := range d.Reminders {
		check("reminder", r.ID, "type", r.Type, ReminderTypes)
		check("reminder", r.ID, "priority", r.Priority, ReminderPriorities)
		check("reminder", r.ID, "status", r.Status, ReminderStatuses)
	}
	return errors.Join(errs...)
}
