package fleet

type Assignment struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Color  string `json:"color"`
}

type VehicleLocation struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Status   string `json:"status"`
	ETA      string `json:"eta"`
}

type InsuranceMonth struct {
	Month   string `json:"month"`
	Premium int    `json:"premium"`
	Claims  int    `json:"claims"`
}

type Driver struct {
	Name          string `json:"name"`
	Performance   int    `json:"performance"`
	Status        string `json:"status"`
	LicenseValid  bool   `json:"license_valid"`
	LicenseExpiry string `json:"license_expiry"`
}

// MaintenanceMonth splits a month's maintenance work by kind, in percent.
type MaintenanceMonth struct {
	Month        string `json:"month"`
	Emergency    int    `json:"emergency"`
	NonScheduled int    `json:"non_scheduled"`
	Scheduled    int    `json:"scheduled"`
}

type Dashboard struct {
	Assignments      []Assignment
	Locations        []VehicleLocation
	Insurance        []InsuranceMonth
	Drivers          []Driver
	Maintenance      []MaintenanceMonth
	OverdueReminders []int
}

// DefaultAssignments is the starting state of the live assignment widget.
func DefaultAssignments() []Assignment {
	return []Assignment{
		{Status: "Active", Count: 8, Color: "green"},
		{Status: "Inactive", Count: 3, Color: "gray"},
		{Status: "In Shop", Count: 2, Color: "yellow"},
		{Status: "Out of Service", Count: 1, Color: "red"},
	}
}

func DefaultDashboard() *Dashboard {
	return &Dashboard{
		Assignments: DefaultAssignments(),
		Locations: []VehicleLocation{
			{ID: 1, Name: "Truck 001", Location: "Warehouse A", Status: "On Time", ETA: "2 hours"},
			{ID: 2, Name: "Van 002", Location: "City Center", Status: "Delayed", ETA: "45 minutes"},
			{ID: 3, Name: "Car 003", Location: "Airport", Status: "On Time", ETA: "30 minutes"},
		},
		Insurance: []InsuranceMonth{
			{"Jan", 5000, 2000},
			{"Feb", 5200, 1800},
			{"Mar", 5100, 2200},
			{"Apr", 5300, 1900},
			{"May", 5400, 2100},
			{"Jun", 5600, 1700},
		},
		Drivers: []Driver{
			{Name: "John Doe", Performance: 92, Status: "Active", LicenseValid: true, LicenseExpiry: "2024-12-31"},
			{Name: "Jane Smith", Performance: 88, Status: "Active", LicenseValid: true, LicenseExpiry: "2023-11-30"},
			{Name: "Mike Johnson", Performance: 95, Status: "On Leave", LicenseValid: true, LicenseExpiry: "2025-06-30"},
			{Name: "Sarah Williams", Performance: 90, Status: "Active", LicenseValid: false, LicenseExpiry: "2023-05-15"},
		},
		Maintenance: []MaintenanceMonth{
			{"Dec", 20, 30, 50},
			{"Jan", 25, 35, 40},
			{"Feb", 15, 40, 45},
			{"Mar", 30, 25, 45},
			{"Apr", 20, 30, 50},
			{"May", 10, 45, 45},
		},
		OverdueReminders: []int{4, 6, 3, 5, 7, 2},
	}
}
