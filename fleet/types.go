package fleet

// Vehicle statuses.
const (
	VehicleAvailable   = "Available"
	VehicleInUse       = "In Use"
	VehicleMaintenance = "Maintenance"
)

// Equipment statuses.
const (
	EquipmentOperational      = "Operational"
	EquipmentIdle             = "Idle"
	EquipmentUnderMaintenance = "Under Maintenance"
)

// Inspection statuses.
const (
	InspectionPassed  = "Passed"
	InspectionFailed  = "Failed"
	InspectionPending = "Pending"
)

var (
	VehicleStatuses     = []string{VehicleAvailable, VehicleInUse, VehicleMaintenance}
	VehicleTypes        = []string{"Truck", "Van", "Car", "Bus", "Motorcycle"}
	EquipmentStatuses   = []string{EquipmentOperational, EquipmentUnderMaintenance, EquipmentIdle}
	PartCategories      = []string{"Engine", "Brakes", "Ignition", "Exterior"}
	InspectionStatuses  = []string{InspectionPassed, InspectionFailed, InspectionPending}
	IssueUrgencies      = []string{"critical", "high", "medium"}
	WorkOrderStatuses   = []string{"In Progress", "Pending", "Completed", "Overdue"}
	ServiceTaskStatuses = []string{"Scheduled", "In Progress", "Completed", "Delayed"}
	ServiceTaskTypes    = []string{"Maintenance", "Inspection", "Repair"}
	VendorTypes         = []string{"Maintenance", "Tires", "Fuel", "Parts", "Cleaning"}
	ReminderTypes       = []string{"Inspection", "Documentation", "Maintenance", "Training"}
	ReminderPriorities  = []string{"High", "Medium", "Low"}
	ReminderStatuses    = []string{"Pending", "In Progress", "Completed", "Overdue"}
)

type Vehicle struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	Driver          string `json:"driver"`
	FuelLevel       int    `json:"fuel_level"`
	BatteryHealth   int    `json:"battery_health"`
	LastMaintenance string `json:"last_maintenance"`
	NextService     string `json:"next_service"`
}

type Equipment struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	LastMaintenance string `json:"last_maintenance"`
	NextMaintenance string `json:"next_maintenance"`
	Utilization     int    `json:"utilization"`
	Health          int    `json:"health"`
}

type Part struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Price       float64 `json:"price"`
	LastOrdered string  `json:"last_ordered"`
}

type Inspection struct {
	ID        int64  `json:"id"`
	Vehicle   string `json:"vehicle"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Inspector string `json:"inspector"`
	Score     int    `json:"score"`
}

// Issue is a critical fault reported against a vehicle.
type Issue struct {
	ID       int64  `json:"id"`
	Vehicle  string `json:"vehicle"`
	Fault    string `json:"fault"`
	Urgency  string `json:"urgency"`
	Progress int    `json:"progress"`
}

type WorkOrder struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Vehicle  string `json:"vehicle"`
	Assignee string `json:"assignee"`
	Status   string `json:"status"`
	DueDate  string `json:"due_date"`
	Progress int    `json:"progress"`
}

type ServiceTask struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Vehicle  string `json:"vehicle"`
	Assignee string `json:"assignee"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Type     string `json:"type"`
}

// FuelEntry fields are display strings, exactly as recorded on the fuel slip.
type FuelEntry struct {
	ID           int64  `json:"id"`
	Vehicle      string `json:"vehicle"`
	Date         string `json:"date"`
	Usage        string `json:"usage"`
	Volume       string `json:"volume"`
	Total        string `json:"total"`
	FuelEconomy  string `json:"fuel_economy"`
	CostPerMeter string `json:"cost_per_meter"`
}

type Vendor struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	LastOrder   string  `json:"last_order"`
	TotalSpent  float64 `json:"total_spent"`
	Performance float64 `json:"performance"`
}

type Contact struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Vehicle string `json:"vehicle"`
}

type Reminder struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Vehicle  string `json:"vehicle"`
	Type     string `json:"type"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}
