package fleet

// LowStockThreshold marks parts that need reordering.
const LowStockThreshold = 10

type VehicleStats struct {
	Total       int
	Available   int
	InUse       int
	Maintenance int
}

func SummarizeVehicles(vs []Vehicle) VehicleStats {
	s := VehicleStats{Total: len(vs)}
	for _, v := range vs {
		switch v.Status {
		case VehicleAvailable:
			s.Available++
		case VehicleInUse:
			s.InUse++
		case VehicleMaintenance:
			s.Maintenance++
		}
	}
	return s
}

type EquipmentStats struct {
	Total          int
	AvgUtilization int
	AvgHealth      int
	ByStatus       map[string]int
}

func SummarizeEquipment(es []Equipment) EquipmentStats {
	s := EquipmentStats{Total: len(es), ByStatus: make(map[string]int)}
	if len(es) == 0 {
		return s
	}
	var util, health int
	for _, e := range es {
		util += e.Utilization
		health += e.Health
		s.ByStatus[e.Status]++
	}
	s.AvgUtilization = util / len(es)
	s.AvgHealth = health / len(es)
	return s
}

type PartStats struct {
	TotalStock     int
	InventoryValue float64
	LowStock       int
}

func SummarizeParts(ps []Part) PartStats {
	var s PartStats
	for _, p := range ps {
		s.TotalStock += p.Stock
		s.InventoryValue += float64(p.Stock) * p.Price
		if p.Stock < LowStockThreshold {
			s.LowStock++
		}
	}
	return s
}

type InspectionStats struct {
	Total    int
	Passed   int
	Failed   int
	Pending  int
	PassRate int // percent of completed inspections
	AvgScore int // over completed inspections
}

func SummarizeInspections(is []Inspection) InspectionStats {
	s := InspectionStats{Total: len(is)}
	var scoreSum int
	for _, i := range is {
		switch i.Status {
		case InspectionPassed:
			s.Passed++
			scoreSum += i.Score
		case InspectionFailed:
			s.Failed++
			scoreSum += i.Score
		case InspectionPending:
			s.Pending++
		}
	}
	if done := s.Passed + s.Failed; done > 0 {
		s.PassRate = s.Passed * 100 / done
		s.AvgScore = scoreSum / done
	}
	return s
}

// HeadlineCard is a summary card whose value is a fixed display string.
type HeadlineCard struct {
	Key   string
	Title string
	Value string
	Color string
}

func FuelHeadlines() []HeadlineCard {
	return []HeadlineCard{
		{Key: "cost", Title: "Total Fuel Cost", Value: "$2,631.35", Color: "blue"},
		{Key: "volume", Title: "Total Volume", Value: "977.08 gallons", Color: "green"},
		{Key: "economy", Title: "Avg. Fuel Economy", Value: "22.04 mpg (us)", Color: "yellow"},
		{Key: "price", Title: "Avg. Cost", Value: "$2.69 / gallon", Color: "purple"},
	}
}

func VendorHeadlines() []HeadlineCard {
	return []HeadlineCard{
		{Key: "vendors", Title: "Total Vendors", Value: "24", Color: "blue"},
		{Key: "spending", Title: "Monthly Spending", Value: "$45,280", Color: "green"},
		{Key: "performance", Title: "Avg. Performance", Value: "4.6", Color: "yellow"},
		{Key: "pending", Title: "Pending Orders", Value: "7", Color: "purple"},
	}
}
