package fleet

import "slices"

// Source supplies the record lists behind each page. Every call returns a
// slice the caller owns.
type Source interface {
	Vehicles() ([]Vehicle, error)
	Equipment() ([]Equipment, error)
	Parts() ([]Part, error)
	Inspections() ([]Inspection, error)
	Issues() ([]Issue, error)
	WorkOrders() ([]WorkOrder, error)
	ServiceTasks() ([]ServiceTask, error)
	FuelEntries() ([]FuelEntry, error)
	Vendors() ([]Vendor, error)
	Contacts() ([]Contact, error)
	Reminders() ([]Reminder, error)
}

// MemorySource serves a Dataset held in process memory.
type MemorySource struct {
	data *Dataset
}

var _ Source = (*MemorySource)(nil)

// NewMemorySource wraps d. A nil d uses Default().
func NewMemorySource(d *Dataset) *MemorySource {
	if d == nil {
		d = Default()
	}
	return &MemorySource{data: d}
}

func (m *MemorySource) Vehicles() ([]Vehicle, error) {
	return slices.Clone(m.data.Vehicles), nil
}

func (m *MemorySource) Equipment() ([]Equipment, error) {
	return slices.Clone(m.data.Equipment), nil
}

func (m *MemorySource) Parts() ([]Part, error) {
	return slices.Clone(m.data.Parts), nil
}

func (m *MemorySource) Inspections() ([]Inspection, error) {
	return slices.Clone(m.data.Inspections), nil
}

func (m *MemorySource) Issues() ([]Issue, error) {
	return slices.Clone(m.data.Issues), nil
}

func (m *MemorySource) WorkOrders() ([]WorkOrder, error) {
	return slices.Clone(m.data.WorkOrders), nil
}

func (m *MemorySource) ServiceTasks() ([]ServiceTask, error) {
	return slices.Clone(m.data.ServiceTasks), nil
}

func (m *MemorySource) FuelEntries() ([]FuelEntry, error) {
	return slices.Clone(m.data.FuelEntries), nil
}

func (m *MemorySource) Vendors() ([]Vendor, error) {
	return slices.Clone(m.data.Vendors), nil
}

func (m *MemorySource) Contacts() ([]Contact, error) {
	return slices.Clone(m.data.Contacts), nil
}

func (m *MemorySource) Reminders() ([]Reminder, error) {
	return slices.Clone(m.data.Reminders), nil
}
