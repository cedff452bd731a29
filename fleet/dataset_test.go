package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDatasetIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestValidateRejectsUnknownStatus(t *testing.T) {
	d := Default()
	d.Equipment[0].Status = "Broken"
	d.Reminders[1].Priority = "Urgent"

	err := Validate(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `equipment 1: status "Broken"`)
	assert.Contains(t, err.Error(), `reminder 2: priority "Urgent"`)
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()
	a.Vehicles[0].Name = "Renamed"
	assert.Equal(t, "Truck 101", b.Vehicles[0].Name)
}

func TestMemorySourceClones(t *testing.T) {
	src := NewMemorySource(nil)
	vs, err := src.Vehicles()
	require.NoError(t, err)
	vs[0].Status = VehicleMaintenance

	again, err := src.Vehicles()
	require.NoError(t, err)
	assert.Equal(t, VehicleAvailable, again[0].Status)
}

func TestSummaries(t *testing.T) {
	d := Default()

	vs := SummarizeVehicles(d.Vehicles)
	assert.Equal(t, VehicleStats{Total: 5, Available: 2, InUse: 2, Maintenance: 1}, vs)

	es := SummarizeEquipment(d.Equipment)
	assert.Equal(t, 60, es.AvgUtilization)
	assert.Equal(t, 82, es.AvgHealth)
	assert.Equal(t, 3, es.ByStatus[EquipmentOperational])

	ps := SummarizeParts(d.Parts)
	assert.Equal(t, 85, ps.TotalStock)
	assert.Equal(t, 1, ps.LowStock)
	assert.InDelta(t, 1613.35, ps.InventoryValue, 0.001)

	is := SummarizeInspections(d.Inspections)
	assert.Equal(t, 1, is.Pending)
	assert.Equal(t, 75, is.PassRate)
	assert.Equal(t, 86, is.AvgScore)

	assert.Equal(t, EquipmentStats{ByStatus: map[string]int{}}, SummarizeEquipment(nil))
}
