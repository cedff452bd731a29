package www

import (
	"net/http"

	"fleetdash/fleet"
)

const (
	chartWidth  = 300
	chartHeight = 120
)

func (h *Handlers) handleDashboard(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicles, err := h.engine.Catalog().Source().Vehicles()
		if err != nil {
			h.log.Errorf("www: dashboard vehicles: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		dash := fleet.DefaultDashboard()
		snap := h.engine.Live().Snapshot()
		premium, claims := insuranceBars(dash.Insurance, chartWidth, chartHeight)

		data := h.pageData(r, route)
		data["Stats"] = fleet.SummarizeVehicles(vehicles)
		data["Dashboard"] = dash
		data["Assignments"] = snap.Assignments
		data["LiveSeq"] = snap.Seq
		data["Premium"] = premium
		data["Claims"] = claims
		data["Overdue"] = sparkline(dash.OverdueReminders, chartWidth, chartHeight)
		h.render(w, "dashboard.html", data)
	}
}

func (h *Handlers) handleLanding(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := h.pageData(r, route)
		data["Landing"] = fleet.DefaultLanding()
		h.render(w, "landing.html", data)
	}
}
