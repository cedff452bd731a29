package www

import (
	"net/http"
)

func (h *Handlers) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	auditLog, err := h.engine.Audit().ListAuditLog(50)
	if err != nil {
		h.log.Warnf("www: audit log: %v", err)
	}
	interval, chartInterval := h.engine.Live().Intervals()
	snap := h.engine.Live().Snapshot()

	data := h.pageData(r, Route{Path: "/diagnostics", Page: "diagnostics", Layout: true, Title: "Diagnostics"})
	data["AuditLog"] = auditLog
	data["Source"] = h.engine.Driver()
	data["RedisEnabled"] = h.engine.Redis() != nil
	data["RedisOK"] = h.engine.RedisConnected()
	data["MessagingBackend"] = h.engine.MsgClient().Backend()
	data["MessagingState"] = h.engine.MsgClient().State()
	data["MessagingOK"] = h.engine.MsgClient().IsConnected()
	data["SSEClients"] = h.eventHub.ClientCount()
	data["LiveSeq"] = snap.Seq
	data["LiveUpdated"] = snap.UpdatedAt
	data["Interval"] = interval
	data["ChartInterval"] = chartInterval
	data["ConfigPath"] = h.engine.ConfigPath()
	if db := h.engine.DB(); db != nil {
		counts, err := db.Counts()
		if err != nil {
			h.log.Warnf("www: table counts: %v", err)
		}
		data["Counts"] = counts
	}
	h.render(w, "diagnostics.html", data)
}
