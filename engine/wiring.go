package engine

import (
	"fmt"
	"strings"

	"fleetdash/metrics"
	"fleetdash/store"
)

func (e *Engine) wireEventHandlers() {
	// Live ticks: count and forward to the broker.
	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(LiveTickEvent)
		metrics.LiveTicks.Inc()
		e.outbox.enqueue(evt.Type.String(), ev.Snapshot)
	}, EventLiveTick)

	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(PageViewedEvent)
		metrics.PageViews.WithLabelValues(ev.Page).Inc()
	}, EventPageViewed)

	// Exports: count, audit and publish
	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(ExportedEvent)
		metrics.Exports.WithLabelValues(ev.Entity).Inc()
		e.appendAudit("export", ev.Entity, fmt.Sprintf("%d rows to %s", ev.Rows, ev.Destination), ev.Actor)
		e.outbox.enqueue(evt.Type.String(), ev)
	}, EventExported)

	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(ConfigReloadedEvent)
		detail := "applied"
		if len(ev.RestartNeeded) > 0 {
			detail = "restart needed for " + strings.Join(ev.RestartNeeded, ", ")
		}
		e.appendAudit("config", ev.Path, detail, "")
		e.outbox.enqueue(evt.Type.String(), ev)
	}, EventConfigReloaded)

	// Connection changes: gauge and audit
	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(ConnectionEvent)
		if evt.Type == EventMessagingConnected {
			metrics.MessagingConnected.Set(1)
		} else {
			metrics.MessagingConnected.Set(0)
		}
		e.appendAudit("messaging", e.msgClient.Backend(), ev.Detail, "")
	}, EventMessagingConnected, EventMessagingDisconnected)

	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(ConnectionEvent)
		e.log.Infof("engine: %s: %s", evt.Type, ev.Detail)
		e.appendAudit("redis", evt.Type.String(), ev.Detail, "")
	}, EventRedisConnected, EventRedisDisconnected)
}

func (e *Engine) appendAudit(action, subject, detail, actor string) {
	if err := e.audit.AppendAudit(&store.AuditEntry{
		Action:  action,
		Subject: subject,
		Detail:  detail,
		Actor:   actor,
	}); err != nil {
		e.log.Warnf("engine: audit %s %s: %v", action, subject, err)
	}
}
