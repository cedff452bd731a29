package store

import (
	"sync"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

type AuditEntry struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	Detail    string    `json:"detail"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditLog records notable actions (exports, config reloads) for the
// diagnostics page.
type AuditLog interface {
	AppendAudit(e *AuditEntry) error
	ListAuditLog(limit int) ([]*AuditEntry, error)
}

var (
	_ AuditLog = (*DB)(nil)
	_ AuditLog = (*MemoryAudit)(nil)
)

func (db *DB) AppendAudit(e *AuditEntry) error {
	if e.Actor == "" {
		e.Actor = "system"
	}
	const insert = `INSERT INTO audit_log (action, subject, detail, actor) VALUES (?, ?, ?, ?)`
	if db.dialect.InsertReturningID() {
		return db.QueryRow(db.Q(insert + ` RETURNING id`), e.Action, e.Subject, e.Detail, e.Actor).Scan(&e.ID)
	}
	result, err := db.Exec(db.Q(insert), e.Action, e.Subject, e.Detail, e.Actor)
	if err != nil {
		return err
	}
	id, _ := result.LastInsertId()
	e.ID = id
	return nil
}

func (db *DB) ListAuditLog(limit int) ([]*AuditEntry, error) {
	rows, err := db.Query(db.Q(`SELECT id, action, subject, detail, actor, created_at FROM audit_log ORDER BY id DESC LIMIT ?`), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []*AuditEntry
	for rows.Next() {
		var e AuditEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Action, &e.Subject, &e.Detail, &e.Actor, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.ParseInLocation(timeLayout, createdAt, time.Local)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// MemoryAudit keeps the most recent entries in process memory. It is used
// when no SQL database is configured.
type MemoryAudit struct {
	mu      sync.Mutex
	entries []*AuditEntry
	max     int
	nextID  int64
}

func NewMemoryAudit(max int) *MemoryAudit {
	if max <= 0 {
		max = 200
	}
	return &MemoryAudit{max: max}
}

func (m *MemoryAudit) AppendAudit(e *AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	e.ID = m.nextID
	if e.Actor == "" {
		e.Actor = "system"
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().Truncate(time.Second)
	}
	cp := *e
	m.entries = append(m.entries, &cp)
	if len(m.entries) > m.max {
		m.entries = m.entries[len(m.entries)-m.max:]
	}
	return nil
}

// ListAuditLog returns up to limit entries, newest first.
func (m *MemoryAudit) ListAuditLog(limit int) ([]*AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*AuditEntry
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *m.entries[i]
		out = append(out, &cp)
	}
	return out, nil
}
