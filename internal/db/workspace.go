package db

import (
	"database/sql"
	"fmt"

	"github.com/dori/weezy/internal/model"
)

// Integrations returns the simulated platform connections
func (db *DB) Integrations() ([]model.Integration, error) {
	rows, err := db.Query(`
		SELECT id, name, connected, files, chats, used_gb
		FROM integrations ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query integrations: %w", err)
	}
	defer rows.Close()

	out := []model.Integration{}
	for rows.Next() {
		var i model.Integration
		var connected int
		if err := rows.Scan(&i.ID, &i.Name, &connected, &i.Files, &i.Chats, &i.UsedGB); err != nil {
			return nil, fmt.Errorf("failed to scan integration: %w", err)
		}
		i.Connected = connected == 1
		out = append(out, i)
	}
	return out, rows.Err()
}

// Members returns the workspace team
func (db *DB) Members() ([]model.Member, error) {
	rows, err := db.Query(`
		SELECT id, name, email, role, last_active
		FROM members ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	out := []model.Member{}
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Role, &m.LastActive); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Storage returns the overall quota usage
func (db *DB) Storage() (model.StorageSummary, error) {
	var s model.StorageSummary
	err := db.QueryRow(`SELECT used_gb, total_gb FROM storage_summary WHERE id = 1`).Scan(&s.UsedGB, &s.TotalGB)
	if err == sql.ErrNoRows {
		return model.StorageSummary{}, nil
	}
	if err != nil {
		return model.StorageSummary{}, fmt.Errorf("failed to query storage summary: %w", err)
	}
	return s, nil
}

// FileTypes returns storage usage per file type family
func (db *DB) FileTypes() ([]model.FileTypeUsage, error) {
	rows, err := db.Query(`SELECT name, count, size_gb FROM file_types ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query file types: %w", err)
	}
	defer rows.Close()

	out := []model.FileTypeUsage{}
	for rows.Next() {
		var u model.FileTypeUsage
		if err := rows.Scan(&u.Name, &u.Count, &u.SizeGB); err != nil {
			return nil, fmt.Errorf("failed to scan file type: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// WeeklyActivity returns files touched per weekday, Monday first
func (db *DB) WeeklyActivity() ([]model.DailyActivity, error) {
	rows, err := db.Query(`SELECT day, files FROM daily_activity ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}
	defer rows.Close()

	out := []model.DailyActivity{}
	for rows.Next() {
		var d model.DailyActivity
		if err := rows.Scan(&d.Day, &d.Files); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// RecentActivity returns the dashboard feed, newest first
func (db *DB) RecentActivity() ([]model.Activity, error) {
	rows, err := db.Query(`SELECT actor, action, target, happened, platform FROM activity ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}
	defer rows.Close()

	out := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.Actor, &a.Action, &a.Target, &a.When, &a.Platform); err != nil {
			return nil, fmt.Errorf("failed to scan recent activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
