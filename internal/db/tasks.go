package db

import (
	"database/sql"
	"fmt"

	"github.com/dori/weezy/internal/model"
)

// Tasks returns the seeded task board in display order, labels included
func (db *DB) Tasks() ([]model.Task, error) {
	var tasks []model.Task
	err := db.Transaction(func(tx *sql.Tx) error {
		var err error
		tasks, err = loadTasks(tx)
		if err != nil {
			return err
		}
		// Labels are fetched after the task rows are closed; the pool has a
		// single connection and a nested query would block on it.
		labels, err := loadLabels(tx)
		if err != nil {
			return err
		}
		for i := range tasks {
			tasks[i].Labels = model.NewLabels(labels[tasks[i].ID]...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return tasks, nil
}

func loadTasks(tx *sql.Tx) ([]model.Task, error) {
	rows, err := tx.Query(`
		SELECT t.id, t.title, t.description, t.due_date, t.priority, t.status, t.progress, t.private,
		       a.name, a.role, a.avatar,
		       c.name, c.role, c.avatar
		FROM tasks t
		JOIN people a ON a.id = t.assigned_to
		JOIN people c ON c.id = t.created_by
		ORDER BY t.position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		var priority, status string
		var private int
		err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.DueDate, &priority, &status, &t.Progress, &private,
			&t.AssignedTo.Name, &t.AssignedTo.Role, &t.AssignedTo.Avatar,
			&t.CreatedBy.Name, &t.CreatedBy.Role, &t.CreatedBy.Avatar,
		)
		if err != nil {
			return nil, err
		}
		t.Priority = model.Priority(priority)
		t.Status = model.Status(status)
		t.Private = private == 1
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func loadLabels(tx *sql.Tx) (map[string][]string, error) {
	rows, err := tx.Query(`SELECT task_id, label FROM task_labels ORDER BY task_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := make(map[string][]string)
	for rows.Next() {
		var taskID, label string
		if err := rows.Scan(&taskID, &label); err != nil {
			return nil, err
		}
		labels[taskID] = append(labels[taskID], label)
	}
	return labels, rows.Err()
}

// Users returns the people a task can be assigned to
func (db *DB) Users() ([]model.Person, error) {
	rows, err := db.Query(`
		SELECT name, role, avatar FROM people
		WHERE assignable = 1
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []model.Person{}
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.Name, &p.Role, &p.Avatar); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, p)
	}
	return users, rows.Err()
}

// SuggestedLabels returns the labels offered by the task form
func (db *DB) SuggestedLabels() (model.Labels, error) {
	rows, err := db.Query(`SELECT label FROM suggested_labels ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggested labels: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return model.NewLabels(labels...), nil
}
