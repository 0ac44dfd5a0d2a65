package db

import (
	"fmt"

	"github.com/dori/weezy/internal/model"
)

// Files returns the files of one collection in display order
func (db *DB) Files(collection model.Collection) ([]model.File, error) {
	rows, err := db.Query(`
		SELECT id, name, kind, size, source, last_modified, access_count, collection
		FROM files
		WHERE collection = ?
		ORDER BY position
	`, string(collection))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s files: %w", collection, err)
	}
	defer rows.Close()

	files := []model.File{}
	for rows.Next() {
		var f model.File
		var kind, coll string
		if err := rows.Scan(&f.ID, &f.Name, &kind, &f.Size, &f.Source, &f.LastModified, &f.AccessCount, &coll); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		f.Kind = model.Kind(kind)
		f.Collection = model.Collection(coll)
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s files: %w", collection, err)
	}

	return files, nil
}
