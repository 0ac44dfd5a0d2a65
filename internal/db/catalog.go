package db

import "github.com/dori/weezy/internal/model"

// Catalog is everything the application starts with
type Catalog struct {
	Local           []model.File
	Cloud           []model.File
	Knowledge       []model.File
	Popular         []model.File
	Tasks           []model.Task
	Users           []model.Person
	SuggestedLabels model.Labels
	Integrations    []model.Integration
	Members         []model.Member
	Storage         model.StorageSummary
	FileTypes       []model.FileTypeUsage
	WeeklyActivity  []model.DailyActivity
	RecentActivity  []model.Activity
}

// Load reads the full catalog
func (db *DB) Load() (Catalog, error) {
	var c Catalog
	var err error

	if c.Local, err = db.Files(model.CollectionLocal); err != nil {
		return Catalog{}, err
	}
	if c.Cloud, err = db.Files(model.CollectionCloud); err != nil {
		return Catalog{}, err
	}
	if c.Knowledge, err = db.Files(model.CollectionKnowledge); err != nil {
		return Catalog{}, err
	}
	if c.Popular, err = db.Files(model.CollectionPopular); err != nil {
		return Catalog{}, err
	}
	if c.Tasks, err = db.Tasks(); err != nil {
		return Catalog{}, err
	}
	if c.Users, err = db.Users(); err != nil {
		return Catalog{}, err
	}
	if c.SuggestedLabels, err = db.SuggestedLabels(); err != nil {
		return Catalog{}, err
	}
	if c.Integrations, err = db.Integrations(); err != nil {
		return Catalog{}, err
	}
	if c.Members, err = db.Members(); err != nil {
		return Catalog{}, err
	}
	if c.Storage, err = db.Storage(); err != nil {
		return Catalog{}, err
	}
	if c.FileTypes, err = db.FileTypes(); err != nil {
		return Catalog{}, err
	}
	if c.WeeklyActivity, err = db.WeeklyActivity(); err != nil {
		return Catalog{}, err
	}
	if c.RecentActivity, err = db.RecentActivity(); err != nil {
		return Catalog{}, err
	}

	db.log.Debug("catalog loaded")
	return c, nil
}

// WorkspaceFiles returns local files followed by cloud files
func (c Catalog) WorkspaceFiles() []model.File {
	out := make([]model.File, 0, len(c.Local)+len(c.Cloud))
	out = append(out, c.Local...)
	return append(out, c.Cloud...)
}

// TotalIndexedFiles sums the files indexed across integrations
func (c Catalog) TotalIndexedFiles() int {
	total := 0
	for _, i := range c.Integrations {
		total += i.Files
	}
	return total
}
