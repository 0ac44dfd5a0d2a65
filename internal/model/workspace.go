package model

// Integration is a simulated connection to an external platform
type Integration struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Connected bool    `json:"connected" yaml:"connected"`
	Files     int     `json:"files" yaml:"files"`
	Chats     int     `json:"chats" yaml:"chats"`
	UsedGB    float64 `json:"used_gb" yaml:"used_gb"`
}

// EntityID returns the integration id
func (i Integration) EntityID() string { return i.ID }

// WithID returns a copy carrying the given id
func (i Integration) WithID(id string) Integration {
	i.ID = id
	return i
}

// Member is a workspace team member shown in settings
type Member struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Email      string `json:"email" yaml:"email"`
	Role       string `json:"role" yaml:"role"`
	LastActive string `json:"last_active" yaml:"last_active"`
}

// EntityID returns the member id
func (m Member) EntityID() string { return m.ID }

// WithID returns a copy carrying the given id
func (m Member) WithID(id string) Member {
	m.ID = id
	return m
}

// RecencyLabel returns the last-active label
func (m Member) RecencyLabel() string { return m.LastActive }

// StorageSummary is the overall quota usage
type StorageSummary struct {
	UsedGB  float64 `json:"used_gb" yaml:"used_gb"`
	TotalGB float64 `json:"total_gb" yaml:"total_gb"`
}

// PercentUsed returns usage as a percentage of the quota
func (s StorageSummary) PercentUsed() float64 {
	if s.TotalGB <= 0 {
		return 0
	}
	return s.UsedGB / s.TotalGB * 100
}

// FileTypeUsage is storage consumed by one family of file types
type FileTypeUsage struct {
	Name   string  `json:"name" yaml:"name"`
	Count  int     `json:"count" yaml:"count"`
	SizeGB float64 `json:"size_gb" yaml:"size_gb"`
}

// DailyActivity counts files touched on one weekday
type DailyActivity struct {
	Day   string `json:"day" yaml:"day"`
	Files int    `json:"files" yaml:"files"`
}

// Activity is a line in the dashboard's recent activity feed
type Activity struct {
	Actor    string `json:"actor" yaml:"actor"`
	Action   string `json:"action" yaml:"action"`
	Target   string `json:"target" yaml:"target"`
	When     string `json:"when" yaml:"when"`
	Platform string `json:"platform" yaml:"platform"`
}

// RecencyLabel returns the relative-time label of the activity
func (a Activity) RecencyLabel() string { return a.When }
