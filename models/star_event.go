package models

import "time"

const StarEventType = "stars_logged"

// StarEvent is pushed to a parent's open dashboards after stars are logged.
type StarEvent struct {
	Type         string        `json:"type"`
	ParentID     string        `json:"parent_id"`
	ChildID      string        `json:"child_id"`
	ChildName    string        `json:"child_name"`
	Stars        int           `json:"stars"`
	Streak       int           `json:"streak"`
	BonusAwarded int           `json:"bonus_awarded"`
	Achievements []Achievement `json:"achievements"`
	Timestamp    time.Time     `json:"timestamp"`
}
