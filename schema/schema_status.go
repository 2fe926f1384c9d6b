package schema

import "time"

// StoreStatus represents the status of the league store.
type StoreStatus struct {
	Backend        string           `json:"backend"`
	Connected      bool             `json:"connected"`
	SchemaVersion  uint             `json:"schema_version"`
	Dirty          bool             `json:"dirty"`
	Guilds         int              `json:"guilds"`
	TotalWrestlers int              `json:"total_wrestlers"`
	TotalMatches   int              `json:"total_matches"`
	LastMatchTime  time.Time        `json:"last_match_time"`
	TableRows      map[string]int64 `json:"table_rows"`
}
