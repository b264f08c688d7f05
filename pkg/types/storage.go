package types

import "time"

// Object describes an object copied from storage to a local file
type Object struct {
	Bucket    string        `json:"bucket"`
	Key       string        `json:"key"`
	Size      int64         `json:"size"`
	ETag      string        `json:"etag"`
	VersionID string        `json:"version_id,omitempty"`
	Path      string        `json:"path"` // local destination
	Duration  time.Duration `json:"duration"`
}
