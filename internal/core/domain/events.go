package domain

import "time"

// FrameChange announces a bounding frame replacement to other instances.
type FrameChange struct {
	Origin    string    `json:"origin"`
	Mode      FrameMode `json:"mode"`
	Borders   Borders   `json:"borders"`
	ChangedAt time.Time `json:"changed_at"`
}
