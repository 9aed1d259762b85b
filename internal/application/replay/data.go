package replay

// Version is written into every recording.
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
}

// Direction returns the movement input as -1, 0 or 1 per axis.
func (fi FrameInput) Direction() (dx, dy int) {
	if fi.L {
		dx--
	}
	if fi.R {
		dx++
	}
	if fi.U {
		dy--
	}
	if fi.D {
		dy++
	}
	return dx, dy
}

// Data contains all data needed to replay a level
type Data struct {
	Version    string       `json:"version"`
	Seed       int64        `json:"seed"`
	Level      int          `json:"level"`
	Difficulty string       `json:"difficulty"`
	FPS        int          `json:"fps"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}
