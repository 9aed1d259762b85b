package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      Data
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, level int, difficulty string, fps int) *Recorder {
	return &Recorder{
		data: Data{
			Version:    Version,
			Seed:       seed,
			Level:      level,
			Difficulty: difficulty,
			FPS:        fps,
			StartTime:  time.Now().Format(time.RFC3339),
			Frames:     make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(left, right, up, down bool) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameInput{F: r.frame, L: left, R: right, U: up, D: down})
	r.frame++
}

// Stop ends recording. Later frames are ignored.
func (r *Recorder) Stop() {
	r.recording = false
}

// Data returns the recording so far.
func (r *Recorder) Data() Data {
	d := r.data
	d.Frames = append([]FrameInput(nil), r.data.Frames...)
	return d
}

// Write encodes the recording as JSON.
func (r *Recorder) Write(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	if err := enc.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := r.Write(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
