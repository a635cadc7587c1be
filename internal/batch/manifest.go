package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame      int     `json:"frame"`
	Image      string  `json:"image"`
	CenterX    float64 `json:"center_x"`
	CenterY    float64 `json:"center_y"`
	Height     float64 `json:"view_height"`
	Iterations int     `json:"iterations"`
	Density    float64 `json:"color_density"`
	Rendered   bool    `json:"rendered"`
}

// WriteManifest writes frames.json describing every frame and whether it
// was written.
func WriteManifest(path string, frames []Frame, results []Result) error {
	byFrame := make(map[int]Result, len(results))
	for _, r := range results {
		byFrame[r.Frame] = r
	}

	entries := make([]ManifestEntry, len(frames))
	for i, f := range frames {
		r := byFrame[f.Index]
		entries[i] = ManifestEntry{
			Frame:      f.Index,
			Image:      r.File,
			CenterX:    f.View.CenterX,
			CenterY:    f.View.CenterY,
			Height:     f.View.Height,
			Iterations: f.View.MaxIter,
			Density:    f.View.Density,
			Rendered:   r.Success,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
