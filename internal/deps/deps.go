// Package deps reports whether the external programs ffab shells out to are
// installed.
package deps

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"ffab/internal/config"
)

// Requirement defines an external program ffab relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists the programs used by a configuration. ffprobe is looked
// up next to the configured ffmpeg binary.
func Requirements(cfg *config.Config) []Requirement {
	binary := "ffmpeg"
	if cfg != nil && strings.TrimSpace(cfg.FFmpeg.Binary) != "" {
		binary = strings.TrimSpace(cfg.FFmpeg.Binary)
	}
	probe := "ffprobe"
	if dir := filepath.Dir(binary); dir != "." {
		probe = filepath.Join(dir, "ffprobe")
	}
	return []Requirement{
		{Name: "FFmpeg", Command: binary, Description: "renders chains"},
		{Name: "FFprobe", Command: probe, Description: "inspects input streams", Optional: true},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Command = path
		results = append(results, status)
	}
	return results
}
