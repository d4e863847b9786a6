package docker

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mquinnv/gh-hud/internal/model"
)

// parseProjects decodes `docker compose ls --format json`. Compose has
// emitted both a JSON array and newline-delimited objects depending on
// version; both are accepted.
func parseProjects(out []byte) ([]Project, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var projects []Project
		if err := json.Unmarshal(trimmed, &projects); err != nil {
			return nil, fmt.Errorf("decode compose ls output: %w", err)
		}
		return projects, nil
	}
	var projects []Project
	sc := bufio.NewScanner(bytes.NewReader(trimmed))
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var p Project
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("decode compose ls line: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// ParsePSTable parses `docker compose ps` tabular output into services.
//
// Input contract: the first non-empty line is a header of single-word,
// space-separated column labels, of which NAME and STATUS must be
// present; SERVICE and PORTS are honored when present. A cell spans its
// label's rune offset up to the next label's offset (docker pads columns
// with spaces and truncates wide cells with an ellipsis, so rune offsets
// line up for its output). The STATUS cell starts with the state ("Up",
// "Exited (code)", "Restarting (code)", "Created", "Dead") and may carry
// a parenthesized suffix ("(healthy)", "(unhealthy)",
// "(health: starting)", "(Paused)"). Drift in this format must be
// absorbed here; nothing else reads docker output.
func ParsePSTable(out string) []model.Service {
	lines := strings.Split(out, "\n")
	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i >= len(lines) {
		return nil
	}
	cols := headerColumns(lines[i])
	if len(cols) == 0 {
		return nil
	}

	var services []model.Service
	for _, line := range lines[i+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := splitCells(line, cols)
		name := cells["SERVICE"]
		if name == "" {
			name = cells["NAME"]
		}
		if name == "" {
			continue
		}
		state, health := parseStatusCell(cells["STATUS"])
		services = append(services, model.Service{
			Name:   name,
			State:  state,
			Health: health,
			Ports:  cells["PORTS"],
		})
	}
	return services
}

// column is a header label with its rune offset in the header line.
type column struct {
	label string
	start int
}

func headerColumns(header string) []column {
	runes := []rune(header)
	var cols []column
	for i := 0; i < len(runes); i++ {
		if runes[i] == ' ' {
			continue
		}
		start := i
		for i < len(runes) && runes[i] != ' ' {
			i++
		}
		cols = append(cols, column{label: string(runes[start:i]), start: start})
	}
	return cols
}

func splitCells(line string, cols []column) map[string]string {
	runes := []rune(line)
	cells := make(map[string]string, len(cols))
	for i, col := range cols {
		if col.start >= len(runes) {
			break
		}
		end := len(runes)
		if i+1 < len(cols) && cols[i+1].start < end {
			end = cols[i+1].start
		}
		cells[col.label] = strings.TrimSpace(string(runes[col.start:end]))
	}
	return cells
}

func parseStatusCell(status string) (model.ServiceState, model.ServiceHealth) {
	health := model.HealthNone
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "(healthy)"):
		health = model.HealthHealthy
	case strings.Contains(lower, "(unhealthy)"):
		health = model.HealthUnhealthy
	case strings.Contains(lower, "health: starting"):
		health = model.HealthStarting
	}

	switch {
	case strings.Contains(lower, "(paused)"):
		return model.ServicePaused, health
	case strings.HasPrefix(lower, "up"):
		return model.ServiceRunning, health
	case strings.HasPrefix(lower, "exited"):
		return model.ServiceExited, health
	case strings.HasPrefix(lower, "restarting"):
		return model.ServiceRestarting, health
	case strings.HasPrefix(lower, "created"):
		return model.ServiceCreated, health
	case strings.HasPrefix(lower, "dead"):
		return model.ServiceDead, health
	}
	return model.ServiceUnknown, health
}
