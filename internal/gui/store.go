package gui

import (
	"encoding/json"
	"os"
)

const defaultProfileFile = "ghost-range-profile.json"

// bestRun is the highest-scoring finished run. Kills break wave ties.
type bestRun struct {
	Wave     int     `json:"wave"`
	Kills    int     `json:"kills"`
	Survived float64 `json:"survived_seconds"`
}

type profileOptions struct {
	Muted       bool    `json:"muted"`
	AimDistance float64 `json:"aim_distance,omitempty"`
}

type savedProfile struct {
	FormatVersion int            `json:"format_version"`
	Best          bestRun        `json:"best"`
	Options       profileOptions `json:"options"`
}

// loadProfile reads the saved profile, treating a missing file as an empty
// profile. A corrupt file is an error rather than silent data loss.
func loadProfile(path string) (savedProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return savedProfile{FormatVersion: 1}, nil
		}
		return savedProfile{}, err
	}
	var profile savedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return savedProfile{}, err
	}
	if profile.FormatVersion == 0 {
		profile.FormatVersion = 1
	}
	return profile, nil
}

func saveProfile(path string, profile savedProfile) error {
	profile.FormatVersion = 1
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// betterRun reports whether candidate beats incumbent.
func betterRun(candidate, incumbent bestRun) bool {
	if candidate.Wave != incumbent.Wave {
		return candidate.Wave > incumbent.Wave
	}
	if candidate.Kills != incumbent.Kills {
		return candidate.Kills > incumbent.Kills
	}
	return candidate.Survived > incumbent.Survived
}
