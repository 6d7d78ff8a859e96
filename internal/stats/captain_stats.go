package stats

import "github.com/tawsil-app/ops-dashboard/internal/models"

// CaptainStats is the record shown on the captains page header.
// Available and Busy partition the active captains; inactive captains
// are counted in neither.
type CaptainStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Available int `json:"available"`
	Busy      int `json:"busy"`
}

// DeriveCaptainStats recomputes captain statistics from a snapshot collection.
func DeriveCaptainStats(captains []models.Captain) CaptainStats {
	s := CaptainStats{Total: len(captains)}
	for _, c := range captains {
		if !c.IsActive {
			continue
		}
		s.Active++
		if c.IsAvailable {
			s.Available++
		} else {
			s.Busy++
		}
	}
	return s
}
