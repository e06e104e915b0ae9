package store

import (
	"strings"

	"github.com/ukydev/fleet-demand-ops/internal/models"
)

// DemandByID returns a copy of a demand.
func (s *Store) DemandByID(id int64) (models.DemandEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.demands {
		if d.ID == id {
			return copyDemand(d), true
		}
	}
	return models.DemandEntry{}, false
}

// Demands returns every demand, active and archived, newest first.
func (s *Store) Demands() []models.DemandEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyDemands(s.demands)
}

// InsertDemand prepends a new demand, assigning its id when unset.
func (s *Store) InsertDemand(d models.DemandEntry) models.DemandEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == 0 {
		d.ID = s.newID()
	}
	s.demands = append([]models.DemandEntry{copyDemand(d)}, s.demands...)
	return copyDemand(d)
}

// UpdateDemand applies fn to the stored demand under the write lock and
// returns the updated copy. fn sees the live entry, so a check-then-mutate
// sequence inside it is atomic with respect to every other store operation.
func (s *Store) UpdateDemand(id int64, fn func(*models.DemandEntry) error) (models.DemandEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.demands {
		if s.demands[i].ID == id {
			if err := fn(&s.demands[i]); err != nil {
				return models.DemandEntry{}, err
			}
			return copyDemand(s.demands[i]), nil
		}
	}
	return models.DemandEntry{}, ErrDemandNotFound
}

// CompleteDemand applies fn to the demand and, under the same lock
// acquisition, flips the vehicle whose registration matches the demand to
// on_hire. No snapshot can observe the demand completed without the vehicle
// update, or the other way round. The second return reports whether a
// matching vehicle existed.
func (s *Store) CompleteDemand(id int64, fn func(*models.DemandEntry) error) (models.DemandEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.demands {
		if s.demands[i].ID != id {
			continue
		}
		if err := fn(&s.demands[i]); err != nil {
			return models.DemandEntry{}, false, err
		}
		vehicleUpdated := false
		for j := range s.vehicles {
			if strings.EqualFold(s.vehicles[j].Registration, s.demands[i].Registration) {
				s.vehicles[j].Status = models.VehicleOnHire
				vehicleUpdated = true
				break
			}
		}
		return copyDemand(s.demands[i]), vehicleUpdated, nil
	}
	return models.DemandEntry{}, false, ErrDemandNotFound
}

// ActiveDemands returns the non-archived demands of one sector, optionally
// filtered by a free-text query over client, proclaim, postcode, model,
// registration, vehicle info and tag text.
func (s *Store) ActiveDemands(sector models.Sector, query string) []models.DemandEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	query = strings.ToLower(strings.TrimSpace(query))
	var out []models.DemandEntry
	for _, d := range s.demands {
		if d.CurrentSector != sector || d.IsArchived {
			continue
		}
		if query != "" && !demandMatches(d, query) {
			continue
		}
		out = append(out, copyDemand(d))
	}
	return out
}

// ArchivedDemands returns completed, archived demands newest first.
func (s *Store) ArchivedDemands() []models.DemandEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.DemandEntry
	for _, d := range s.demands {
		if d.IsArchived {
			out = append(out, copyDemand(d))
		}
	}
	return out
}

func demandMatches(d models.DemandEntry, query string) bool {
	for _, field := range []string{
		d.ClientName, d.Proclaim, d.Postcode, d.Model, d.Registration, d.VehicleInfo,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag.Text), query) {
			return true
		}
	}
	return false
}
