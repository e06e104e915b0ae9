package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukydev/fleet-demand-ops/internal/models"
)

func TestAddUserRejectsDuplicateEmail(t *testing.T) {
	s := New()
	_, err := s.AddUser(models.User{Name: "First", Email: "ops@example.com"})
	assert.NoError(t, err)

	_, err = s.AddUser(models.User{Name: "Second", Email: "OPS@example.com"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserByEmailIsCaseInsensitive(t *testing.T) {
	s := New()
	_, err := s.AddUser(models.User{Name: "First", Email: "Ops@Example.com"})
	assert.NoError(t, err)

	u, ok := s.UserByEmail("ops@example.com")
	assert.True(t, ok)
	assert.Equal(t, "First", u.Name)
}

func TestVehicleByRegistrationIsCaseInsensitive(t *testing.T) {
	s := New()
	s.AddVehicle("PCX 125", "AB12CDE")

	v, ok := s.VehicleByRegistration("ab12cde")
	assert.True(t, ok)
	assert.Equal(t, models.VehicleAvailable, v.Status)
}

func TestActiveDemandsFiltersSectorAndArchive(t *testing.T) {
	s := New()
	s.InsertDemand(models.DemandEntry{ClientName: "A", CurrentSector: models.SectorLogistics})
	s.InsertDemand(models.DemandEntry{ClientName: "B", CurrentSector: models.SectorWorkshop})
	s.InsertDemand(models.DemandEntry{ClientName: "C", CurrentSector: models.SectorLogistics, IsArchived: true})

	active := s.ActiveDemands(models.SectorLogistics, "")
	assert.Len(t, active, 1)
	assert.Equal(t, "A", active[0].ClientName)
}

func TestActiveDemandsSearch(t *testing.T) {
	s := New()
	s.InsertDemand(models.DemandEntry{
		ClientName:    "DE OLIVEIRA",
		Proclaim:      "613410",
		Postcode:      "EN3",
		Registration:  "RJ72ERX",
		CurrentSector: models.SectorLogistics,
		Tags:          []models.Tag{{Text: "Needs Topbox", Type: models.TagNormal}},
	})
	s.InsertDemand(models.DemandEntry{
		ClientName:    "SANTOS",
		Proclaim:      "615551",
		CurrentSector: models.SectorLogistics,
	})

	tests := []struct {
		query string
		want  int
	}{
		{"oliveira", 1},
		{"613410", 1},
		{"rj72", 1},
		{"topbox", 1},
		{"santos", 1},
		{"", 2},
		{"zzz", 0},
	}
	for _, tt := range tests {
		got := s.ActiveDemands(models.SectorLogistics, tt.query)
		assert.Len(t, got, tt.want, "query %q", tt.query)
	}
}

func TestUpdateDemandNotFound(t *testing.T) {
	s := New()
	_, err := s.UpdateDemand(42, func(d *models.DemandEntry) error { return nil })
	assert.ErrorIs(t, err, ErrDemandNotFound)
}

func TestCompleteDemandFlipsVehicle(t *testing.T) {
	s := New()
	v := s.AddVehicle("nmax 125", "XY99ZZZ")
	d := s.InsertDemand(models.DemandEntry{
		ClientName:    "WALKER",
		Registration:  "XY99ZZZ",
		CurrentSector: models.SectorHirefleet,
	})

	updated, vehicleUpdated, err := s.CompleteDemand(d.ID, func(d *models.DemandEntry) error {
		d.IsArchived = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, vehicleUpdated)
	assert.True(t, updated.IsArchived)

	got, _ := s.VehicleByID(v.ID)
	assert.Equal(t, models.VehicleOnHire, got.Status)
}

func TestCompleteDemandErrorLeavesVehicleAlone(t *testing.T) {
	s := New()
	v := s.AddVehicle("nmax 125", "XY99ZZZ")
	d := s.InsertDemand(models.DemandEntry{Registration: "XY99ZZZ"})

	_, _, err := s.CompleteDemand(d.ID, func(d *models.DemandEntry) error {
		return fmt.Errorf("nope")
	})
	assert.Error(t, err)

	got, _ := s.VehicleByID(v.ID)
	assert.Equal(t, models.VehicleAvailable, got.Status)
}

func TestNotificationCap(t *testing.T) {
	s := New()
	for i := 0; i < 25; i++ {
		s.PushNotification(fmt.Sprintf("event %d", i))
	}

	items := s.Notifications()
	assert.Len(t, items, maxNotifications)
	// Newest first; the oldest five were evicted.
	assert.Equal(t, "event 24", items[0].Message)
	assert.Equal(t, "event 5", items[len(items)-1].Message)
}

func TestMarkNotificationsReadClearsBadge(t *testing.T) {
	s := New()
	s.PushNotification("one")
	s.PushNotification("two")
	s.IncrementUnreadMentions()
	s.IncrementUnreadMentions()
	assert.Equal(t, 2, s.UnreadMentions())

	items := s.MarkNotificationsRead()
	assert.Equal(t, 0, s.UnreadMentions())
	for _, item := range items {
		assert.True(t, item.Read)
	}
}

func TestCopiesAreDetached(t *testing.T) {
	s := New()
	d := s.InsertDemand(models.DemandEntry{
		ClientName: "A",
		Tags:       []models.Tag{{Text: "original", Type: models.TagNormal}},
	})

	got, _ := s.DemandByID(d.ID)
	got.Tags[0].Text = "mutated"

	again, _ := s.DemandByID(d.ID)
	assert.Equal(t, "original", again.Tags[0].Text)
}

func TestSeedFixtures(t *testing.T) {
	s := Seed()

	assert.Len(t, s.Users(), 6)
	assert.Len(t, s.Vehicles(), 39)
	assert.Len(t, s.Demands(), 34)

	u, ok := s.UserByEmail("victor.junger@4th-d.co.uk")
	assert.True(t, ok)
	assert.Equal(t, models.SectorHirefleet, u.Sector)
	assert.NotEmpty(t, u.PasswordHash)

	// Archived fixtures must not show on the active boards.
	for _, d := range s.ActiveDemands(models.SectorHirefleet, "") {
		assert.False(t, d.IsArchived)
	}
}
