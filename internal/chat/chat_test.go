package chat

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/recorder"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	st := store.New()
	rec := recorder.New(st, nil, log)
	return NewService(st, rec, log), st
}

func seedUsers(t *testing.T, st *store.Store) (admin, victor, joana models.User) {
	t.Helper()
	var err error
	admin, err = st.AddUser(models.User{Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin, Sector: models.SectorLogistics})
	require.NoError(t, err)
	victor, err = st.AddUser(models.User{Name: "Victor Junger", Email: "victor@example.com", Role: models.RoleUser, Sector: models.SectorHirefleet})
	require.NoError(t, err)
	joana, err = st.AddUser(models.User{Name: "Joana Silva", Email: "joana@example.com", Role: models.RoleUser, Sector: models.SectorLogistics})
	require.NoError(t, err)
	return admin, victor, joana
}

func TestEligibleRecipients(t *testing.T) {
	svc, st := newTestService(t)
	admin, victor, joana := seedUsers(t, st)

	all := svc.EligibleRecipients(models.ChannelAll)
	assert.Len(t, all, 3)

	// Sector channel: admins, supervisors and the sector's own members.
	hirefleet := svc.EligibleRecipients(models.Channel(models.SectorHirefleet))
	ids := make(map[int64]bool)
	for _, u := range hirefleet {
		ids[u.ID] = true
	}
	assert.True(t, ids[admin.ID])
	assert.True(t, ids[victor.ID])
	assert.False(t, ids[joana.ID])
}

func TestResolveMentions(t *testing.T) {
	recipients := []models.User{
		{ID: 1, Name: "Victor Junger"},
		{ID: 2, Name: "Joana Silva"},
	}

	tests := []struct {
		name string
		text string
		want []int64
	}{
		{"first name match", "@Victor can you confirm?", []int64{1}},
		{"case insensitive", "@victor please", []int64{1}},
		{"no at sign", "Victor please", nil},
		{"unknown name", "@Nobody hello", nil},
		{"surname does not match", "@Junger hello", nil},
		{"two mentions", "@Victor and @Joana both", []int64{1, 2}},
		{"duplicate mention counted once", "@Victor @Victor", []int64{1}},
		{"bare at sign", "email @ example", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMentions(tt.text, recipients)
			var ids []int64
			for _, u := range got {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSendMessageNotifiesMentionedUsers(t *testing.T) {
	svc, st := newTestService(t)
	_, victor, joana := seedUsers(t, st)

	msg, err := svc.SendMessage(joana, models.ChannelAll, "@Victor the slot moved", 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{victor.ID}, msg.Mentions)

	items := st.Notifications()
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Message, "Joana Silva mentioned Victor Junger")
	assert.Equal(t, 1, st.UnreadMentions())
}

func TestSendMessageUnknownMentionIsQuiet(t *testing.T) {
	svc, st := newTestService(t)
	_, _, joana := seedUsers(t, st)

	_, err := svc.SendMessage(joana, models.ChannelAll, "@Nobody are you there?", 0)
	require.NoError(t, err)
	assert.Empty(t, st.Notifications())
	assert.Zero(t, st.UnreadMentions())
}

func TestSelfMentionDoesNotNotify(t *testing.T) {
	svc, st := newTestService(t)
	_, victor, _ := seedUsers(t, st)

	msg, err := svc.SendMessage(victor, models.ChannelAll, "@Victor note to self", 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{victor.ID}, msg.Mentions)
	assert.Empty(t, st.Notifications())
}

func TestSendMessageValidation(t *testing.T) {
	svc, st := newTestService(t)
	_, victor, _ := seedUsers(t, st)

	_, err := svc.SendMessage(victor, models.Channel("NOPE"), "hi", 0)
	assert.ErrorIs(t, err, ErrInvalidChannel)

	_, err = svc.SendMessage(victor, models.ChannelAll, "   ", 0)
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSectorChannelExcludesOutsiders(t *testing.T) {
	svc, st := newTestService(t)
	_, victor, _ := seedUsers(t, st)

	// Joana is LOGISTICS; mentioning her on the HIREFLEET channel resolves
	// nothing because she is not an eligible recipient there.
	msg, err := svc.SendMessage(victor, models.Channel(models.SectorHirefleet), "@Joana look at this", 0)
	require.NoError(t, err)
	assert.Empty(t, msg.Mentions)
	assert.Empty(t, st.Notifications())
}
