package recorder

import (
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

func newTestRecorder(t *testing.T) (*Recorder, *store.Store) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	st := store.New()
	return New(st, nil, log), st
}

func TestAuditAttributesActor(t *testing.T) {
	rec, st := newTestRecorder(t)
	demand := models.DemandEntry{ID: 7, Proclaim: "613410"}

	entry := rec.Audit(demand, models.ActionUpdate, "Updated demand details.", "Joana Silva")
	assert.Equal(t, int64(7), entry.DemandID)
	assert.Equal(t, "613410", entry.DemandProclaim)
	assert.Equal(t, "Joana Silva", entry.User)
	assert.False(t, entry.Timestamp.IsZero())

	require.Len(t, st.AuditLog(), 1)
}

func TestNotificationFeedKeepsNewestTwenty(t *testing.T) {
	rec, st := newTestRecorder(t)
	for i := 0; i < 30; i++ {
		rec.Notify(fmt.Sprintf("event %d", i))
	}

	items := st.Notifications()
	require.Len(t, items, 20)
	assert.Equal(t, "event 29", items[0].Message)
	assert.Equal(t, "event 10", items[19].Message)
}

func TestMentionBumpsBadge(t *testing.T) {
	rec, st := newTestRecorder(t)
	author := models.User{ID: 1, Name: "Joana Silva"}
	target := models.User{ID: 2, Name: "Victor Junger"}

	item := rec.NotifyMention(author, target, models.ChannelAll)
	assert.Equal(t, "Joana Silva mentioned Victor Junger in ALL", item.Message)
	assert.Equal(t, 1, st.UnreadMentions())
}

func TestOpenPanelClearsEverything(t *testing.T) {
	rec, st := newTestRecorder(t)
	author := models.User{ID: 1, Name: "Joana Silva"}
	target := models.User{ID: 2, Name: "Victor Junger"}
	rec.NotifyMention(author, target, models.ChannelAll)
	rec.Notify("plain event")

	items := rec.OpenPanel()
	require.Len(t, items, 2)
	for _, item := range items {
		assert.True(t, item.Read)
	}
	assert.Zero(t, st.UnreadMentions())

	// A fresh notification after the panel closes is unread again.
	rec.Notify("later event")
	assert.False(t, st.Notifications()[0].Read)
}
