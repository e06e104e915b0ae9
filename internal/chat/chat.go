// Package chat implements the sector chat channels and the @mention
// resolver that feeds the notification badge.
package chat

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/recorder"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

var (
	ErrEmptyMessage   = errors.New("message text is empty")
	ErrInvalidChannel = errors.New("unknown chat channel")
)

// Service posts messages, resolves mentions and raises mention
// notifications through the recorder.
type Service struct {
	store *store.Store
	rec   *recorder.Recorder
	log   *logrus.Logger
}

// NewService creates a chat service.
func NewService(st *store.Store, rec *recorder.Recorder, log *logrus.Logger) *Service {
	return &Service{store: st, rec: rec, log: log}
}

// History returns one channel's messages in chronological order.
func (s *Service) History(channel models.Channel) ([]models.ChatMessage, error) {
	if !models.IsValidChannel(channel) {
		return nil, ErrInvalidChannel
	}
	return s.store.Messages(channel), nil
}

// EligibleRecipients returns the users who can be mentioned on a channel:
// everyone on ALL, and admins, supervisors plus the sector's own members on
// a sector channel.
func (s *Service) EligibleRecipients(channel models.Channel) []models.User {
	users := s.store.Users()
	if channel == models.ChannelAll {
		return users
	}
	var out []models.User
	for _, u := range users {
		if u.Role == models.RoleAdmin || u.Role == models.RoleSupervisor || u.Sector == models.Sector(channel) {
			out = append(out, u)
		}
	}
	return out
}

// ResolveMentions scans text for @tokens and matches each against the
// recipients' first names, case-insensitively. A recipient is returned at
// most once however often they are mentioned.
func ResolveMentions(text string, recipients []models.User) []models.User {
	var out []models.User
	seen := make(map[int64]bool)
	for _, token := range strings.Fields(text) {
		if !strings.HasPrefix(token, "@") {
			continue
		}
		name := strings.TrimPrefix(token, "@")
		if name == "" {
			continue
		}
		for _, u := range recipients {
			if seen[u.ID] {
				continue
			}
			if strings.EqualFold(u.FirstName(), name) {
				out = append(out, u)
				seen[u.ID] = true
				break
			}
		}
	}
	return out
}

// SendMessage validates and posts a message, then raises one mention
// notification per resolved recipient other than the author. demandID may
// be zero when the message is not about a particular demand.
func (s *Service) SendMessage(author models.User, channel models.Channel, text string, demandID int64) (models.ChatMessage, error) {
	if !models.IsValidChannel(channel) {
		return models.ChatMessage{}, ErrInvalidChannel
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	mentioned := ResolveMentions(text, s.EligibleRecipients(channel))
	var mentionIDs []int64
	for _, u := range mentioned {
		mentionIDs = append(mentionIDs, u.ID)
	}

	msg := s.store.AppendMessage(models.ChatMessage{
		UserID:   author.ID,
		UserName: author.Name,
		Message:  text,
		Channel:  channel,
		DemandID: demandID,
		Mentions: mentionIDs,
	})

	for _, target := range mentioned {
		if target.ID == author.ID {
			continue
		}
		s.rec.NotifyMention(author, target, channel)
	}

	s.log.WithFields(logrus.Fields{
		"channel":  channel,
		"user_id":  author.ID,
		"mentions": len(mentioned),
	}).Debug("Chat message posted")
	return msg, nil
}
