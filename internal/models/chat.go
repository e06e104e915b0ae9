package models

// Channel is a chat bucket: one per sector plus the shared ALL channel.
type Channel string

const ChannelAll Channel = "ALL"

// Channels lists every chat channel.
var Channels = []Channel{
	Channel(SectorLogistics),
	Channel(SectorWorkshop),
	Channel(SectorHirefleet),
	ChannelAll,
}

// IsValidChannel checks if a channel is a sector channel or ALL.
func IsValidChannel(c Channel) bool {
	return c == ChannelAll || IsValidSector(Sector(c))
}

// ChatMessage is one entry in a channel's append-only history. DemandID is
// optional metadata linking the message to a demand; the resolver treats it
// as opaque.
type ChatMessage struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	UserName  string  `json:"userName"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
	Channel   Channel `json:"channel"`
	DemandID  int64   `json:"demandId,omitempty"`
	Mentions  []int64 `json:"mentions,omitempty"`
}
