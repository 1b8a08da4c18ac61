package entity

import (
	"time"

	"github.com/nbd-wtf/go-nostr"
)

// EventTemplate is an unsigned location event. It only lives between
// assembly and signing.
type EventTemplate struct {
	Kind    int
	Content string
	Tags    nostr.Tags
}

// ToEvent returns an unsigned event created at createdAt. Tags are copied so
// the template can be reused.
func (t *EventTemplate) ToEvent(createdAt time.Time) nostr.Event {
	tags := make(nostr.Tags, 0, len(t.Tags))
	for _, tag := range t.Tags {
		tags = append(tags, append(nostr.Tag(nil), tag...))
	}

	return nostr.Event{
		CreatedAt: nostr.Timestamp(createdAt.Unix()),
		Kind:      t.Kind,
		Tags:      tags,
		Content:   t.Content,
	}
}

// TagValue returns the value of the first tag named name.
func (t *EventTemplate) TagValue(name string) (string, bool) {
	return FindTagValue(t.Tags, name)
}

// FindTagValue returns the second element of the first tag whose first
// element is name.
func FindTagValue(tags nostr.Tags, name string) (string, bool) {
	for _, tag := range tags {
		if len(tag) >= 2 && tag[0] == name {
			return tag[1], true
		}
	}

	return "", false
}
