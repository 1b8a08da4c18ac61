package impl

import (
	"strconv"
	"strings"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/domain/service"
	"sentinel/internal/location"

	"github.com/nbd-wtf/go-nostr"
)

// eventDecoder turns received location events into records. Encrypted
// events are decrypted with cipher when they are addressed to self.
type eventDecoder struct {
	cipher service.Cipher // nil when no secret key is available
	self   string         // hex public key of the cipher holder
}

// decode fails with ErrWrongAuthor when event is not from author, whatever
// the relay claims to have filtered.
func (d eventDecoder) decode(event *nostr.Event, author string) (*entity.LocationRecord, error) {
	if !strings.EqualFold(event.PubKey, author) {
		return nil, domainerrors.ErrWrongAuthor.WithDetails(event.PubKey)
	}
	if ok, err := event.CheckSignature(); err != nil || !ok {
		return nil, domainerrors.ErrInvalidSignature.WithDetails(event.ID)
	}

	switch event.Kind {
	case entity.KindPublicLocation:
		return location.ParsePublicRecord(event)

	case entity.KindEncryptedLocation:
		if d.cipher == nil {
			return nil, domainerrors.ErrDecryptionFailed.WithDetails("no decryption key")
		}
		if recipient, _ := entity.FindTagValue(event.Tags, location.TagRecipient); recipient != d.self {
			return nil, domainerrors.ErrDecryptionFailed.WithDetails("event is addressed to another key")
		}

		plaintext, err := d.cipher.Decrypt(event.PubKey, event.Content)
		if err != nil {
			return nil, err
		}

		return location.ParseEncryptedRecord(event, plaintext)

	default:
		return nil, domainerrors.ErrWrongKind.WithDetails("got kind " + strconv.Itoa(event.Kind))
	}
}

// categoryOf names the error category for logs and metrics.
func categoryOf(err error) string {
	for _, category := range []domainerrors.Category{
		domainerrors.CategoryParse,
		domainerrors.CategoryCodec,
		domainerrors.CategoryDecryption,
	} {
		if domainerrors.IsCategory(err, category) {
			return string(category)
		}
	}

	return "unknown"
}

// locationFilter matches both location kinds of author.
func locationFilter(author, dTag string) nostr.Filter {
	filter := nostr.Filter{
		Kinds:   []int{entity.KindPublicLocation, entity.KindEncryptedLocation},
		Authors: []string{author},
	}
	if dTag != "" {
		filter.Tags = nostr.TagMap{location.TagIdentifier: []string{dTag}}
	}

	return filter
}
