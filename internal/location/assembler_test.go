package location

import (
	"testing"
	"time"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblePublic(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tmpl, err := AssemblePublic(60.17, 24.94, nil, publicConfig(t), now)
	require.NoError(t, err)
	assert.Equal(t, entity.KindPublicLocation, tmpl.Kind)
	assert.Empty(t, tmpl.Content)

	ev := tmpl.ToEvent(now)
	assert.Equal(t, now.Unix(), int64(ev.CreatedAt))
	assert.Equal(t, tmpl.Tags, ev.Tags)
	assert.Empty(t, ev.Sig)

	// The event owns its tags.
	ev.Tags[0][1] = "changed"
	assert.NotEqual(t, "changed", tmpl.Tags[0][1])
}

func TestAssembleEncrypted(t *testing.T) {
	tmpl, err := AssembleEncrypted("opaque", testRecipient, encryptedConfig(t), time.Now())
	require.NoError(t, err)
	assert.Equal(t, entity.KindEncryptedLocation, tmpl.Kind)
	assert.Equal(t, "opaque", tmpl.Content)

	p, ok := tmpl.TagValue(TagRecipient)
	require.True(t, ok)
	assert.Equal(t, testRecipient, p)
}

func TestAssemble_PropagatesBuilderErrors(t *testing.T) {
	_, err := AssemblePublic(0, 200, nil, publicConfig(t), time.Now())
	assert.ErrorIs(t, err, domainerrors.ErrInputValidation)

	_, err = AssembleEncrypted("opaque", "bob", encryptedConfig(t), time.Now())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRecipient)
}
