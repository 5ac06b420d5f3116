package share

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCode(t *testing.T) {
	png, err := QRCode("https://t.me/vocadeck_bot")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = QRCode("")
	assert.ErrorIs(t, err, ErrNoLink)
}
