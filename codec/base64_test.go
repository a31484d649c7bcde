package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeBase64RoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	data := []byte("hello, cppon")
	text := EncodeBase64(data)

	got, err := DecodeBase64(text, true)
	a.NoError(err)
	a.Equal(data, got)
}

func TestDecodeBase64Strict(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	_, err := DecodeBase64("not valid base64!!", true)
	a.ErrorIs(err, ErrInvalidBase64)
}

func TestDecodeBase64NonStrict(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	got, err := DecodeBase64("not valid base64!!", false)
	a.NoError(err)
	a.Nil(got)
}

func TestDecodeBase64Empty(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	got, err := DecodeBase64("", true)
	a.NoError(err)
	a.Empty(got)
}
