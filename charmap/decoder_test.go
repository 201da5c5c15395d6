package charmap_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fwojciec/leis/charmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xcharmap "golang.org/x/text/encoding/charmap"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	t.Run("decodes windows-1252 bytes to UTF-8", func(t *testing.T) {
		t.Parallel()

		// "LEI Nº 1 - DISPÕE SOBRE A CÂMARA" in Windows-1252
		input := []byte("LEI N\xba 1 - DISP\xd5E SOBRE A C\xc2MARA")

		text, err := charmap.NewDecoder().Decode(bytes.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, "LEI Nº 1 - DISPÕE SOBRE A CÂMARA", text)
	})

	t.Run("maps windows-1252 specific punctuation", func(t *testing.T) {
		t.Parallel()

		input := []byte("\x93aspas\x94 \x96 travess\xe3o \x80")

		text, err := charmap.NewDecoder().Decode(bytes.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, "“aspas” – travessão €", text)
	})

	t.Run("every byte decodes to exactly one rune", func(t *testing.T) {
		t.Parallel()

		input := make([]byte, 256)
		for i := range input {
			input[i] = byte(i)
		}

		text, err := charmap.NewDecoder().Decode(bytes.NewReader(input))

		require.NoError(t, err)
		assert.Len(t, []rune(text), 256)
	})

	t.Run("returns empty string for empty input", func(t *testing.T) {
		t.Parallel()

		text, err := charmap.NewDecoder().Decode(bytes.NewReader(nil))

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("uses configured charmap", func(t *testing.T) {
		t.Parallel()

		// 0xA4 is the euro sign in ISO-8859-15 and the currency sign in Windows-1252
		dec := charmap.NewDecoder(charmap.WithCharmap(xcharmap.ISO8859_15))

		text, err := dec.Decode(bytes.NewReader([]byte{0xa4}))

		require.NoError(t, err)
		assert.Equal(t, "€", text)
	})

	t.Run("returns read errors", func(t *testing.T) {
		t.Parallel()

		_, err := charmap.NewDecoder().Decode(failingReader{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk on fire")
	})
}
