package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSystemClipboard struct {
	contents string
	writes   int
	writeErr error
	readErr  error
}

func (f *fakeSystemClipboard) write(s string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes++
	f.contents = s
	return nil
}

func (f *fakeSystemClipboard) read() (string, error) {
	return f.contents, f.readErr
}

func TestClipboard_SetAndClear(t *testing.T) {
	fake := &fakeSystemClipboard{}
	c := newSystemClipboard(fake.write, fake.read)

	require.NoError(t, c.Set("p@ss"))
	assert.Equal(t, "p@ss", fake.contents)

	require.NoError(t, c.Clear())
	assert.Equal(t, "", fake.contents)
	assert.Equal(t, 2, fake.writes)

	// nothing left to clear
	require.NoError(t, c.Clear())
	assert.Equal(t, 2, fake.writes)
}

func TestClipboard_ClearKeepsForeignContents(t *testing.T) {
	fake := &fakeSystemClipboard{}
	c := newSystemClipboard(fake.write, fake.read)

	require.NoError(t, c.Set("p@ss"))
	fake.contents = "copied by the user"

	require.NoError(t, c.Clear())
	assert.Equal(t, "copied by the user", fake.contents)
}

func TestClipboard_ClearWithoutSet(t *testing.T) {
	fake := &fakeSystemClipboard{contents: "untouched"}
	c := newSystemClipboard(fake.write, fake.read)

	require.NoError(t, c.Clear())
	assert.Equal(t, "untouched", fake.contents)
	assert.Zero(t, fake.writes)
}

func TestClipboard_Errors(t *testing.T) {
	fake := &fakeSystemClipboard{writeErr: assert.AnError}
	c := newSystemClipboard(fake.write, fake.read)
	assert.ErrorIs(t, c.Set("x"), assert.AnError)

	fake = &fakeSystemClipboard{}
	c = newSystemClipboard(fake.write, fake.read)
	require.NoError(t, c.Set("x"))
	fake.readErr = assert.AnError
	assert.ErrorIs(t, c.Clear(), assert.AnError)
}

func TestUnsupportedClipboard(t *testing.T) {
	var c Clipboard = unsupportedClipboard{}
	assert.ErrorIs(t, c.Set("x"), ErrClipboardUnsupported)
	assert.NoError(t, c.Clear())
}
