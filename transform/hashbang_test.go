package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashbangStripAndRestoreRoundTrip(t *testing.T) {
	strip := NewHashbangStrip()
	stripped, err := strip.Apply("#!/usr/bin/env node\nconsole.log(1);")
	require.NoError(t, err)
	require.Equal(t, "console.log(1);", stripped)

	restore := NewHashbangRestore(strip)
	restored, err := restore.Apply(stripped)
	require.NoError(t, err)
	require.Equal(t, "#!/usr/bin/env node\nconsole.log(1);", restored)
}

func TestHashbangStripIsNoopWithoutHashbang(t *testing.T) {
	strip := NewHashbangStrip()
	source := "console.log(1);"
	stripped, err := strip.Apply(source)
	require.NoError(t, err)
	require.Equal(t, source, stripped)

	restore := NewHashbangRestore(strip)
	restored, err := restore.Apply(stripped)
	require.NoError(t, err)
	require.Equal(t, source, restored)
}

func TestHashbangNames(t *testing.T) {
	require.Equal(t, NameHashbangStrip, NewHashbangStrip().Name())
	require.Equal(t, NameHashbangRestore, NewHashbangRestore(NewHashbangStrip()).Name())
}
