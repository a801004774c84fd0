package hostfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisk_AllocateAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "section.bin")
	d, err := OpenDisk(path)
	require.NoError(t, err)
	defer d.Close()

	offset, err := d.AllocateSpace(8, true)
	require.NoError(t, err)
	require.Equal(t, int64(0), offset)

	require.NoError(t, d.Seek(0))
	n, err := d.Write([]byte("abcdefgh"))
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, int64(8), d.UnusedLogicalStart())
}

func TestDisk_ReopenPreservesFrontier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "section.bin")
	d, err := OpenDisk(path)
	require.NoError(t, err)

	_, err = d.AllocateSpace(16, true)
	require.NoError(t, err)
	require.NoError(t, d.Close())

	d2, err := OpenDisk(path)
	require.NoError(t, err)
	defer d2.Close()
	require.Equal(t, int64(16), d2.UnusedLogicalStart())
}

func TestDisk_Close_RejectsWhileWritersOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "section.bin")
	d, err := OpenDisk(path)
	require.NoError(t, err)

	d.IncrWriterCount()
	require.Error(t, d.Close())

	d.DecrWriterCount()
	require.NoError(t, d.Close())
}

func TestDisk_Seek_RejectsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "section.bin")
	d, err := OpenDisk(path)
	require.NoError(t, err)
	defer d.Close()

	_, err = d.AllocateSpace(4, true)
	require.NoError(t, err)

	require.Error(t, d.Seek(-1))
	require.Error(t, d.Seek(5))
	require.NoError(t, d.Seek(4))
}
