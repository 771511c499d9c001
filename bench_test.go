package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/branila/lzwcast/lzw"
	"github.com/stretchr/testify/require"
)

func TestBench_Run(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	inputs := map[string][]byte{
		".txt": bytes.Repeat([]byte("the quick brown fox "), 500),
		".bin": bytes.Repeat([]byte{0, 1, 2, 3}, 3000),
		".nil": {},
	}
	for ext, data := range inputs {
		require.NoError(t, os.WriteFile(filepath.Join(inDir, "file"+ext), data, 0o644))
	}

	for _, format := range []lzw.Format{lzw.FormatFixed16, lzw.FormatPacked} {
		t.Run(format.String(), func(t *testing.T) {
			config := DefaultConfig()
			config.Format = format

			reports, err := NewBench(config, inDir, outDir, io.Discard).Run(context.Background(), []string{".txt", ".bin", ".nil"})
			require.NoError(t, err)
			require.Len(t, reports, 3)

			for _, r := range reports {
				ext := filepath.Ext(r.Name)
				require.Equal(t, int64(len(inputs[ext])), r.OriginalSize, ext)

				compressed, err := os.ReadFile(filepath.Join(outDir, "compressed", "file_compressed"+ext+".lzw"))
				require.NoError(t, err)
				require.Equal(t, r.CompressedSize, int64(len(compressed)), ext)

				decompressed, err := os.ReadFile(filepath.Join(outDir, "decompressed", "file_decompressed"+ext))
				require.NoError(t, err)
				require.True(t, bytes.Equal(inputs[ext], decompressed), ext)
			}
		})
	}
}

func TestBench_FixedLayoutOnDisk(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "file.a"), []byte("AAAAAAAAAAAA"), 0o644))

	_, err := NewBench(DefaultConfig(), inDir, outDir, io.Discard).Run(context.Background(), []string{".a"})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(outDir, "compressed", "file_compressed.a.lzw"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x41, 0x01, 0x00, 0x01, 0x01, 0x01, 0x02, 0x01, 0x00}, got)
}

func TestBench_MissingInput(t *testing.T) {
	_, err := NewBench(DefaultConfig(), t.TempDir(), t.TempDir(), io.Discard).Run(context.Background(), []string{".missing"})
	require.Error(t, err)
}

func TestBench_RemoteInput(t *testing.T) {
	payload := bytes.Repeat([]byte("remote payload "), 200)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer ts.Close()

	outDir := t.TempDir()
	reports, err := NewBench(DefaultConfig(), t.TempDir(), outDir, io.Discard).Run(context.Background(), []string{ts.URL + "/data.bin"})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, int64(len(payload)), reports[0].OriginalSize)

	_, err = os.Stat(filepath.Join(outDir, "decompressed", "file_decompressed_data.bin"))
	require.NoError(t, err)
}
