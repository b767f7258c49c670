package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "smartlearn_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "smartlearn_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "smartlearn_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "smartlearn_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "smartlearn_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "smartlearn_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "smartlearn_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := "abc123  smartlearn_Darwin_all.tar.gz\nbadline\n\ndef456  smartlearn_Linux_x86_64.tar.gz\n"
	got := parseChecksums([]byte(input))
	assert.Equal(t, map[string]string{
		"smartlearn_Darwin_all.tar.gz":   "abc123",
		"smartlearn_Linux_x86_64.tar.gz": "def456",
	}, got)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho smartlearn")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "smartlearn", binaryContent)
		got, err := extractBinary(archive, "smartlearn_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := extractBinary(archive, "smartlearn_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/abhisek/smartlearn/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name":"v1.2.0","html_url":"https://example.com/v1.2.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	t.Run("newer available", func(t *testing.T) {
		result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.2.0", result.LatestVersion)
	})

	t.Run("already latest", func(t *testing.T) {
		result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("tag without v prefix", func(t *testing.T) {
		result, err := c.Check(context.Background(), &CheckInput{Version: "1.3.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})
}

func TestUpdateDevBuild(t *testing.T) {
	c := NewChecker()
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdateEndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix file semantics")
	}

	binaryContent := []byte("#!/bin/sh\necho updated")
	asset, err := assetName()
	require.NoError(t, err)
	archive := buildTarGz(t, "smartlearn", binaryContent)
	archiveHash := sha256.Sum256(archive)
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveHash[:]), asset)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/abhisek/smartlearn/releases/latest":
			fmt.Fprint(w, `{"tag_name":"v9.9.9"}`)
		case filepath.Base(r.URL.Path) == "checksums.txt":
			fmt.Fprint(w, checksums)
		case filepath.Base(r.URL.Path) == asset:
			_, _ = w.Write(archive)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	target := filepath.Join(t.TempDir(), "smartlearn")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	c := NewChecker(
		WithBaseURLs(srv.URL, srv.URL),
		WithExecPath(func() (string, error) { return target, nil }),
	)

	var stages []string
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)

	updated, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, binaryContent, updated)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	return buf.Bytes()
}
