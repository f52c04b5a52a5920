package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDrive implements enough of the Drive v3 surface for the client:
// file search, media update, multipart create, media download.
type fakeDrive struct {
	t       *testing.T
	content []byte
	fileID  string
	patched bool
}

func (f *fakeDrive) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/drive/v3/files", func(w http.ResponseWriter, r *http.Request) {
		require.Contains(f.t, r.URL.Query().Get("q"), DriveFileName)
		files := []map[string]string{}
		if f.fileID != "" {
			files = append(files, map[string]string{"id": f.fileID, "name": DriveFileName})
		}
		// resty only unmarshals SetResult when the response declares JSON
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"files": files})
	})

	mux.HandleFunc("/drive/v3/files/", func(w http.ResponseWriter, r *http.Request) {
		if f.fileID == "" || !strings.HasSuffix(r.URL.Path, f.fileID) {
			http.NotFound(w, r)
			return
		}
		w.Write(f.content)
	})

	mux.HandleFunc("/upload/drive/v3/files", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(f.t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("file")
		require.NoError(f.t, err)
		defer file.Close()
		f.content, err = io.ReadAll(file)
		require.NoError(f.t, err)
		f.fileID = "created-1"
		fmt.Fprint(w, `{"id": "created-1"}`)
	})

	mux.HandleFunc("/upload/drive/v3/files/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(f.t, http.MethodPatch, r.Method)
		body, err := io.ReadAll(r.Body)
		require.NoError(f.t, err)
		f.content = body
		f.patched = true
		fmt.Fprint(w, `{"id": "`+f.fileID+`"}`)
	})

	return mux
}

func newDriveFixture(t *testing.T) (*DriveClient, *fakeDrive) {
	t.Helper()
	fake := &fakeDrive{t: t}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	client := NewDriveClient(log.New(io.Discard))
	client.SetBaseURL(srv.URL)
	return client, fake
}

func TestDriveClient_UploadCreatesThenUpdates(t *testing.T) {
	client, fake := newDriveFixture(t)
	ctx := context.Background()

	require.NoError(t, client.Upload(ctx, testSnapshot(), "token-1"))
	assert.Equal(t, "created-1", fake.fileID)
	assert.Contains(t, string(fake.content), "Macau")

	// Second upload finds the file and overwrites via PATCH
	snap := testSnapshot()
	snap.Sessions[0].Location = "Vegas"
	require.NoError(t, client.Upload(ctx, snap, "token-1"))
	assert.True(t, fake.patched, "second upload must update in place")
	assert.Equal(t, "created-1", fake.fileID, "no second file created")
	assert.Contains(t, string(fake.content), "Vegas")
}

func TestDriveClient_RestoreRoundTrip(t *testing.T) {
	client, _ := newDriveFixture(t)
	ctx := context.Background()

	require.NoError(t, client.Upload(ctx, testSnapshot(), "token-1"))

	imp, err := client.Restore(ctx, "token-1")
	require.NoError(t, err)
	require.True(t, imp.HasSessions)
	assert.Equal(t, "Macau", imp.Sessions[0].Location)
	require.True(t, imp.HasHands)
}

func TestDriveClient_RestoreWithoutBackup(t *testing.T) {
	client, _ := newDriveFixture(t)

	_, err := client.Restore(context.Background(), "token-1")
	assert.ErrorIs(t, err, ErrNoBackup)
}
