package backup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
)

// DriveFileName is the single well-known backup file on Google Drive
const DriveFileName = "nicehand_backup.json"

// ErrNoBackup is returned by Restore when no backup file exists yet
var ErrNoBackup = errors.New("no backup file found on drive")

// DriveClient stores and retrieves the backup snapshot in Google
// Drive. The caller supplies a bearer token obtained via the external
// OAuth consent flow; the client never refreshes tokens itself.
type DriveClient struct {
	http   *resty.Client
	logger *log.Logger
}

// NewDriveClient creates a Drive client
func NewDriveClient(logger *log.Logger) *DriveClient {
	return &DriveClient{
		http:   resty.New().SetBaseURL("https://www.googleapis.com"),
		logger: logger.WithPrefix("drive"),
	}
}

// SetBaseURL overrides the API endpoint, used by tests
func (d *DriveClient) SetBaseURL(url string) {
	d.http.SetBaseURL(url)
}

type fileList struct {
	Files []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"files"`
}

// findFile returns the id of the well-known backup file, or "" when it
// does not exist
func (d *DriveClient) findFile(ctx context.Context, token string) (string, error) {
	var list fileList
	resp, err := d.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"q":      fmt.Sprintf("name = '%s' and trashed = false", DriveFileName),
			"fields": "files(id, name)",
			"spaces": "drive",
		}).
		SetResult(&list).
		Get("/drive/v3/files")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("drive file search returned %s", resp.Status())
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].ID, nil
}

// Upload writes the snapshot to the well-known file, creating it when
// absent and overwriting it when present
func (d *DriveClient) Upload(ctx context.Context, snap *Snapshot, token string) error {
	body, err := snap.Encode()
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	fileID, err := d.findFile(ctx, token)
	if err != nil {
		return fmt.Errorf("locating backup file: %w", err)
	}

	if fileID != "" {
		resp, err := d.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetQueryParam("uploadType", "media").
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Patch("/upload/drive/v3/files/" + fileID)
		if err != nil {
			return fmt.Errorf("updating backup file: %w", err)
		}
		if resp.IsError() {
			return fmt.Errorf("drive update returned %s", resp.Status())
		}
		d.logger.Info("backup updated", "file", DriveFileName)
		return nil
	}

	metadata := fmt.Sprintf(`{"name": %q, "mimeType": "application/json"}`, DriveFileName)
	resp, err := d.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("uploadType", "multipart").
		SetMultipartField("metadata", "", "application/json", strings.NewReader(metadata)).
		SetMultipartField("file", DriveFileName, "application/json", strings.NewReader(string(body))).
		Post("/upload/drive/v3/files")
	if err != nil {
		return fmt.Errorf("creating backup file: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("drive create returned %s", resp.Status())
	}
	d.logger.Info("backup created", "file", DriveFileName)
	return nil
}

// Restore downloads and parses the well-known backup file, returning
// ErrNoBackup when it does not exist
func (d *DriveClient) Restore(ctx context.Context, token string) (*Import, error) {
	fileID, err := d.findFile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("locating backup file: %w", err)
	}
	if fileID == "" {
		return nil, ErrNoBackup
	}

	resp, err := d.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("alt", "media").
		Get("/drive/v3/files/" + fileID)
	if err != nil {
		return nil, fmt.Errorf("downloading backup file: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("drive download returned %s", resp.Status())
	}

	imp, err := Parse(resp.Body())
	if err != nil {
		return nil, err
	}
	d.logger.Info("backup restored", "file", DriveFileName)
	return imp, nil
}
