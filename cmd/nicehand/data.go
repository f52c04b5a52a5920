package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/nicehand/nicehand/cmd/nicehand/shared"
	"github.com/nicehand/nicehand/internal/backup"
)

// ExportCmd writes the full snapshot to a JSON file
type ExportCmd struct {
	Output string `short:"o" help:"Output file (defaults to nicehand_backup_<date>.json)"`
}

func (c *ExportCmd) Run(cli *CLI) error {
	a, err := cli.openApp(cli.logger())
	if err != nil {
		return err
	}
	defer a.Close()

	path := c.Output
	if path == "" {
		path = backup.FileName(time.Now())
	}
	path = expandPath(path)

	if err := a.ExportTo(path); err != nil {
		return err
	}
	fmt.Printf("exported %d sessions and %d hands to %s\n",
		len(a.Tracker.History()), len(a.Ledger.Hands()), path)
	return nil
}

// ImportCmd replaces local data with a previously exported snapshot
type ImportCmd struct {
	Input string `arg:"" type:"path" help:"Snapshot file to import"`
}

func (c *ImportCmd) Run(cli *CLI) error {
	a, err := cli.openApp(cli.logger())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.ImportFile(expandPath(c.Input)); err != nil {
		return fmt.Errorf("%s: %w", a.T("backup.badImport"), err)
	}
	fmt.Printf("imported: %d sessions, %d hands\n",
		len(a.Tracker.History()), len(a.Ledger.Hands()))
	return nil
}

// BackupCmd groups the Google Drive operations
type BackupCmd struct {
	Upload  BackupUploadCmd  `cmd:"" help:"Upload the current snapshot to Drive"`
	Restore BackupRestoreCmd `cmd:"" help:"Download and apply the Drive backup"`
}

// BackupUploadCmd uploads the snapshot to the app folder on Drive
type BackupUploadCmd struct {
	Token string `required:"" help:"OAuth bearer token with drive.file scope"`
}

func (c *BackupUploadCmd) Run(cli *CLI) error {
	logger := cli.logger()
	a, err := cli.openApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := shared.SetupSignalHandler(logger)
	if err := a.BackupNow(ctx, c.Token); err != nil {
		return err
	}
	fmt.Printf("uploaded %s\n", backup.DriveFileName)
	return nil
}

// BackupRestoreCmd downloads the Drive backup and applies it locally
type BackupRestoreCmd struct {
	Token string `required:"" help:"OAuth bearer token with drive.file scope"`
}

func (c *BackupRestoreCmd) Run(cli *CLI) error {
	logger := cli.logger()
	a, err := cli.openApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := shared.SetupSignalHandler(logger)
	if err := a.RestoreFromDrive(ctx, c.Token); err != nil {
		if errors.Is(err, backup.ErrNoBackup) {
			return errors.New(a.T("backup.noFile"))
		}
		return err
	}
	fmt.Printf("restored: %d sessions, %d hands\n",
		len(a.Tracker.History()), len(a.Ledger.Hands()))
	return nil
}
