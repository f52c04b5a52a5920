package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/nicehand/nicehand/cmd/nicehand/shared"
	"github.com/nicehand/nicehand/internal/app"
	"github.com/nicehand/nicehand/internal/config"
	"github.com/nicehand/nicehand/internal/i18n"
	"github.com/nicehand/nicehand/internal/store"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"Config file path" type:"path"`
	Debug   bool             `help:"Enable debug logging"`

	Track    TrackCmd    `cmd:"" help:"Open the interactive session tracker"`
	Log      LogCmd      `cmd:"" help:"Log an already-finished session"`
	Sessions SessionsCmd `cmd:"" help:"List recorded sessions"`
	Hands    HandsCmd    `cmd:"" help:"List recorded hands"`
	Stats    StatsCmd    `cmd:"" help:"Show aggregate statistics"`
	Export   ExportCmd   `cmd:"" help:"Export all data to a JSON file"`
	Import   ImportCmd   `cmd:"" help:"Import data from a JSON file"`
	Backup   BackupCmd   `cmd:"" help:"Google Drive backup operations"`
	Analyze  AnalyzeCmd  `cmd:"" help:"Request AI analysis for recorded hands"`
	Coach    CoachCmd    `cmd:"" help:"Chat with the AI poker coach"`
}

// openApp loads config, opens the store, and hydrates the aggregate.
// The caller owns the returned app and must Close it.
func (c *CLI) openApp(logger *log.Logger) (*app.App, error) {
	path := c.Config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if !c.Debug && cfg.UI.LogLevel != "" {
		if parsed, err := log.ParseLevel(cfg.UI.LogLevel); err == nil {
			logger.SetLevel(parsed)
		}
	}

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return nil, err
	}

	// Remember which UI settings the user has persisted before the
	// aggregate fills in defaults; config only seeds the gaps
	var probe string
	langSet, _ := st.Get(store.KeyLanguage, &probe)
	themeSet, _ := st.Get(store.KeyTheme, &probe)

	a := app.New(st, quartz.NewReal(), logger)
	if err := a.Load(); err != nil {
		st.Close()
		return nil, err
	}

	if err := seedFromConfig(a, cfg, langSet, themeSet); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// seedFromConfig applies config values the store does not override
func seedFromConfig(a *app.App, cfg *config.Config, langSet, themeSet bool) error {
	if a.Settings.APIKey == "" && cfg.AI.APIKey != "" {
		if err := a.SetAPIKey(cfg.AI.APIKey); err != nil {
			return err
		}
	}
	if a.Settings.DriveClientID == "" && cfg.Drive.ClientID != "" {
		if err := a.SetDriveClientID(cfg.Drive.ClientID); err != nil {
			return err
		}
	}
	if !langSet {
		if lang := i18n.Language(cfg.UI.Language); lang.Valid() {
			if err := a.SetLanguage(lang); err != nil {
				return err
			}
		}
	}
	if !themeSet && cfg.UI.Theme != "" {
		if err := a.SetTheme(cfg.UI.Theme); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) logger() *log.Logger {
	level := "warn"
	if c.Debug {
		level = "debug"
	}
	return shared.SetupLogger(level)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("nicehand"),
		kong.Description("Personal poker session and hand tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli),
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

// expandPath resolves ~ prefixes so file flags work from any shell
func expandPath(p string) string {
	if len(p) > 1 && p[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
