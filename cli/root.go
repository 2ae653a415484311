// ABOUTME: Root cobra command and the runtime shared by every subcommand
// ABOUTME: Loads config, builds the logger and store, and opens the optional archive
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/harperreed/gigdesk/config"
	"github.com/harperreed/gigdesk/logging"
	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/storage"
	"github.com/harperreed/gigdesk/store"
)

// Version is reported by --version.
const Version = "0.1.0"

// App carries the runtime built before a subcommand runs.
type App struct {
	cfg     config.Config
	log     *logrus.Logger
	store   *store.Store
	archive *storage.Archive
	detach  func()

	// clock overrides the store clock; tests pin it.
	clock func() time.Time
	// copy replaces the system clipboard write.
	copy func(text string) error

	envFile  string
	logLevel string
	dataDir  string
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gigdesk",
		Short: "Freelance dashboard for bids, clients, projects and expenses",
		Long: `gigdesk tracks bids, a client pipeline, a project board, a contractor
roster, reusable snippets and expenses, and derives the dashboard figures
from them. Data lives in memory unless --data-dir (or GIGDESK_DATA_DIR)
points at an archive directory.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.logLevel, "log-level", "", "Log level: debug, info, warn, error, fatal (default from GIGDESK_LOG_LEVEL or warn)")
	flags.StringVar(&app.dataDir, "data-dir", "", "Archive directory; enables persistence (default from GIGDESK_DATA_DIR)")
	flags.StringVar(&app.envFile, "env-file", ".env", "Optional env file read before the environment")

	rootCmd.AddCommand(
		newDashboardCommand(app),
		newCRMCommand(app),
		newListCommand(app),
		newAddCommand(app),
		newMoveProjectCommand(app),
		newMarkWonCommand(app),
		newDeleteCommand(app),
		newProfileCommand(app),
		newProposeCommand(app),
		newCopySnippetCommand(app),
		newVizCommand(app),
		newTUICommand(app),
		newMCPCommand(app),
	)
	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure. It is called by main.main().
func Execute() {
	app := &App{}
	err := NewRootCommand(app).Execute()
	if cerr := app.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *App) open(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	a.cfg = cfg

	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log

	opts := []store.Option{store.WithLogger(log)}
	if a.clock != nil {
		opts = append(opts, store.WithClock(a.clock))
	}

	restored := false
	if cfg.StorageEnabled() {
		archive, err := storage.Open(cfg.DataDir, log)
		if err != nil {
			return err
		}
		snap, err := archive.Load()
		switch {
		case err == nil:
			opts = append(opts, store.WithSnapshot(snap))
			restored = true
		case errors.Is(err, storage.ErrNoArchive):
			log.WithField("dir", cfg.DataDir).Info("starting a new archive from sample data")
		default:
			_ = archive.Close()
			return fmt.Errorf("failed to restore archive: %w", err)
		}
		a.archive = archive
	}

	a.store = store.New(opts...)
	if !restored && cfg.UserName != "" {
		a.store.UpdateUserProfile(models.UserProfilePatch{Name: &cfg.UserName})
	}
	if a.archive != nil && cfg.AutoSave {
		a.detach = a.archive.Attach(a.store)
	}

	log.WithFields(logrus.Fields{
		"command":  cmd.CommandPath(),
		"archive":  cfg.DataDir,
		"restored": restored,
	}).Debug("runtime ready")
	return nil
}

// Close saves the final snapshot and releases the archive. It is safe to call
// when no archive was opened.
func (a *App) Close() error {
	if a.archive == nil {
		return nil
	}
	if a.detach != nil {
		a.detach()
		a.detach = nil
	}

	err := a.archive.Save(a.store.Snapshot())
	if err != nil {
		err = fmt.Errorf("failed to save archive: %w", err)
	}
	err = errors.Join(err, a.archive.Close())
	a.archive = nil
	return err
}

func (a *App) now() time.Time {
	if a.clock != nil {
		return a.clock()
	}
	return time.Now()
}
