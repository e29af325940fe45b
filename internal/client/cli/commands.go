package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/resorg/internal/client/api"
	"github.com/iudanet/resorg/internal/client/feed"
	"github.com/iudanet/resorg/internal/client/folders"
	"github.com/iudanet/resorg/internal/client/iocli"
	"github.com/iudanet/resorg/internal/client/resources"
	"github.com/iudanet/resorg/internal/client/settings"
	"github.com/iudanet/resorg/internal/client/storage/boltdb"
	"github.com/iudanet/resorg/internal/config"
)

// BuildInfo версия сборки, задается через ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

type globalFlags struct {
	configPath string
	server     string
	feedURL    string
	dbPath     string
	logLevel   string
	timeout    time.Duration
}

// runtime собирает зависимости перед выполнением команды
type runtime struct {
	io      iocli.IO
	logOut  io.Writer
	cli     *Cli
	storage *boltdb.Storage
	flags   globalFlags
}

// Execute выполняет команду из args. Вывод команд идет в out, логи в stderr.
// База закрывается и при ошибке команды.
func Execute(ctx context.Context, info BuildInfo, out iocli.IO, args []string) error {
	return execute(ctx, &runtime{io: out, logOut: os.Stderr}, info, args)
}

func execute(ctx context.Context, rt *runtime, info BuildInfo, args []string) error {
	root := newRootCmd(rt, info)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if closeErr := rt.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func newRootCmd(rt *runtime, info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "resorg",
		Short: "Resource organizer client",
		Long: `resorg organizes links, code snippets and text notes in a folder tree
stored on a resorg server.

The last folder opened with 'resorg ls' is the current folder: add, edit,
mv, rm and fav print its resource list after the change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["offline"] == "true" {
				return nil
			}
			cfg, err := rt.loadConfig(cmd)
			if err != nil {
				return err
			}
			return rt.setup(cmd.Context(), cfg)
		},
	}
	root.SetOut(rt.io)
	root.SetErr(rt.logOut)

	pf := root.PersistentFlags()
	pf.StringVar(&rt.flags.configPath, "config", config.DefaultPath(), "path to config file")
	pf.StringVar(&rt.flags.server, "server", "", "server API base URL (default "+config.DefaultServerURL+")")
	pf.StringVar(&rt.flags.feedURL, "feed", "", "recommended resources feed URL")
	pf.StringVar(&rt.flags.dbPath, "db", "", "path to local database (default "+config.DefaultDBPath+")")
	pf.StringVar(&rt.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.DurationVar(&rt.flags.timeout, "timeout", 0, "HTTP request timeout (default 30s)")

	root.AddCommand(
		newLsCmd(rt),
		newMkdirCmd(rt),
		newAddCmd(rt),
		newEditCmd(rt),
		newShowCmd(rt),
		newMvCmd(rt),
		newRmCmd(rt),
		newFavCmd(rt),
		newFavoritesCmd(rt),
		newRecentsCmd(rt),
		newRecommendedCmd(rt),
		newDataSourceCmd(rt),
		newConfigCmd(rt),
		newVersionCmd(rt, info),
	)

	return root
}

// loadConfig: файл, затем окружение, затем явно заданные флаги
func (rt *runtime) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(rt.flags.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.Server.URL = rt.flags.server
	}
	if flags.Changed("feed") {
		cfg.Feed.URL = rt.flags.feedURL
	}
	if flags.Changed("db") {
		cfg.Storage.Path = rt.flags.dbPath
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = rt.flags.logLevel
	}
	if flags.Changed("timeout") {
		cfg.Server.Timeout = rt.flags.timeout.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (rt *runtime) setup(ctx context.Context, cfg *config.Config) error {
	logger, err := cfg.Logging.NewLogger(rt.logOut)
	if err != nil {
		return err
	}

	st, err := boltdb.New(ctx, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	rt.storage = st

	settingsService := settings.NewService(st, logger)
	apiClient := api.NewClient(cfg.Server.URL,
		api.WithTimeout(cfg.GetTimeout()),
		api.WithLogger(logger),
		api.WithHeaderSource(settingsService),
	)
	var recommended resources.RecommendationSource
	if cfg.Feed.URL != "" {
		recommended = feed.NewClient(cfg.Feed.URL, &http.Client{Timeout: cfg.GetTimeout()}, cfg.GetFeedTTL(), logger)
	}

	rt.cli = New(
		rt.io,
		folders.NewNavigator(apiClient, logger),
		resources.NewStore(apiClient, recommended, logger),
		settingsService,
		st,
		logger,
	)

	logger.Debug("client initialized", "server", cfg.Server.URL, "db", cfg.Storage.Path)
	return nil
}

func (rt *runtime) close() error {
	if rt.storage == nil {
		return nil
	}
	err := rt.storage.Close()
	rt.storage = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func newLsCmd(rt *runtime) *cobra.Command {
	var resume bool
	cmd := &cobra.Command{
		Use:   "ls [folder-id]",
		Short: "List subfolders and resources of a folder (root by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var folderID *string
			switch {
			case len(args) == 1:
				folderID = parseFolderArg(args[0])
			case resume:
				folderID = rt.cli.lastFolder(ctx)
			}
			return rt.cli.runList(ctx, folderID)
		},
	}
	cmd.Flags().BoolVar(&resume, "resume", false, "reopen the last opened folder")
	return cmd
}

func newMkdirCmd(rt *runtime) *cobra.Command {
	var parent string
	cmd := &cobra.Command{
		Use:   "mkdir <name>",
		Short: "Create a folder (in the current folder by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parentSet := cmd.Flags().Changed("parent")
			return rt.cli.runMkdir(cmd.Context(), args[0], parseFolderArg(parent), parentSet)
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "parent folder id (\"root\" for the root)")
	return cmd
}

func newAddCmd(rt *runtime) *cobra.Command {
	var opts addOptions
	var folder string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a resource (prompts for missing fields)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("folder") {
				opts.FolderSet = true
				opts.FolderID = parseFolderArg(folder)
			}
			return rt.cli.runAdd(cmd.Context(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&folder, "folder", "", "target folder id (\"root\" for the root, default: current folder)")
	f.StringVar(&opts.Name, "name", "", "resource name")
	f.StringVarP(&opts.Type, "type", "t", "", "resource type: url, code or text")
	f.StringVar(&opts.Value, "value", "", "URL, code or text")
	f.StringVar(&opts.ValueFile, "value-file", "", "read the value from a file")
	f.StringVarP(&opts.Description, "description", "d", "", "optional description")
	return cmd
}

func newEditCmd(rt *runtime) *cobra.Command {
	var name, description, typ, value string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a resource (prompts when no flags are given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts editOptions
			f := cmd.Flags()
			if f.Changed("name") {
				opts.Name = &name
			}
			if f.Changed("description") {
				opts.Description = &description
			}
			if f.Changed("type") {
				opts.Type = &typ
			}
			if f.Changed("value") {
				opts.Value = &value
			}
			return rt.cli.runEdit(cmd.Context(), args[0], opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "", "new name")
	f.StringVarP(&description, "description", "d", "", "new description")
	f.StringVarP(&typ, "type", "t", "", "new type: url, code or text")
	f.StringVar(&value, "value", "", "new value")
	return cmd
}

func newShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show resource details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.cli.runShow(cmd.Context(), args[0])
		},
	}
}

func newMvCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <id> [folder-id]",
		Short: "Move a resource to a folder (root when folder-id is omitted)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target *string
			if len(args) == 2 {
				target = parseFolderArg(args[1])
			}
			return rt.cli.runMove(cmd.Context(), args[0], target)
		},
	}
}

func newRmCmd(rt *runtime) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.cli.runDelete(cmd.Context(), args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newFavCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "fav <id>",
		Short: "Toggle the favorite flag of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.cli.runFav(cmd.Context(), args[0])
		},
	}
}

func newFavoritesCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorite resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.cli.runFavorites(cmd.Context())
		},
	}
}

func newRecentsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "recents",
		Short: "List recently added resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.cli.runRecents(cmd.Context())
		},
	}
}

func newRecommendedCmd(rt *runtime) *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "recommended",
		Short: "List recommended resources from the external feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.cli.runRecommended(cmd.Context(), refresh)
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "drop the cached feed and fetch it again")
	return cmd
}

func newDataSourceCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasource",
		Short: "Manage the server storage override",
	}

	var opts dataSourceOptions
	set := &cobra.Command{
		Use:   "set",
		Short: "Save a connection string and database name (prompts for missing values)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.cli.runDataSourceSet(cmd.Context(), opts)
		},
	}
	set.Flags().StringVar(&opts.DatabaseName, "database", "", "database name")
	set.Flags().BoolVar(&opts.Disabled, "disabled", false, "save without enabling")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the saved override",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.cli.runDataSourceShow(cmd.Context())
			},
		},
		set,
		&cobra.Command{
			Use:   "enable",
			Short: "Send the saved override with every request",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.cli.runDataSourceEnable(cmd.Context(), true)
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Keep the override but stop sending it",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.cli.runDataSourceEnable(cmd.Context(), false)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the saved override",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.cli.runDataSourceClear(cmd.Context())
			},
		},
	)

	return cmd
}

func newVersionCmd(rt *runtime, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"offline": "true"},
		Run: func(cmd *cobra.Command, args []string) {
			rt.io.Printf("resorg client\n")
			rt.io.Printf("Version:    %s\n", info.Version)
			rt.io.Printf("Build Date: %s\n", info.BuildDate)
			rt.io.Printf("Git Commit: %s\n", info.GitCommit)
		},
	}
}
