package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/CrestNiraj12/terminalwager/app"
	"github.com/CrestNiraj12/terminalwager/app/expiry"
	"github.com/CrestNiraj12/terminalwager/app/ranking"
	"github.com/CrestNiraj12/terminalwager/domain"
	"github.com/CrestNiraj12/terminalwager/infra/api"
	"github.com/CrestNiraj12/terminalwager/infra/auth"
	"github.com/CrestNiraj12/terminalwager/infra/config"
	"github.com/CrestNiraj12/terminalwager/infra/editor"
	"github.com/CrestNiraj12/terminalwager/infra/logging"
	"github.com/CrestNiraj12/terminalwager/tui"
	"github.com/CrestNiraj12/terminalwager/tui/feed"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

// cliOptions are the command-line overrides. Empty values leave the
// configuration untouched.
type cliOptions struct {
	mode        cliMode
	configPath  string
	apiURL      string
	category    string
	categorySet bool
	interests   string
}

func newFlagSet(opts *cliOptions) (*pflag.FlagSet, *bool, *bool) {
	fs := pflag.NewFlagSet("terminalwager", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	showVersion := fs.BoolP("version", "v", false, "print version information")
	showHelp := fs.BoolP("help", "h", false, "show this help")
	fs.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/terminalwager/config.yaml)")
	fs.StringVar(&opts.apiURL, "api", "", "API base URL")
	fs.StringVar(&opts.category, "category", "", "initial feed category")
	fs.StringVar(&opts.interests, "interests", "", "comma-separated categories to favor")
	return fs, showVersion, showHelp
}

func parseCLIArgs(args []string) (cliOptions, string) {
	var opts cliOptions
	if len(args) > 0 && args[0] == "help" {
		opts.mode = cliHelp
		return opts, ""
	}

	fs, showVersion, showHelp := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		opts.mode = cliInvalid
		return opts, err.Error()
	}
	switch {
	case *showVersion:
		opts.mode = cliVersion
	case *showHelp:
		opts.mode = cliHelp
	case fs.NArg() > 0:
		opts.mode = cliInvalid
		return opts, fmt.Sprintf("unexpected argument: %s", strings.Join(fs.Args(), " "))
	}
	opts.categorySet = fs.Changed("category")
	return opts, ""
}

func usage() string {
	var opts cliOptions
	fs, _, _ := newFlagSet(&opts)
	return "Usage: terminalwager [flags]\n\n" + fs.FlagUsages()
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

// applyOverrides layers command-line values over the loaded configuration.
func applyOverrides(cfg *config.Config, opts cliOptions) error {
	if opts.apiURL != "" {
		cfg.APIURL = opts.apiURL
	}
	if opts.categorySet {
		cfg.Category = opts.category
	}
	if opts.interests != "" {
		cfg.Interests = config.SplitList(opts.interests)
	}
	return cfg.Validate()
}

// initialCategory picks the flag, then the remembered tab, then the config.
func initialCategory(cfg config.Config, opts cliOptions, st config.UIState) string {
	if opts.categorySet || st.Category == "" {
		return cfg.Category
	}
	return st.Category
}

func main() {
	opts, msg := parseCLIArgs(os.Args[1:])
	switch opts.mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("TerminalWager %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "terminalwager: %v\n", err)
		if errors.Is(err, domain.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "Check TERMINALWAGER_TOKEN or the token file.")
		}
		os.Exit(1)
	}
}

func run(opts cliOptions) error {
	// 1. Load config: .env, file, environment, then flags.
	_ = godotenv.Load()
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// 2. Build infrastructure.
	client := api.NewClient(cfg.APIURL, auth.FromConfig(cfg.Token, cfg.TokenPath), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user, err := api.NewAccountService(client).CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("fetching current user: %w", err)
	}
	logger.Info("session started", "user_id", user.ID, "api", cfg.APIURL)

	// 3. Build services (concrete types satisfy app.* interfaces).
	predictions := api.NewPredictionService(client, user.ID)
	services := feed.Services{
		Predictions: predictions,
		Comments:    api.NewCommentService(client),
		Social:      api.NewSocialService(client),
		Reposts:     api.NewRepostService(client),
		Bookmarks:   api.NewBookmarkService(client),
		Likes:       api.NewLikeService(),
	}

	statePath, err := config.UIStatePath()
	if err != nil {
		return err
	}
	uiState, err := config.LoadUIState(statePath)
	if err != nil {
		logger.Warn("ignoring ui state", "err", err)
	}

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Feed: services,
		Session: app.Session{
			User:      user,
			Interests: ranking.Interests(cfg.Interests),
		},
		Editor: editor.NewEnvEditor(),
		Options: feed.Options{
			Category: initialCategory(cfg, opts, uiState),
			PageSize: cfg.PageSize,
		},
		UIStatePath: statePath,
	})

	// 5. Run, with the expiry check bound to the session.
	p := tea.NewProgram(rootModel, tea.WithAltScreen(), tea.WithContext(ctx))
	poller := expiry.NewPoller(predictions, cfg.PollInterval, logger, func(entities []domain.Entity) {
		p.Send(feed.ExpiredMsg{Entities: entities})
	})
	poller.Start(ctx)
	defer poller.Stop()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
