package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/moviefav/internal/config"
)

// CLI represents the complete command structure for the moviefav application
type CLI struct {
	// Global flags override config.yaml and the environment when set.
	APIKey         string `help:"OMDb API key (default: omdb.api_key or OMDB_API_KEY)"`
	BaseURL        string `help:"OMDb endpoint, e.g. a local mock-server"`
	StorageBackend string `help:"Favorites storage backend: sqlite, bolt, disk, redis or memory"`
	StoragePath    string `help:"Database file or directory for file-backed storage"`
	RedisURL       string `help:"Redis URL for the redis backend"`
	LogLevel       string `help:"Log level: debug, info, warn or error"`

	Search     SearchCmd     `cmd:"" help:"Search OMDb by title"`
	Show       ShowCmd       `cmd:"" help:"Show full details for an IMDb ID"`
	Fav        FavCmd        `cmd:"" help:"Manage favorite movies"`
	MockServer MockServerCmd `cmd:"" help:"Serve fixture records with the OMDb API shape"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(slog.LevelInfo)

	if err := config.Init(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := execute(os.Args[1:], os.Stdout); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func newParser(cli *CLI, out io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("moviefav"),
		kong.Description("Search OMDb and keep a local list of favorite movies."),
		kong.Writers(out, out),
		kong.UsageOnError(),
	)
}

// execute parses args against the current viper state and runs the selected command.
func execute(args []string, out io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli, out)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	updateGlobalConfig(&cli)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if level, ok := parseLevel(cfg.LogLevel); ok {
		initLogging(level)
	}

	return ctx.Run(newApp(cfg, out))
}

func updateGlobalConfig(cli *CLI) {
	overrides := map[string]string{
		config.KeyAPIKey:      cli.APIKey,
		config.KeyBaseURL:     cli.BaseURL,
		config.KeyBackend:     cli.StorageBackend,
		config.KeyStoragePath: cli.StoragePath,
		config.KeyRedisURL:    cli.RedisURL,
		config.KeyLogLevel:    cli.LogLevel,
	}
	for key, value := range overrides {
		if value != "" {
			viper.Set(key, value)
		}
	}
}

func parseLevel(s string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		slog.Warn("Ignoring invalid log level", "level", s)
		return slog.LevelInfo, false
	}
	return level, true
}

func initLogging(level slog.Level) {
	// Logs go to stderr so JSON and YAML output can be piped.
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
