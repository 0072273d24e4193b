package cli

import (
	"net/http"
	"os"

	"github.com/kars1996/create-kapp/internal/archive"
	"github.com/kars1996/create-kapp/internal/branding"
	"github.com/kars1996/create-kapp/internal/config"
	"github.com/kars1996/create-kapp/internal/logging"
	"github.com/kars1996/create-kapp/internal/prompt"
	"github.com/kars1996/create-kapp/internal/scaffold"
	"github.com/kars1996/create-kapp/internal/terminal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` asks where to set up your project and which starter to use,
then downloads the starter archive and extracts it into that folder.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScaffold,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

func runScaffold(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	palette := terminal.NewPalette(w)
	out := terminal.NewConsole(w)

	if f, ok := w.(*os.File); ok {
		if err := terminal.Init(f); err != nil {
			scaffold.Report(out, palette, err)
			return err
		}
	}

	settings, err := config.Load()
	if err != nil {
		scaffold.Report(out, palette, err)
		return err
	}

	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		scaffold.Report(out, palette, err)
		return err
	}
	defer logger.Sync() //nolint:errcheck
	logger.Debug("starting",
		zap.String("version", buildVersion),
		zap.String("commit", buildCommit),
		zap.String("built", buildDate),
		zap.String("archive_host", settings.ArchiveHost),
	)
	if brandErr := branding.LoadError(); brandErr != nil {
		logger.Warn("embedded branding rejected, using defaults", zap.Error(brandErr))
	}

	catalog, err := scaffold.NewCatalog(branding.Templates()...)
	if err != nil {
		scaffold.Report(out, palette, err)
		return err
	}

	fetcher := archive.New(
		archive.WithHTTPClient(&http.Client{Timeout: settings.HTTPTimeout}),
		archive.WithHost(settings.ArchiveHost),
		archive.WithUserAgent(archive.UserAgent(branding.CLIName(), buildVersion)),
		archive.WithLogger(logger),
	)

	wf := scaffold.New(scaffold.Config{
		Prompt:  prompt.New(cmd.InOrStdin(), out, palette),
		Output:  out,
		Palette: palette,
		Source:  fetcher,
		Catalog: catalog,
		Owner:   branding.SourceOwner(),
		Branch:  branding.SourceBranch(),
		Logger:  logger,
	})
	return wf.Run(cmd.Context())
}
