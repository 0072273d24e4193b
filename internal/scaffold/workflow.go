package scaffold

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/kars1996/create-kapp/internal/archive"
	"github.com/kars1996/create-kapp/internal/prompt"
	"github.com/kars1996/create-kapp/internal/terminal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	folderQuestion   = "Setup the project in (specify folder)...?"
	templateQuestion = "What scaffold do you want to start with?"

	successMessage = "Successfully set up project :D"
)

// Asker collects one validated answer per call.
type Asker interface {
	Ask(s prompt.Spec) (string, error)
}

// Source locates and downloads branch archives.
type Source interface {
	URL(owner, branch string) string
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Request holds the resolved inputs of one acquisition.
type Request struct {
	// TargetDir is absolute and must exist before extraction starts.
	TargetDir string
	Template  string
	Owner     string
	Branch    string
}

// Result describes a completed acquisition.
type Result struct {
	OutputDir string
	Template  string
	URL       string
	Files     []string
	Bytes     int
}

// Config wires a Workflow to its collaborators.
type Config struct {
	Prompt  Asker
	Output  terminal.Output
	Palette *terminal.Palette
	Source  Source
	Catalog *Catalog
	Owner   string
	Branch  string
	Logger  *zap.Logger
}

// Workflow runs the interactive setup once.
type Workflow struct {
	prompt  Asker
	out     terminal.Output
	palette *terminal.Palette
	source  Source
	catalog *Catalog
	owner   string
	branch  string
	logger  *zap.Logger
	printer *message.Printer
}

// New creates a Workflow from cfg. A nil Logger disables logging.
func New(cfg Config) *Workflow {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow{
		prompt:  cfg.Prompt,
		out:     cfg.Output,
		palette: cfg.Palette,
		source:  cfg.Source,
		catalog: cfg.Catalog,
		owner:   cfg.Owner,
		branch:  cfg.Branch,
		logger:  logger,
		printer: message.NewPrinter(language.English),
	}
}

// Run asks for the target folder and template, then downloads and extracts
// the starter archive. Any failure is reported to the user once and
// returned; the caller should exit non-zero.
func (w *Workflow) Run(ctx context.Context) error {
	folder, err := w.prompt.Ask(prompt.Spec{
		Kind:     prompt.Input,
		Question: folderQuestion,
		Validate: prompt.NotEmpty,
	})
	if err != nil {
		return w.fail("reading target folder", err)
	}

	dir, err := ResolvePath(folder)
	if err != nil {
		return w.fail("resolving target folder", err)
	}
	w.logger.Debug("target folder resolved", zap.String("input", folder), zap.String("path", dir))

	choice, err := w.prompt.Ask(prompt.Spec{
		Kind:     prompt.Input,
		Question: templateQuestion,
	})
	if err != nil {
		return w.fail("reading template", err)
	}

	id := w.catalog.Select(choice)
	if id != choice {
		w.logger.Debug("unknown template, using default",
			zap.String("choice", choice), zap.String("template", id))
	}

	if _, err := w.FetchAndExtract(ctx, Request{
		TargetDir: dir,
		Template:  id,
		Owner:     w.owner,
		Branch:    w.branch,
	}); err != nil {
		return w.fail("fetching template", err)
	}

	w.out.Println(w.palette.Success(successMessage))
	return nil
}

// FetchAndExtract downloads the branch archive for req and extracts every
// entry into req.TargetDir.
//
// The archive URL is built from the owner and branch only; req.Template does
// not select a different archive. That matches the published behavior of the
// tool and is kept until the intended mapping of templates to archives is
// settled.
func (w *Workflow) FetchAndExtract(ctx context.Context, req Request) (*Result, error) {
	if !filepath.IsAbs(req.TargetDir) {
		return nil, newPathError(req.TargetDir, "checking target directory", errors.New("path is not absolute"))
	}
	if info, err := os.Stat(req.TargetDir); err != nil {
		return nil, newPathError(req.TargetDir, "checking target directory", err)
	} else if !info.IsDir() {
		return nil, newPathError(req.TargetDir, "checking target directory", errors.New("not a directory"))
	}

	url := w.source.URL(req.Owner, req.Branch)
	w.logger.Debug("fetching template archive",
		zap.String("template", req.Template), zap.String("url", url))
	w.out.Println(w.palette.Info("∂ Downloading template " + req.Template + "..."))

	data, err := w.source.Fetch(ctx, url)
	if err != nil {
		var statusErr *archive.StatusError
		if errors.As(err, &statusErr) {
			return nil, newDownloadError(url, statusErr.StatusCode, err)
		}
		return nil, newDownloadError(url, 0, err)
	}

	w.out.Println(w.palette.Info("Extracting..."))
	zr, err := archive.Open(data)
	if err != nil {
		return nil, newArchiveError(err)
	}

	files, err := archive.ExtractAll(zr, req.TargetDir)
	if err != nil {
		return nil, newExtractionError(req.TargetDir, len(files), err)
	}

	w.out.Println(w.palette.Success("Download and extraction complete!") + " " +
		w.palette.Muted(w.printer.Sprintf("(%d files, %d bytes)", len(files), len(data))))

	return &Result{
		OutputDir: req.TargetDir,
		Template:  req.Template,
		URL:       url,
		Files:     files,
		Bytes:     len(data),
	}, nil
}

// fail prints the single failure report for err and returns it.
func (w *Workflow) fail(step string, err error) error {
	w.logger.Debug("scaffold step failed", zap.String("step", step), zap.Error(err))
	Report(w.out, w.palette, err)
	return err
}

// Report prints err as an error line followed by any remediation hints.
func Report(out terminal.Output, palette *terminal.Palette, err error) {
	out.Println(palette.Error("× " + err.Error()))
	for _, hint := range errors.GetAllHints(err) {
		out.Println(palette.Muted("  " + hint))
	}
}
