package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	ferrors "git.home.luguber.info/inful/symdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/symdoc/internal/markdown"
	"git.home.luguber.info/inful/symdoc/internal/sourcelink"
)

// Validate checks cfg after defaults have been applied. Every problem found
// is reported; the result is a config-category classified error wrapping a
// multierror.
func Validate(cfg *Config) error {
	v := &validator{cfg: cfg}
	v.validateInputs()
	v.validateProject()
	v.validateRepository()
	v.validateRender()
	v.validateLogging()

	if err := v.errs.ErrorOrNil(); err != nil {
		return ferrors.ConfigError("invalid configuration").
			WithCause(err).
			WithContext("problems", v.errs.Len()).
			Build()
	}
	return nil
}

type validator struct {
	cfg  *Config
	errs *multierror.Error
}

func (v *validator) add(err error) {
	v.errs = multierror.Append(v.errs, err)
}

func (v *validator) addf(format string, args ...any) {
	v.add(fmt.Errorf(format, args...))
}

func (v *validator) validateInputs() {
	if strings.TrimSpace(v.cfg.Index) == "" {
		v.add(errors.New("index: path to the symbol index is required"))
	}
	if v.cfg.Homepage != "" && !isMarkdown(v.cfg.Homepage) {
		v.addf("homepage: %s is not a markdown file", v.cfg.Homepage)
	}

	stems := make(map[string]string, len(v.cfg.MarkdownPages))
	for _, p := range v.cfg.MarkdownPages {
		if !isMarkdown(p) {
			v.addf("markdown_pages: %s is not a markdown file", p)
			continue
		}
		stem := markdown.PageStem(p)
		if prev, ok := stems[stem]; ok {
			v.addf("markdown_pages: %s and %s would both be written to %s", prev, p, markdown.PageFileName(stem))
			continue
		}
		stems[stem] = p
	}
}

func (v *validator) validateProject() {
	if strings.TrimSpace(v.cfg.Project.Name) == "" {
		v.add(errors.New("project.name is required"))
	}
}

func (v *validator) validateRepository() {
	repo := v.cfg.Repository
	if _, err := sourcelink.ParseForge(repo.Forge); err != nil {
		v.addf("repository.forge: %w", err)
	}
	if repo.URL == "" {
		if repo.DefaultBranch != "" || repo.Forge != "" {
			v.add(errors.New("repository.url is required when repository.default_branch or repository.forge is set"))
		}
		return
	}
	if !strings.HasPrefix(repo.URL, "https://") && !strings.HasPrefix(repo.URL, "http://") {
		v.addf("repository.url: %s must be an http(s) URL", repo.URL)
	}
}

func (v *validator) validateRender() {
	if v.cfg.Workers < 0 {
		v.addf("workers: must not be negative, got %d", v.cfg.Workers)
	}
	if v.cfg.OutputDir == "" {
		v.add(errors.New("output_dir must not be empty"))
	}
}

func (v *validator) validateLogging() {
	if _, err := ParseLogLevel(string(v.cfg.Logging.Level)); err != nil {
		v.addf("logging.level: %w", err)
	}
	if _, err := ParseLogFormat(string(v.cfg.Logging.Format)); err != nil {
		v.addf("logging.format: %w", err)
	}
}

func isMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}
