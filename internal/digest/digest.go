// Package digest runs the whole pipeline: read the query, outline every PDF,
// rank the sections and write the report.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thywilljoshua/pdf-digest/internal/ai"
	"github.com/thywilljoshua/pdf-digest/internal/cache"
	"github.com/thywilljoshua/pdf-digest/internal/outline"
	"github.com/thywilljoshua/pdf-digest/internal/pdftext"
	"github.com/thywilljoshua/pdf-digest/internal/persona"
	"github.com/thywilljoshua/pdf-digest/internal/rank"
	"github.com/thywilljoshua/pdf-digest/internal/report"
)

// extractorVersion is folded into cache fingerprints; bump it when token
// extraction changes.
const extractorVersion = "rsc-pdf/1"

// TokenSource produces the positioned words of every page of a PDF.
type TokenSource interface {
	Pages(path string) ([]outline.Page, error)
}

type Config struct {
	InputDir    string
	OutputDir   string
	PersonaFile string
	JobFile     string
	OutputName  string
	XLSX        bool

	Outline outline.Params
	Rank    rank.Params

	Enhancer ai.Enhancer
	Cache    *cache.Store
	Source   TokenSource
	Logger   *slog.Logger
	Now      func() time.Time
}

func (c *Config) fill() {
	c.Outline = c.Outline.WithDefaults()
	c.Rank = c.Rank.WithDefaults()
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Source == nil {
		c.Source = pdftext.Loader{Logger: c.Logger}
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Enhancer == nil {
		c.Enhancer = ai.Noop{}
	}
	if c.OutputName == "" {
		c.OutputName = "digest_output.json"
	}
}

type Result struct {
	Report     report.Report `json:"-"`
	OutputPath string        `json:"output_path"`
	XLSXPath   string        `json:"xlsx_path,omitempty"`
	RunID      string        `json:"run_id,omitempty"`
	Documents  int           `json:"documents"`
	Sections   int           `json:"sections"`
	Excerpts   int           `json:"excerpts"`
}

// Run executes the batch. Input problems are reported before any PDF is
// opened and leave the output directory untouched.
func Run(ctx context.Context, cfg Config) (Result, error) {
	cfg.fill()
	log := cfg.Logger

	personaText, job, err := LoadQuery(
		filepath.Join(cfg.InputDir, cfg.PersonaFile),
		filepath.Join(cfg.InputDir, cfg.JobFile),
	)
	if err != nil {
		return Result{}, err
	}
	paths, err := FindDocuments(cfg.InputDir)
	if err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Result{}, err
	}

	var runID string
	if cfg.Cache != nil {
		if runID, err = cfg.Cache.BeginRun(ctx, len(paths)); err != nil {
			log.Warn("digest.run.record_failed", "error", err)
		}
	}
	log.Info("digest.start", "run_id", runID, "documents", len(paths), "persona", personaText, "job", job)

	docs := make([]rank.Document, 0, len(paths))
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		o, err := BuildOutline(ctx, cfg, p)
		if err != nil {
			return Result{}, err
		}
		name := filepath.Base(p)
		names = append(names, name)
		docs = append(docs, rank.Document{Name: name, Outline: o})
	}

	q := rank.NewQuery(personaText, job)
	log.Info("digest.query", "keywords", strings.Join(q.Keywords.Sorted(), ","))
	ranked := rank.Rank(docs, q, cfg.Rank)
	prof := persona.Structure(ctx, cfg.Enhancer, personaText, job, log)
	rep := report.Build(names, prof, job, ranked, cfg.Now())

	res := Result{
		Report:     rep,
		OutputPath: filepath.Join(cfg.OutputDir, cfg.OutputName),
		RunID:      runID,
		Documents:  len(docs),
		Sections:   len(rep.ExtractedSections),
		Excerpts:   len(rep.SubSectionAnalysis),
	}
	if err := report.WriteJSON(res.OutputPath, rep); err != nil {
		return Result{}, fmt.Errorf("write report: %w", err)
	}
	if cfg.XLSX {
		res.XLSXPath = strings.TrimSuffix(res.OutputPath, filepath.Ext(res.OutputPath)) + ".xlsx"
		if err := report.WriteXLSX(res.XLSXPath, rep); err != nil {
			return Result{}, fmt.Errorf("write workbook: %w", err)
		}
	}
	if cfg.Cache != nil && runID != "" {
		if err := cfg.Cache.FinishRun(ctx, runID, res.Sections); err != nil {
			log.Warn("digest.run.record_failed", "run_id", runID, "error", err)
		}
	}

	log.Info("digest.done", "run_id", runID, "output", res.OutputPath,
		"sections", res.Sections, "excerpts", res.Excerpts)
	return res, nil
}

// BuildOutline outlines one PDF, going through the cache when one is set.
// A document without layout information yields an empty outline, not an
// error.
func BuildOutline(ctx context.Context, cfg Config, path string) (outline.DocumentOutline, error) {
	cfg.fill()
	log := cfg.Logger.With("document", filepath.Base(path))
	start := time.Now()

	var hash, fp string
	if cfg.Cache != nil {
		var err error
		if hash, err = cache.HashFile(path); err != nil {
			return outline.DocumentOutline{}, fmt.Errorf("hash %s: %w", path, err)
		}
		fp = fingerprint(cfg.Outline)
		o, ok, err := cfg.Cache.Get(ctx, hash, fp)
		if err != nil {
			log.Warn("digest.cache.get_failed", "error", err)
		} else if ok {
			log.Info("digest.document.ok", "cached", true, "title", o.Title, "sections", len(o.Sections))
			return o, nil
		}
	}

	pages, err := cfg.Source.Pages(path)
	if err != nil {
		return outline.DocumentOutline{}, fmt.Errorf("extract %s: %w", filepath.Base(path), err)
	}
	o, err := outline.Build(pages, cfg.Outline)
	if errors.Is(err, outline.ErrNoLayoutSignal) {
		log.Warn("digest.document.no_layout", "pages", len(pages))
		return outline.DocumentOutline{}, nil
	}
	if err != nil {
		return outline.DocumentOutline{}, fmt.Errorf("outline %s: %w", filepath.Base(path), err)
	}

	if cfg.Cache != nil {
		if err := cfg.Cache.Put(ctx, hash, fp, filepath.Base(path), o); err != nil {
			log.Warn("digest.cache.put_failed", "error", err)
		}
	}
	log.Info("digest.document.ok",
		"cached", false,
		"pages", len(pages),
		"title", o.Title,
		"sections", len(o.Sections),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return o, nil
}

func fingerprint(p outline.Params) string {
	return cache.Fingerprint(struct {
		Extractor string
		Outline   outline.Params
	}{extractorVersion, p})
}

// DocumentOutline pairs an outline with the file it came from.
type DocumentOutline struct {
	Document string `json:"document"`
	outline.DocumentOutline
}

// Outlines builds the outline of each path in order.
func Outlines(ctx context.Context, cfg Config, paths []string) ([]DocumentOutline, error) {
	cfg.fill()
	out := make([]DocumentOutline, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		o, err := BuildOutline(ctx, cfg, p)
		if err != nil {
			return nil, err
		}
		out = append(out, DocumentOutline{Document: filepath.Base(p), DocumentOutline: o})
	}
	return out, nil
}
