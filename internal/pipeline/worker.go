package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/papermeta/internal/assemble"
	"github.com/dgallion1/papermeta/internal/config"
	"github.com/dgallion1/papermeta/internal/docstore"
	"github.com/dgallion1/papermeta/internal/extractor"
	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/scorer"
	"github.com/dgallion1/papermeta/internal/textnorm"
	"github.com/dgallion1/papermeta/internal/textsource"
)

// Worker processes a single document job: read, normalize, fan out
// the field extractors, join, score, assemble and store.
type Worker struct {
	store      *docstore.Store
	extractors []extractor.Extractor
	log        *slog.Logger
	stats      *PipelineStats
	cfg        config.Config
}

func NewWorker(store *docstore.Store, extractors []extractor.Extractor, log *slog.Logger, stats *PipelineStats, cfg config.Config) *Worker {
	return &Worker{
		store:      store,
		extractors: extractors,
		log:        log,
		stats:      stats,
		cfg:        cfg,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)
	started := time.Now()

	// Phase 1: Read raw text from the uploaded bytes.
	job.SetStatus(StatusReading, "reading")
	src, err := textsource.ForFile(job.Filename, w.cfg.PDFFallbackPdftotext)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "reading")
		return
	}
	raw, err := src.Text(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("text extraction failed", "error", err)
		job.AddError(fmt.Sprintf("read: %s", err))
		job.SetStatus(StatusFailed, "reading")
		return
	}

	// Phase 2: Normalize. An unreadable document fails the job here;
	// no metadata is produced.
	job.SetStatus(StatusNormalizing, "normalizing")
	doc, err := textnorm.Normalize(job.DocID, raw, w.cfg.MinTextLength)
	if err != nil {
		if errors.Is(err, meta.ErrUnreadableDocument) {
			log.Warn("unreadable document", "error", err)
		} else {
			log.Error("normalization failed", "error", err)
		}
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "normalizing")
		return
	}
	log.Info("normalized document", "pages", doc.PageCount(), "chars", len(doc.Text))

	// Phase 3: Run extractors with bounded concurrency and a join
	// barrier. A panicking extractor loses only its own field.
	job.SetStatus(StatusExtracting, "extracting")
	job.SetExtractorTotal(len(w.extractors))
	candidates := w.runExtractors(ctx, job, doc, log)

	// Phase 4: Score.
	job.SetStatus(StatusScoring, "scoring")
	conf := scorer.Score(candidates)
	job.SetFieldsScored(len(conf))

	// Phase 5: Assemble and store as one unit.
	md := assemble.Assemble(job.DocID, candidates)
	w.store.Put(job.DocID, docstore.Result{
		Metadata:   md,
		Confidence: conf,
		Sample:     doc.Sample(w.cfg.SampleMaxLength),
	})

	w.stats.Record(time.Since(started).Milliseconds())
	log.Info("extraction complete",
		"candidates", len(candidates),
		"fields_scored", len(conf),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	job.SetStatus(StatusCompleted, "done")
}

// runExtractors fans the extractors out over a semaphore-bounded pool
// and collects all candidates before returning. Candidate order
// follows the extractor priority listing regardless of completion
// order, so assembly tie-breaks stay deterministic.
func (w *Worker) runExtractors(ctx context.Context, job *Job, doc *textnorm.Document, log *slog.Logger) []meta.Candidate {
	results := make([][]meta.Candidate, len(w.extractors))
	done := make(chan int, len(w.extractors))
	sem := make(chan struct{}, w.cfg.MaxConcurrentExtract)

	for i, ex := range w.extractors {
		sem <- struct{}{}
		go func(i int, ex extractor.Extractor) {
			defer func() { <-sem }()
			defer func() {
				if r := recover(); r != nil {
					// Recovered locally: the field is omitted and
					// the rest of the document still extracts.
					log.Error("extractor panicked", "field", ex.Field(), "panic", r)
					job.AddError(fmt.Sprintf("extract %s: %v", ex.Field(), r))
				}
				done <- i
			}()
			results[i] = ex.Extract(doc)
		}(i, ex)
	}

	for range w.extractors {
		i := <-done
		job.IncrExtractorsRun(len(results[i]))
	}

	var all []meta.Candidate
	for _, cands := range results {
		all = append(all, cands...)
	}
	return all
}
