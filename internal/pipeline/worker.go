package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/refnote/internal/footnote"
	"github.com/dgallion1/refnote/internal/parser"
)

// Worker processes a single conversion job.
type Worker struct {
	log         *slog.Logger
	opts        footnote.Options
	pdfFallback bool
}

func NewWorker(log *slog.Logger, opts footnote.Options, pdfFallback bool) *Worker {
	return &Worker{
		log:         log,
		opts:        opts,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full conversion for a job: parse the uploaded file,
// convert references to footnotes, record the result on the job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "shutdown")
		return
	}

	// Phase 1: Parse.
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = w.pdfFallback
	}

	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.SetContentHash(ContentHashHex([]byte(doc.Text)))

	// Phase 2: Convert.
	job.SetStatus(StatusConverting, "converting")
	res, err := footnote.ConvertDocument(doc.Text, doc.Mode, w.opts)
	if err != nil {
		log.Error("conversion failed", "error", err)
		job.AddError(fmt.Sprintf("convert: %s", err))
		job.SetStatus(StatusFailed, "converting")
		return
	}

	job.SetResult(res.Text, len(res.Entries))
	job.SetStatus(StatusCompleted, "done")
	log.Info("conversion complete", "footnotes", len(res.Entries), "mode", doc.Mode)
}
