package remix

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"remix-gallery-server/modules/apperror"
	"remix-gallery-server/modules/common/storage"
	"remix-gallery-server/modules/gallery"
	"remix-gallery-server/modules/progress"
	"remix-gallery-server/modules/veo"
)

// Service - runs remix jobs end to end: prompt composition, generation,
// polling, download, storage, gallery insertion.
type Service struct {
	store        *gallery.Store
	registry     *Registry
	generator    veo.Generator
	downloader   veo.Downloader
	sink         storage.Sink
	publisher    progress.Publisher
	pollInterval time.Duration
}

// NewService - wire the orchestrator
func NewService(store *gallery.Store, registry *Registry, generator veo.Generator, downloader veo.Downloader, sink storage.Sink, publisher progress.Publisher, pollInterval time.Duration) *Service {
	if publisher == nil {
		publisher = progress.NopPublisher{}
	}
	return &Service{
		store:        store,
		registry:     registry,
		generator:    generator,
		downloader:   downloader,
		sink:         sink,
		publisher:    publisher,
		pollInterval: pollInterval,
	}
}

// ProcessJob - execute one queued job. Failures are classified and recorded
// on the registry; a failed job never leaves partial records in the gallery.
func (s *Service) ProcessJob(ctx context.Context, jobID string) {
	job, ok := s.registry.Get(jobID)
	if !ok {
		log.Printf("⚠️ Unknown remix job: %s", jobID)
		return
	}

	log.Printf("🎬 Processing remix job %s (count: %d, quality: %s)", jobID, job.Request.Count, job.Request.Quality)

	records, err := s.run(ctx, jobID, job.Request)
	if err != nil {
		detail := apperror.Classify(err)
		s.registry.Fail(jobID, detail)
		s.publish(jobID, "error", "failed", detail.Title)
		log.Printf("❌ Remix job %s failed (%s): %v", jobID, detail.Kind, err)
		return
	}

	// records only reach the gallery once every variation succeeded
	s.store.PrependBatch(records)

	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	s.registry.Complete(jobID, ids)
	s.publish(jobID, "completed", "completed", fmt.Sprintf("%d video(s) added to gallery", len(records)))
	log.Printf("✅ Remix job %s completed with %d video(s)", jobID, len(records))
}

// run - the generation pipeline for one job
func (s *Service) run(ctx context.Context, jobID string, req Request) ([]gallery.VideoRecord, error) {
	prompt := BuildPrompt(req.Description, req.Options, req.MaskActive, req.Instruction)

	s.setPhase(jobID, "generating", "Submitting generation request")
	op, err := s.generator.Submit(ctx, veo.SubmitRequest{
		Prompt:      prompt,
		Count:       req.Count,
		AspectRatio: req.AspectRatio,
	})
	if err != nil {
		return nil, err
	}

	// poll until the operation reports done; there is no timeout, only
	// server shutdown stops an operation that never finishes
	s.setPhase(jobID, "polling", "Waiting for generation to finish")
	for !op.Done {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.pollInterval):
		}
		op, err = s.generator.Refresh(ctx, op)
		if err != nil {
			return nil, err
		}
	}

	if len(op.Results) == 0 {
		return nil, apperror.ErrNoVideos
	}

	s.setPhase(jobID, "downloading", "Fetching generated videos")
	urls, err := s.fetchAll(ctx, op.Results)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	total := len(urls)
	records := make([]gallery.VideoRecord, 0, total)
	for i, url := range urls {
		records = append(records, gallery.VideoRecord{
			ID:          uuid.New().String(),
			Title:       fmt.Sprintf("Remix of %q (%d/%d)", req.Title, i+1, total),
			Description: req.Description,
			VideoURL:    url,
			CreatedAt:   now,
		})
	}
	return records, nil
}

// fetchAll - download and store every generated video concurrently. All
// results are collected before deciding the outcome; if any variation fails,
// the whole batch fails and the first error is returned.
func (s *Service) fetchAll(ctx context.Context, results []veo.Result) ([]string, error) {
	type outcome struct {
		idx int
		url string
		err error
	}

	ch := make(chan outcome, len(results))
	for i, res := range results {
		go func(i int, res veo.Result) {
			data, mime, err := s.downloader.Fetch(ctx, res)
			if err != nil {
				ch <- outcome{idx: i, err: err}
				return
			}
			url, err := s.sink.Save(data, mime, "remixes")
			ch <- outcome{idx: i, url: url, err: err}
		}(i, res)
	}

	urls := make([]string, len(results))
	var firstErr error
	for range results {
		out := <-ch
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			}
			continue
		}
		urls[out.idx] = out.url
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return urls, nil
}

func (s *Service) setPhase(jobID, phase, message string) {
	s.registry.SetPhase(jobID, phase)
	s.publish(jobID, "progress", phase, message)
}

func (s *Service) publish(jobID, eventType, phase, message string) {
	s.publisher.Publish(jobID, progress.Event{
		Type:    eventType,
		Phase:   phase,
		Message: message,
	})
}
