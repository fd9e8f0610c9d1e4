package notionsync

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/jomei/notionapi"
	"golang.org/x/sync/errgroup"

	"github.com/devscope/devscope/models"
	"github.com/devscope/devscope/throttle"
)

const (
	DefaultBatchSize  = 5
	DefaultRetries    = 3
	DefaultRetryDelay = time.Second
)

type Options struct {
	DatabaseID string
	BatchSize  int
	Retries    int
	RetryDelay time.Duration
	Location   *time.Location
}

type Result struct {
	PageIDs []string
	Failed  []string
}

type Syncer struct {
	pages    PageCreator
	throttle throttle.Throttle
	clock    clock.Clock
	opts     Options
}

func NewSyncer(pages PageCreator, throttle throttle.Throttle, clock clock.Clock, opts Options) *Syncer {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	if opts.Location == nil {
		opts.Location = tokyo()
	}

	return &Syncer{
		pages:    pages,
		throttle: throttle,
		clock:    clock,
		opts:     opts,
	}
}

func tokyo() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

func splitIntoBatches(prs []models.MergedPullRequest, size int) [][]models.MergedPullRequest {
	var batches [][]models.MergedPullRequest
	for start := 0; start < len(prs); start += size {
		end := start + size
		if end > len(prs) {
			end = len(prs)
		}
		batches = append(batches, prs[start:end])
	}
	return batches
}

// Sync creates one page per pull request. Pages within a batch are created
// concurrently and batches run one after another. A page that still fails
// after its retries is reported and does not stop the other pages.
func (s *Syncer) Sync(ctx context.Context, logger lager.Logger, prs []models.MergedPullRequest) (Result, error) {
	logger = logger.Session("sync", lager.Data{
		"database":      s.opts.DatabaseID,
		"pull-requests": len(prs),
	})
	logger.Info("starting")

	batches := splitIntoBatches(prs, s.opts.BatchSize)
	result := Result{PageIDs: []string{}, Failed: []string{}}

	var failures *multierror.Error

	for i, batch := range batches {
		batchLogger := logger.Session("batch", lager.Data{
			"batch": fmt.Sprintf("%d/%d", i+1, len(batches)),
			"size":  len(batch),
		})

		ids := make([]string, len(batch))
		errs := make([]error, len(batch))

		var g errgroup.Group
		for j, pr := range batch {
			j, pr := j, pr
			g.Go(func() error {
				ids[j], errs[j] = s.createPage(ctx, batchLogger, pr)
				return nil
			})
		}
		g.Wait()

		if err := ctx.Err(); err != nil {
			logger.Error("failed", err)
			return result, err
		}

		created := 0
		for j, pr := range batch {
			if errs[j] != nil {
				failures = multierror.Append(failures, errs[j])
				result.Failed = append(result.Failed, pr.Key())
				continue
			}
			result.PageIDs = append(result.PageIDs, ids[j])
			created++
		}

		batchLogger.Info("complete", lager.Data{"created": created})
	}

	if failures != nil {
		logger.Error("failed", failures, lager.Data{"failed": len(result.Failed)})
		return result, failures
	}

	logger.Info("done", lager.Data{"pages": len(result.PageIDs)})
	return result, nil
}

func (s *Syncer) createPage(ctx context.Context, logger lager.Logger, pr models.MergedPullRequest) (string, error) {
	logger = logger.Session("create-page", lager.Data{"pr": pr.Key()})
	request := NewPageRequest(s.opts.DatabaseID, pr, s.opts.Location)

	var err error
	for attempt := 0; attempt <= s.opts.Retries; attempt++ {
		if attempt > 0 {
			logger.Info("retrying", lager.Data{"attempt": attempt, "error": err.Error()})
			if werr := s.sleep(ctx, s.opts.RetryDelay); werr != nil {
				return "", werr
			}
		}

		if werr := s.throttle.Wait(ctx); werr != nil {
			return "", werr
		}

		var page *notionapi.Page
		page, err = s.pages.Create(ctx, request)
		if err == nil {
			logger.Debug("created", lager.Data{"page": page.ID})
			return string(page.ID), nil
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if !retryable(err) {
			break
		}
	}

	logger.Error("failed", err)
	return "", fmt.Errorf("notion page for %s: %w", pr.Key(), err)
}

// retryable rejects client errors other than conflicts and rate limits.
func retryable(err error) bool {
	var apiErr *notionapi.Error
	if !errors.As(err, &apiErr) {
		return true
	}

	switch {
	case apiErr.Status == http.StatusConflict, apiErr.Status == http.StatusTooManyRequests:
		return true
	case apiErr.Status >= 400 && apiErr.Status < 500:
		return false
	}
	return true
}

func (s *Syncer) sleep(ctx context.Context, d time.Duration) error {
	timer := s.clock.NewTimer(d)
	select {
	case <-timer.C():
		return nil
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}
}
