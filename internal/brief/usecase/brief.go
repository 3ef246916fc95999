package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/brief"
	"brandpulse-srv/internal/brief/repository"
	"brandpulse-srv/internal/model"
	"brandpulse-srv/internal/tracker"
)

func (uc *implUseCase) List(ctx context.Context, input brief.ListInput) (brief.ListOutput, error) {
	opts := repository.ListOptions{
		TrackerID: strings.TrimSpace(input.TrackerID),
		Paginate:  input.Paginate,
	}
	opts.Paginate.Adjust()

	briefs, pag, err := uc.repo.List(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "brief.usecase.List: Failed to list briefs: %v", err)
		return brief.ListOutput{}, err
	}
	return brief.ListOutput{Briefs: briefs, Paginator: pag}, nil
}

func (uc *implUseCase) Generate(ctx context.Context, input brief.GenerateInput) (model.Brief, error) {
	id := strings.TrimSpace(input.TrackerID)
	if id == "" {
		return model.Brief{}, brief.ErrTrackerRequired
	}

	t, err := uc.trackers.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, tracker.ErrTrackerNotFound) {
			return model.Brief{}, brief.ErrTrackerNotFound
		}
		uc.l.Errorf(ctx, "brief.usecase.Generate: Failed to load tracker %s: %v", id, err)
		return model.Brief{}, err
	}

	return uc.generateFor(ctx, t)
}

func (uc *implUseCase) GenerateAll(ctx context.Context) (brief.GenerateAllOutput, error) {
	trackers, err := uc.trackers.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "brief.usecase.GenerateAll: Failed to load trackers: %v", err)
		return brief.GenerateAllOutput{}, err
	}

	var (
		mu  sync.Mutex
		out = brief.GenerateAllOutput{Trackers: len(trackers)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.config.Concurrency)

	for _, t := range trackers {
		g.Go(func() error {
			_, err := uc.generateFor(gctx, t)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				out.Failed++
				// One failing tracker must not stop the others; only cancellation aborts the run.
				if gctx.Err() != nil {
					return gctx.Err()
				}
				return nil
			}
			out.Generated++
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}

	uc.l.Infof(ctx, "brief.usecase.GenerateAll: Generated %d briefs for %d trackers, %d failed", out.Generated, out.Trackers, out.Failed)
	return out, nil
}

func (uc *implUseCase) generateFor(ctx context.Context, t model.Tracker) (model.Brief, error) {
	o, err := uc.analysis.Analyze(ctx, analysis.AnalyzeInput{
		Influencer: t.Influencer,
		Brand:      t.Brand,
		Platform:   t.Platform,
		Limit:      uc.config.PostLimit,
	})
	if err != nil {
		uc.l.Warnf(ctx, "brief.usecase.generateFor: Analyze failed for tracker %s: %v", t.ID, err)
		return model.Brief{}, err
	}

	b, err := uc.repo.Create(ctx, repository.CreateOptions{Brief: buildBrief(t, o, uuid.NewString(), uc.now().UTC())})
	if err != nil {
		uc.l.Errorf(ctx, "brief.usecase.generateFor: Failed to store brief for tracker %s: %v", t.ID, err)
		return model.Brief{}, err
	}
	return b, nil
}
