package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"brandpulse-srv/internal/model"
	"brandpulse-srv/internal/tracker"
	"brandpulse-srv/internal/tracker/repository"
)

func (uc *implUseCase) List(ctx context.Context, input tracker.ListInput) (tracker.ListOutput, error) {
	opts := repository.ListOptions{
		Brand:    strings.TrimSpace(input.Brand),
		Paginate: input.Paginate,
	}
	opts.Paginate.Adjust()
	if strings.TrimSpace(input.Platform) != "" {
		p, err := validatePlatform(input.Platform)
		if err != nil {
			return tracker.ListOutput{}, err
		}
		opts.Platform = p
	}

	trackers, pag, err := uc.repo.List(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "tracker.usecase.List: Failed to list trackers: %v", err)
		return tracker.ListOutput{}, err
	}
	return tracker.ListOutput{Trackers: trackers, Paginator: pag}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Tracker, error) {
	t, err := uc.repo.Detail(ctx, id)
	if err != nil {
		return model.Tracker{}, uc.mapRepoError(ctx, "Detail", id, err)
	}
	return t, nil
}

func (uc *implUseCase) Create(ctx context.Context, input tracker.CreateInput) (model.Tracker, error) {
	influencer, err := validateName(input.Influencer, tracker.ErrInvalidInfluencer)
	if err != nil {
		return model.Tracker{}, err
	}
	brand, err := validateName(input.Brand, tracker.ErrInvalidBrand)
	if err != nil {
		return model.Tracker{}, err
	}
	platform, err := validatePlatform(input.Platform)
	if err != nil {
		return model.Tracker{}, err
	}
	notes, err := validateNotes(input.Notes)
	if err != nil {
		return model.Tracker{}, err
	}

	t, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:         uuid.NewString(),
		Influencer: influencer,
		Brand:      brand,
		Platform:   platform,
		Notes:      notes,
		CreatedAt:  uc.now().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "tracker.usecase.Create: Failed to create tracker: %v", err)
		return model.Tracker{}, err
	}

	uc.l.Infof(ctx, "tracker.usecase.Create: Tracker %s created for %s/%s", t.ID, t.Influencer, t.Brand)
	return t, nil
}

func (uc *implUseCase) Update(ctx context.Context, input tracker.UpdateInput) (model.Tracker, error) {
	current, err := uc.repo.Detail(ctx, input.ID)
	if err != nil {
		return model.Tracker{}, uc.mapRepoError(ctx, "Update", input.ID, err)
	}

	opts := repository.UpdateOptions{
		ID:         current.ID,
		Influencer: current.Influencer,
		Brand:      current.Brand,
		Platform:   current.Platform,
		Notes:      current.Notes,
		UpdatedAt:  uc.now().UTC(),
	}
	if input.Influencer != nil {
		if opts.Influencer, err = validateName(*input.Influencer, tracker.ErrInvalidInfluencer); err != nil {
			return model.Tracker{}, err
		}
	}
	if input.Brand != nil {
		if opts.Brand, err = validateName(*input.Brand, tracker.ErrInvalidBrand); err != nil {
			return model.Tracker{}, err
		}
	}
	if input.Platform != nil {
		if opts.Platform, err = validatePlatform(*input.Platform); err != nil {
			return model.Tracker{}, err
		}
	}
	if input.Notes != nil {
		if opts.Notes, err = validateNotes(*input.Notes); err != nil {
			return model.Tracker{}, err
		}
	}

	t, err := uc.repo.Update(ctx, opts)
	if err != nil {
		return model.Tracker{}, uc.mapRepoError(ctx, "Update", input.ID, err)
	}
	return t, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.mapRepoError(ctx, "Delete", id, err)
	}
	uc.l.Infof(ctx, "tracker.usecase.Delete: Tracker %s deleted", id)
	return nil
}

func (uc *implUseCase) All(ctx context.Context) ([]model.Tracker, error) {
	trackers, err := uc.repo.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "tracker.usecase.All: Failed to load trackers: %v", err)
		return nil, err
	}
	return trackers, nil
}

func (uc *implUseCase) mapRepoError(ctx context.Context, op, id string, err error) error {
	if errors.Is(err, repository.ErrTrackerNotFound) {
		return tracker.ErrTrackerNotFound
	}
	uc.l.Errorf(ctx, "tracker.usecase.%s: Failed on tracker %s: %v", op, id, err)
	return err
}
