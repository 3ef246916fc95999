package memory

import (
	"context"
	"slices"

	"brandpulse-srv/internal/model"
	"brandpulse-srv/internal/tracker/repository"
	"brandpulse-srv/pkg/paginator"
)

func (r *implTrackerRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Tracker, error) {
	t := model.Tracker{
		ID:         opts.ID,
		Influencer: opts.Influencer,
		Brand:      opts.Brand,
		Platform:   opts.Platform,
		Notes:      opts.Notes,
		CreatedAt:  opts.CreatedAt,
		UpdatedAt:  opts.CreatedAt,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trackers[t.ID]; !ok {
		r.order = append(r.order, t.ID)
	}
	r.trackers[t.ID] = t
	return t, nil
}

func (r *implTrackerRepository) Detail(ctx context.Context, id string) (model.Tracker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trackers[id]
	if !ok {
		return model.Tracker{}, repository.ErrTrackerNotFound
	}
	return t, nil
}

func (r *implTrackerRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Tracker, paginator.Paginator, error) {
	all, _ := r.All(ctx)

	matched := make([]model.Tracker, 0, len(all))
	for _, t := range all {
		if opts.Match(t) {
			matched = append(matched, t)
		}
	}

	start, end := opts.Paginate.Window(len(matched))
	page := matched[start:end]
	return page, paginator.New(opts.Paginate, len(matched), len(page)), nil
}

func (r *implTrackerRepository) All(ctx context.Context) ([]model.Tracker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Tracker, 0, len(r.order))
	for _, id := range slices.Backward(r.order) {
		out = append(out, r.trackers[id])
	}
	return out, nil
}

func (r *implTrackerRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Tracker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trackers[opts.ID]
	if !ok {
		return model.Tracker{}, repository.ErrTrackerNotFound
	}
	t.Influencer = opts.Influencer
	t.Brand = opts.Brand
	t.Platform = opts.Platform
	t.Notes = opts.Notes
	t.UpdatedAt = opts.UpdatedAt
	r.trackers[t.ID] = t
	return t, nil
}

func (r *implTrackerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trackers[id]; !ok {
		return repository.ErrTrackerNotFound
	}
	delete(r.trackers, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}
