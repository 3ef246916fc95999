package memory

import (
	"context"

	"brandpulse-srv/internal/brief/repository"
	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/paginator"
)

func (r *implBriefRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Brief, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.briefs = append(r.briefs, opts.Brief)
	if over := len(r.briefs) - r.capacity; over > 0 {
		r.briefs = append(r.briefs[:0:0], r.briefs[over:]...)
	}
	return opts.Brief, nil
}

func (r *implBriefRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Brief, paginator.Paginator, error) {
	r.mu.RLock()
	matched := make([]model.Brief, 0, len(r.briefs))
	for i := len(r.briefs) - 1; i >= 0; i-- {
		b := r.briefs[i]
		if opts.TrackerID != "" && b.TrackerID != opts.TrackerID {
			continue
		}
		matched = append(matched, b)
	}
	r.mu.RUnlock()

	start, end := opts.Paginate.Window(len(matched))
	page := matched[start:end]
	return page, paginator.New(opts.Paginate, len(matched), len(page)), nil
}
