package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"brandpulse-srv/internal/model"
	"brandpulse-srv/internal/tracker/repository"
	"brandpulse-srv/pkg/paginator"
	pkgRedis "brandpulse-srv/pkg/redis"
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

	data, err := json.Marshal(t)
	if err != nil {
		return model.Tracker{}, err
	}

	_, err = r.redis.GetClient().TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, hashKey, t.ID, data)
		pipe.ZAdd(ctx, indexKey, goredis.Z{Score: float64(t.CreatedAt.UnixNano()), Member: t.ID})
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "tracker.repository.redis.Create: Failed to save tracker %s: %v", t.ID, err)
		return model.Tracker{}, err
	}
	return t, nil
}

func (r *implTrackerRepository) Detail(ctx context.Context, id string) (model.Tracker, error) {
	data, err := r.redis.GetClient().HGet(ctx, hashKey, id).Result()
	if err != nil {
		if pkgRedis.IsNil(err) {
			return model.Tracker{}, repository.ErrTrackerNotFound
		}
		r.l.Errorf(ctx, "tracker.repository.redis.Detail: Failed to read tracker %s: %v", id, err)
		return model.Tracker{}, err
	}

	var t model.Tracker
	if err := json.Unmarshal([]byte(data), &t); err != nil {
		return model.Tracker{}, fmt.Errorf("decode tracker %s: %w", id, err)
	}
	return t, nil
}

func (r *implTrackerRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Tracker, paginator.Paginator, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

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
	client := r.redis.GetClient()

	ids, err := client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		r.l.Errorf(ctx, "tracker.repository.redis.All: Failed to read index: %v", err)
		return nil, err
	}
	if len(ids) == 0 {
		return []model.Tracker{}, nil
	}

	values, err := client.HMGet(ctx, hashKey, ids...).Result()
	if err != nil {
		r.l.Errorf(ctx, "tracker.repository.redis.All: Failed to read trackers: %v", err)
		return nil, err
	}

	out := make([]model.Tracker, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// Index entry without a document.
			r.l.Warnf(ctx, "tracker.repository.redis.All: Missing document for tracker %s", ids[i])
			continue
		}
		var t model.Tracker
		if err := json.Unmarshal([]byte(s), &t); err != nil {
			r.l.Warnf(ctx, "tracker.repository.redis.All: Failed to decode tracker %s: %v", ids[i], err)
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *implTrackerRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Tracker, error) {
	client := r.redis.GetClient()

	var updated model.Tracker
	// A write to hashKey between HGet and EXEC aborts the transaction.
	txf := func(tx *goredis.Tx) error {
		data, err := tx.HGet(ctx, hashKey, opts.ID).Result()
		if err != nil {
			if pkgRedis.IsNil(err) {
				return repository.ErrTrackerNotFound
			}
			return err
		}

		var t model.Tracker
		if err := json.Unmarshal([]byte(data), &t); err != nil {
			return fmt.Errorf("decode tracker %s: %w", opts.ID, err)
		}
		t.Influencer = opts.Influencer
		t.Brand = opts.Brand
		t.Platform = opts.Platform
		t.Notes = opts.Notes
		t.UpdatedAt = opts.UpdatedAt

		next, err := json.Marshal(t)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, hashKey, t.ID, next)
			return nil
		})
		if err == nil {
			updated = t
		}
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := client.Watch(ctx, txf, hashKey)
		switch {
		case err == nil:
			return updated, nil
		case errors.Is(err, goredis.TxFailedErr):
			continue
		case errors.Is(err, repository.ErrTrackerNotFound):
			return model.Tracker{}, err
		default:
			r.l.Errorf(ctx, "tracker.repository.redis.Update: Failed to save tracker %s: %v", opts.ID, err)
			return model.Tracker{}, err
		}
	}

	r.l.Errorf(ctx, "tracker.repository.redis.Update: Tracker %s kept changing, gave up after %d attempts", opts.ID, maxUpdateAttempts)
	return model.Tracker{}, errUpdateConflict
}

func (r *implTrackerRepository) Delete(ctx context.Context, id string) error {
	var removed *goredis.IntCmd
	_, err := r.redis.GetClient().TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		removed = pipe.HDel(ctx, hashKey, id)
		pipe.ZRem(ctx, indexKey, id)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "tracker.repository.redis.Delete: Failed to delete tracker %s: %v", id, err)
		return err
	}
	if removed.Val() == 0 {
		return repository.ErrTrackerNotFound
	}
	return nil
}
