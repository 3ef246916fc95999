package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse-srv/internal/brief/repository"
	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/paginator"
)

func TestCreateList(t *testing.T) {
	repo := New(0)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := repo.Create(ctx, repository.CreateOptions{Brief: model.Brief{
			ID:        fmt.Sprintf("b-%d", i),
			TrackerID: fmt.Sprintf("t-%d", i%2),
		}})
		require.NoError(t, err)
	}

	page, pag, err := repo.List(ctx, repository.ListOptions{Paginate: paginator.PaginateQuery{Page: 1, Limit: 3}})
	require.NoError(t, err)
	assert.Equal(t, 4, pag.Total)
	require.Len(t, page, 3)
	assert.Equal(t, "b-3", page[0].ID)

	page, pag, err = repo.List(ctx, repository.ListOptions{TrackerID: "t-0", Paginate: paginator.PaginateQuery{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, 2, pag.Total)
	assert.Equal(t, []string{"b-2", "b-0"}, []string{page[0].ID, page[1].ID})
}

func TestCreate_EvictsOldest(t *testing.T) {
	repo := New(2)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, repository.CreateOptions{Brief: model.Brief{ID: fmt.Sprintf("b-%d", i)}})
		require.NoError(t, err)
	}

	page, pag, err := repo.List(ctx, repository.ListOptions{Paginate: paginator.PaginateQuery{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, 2, pag.Total)
	assert.Equal(t, []string{"b-2", "b-1"}, []string{page[0].ID, page[1].ID})
}
