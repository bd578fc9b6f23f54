package repository_test

import (
	"context"
	"testing"
	"time"

	"lodge/infras/otel/mocks"
	"lodge/infras/postgres"
	"lodge/shared/dto"
	"lodge/shared/model"
	"lodge/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nightlyRate struct {
	RoomID string    `db:"room_id"`
	Date   time.Time `db:"date"`
	Price  float64   `db:"price"`
	model.Metadata
}

var rateColumns = []string{"room_id", "date", "price", "created_at", "modified_at", "created_by", "modified_by"}

func newRepository(t *testing.T) (repository.Repository[nightlyRate], sqlmock.Sqlmock, *[]string) {
	t.Helper()

	var queries []string

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherFunc(func(_, actual string) error {
		queries = append(queries, actual)

		return nil
	})))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	conn := sqlx.NewDb(db, "postgres")
	repo := repository.NewRepository[nightlyRate]("nightly_rate", "nightly_rates", "room_id", &postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel())

	return repo, mock, &queries
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock, queries := newRepository(t)

	mock.ExpectExec("upsert").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), nightlyRate{RoomID: "room-1", Date: time.Now(), Price: 650000}, "room_id", "date")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, *queries, 1)
	assert.Equal(t,
		"INSERT INTO nightly_rates (room_id, date, price, created_at, modified_at, created_by, modified_by) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (room_id, date) "+
			"DO UPDATE SET price = EXCLUDED.price, modified_at = EXCLUDED.modified_at, modified_by = EXCLUDED.modified_by",
		(*queries)[0],
	)
}

func TestRepository_GetAll_Sorting(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		contains string
		excludes string
	}{
		{
			name:     "known column",
			params:   dto.QueryParams{SortBy: "price", SortDir: "asc"},
			contains: "ORDER BY nightly_rates.price ASC",
		},
		{
			name:     "unknown direction falls back to descending",
			params:   dto.QueryParams{SortBy: "created_at", SortDir: "sideways"},
			contains: "ORDER BY nightly_rates.created_at DESC",
		},
		{
			name:     "unknown column is ignored",
			params:   dto.QueryParams{SortBy: "price; DROP TABLE rooms", SortDir: "ASC"},
			excludes: "ORDER BY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, queries := newRepository(t)

			mock.ExpectPrepare("select").ExpectQuery().WillReturnRows(sqlmock.NewRows(rateColumns))

			rates, err := repo.GetAll(context.Background(), tt.params, dto.FilterGroup{})
			require.NoError(t, err)
			assert.Empty(t, rates)

			require.NotEmpty(t, *queries)

			if tt.contains != "" {
				assert.Contains(t, (*queries)[0], tt.contains)
			}

			if tt.excludes != "" {
				assert.NotContains(t, (*queries)[0], tt.excludes)
			}
		})
	}
}

func TestRepository_Update_RequiresFilter(t *testing.T) {
	repo, mock, _ := newRepository(t)

	err := repo.Update(context.Background(), map[string]any{"price": 700000.0}, dto.FilterGroup{})

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_SortsColumns(t *testing.T) {
	repo, mock, queries := newRepository(t)

	mock.ExpectExec("update").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), map[string]any{"price": 700000.0, "modified_by": "revenue-manager"},
		dto.And(dto.Eq("nightly_rates", "room_id", "room-1")))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, *queries, 1)
	assert.Contains(t, (*queries)[0], "UPDATE nightly_rates SET modified_by = $1, price = $2")
}

func TestRepository_InsertBulk_Empty(t *testing.T) {
	repo, mock, queries := newRepository(t)

	require.NoError(t, repo.InsertBulk(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, *queries)
}

func TestRepository_Get_NoRows(t *testing.T) {
	repo, mock, _ := newRepository(t)

	mock.ExpectPrepare("select").ExpectQuery().WillReturnRows(sqlmock.NewRows(rateColumns))

	rate, err := repo.Get(context.Background(), dto.And(dto.Eq("nightly_rates", "room_id", "ghost")))
	require.NoError(t, err)

	assert.Empty(t, rate.RoomID)
}
