//go:build integration

package pgsql_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/SscSPs/auction_service/internal/apperrors"
	"github.com/SscSPs/auction_service/internal/core/domain"
	"github.com/SscSPs/auction_service/internal/core/services"
	"github.com/SscSPs/auction_service/internal/dto"
	"github.com/SscSPs/auction_service/internal/handlers"
	"github.com/SscSPs/auction_service/internal/middleware"
	"github.com/SscSPs/auction_service/internal/repositories/database/pgsql"
	"github.com/SscSPs/auction_service/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func migrationsURL() string {
	_, filename, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(filename), "..", "..", "..", "..")
	return "file://" + filepath.ToSlash(filepath.Join(root, "migrations"))
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "auctions",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/auctions?sslmode=disable", host, port.Port())

	require.NoError(t, database.RunMigrations(dsn, migrationsURL(), slog.Default()))

	pool, err := database.NewPgxPool(ctx, dsn, true)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestAuctionRepository_Postgres(t *testing.T) {
	pool := setupPostgres(t)
	repo := pgsql.NewRepositoryProvider(pool).AuctionRepo
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	newAuction := func(itemMake string, status domain.Status) domain.Auction {
		return domain.Auction{
			ID:         uuid.NewString(),
			Seller:     "Hemant",
			AuctionEnd: now.Add(24 * time.Hour),
			Status:     status,
			Timestamps: domain.NewTimestamps(now),
			Item: &domain.Item{
				ID: uuid.NewString(), Make: itemMake, Model: "M", Color: "Grey", Mileage: 10, Year: 2020,
			},
		}
	}

	ford := newAuction("Ford", domain.StatusLive)
	audi := newAuction("Audi", domain.StatusFinished)
	bmwLower := newAuction("bmw", domain.StatusLive)
	for _, a := range []domain.Auction{ford, audi, bmwLower} {
		n, err := repo.SaveAuction(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	}

	_, err := repo.SaveAuction(ctx, ford)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	list, err := repo.ListAuctions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Audi", "Ford", "bmw"}, []string{list[0].Item.Make, list[1].Item.Make, list[2].Item.Make})

	got, err := repo.FindAuctionByID(ctx, ford.ID)
	require.NoError(t, err)
	assert.Equal(t, ford.Item.ID, got.Item.ID)
	assert.True(t, got.CreatedAt.Equal(now))

	got.Item.Color = "Blue"
	got.Touch(now.Add(time.Minute))
	n, err := repo.UpdateAuction(ctx, *got)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.DeleteAuction(ctx, ford.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.FindAuctionByID(ctx, ford.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var items int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM items WHERE auction_id = $1", ford.ID).Scan(&items))
	assert.Zero(t, items)

	_, err = repo.FindAuctionByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAuctionHTTPScenario_Postgres(t *testing.T) {
	pool := setupPostgres(t)
	gin.SetMode(gin.TestMode)

	svc := services.NewAuctionService(pgsql.NewRepositoryProvider(pool).AuctionRepo)
	r := gin.New()
	handlers.RegisterAuctionRoutes(r.Group("/api", middleware.IdentityStub("Hemant")), svc)

	send := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := send(http.MethodPost, "/api/auctions", map[string]any{
		"make": "Ford", "model": "Mustang", "color": "Red", "mileage": 50000, "year": 2020,
		"reservePrice": 1000, "auctionEnd": time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.AuctionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, domain.StatusLive, created.Status)

	w = send(http.MethodPut, "/api/auctions/"+created.ID, map[string]any{"mileage": 60000, "year": 2020})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated dto.AuctionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Ford", updated.Make)
	assert.Equal(t, 60000, updated.Mileage)

	w = send(http.MethodDelete, "/api/auctions/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = send(http.MethodGet, "/api/auctions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
