//go:build integration

package mongo_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dtroode/gophtodo-server/internal/model"
	repo "github.com/dtroode/gophtodo-server/internal/repository/mongo"
)

var uri string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		panic(err)
	}
	uri = fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func strPtr(s string) *string { return &s }

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, uri, "todo_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, conn.Ping(ctx))

	accounts := repo.NewAccountRepository(conn)
	tasks := repo.NewTaskRepository(conn)

	var alID string

	t.Run("account_repository", func(t *testing.T) {
		alID, err = accounts.Create(ctx, model.Account{Username: "al", Email: "a@x.com", PasswordHash: "hash"})
		require.NoError(t, err)
		require.NotEmpty(t, alID)

		byEmail, err := accounts.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.Len(t, byEmail, 1)
		require.Equal(t, alID, byEmail[0].ID)

		byUsername, err := accounts.FindByUsername(ctx, "al")
		require.NoError(t, err)
		require.Len(t, byUsername, 1)

		none, err := accounts.FindByEmail(ctx, "nobody@x.com")
		require.NoError(t, err)
		require.Empty(t, none)

		_, err = accounts.Create(ctx, model.Account{Username: "al2", Email: "a@x.com", PasswordHash: "hash"})
		require.ErrorIs(t, err, model.ErrAlreadyExists)
		_, err = accounts.Create(ctx, model.Account{Username: "al", Email: "other@x.com", PasswordHash: "hash"})
		require.ErrorIs(t, err, model.ErrAlreadyExists)

		matched, err := accounts.Update(ctx, alID, model.AccountPatch{Email: strPtr("al@x.com")})
		require.NoError(t, err)
		require.EqualValues(t, 1, matched)

		got, err := accounts.GetByID(ctx, alID)
		require.NoError(t, err)
		require.Equal(t, "al", got.Username)
		require.Equal(t, "al@x.com", got.Email)
		require.Equal(t, "hash", got.PasswordHash)

		_, err = accounts.GetByID(ctx, primitive.NewObjectID().Hex())
		require.ErrorIs(t, err, model.ErrNotFound)
		_, err = accounts.GetByID(ctx, "garbage")
		require.ErrorIs(t, err, model.ErrNotFound)

		matched, err = accounts.Update(ctx, primitive.NewObjectID().Hex(), model.AccountPatch{Username: strPtr("x")})
		require.NoError(t, err)
		require.EqualValues(t, 0, matched)
	})

	t.Run("task_repository", func(t *testing.T) {
		require.NoError(t, tasks.Create(ctx, model.Task{OwnerID: alID, TaskID: 5, Title: "buy milk", Status: "pending"}))
		require.ErrorIs(t, tasks.Create(ctx, model.Task{OwnerID: alID, TaskID: 5, Title: "dup", Status: "pending"}), model.ErrAlreadyExists)

		other := primitive.NewObjectID().Hex()
		require.NoError(t, tasks.Create(ctx, model.Task{OwnerID: other, TaskID: 5, Title: "theirs", Status: "pending"}))

		matched, err := tasks.Update(ctx, alID, 5, model.TaskPatch{Status: strPtr("done")})
		require.NoError(t, err)
		require.EqualValues(t, 1, matched)

		list, err := tasks.ListByOwner(ctx, alID)
		require.NoError(t, err)
		require.Equal(t, []model.Task{{OwnerID: alID, TaskID: 5, Title: "buy milk", Status: "done"}}, list)

		matched, err = tasks.Update(ctx, primitive.NewObjectID().Hex(), 5, model.TaskPatch{Status: strPtr("hacked")})
		require.NoError(t, err)
		require.EqualValues(t, 0, matched)

		deleted, err := tasks.Delete(ctx, alID, 5)
		require.NoError(t, err)
		require.EqualValues(t, 1, deleted)

		deleted, err = tasks.Delete(ctx, alID, 5)
		require.NoError(t, err)
		require.EqualValues(t, 0, deleted)

		theirs, err := tasks.ListByOwner(ctx, other)
		require.NoError(t, err)
		require.Len(t, theirs, 1)
	})
}
