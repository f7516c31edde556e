package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/plantnet/marketplace/internal/domain"
)

const usersNS = "plantNet.users"

func TestUserRepositoryGetByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, bson.D{
			{Key: "email", Value: "a@x.com"},
			{Key: "name", Value: "Ann"},
			{Key: "role", Value: "seller"},
			{Key: "status", Value: "Verified"},
			{Key: "timestamp", Value: int64(1700000000000)},
		}))

		user, err := repo.GetByEmail(context.Background(), "a@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, "a@x.com", user.Email)
		assert.Equal(mt, domain.RoleSeller, user.Role)
		assert.Equal(mt, domain.UserStatusVerified, user.Status)
		assert.Equal(mt, int64(1700000000000), user.Timestamp)
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		_, err := repo.GetByEmail(context.Background(), "ghost@x.com")
		assert.ErrorIs(mt, err, mongo.ErrNoDocuments)
	})
}

func TestUserRepositoryInsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, repo.Insert(context.Background(), &domain.User{Email: "a@x.com", Role: domain.RoleCustomer}))
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		err := repo.Insert(context.Background(), &domain.User{Email: "a@x.com"})
		assert.True(mt, mongo.IsDuplicateKeyError(err))
	})
}

func TestUserRepositoryListExcept(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("lists others", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch,
			bson.D{{Key: "email", Value: "b@x.com"}, {Key: "role", Value: "customer"}},
			bson.D{{Key: "email", Value: "c@x.com"}, {Key: "role", Value: "seller"}, {Key: "status", Value: "requested"}},
		))

		users, err := repo.ListExcept(context.Background(), "a@x.com")
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "c@x.com", users[1].Email)
		assert.Equal(mt, domain.UserStatusRequested, users[1].Status)
	})

	mt.Run("empty is not nil", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		users, err := repo.ListExcept(context.Background(), "a@x.com")
		require.NoError(mt, err)
		assert.NotNil(mt, users)
		assert.Empty(mt, users)
	})
}

func TestUserRepositorySetRole(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("updates", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.SetRole(context.Background(), "a@x.com", domain.RoleSeller, domain.UserStatusVerified)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Equal(mt, int64(1), res.ModifiedCount)
	})

	mt.Run("status only", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := repo.SetStatus(context.Background(), "ghost@x.com", domain.UserStatusRequested)
		require.NoError(mt, err)
		assert.Zero(mt, res.MatchedCount)
	})
}
