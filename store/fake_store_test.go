package store

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/tunemesh/tunemesh/errs"
	"github.com/tunemesh/tunemesh/model"
)

func TestFakeStoreDocumentBoundary(t *testing.T) {
	ctx := context.Background()
	s := NewFakeStore()

	user := &model.User{
		Id:        "u",
		Name:      "alice",
		Following: pq.StringArray{"v"},
	}
	require.NoError(t, s.SaveUser(ctx, user))

	// Mutating the caller's copy after the save must not leak into the
	// stored document.
	user.Following = append(user.Following, "w")
	user.Name = "mallory"

	stored, err := s.ResolveUserById(ctx, "u")
	require.NoError(t, err)
	require.Equal(t, "alice", stored.Name)
	require.Equal(t, []string{"v"}, []string(stored.Following))

	// Likewise for a resolved copy: each resolve hands out an independent
	// document.
	stored.Following = append(stored.Following, "x")
	again, err := s.ResolveUserById(ctx, "u")
	require.NoError(t, err)
	require.Equal(t, []string{"v"}, []string(again.Following))
}

func TestFakeStoreResolveUnknown(t *testing.T) {
	ctx := context.Background()
	s := NewFakeStore()

	_, err := s.ResolveUserById(ctx, "ghost")
	require.Error(t, err)
	require.True(t, errs.IsNotFound(err))
	require.Equal(t, "User not found.", err.Error())

	_, err = s.ResolvePostById(ctx, "ghost")
	require.Error(t, err)
	require.Equal(t, "Post not found.", err.Error())
}

func TestFakeStoreFindUserByName(t *testing.T) {
	ctx := context.Background()
	s := NewFakeStore()
	require.NoError(t, s.SaveUser(ctx, &model.User{Id: "u", Name: "alice"}))

	found, err := s.FindUserByName(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "u", found.Id)

	// A name miss is not an error, it is an absence.
	missing, err := s.FindUserByName(ctx, "bob")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestFakeStoreDeletePost(t *testing.T) {
	ctx := context.Background()
	s := NewFakeStore()
	require.NoError(t, s.SavePost(ctx, &model.Post{Id: "p", Poster: "u"}))

	require.NoError(t, s.DeletePostById(ctx, "p"))
	_, err := s.ResolvePostById(ctx, "p")
	require.True(t, errs.IsNotFound(err))

	// Deleting an absent row is a no-op, matching the SQL-backed store.
	require.NoError(t, s.DeletePostById(ctx, "p"))
}
