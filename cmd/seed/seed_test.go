package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"testing"

	"yelpcamp/internal/mocks"
	"yelpcamp/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseSeedFile_BuiltIn(t *testing.T) {
	f, err := LoadSeedFile("")

	require.NoError(t, err)
	assert.NotEmpty(t, f.Campgrounds)
	assert.NotEmpty(t, f.Descriptors)
	assert.NotEmpty(t, f.Places)
	assert.NotEmpty(t, f.Cities)
	for _, c := range f.Campgrounds {
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Image)
	}
}

func TestParseSeedFile_Invalid(t *testing.T) {
	_, err := ParseSeedFile([]byte("campgrounds: [unterminated"))

	assert.Error(t, err)
}

func TestLoadSeedFile_Missing(t *testing.T) {
	_, err := LoadSeedFile("does-not-exist.yaml")

	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	f := &SeedFile{
		Image:       "img",
		Description: "desc",
		Descriptors: []string{"Misty"},
		Places:      []string{"Bay"},
		Cities:      []CityData{{City: "Boise", State: "Idaho"}},
	}

	got, err := f.Generate(3, rand.New(rand.NewPCG(1, 2)))

	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, c := range got {
		assert.Equal(t, "Misty Bay", c.Title)
		assert.Equal(t, "Boise, Idaho", c.Location)
		assert.GreaterOrEqual(t, c.Price, 10.0)
		assert.Less(t, c.Price, 30.0)
		assert.Equal(t, "img", c.Image)
	}
}

func TestGenerate_NeedsLists(t *testing.T) {
	_, err := (&SeedFile{}).Generate(1, rand.New(rand.NewPCG(1, 2)))

	assert.Error(t, err)
}

func TestGenerate_Zero(t *testing.T) {
	got, err := (&SeedFile{}).Generate(0, nil)

	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestSeeder_InsertKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCampgroundServiceInterface(ctrl)

	var calls atomic.Int32
	svc.EXPECT().
		CreateCampground(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *service.CampgroundInput) (*service.CampgroundResponse, error) {
			calls.Add(1)
			return &service.CampgroundResponse{ID: "id-" + strings.ToLower(in.Title)}, nil
		}).
		Times(3)

	s := NewSeeder(svc, nil, nil, 2)
	ids, err := s.Insert(context.Background(), []CampgroundData{
		{Title: "A", Price: 1}, {Title: "B", Price: 2}, {Title: "C", Price: 3},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"id-a", "id-b", "id-c"}, ids)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSeeder_InsertReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCampgroundServiceInterface(ctrl)
	svc.EXPECT().CreateCampground(gomock.Any(), gomock.Any()).Return(nil, errors.New("invalid"))

	s := NewSeeder(svc, nil, nil, 1)
	_, err := s.Insert(context.Background(), []CampgroundData{{Title: "Bad"}})

	assert.ErrorContains(t, err, `"Bad"`)
}

func TestSeeder_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	campgrounds := mocks.NewMockCampgroundRepositoryInterface(ctrl)
	reviews := mocks.NewMockReviewRepositoryInterface(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		reviews.EXPECT().DeleteAll(ctx).Return(int64(4), nil),
		campgrounds.EXPECT().DeleteAll(ctx).Return(int64(2), nil),
	)

	assert.NoError(t, NewSeeder(nil, campgrounds, reviews, 1).Reset(ctx))
}

func TestSeeder_ResetStopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	campgrounds := mocks.NewMockCampgroundRepositoryInterface(ctrl)
	reviews := mocks.NewMockReviewRepositoryInterface(ctrl)
	ctx := context.Background()

	reviews.EXPECT().DeleteAll(ctx).Return(int64(0), errors.New("boom"))

	assert.ErrorContains(t, NewSeeder(nil, campgrounds, reviews, 1).Reset(ctx), "delete reviews")
}
