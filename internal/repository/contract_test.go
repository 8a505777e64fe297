//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// storeContractSuite holds the behaviour both backends must share. The
// concrete suites below supply the repositories and an id generator.
type storeContractSuite struct {
	suite.Suite
	repos       *Repositories
	clean       func()
	unknownID   func() string
	campgrounds *testutils.CampgroundFactory
	reviews     *testutils.ReviewFactory
	ctx         context.Context
}

func (s *storeContractSuite) SetupTest() {
	s.clean()
	s.campgrounds = testutils.NewCampgroundFactory()
	s.reviews = testutils.NewReviewFactory()
	s.ctx = context.Background()
}

func (s *storeContractSuite) TearDownTest() {
	s.clean()
}

func (s *storeContractSuite) createCampground() *models.Campground {
	c := s.campgrounds.Create()
	s.Require().NoError(s.repos.Campgrounds.Create(s.ctx, c))
	s.Require().NotEmpty(c.ID)
	return c
}

func (s *storeContractSuite) createReview(rating int) *models.Review {
	r := s.reviews.Create()
	r.Rating = rating
	s.Require().NoError(s.repos.Reviews.Create(s.ctx, r))
	s.Require().NotEmpty(r.ID)
	return r
}

func (s *storeContractSuite) TestCreateAndGetByID() {
	created := s.createCampground()

	got, err := s.repos.Campgrounds.GetByID(s.ctx, created.ID)

	s.NoError(err)
	s.Equal(created.ID, got.ID)
	s.Equal(created.Title, got.Title)
	s.Equal(created.Location, got.Location)
	s.Equal(created.Description, got.Description)
	s.InDelta(created.Price, got.Price, 0.0001)
	s.Equal(created.Image, got.Image)
	s.Empty(got.ReviewIDs)
}

func (s *storeContractSuite) TestGetByIDNotFound() {
	got, err := s.repos.Campgrounds.GetByID(s.ctx, s.unknownID())

	s.ErrorIs(err, apperrors.ErrCampgroundNotFound)
	s.Nil(got)
}

func (s *storeContractSuite) TestGetByIDMalformed() {
	got, err := s.repos.Campgrounds.GetByID(s.ctx, "not-an-id")

	s.ErrorIs(err, apperrors.ErrCampgroundNotFound)
	s.Nil(got)
}

func (s *storeContractSuite) TestGetAllNewestFirst() {
	first := s.createCampground()
	time.Sleep(5 * time.Millisecond)
	second := s.createCampground()

	items, err := s.repos.Campgrounds.GetAll(s.ctx)

	s.NoError(err)
	s.Require().Len(items, 2)
	s.Equal(second.ID, items[0].ID)
	s.Equal(first.ID, items[1].ID)
}

func (s *storeContractSuite) TestGetAllEmpty() {
	items, err := s.repos.Campgrounds.GetAll(s.ctx)

	s.NoError(err)
	s.Empty(items)
}

func (s *storeContractSuite) TestUpdateKeepsReviews() {
	c := s.createCampground()
	r := s.createReview(5)
	s.Require().NoError(s.repos.Campgrounds.AddReview(s.ctx, c.ID, r.ID))

	c.Title = "Renamed"
	c.Price = 0
	c.ReviewIDs = nil
	s.Require().NoError(s.repos.Campgrounds.Update(s.ctx, c))

	got, err := s.repos.Campgrounds.GetByID(s.ctx, c.ID)
	s.NoError(err)
	s.Equal("Renamed", got.Title)
	s.Zero(got.Price)
	s.Equal([]string{r.ID}, got.ReviewIDs)
}

func (s *storeContractSuite) TestUpdateNotFound() {
	c := s.campgrounds.WithID(s.unknownID())

	err := s.repos.Campgrounds.Update(s.ctx, c)

	s.ErrorIs(err, apperrors.ErrCampgroundNotFound)
}

func (s *storeContractSuite) TestDeleteLeavesReviews() {
	c := s.createCampground()
	r := s.createReview(3)
	s.Require().NoError(s.repos.Campgrounds.AddReview(s.ctx, c.ID, r.ID))

	s.NoError(s.repos.Campgrounds.Delete(s.ctx, c.ID))

	_, err := s.repos.Campgrounds.GetByID(s.ctx, c.ID)
	s.ErrorIs(err, apperrors.ErrCampgroundNotFound)
	_, err = s.repos.Reviews.GetByID(s.ctx, r.ID)
	s.NoError(err)
}

func (s *storeContractSuite) TestDeleteNotFound() {
	s.ErrorIs(s.repos.Campgrounds.Delete(s.ctx, s.unknownID()), apperrors.ErrCampgroundNotFound)
}

func (s *storeContractSuite) TestAddReviewAppendsInOrder() {
	c := s.createCampground()
	r1 := s.createReview(1)
	r2 := s.createReview(2)

	s.NoError(s.repos.Campgrounds.AddReview(s.ctx, c.ID, r1.ID))
	s.NoError(s.repos.Campgrounds.AddReview(s.ctx, c.ID, r2.ID))

	got, err := s.repos.Campgrounds.GetByID(s.ctx, c.ID)
	s.NoError(err)
	s.Equal([]string{r1.ID, r2.ID}, got.ReviewIDs)
}

func (s *storeContractSuite) TestAddReviewUnknownCampground() {
	r := s.createReview(4)

	err := s.repos.Campgrounds.AddReview(s.ctx, s.unknownID(), r.ID)

	s.ErrorIs(err, apperrors.ErrCampgroundNotFound)
}

func (s *storeContractSuite) TestRemoveReview() {
	c := s.createCampground()
	r1 := s.createReview(1)
	r2 := s.createReview(2)
	s.Require().NoError(s.repos.Campgrounds.AddReview(s.ctx, c.ID, r1.ID))
	s.Require().NoError(s.repos.Campgrounds.AddReview(s.ctx, c.ID, r2.ID))

	removed, err := s.repos.Campgrounds.RemoveReview(s.ctx, c.ID, r1.ID)
	s.NoError(err)
	s.True(removed)

	got, err := s.repos.Campgrounds.GetByID(s.ctx, c.ID)
	s.NoError(err)
	s.Equal([]string{r2.ID}, got.ReviewIDs)

	// a second pull finds nothing
	removed, err = s.repos.Campgrounds.RemoveReview(s.ctx, c.ID, r1.ID)
	s.NoError(err)
	s.False(removed)
}

func (s *storeContractSuite) TestRemoveReviewUnknownCampground() {
	removed, err := s.repos.Campgrounds.RemoveReview(s.ctx, s.unknownID(), s.unknownID())

	s.ErrorIs(err, apperrors.ErrCampgroundNotFound)
	s.False(removed)
}

func (s *storeContractSuite) TestRemoveReviewMalformedReviewID() {
	c := s.createCampground()

	removed, err := s.repos.Campgrounds.RemoveReview(s.ctx, c.ID, "nope")

	s.NoError(err)
	s.False(removed)
}

func (s *storeContractSuite) TestReviewGetByIDsOrdered() {
	r1 := s.createReview(1)
	r2 := s.createReview(2)
	r3 := s.createReview(3)

	got, err := s.repos.Reviews.GetByIDs(s.ctx, []string{r3.ID, s.unknownID(), r1.ID, r2.ID})

	s.NoError(err)
	s.Require().Len(got, 3)
	s.Equal(r3.ID, got[0].ID)
	s.Equal(r1.ID, got[1].ID)
	s.Equal(r2.ID, got[2].ID)
}

func (s *storeContractSuite) TestReviewGetByIDsEmpty() {
	got, err := s.repos.Reviews.GetByIDs(s.ctx, nil)

	s.NoError(err)
	s.Empty(got)
}

func (s *storeContractSuite) TestReviewDelete() {
	r := s.createReview(5)

	s.NoError(s.repos.Reviews.Delete(s.ctx, r.ID))
	s.ErrorIs(s.repos.Reviews.Delete(s.ctx, r.ID), apperrors.ErrReviewNotFound)

	_, err := s.repos.Reviews.GetByID(s.ctx, r.ID)
	s.ErrorIs(err, apperrors.ErrReviewNotFound)
}

func (s *storeContractSuite) TestDeleteAll() {
	s.createCampground()
	s.createCampground()
	s.createReview(1)

	n, err := s.repos.Campgrounds.DeleteAll(s.ctx)
	s.NoError(err)
	s.Equal(int64(2), n)

	n, err = s.repos.Reviews.DeleteAll(s.ctx)
	s.NoError(err)
	s.Equal(int64(1), n)
}

// PostgresRepositoryTestSuite runs the contract against GORM
type PostgresRepositoryTestSuite struct {
	storeContractSuite
	baseTestSuite *testutils.BaseTestSuite
}

func (suite *PostgresRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	repos, err := New(suite.baseTestSuite.Store(), 5*time.Second)
	suite.Require().NoError(err)
	suite.repos = repos
	suite.clean = suite.baseTestSuite.CleanTestDB
	suite.unknownID = uuid.NewString
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}

// MongoRepositoryTestSuite runs the contract against MongoDB
type MongoRepositoryTestSuite struct {
	storeContractSuite
	mongoTestSuite *testutils.MongoTestSuite
}

func (suite *MongoRepositoryTestSuite) SetupSuite() {
	suite.mongoTestSuite = testutils.SetupMongoTestSuite(suite.T())
	repos, err := New(suite.mongoTestSuite.Store, 5*time.Second)
	suite.Require().NoError(err)
	suite.repos = repos
	suite.clean = suite.mongoTestSuite.CleanTestDB
	suite.unknownID = func() string { return primitive.NewObjectID().Hex() }
}

func TestMongoRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MongoRepositoryTestSuite))
}
