package routes_test

import (
	"context"
	"net/http"
	"testing"

	"yelpcamp/internal/api/routes"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/mocks"
	"yelpcamp/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type pingStore struct{}

func (pingStore) Driver() string                { return "mongo" }
func (pingStore) Ping(_ context.Context) error  { return nil }
func (pingStore) Close(_ context.Context) error { return nil }

type RoutesTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockCampground *mocks.MockCampgroundServiceInterface
	mockReview     *mocks.MockReviewServiceInterface
	http           *testutils.HTTPTestSuite
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCampground = mocks.NewMockCampgroundServiceInterface(suite.ctrl)
	suite.mockReview = mocks.NewMockReviewServiceInterface(suite.ctrl)

	router := routes.SetupRoutes(&routes.Services{
		Campgrounds: suite.mockCampground,
		Reviews:     suite.mockReview,
	}, pingStore{})

	suite.http = &testutils.HTTPTestSuite{Router: router, Handler: routes.NewHandler(router)}
}

func (suite *RoutesTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RoutesTestSuite) TestHome() {
	w := suite.http.MakeRequest(http.MethodGet, "/")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusOK, "Welcome to YelpCamp")
}

func (suite *RoutesTestSuite) TestUnknownRoute() {
	w := suite.http.MakeRequest(http.MethodGet, "/nope")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusNotFound, "Page not found")
	suite.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (suite *RoutesTestSuite) TestUnknownMethodOnKnownPath() {
	w := suite.http.MakeRequest(http.MethodPatch, "/campgrounds")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusNotFound, "Page not found")
}

func (suite *RoutesTestSuite) TestNewFormIsNotTreatedAsID() {
	w := suite.http.MakeRequest(http.MethodGet, "/campgrounds/new")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusOK, "New Campground")
}

func (suite *RoutesTestSuite) TestShowUnknownCampground() {
	suite.mockCampground.EXPECT().
		GetCampgroundDetail(gomock.Any(), "507f1f77bcf86cd799439011").
		Return(nil, apperrors.ErrCampgroundNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/campgrounds/507f1f77bcf86cd799439011")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusNotFound, "campground not found")
}

func (suite *RoutesTestSuite) TestMethodOverrideDeletesReview() {
	suite.mockReview.EXPECT().DeleteReview(gomock.Any(), "c1", "r1").Return(nil)

	w := suite.http.MakeRequest(http.MethodPost, "/campgrounds/c1/reviews/r1?_method=DELETE")

	testutils.AssertRedirect(suite.T(), w, "/campgrounds/c1")
}

func (suite *RoutesTestSuite) TestHealth() {
	w := suite.http.MakeRequest(http.MethodGet, "/health")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"status":"healthy"`)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
