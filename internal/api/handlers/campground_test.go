package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"yelpcamp/internal/api/handlers"
	"yelpcamp/internal/api/middleware"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/mocks"
	"yelpcamp/internal/service"
	"yelpcamp/internal/testutils"
	"yelpcamp/internal/views"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CampgroundHandlerTestSuite defines the test suite for CampgroundHandler
type CampgroundHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCampgroundSv *mocks.MockCampgroundServiceInterface
	handler          *handlers.CampgroundHandler
	http             *testutils.HTTPTestSuite
}

func (suite *CampgroundHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCampgroundSv = mocks.NewMockCampgroundServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCampgroundHandler(suite.mockCampgroundSv)

	suite.http = testutils.SetupHTTPTest()
	router := suite.http.Router
	router.HTMLRender = views.MustNew()
	router.Use(middleware.ErrorHandler())
	router.GET("/campgrounds", suite.handler.Index)
	router.GET("/campgrounds/new", suite.handler.New)
	router.POST("/campgrounds", suite.handler.Create)
	router.GET("/campgrounds/:id", suite.handler.Show)
	router.GET("/campgrounds/:id/edit", suite.handler.Edit)
	router.PUT("/campgrounds/:id", suite.handler.Update)
	router.DELETE("/campgrounds/:id", suite.handler.Delete)
	suite.http.Handler = middleware.MethodOverride(router)
}

func (suite *CampgroundHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validForm() url.Values {
	return testutils.CampgroundForm("Lake Camp", "Tahoe, CA", "25", "https://images.example.com/lake.jpg", "On the shore")
}

func (suite *CampgroundHandlerTestSuite) TestIndex() {
	suite.mockCampgroundSv.EXPECT().ListCampgrounds(gomock.Any()).Return([]service.CampgroundResponse{
		{ID: "c1", Title: "Lake Camp"},
		{ID: "c2", Title: "Forest Camp"},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/campgrounds")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusOK, "All Campgrounds", "Lake Camp", "/campgrounds/c2")
}

func (suite *CampgroundHandlerTestSuite) TestIndex_StoreError() {
	suite.mockCampgroundSv.EXPECT().ListCampgrounds(gomock.Any()).Return(nil, errors.New("connection refused"))

	w := suite.http.MakeRequest(http.MethodGet, "/campgrounds")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusInternalServerError, "connection refused")
}

func (suite *CampgroundHandlerTestSuite) TestNew() {
	w := suite.http.MakeRequest(http.MethodGet, "/campgrounds/new")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusOK, `action="/campgrounds"`)
}

func (suite *CampgroundHandlerTestSuite) TestCreate_Redirects() {
	suite.mockCampgroundSv.EXPECT().
		CreateCampground(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *service.CampgroundInput) (*service.CampgroundResponse, error) {
			suite.Equal("Lake Camp", in.Title)
			suite.Require().NotNil(in.Price)
			suite.Equal(service.Price(25), *in.Price)
			return &service.CampgroundResponse{ID: "c1"}, nil
		})

	w := suite.http.MakeFormRequest(http.MethodPost, "/campgrounds", validForm())

	testutils.AssertRedirect(suite.T(), w, "/campgrounds/c1")
}

func (suite *CampgroundHandlerTestSuite) TestCreate_ValidationError() {
	suite.mockCampgroundSv.EXPECT().
		CreateCampground(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("", `"campground.title" is required`))

	form := validForm()
	form.Del("campground[title]")
	w := suite.http.MakeFormRequest(http.MethodPost, "/campgrounds", form)

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusBadRequest, "campground.title")
}

func (suite *CampgroundHandlerTestSuite) TestShow() {
	detail := &service.CampgroundDetailResponse{
		CampgroundResponse: service.CampgroundResponse{ID: "c1", Title: "Lake Camp", Price: 25},
		Reviews:            []service.ReviewResponse{{ID: "r1", Body: "Loved it", Rating: 5}},
		AverageRating:      5,
	}
	suite.mockCampgroundSv.EXPECT().GetCampgroundDetail(gomock.Any(), "c1").Return(detail, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/campgrounds/c1")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusOK, "Lake Camp", "Loved it", "$25.00/night")
}

func (suite *CampgroundHandlerTestSuite) TestShow_NotFound() {
	suite.mockCampgroundSv.EXPECT().GetCampgroundDetail(gomock.Any(), "missing").Return(nil, apperrors.ErrCampgroundNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/campgrounds/missing")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusNotFound, "campground not found")
}

func (suite *CampgroundHandlerTestSuite) TestEdit() {
	suite.mockCampgroundSv.EXPECT().GetCampground(gomock.Any(), "c1").Return(&service.CampgroundResponse{ID: "c1", Title: "Lake Camp"}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/campgrounds/c1/edit")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusOK, `action="/campgrounds/c1?_method=PUT"`)
}

func (suite *CampgroundHandlerTestSuite) TestEdit_NotFound() {
	suite.mockCampgroundSv.EXPECT().GetCampground(gomock.Any(), "c1").Return(nil, apperrors.ErrCampgroundNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/campgrounds/c1/edit")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CampgroundHandlerTestSuite) TestUpdate_ViaMethodOverride() {
	suite.mockCampgroundSv.EXPECT().
		UpdateCampground(gomock.Any(), "c1", gomock.Any()).
		Return(&service.CampgroundResponse{ID: "c1"}, nil)

	w := suite.http.MakeFormRequest(http.MethodPost, "/campgrounds/c1?_method=PUT", validForm())

	testutils.AssertRedirect(suite.T(), w, "/campgrounds/c1")
}

func (suite *CampgroundHandlerTestSuite) TestUpdate_NotFound() {
	suite.mockCampgroundSv.EXPECT().
		UpdateCampground(gomock.Any(), "c1", gomock.Any()).
		Return(nil, apperrors.ErrCampgroundNotFound)

	w := suite.http.MakeFormRequest(http.MethodPut, "/campgrounds/c1", validForm())

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CampgroundHandlerTestSuite) TestDelete_ViaMethodOverride() {
	suite.mockCampgroundSv.EXPECT().DeleteCampground(gomock.Any(), "c1").Return(nil)

	w := suite.http.MakeRequest(http.MethodPost, "/campgrounds/c1?_method=DELETE")

	testutils.AssertRedirect(suite.T(), w, "/campgrounds")
}

func (suite *CampgroundHandlerTestSuite) TestDelete_NotFound() {
	suite.mockCampgroundSv.EXPECT().DeleteCampground(gomock.Any(), "c1").Return(apperrors.ErrCampgroundNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/campgrounds/c1")

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusNotFound, "campground not found")
}

func TestCampgroundHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CampgroundHandlerTestSuite))
}

// validatingCampgroundRouter serves Create through the real service so form
// binding and validation run together. The repositories expect no calls.
func validatingCampgroundRouter(t *testing.T) *testutils.HTTPTestSuite {
	ctrl := gomock.NewController(t)
	v, err := service.NewValidator()
	require.NoError(t, err)
	svc := service.NewCampgroundService(
		mocks.NewMockCampgroundRepositoryInterface(ctrl),
		mocks.NewMockReviewRepositoryInterface(ctrl),
		v,
	)
	handler := handlers.NewCampgroundHandler(svc)

	h := testutils.SetupHTTPTest()
	h.Router.HTMLRender = views.MustNew()
	h.Router.Use(middleware.ErrorHandler())
	h.Router.POST("/campgrounds", handler.Create)
	return h
}

func TestCreate_UnparsedPriceReportedWithMissingFields(t *testing.T) {
	h := validatingCampgroundRouter(t)
	form := testutils.CampgroundForm("", "", "abc", "https://images.example.com/lake.jpg", "On the shore")

	w := h.MakeFormRequest(http.MethodPost, "/campgrounds", form)

	testutils.AssertHTMLResponse(t, w, http.StatusBadRequest,
		"campground.title&#34; is required",
		"campground.location&#34; is required",
		"campground.price&#34; must be a number",
	)
}

func TestCreate_BlankPriceRejectedBeforeStore(t *testing.T) {
	h := validatingCampgroundRouter(t)
	form := validForm()
	form.Set("campground[price]", "")

	w := h.MakeFormRequest(http.MethodPost, "/campgrounds", form)

	testutils.AssertHTMLResponse(t, w, http.StatusBadRequest, "campground.price&#34; must be a number")
}
