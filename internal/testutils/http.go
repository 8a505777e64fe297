package testutils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router  *gin.Engine
	Handler http.Handler
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	return &HTTPTestSuite{
		Router: router,
	}
}

func (suite *HTTPTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	if suite.Handler != nil {
		suite.Handler.ServeHTTP(recorder, req)
	} else {
		suite.Router.ServeHTTP(recorder, req)
	}
	return recorder
}

// MakeRequest creates and executes a bodiless HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	return suite.serve(req)
}

// MakeFormRequest submits form as an urlencoded body, the way browsers post
// the campground and review forms
func (suite *HTTPTestSuite) MakeFormRequest(method, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return suite.serve(req)
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return suite.serve(req)
}

// AssertHTMLResponse asserts the status and that the page contains each fragment
func AssertHTMLResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, fragments ...string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")
	for _, f := range fragments {
		assert.Contains(t, recorder.Body.String(), f)
	}
}

// AssertRedirect asserts a 302 to location
func AssertRedirect(t *testing.T, recorder *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, location, recorder.Header().Get("Location"))
}

// CampgroundForm builds the urlencoded payload of the campground form
func CampgroundForm(title, location, price, image, description string) url.Values {
	form := url.Values{}
	form.Set("campground[title]", title)
	form.Set("campground[location]", location)
	form.Set("campground[price]", price)
	form.Set("campground[image]", image)
	form.Set("campground[description]", description)
	return form
}

// ReviewForm builds the urlencoded payload of the review form
func ReviewForm(rating, body string) url.Values {
	form := url.Values{}
	form.Set("review[rating]", rating)
	form.Set("review[body]", body)
	return form
}
