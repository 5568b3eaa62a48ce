package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/afitoip/portfolio-api/internal/handler"
	"github.com/afitoip/portfolio-api/internal/middleware"
	"github.com/afitoip/portfolio-api/internal/repository"
	"github.com/afitoip/portfolio-api/internal/testutil"
	"github.com/afitoip/portfolio-api/internal/utils"
	"github.com/afitoip/portfolio-api/pkg/logger"
)

// ProjectHandlerIntegrationTestSuite defines test suite
type ProjectHandlerIntegrationTestSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	router *gin.Engine
	token  string
}

// SetupSuite runs before all tests
func (s *ProjectHandlerIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	projectRepo := repository.NewProjectRepository(s.testDB.DB)
	projectHandler := handler.NewProjectHandler(projectRepo)

	token, err := utils.GenerateToken(testAdminEmail, testJWTSecret, 1*time.Hour)
	s.Require().NoError(err)
	s.token = token

	s.router = gin.New()
	s.router.GET("/projects", projectHandler.List)
	protected := s.router.Group("/", middleware.AuthMiddleware(testJWTSecret))
	protected.POST("/projects", projectHandler.Create)
	protected.PUT("/projects/:id", projectHandler.Update)
	protected.DELETE("/projects/:id", projectHandler.Delete)
}

// TearDownSuite runs after all tests
func (s *ProjectHandlerIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest runs before each test (clean database)
func (s *ProjectHandlerIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *ProjectHandlerIntegrationTestSuite) createProject(body map[string]interface{}) map[string]interface{} {
	bodyBytes, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

// TestCreateWithTechnologies tests the technology list survives the round trip
func (s *ProjectHandlerIntegrationTestSuite) TestCreateWithTechnologies() {
	created := s.createProject(map[string]interface{}{
		"title":        "Portfolio Site",
		"description":  "Personal site with an admin panel",
		"technologies": []string{"Go", "PostgreSQL", "React"},
		"github_url":   "https://github.com/example/portfolio",
	})

	assert.Equal(s.T(), "Portfolio Site", created["title"])
	assert.Equal(s.T(), []interface{}{"Go", "PostgreSQL", "React"}, created["technologies"])
	assert.Equal(s.T(), "https://github.com/example/portfolio", created["github_url"])
}

// TestCreateWithoutTechnologies tests technologies default to an empty list
func (s *ProjectHandlerIntegrationTestSuite) TestCreateWithoutTechnologies() {
	created := s.createProject(map[string]interface{}{
		"title":       "Tiny Tool",
		"description": "No stack worth naming",
	})

	technologies, ok := created["technologies"].([]interface{})
	assert.True(s.T(), ok, "technologies must serialize as a list, got %T", created["technologies"])
	assert.Empty(s.T(), technologies)
}

// TestCreateRejectsBadURL tests URL validation on the optional link fields
func (s *ProjectHandlerIntegrationTestSuite) TestCreateRejectsBadURL() {
	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"title":       "Portfolio Site",
		"description": "Personal site",
		"live_url":    "not a url",
	})
	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateReplacesTechnologies tests that sending technologies replaces the list wholesale
func (s *ProjectHandlerIntegrationTestSuite) TestUpdateReplacesTechnologies() {
	created := s.createProject(map[string]interface{}{
		"title":        "Portfolio Site",
		"description":  "Personal site",
		"technologies": []string{"Go"},
	})

	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"technologies": []string{"Rust", "SQLite"},
	})
	req, _ := http.NewRequest(http.MethodPut, "/projects/"+created["id"].(string), bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), []interface{}{"Rust", "SQLite"}, response["technologies"])
	assert.Equal(s.T(), "Portfolio Site", response["title"])
}

// TestUpdateClearsGithubURL tests that an explicit null removes the link
func (s *ProjectHandlerIntegrationTestSuite) TestUpdateClearsGithubURL() {
	created := s.createProject(map[string]interface{}{
		"title":       "Portfolio Site",
		"description": "Personal site",
		"github_url":  "https://github.com/example/portfolio",
	})

	bodyBytes, _ := json.Marshal(map[string]interface{}{"github_url": nil})
	req, _ := http.NewRequest(http.MethodPut, "/projects/"+created["id"].(string), bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(s.T(), response["github_url"])
	assert.Equal(s.T(), "Portfolio Site", response["title"])
}

// TestUpdateRejectsBadURL tests URL validation on the update path
func (s *ProjectHandlerIntegrationTestSuite) TestUpdateRejectsBadURL() {
	created := s.createProject(map[string]interface{}{
		"title":       "Portfolio Site",
		"description": "Personal site",
	})

	bodyBytes, _ := json.Marshal(map[string]interface{}{"live_url": "not a url"})
	req, _ := http.NewRequest(http.MethodPut, "/projects/"+created["id"].(string), bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), "live_url must be a valid URL", response["message"])
}

// TestMutationsRequireAuth tests write routes reject anonymous requests
func (s *ProjectHandlerIntegrationTestSuite) TestMutationsRequireAuth() {
	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"title":       "Portfolio Site",
		"description": "Personal site",
	})
	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

// TestSuite runs all tests in the suite
func TestProjectHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerIntegrationTestSuite))
}
