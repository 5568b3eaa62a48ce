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

// EducationHandlerIntegrationTestSuite defines test suite
type EducationHandlerIntegrationTestSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	router *gin.Engine
	token  string
}

// SetupSuite runs before all tests
func (s *EducationHandlerIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	educationRepo := repository.NewEducationRepository(s.testDB.DB)
	educationHandler := handler.NewEducationHandler(educationRepo)

	token, err := utils.GenerateToken(testAdminEmail, testJWTSecret, 1*time.Hour)
	s.Require().NoError(err)
	s.token = token

	s.router = gin.New()
	s.router.GET("/education", educationHandler.List)
	protected := s.router.Group("/", middleware.AuthMiddleware(testJWTSecret))
	protected.POST("/education", educationHandler.Create)
	protected.PUT("/education/:id", educationHandler.Update)
	protected.DELETE("/education/:id", educationHandler.Delete)
}

// TearDownSuite runs after all tests
func (s *EducationHandlerIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest runs before each test (clean database)
func (s *EducationHandlerIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

// TestCreateOngoingEducation tests that end_year may be omitted
func (s *EducationHandlerIntegrationTestSuite) TestCreateOngoingEducation() {
	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"institution": "Universitas Negeri Malang",
		"degree":      "S1",
		"start_year":  2021,
	})
	req, _ := http.NewRequest(http.MethodPost, "/education", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), "Universitas Negeri Malang", response["institution"])
	assert.Equal(s.T(), float64(2021), response["start_year"])
	assert.Nil(s.T(), response["end_year"])
}

// TestCreateRequiresStartYear tests start_year is mandatory
func (s *EducationHandlerIntegrationTestSuite) TestCreateRequiresStartYear() {
	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"institution": "Universitas Negeri Malang",
		"degree":      "S1",
	})
	req, _ := http.NewRequest(http.MethodPost, "/education", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateSetsEndYear tests closing an ongoing entry
func (s *EducationHandlerIntegrationTestSuite) TestUpdateSetsEndYear() {
	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"institution": "Universitas Negeri Malang",
		"degree":      "S1",
		"start_year":  2021,
	})
	req, _ := http.NewRequest(http.MethodPost, "/education", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusCreated, w.Code)

	var created map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	bodyBytes, _ = json.Marshal(map[string]interface{}{"end_year": 2025})
	req, _ = http.NewRequest(http.MethodPut, "/education/"+created["id"].(string), bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), float64(2025), response["end_year"])
	assert.Equal(s.T(), float64(2021), response["start_year"])
}

// TestUpdateClearsEndYear tests that an explicit null reopens an entry
func (s *EducationHandlerIntegrationTestSuite) TestUpdateClearsEndYear() {
	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"institution":    "Universitas Negeri Malang",
		"degree":         "S1",
		"start_year":     2021,
		"end_year":       2025,
		"field_of_study": "Informatika",
	})
	req, _ := http.NewRequest(http.MethodPost, "/education", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusCreated, w.Code)

	var created map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Require().Equal(float64(2025), created["end_year"])

	bodyBytes, _ = json.Marshal(map[string]interface{}{"end_year": nil})
	req, _ = http.NewRequest(http.MethodPut, "/education/"+created["id"].(string), bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(s.T(), response["end_year"])
	assert.Equal(s.T(), "Informatika", response["field_of_study"], "fields absent from the payload stay put")
}

// TestDeleteRequiresAuth tests anonymous deletes are rejected
func (s *EducationHandlerIntegrationTestSuite) TestDeleteRequiresAuth() {
	req, _ := http.NewRequest(http.MethodDelete, "/education/some-id", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

// TestSuite runs all tests in the suite
func TestEducationHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EducationHandlerIntegrationTestSuite))
}
