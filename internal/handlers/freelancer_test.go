package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rwidjojo/freelancer-directory-api/internal/dto"
	"github.com/rwidjojo/freelancer-directory-api/internal/models"
	"github.com/rwidjojo/freelancer-directory-api/internal/repository"
	"github.com/rwidjojo/freelancer-directory-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// FreelancerHandlerTestSuite defines the test suite for FreelancerHandler
type FreelancerHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *services.FreelancerService
	handler *FreelancerHandler
}

// SetupTest runs before each test
func (suite *FreelancerHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.Freelancer{},
		&models.Skillset{},
		&models.Hobby{},
		&models.FreelancerSkill{},
		&models.FreelancerHobby{},
	)
	suite.Require().NoError(err)

	skills := services.NewMasterService(repository.NewSkillsetRepository(suite.db), "skillset")
	hobbies := services.NewMasterService(repository.NewHobbyRepository(suite.db), "hobby")
	suite.service = services.NewFreelancerService(repository.NewFreelancerRepository(suite.db), skills, hobbies)
	suite.handler = NewFreelancerHandler(suite.service)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *FreelancerHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper: build a test context with optional JSON body
func (suite *FreelancerHandlerTestSuite) testContext(method, url string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func (suite *FreelancerHandlerTestSuite) setIDParam(c *gin.Context, id uuid.UUID) {
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
}

// Helper: create a freelancer through the service
func (suite *FreelancerHandlerTestSuite) createFreelancer(username, email string, skills, hobbies []string) *models.Freelancer {
	refs := func(names []string) []services.MasterRef {
		out := make([]services.MasterRef, len(names))
		for i, n := range names {
			out[i] = services.RefByName(n)
		}
		return out
	}

	f, err := suite.service.Create(services.FreelancerInput{
		Username:  username,
		Email:     email,
		SkillRefs: refs(skills),
		HobbyRefs: refs(hobbies),
	})
	suite.Require().NoError(err)
	return f
}

func (suite *FreelancerHandlerTestSuite) listFreelancers(query string) (dto.PagedResult[dto.FreelancerDTO], int) {
	c, w := suite.testContext("GET", "/api/v1/freelancers?"+query, nil)
	suite.handler.List(c)

	var result dto.PagedResult[dto.FreelancerDTO]
	if w.Code == http.StatusOK {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	}
	return result, w.Code
}

func (suite *FreelancerHandlerTestSuite) TestCreate_Success() {
	c, w := suite.testContext("POST", "/api/v1/freelancers", dto.FreelancerRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Skillsets: []string{"C#"},
		Hobbies:   []string{"Chess"},
	})

	suite.handler.Create(c)

	suite.Equal(http.StatusCreated, w.Code)

	var created dto.FreelancerDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.NotEqual(uuid.Nil, created.ID)
	suite.Equal("alice", created.Username)
	suite.Require().Len(created.Skillsets, 1)
	suite.Equal("C#", created.Skillsets[0].Name)
	suite.Require().Len(created.Hobbies, 1)
	suite.Equal("Chess", created.Hobbies[0].Name)
}

func (suite *FreelancerHandlerTestSuite) TestCreate_DuplicateUsername() {
	suite.createFreelancer("alice", "alice@example.com", nil, nil)

	c, w := suite.testContext("POST", "/api/v1/freelancers", dto.FreelancerRequest{
		Username: "alice",
		Email:    "alice2@example.com",
	})
	suite.handler.Create(c)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestCreate_DuplicateEmail() {
	suite.createFreelancer("alice", "alice@example.com", nil, nil)

	c, w := suite.testContext("POST", "/api/v1/freelancers", dto.FreelancerRequest{
		Username: "bob",
		Email:    "alice@example.com",
	})
	suite.handler.Create(c)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestCreate_InvalidEmail() {
	c, w := suite.testContext("POST", "/api/v1/freelancers", dto.FreelancerRequest{
		Username: "alice",
		Email:    "not-an-email",
	})
	suite.handler.Create(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestCreate_ReusesExistingMasterRecords() {
	suite.createFreelancer("alice", "alice@example.com", []string{"C#"}, nil)
	suite.createFreelancer("bob", "bob@example.com", []string{"c#"}, nil)

	var count int64
	suite.db.Model(&models.Skillset{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *FreelancerHandlerTestSuite) TestGet_NotFound() {
	c, w := suite.testContext("GET", "/api/v1/freelancers/x", nil)
	suite.setIDParam(c, uuid.New())

	suite.handler.Get(c)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestUpdate_Success() {
	f := suite.createFreelancer("alice", "alice@example.com", []string{"C#"}, nil)

	c, w := suite.testContext("PUT", "/api/v1/freelancers/x", dto.FreelancerRequest{
		Username:    "alice",
		Email:       "alice@example.com",
		PhoneNumber: "123",
	})
	suite.setIDParam(c, f.ID)
	suite.handler.Update(c)
	// Flush the pending body-less status; gin only does this inside Engine.handleHTTPRequest.
	c.Writer.WriteHeaderNow()

	suite.Equal(http.StatusNoContent, w.Code)

	updated, err := suite.service.Get(f.ID)
	suite.Require().NoError(err)
	suite.Equal("123", updated.PhoneNumber)
	// Skill omitted from the payload is detached
	suite.Empty(updated.SkillLinks)
}

func (suite *FreelancerHandlerTestSuite) TestUpdate_DuplicateUsername() {
	suite.createFreelancer("alice", "alice@example.com", nil, nil)
	bob := suite.createFreelancer("bob", "bob@example.com", nil, nil)

	c, w := suite.testContext("PUT", "/api/v1/freelancers/x", dto.FreelancerRequest{
		Username: "alice",
		Email:    "bob@example.com",
	})
	suite.setIDParam(c, bob.ID)
	suite.handler.Update(c)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestUpdate_NotFound() {
	c, w := suite.testContext("PUT", "/api/v1/freelancers/x", dto.FreelancerRequest{
		Username: "ghost",
		Email:    "ghost@example.com",
	})
	suite.setIDParam(c, uuid.New())
	suite.handler.Update(c)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestPatch_ArchiveAndUnarchive() {
	f := suite.createFreelancer("alice", "alice@example.com", nil, nil)

	archived := true
	c, w := suite.testContext("PATCH", "/api/v1/freelancers/x", dto.ArchiveRequest{IsArchived: &archived})
	suite.setIDParam(c, f.ID)
	suite.handler.Patch(c)
	c.Writer.WriteHeaderNow()
	suite.Equal(http.StatusNoContent, w.Code)

	result, code := suite.listFreelancers("")
	suite.Equal(http.StatusOK, code)
	suite.Equal(int64(0), result.TotalCount)

	result, code = suite.listFreelancers("includeArchived=true")
	suite.Equal(http.StatusOK, code)
	suite.Equal(int64(1), result.TotalCount)
	suite.Require().Len(result.Items, 1)
	suite.True(result.Items[0].IsArchived)
}

func (suite *FreelancerHandlerTestSuite) TestPatch_MissingField() {
	f := suite.createFreelancer("alice", "alice@example.com", nil, nil)

	c, w := suite.testContext("PATCH", "/api/v1/freelancers/x", map[string]interface{}{})
	suite.setIDParam(c, f.ID)
	suite.handler.Patch(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestPatch_NotFound() {
	archived := true
	c, w := suite.testContext("PATCH", "/api/v1/freelancers/x", dto.ArchiveRequest{IsArchived: &archived})
	suite.setIDParam(c, uuid.New())
	suite.handler.Patch(c)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestDelete_CascadesLinks() {
	f := suite.createFreelancer("alice", "alice@example.com", []string{"C#", "Go"}, []string{"Chess"})

	c, w := suite.testContext("DELETE", "/api/v1/freelancers/x", nil)
	suite.setIDParam(c, f.ID)
	suite.handler.Delete(c)
	c.Writer.WriteHeaderNow()
	suite.Equal(http.StatusNoContent, w.Code)

	var skillLinks, hobbyLinks int64
	suite.db.Model(&models.FreelancerSkill{}).Where("freelancer_id = ?", f.ID).Count(&skillLinks)
	suite.db.Model(&models.FreelancerHobby{}).Where("freelancer_id = ?", f.ID).Count(&hobbyLinks)
	suite.Equal(int64(0), skillLinks)
	suite.Equal(int64(0), hobbyLinks)

	c, w = suite.testContext("GET", "/api/v1/freelancers/x", nil)
	suite.setIDParam(c, f.ID)
	suite.handler.Get(c)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestDelete_NotFound() {
	c, w := suite.testContext("DELETE", "/api/v1/freelancers/x", nil)
	suite.setIDParam(c, uuid.New())
	suite.handler.Delete(c)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestList_Pagination() {
	for i := 0; i < 25; i++ {
		name := fmt.Sprintf("user%02d", i)
		suite.createFreelancer(name, name+"@example.com", nil, nil)
	}

	result, code := suite.listFreelancers("page=2&pageSize=10")
	suite.Equal(http.StatusOK, code)
	suite.Equal(int64(25), result.TotalCount)
	suite.Equal(3, result.TotalPages)
	suite.Require().Len(result.Items, 10)
	suite.Equal("user10", result.Items[0].Username)
	suite.Equal("user19", result.Items[9].Username)
}

func (suite *FreelancerHandlerTestSuite) TestList_TermSearch() {
	for i := 0; i < 15; i++ {
		name := fmt.Sprintf("match%02d", i)
		suite.createFreelancer(name, name+"@example.com", nil, nil)
	}
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("other%02d", i)
		suite.createFreelancer(name, name+"@example.com", nil, nil)
	}

	result, code := suite.listFreelancers("term=MATCH&page=2&pageSize=5")
	suite.Equal(http.StatusOK, code)
	suite.Equal(int64(15), result.TotalCount)
	suite.Equal(3, result.TotalPages)
	suite.Require().Len(result.Items, 5)
	for _, item := range result.Items {
		suite.Contains(item.Username, "match")
	}
}

func (suite *FreelancerHandlerTestSuite) TestList_SkillFilterSingleToken() {
	suite.createFreelancer("alice", "alice@example.com", []string{"C#"}, nil)
	suite.createFreelancer("bob", "bob@example.com", []string{"Go"}, nil)
	suite.createFreelancer("carol", "carol@example.com", []string{"JavaScript"}, nil)

	result, code := suite.listFreelancers("skill=c%23")
	suite.Equal(http.StatusOK, code)
	suite.Equal(int64(1), result.TotalCount)
	suite.Require().Len(result.Items, 1)
	suite.Equal("alice", result.Items[0].Username)

	// Single token is a substring match
	result, _ = suite.listFreelancers("skill=script")
	suite.Equal(int64(1), result.TotalCount)
	suite.Require().Len(result.Items, 1)
	suite.Equal("carol", result.Items[0].Username)
}

func (suite *FreelancerHandlerTestSuite) TestList_SkillFilterMultiTokenIsMembership() {
	suite.createFreelancer("alice", "alice@example.com", []string{"C#"}, nil)
	suite.createFreelancer("bob", "bob@example.com", []string{"Go"}, nil)
	suite.createFreelancer("carol", "carol@example.com", []string{"JavaScript"}, nil)

	// A freelancer needs only one of the listed skills, not all of them
	result, code := suite.listFreelancers("skill=c%23,go")
	suite.Equal(http.StatusOK, code)
	suite.Equal(int64(2), result.TotalCount)

	usernames := make([]string, len(result.Items))
	for i, item := range result.Items {
		usernames[i] = item.Username
	}
	assert.ElementsMatch(suite.T(), []string{"alice", "bob"}, usernames)
}

func (suite *FreelancerHandlerTestSuite) TestList_TermMetacharactersMatchLiterally() {
	suite.createFreelancer("a_b", "a_b@example.com", nil, nil)
	suite.createFreelancer("axb", "axb@example.com", nil, nil)

	// Underscore is a literal character, not a single-character wildcard
	result, code := suite.listFreelancers("term=a_b")
	suite.Equal(http.StatusOK, code)
	suite.Equal(int64(1), result.TotalCount)
	suite.Require().Len(result.Items, 1)
	suite.Equal("a_b", result.Items[0].Username)

	// A percent sign matches nothing when no name contains one
	result, code = suite.listFreelancers("term=%25")
	suite.Equal(http.StatusOK, code)
	suite.Equal(int64(0), result.TotalCount)
}

func (suite *FreelancerHandlerTestSuite) TestList_SkillFilterMetacharactersMatchLiterally() {
	suite.createFreelancer("alice", "alice@example.com", []string{"C#"}, nil)
	suite.createFreelancer("bob", "bob@example.com", []string{"Go"}, nil)

	result, code := suite.listFreelancers("skill=%25")
	suite.Equal(http.StatusOK, code)
	suite.Equal(int64(0), result.TotalCount)
}

func (suite *FreelancerHandlerTestSuite) TestCreate_ZeroMasterIDRejected() {
	c, w := suite.testContext("POST", "/api/v1/freelancers", dto.FreelancerRequest{
		Username:    "alice",
		Email:       "alice@example.com",
		SkillsetIDs: []uuid.UUID{uuid.Nil},
	})
	suite.handler.Create(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestUpdate_ZeroMasterIDRejected() {
	f := suite.createFreelancer("alice", "alice@example.com", nil, nil)

	c, w := suite.testContext("PUT", "/api/v1/freelancers/x", dto.FreelancerRequest{
		Username: "alice",
		Email:    "alice@example.com",
		HobbyIDs: []uuid.UUID{uuid.Nil},
	})
	suite.setIDParam(c, f.ID)
	suite.handler.Update(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *FreelancerHandlerTestSuite) TestList_HobbyFilter() {
	suite.createFreelancer("alice", "alice@example.com", nil, []string{"Chess"})
	suite.createFreelancer("bob", "bob@example.com", nil, []string{"Running"})

	result, code := suite.listFreelancers("hobby=chess")
	suite.Equal(http.StatusOK, code)
	suite.Equal(int64(1), result.TotalCount)
	suite.Require().Len(result.Items, 1)
	suite.Equal("alice", result.Items[0].Username)
}

func TestFreelancerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FreelancerHandlerTestSuite))
}
