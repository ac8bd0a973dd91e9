package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/sanketgaikwad/portfolio-api/internal/application/service"
	"github.com/sanketgaikwad/portfolio-api/internal/application/store"
	authUC "github.com/sanketgaikwad/portfolio-api/internal/application/usecase/auth"
	suggestUC "github.com/sanketgaikwad/portfolio-api/internal/application/usecase/suggest"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/certification"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/contact"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/education"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/internship"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/profile"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/project"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/auth"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

// In-memory repositories backing a full router without Postgres.

type memProfileRepo struct{ p *profile.Profile }

func (m *memProfileRepo) Get(context.Context) (*profile.Profile, error) {
	if m.p == nil {
		return nil, apperror.NewNotFound("profile", "singleton")
	}
	cp := *m.p
	return &cp, nil
}
func (m *memProfileRepo) Upsert(_ context.Context, p *profile.Profile) error {
	cp := *p
	m.p = &cp
	return nil
}

type memEducationRepo struct{ items []education.Education }

func (m *memEducationRepo) Insert(_ context.Context, e education.Education) error {
	m.items = append(m.items, e)
	return nil
}
func (m *memEducationRepo) Update(_ context.Context, e education.Education) error {
	for i := range m.items {
		if m.items[i].ID == e.ID {
			m.items[i] = e
		}
	}
	return nil
}
func (m *memEducationRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}
func (m *memEducationRepo) List(context.Context) ([]education.Education, error) {
	return append([]education.Education(nil), m.items...), nil
}

type memInternshipRepo struct{ items []internship.Internship }

func (m *memInternshipRepo) Insert(_ context.Context, i internship.Internship) error {
	m.items = append(m.items, i)
	return nil
}
func (m *memInternshipRepo) Update(_ context.Context, it internship.Internship) error {
	for i := range m.items {
		if m.items[i].ID == it.ID {
			m.items[i] = it
		}
	}
	return nil
}
func (m *memInternshipRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}
func (m *memInternshipRepo) List(context.Context) ([]internship.Internship, error) {
	return append([]internship.Internship(nil), m.items...), nil
}

type memProjectRepo struct{ items []project.Project }

func (m *memProjectRepo) Insert(_ context.Context, p project.Project) error {
	m.items = append(m.items, p)
	return nil
}
func (m *memProjectRepo) Update(_ context.Context, p project.Project) error {
	for i := range m.items {
		if m.items[i].ID == p.ID {
			m.items[i] = p
		}
	}
	return nil
}
func (m *memProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}
func (m *memProjectRepo) List(_ context.Context, ongoing bool) ([]project.Project, error) {
	out := make([]project.Project, 0)
	for _, p := range m.items {
		if p.Ongoing == ongoing {
			out = append(out, p)
		}
	}
	return out, nil
}

type memCertificationRepo struct{ items []certification.Certification }

func (m *memCertificationRepo) Insert(_ context.Context, c certification.Certification) error {
	m.items = append(m.items, c)
	return nil
}
func (m *memCertificationRepo) Update(_ context.Context, c certification.Certification) error {
	for i := range m.items {
		if m.items[i].ID == c.ID {
			m.items[i] = c
		}
	}
	return nil
}
func (m *memCertificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}
func (m *memCertificationRepo) List(context.Context) ([]certification.Certification, error) {
	return append([]certification.Certification(nil), m.items...), nil
}

type memContactRepo struct{ items []contact.Contact }

func (m *memContactRepo) Insert(_ context.Context, c contact.Contact) error {
	m.items = append([]contact.Contact{c}, m.items...)
	return nil
}
func (m *memContactRepo) Update(_ context.Context, c contact.Contact) error {
	for i := range m.items {
		if m.items[i].ID == c.ID {
			m.items[i] = c
		}
	}
	return nil
}
func (m *memContactRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}
func (m *memContactRepo) List(context.Context) ([]contact.Contact, error) {
	return append([]contact.Contact(nil), m.items...), nil
}

type stubSuggester struct{}

func (stubSuggester) SuggestImprovements(_ context.Context, _, content string) (*service.Suggestion, error) {
	return &service.Suggestion{
		ImprovedContent: "improved: " + content,
		Suggestions:     []string{"made it better"},
	}, nil
}

type RouterTestSuite struct {
	suite.Suite
	router      *gin.Engine
	store       *store.Store
	adminEmail  string
	adminPass   string
	accessToken string
}

func (s *RouterTestSuite) SetupTest() {
	appLogger := logger.NewNop()

	contentStore := store.New(store.Repositories{
		Profile:        &memProfileRepo{},
		Education:      &memEducationRepo{},
		Internships:    &memInternshipRepo{},
		Projects:       &memProjectRepo{},
		Certifications: &memCertificationRepo{},
		Contacts:       &memContactRepo{},
	}, appLogger)
	s.Require().NoError(contentStore.Load(context.Background()))
	s.store = contentStore

	s.adminEmail = "admin@example.com"
	s.adminPass = "router-test-pass"
	jwtSvc := auth.NewJWTService("router-test-secret", time.Hour)
	verifier := auth.NewStaticVerifier(s.adminEmail, s.adminPass)
	loginUseCase := authUC.NewLoginUseCase(verifier, jwtSvc, appLogger)
	suggestUseCase := suggestUC.NewSuggestContentUseCase(stubSuggester{}, appLogger)

	authHandler := NewAuthHandler(loginUseCase)
	portfolioHandler := NewPortfolioHandler(contentStore, nil, appLogger)
	profileHandler := NewProfileHandler(contentStore, appLogger)
	educationHandler := NewEducationHandler(contentStore)
	internshipHandler := NewInternshipHandler(contentStore)
	projectHandler := NewProjectHandler(contentStore)
	certificationHandler := NewCertificationHandler(contentStore)
	contactHandler := NewContactHandler(contentStore, nil, appLogger)
	suggestHandler := NewSuggestHandler(suggestUseCase)

	authMiddleware := AuthMiddleware(jwtSvc)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.POST("/seed", portfolioHandler.Seed)
				adminPrivate.GET("/state", portfolioHandler.GetState)
				adminPrivate.GET("/profile", profileHandler.GetProfile)
				adminPrivate.PUT("/profile", profileHandler.UpdateProfile)
				adminPrivate.POST("/education", educationHandler.CreateEducation)
				adminPrivate.PUT("/education/:id", educationHandler.UpdateEducation)
				adminPrivate.DELETE("/education/:id", educationHandler.DeleteEducation)
				adminPrivate.POST("/internships", internshipHandler.CreateInternship)
				adminPrivate.POST("/projects", projectHandler.CreateProject)
				adminPrivate.POST("/ongoing-projects", projectHandler.CreateOngoingProject)
				adminPrivate.POST("/certifications", certificationHandler.CreateCertification)
				adminPrivate.GET("/contacts", contactHandler.ListContacts)
				adminPrivate.PATCH("/contacts/:id/read", contactHandler.MarkRead)
				adminPrivate.DELETE("/contacts/:id", contactHandler.DeleteContact)
				adminPrivate.POST("/suggest", suggestHandler.SuggestContent)
			}
		}
		api.GET("/portfolio", portfolioHandler.GetPortfolio)
		api.POST("/contact", contactHandler.CreateContact)
	}

	s.router = router
	s.accessToken = s.login()
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) login() string {
	body, _ := json.Marshal(gin.H{"email": s.adminEmail, "password": s.adminPass})
	rr := s.do(http.MethodPost, "/api/admin/auth/login", body, "")
	s.Require().Equal(http.StatusOK, rr.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp["access_token"])
	return resp["access_token"]
}

func (s *RouterTestSuite) do(method, path string, body []byte, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *RouterTestSuite) seed() {
	rr := s.do(http.MethodPost, "/api/admin/seed", nil, s.accessToken)
	s.Require().Equal(http.StatusCreated, rr.Code)
}

func (s *RouterTestSuite) Test_Login_WrongPassword() {
	body, _ := json.Marshal(gin.H{"email": s.adminEmail, "password": "nope"})
	rr := s.do(http.MethodPost, "/api/admin/auth/login", body, "")
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *RouterTestSuite) Test_AdminRoutes_RequireToken() {
	rr := s.do(http.MethodPost, "/api/admin/seed", nil, "")
	s.Equal(http.StatusUnauthorized, rr.Code)

	rr = s.do(http.MethodPost, "/api/admin/seed", nil, "not-a-real-token")
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *RouterTestSuite) Test_Portfolio_BeforeSeed() {
	rr := s.do(http.MethodGet, "/api/portfolio", nil, "")
	s.Equal(http.StatusOK, rr.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Equal(false, resp["seeded"])
}

func (s *RouterTestSuite) Test_Seed_ThenPublicPortfolio() {
	s.seed()

	rr := s.do(http.MethodGet, "/api/portfolio", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	prof, ok := resp["profile"].(map[string]any)
	s.Require().True(ok)
	s.NotEmpty(prof["name"])

	rrState := s.do(http.MethodGet, "/api/admin/state", nil, s.accessToken)
	s.Equal(http.StatusOK, rrState.Code)
	s.Contains(rrState.Body.String(), "ready")
}

func (s *RouterTestSuite) Test_Seed_Twice_Conflicts() {
	s.seed()
	rr := s.do(http.MethodPost, "/api/admin/seed", nil, s.accessToken)
	s.Equal(http.StatusConflict, rr.Code)
}

func (s *RouterTestSuite) Test_Education_CRUD() {
	s.seed()

	body, _ := json.Marshal(EducationRequest{School: "New School", Degree: "B.Sc", Period: "2024"})
	rr := s.do(http.MethodPost, "/api/admin/education", body, s.accessToken)
	s.Require().Equal(http.StatusCreated, rr.Code)

	var created education.Education
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &created))
	s.NotEqual(uuid.Nil, created.ID)

	body, _ = json.Marshal(EducationRequest{School: "Renamed School", Degree: "B.Sc", Period: "2024"})
	rr = s.do(http.MethodPut, "/api/admin/education/"+created.ID.String(), body, s.accessToken)
	s.Equal(http.StatusOK, rr.Code)

	snap := s.store.Snapshot()
	found := false
	for _, e := range snap.Education {
		if e.ID == created.ID {
			found = true
			s.Equal("Renamed School", e.School)
		}
	}
	s.True(found)

	rr = s.do(http.MethodDelete, "/api/admin/education/"+created.ID.String(), nil, s.accessToken)
	s.Equal(http.StatusNoContent, rr.Code)
	for _, e := range s.store.Snapshot().Education {
		s.NotEqual(created.ID, e.ID)
	}
}

func (s *RouterTestSuite) Test_Internship_RequiresImages() {
	s.seed()

	body, _ := json.Marshal(gin.H{"company": "NoPics Inc", "role": "Intern"})
	rr := s.do(http.MethodPost, "/api/admin/internships", body, s.accessToken)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *RouterTestSuite) Test_OngoingProject_Route() {
	s.seed()

	body, _ := json.Marshal(ProjectRequest{Title: "WIP Thing"})
	rr := s.do(http.MethodPost, "/api/admin/ongoing-projects", body, s.accessToken)
	s.Require().Equal(http.StatusCreated, rr.Code)

	snap := s.store.Snapshot()
	s.Equal("WIP Thing", snap.OngoingProjects[len(snap.OngoingProjects)-1].Title)
}

func (s *RouterTestSuite) Test_Contact_PublicSubmit_AdminList() {
	s.seed()

	body, _ := json.Marshal(CreateContactRequest{Name: "Visitor", Email: "v@example.com", Message: "Hi!"})
	rr := s.do(http.MethodPost, "/api/contact", body, "")
	s.Require().Equal(http.StatusCreated, rr.Code)

	body, _ = json.Marshal(CreateContactRequest{Name: "Second", Email: "s@example.com", Message: "Hello"})
	rr = s.do(http.MethodPost, "/api/contact", body, "")
	s.Require().Equal(http.StatusCreated, rr.Code)

	rrList := s.do(http.MethodGet, "/api/admin/contacts", nil, s.accessToken)
	s.Require().Equal(http.StatusOK, rrList.Code)

	var contacts []contact.Contact
	s.Require().NoError(json.Unmarshal(rrList.Body.Bytes(), &contacts))
	s.Require().Len(contacts, 2)
	s.Equal("Second", contacts[0].Name)
	s.Equal("Visitor", contacts[1].Name)
	s.False(contacts[0].Read)

	// Mark newest read
	body, _ = json.Marshal(UpdateContactRequest{Read: true})
	rrRead := s.do(http.MethodPatch, "/api/admin/contacts/"+contacts[0].ID.String()+"/read", body, s.accessToken)
	s.Require().Equal(http.StatusOK, rrRead.Code)
	s.True(s.store.Snapshot().Contacts[0].Read)
}

func (s *RouterTestSuite) Test_Contact_InvalidEmail_Rejected() {
	s.seed()

	body, _ := json.Marshal(gin.H{"name": "X", "email": "not-an-email", "message": "hi"})
	rr := s.do(http.MethodPost, "/api/contact", body, "")
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *RouterTestSuite) Test_UpdateProfile() {
	s.seed()

	body, _ := json.Marshal(UpdateProfileRequest{Name: "Renamed Owner", Title: "Engineer"})
	rr := s.do(http.MethodPut, "/api/admin/profile", body, s.accessToken)
	s.Require().Equal(http.StatusOK, rr.Code)

	rrGet := s.do(http.MethodGet, "/api/admin/profile", nil, s.accessToken)
	s.Require().Equal(http.StatusOK, rrGet.Code)
	s.Contains(rrGet.Body.String(), "Renamed Owner")
}

func (s *RouterTestSuite) Test_Suggest() {
	body, _ := json.Marshal(SuggestContentRequest{ContentType: "about", Content: "my text"})
	rr := s.do(http.MethodPost, "/api/admin/suggest", body, s.accessToken)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), "improved: my text")
}

func (s *RouterTestSuite) Test_Mutation_BeforeSeed_NotFound() {
	body, _ := json.Marshal(EducationRequest{School: "x", Degree: "y", Period: "z"})
	rr := s.do(http.MethodPost, "/api/admin/education", body, s.accessToken)
	s.Equal(http.StatusNotFound, rr.Code)
}
