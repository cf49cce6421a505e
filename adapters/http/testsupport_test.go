package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	experienceUC "github.com/devhubio/profile-service/internal/application/usecase/experience"
	profileUC "github.com/devhubio/profile-service/internal/application/usecase/profile"
	"github.com/devhubio/profile-service/internal/domain/experience"
	"github.com/devhubio/profile-service/internal/domain/user"
	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/auth"
	"github.com/devhubio/profile-service/pkg/logger"
)

// In-memory fakes so handler tests exercise the full HTTP surface
// without Postgres, Redis, Kafka or Cloudinary.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*user.User{}}
}

func cloneUser(u *user.User) *user.User {
	c := *u
	return &c
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, apperror.NewNotFound("user", id.String())
	}
	return cloneUser(u), nil
}

func (f *fakeUserRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]any) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, apperror.NewNotFound("user", id.String())
	}
	for col, val := range fields {
		var s *string
		switch v := val.(type) {
		case nil:
			s = nil
		case string:
			sv := v
			s = &sv
		default:
			return nil, apperror.NewInternal(fmt.Sprintf("unexpected value type for column %s", col), nil)
		}
		switch col {
		case user.ColName:
			u.Name = *s
		case user.ColHeadline:
			u.Headline = s
		case user.ColUserInfo:
			u.UserInfo = s
		case user.ColProfileURL:
			u.ProfileURL = s
		case user.ColBannerURL:
			u.BannerURL = s
		case user.ColResume:
			u.Resume = s
		case user.ColGithubURL:
			u.GithubURL = s
		case user.ColLinkedinURL:
			u.LinkedinURL = s
		case user.ColLeetcodeURL:
			u.LeetcodeURL = s
		case user.ColCodeForcesURL:
			u.CodeForcesURL = s
		case user.ColMediumURL:
			u.MediumURL = s
		case user.ColPortfolioURL:
			u.PortfolioURL = s
		default:
			return nil, apperror.NewInternal("unknown user column "+col, nil)
		}
	}
	return cloneUser(u), nil
}

type fakeExperienceRepo struct {
	mu          sync.Mutex
	experiences map[uuid.UUID]*experience.Experience
	saveCalls   int
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{experiences: map[uuid.UUID]*experience.Experience{}}
}

func cloneExperience(e *experience.Experience) *experience.Experience {
	c := *e
	if e.EndDate != nil {
		d := *e.EndDate
		c.EndDate = &d
	}
	return &c
}

func (f *fakeExperienceRepo) Save(_ context.Context, e *experience.Experience) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	f.experiences[e.ID] = cloneExperience(e)
	return nil
}

func (f *fakeExperienceRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*experience.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.experiences[id]
	if !ok || e.UserID != userID {
		return nil, apperror.NewNotFound("experience", id.String())
	}
	return cloneExperience(e), nil
}

func (f *fakeExperienceRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*experience.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*experience.Experience, 0)
	for _, e := range f.experiences {
		if e.UserID == userID {
			result = append(result, cloneExperience(e))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeExperienceRepo) UpdateFields(_ context.Context, id, userID uuid.UUID, fields map[string]any) (*experience.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.experiences[id]
	if !ok || e.UserID != userID {
		return nil, apperror.NewNotFound("experience", id.String())
	}
	for col, val := range fields {
		switch col {
		case experience.ColCompanyName:
			e.CompanyName = val.(string)
		case experience.ColJobTitle:
			e.JobTitle = val.(string)
		case experience.ColJobDescription:
			e.JobDescription = val.(string)
		case experience.ColStartDate:
			e.StartDate = val.(time.Time)
		case experience.ColEndDate:
			if val == nil {
				e.EndDate = nil
			} else {
				d := val.(time.Time)
				e.EndDate = &d
			}
		case experience.ColIsOngoing:
			e.IsOngoing = val.(experience.OngoingStatus)
		case experience.ColJobType:
			e.JobType = val.(experience.JobType)
		default:
			return nil, apperror.NewInternal("unknown experience column "+col, nil)
		}
	}
	return cloneExperience(e), nil
}

func (f *fakeExperienceRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.experiences[id]
	if !ok || e.UserID != userID {
		return apperror.NewNotFound("experience", id.String())
	}
	delete(f.experiences, id)
	return nil
}

type fakeUploader struct {
	mu      sync.Mutex
	uploads []string
	deletes []string
}

func (f *fakeUploader) Upload(_ context.Context, _ io.Reader, folder, publicID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	url := fmt.Sprintf("https://res.cloudinary.com/test/image/upload/v1/%s/%s.pdf", folder, publicID)
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakeUploader) DeleteByURL(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, url)
	return nil
}

// testServer bundles the router with its fakes for one test.
type testServer struct {
	router   *gin.Engine
	jwtSvc   *auth.JWTService
	userRepo *fakeUserRepo
	expRepo  *fakeExperienceRepo
	uploader *fakeUploader
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)
	log := logger.NewZapLogger("development")

	userRepo := newFakeUserRepo()
	expRepo := newFakeExperienceRepo()
	uploader := &fakeUploader{}
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)

	getProfileUC := profileUC.NewGetProfileUseCase(userRepo, expRepo, nil, log)
	updateInfoUC := profileUC.NewUpdateInfoUseCase(userRepo, nil, nil, log)
	updateLinksUC := profileUC.NewUpdateLinksUseCase(userRepo, nil, nil, log)
	updateMediaUC := profileUC.NewUpdateMediaUseCase(userRepo, uploader, nil, nil, log)
	deleteResumeUC := profileUC.NewDeleteResumeUseCase(userRepo, uploader, nil, nil, log)

	addExpUC := experienceUC.NewAddExperienceUseCase(expRepo, userRepo, nil, nil, log)
	updateExpUC := experienceUC.NewUpdateExperienceUseCase(expRepo, nil, nil, log)
	deleteExpUC := experienceUC.NewDeleteExperienceUseCase(expRepo, nil, nil, log)

	profileHandler := NewProfileHandler(getProfileUC, updateInfoUC, updateLinksUC, updateMediaUC, deleteResumeUC, log)
	experienceHandler := NewExperienceHandler(addExpUC, updateExpUC, deleteExpUC, log)

	return &testServer{
		router:   NewRouter(profileHandler, experienceHandler, jwtSvc, log),
		jwtSvc:   jwtSvc,
		userRepo: userRepo,
		expRepo:  expRepo,
		uploader: uploader,
	}
}

func (ts *testServer) seedUser(u *user.User) {
	ts.userRepo.mu.Lock()
	defer ts.userRepo.mu.Unlock()
	ts.userRepo.users[u.ID] = cloneUser(u)
}

func (ts *testServer) seedExperience(e *experience.Experience) {
	ts.expRepo.mu.Lock()
	defer ts.expRepo.mu.Unlock()
	ts.expRepo.experiences[e.ID] = cloneExperience(e)
}

func (ts *testServer) token(userID uuid.UUID) string {
	token, err := ts.jwtSvc.GenerateToken(userID)
	if err != nil {
		panic(err)
	}
	return token
}

func (ts *testServer) doJSON(method, path string, userID uuid.UUID, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+ts.token(userID))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) doMultipart(method, path string, userID uuid.UUID, field, filename string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		panic(err)
	}
	part.Write([]byte("file-bytes"))
	writer.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+ts.token(userID))
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(rec *httptest.ResponseRecorder) (Envelope, json.RawMessage) {
	var env struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		panic(fmt.Sprintf("invalid envelope %q: %v", rec.Body.String(), err))
	}
	return Envelope{Status: env.Status, Message: env.Message}, env.Data
}

func strPtr(s string) *string { return &s }
