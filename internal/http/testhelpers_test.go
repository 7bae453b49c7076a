package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
	"github.com/nexora/corpsite-api/internal/domain/model"
	apperrors "github.com/nexora/corpsite-api/internal/errors"
	mocksauth "github.com/nexora/corpsite-api/internal/mocks/auth"
	"github.com/nexora/corpsite-api/internal/ports"
	"github.com/nexora/corpsite-api/internal/service"
)

type testEnv struct {
	router http.Handler
	store  *mocksauth.MemorySessionStore
	creds  *mocksauth.StubCredentialSource
	counts *service.PendingCountService
	apps   *fakeApplicationsRepo

	appSource *mocksauth.StubCountSource
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := mocksauth.NewMemorySessionStore()
	creds := mocksauth.NewStubCredentialSource()
	auth := service.NewAuthService(service.AuthServiceOptions{
		Credentials: creds,
		Sessions:    store,
		SessionTTL:  time.Hour,
	})

	appSource := mocksauth.NewStubCountSource(model.CountApplications, 4)
	counts := service.NewPendingCountService(service.PendingCountServiceOptions{
		Sources: []ports.PendingCountSource{appSource},
	})

	apps := &fakeApplicationsRepo{}
	router := NewRouter(RouterServices{
		Auth:         auth,
		Counts:       counts,
		Applications: apps,
		Contacts:     &fakeContactsRepo{},
		Callbacks:    &fakeCallbacksRepo{},
		Users:        &fakeUsersRepo{},
	})

	return &testEnv{
		router:    router,
		store:     store,
		creds:     creds,
		counts:    counts,
		apps:      apps,
		appSource: appSource,
	}
}

// seedSession stores a live session directly and returns its cookie.
func (e *testEnv) seedSession(t *testing.T, roles ...domainauth.Role) *http.Cookie {
	t.Helper()
	sess := domainauth.Session{
		ID:        "sess-" + strconv.Itoa(e.store.Len()+1),
		UserID:    "user-1",
		Name:      "Seeded User",
		Email:     "seeded@example.com",
		Roles:     roles,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, e.store.Save(context.Background(), sess))
	return &http.Cookie{Name: SessionCookieName, Value: sess.ID}
}

// do runs a request through the full middleware chain.
func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// browserGet builds a request that looks like a browser navigation.
func browserGet(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	return req
}

// sessionCookieFrom extracts the session cookie from a response, if set.
func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

type fakeApplicationsRepo struct {
	apps         []*model.JobApplication
	lastReviewer string
}

func (f *fakeApplicationsRepo) Create(_ context.Context, req *model.CreateApplicationRequest) (*model.JobApplication, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	app := &model.JobApplication{
		ID:        "app-" + strconv.Itoa(len(f.apps)+1),
		CareerID:  req.CareerID,
		Applicant: req.Applicant,
		Email:     req.Email,
		Status:    model.ApplicationStatusPending,
		CreatedAt: time.Now(),
	}
	f.apps = append(f.apps, app)
	return app, nil
}

func (f *fakeApplicationsRepo) List(context.Context, int, int, *model.ApplicationStatus) ([]*model.JobApplication, error) {
	return f.apps, nil
}

func (f *fakeApplicationsRepo) UpdateStatus(_ context.Context, id string, status model.ApplicationStatus, reviewedBy string) (*model.JobApplication, error) {
	f.lastReviewer = reviewedBy
	for _, app := range f.apps {
		if app.ID == id {
			app.Status = status
			app.ReviewedBy = &reviewedBy
			return app, nil
		}
	}
	return nil, apperrors.NotFound("Not found.")
}

type fakeContactsRepo struct{ msgs []*model.ContactMessage }

func (f *fakeContactsRepo) Create(_ context.Context, req *model.CreateContactRequest) (*model.ContactMessage, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	msg := &model.ContactMessage{ID: "msg-" + strconv.Itoa(len(f.msgs)+1), Name: req.Name, Email: req.Email, Message: req.Message}
	f.msgs = append(f.msgs, msg)
	return msg, nil
}

func (f *fakeContactsRepo) List(context.Context, int, int) ([]*model.ContactMessage, error) {
	return f.msgs, nil
}

func (f *fakeContactsRepo) MarkRead(_ context.Context, id string) (*model.ContactMessage, error) {
	for _, m := range f.msgs {
		if m.ID == id {
			m.Read = true
			return m, nil
		}
	}
	return nil, apperrors.NotFound("Not found.")
}

type fakeCallbacksRepo struct{ reqs []*model.CallbackRequest }

func (f *fakeCallbacksRepo) Create(_ context.Context, req *model.CreateCallbackRequest) (*model.CallbackRequest, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	cb := &model.CallbackRequest{ID: "cb-" + strconv.Itoa(len(f.reqs)+1), Name: req.Name, Phone: req.Phone}
	f.reqs = append(f.reqs, cb)
	return cb, nil
}

func (f *fakeCallbacksRepo) List(context.Context, int, int) ([]*model.CallbackRequest, error) {
	return f.reqs, nil
}

func (f *fakeCallbacksRepo) MarkHandled(_ context.Context, id, handledBy string) (*model.CallbackRequest, error) {
	for _, cb := range f.reqs {
		if cb.ID == id {
			cb.Handled = true
			cb.HandledBy = &handledBy
			return cb, nil
		}
	}
	return nil, apperrors.NotFound("Not found.")
}

type fakeUsersRepo struct{ users []*model.User }

func (f *fakeUsersRepo) List(context.Context, int, int) ([]*model.User, error) {
	return f.users, nil
}

func (f *fakeUsersRepo) UpdateRoles(_ context.Context, id string, roles []domainauth.RoleRef) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.Roles = roles
			return u, nil
		}
	}
	return nil, apperrors.NotFound("Not found.")
}

func (f *fakeUsersRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
