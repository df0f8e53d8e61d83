package http

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Hand-written service fakes. A nil func field panics when called, so every
// test wires exactly the calls it expects.

type fakeAuthService struct {
	registerFn      func(ctx context.Context, username, password string) (models.User, error)
	verifyFn        func(ctx context.Context, username, password string) (models.User, error)
	usernameTakenFn func(ctx context.Context, username string) (bool, error)
}

func (f *fakeAuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	return f.registerFn(ctx, username, password)
}

func (f *fakeAuthService) Verify(ctx context.Context, username, password string) (models.User, error) {
	return f.verifyFn(ctx, username, password)
}

func (f *fakeAuthService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return f.usernameTakenFn(ctx, username)
}

type fakeSessionService struct {
	issueFn   func(ctx context.Context, user models.User, remember bool) (models.Session, error)
	resolveFn func(ctx context.Context, token string) (models.User, error)
}

func (f *fakeSessionService) Issue(ctx context.Context, user models.User, remember bool) (models.Session, error) {
	return f.issueFn(ctx, user, remember)
}

func (f *fakeSessionService) Resolve(ctx context.Context, token string) (models.User, error) {
	return f.resolveFn(ctx, token)
}

type fakeCategoryService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Category, error)
	createFn func(ctx context.Context, userID int64, label string) (models.Category, error)
	getFn    func(ctx context.Context, userID, categoryID int64) (models.Category, error)
	renameFn func(ctx context.Context, userID, categoryID int64, label string) error
	deleteFn func(ctx context.Context, userID, categoryID int64) error
}

func (f *fakeCategoryService) List(ctx context.Context, userID int64) ([]models.Category, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeCategoryService) Create(ctx context.Context, userID int64, label string) (models.Category, error) {
	return f.createFn(ctx, userID, label)
}

func (f *fakeCategoryService) Get(ctx context.Context, userID, categoryID int64) (models.Category, error) {
	return f.getFn(ctx, userID, categoryID)
}

func (f *fakeCategoryService) Rename(ctx context.Context, userID, categoryID int64, label string) error {
	return f.renameFn(ctx, userID, categoryID, label)
}

func (f *fakeCategoryService) Delete(ctx context.Context, userID, categoryID int64) error {
	return f.deleteFn(ctx, userID, categoryID)
}

type fakeNoteService struct {
	listFn            func(ctx context.Context, userID int64) ([]models.Note, error)
	createFn          func(ctx context.Context, userID int64, note models.Note) (models.Note, error)
	getFn             func(ctx context.Context, userID, noteID int64) (models.Note, error)
	updateFn          func(ctx context.Context, userID int64, note models.Note) error
	deleteFn          func(ctx context.Context, userID, noteID int64) error
	categoryChoicesFn func(ctx context.Context, userID int64) ([]models.Category, error)
}

func (f *fakeNoteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeNoteService) Create(ctx context.Context, userID int64, note models.Note) (models.Note, error) {
	return f.createFn(ctx, userID, note)
}

func (f *fakeNoteService) Get(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return f.getFn(ctx, userID, noteID)
}

func (f *fakeNoteService) Update(ctx context.Context, userID int64, note models.Note) error {
	return f.updateFn(ctx, userID, note)
}

func (f *fakeNoteService) Delete(ctx context.Context, userID, noteID int64) error {
	return f.deleteFn(ctx, userID, noteID)
}

func (f *fakeNoteService) CategoryChoices(ctx context.Context, userID int64) ([]models.Category, error) {
	return f.categoryChoicesFn(ctx, userID)
}

type fakeSearchService struct {
	searchFn func(ctx context.Context, userID int64, query models.SearchQuery) (models.SearchResult, error)
}

func (f *fakeSearchService) Search(ctx context.Context, userID int64, query models.SearchQuery) (models.SearchResult, error) {
	return f.searchFn(ctx, userID, query)
}

type fakeAppInfoService struct {
	version string
	pingErr error
}

func (f *fakeAppInfoService) GetAppVersion(ctx context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) Ping(ctx context.Context) error {
	return f.pingErr
}

// testServices bundles the fakes so tests can wire the calls they need.
type testServices struct {
	auth       *fakeAuthService
	session    *fakeSessionService
	categories *fakeCategoryService
	notes      *fakeNoteService
	search     *fakeSearchService
	appInfo    *fakeAppInfoService
}

func newTestServices() *testServices {
	return &testServices{
		auth:       &fakeAuthService{},
		session:    &fakeSessionService{},
		categories: &fakeCategoryService{},
		notes:      &fakeNoteService{},
		search:     &fakeSearchService{},
		appInfo:    &fakeAppInfoService{version: "test"},
	}
}

func (s *testServices) services() *service.Services {
	return &service.Services{
		AuthService:     s.auth,
		SessionService:  s.session,
		CategoryService: s.categories,
		NoteService:     s.notes,
		SearchService:   s.search,
		AppInfoService:  s.appInfo,
	}
}
