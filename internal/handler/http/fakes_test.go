package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/service"
	"github.com/MKhiriev/painel-produtividade/models"
)

// Function-backed fakes: each test plugs in only the methods it exercises.

type fakeAuthService struct {
	registerFn      func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.User, error)
	getMeFn         func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Identity, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) GetMe(ctx context.Context, userID int64) (models.User, error) {
	return f.getMeFn(ctx, userID)
}

func (f *fakeAuthService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error) {
	return f.updateProfileFn(ctx, userID, req)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	return f.parseTokenFn(ctx, tokenString)
}

type fakeDemandaService struct {
	createFn  func(ctx context.Context, ownerID int64, req models.CreateDemandaRequest) (models.Demanda, error)
	listFn    func(ctx context.Context, requester models.Identity, filter models.DemandaFilter) ([]models.Demanda, error)
	getByIDFn func(ctx context.Context, id, requesterID int64) (models.Demanda, error)
	updateFn  func(ctx context.Context, id, requesterID int64, patch models.DemandaPatch) (models.Demanda, error)
	deleteFn  func(ctx context.Context, id, requesterID int64) error
}

func (f *fakeDemandaService) Create(ctx context.Context, ownerID int64, req models.CreateDemandaRequest) (models.Demanda, error) {
	return f.createFn(ctx, ownerID, req)
}

func (f *fakeDemandaService) List(ctx context.Context, requester models.Identity, filter models.DemandaFilter) ([]models.Demanda, error) {
	return f.listFn(ctx, requester, filter)
}

func (f *fakeDemandaService) GetByID(ctx context.Context, id, requesterID int64) (models.Demanda, error) {
	return f.getByIDFn(ctx, id, requesterID)
}

func (f *fakeDemandaService) Update(ctx context.Context, id, requesterID int64, patch models.DemandaPatch) (models.Demanda, error) {
	return f.updateFn(ctx, id, requesterID, patch)
}

func (f *fakeDemandaService) Delete(ctx context.Context, id, requesterID int64) error {
	return f.deleteFn(ctx, id, requesterID)
}

func (f *fakeDemandaService) Categories() []string {
	return models.DefaultCategories()
}

type fakeStatsService struct {
	dashboardFn   func(ctx context.Context, userID int64, now time.Time) (models.DashboardStats, error)
	leaderboardFn func(ctx context.Context, period string, now time.Time) ([]models.RankingEntry, error)
}

func (f *fakeStatsService) DashboardStats(ctx context.Context, userID int64, now time.Time) (models.DashboardStats, error) {
	return f.dashboardFn(ctx, userID, now)
}

func (f *fakeStatsService) Leaderboard(ctx context.Context, period string, now time.Time) ([]models.RankingEntry, error) {
	return f.leaderboardFn(ctx, period, now)
}

type fakeAdminService struct {
	listUsersFn       func(ctx context.Context, requester models.Identity) ([]models.User, error)
	listAllDemandasFn func(ctx context.Context, requester models.Identity, filter models.DemandaFilter) ([]models.Demanda, error)
	setUserRoleFn     func(ctx context.Context, requester models.Identity, targetID int64, newRole models.Role) (models.User, error)
	deleteUserFn      func(ctx context.Context, requester models.Identity, targetID int64) error
}

func (f *fakeAdminService) ListUsers(ctx context.Context, requester models.Identity) ([]models.User, error) {
	return f.listUsersFn(ctx, requester)
}

func (f *fakeAdminService) ListAllDemandas(ctx context.Context, requester models.Identity, filter models.DemandaFilter) ([]models.Demanda, error) {
	return f.listAllDemandasFn(ctx, requester, filter)
}

func (f *fakeAdminService) SetUserRole(ctx context.Context, requester models.Identity, targetID int64, newRole models.Role) (models.User, error) {
	return f.setUserRoleFn(ctx, requester, targetID, newRole)
}

func (f *fakeAdminService) DeleteUser(ctx context.Context, requester models.Identity, targetID int64) error {
	return f.deleteUserFn(ctx, requester, targetID)
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error { return f.err }

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		db:       &fakePinger{},
		logger:   logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context, standing in for
// the trace-id middleware.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
