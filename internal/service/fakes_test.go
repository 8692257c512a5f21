package service

import (
	"context"
	"time"

	"github.com/MKhiriev/painel-produtividade/internal/store"
	"github.com/MKhiriev/painel-produtividade/models"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users  map[int64]models.User
	nextID int64

	setTypeErr error
	deleteErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]models.User{}, nextID: 1}
}

func (f *fakeUserRepo) add(user models.User) models.User {
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	f.nextID++
	return user
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}
	return f.add(user), nil
}

func (f *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (f *fakeUserRepo) FindUserByID(_ context.Context, id int64) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id int64, fields map[string]any) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	if name, ok := fields["name"].(string); ok {
		user.Name = name
	}
	if avatar, ok := fields["avatar"].(string); ok {
		user.Avatar = avatar
	}
	if password, ok := fields["password"].(string); ok {
		user.Password = password
	}
	f.users[id] = user
	return user, nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeUserRepo) SetUserType(_ context.Context, targetID int64, role models.Role) (models.User, error) {
	if f.setTypeErr != nil {
		return models.User{}, f.setTypeErr
	}
	user, ok := f.users[targetID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	user.UserType = role
	f.users[targetID] = user
	return user, nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, targetID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.users[targetID]; !ok {
		return store.ErrNoUserWasFound
	}
	delete(f.users, targetID)
	return nil
}

// fakeDemandaRepo is an in-memory DemandaRepository for service tests.
type fakeDemandaRepo struct {
	demandas   map[int64]models.Demanda
	nextID     int64
	lastFilter models.DemandaFilter
}

func newFakeDemandaRepo() *fakeDemandaRepo {
	return &fakeDemandaRepo{demandas: map[int64]models.Demanda{}, nextID: 1}
}

func (f *fakeDemandaRepo) add(demanda models.Demanda) models.Demanda {
	demanda.ID = f.nextID
	if demanda.Data.IsZero() {
		demanda.Data = time.Now()
	}
	f.demandas[demanda.ID] = demanda
	f.nextID++
	return demanda
}

func (f *fakeDemandaRepo) CreateDemanda(_ context.Context, demanda models.Demanda) (models.Demanda, error) {
	return f.add(demanda), nil
}

func (f *fakeDemandaRepo) ListDemandas(_ context.Context, filter models.DemandaFilter) ([]models.Demanda, error) {
	f.lastFilter = filter
	result := make([]models.Demanda, 0)
	for _, demanda := range f.demandas {
		if filter.UserID != 0 && demanda.UserID != filter.UserID {
			continue
		}
		if filter.Categoria != "" && demanda.Categoria != filter.Categoria {
			continue
		}
		if filter.Status != "" && string(demanda.Status) != filter.Status {
			continue
		}
		result = append(result, demanda)
	}
	return result, nil
}

func (f *fakeDemandaRepo) GetDemanda(_ context.Context, id int64) (models.Demanda, error) {
	demanda, ok := f.demandas[id]
	if !ok {
		return models.Demanda{}, store.ErrDemandaNotFound
	}
	return demanda, nil
}

func (f *fakeDemandaRepo) GetDemandaForOwner(_ context.Context, id, ownerID int64) (models.Demanda, error) {
	demanda, ok := f.demandas[id]
	if !ok || demanda.UserID != ownerID {
		return models.Demanda{}, store.ErrDemandaNotFound
	}
	return demanda, nil
}

func (f *fakeDemandaRepo) UpdateDemanda(_ context.Context, id int64, fields map[string]any) (models.Demanda, error) {
	demanda, ok := f.demandas[id]
	if !ok {
		return models.Demanda{}, store.ErrDemandaNotFound
	}
	if status, ok := fields["status"].(models.Status); ok {
		demanda.Status = status
	}
	if categoria, ok := fields["categoria"].(string); ok {
		demanda.Categoria = categoria
	}
	if cliente, ok := fields["cliente"].(string); ok {
		demanda.Cliente = cliente
	}
	if descricao, ok := fields["descricao"].(string); ok {
		demanda.Descricao = descricao
	}
	if tempo, ok := fields["tempo"].(int64); ok {
		demanda.Tempo = tempo
	}
	f.demandas[id] = demanda
	return demanda, nil
}

func (f *fakeDemandaRepo) DeleteDemanda(_ context.Context, id int64) error {
	if _, ok := f.demandas[id]; !ok {
		return store.ErrDemandaNotFound
	}
	delete(f.demandas, id)
	return nil
}

// fakeStatsRepo returns canned aggregation results.
type fakeStatsRepo struct {
	minutesOnDay  int64
	minutesSince  int64
	perDay        []store.DayMinutes
	byCategory    map[string]int64
	globalAverage float64
	board         []models.RankingEntry

	lastSinceDay string
}

func (f *fakeStatsRepo) SumMinutesOnDay(_ context.Context, _ int64, _ string) (int64, error) {
	return f.minutesOnDay, nil
}

func (f *fakeStatsRepo) SumMinutesSince(_ context.Context, _ int64, _ string) (int64, error) {
	return f.minutesSince, nil
}

func (f *fakeStatsRepo) MinutesPerDaySince(_ context.Context, _ int64, _ string) ([]store.DayMinutes, error) {
	return f.perDay, nil
}

func (f *fakeStatsRepo) MinutesByCategory(_ context.Context, _ int64) (map[string]int64, error) {
	return f.byCategory, nil
}

func (f *fakeStatsRepo) GlobalAverageMinutes(_ context.Context) (float64, error) {
	return f.globalAverage, nil
}

func (f *fakeStatsRepo) Leaderboard(_ context.Context, sinceDay string) ([]models.RankingEntry, error) {
	f.lastSinceDay = sinceDay
	return f.board, nil
}

// fakeSessionRepo records CreateSession calls.
type fakeSessionRepo struct {
	created    int
	createErr  error
	lastUserID int64
}

func (f *fakeSessionRepo) CreateSession(_ context.Context, userID int64, _ string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created++
	f.lastUserID = userID
	return nil
}

func (f *fakeSessionRepo) PurgeSessionsBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}
