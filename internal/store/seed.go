package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/models"
)

// SeedDemoData inserts two demo accounts and a spread of demandas so a fresh
// install has something to render. It runs after the canonical-admin
// bootstrap, so the guard counts only non-admin users: when any exist the
// install is not fresh and seeding is a no-op.
func SeedDemoData(ctx context.Context, db *DB, passwordHash string, categories []string) error {
	log := logger.FromContext(ctx)

	var count int
	query := `SELECT COUNT(*) FROM users WHERE user_type != ?;`
	if err := db.QueryRowContext(ctx, query, models.RoleSupremeAdmin).Scan(&count); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if count > 0 {
		return nil
	}

	demoUsers := []models.User{
		{Name: "Diretor Demo", Email: "diretor@agencia.com", Password: passwordHash, UserType: models.RoleManager},
		{Name: "Usuário Demo", Email: "usuario@agencia.com", Password: passwordHash, UserType: models.RoleMember},
	}

	clientes := []string{"Empresa A", "Empresa B", "Empresa C", "Startup X", "Premium Y"}
	statuses := []models.Status{models.StatusPending, models.StatusInProgress, models.StatusDone}

	ids := make([]int64, 0, len(demoUsers))
	for _, user := range demoUsers {
		result, err := db.ExecContext(ctx,
			`INSERT INTO users (name, email, password, user_type) VALUES (?, ?, ?, ?);`,
			user.Name, user.Email, user.Password, user.UserType)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		ids = append(ids, id)
	}

	for i := 0; i < 15; i++ {
		_, err := db.ExecContext(ctx,
			`INSERT INTO demandas (user_id, categoria, cliente, descricao, tempo, status) VALUES (?, ?, ?, ?, ?, ?);`,
			ids[i%len(ids)],
			categories[i%len(categories)],
			clientes[i%len(clientes)],
			fmt.Sprintf("Descrição da demanda %d", i+1),
			30+(i*37)%240,
			statuses[i%len(statuses)])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	log.Info().Msg("demo data inserted")
	return nil
}
