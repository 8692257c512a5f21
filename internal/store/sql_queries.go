package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/painel-produtividade/models"
)

const (
	userColumns = "id, name, email, password, user_type, avatar, created_at"

	createUser = `INSERT INTO users (name, email, password, user_type, avatar)
    VALUES (?, ?, ?, ?, ?)
    RETURNING id, name, email, password, user_type, avatar, created_at;`

	findUserByEmail = `SELECT id, name, email, password, user_type, avatar, created_at
    FROM users
    WHERE email = ?;`

	findUserByID = `SELECT id, name, email, password, user_type, avatar, created_at
    FROM users
    WHERE id = ?;`

	listUsers = `SELECT id, name, email, password, user_type, avatar, created_at
    FROM users
    ORDER BY name;`

	countOtherSupremeAdmins = `SELECT COUNT(*)
    FROM users
    WHERE user_type = ? AND id != ?;`

	setUserType = `UPDATE users SET user_type = ?
    WHERE id = ?
    RETURNING id, name, email, password, user_type, avatar, created_at;`

	deleteUserDemandas = `DELETE FROM demandas WHERE user_id = ?;`
	deleteUser         = `DELETE FROM users WHERE id = ?;`

	demoteStrayAdmins = `UPDATE users SET user_type = ?
    WHERE user_type = ? AND email != ?;`

	promoteUserByEmail = `UPDATE users SET user_type = ? WHERE email = ?;`

	demandaColumns = "id, user_id, categoria, cliente, descricao, tempo, status, data"

	createDemanda = `INSERT INTO demandas (user_id, categoria, cliente, descricao, tempo, status)
    VALUES (?, ?, ?, ?, ?, ?)
    RETURNING id, user_id, categoria, cliente, descricao, tempo, status, data;`

	getDemanda = `SELECT id, user_id, categoria, cliente, descricao, tempo, status, data
    FROM demandas
    WHERE id = ?;`

	getDemandaForOwner = `SELECT id, user_id, categoria, cliente, descricao, tempo, status, data
    FROM demandas
    WHERE id = ? AND user_id = ?;`

	deleteDemanda = `DELETE FROM demandas WHERE id = ?;`

	sumMinutesOnDay = `SELECT COALESCE(SUM(tempo), 0)
    FROM demandas
    WHERE user_id = ? AND DATE(data) = ?;`

	sumMinutesSince = `SELECT COALESCE(SUM(tempo), 0)
    FROM demandas
    WHERE user_id = ? AND DATE(data) >= ?;`

	minutesPerDaySince = `SELECT DATE(data) AS day, SUM(tempo) AS minutes
    FROM demandas
    WHERE user_id = ? AND DATE(data) >= ?
    GROUP BY DATE(data)
    ORDER BY day;`

	minutesByCategory = `SELECT categoria, SUM(tempo) AS minutes
    FROM demandas
    WHERE user_id = ?
    GROUP BY categoria;`

	globalAverageMinutes = `SELECT COALESCE(AVG(tempo), 0) FROM demandas;`

	leaderboard = `SELECT u.id, u.name, u.email, u.avatar, SUM(d.tempo) AS total_tempo
    FROM demandas d
    JOIN users u ON d.user_id = u.id
    WHERE DATE(d.data) >= ?
    GROUP BY u.id, u.name, u.email, u.avatar
    ORDER BY total_tempo DESC, u.id ASC;`

	createSession = `INSERT INTO sessions (user_id, token) VALUES (?, ?);`

	purgeSessionsBefore = `DELETE FROM sessions WHERE created_at < ?;`
)

// qb is the shared squirrel builder for every repository method with dynamic
// filters or partial updates. User input reaches queries only as bind
// arguments, never as query text.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// buildListDemandasQuery builds the filtered demanda listing.
// Zero-valued filter fields add no predicate.
func buildListDemandasQuery(filter models.DemandaFilter) (string, []any, error) {
	query := qb.Select("id", "user_id", "categoria", "cliente", "descricao", "tempo", "status", "data").
		From("demandas").
		OrderBy("data DESC")

	if filter.UserID != 0 {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.Categoria != "" {
		query = query.Where(squirrel.Eq{"categoria": filter.Categoria})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}

	return query.ToSql()
}

// buildUpdateQuery builds a partial UPDATE for the given table restricted to
// one row by id, returning all columns of the updated row.
func buildUpdateQuery(table string, fields map[string]any, id int64, returning string) (string, []any, error) {
	return qb.Update(table).
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returning).
		ToSql()
}
