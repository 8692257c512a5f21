package models

// AuthResponse is returned by the register and login endpoints: the signed
// bearer token plus the public view of the account it identifies.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RankingEntry is one leaderboard row: a user joined with the sum of minutes
// they logged within the requested period.
type RankingEntry struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar,omitempty"`
	TotalTempo int64  `json:"totalTempo"`
}

// WeeklyBucket is one bar of the dashboard's weekly chart: the day-of-week
// label and the rounded hours logged on that calendar day.
type WeeklyBucket struct {
	Day   string `json:"day"`
	Hours int    `json:"hours"`
}

// DashboardStats is the aggregate payload of GET /api/dashboard/stats.
//
// AverageProductivity is the rounded global average of minutes per demanda
// across all users. It is a per-item average, not a percentage, despite
// sitting next to Productivity; the frontend renders it as-is.
type DashboardStats struct {
	TotalToday          int64            `json:"totalToday"`
	TotalWeek           int64            `json:"totalWeek"`
	Productivity        int              `json:"productivity"`
	AverageProductivity int              `json:"averageProductivity"`
	Ranking             int              `json:"ranking"`
	WeeklyData          []WeeklyBucket   `json:"weeklyData"`
	ByCategory          map[string]int64 `json:"byCategory"`
}

// ErrorResponse is the uniform error body: a stable machine-readable code
// and a human-readable message for the UI to surface.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse is the body of delete operations, which have nothing
// else to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the payload of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
	DB     bool   `json:"db"`
}
