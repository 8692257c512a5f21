package models

import "time"

// Status is the closed set of demanda lifecycle states.
// The wire values match what the dashboard frontend renders on its Kanban
// board, so they are stored and serialized verbatim.
type Status string

const (
	StatusPending    Status = "Pendente"
	StatusInProgress Status = "Em andamento"
	StatusDone       Status = "Finalizado"
)

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// DefaultCategories is the canonical valid-category set used when the
// deployment does not configure its own. Historic demanda rows may carry
// categories that were later removed from the set; such rows must still be
// listed and aggregated.
func DefaultCategories() []string {
	return []string{"Design", "Copy", "Tráfego Pago", "Automação", "Reunião", "Suporte", "Outro"}
}

// Demanda is a logged work item: a time-boxed piece of work performed for a
// client under one of the tracked categories. The Data timestamp drives all
// calendar-day aggregation on the dashboard and ranking screens.
type Demanda struct {
	// ID is the unique identifier of the demanda.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user. Required.
	UserID int64 `json:"userId"`

	// Categoria is the work category. Validated against the configured
	// category set at write time only.
	Categoria string `json:"categoria"`

	// Cliente is the free-text client/project label. Required.
	Cliente string `json:"cliente"`

	// Descricao is the free-text description of the work. Required.
	Descricao string `json:"descricao"`

	// Tempo is the logged duration in minutes. Always positive.
	Tempo int64 `json:"tempo"`

	// Status is the lifecycle state. Defaults to [StatusPending].
	Status Status `json:"status"`

	// Data is the creation timestamp assigned by the server.
	Data time.Time `json:"data"`
}

// TableName returns the name of the database table
// associated with the Demanda model.
func (d Demanda) TableName() string {
	return "demandas"
}
