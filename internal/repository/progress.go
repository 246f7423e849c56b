package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/marjuksajid/SkillChronicle/internal/model"
)

type ProgressRepository interface {
	Create(progress *model.Progress) error
	Progresses(userID string) ([]*model.Progress, error)
}

type progressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(progress *model.Progress) error {
	// goal_id is written as-is; SQLite only enforces the reference when
	// the foreign_keys pragma is on.
	query := `INSERT INTO progress_entries (id, user_id, goal_id, description, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		progress.ID,
		progress.UserID,
		progress.GoalID,
		progress.Description,
		progress.CreatedAt,
	)

	return err
}

func (r *progressRepository) Progresses(userID string) ([]*model.Progress, error) {
	var progresses []*model.Progress
	query := `SELECT * FROM progress_entries WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&progresses, query, userID)
	if err != nil {
		return nil, err
	}

	return progresses, nil
}
