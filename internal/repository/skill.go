package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/marjuksajid/SkillChronicle/internal/model"
)

type SkillRepository interface {
	Create(skill *model.Skill) error
	Skills(userID string) ([]*model.Skill, error)
}

type skillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(skill *model.Skill) error {
	query := `INSERT INTO skills (id, user_id, name, description, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		skill.ID,
		skill.UserID,
		skill.Name,
		skill.Description,
		skill.CreatedAt,
	)

	return err
}

func (r *skillRepository) Skills(userID string) ([]*model.Skill, error) {
	var skills []*model.Skill
	query := `SELECT * FROM skills WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&skills, query, userID)
	if err != nil {
		return nil, err
	}

	return skills, nil
}
