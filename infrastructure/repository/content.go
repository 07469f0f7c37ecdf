package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
)

const (
	aboutTable    = "about_content"
	homeHeroTable = "home_hero_content"
)

// ContentRepository persiste as páginas singleton do site (sobre e hero da home).
// As tabelas possuem uma única linha, sempre com id = 1.
type ContentRepository interface {
	GetAbout() (*domain.About, error)
	UpdateAbout(req *domain.UpdateAboutRequest) (*domain.About, error)
	GetHomeHero() (*domain.HomeHero, error)
	UpdateHomeHero(req *domain.UpdateHomeHeroRequest) (*domain.HomeHero, error)
}

type contentRepository struct {
	conn *postgres.Connection
}

func NewContentRepository(conn *postgres.Connection) ContentRepository {
	return &contentRepository{conn: conn}
}

func (r *contentRepository) GetAbout() (*domain.About, error) {
	aboutSQL, args, err := squirrel.
		Select("id, title, description, image_path, resume_path, created_at, updated_at").
		From(aboutTable).
		Where(squirrel.Eq{"id": 1}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	about := &domain.About{}
	row := r.conn.QueryRow(aboutSQL, args...)
	if err := row.Scan(
		&about.ID,
		&about.Title,
		&about.Description,
		&about.ImagePath,
		&about.ResumePath,
		&about.CreatedAt,
		&about.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return about, nil
}

func (r *contentRepository) UpdateAbout(req *domain.UpdateAboutRequest) (*domain.About, error) {
	queryBuilder := squirrel.
		Update(aboutTable).
		Where(squirrel.Eq{"id": 1}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	// Apenas os campos fornecidos são atualizados
	if req.Title != nil {
		queryBuilder = queryBuilder.Set("title", req.Title)
	}

	if req.Description != nil {
		queryBuilder = queryBuilder.Set("description", req.Description)
	}

	if req.ImagePath != nil {
		queryBuilder = queryBuilder.Set("image_path", *req.ImagePath)
	}

	if req.ResumePath != nil {
		queryBuilder = queryBuilder.Set("resume_path", *req.ResumePath)
	}

	if err := r.execUpdate(queryBuilder); err != nil {
		return nil, err
	}

	return r.GetAbout()
}

func (r *contentRepository) GetHomeHero() (*domain.HomeHero, error) {
	heroSQL, args, err := squirrel.
		Select("id, greeting, headline, tagline, image_path, created_at, updated_at").
		From(homeHeroTable).
		Where(squirrel.Eq{"id": 1}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	hero := &domain.HomeHero{}
	row := r.conn.QueryRow(heroSQL, args...)
	if err := row.Scan(
		&hero.ID,
		&hero.Greeting,
		&hero.Headline,
		&hero.Tagline,
		&hero.ImagePath,
		&hero.CreatedAt,
		&hero.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return hero, nil
}

func (r *contentRepository) UpdateHomeHero(req *domain.UpdateHomeHeroRequest) (*domain.HomeHero, error) {
	queryBuilder := squirrel.
		Update(homeHeroTable).
		Where(squirrel.Eq{"id": 1}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if req.Greeting != nil {
		queryBuilder = queryBuilder.Set("greeting", req.Greeting)
	}

	if req.Headline != nil {
		queryBuilder = queryBuilder.Set("headline", req.Headline)
	}

	if req.Tagline != nil {
		queryBuilder = queryBuilder.Set("tagline", req.Tagline)
	}

	if req.ImagePath != nil {
		queryBuilder = queryBuilder.Set("image_path", *req.ImagePath)
	}

	if err := r.execUpdate(queryBuilder); err != nil {
		return nil, err
	}

	return r.GetHomeHero()
}

func (r *contentRepository) execUpdate(queryBuilder squirrel.UpdateBuilder) error {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
