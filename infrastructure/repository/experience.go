package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
)

const experiencesTable = "experiences"

type ExperienceRepository interface {
	List() ([]*domain.Experience, error)
	GetByID(id int) (*domain.Experience, error)
	Create(req *domain.CreateExperienceRequest) (*domain.Experience, error)
	Update(id int, req *domain.UpdateExperienceRequest) error
	Delete(id int) error
}

type experienceRepository struct {
	conn *postgres.Connection
}

func NewExperienceRepository(conn *postgres.Connection) ExperienceRepository {
	return &experienceRepository{conn: conn}
}

const experienceColumns = "id, role, company, location, description, start_date, end_date, created_at, updated_at"

func (r *experienceRepository) List() ([]*domain.Experience, error) {
	experiencesSQL, args, err := squirrel.
		Select(experienceColumns).
		From(experiencesTable).
		OrderBy("start_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(experiencesSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	experiences := make([]*domain.Experience, 0)

	for rows.Next() {
		experience := &domain.Experience{}
		if err := rows.Scan(
			&experience.ID,
			&experience.Role,
			&experience.Company,
			&experience.Location,
			&experience.Description,
			&experience.StartDate,
			&experience.EndDate,
			&experience.CreatedAt,
			&experience.UpdatedAt,
		); err != nil {
			return nil, err
		}
		experiences = append(experiences, experience)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return experiences, nil
}

func (r *experienceRepository) GetByID(id int) (*domain.Experience, error) {
	experienceSQL, args, err := squirrel.
		Select(experienceColumns).
		From(experiencesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	experience := &domain.Experience{}
	row := r.conn.QueryRow(experienceSQL, args...)
	if err := row.Scan(
		&experience.ID,
		&experience.Role,
		&experience.Company,
		&experience.Location,
		&experience.Description,
		&experience.StartDate,
		&experience.EndDate,
		&experience.CreatedAt,
		&experience.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return experience, nil
}

func (r *experienceRepository) Create(req *domain.CreateExperienceRequest) (*domain.Experience, error) {
	insertSQL, args, err := squirrel.
		Insert(experiencesTable).
		Columns("role", "company", "location", "description", "start_date", "end_date").
		Values(req.Role, req.Company, req.Location, req.Description, req.StartDate, req.EndDate).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var id int
	if err := r.conn.QueryRow(insertSQL, args...).Scan(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	return r.GetByID(id)
}

func (r *experienceRepository) Update(id int, req *domain.UpdateExperienceRequest) error {
	queryBuilder := squirrel.
		Update(experiencesTable).
		Where(squirrel.Eq{"id": id}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if req.Role != nil {
		queryBuilder = queryBuilder.Set("role", req.Role)
	}

	if req.Company != nil {
		queryBuilder = queryBuilder.Set("company", *req.Company)
	}

	if req.Location != nil {
		queryBuilder = queryBuilder.Set("location", *req.Location)
	}

	if req.Description != nil {
		queryBuilder = queryBuilder.Set("description", req.Description)
	}

	if req.StartDate != nil {
		queryBuilder = queryBuilder.Set("start_date", *req.StartDate)
	}

	if req.EndDate != nil {
		queryBuilder = queryBuilder.Set("end_date", *req.EndDate)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *experienceRepository) Delete(id int) error {
	deleteSQL, args, err := squirrel.
		Delete(experiencesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(deleteSQL, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
