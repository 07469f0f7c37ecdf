package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
)

const testimonialsTable = "testimonials"

type TestimonialRepository interface {
	List() ([]*domain.Testimonial, error)
	GetByID(id int) (*domain.Testimonial, error)
	Create(req *domain.CreateTestimonialRequest) (*domain.Testimonial, error)
	Update(id int, req *domain.UpdateTestimonialRequest) error
	Delete(id int) error
}

type testimonialRepository struct {
	conn *postgres.Connection
}

func NewTestimonialRepository(conn *postgres.Connection) TestimonialRepository {
	return &testimonialRepository{conn: conn}
}

const testimonialColumns = "id, author_name, author_role, quote, rating, photo_path, created_at, updated_at"

func (r *testimonialRepository) List() ([]*domain.Testimonial, error) {
	testimonialsSQL, args, err := squirrel.
		Select(testimonialColumns).
		From(testimonialsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(testimonialsSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	testimonials := make([]*domain.Testimonial, 0)

	for rows.Next() {
		testimonial := &domain.Testimonial{}
		if err := rows.Scan(
			&testimonial.ID,
			&testimonial.AuthorName,
			&testimonial.AuthorRole,
			&testimonial.Quote,
			&testimonial.Rating,
			&testimonial.PhotoPath,
			&testimonial.CreatedAt,
			&testimonial.UpdatedAt,
		); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, testimonial)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return testimonials, nil
}

func (r *testimonialRepository) GetByID(id int) (*domain.Testimonial, error) {
	testimonialSQL, args, err := squirrel.
		Select(testimonialColumns).
		From(testimonialsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	testimonial := &domain.Testimonial{}
	row := r.conn.QueryRow(testimonialSQL, args...)
	if err := row.Scan(
		&testimonial.ID,
		&testimonial.AuthorName,
		&testimonial.AuthorRole,
		&testimonial.Quote,
		&testimonial.Rating,
		&testimonial.PhotoPath,
		&testimonial.CreatedAt,
		&testimonial.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return testimonial, nil
}

func (r *testimonialRepository) Create(req *domain.CreateTestimonialRequest) (*domain.Testimonial, error) {
	insertSQL, args, err := squirrel.
		Insert(testimonialsTable).
		Columns("author_name", "author_role", "quote", "rating", "photo_path").
		Values(req.AuthorName, req.AuthorRole, req.Quote, req.Rating, req.PhotoPath).
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

func (r *testimonialRepository) Update(id int, req *domain.UpdateTestimonialRequest) error {
	queryBuilder := squirrel.
		Update(testimonialsTable).
		Where(squirrel.Eq{"id": id}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if req.AuthorName != nil {
		queryBuilder = queryBuilder.Set("author_name", *req.AuthorName)
	}

	if req.AuthorRole != nil {
		queryBuilder = queryBuilder.Set("author_role", *req.AuthorRole)
	}

	if req.Quote != nil {
		queryBuilder = queryBuilder.Set("quote", req.Quote)
	}

	if req.Rating != nil {
		queryBuilder = queryBuilder.Set("rating", *req.Rating)
	}

	if req.PhotoPath != nil {
		queryBuilder = queryBuilder.Set("photo_path", *req.PhotoPath)
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

func (r *testimonialRepository) Delete(id int) error {
	deleteSQL, args, err := squirrel.
		Delete(testimonialsTable).
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
