package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
)

const techStacksTable = "tech_stacks"

type TechStackRepository interface {
	List() ([]*domain.TechStack, error)
	GetByID(id int) (*domain.TechStack, error)
	AllExist(ids []int) (bool, error)
	Create(req *domain.CreateTechStackRequest) (*domain.TechStack, error)
	Update(id int, req *domain.UpdateTechStackRequest) error
	Delete(id int) error
}

type techStackRepository struct {
	conn *postgres.Connection
}

func NewTechStackRepository(conn *postgres.Connection) TechStackRepository {
	return &techStackRepository{conn: conn}
}

const techStackColumns = "id, name, category, icon_path, proficiency, created_at, updated_at"

func (r *techStackRepository) List() ([]*domain.TechStack, error) {
	stacksSQL, args, err := squirrel.
		Select(techStackColumns).
		From(techStacksTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(stacksSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	stacks := make([]*domain.TechStack, 0)

	for rows.Next() {
		stack, err := deserializeTechStack(rows)
		if err != nil {
			return nil, err
		}
		stacks = append(stacks, stack)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stacks, nil
}

func (r *techStackRepository) GetByID(id int) (*domain.TechStack, error) {
	stackSQL, args, err := squirrel.
		Select(techStackColumns).
		From(techStacksTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	stack := &domain.TechStack{}
	row := r.conn.QueryRow(stackSQL, args...)
	if err := row.Scan(
		&stack.ID,
		&stack.Name,
		&stack.Category,
		&stack.IconPath,
		&stack.Proficiency,
		&stack.CreatedAt,
		&stack.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return stack, nil
}

// AllExist verifica se todos os IDs informados existem.
// Usado na checagem de chave estrangeira antes de vincular tecnologias.
func (r *techStackRepository) AllExist(ids []int) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	// Remove duplicados antes de comparar a contagem
	unique := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	uniqueIDs := make([]int, 0, len(unique))
	for id := range unique {
		uniqueIDs = append(uniqueIDs, id)
	}

	countSQL, args, err := squirrel.
		Select("COUNT(id)").
		From(techStacksTable).
		Where(squirrel.Eq{"id": uniqueIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.conn.QueryRow(countSQL, args...).Scan(&count); err != nil {
		return false, err
	}

	return count == len(uniqueIDs), nil
}

func (r *techStackRepository) Create(req *domain.CreateTechStackRequest) (*domain.TechStack, error) {
	insertSQL, args, err := squirrel.
		Insert(techStacksTable).
		Columns("name", "category", "icon_path", "proficiency").
		Values(req.Name, req.Category, req.IconPath, req.Proficiency).
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

func (r *techStackRepository) Update(id int, req *domain.UpdateTechStackRequest) error {
	queryBuilder := squirrel.
		Update(techStacksTable).
		Where(squirrel.Eq{"id": id}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}

	if req.Category != nil {
		queryBuilder = queryBuilder.Set("category", *req.Category)
	}

	if req.IconPath != nil {
		queryBuilder = queryBuilder.Set("icon_path", *req.IconPath)
	}

	if req.Proficiency != nil {
		queryBuilder = queryBuilder.Set("proficiency", *req.Proficiency)
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

func (r *techStackRepository) Delete(id int) error {
	deleteSQL, args, err := squirrel.
		Delete(techStacksTable).
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

func deserializeTechStack(rows *sql.Rows) (*domain.TechStack, error) {
	stack := &domain.TechStack{}

	if err := rows.Scan(
		&stack.ID,
		&stack.Name,
		&stack.Category,
		&stack.IconPath,
		&stack.Proficiency,
		&stack.CreatedAt,
		&stack.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return stack, nil
}
