package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
)

const (
	projectsTable          = "projects"
	projectTechStacksTable = "project_tech_stacks"
)

type ProjectRepository interface {
	List(filters *domain.ProjectFilters) ([]*domain.Project, int, error)
	GetByID(id int) (*domain.Project, error)
	Create(req *domain.CreateProjectRequest) (*domain.Project, error)
	Update(id int, req *domain.UpdateProjectRequest) error
	ReplaceTechStacks(projectID int, techStackIDs []int) error
	ListTechStacks(projectID int) ([]*domain.TechStack, error)
	Delete(id int) error
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{conn: conn}
}

const projectColumns = "id, name, description, repo_url, demo_url, image_path, featured, created_at, updated_at"

func (r *projectRepository) List(filters *domain.ProjectFilters) ([]*domain.Project, int, error) {
	queryBuilder := squirrel.
		Select(projectColumns).
		From(projectsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	countBuilder := squirrel.
		Select("COUNT(*)").
		From(projectsTable).
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		where := projectFilterClause(filters)
		if where != nil {
			queryBuilder = queryBuilder.Where(where)
			countBuilder = countBuilder.Where(where)
		}

		if filters.Limit > 0 {
			queryBuilder = queryBuilder.Limit(uint64(filters.Limit))
		}

		if filters.Offset > 0 {
			queryBuilder = queryBuilder.Offset(uint64(filters.Offset))
		}
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	var totalCount int
	if err := r.conn.QueryRow(countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	listSQL, listArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(listSQL, listArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, totalCount, nil
		}
		return nil, 0, err
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)

	for rows.Next() {
		project := &domain.Project{}
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.RepoURL,
			&project.DemoURL,
			&project.ImagePath,
			&project.Featured,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}

func projectFilterClause(filters *domain.ProjectFilters) squirrel.Sqlizer {
	clauses := squirrel.And{}

	if filters.Featured != nil {
		clauses = append(clauses, squirrel.Eq{"featured": *filters.Featured})
	}

	if filters.Search != nil && *filters.Search != "" {
		pattern := "%" + *filters.Search + "%"

		searchOr := squirrel.Or{}
		for _, locale := range domain.SupportedLocales {
			searchOr = append(searchOr,
				squirrel.ILike{fmt.Sprintf("name->>'%s'", locale): pattern},
				squirrel.ILike{fmt.Sprintf("description->>'%s'", locale): pattern},
			)
		}

		clauses = append(clauses, searchOr)
	}

	if len(clauses) == 0 {
		return nil
	}

	return clauses
}

func (r *projectRepository) GetByID(id int) (*domain.Project, error) {
	projectSQL, args, err := squirrel.
		Select(projectColumns).
		From(projectsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	project := &domain.Project{}
	row := r.conn.QueryRow(projectSQL, args...)
	if err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.RepoURL,
		&project.DemoURL,
		&project.ImagePath,
		&project.Featured,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return project, nil
}

// Create insere o projeto e os vínculos de tecnologia na mesma transação
func (r *projectRepository) Create(req *domain.CreateProjectRequest) (*domain.Project, error) {
	var id int

	err := r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		insertSQL, args, err := squirrel.
			Insert(projectsTable).
			Columns("name", "description", "repo_url", "demo_url", "image_path", "featured").
			Values(req.Name, req.Description, req.RepoURL, req.DemoURL, req.ImagePath, req.Featured).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if err := tx.QueryRow(insertSQL, args...).Scan(&id); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("failed to execute query: %w", err)
		}

		return insertProjectLinks(tx, id, req.TechStackIDs)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

func (r *projectRepository) Update(id int, req *domain.UpdateProjectRequest) error {
	queryBuilder := squirrel.
		Update(projectsTable).
		Where(squirrel.Eq{"id": id}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", req.Name)
	}

	if req.Description != nil {
		queryBuilder = queryBuilder.Set("description", req.Description)
	}

	if req.RepoURL != nil {
		queryBuilder = queryBuilder.Set("repo_url", *req.RepoURL)
	}

	if req.DemoURL != nil {
		queryBuilder = queryBuilder.Set("demo_url", *req.DemoURL)
	}

	if req.ImagePath != nil {
		queryBuilder = queryBuilder.Set("image_path", *req.ImagePath)
	}

	if req.Featured != nil {
		queryBuilder = queryBuilder.Set("featured", *req.Featured)
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

// ReplaceTechStacks substitui o conjunto inteiro de vínculos do projeto.
// Delete e insert rodam na mesma transação: uma falha no insert não deixa
// o projeto sem nenhum vínculo.
func (r *projectRepository) ReplaceTechStacks(projectID int, techStackIDs []int) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		deleteSQL, args, err := squirrel.
			Delete(projectTechStacksTable).
			Where(squirrel.Eq{"project_id": projectID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(deleteSQL, args...); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}

		return insertProjectLinks(tx, projectID, techStackIDs)
	})
}

func insertProjectLinks(tx *sql.Tx, projectID int, techStackIDs []int) error {
	if len(techStackIDs) == 0 {
		return nil
	}

	query := squirrel.
		Insert(projectTechStacksTable).
		Columns("project_id", "tech_stack_id").
		PlaceholderFormat(squirrel.Dollar)

	for _, techStackID := range techStackIDs {
		query = query.Values(projectID, techStackID)
	}

	// Conjuntos repetidos não duplicam vínculos
	query = query.Suffix("ON CONFLICT (project_id, tech_stack_id) DO NOTHING")

	insertSQL, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := tx.Exec(insertSQL, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *projectRepository) ListTechStacks(projectID int) ([]*domain.TechStack, error) {
	stacksSQL, args, err := squirrel.
		Select("t.id, t.name, t.category, t.icon_path, t.proficiency, t.created_at, t.updated_at").
		From(techStacksTable + " t").
		Join(projectTechStacksTable + " pt ON pt.tech_stack_id = t.id").
		Where(squirrel.Eq{"pt.project_id": projectID}).
		OrderBy("t.name ASC").
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

// Delete remove os vínculos de junção e depois o projeto, na mesma transação
func (r *projectRepository) Delete(id int) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		linksSQL, linksArgs, err := squirrel.
			Delete(projectTechStacksTable).
			Where(squirrel.Eq{"project_id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(linksSQL, linksArgs...); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}

		projectSQL, projectArgs, err := squirrel.
			Delete(projectsTable).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(projectSQL, projectArgs...); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}

		return nil
	})
}
