package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
)

const articlesTable = "articles"

type ArticleRepository interface {
	List(filters *domain.ArticleFilters) ([]*domain.Article, int, error)
	GetByID(id int) (*domain.Article, error)
	GetBySlug(slug string) (*domain.Article, error)
	Create(req *domain.CreateArticleRequest) (*domain.Article, error)
	Update(id int, req *domain.UpdateArticleRequest) error
	Delete(id int) error
}

type articleRepository struct {
	conn *postgres.Connection
}

func NewArticleRepository(conn *postgres.Connection) ArticleRepository {
	return &articleRepository{conn: conn}
}

const articleColumns = "id, slug, title, summary, content, thumbnail_path, read_duration, published, created_at, updated_at"

func (r *articleRepository) List(filters *domain.ArticleFilters) ([]*domain.Article, int, error) {
	queryBuilder := squirrel.
		Select(articleColumns).
		From(articlesTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	countBuilder := squirrel.
		Select("COUNT(*)").
		From(articlesTable).
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		where := articleFilterClause(filters)
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

	// Total de registros para paginação
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	var totalCount int
	if err := r.conn.QueryRow(countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
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

	articles := make([]*domain.Article, 0)

	for rows.Next() {
		article, err := deserializeArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return articles, totalCount, nil
}

// articleFilterClause monta os filtros de listagem. A busca textual é um OR
// sobre os locales suportados dos campos multilíngues (título e resumo).
func articleFilterClause(filters *domain.ArticleFilters) squirrel.Sqlizer {
	clauses := squirrel.And{}

	if filters.Published != nil {
		clauses = append(clauses, squirrel.Eq{"published": *filters.Published})
	}

	if filters.Search != nil && *filters.Search != "" {
		pattern := "%" + *filters.Search + "%"

		searchOr := squirrel.Or{}
		for _, locale := range domain.SupportedLocales {
			searchOr = append(searchOr,
				squirrel.ILike{fmt.Sprintf("title->>'%s'", locale): pattern},
				squirrel.ILike{fmt.Sprintf("summary->>'%s'", locale): pattern},
			)
		}

		clauses = append(clauses, searchOr)
	}

	if len(clauses) == 0 {
		return nil
	}

	return clauses
}

func (r *articleRepository) GetByID(id int) (*domain.Article, error) {
	return r.getArticle(squirrel.Eq{"id": id})
}

func (r *articleRepository) GetBySlug(slug string) (*domain.Article, error) {
	return r.getArticle(squirrel.Eq{"slug": slug})
}

func (r *articleRepository) getArticle(whereClause squirrel.Sqlizer) (*domain.Article, error) {
	articleSQL, args, err := squirrel.
		Select(articleColumns).
		From(articlesTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(articleSQL, args...)

	article, err := deserializeArticleRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return article, nil
}

func (r *articleRepository) Create(req *domain.CreateArticleRequest) (*domain.Article, error) {
	insertSQL, args, err := squirrel.
		Insert(articlesTable).
		Columns("slug", "title", "summary", "content", "thumbnail_path", "read_duration", "published").
		Values(req.Slug, req.Title, req.Summary, req.Content, req.ThumbnailPath, req.ReadDuration, req.Published).
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

func (r *articleRepository) Update(id int, req *domain.UpdateArticleRequest) error {
	queryBuilder := squirrel.
		Update(articlesTable).
		Where(squirrel.Eq{"id": id}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if req.Slug != nil {
		queryBuilder = queryBuilder.Set("slug", *req.Slug)
	}

	if req.Title != nil {
		queryBuilder = queryBuilder.Set("title", req.Title)
	}

	if req.Summary != nil {
		queryBuilder = queryBuilder.Set("summary", req.Summary)
	}

	if req.Content != nil {
		queryBuilder = queryBuilder.Set("content", req.Content)
	}

	if req.ThumbnailPath != nil {
		queryBuilder = queryBuilder.Set("thumbnail_path", *req.ThumbnailPath)
	}

	if req.ReadDuration != nil {
		queryBuilder = queryBuilder.Set("read_duration", *req.ReadDuration)
	}

	if req.Published != nil {
		queryBuilder = queryBuilder.Set("published", *req.Published)
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

func (r *articleRepository) Delete(id int) error {
	deleteSQL, args, err := squirrel.
		Delete(articlesTable).
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

func deserializeArticle(rows *sql.Rows) (*domain.Article, error) {
	article := &domain.Article{}

	if err := rows.Scan(
		&article.ID,
		&article.Slug,
		&article.Title,
		&article.Summary,
		&article.Content,
		&article.ThumbnailPath,
		&article.ReadDuration,
		&article.Published,
		&article.CreatedAt,
		&article.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return article, nil
}

func deserializeArticleRow(row *sql.Row) (*domain.Article, error) {
	article := &domain.Article{}

	if err := row.Scan(
		&article.ID,
		&article.Slug,
		&article.Title,
		&article.Summary,
		&article.Content,
		&article.ThumbnailPath,
		&article.ReadDuration,
		&article.Published,
		&article.CreatedAt,
		&article.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return article, nil
}
