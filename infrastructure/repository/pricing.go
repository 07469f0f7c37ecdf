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
	servicesTable          = "services"
	packagesTable          = "package_pricings"
	packageItemsTable      = "package_items"
	packageBenefitsTable   = "package_benefits"
	packageExclusionsTable = "package_exclusions"
)

// PricingRepository persiste serviços, pacotes de preço e os vínculos
// de benefícios/exclusões dos pacotes
type PricingRepository interface {
	ListServices() ([]*domain.Service, error)
	GetServiceByID(id int) (*domain.Service, error)
	CreateService(req *domain.CreateServiceRequest) (*domain.Service, error)
	UpdateService(id int, req *domain.UpdateServiceRequest) error
	DeleteService(id int) error

	ListPackagesByService(serviceID int) ([]*domain.PackagePricing, error)
	GetPackageByID(id int) (*domain.PackagePricing, error)
	CreatePackage(req *domain.CreatePackagePricingRequest) (*domain.PackagePricing, error)
	UpdatePackage(id int, req *domain.UpdatePackagePricingRequest) error
	ReplacePackageLinks(packageID int, benefitIDs, exclusionIDs []int) error
	ListPackageBenefits(packageID int) ([]*domain.PackageItem, error)
	ListPackageExclusions(packageID int) ([]*domain.PackageItem, error)
	ItemsExist(ids []int) (bool, error)
	DeletePackage(id int) error
}

type pricingRepository struct {
	conn *postgres.Connection
}

func NewPricingRepository(conn *postgres.Connection) PricingRepository {
	return &pricingRepository{conn: conn}
}

const serviceColumns = "id, name, description, icon_path, created_at, updated_at"
const packageColumns = "id, service_id, name, price, currency, duration_days, created_at, updated_at"

func (r *pricingRepository) ListServices() ([]*domain.Service, error) {
	servicesSQL, args, err := squirrel.
		Select(serviceColumns).
		From(servicesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(servicesSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)

	for rows.Next() {
		service := &domain.Service{}
		if err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.Description,
			&service.IconPath,
			&service.CreatedAt,
			&service.UpdatedAt,
		); err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func (r *pricingRepository) GetServiceByID(id int) (*domain.Service, error) {
	serviceSQL, args, err := squirrel.
		Select(serviceColumns).
		From(servicesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	service := &domain.Service{}
	row := r.conn.QueryRow(serviceSQL, args...)
	if err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.IconPath,
		&service.CreatedAt,
		&service.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return service, nil
}

func (r *pricingRepository) CreateService(req *domain.CreateServiceRequest) (*domain.Service, error) {
	insertSQL, args, err := squirrel.
		Insert(servicesTable).
		Columns("name", "description", "icon_path").
		Values(req.Name, req.Description, req.IconPath).
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

	return r.GetServiceByID(id)
}

func (r *pricingRepository) UpdateService(id int, req *domain.UpdateServiceRequest) error {
	queryBuilder := squirrel.
		Update(servicesTable).
		Where(squirrel.Eq{"id": id}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", req.Name)
	}

	if req.Description != nil {
		queryBuilder = queryBuilder.Set("description", req.Description)
	}

	if req.IconPath != nil {
		queryBuilder = queryBuilder.Set("icon_path", *req.IconPath)
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

// DeleteService remove os pacotes do serviço (e seus vínculos) antes do
// próprio serviço, tudo na mesma transação
func (r *pricingRepository) DeleteService(id int) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		// Vínculos dos pacotes do serviço
		for _, linkTable := range []string{packageBenefitsTable, packageExclusionsTable} {
			linkSQL := fmt.Sprintf(
				"DELETE FROM %s WHERE package_id IN (SELECT id FROM %s WHERE service_id = $1)",
				linkTable, packagesTable,
			)
			if _, err := tx.Exec(linkSQL, id); err != nil {
				return fmt.Errorf("failed to execute query: %w", err)
			}
		}

		packagesSQL, packagesArgs, err := squirrel.
			Delete(packagesTable).
			Where(squirrel.Eq{"service_id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(packagesSQL, packagesArgs...); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}

		serviceSQL, serviceArgs, err := squirrel.
			Delete(servicesTable).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(serviceSQL, serviceArgs...); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}

		return nil
	})
}

func (r *pricingRepository) ListPackagesByService(serviceID int) ([]*domain.PackagePricing, error) {
	packagesSQL, args, err := squirrel.
		Select(packageColumns).
		From(packagesTable).
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("price ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(packagesSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	packages := make([]*domain.PackagePricing, 0)

	for rows.Next() {
		pkg, err := deserializePackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *pricingRepository) GetPackageByID(id int) (*domain.PackagePricing, error) {
	packageSQL, args, err := squirrel.
		Select(packageColumns).
		From(packagesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	pkg := &domain.PackagePricing{}
	row := r.conn.QueryRow(packageSQL, args...)
	if err := row.Scan(
		&pkg.ID,
		&pkg.ServiceID,
		&pkg.Name,
		&pkg.Price,
		&pkg.Currency,
		&pkg.DurationDays,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return pkg, nil
}

// CreatePackage insere o pacote e os vínculos de benefícios/exclusões
// na mesma transação
func (r *pricingRepository) CreatePackage(req *domain.CreatePackagePricingRequest) (*domain.PackagePricing, error) {
	var id int

	err := r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		insertSQL, args, err := squirrel.
			Insert(packagesTable).
			Columns("service_id", "name", "price", "currency", "duration_days").
			Values(req.ServiceID, req.Name, req.Price, req.Currency, req.DurationDays).
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

		if err := insertPackageLinks(tx, packageBenefitsTable, id, req.BenefitIDs); err != nil {
			return err
		}

		return insertPackageLinks(tx, packageExclusionsTable, id, req.ExclusionIDs)
	})
	if err != nil {
		return nil, err
	}

	return r.GetPackageByID(id)
}

func (r *pricingRepository) UpdatePackage(id int, req *domain.UpdatePackagePricingRequest) error {
	queryBuilder := squirrel.
		Update(packagesTable).
		Where(squirrel.Eq{"id": id}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", req.Name)
	}

	if req.Price != nil {
		queryBuilder = queryBuilder.Set("price", *req.Price)
	}

	if req.Currency != nil {
		queryBuilder = queryBuilder.Set("currency", *req.Currency)
	}

	if req.DurationDays != nil {
		queryBuilder = queryBuilder.Set("duration_days", *req.DurationDays)
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

// ReplacePackageLinks substitui os conjuntos inteiros de benefícios e
// exclusões do pacote na mesma transação
func (r *pricingRepository) ReplacePackageLinks(packageID int, benefitIDs, exclusionIDs []int) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, linkTable := range []string{packageBenefitsTable, packageExclusionsTable} {
			deleteSQL, args, err := squirrel.
				Delete(linkTable).
				Where(squirrel.Eq{"package_id": packageID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}

			if _, err := tx.Exec(deleteSQL, args...); err != nil {
				return fmt.Errorf("failed to execute query: %w", err)
			}
		}

		if err := insertPackageLinks(tx, packageBenefitsTable, packageID, benefitIDs); err != nil {
			return err
		}

		return insertPackageLinks(tx, packageExclusionsTable, packageID, exclusionIDs)
	})
}

func insertPackageLinks(tx *sql.Tx, linkTable string, packageID int, itemIDs []int) error {
	if len(itemIDs) == 0 {
		return nil
	}

	query := squirrel.
		Insert(linkTable).
		Columns("package_id", "item_id").
		PlaceholderFormat(squirrel.Dollar)

	for _, itemID := range itemIDs {
		query = query.Values(packageID, itemID)
	}

	// Conjuntos repetidos não duplicam vínculos
	query = query.Suffix("ON CONFLICT (package_id, item_id) DO NOTHING")

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

// ListPackageBenefits carrega os benefícios vinculados a um pacote
func (r *pricingRepository) ListPackageBenefits(packageID int) ([]*domain.PackageItem, error) {
	return r.listPackageItems(packageID, packageBenefitsTable)
}

// ListPackageExclusions carrega as exclusões vinculadas a um pacote
func (r *pricingRepository) ListPackageExclusions(packageID int) ([]*domain.PackageItem, error) {
	return r.listPackageItems(packageID, packageExclusionsTable)
}

func (r *pricingRepository) listPackageItems(packageID int, linkTable string) ([]*domain.PackageItem, error) {
	itemsSQL, args, err := squirrel.
		Select("i.id, i.label").
		From(packageItemsTable + " i").
		Join(linkTable + " l ON l.item_id = i.id").
		Where(squirrel.Eq{"l.package_id": packageID}).
		OrderBy("i.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(itemsSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.PackageItem, 0)

	for rows.Next() {
		item := &domain.PackageItem{}
		if err := rows.Scan(&item.ID, &item.Label); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// ItemsExist verifica a existência de todos os itens informados.
// Usado na checagem de chave estrangeira antes de vincular.
func (r *pricingRepository) ItemsExist(ids []int) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

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
		From(packageItemsTable).
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

// DeletePackage remove os vínculos do pacote e depois o pacote, na mesma transação
func (r *pricingRepository) DeletePackage(id int) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, linkTable := range []string{packageBenefitsTable, packageExclusionsTable} {
			deleteSQL, args, err := squirrel.
				Delete(linkTable).
				Where(squirrel.Eq{"package_id": id}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}

			if _, err := tx.Exec(deleteSQL, args...); err != nil {
				return fmt.Errorf("failed to execute query: %w", err)
			}
		}

		packageSQL, args, err := squirrel.
			Delete(packagesTable).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(packageSQL, args...); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}

		return nil
	})
}

func deserializePackage(rows *sql.Rows) (*domain.PackagePricing, error) {
	pkg := &domain.PackagePricing{}

	if err := rows.Scan(
		&pkg.ID,
		&pkg.ServiceID,
		&pkg.Name,
		&pkg.Price,
		&pkg.Currency,
		&pkg.DurationDays,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return pkg, nil
}
