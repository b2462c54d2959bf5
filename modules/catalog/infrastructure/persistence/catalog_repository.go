package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"

	"github.com/sendikahq/sendika/modules/catalog/domain/entities/reference"
	"github.com/sendikahq/sendika/pkg/composables"
)

const (
	provincesQuery = `SELECT id, name FROM provinces WHERE deleted_at IS NULL ORDER BY name`

	districtsQuery = `
		SELECT d.id, d.name, d.province_id, p.name
		FROM districts d
		JOIN provinces p ON p.id = d.province_id
		WHERE d.deleted_at IS NULL AND p.deleted_at IS NULL
		ORDER BY p.name, d.name`

	institutionsQuery    = `SELECT id, name FROM institutions WHERE deleted_at IS NULL ORDER BY name`
	branchesQuery        = `SELECT id, name FROM branches WHERE deleted_at IS NULL ORDER BY name`
	professionsQuery     = `SELECT id, name FROM professions WHERE deleted_at IS NULL ORDER BY name`
	tevkifatCentersQuery = `SELECT id, name FROM tevkifat_centers WHERE deleted_at IS NULL ORDER BY name`
	tevkifatTitlesQuery  = `SELECT id, name FROM tevkifat_titles WHERE deleted_at IS NULL ORDER BY name`
	memberGroupsQuery    = `SELECT id, name FROM member_groups WHERE deleted_at IS NULL ORDER BY name`
)

type PgCatalogRepository struct{}

func NewCatalogRepository() reference.Repository {
	return &PgCatalogRepository{}
}

func (r *PgCatalogRepository) listItems(ctx context.Context, query string) ([]reference.Item, error) {
	conn, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, gerrors.Wrap(err, "catalog query failed")
	}
	defer rows.Close()

	var out []reference.Item
	for rows.Next() {
		var item reference.Item
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, gerrors.Wrap(err, "catalog scan failed")
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PgCatalogRepository) Provinces(ctx context.Context) ([]reference.Item, error) {
	return r.listItems(ctx, provincesQuery)
}

func (r *PgCatalogRepository) Districts(ctx context.Context) ([]reference.District, error) {
	conn, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, districtsQuery)
	if err != nil {
		return nil, gerrors.Wrap(err, "district query failed")
	}
	defer rows.Close()

	var out []reference.District
	for rows.Next() {
		var d reference.District
		if err := rows.Scan(&d.ID, &d.Name, &d.ProvinceID, &d.ProvinceName); err != nil {
			return nil, gerrors.Wrap(err, "district scan failed")
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PgCatalogRepository) Institutions(ctx context.Context) ([]reference.Item, error) {
	return r.listItems(ctx, institutionsQuery)
}

func (r *PgCatalogRepository) Branches(ctx context.Context) ([]reference.Item, error) {
	return r.listItems(ctx, branchesQuery)
}

func (r *PgCatalogRepository) Professions(ctx context.Context) ([]reference.Item, error) {
	return r.listItems(ctx, professionsQuery)
}

func (r *PgCatalogRepository) TevkifatCenters(ctx context.Context) ([]reference.Item, error) {
	return r.listItems(ctx, tevkifatCentersQuery)
}

func (r *PgCatalogRepository) TevkifatTitles(ctx context.Context) ([]reference.Item, error) {
	return r.listItems(ctx, tevkifatTitlesQuery)
}

func (r *PgCatalogRepository) MemberGroups(ctx context.Context) ([]reference.Item, error) {
	return r.listItems(ctx, memberGroupsQuery)
}
