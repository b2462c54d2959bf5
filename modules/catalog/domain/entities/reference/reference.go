// Package reference holds the lookup tables members are resolved against:
// provinces, districts, institutions, branches, professions, payroll
// deduction (tevkifat) centers and titles, and member groups. They are plain
// records; all invariants that matter live in the import validator.
package reference

import "context"

type Kind string

const (
	KindProvince       Kind = "province"
	KindDistrict       Kind = "district"
	KindInstitution    Kind = "institution"
	KindBranch         Kind = "branch"
	KindProfession     Kind = "profession"
	KindTevkifatCenter Kind = "tevkifatCenter"
	KindTevkifatTitle  Kind = "tevkifatTitle"
	KindMemberGroup    Kind = "memberGroup"
)

// Item is an id + display-name pair, the only shape the rest of the system
// needs from a lookup table.
type Item struct {
	ID   string
	Name string
}

// District carries its parent province so identically named districts in
// different provinces stay distinguishable.
type District struct {
	ID           string
	Name         string
	ProvinceID   string
	ProvinceName string
}

// Repository lists active (non-deleted) rows per kind, id+name only.
type Repository interface {
	Provinces(ctx context.Context) ([]Item, error)
	Districts(ctx context.Context) ([]District, error)
	Institutions(ctx context.Context) ([]Item, error)
	Branches(ctx context.Context) ([]Item, error)
	Professions(ctx context.Context) ([]Item, error)
	TevkifatCenters(ctx context.Context) ([]Item, error)
	TevkifatTitles(ctx context.Context) ([]Item, error)
	MemberGroups(ctx context.Context) ([]Item, error)
}
