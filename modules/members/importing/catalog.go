package importing

import (
	"context"

	gerrors "github.com/go-faster/errors"

	"github.com/sendikahq/sendika/modules/catalog/domain/entities/reference"
	"github.com/sendikahq/sendika/pkg/ids"
	"github.com/sendikahq/sendika/pkg/intl"
)

// kindIndex resolves one reference kind: an identifier set for cells that
// already carry an internal id, and a folded-name map for human input.
type kindIndex struct {
	idSet  map[string]struct{}
	byName map[string]string
}

func newKindIndex(items []reference.Item) kindIndex {
	idx := kindIndex{
		idSet:  make(map[string]struct{}, len(items)),
		byName: make(map[string]string, len(items)),
	}
	for _, item := range items {
		idx.idSet[item.ID] = struct{}{}
		idx.byName[intl.FoldTurkish(item.Name)] = item.ID
	}
	return idx
}

// resolve checks id-shaped input against the identifier set first, then
// falls back to folded-name lookup. A file can mix raw ids and names freely.
func (idx kindIndex) resolve(value string) (string, bool) {
	if ids.IsID(value) {
		if _, ok := idx.idSet[value]; ok {
			return value, true
		}
	}
	id, ok := idx.byName[intl.FoldTurkish(value)]
	return id, ok
}

// Catalog is the immutable per-request snapshot of every lookup table. It is
// built once before the first row and never mutated mid-batch.
type Catalog struct {
	provinces       kindIndex
	districts       kindIndex
	institutions    kindIndex
	branches        kindIndex
	professions     kindIndex
	tevkifatCenters kindIndex
	tevkifatTitles  kindIndex
	memberGroups    kindIndex

	// districtsByProvince keys are "foldedProvince|foldedDistrict" so that
	// identically named districts in different provinces stay apart.
	districtsByProvince map[string]string
	districtProvince    map[string]string // district id -> province id
	provinceNameByID    map[string]string // province id -> folded name
}

func LoadCatalog(ctx context.Context, repo reference.Repository) (*Catalog, error) {
	provinces, err := repo.Provinces(ctx)
	if err != nil {
		return nil, gerrors.Wrap(err, "loading provinces")
	}
	districts, err := repo.Districts(ctx)
	if err != nil {
		return nil, gerrors.Wrap(err, "loading districts")
	}
	institutions, err := repo.Institutions(ctx)
	if err != nil {
		return nil, gerrors.Wrap(err, "loading institutions")
	}
	branches, err := repo.Branches(ctx)
	if err != nil {
		return nil, gerrors.Wrap(err, "loading branches")
	}
	professions, err := repo.Professions(ctx)
	if err != nil {
		return nil, gerrors.Wrap(err, "loading professions")
	}
	tevkifatCenters, err := repo.TevkifatCenters(ctx)
	if err != nil {
		return nil, gerrors.Wrap(err, "loading tevkifat centers")
	}
	tevkifatTitles, err := repo.TevkifatTitles(ctx)
	if err != nil {
		return nil, gerrors.Wrap(err, "loading tevkifat titles")
	}
	memberGroups, err := repo.MemberGroups(ctx)
	if err != nil {
		return nil, gerrors.Wrap(err, "loading member groups")
	}

	c := &Catalog{
		provinces:           newKindIndex(provinces),
		institutions:        newKindIndex(institutions),
		branches:            newKindIndex(branches),
		professions:         newKindIndex(professions),
		tevkifatCenters:     newKindIndex(tevkifatCenters),
		tevkifatTitles:      newKindIndex(tevkifatTitles),
		memberGroups:        newKindIndex(memberGroups),
		districtsByProvince: make(map[string]string, len(districts)),
		districtProvince:    make(map[string]string, len(districts)),
		provinceNameByID:    make(map[string]string, len(provinces)),
	}

	for _, p := range provinces {
		c.provinceNameByID[p.ID] = intl.FoldTurkish(p.Name)
	}

	districtItems := make([]reference.Item, 0, len(districts))
	for _, d := range districts {
		districtItems = append(districtItems, reference.Item{ID: d.ID, Name: d.Name})
		c.districtProvince[d.ID] = d.ProvinceID
		qualified := intl.FoldTurkish(d.ProvinceName) + "|" + intl.FoldTurkish(d.Name)
		c.districtsByProvince[qualified] = d.ID
	}
	c.districts = newKindIndex(districtItems)

	return c, nil
}

func (c *Catalog) ResolveProvince(value string) (string, bool) {
	return c.provinces.resolve(value)
}

// ResolveDistrict prefers the province-qualified index when the row has
// already resolved a province; a bare-name hit is still returned, flagged as
// unqualified so the validator can decide whether that deserves a warning.
func (c *Catalog) ResolveDistrict(value, provinceID string) (id string, qualified, ok bool) {
	if ids.IsID(value) {
		if _, found := c.districts.idSet[value]; found {
			return value, true, true
		}
	}
	if provinceID != "" {
		provinceName, found := c.provinceNameByID[provinceID]
		if found {
			if id, found := c.districtsByProvince[provinceName+"|"+intl.FoldTurkish(value)]; found {
				return id, true, true
			}
		}
	}
	id, ok = c.districts.byName[intl.FoldTurkish(value)]
	return id, false, ok
}

// DistrictProvince returns the parent province of a resolved district.
func (c *Catalog) DistrictProvince(districtID string) string {
	return c.districtProvince[districtID]
}

func (c *Catalog) ResolveInstitution(value string) (string, bool) {
	return c.institutions.resolve(value)
}

func (c *Catalog) ResolveBranch(value string) (string, bool) {
	return c.branches.resolve(value)
}

func (c *Catalog) ResolveProfession(value string) (string, bool) {
	return c.professions.resolve(value)
}

func (c *Catalog) ResolveTevkifatCenter(value string) (string, bool) {
	return c.tevkifatCenters.resolve(value)
}

func (c *Catalog) ResolveTevkifatTitle(value string) (string, bool) {
	return c.tevkifatTitles.resolve(value)
}

func (c *Catalog) ResolveMemberGroup(value string) (string, bool) {
	return c.memberGroups.resolve(value)
}
