package importing

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sendikahq/sendika/modules/catalog/domain/entities/reference"
)

func refID(n int) string {
	return fmt.Sprintf("c%024d", n)
}

// staticCatalogRepo serves a fixed reference snapshot in memory.
type staticCatalogRepo struct {
	provinces       []reference.Item
	districts       []reference.District
	institutions    []reference.Item
	branches        []reference.Item
	professions     []reference.Item
	tevkifatCenters []reference.Item
	tevkifatTitles  []reference.Item
	memberGroups    []reference.Item
}

func (r *staticCatalogRepo) Provinces(context.Context) ([]reference.Item, error) {
	return r.provinces, nil
}

func (r *staticCatalogRepo) Districts(context.Context) ([]reference.District, error) {
	return r.districts, nil
}

func (r *staticCatalogRepo) Institutions(context.Context) ([]reference.Item, error) {
	return r.institutions, nil
}

func (r *staticCatalogRepo) Branches(context.Context) ([]reference.Item, error) {
	return r.branches, nil
}

func (r *staticCatalogRepo) Professions(context.Context) ([]reference.Item, error) {
	return r.professions, nil
}

func (r *staticCatalogRepo) TevkifatCenters(context.Context) ([]reference.Item, error) {
	return r.tevkifatCenters, nil
}

func (r *staticCatalogRepo) TevkifatTitles(context.Context) ([]reference.Item, error) {
	return r.tevkifatTitles, nil
}

func (r *staticCatalogRepo) MemberGroups(context.Context) ([]reference.Item, error) {
	return r.memberGroups, nil
}

// Fixture ids referenced across the validator tests.
var (
	istanbulID   = refID(1)
	ankaraID     = refID(2)
	ispartaID    = refID(3)
	diyarbakirID = refID(4)

	kadikoyID        = refID(11)
	cankayaID        = refID(12)
	ispartaMerkezID  = refID(13)
	diyarbMerkezID   = refID(14)
	ministryID       = refID(21)
	istanbulBranchID = refID(31)
	teacherID        = refID(41)
	centralPayID     = refID(51)
	clerkTitleID     = refID(61)
	generalGroupID   = refID(71)
)

func fixtureRepo() *staticCatalogRepo {
	return &staticCatalogRepo{
		provinces: []reference.Item{
			{ID: istanbulID, Name: "İstanbul"},
			{ID: ankaraID, Name: "Ankara"},
			{ID: ispartaID, Name: "Isparta"},
			{ID: diyarbakirID, Name: "Diyarbakır"},
		},
		districts: []reference.District{
			{ID: kadikoyID, Name: "Kadıköy", ProvinceID: istanbulID, ProvinceName: "İstanbul"},
			{ID: cankayaID, Name: "Çankaya", ProvinceID: ankaraID, ProvinceName: "Ankara"},
			{ID: ispartaMerkezID, Name: "Merkez", ProvinceID: ispartaID, ProvinceName: "Isparta"},
			{ID: diyarbMerkezID, Name: "Merkez", ProvinceID: diyarbakirID, ProvinceName: "Diyarbakır"},
		},
		institutions:    []reference.Item{{ID: ministryID, Name: "Milli Eğitim Bakanlığı"}},
		branches:        []reference.Item{{ID: istanbulBranchID, Name: "İstanbul Şubesi"}},
		professions:     []reference.Item{{ID: teacherID, Name: "Öğretmen"}},
		tevkifatCenters: []reference.Item{{ID: centralPayID, Name: "Merkez Saymanlık"}},
		tevkifatTitles:  []reference.Item{{ID: clerkTitleID, Name: "Memur"}},
		memberGroups:    []reference.Item{{ID: generalGroupID, Name: "Genel"}},
	}
}

func fixtureCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := LoadCatalog(context.Background(), fixtureRepo())
	require.NoError(t, err)
	return catalog
}

// validRow returns a row that passes every rule; tests mutate single fields.
func validRow(index int) CanonicalRow {
	return CanonicalRow{
		Index: index,
		Fields: map[string]string{
			FieldFirstName:       "Ayşe",
			FieldLastName:        "Yılmaz",
			FieldNationalID:      "12345678901",
			FieldPhone:           "05551234567",
			FieldMotherName:      "Fatma",
			FieldFatherName:      "Mehmet",
			FieldBirthDate:       "1990-01-01",
			FieldBirthplace:      "İstanbul",
			FieldGender:          "Kadın",
			FieldEducationStatus: "Lise",
			FieldProvinceID:      "İstanbul",
			FieldDistrictID:      "Kadıköy",
			FieldInstitutionID:   "Milli Eğitim Bakanlığı",
		},
	}
}
