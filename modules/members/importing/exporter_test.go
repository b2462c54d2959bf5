package importing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleData(t *testing.T) SampleData {
	t.Helper()
	repo := fixtureRepo()
	ctx := context.Background()

	var data SampleData
	var err error
	data.Provinces, err = repo.Provinces(ctx)
	require.NoError(t, err)
	data.Districts, err = repo.Districts(ctx)
	require.NoError(t, err)
	data.Institutions, err = repo.Institutions(ctx)
	require.NoError(t, err)
	data.Branches, err = repo.Branches(ctx)
	require.NoError(t, err)
	data.Professions, err = repo.Professions(ctx)
	require.NoError(t, err)
	data.TevkifatCenters, err = repo.TevkifatCenters(ctx)
	require.NoError(t, err)
	data.TevkifatTitles, err = repo.TevkifatTitles(ctx)
	require.NoError(t, err)
	data.MemberGroups, err = repo.MemberGroups(ctx)
	require.NoError(t, err)
	return data
}

func TestTemplateCSV_RoundTripsThroughValidator(t *testing.T) {
	data := sampleData(t)
	csv := TemplateCSV(data)

	header, rows, err := Tokenize(csv)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	keys := NormalizeHeaders(header)
	for _, key := range keys {
		require.Contains(t, headerAliases, key, "header %q did not map to a canonical key", key)
	}

	v := NewValidator(fixtureCatalog(t))
	outcome, resolved := v.ValidateRow(MapRow(keys, rows[0], 2))
	require.Equal(t, StatusValid, outcome.Status)
	require.Empty(t, outcome.Issues)
	require.NotNil(t, resolved)
}

func TestTemplateCSV_Shape(t *testing.T) {
	csv := TemplateCSV(sampleData(t))

	require.True(t, bytes.HasPrefix(csv, utf8BOM))

	header, rows, err := Tokenize(csv)
	require.NoError(t, err)
	require.Len(t, header, len(templateHeaders))
	require.Len(t, rows[0], len(templateHeaders))
	require.Equal(t, "Ad", header[0])
}

func TestTemplateCSV_DistrictMatchesSampleProvince(t *testing.T) {
	data := sampleData(t)
	_, rows, err := Tokenize(TemplateCSV(data))
	require.NoError(t, err)

	keys := NormalizeHeaders(templateHeaders)
	row := MapRow(keys, rows[0], 2)
	require.Equal(t, "İstanbul", row.Get(FieldProvinceID))
	require.Equal(t, "Kadıköy", row.Get(FieldDistrictID))
}

func TestSampleWorkbook(t *testing.T) {
	workbook, err := SampleWorkbook(sampleData(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	require.Equal(t, []string{"Üyeler"}, f.GetSheetList())

	sheetRows, err := f.GetRows("Üyeler")
	require.NoError(t, err)
	require.Len(t, sheetRows, 2)
	require.Equal(t, templateHeaders, sheetRows[0])
	require.Equal(t, "Ayşe", sheetRows[1][0])
}
