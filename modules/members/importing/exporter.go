package importing

import (
	"bytes"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"

	"github.com/sendikahq/sendika/modules/catalog/domain/entities/reference"
)

// templateHeaders is the localized header row of the distributed template,
// in the column order operators are used to.
var templateHeaders = []string{
	"Ad", "Soyad", "TC Kimlik No", "Telefon", "E-posta",
	"Anne Adı", "Baba Adı", "Doğum Tarihi", "Doğum Yeri",
	"Cinsiyet", "Öğrenim Durumu",
	"İl", "İlçe", "Kurum", "Şube",
	"Tevkifat Merkezi", "Tevkifat Ünvanı", "Üye Grubu",
	"Görev Birimi", "Kurum Adresi", "Kurum İli", "Kurum İlçesi",
	"Meslek", "Kurum Sicil No", "Kadro Unvan Kodu",
}

// SampleData holds the live catalog entries a sample row is built from, so
// that exported rows resolve (and validate clean) against the same store.
type SampleData struct {
	Provinces       []reference.Item
	Districts       []reference.District
	Institutions    []reference.Item
	Branches        []reference.Item
	Professions     []reference.Item
	TevkifatCenters []reference.Item
	TevkifatTitles  []reference.Item
	MemberGroups    []reference.Item
}

func firstName(items []reference.Item) string {
	if len(items) == 0 {
		return ""
	}
	return items[0].Name
}

// sampleRow builds one fully valid data row. The district is chosen from the
// sample province so province-qualified resolution succeeds.
func (d SampleData) sampleRow() []string {
	province := firstName(d.Provinces)
	district := ""
	for _, dist := range d.Districts {
		if dist.ProvinceName == province {
			district = dist.Name
			break
		}
	}
	if district == "" && len(d.Districts) > 0 {
		district = d.Districts[0].Name
		province = d.Districts[0].ProvinceName
	}

	return []string{
		"Ayşe", "Yılmaz", "12345678901", "05551234567", "ayse.yilmaz@example.com",
		"Fatma", "Mehmet", "1990-01-01", province,
		"Kadın", "Lise",
		province, district, firstName(d.Institutions), firstName(d.Branches),
		firstName(d.TevkifatCenters), firstName(d.TevkifatTitles), firstName(d.MemberGroups),
		"", "", "", "",
		firstName(d.Professions), "", "",
	}
}

// TemplateCSV renders the template with one sample row, semicolon-delimited
// like the spreadsheets it will be opened in.
func TemplateCSV(data SampleData) []byte {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	buf.WriteString(strings.Join(templateHeaders, ";"))
	buf.WriteString("\r\n")
	buf.WriteString(strings.Join(quoteCells(data.sampleRow()), ";"))
	buf.WriteString("\r\n")
	return buf.Bytes()
}

// quoteCells quotes any cell containing a delimiter candidate so the
// tokenizer reads it back as a single field.
func quoteCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		if strings.ContainsAny(cell, ";,\"") {
			out[i] = `"` + strings.ReplaceAll(cell, `"`, "") + `"`
		} else {
			out[i] = cell
		}
	}
	return out
}

// SampleWorkbook renders the same template as an xlsx workbook for operators
// who prefer editing in a spreadsheet before exporting to CSV.
func SampleWorkbook(data SampleData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Üyeler"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, gerrors.Wrap(err, "creating sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, gerrors.Wrap(err, "removing default sheet")
	}

	if err := f.SetSheetRow(sheet, "A1", &templateHeaders); err != nil {
		return nil, gerrors.Wrap(err, "writing header row")
	}
	row := data.sampleRow()
	if err := f.SetSheetRow(sheet, "A2", &row); err != nil {
		return nil, gerrors.Wrap(err, "writing sample row")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, gerrors.Wrap(err, "writing workbook")
	}
	return buf.Bytes(), nil
}
