package importing

import (
	"regexp"
	"strings"
)

// headerAliases maps the localized spreadsheet headers to canonical field
// keys. Canonical keys map to themselves so an already-canonical file works
// unchanged.
var headerAliases = map[string]string{
	"Ad":               FieldFirstName,
	"Soyad":            FieldLastName,
	"TC Kimlik No":     FieldNationalID,
	"TC":               FieldNationalID,
	"Telefon":          FieldPhone,
	"E-posta":          FieldEmail,
	"Email":            FieldEmail,
	"Anne Adı":         FieldMotherName,
	"Baba Adı":         FieldFatherName,
	"Doğum Tarihi":     FieldBirthDate,
	"Doğum Yeri":       FieldBirthplace,
	"Cinsiyet":         FieldGender,
	"Öğrenim Durumu":   FieldEducationStatus,
	"İl":               FieldProvinceID,
	"İlçe":             FieldDistrictID,
	"Kurum":            FieldInstitutionID,
	"Şube":             FieldBranchID,
	"Tevkifat Merkezi": FieldTevkifatCenterID,
	"Tevkifat Ünvanı":  FieldTevkifatTitleID,
	"Üye Grubu":        FieldMemberGroupID,
	"Görev Birimi":     FieldDutyUnit,
	"Kurum Adresi":     FieldInstitutionAddress,
	"Kurum İli":        FieldInstitutionProvinceID,
	"Kurum İlçesi":     FieldInstitutionDistrictID,
	"Meslek":           FieldProfessionID,
	"Kurum Sicil No":   FieldInstitutionRegNo,
	"Kadro Unvan Kodu": FieldStaffTitleCode,

	FieldFirstName:             FieldFirstName,
	FieldLastName:              FieldLastName,
	FieldNationalID:            FieldNationalID,
	FieldPhone:                 FieldPhone,
	FieldEmail:                 FieldEmail,
	FieldMotherName:            FieldMotherName,
	FieldFatherName:            FieldFatherName,
	FieldBirthDate:             FieldBirthDate,
	FieldBirthplace:            FieldBirthplace,
	FieldGender:                FieldGender,
	FieldEducationStatus:       FieldEducationStatus,
	FieldProvinceID:            FieldProvinceID,
	FieldDistrictID:            FieldDistrictID,
	FieldInstitutionID:         FieldInstitutionID,
	FieldBranchID:              FieldBranchID,
	FieldTevkifatCenterID:      FieldTevkifatCenterID,
	FieldTevkifatTitleID:       FieldTevkifatTitleID,
	FieldMemberGroupID:         FieldMemberGroupID,
	FieldDutyUnit:              FieldDutyUnit,
	FieldInstitutionAddress:    FieldInstitutionAddress,
	FieldInstitutionProvinceID: FieldInstitutionProvinceID,
	FieldInstitutionDistrictID: FieldInstitutionDistrictID,
	FieldProfessionID:          FieldProfessionID,
	FieldInstitutionRegNo:      FieldInstitutionRegNo,
	FieldStaffTitleCode:        FieldStaffTitleCode,
}

var singleToken = regexp.MustCompile(`^[A-Za-z]+$`)

// NormalizeHeaders maps each raw header cell onto its canonical key. An
// unmapped single alphabetic token is lower-cased as a best-effort key;
// anything else keeps its trimmed text and will simply never match a rule.
// The mapping is positional: key i owns cell i of every data row.
func NormalizeHeaders(raw []string) []string {
	keys := make([]string, len(raw))
	for i, cell := range raw {
		trimmed := strings.TrimSpace(cell)
		if key, ok := headerAliases[trimmed]; ok {
			keys[i] = key
			continue
		}
		if singleToken.MatchString(trimmed) {
			keys[i] = strings.ToLower(trimmed)
			continue
		}
		keys[i] = trimmed
	}
	return keys
}

// MapRow pairs positional cells with their header keys. Extra cells beyond
// the header are dropped; missing trailing cells read as empty.
func MapRow(keys []string, cells []string, displayIndex int) CanonicalRow {
	fields := make(map[string]string, len(keys))
	for i, key := range keys {
		if key == "" {
			continue
		}
		if i < len(cells) {
			fields[key] = strings.TrimSpace(cells[i])
		} else {
			fields[key] = ""
		}
	}
	return CanonicalRow{Index: displayIndex, Fields: fields}
}
