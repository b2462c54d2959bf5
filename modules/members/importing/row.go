// Package importing implements the bulk member import pipeline: CSV
// tokenizing, localized header mapping, reference resolution against an
// in-memory catalog snapshot, per-row validation, duplicate detection and
// the transactional commit of the valid subset.
package importing

// Canonical field keys. Column headers are mapped onto these; unknown
// headers keep their own derived key and never match a rule.
const (
	FieldFirstName             = "firstName"
	FieldLastName              = "lastName"
	FieldNationalID            = "nationalId"
	FieldPhone                 = "phone"
	FieldEmail                 = "email"
	FieldMotherName            = "motherName"
	FieldFatherName            = "fatherName"
	FieldBirthDate             = "birthDate"
	FieldBirthplace            = "birthplace"
	FieldGender                = "gender"
	FieldEducationStatus       = "educationStatus"
	FieldProvinceID            = "provinceId"
	FieldDistrictID            = "districtId"
	FieldInstitutionID         = "institutionId"
	FieldBranchID              = "branchId"
	FieldTevkifatCenterID      = "tevkifatCenterId"
	FieldTevkifatTitleID       = "tevkifatTitleId"
	FieldMemberGroupID         = "memberGroupId"
	FieldDutyUnit              = "dutyUnit"
	FieldInstitutionAddress    = "institutionAddress"
	FieldInstitutionProvinceID = "institutionProvinceId"
	FieldInstitutionDistrictID = "institutionDistrictId"
	FieldProfessionID          = "professionId"
	FieldInstitutionRegNo      = "institutionRegNo"
	FieldStaffTitleCode        = "staffTitleCode"
)

// CanonicalRow is one data row keyed by canonical field, cells trimmed.
// Index is the 1-based display row, counting the header as row 1.
type CanonicalRow struct {
	Index  int
	Fields map[string]string
}

func (r CanonicalRow) Get(key string) string {
	return r.Fields[key]
}

type RowStatus string

const (
	StatusValid   RowStatus = "valid"
	StatusWarning RowStatus = "warning"
	StatusError   RowStatus = "error"
)

// RowIssue points at the exact offending cell: the display row index and,
// when the problem is field-specific, the canonical column key.
type RowIssue struct {
	RowIndex int    `json:"rowIndex"`
	Column   string `json:"column,omitempty"`
	Message  string `json:"message"`
}

type RowOutcome struct {
	RowIndex int        `json:"rowIndex"`
	Status   RowStatus  `json:"status"`
	Issues   []RowIssue `json:"errors,omitempty"`
}

type PreviewRow struct {
	RowIndex int               `json:"rowIndex"`
	Data     map[string]string `json:"data"`
	Status   RowStatus         `json:"status"`
	Issues   []RowIssue        `json:"errors,omitempty"`
}

type Summary struct {
	Valid   int `json:"valid"`
	Warning int `json:"warning"`
	Error   int `json:"error"`
}

type ValidateReport struct {
	TotalRows   int          `json:"totalRows"`
	PreviewRows []PreviewRow `json:"previewRows"`
	Errors      []RowIssue   `json:"errors"`
	Summary     Summary      `json:"summary"`
}

type ImportResult struct {
	Imported             int        `json:"imported"`
	Skipped              int        `json:"skipped"`
	Errors               []RowIssue `json:"errors"`
	DuplicateNationalIDs []string   `json:"duplicateNationalIds"`
}
