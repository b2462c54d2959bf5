package importing

import (
	"fmt"

	"github.com/sendikahq/sendika/modules/members/domain/aggregates/member"
)

// requiredFields in validation order; the error report lists a row's issues
// in this order so re-runs are byte-identical.
var requiredFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldNationalID,
	FieldPhone,
	FieldMotherName,
	FieldFatherName,
	FieldBirthDate,
	FieldBirthplace,
	FieldGender,
	FieldEducationStatus,
	FieldProvinceID,
	FieldDistrictID,
	FieldInstitutionID,
}

// Resolved carries a row's normalized values and resolved identifiers, ready
// to become a persistable record. Produced only for rows without errors.
type Resolved struct {
	FirstName       string
	LastName        string
	NationalID      string
	Phone           string
	Email           string
	MotherName      string
	FatherName      string
	BirthDate       string
	Birthplace      string
	Gender          member.Gender
	EducationStatus member.Education

	ProvinceID    string
	DistrictID    string
	InstitutionID string

	BranchID         string
	TevkifatCenterID string
	TevkifatTitleID  string
	MemberGroupID    string
	ProfessionID     string

	DutyUnit              string
	InstitutionAddress    string
	InstitutionProvinceID string
	InstitutionDistrictID string
	InstitutionRegNo      string
	StaffTitleCode        string
}

// ToMember stamps the resolved row with the fixed import provenance.
func (r *Resolved) ToMember(actorID string) member.Member {
	return member.Member{
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		NationalID:            r.NationalID,
		Phone:                 r.Phone,
		Email:                 r.Email,
		MotherName:            r.MotherName,
		FatherName:            r.FatherName,
		BirthDate:             r.BirthDate,
		Birthplace:            r.Birthplace,
		Gender:                r.Gender,
		EducationStatus:       r.EducationStatus,
		ProvinceID:            r.ProvinceID,
		DistrictID:            r.DistrictID,
		InstitutionID:         r.InstitutionID,
		BranchID:              r.BranchID,
		TevkifatCenterID:      r.TevkifatCenterID,
		TevkifatTitleID:       r.TevkifatTitleID,
		MemberGroupID:         r.MemberGroupID,
		ProfessionID:          r.ProfessionID,
		DutyUnit:              r.DutyUnit,
		InstitutionAddress:    r.InstitutionAddress,
		InstitutionProvinceID: r.InstitutionProvinceID,
		InstitutionDistrictID: r.InstitutionDistrictID,
		InstitutionRegNo:      r.InstitutionRegNo,
		StaffTitleCode:        r.StaffTitleCode,
		Source:                member.SourceOther,
		Status:                member.StatusPending,
		CreatedBy:             actorID,
	}
}

type Validator struct {
	catalog *Catalog
}

func NewValidator(catalog *Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// ValidateRow applies presence, format, enum and reference rules to one row.
// The second return value is non-nil unless the row has errors; rows that
// only carry warnings still resolve.
func (v *Validator) ValidateRow(row CanonicalRow) (RowOutcome, *Resolved) {
	var errs, warns []RowIssue
	addErr := func(column, message string) {
		errs = append(errs, RowIssue{RowIndex: row.Index, Column: column, Message: message})
	}
	addWarn := func(column, message string) {
		warns = append(warns, RowIssue{RowIndex: row.Index, Column: column, Message: message})
	}

	missing := make(map[string]bool, len(requiredFields))
	for _, field := range requiredFields {
		if row.Get(field) == "" {
			missing[field] = true
			addErr(field, "is required")
		}
	}

	res := &Resolved{
		FirstName:          row.Get(FieldFirstName),
		LastName:           row.Get(FieldLastName),
		MotherName:         row.Get(FieldMotherName),
		FatherName:         row.Get(FieldFatherName),
		Birthplace:         row.Get(FieldBirthplace),
		DutyUnit:           row.Get(FieldDutyUnit),
		InstitutionAddress: row.Get(FieldInstitutionAddress),
		InstitutionRegNo:   row.Get(FieldInstitutionRegNo),
		StaffTitleCode:     row.Get(FieldStaffTitleCode),
	}

	if nationalID := row.Get(FieldNationalID); !missing[FieldNationalID] {
		if member.IsValidNationalID(nationalID) {
			res.NationalID = nationalID
		} else {
			addErr(FieldNationalID, "must be exactly 11 digits")
		}
	}

	if !missing[FieldPhone] {
		phone := member.NormalizePhone(row.Get(FieldPhone))
		if member.IsValidPhone(phone) {
			res.Phone = phone
		} else {
			addErr(FieldPhone, fmt.Sprintf("%q is not a valid phone number", row.Get(FieldPhone)))
		}
	}

	if email := row.Get(FieldEmail); email != "" {
		if member.IsValidEmail(email) {
			res.Email = email
		} else {
			addErr(FieldEmail, fmt.Sprintf("%q is not a valid email address", email))
		}
	}

	if birthDate := row.Get(FieldBirthDate); !missing[FieldBirthDate] {
		if member.IsValidBirthDate(birthDate) {
			res.BirthDate = birthDate
		} else {
			addErr(FieldBirthDate, "must be in YYYY-MM-DD format")
		}
	}

	if raw := row.Get(FieldGender); !missing[FieldGender] {
		if gender, ok := member.ParseGender(raw); ok {
			res.Gender = gender
		} else {
			addErr(FieldGender, fmt.Sprintf("%q is not a recognized gender", raw))
		}
	}

	if raw := row.Get(FieldEducationStatus); !missing[FieldEducationStatus] {
		if education, ok := member.ParseEducation(raw); ok {
			res.EducationStatus = education
		} else {
			addErr(FieldEducationStatus, fmt.Sprintf("%q is not a recognized education status", raw))
		}
	}

	if raw := row.Get(FieldProvinceID); !missing[FieldProvinceID] {
		if id, ok := v.catalog.ResolveProvince(raw); ok {
			res.ProvinceID = id
		} else {
			addErr(FieldProvinceID, fmt.Sprintf("province %q not found", raw))
		}
	}

	if raw := row.Get(FieldDistrictID); !missing[FieldDistrictID] {
		id, qualified, ok := v.catalog.ResolveDistrict(raw, res.ProvinceID)
		switch {
		case !ok:
			addErr(FieldDistrictID, fmt.Sprintf("district %q not found", raw))
		default:
			res.DistrictID = id
			if !qualified && res.ProvinceID != "" && v.catalog.DistrictProvince(id) != res.ProvinceID {
				addWarn(FieldDistrictID, fmt.Sprintf("district %q does not belong to the given province", raw))
			}
		}
	}

	if raw := row.Get(FieldInstitutionID); !missing[FieldInstitutionID] {
		if id, ok := v.catalog.ResolveInstitution(raw); ok {
			res.InstitutionID = id
		} else {
			addErr(FieldInstitutionID, fmt.Sprintf("institution %q not found", raw))
		}
	}

	// Optional references: only validated when present.
	if raw := row.Get(FieldBranchID); raw != "" {
		if id, ok := v.catalog.ResolveBranch(raw); ok {
			res.BranchID = id
		} else {
			addErr(FieldBranchID, fmt.Sprintf("branch %q not found", raw))
		}
	}
	if raw := row.Get(FieldTevkifatCenterID); raw != "" {
		if id, ok := v.catalog.ResolveTevkifatCenter(raw); ok {
			res.TevkifatCenterID = id
		} else {
			addErr(FieldTevkifatCenterID, fmt.Sprintf("tevkifat center %q not found", raw))
		}
	}
	if raw := row.Get(FieldTevkifatTitleID); raw != "" {
		if id, ok := v.catalog.ResolveTevkifatTitle(raw); ok {
			res.TevkifatTitleID = id
		} else {
			addErr(FieldTevkifatTitleID, fmt.Sprintf("tevkifat title %q not found", raw))
		}
	}
	if raw := row.Get(FieldMemberGroupID); raw != "" {
		if id, ok := v.catalog.ResolveMemberGroup(raw); ok {
			res.MemberGroupID = id
		} else {
			addErr(FieldMemberGroupID, fmt.Sprintf("member group %q not found", raw))
		}
	}
	if raw := row.Get(FieldProfessionID); raw != "" {
		if id, ok := v.catalog.ResolveProfession(raw); ok {
			res.ProfessionID = id
		} else {
			addErr(FieldProfessionID, fmt.Sprintf("profession %q not found", raw))
		}
	}
	if raw := row.Get(FieldInstitutionProvinceID); raw != "" {
		if id, ok := v.catalog.ResolveProvince(raw); ok {
			res.InstitutionProvinceID = id
		} else {
			addErr(FieldInstitutionProvinceID, fmt.Sprintf("province %q not found", raw))
		}
	}
	if raw := row.Get(FieldInstitutionDistrictID); raw != "" {
		id, _, ok := v.catalog.ResolveDistrict(raw, res.InstitutionProvinceID)
		if ok {
			res.InstitutionDistrictID = id
		} else {
			addErr(FieldInstitutionDistrictID, fmt.Sprintf("district %q not found", raw))
		}
	}

	outcome := RowOutcome{RowIndex: row.Index, Status: StatusValid}
	if len(errs) > 0 {
		outcome.Status = StatusError
		outcome.Issues = append(errs, warns...)
		return outcome, nil
	}
	if len(warns) > 0 {
		outcome.Status = StatusWarning
		outcome.Issues = warns
	}
	return outcome, res
}
