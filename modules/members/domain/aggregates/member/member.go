// Package member defines the membership record and the field-level rules
// every write path (single create and bulk import) validates against.
// Members are plain immutable records; validation lives in free functions,
// not entity methods.
package member

import "time"

type Source string

const (
	SourceOnline Source = "ONLINE"
	SourceManual Source = "MANUAL"
	SourceOther  Source = "OTHER"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusResigned Status = "RESIGNED"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type Education string

const (
	EducationPrimary    Education = "PRIMARY"
	EducationHighSchool Education = "HIGH_SCHOOL"
	EducationCollege    Education = "COLLEGE"
)

// Member is the persisted membership record. Optional string fields use ""
// for absence; every *ID field holds an internal identifier resolved against
// the reference catalog at write time.
type Member struct {
	ID              string
	FirstName       string
	LastName        string
	NationalID      string
	Phone           string
	Email           string
	MotherName      string
	FatherName      string
	BirthDate       string // YYYY-MM-DD, shape-checked only
	Birthplace      string
	Gender          Gender
	EducationStatus Education

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

	Source    Source
	Status    Status
	CreatedBy string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
