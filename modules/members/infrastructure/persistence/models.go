package persistence

import "time"

// memberRow mirrors the members table. Optional columns are pointers so
// absent values round-trip as NULL and keep the reference FKs satisfied.
type memberRow struct {
	ID              string
	FirstName       string
	LastName        string
	NationalID      string
	Phone           string
	Email           *string
	MotherName      string
	FatherName      string
	BirthDate       string
	Birthplace      string
	Gender          string
	EducationStatus string

	ProvinceID    string
	DistrictID    string
	InstitutionID string

	BranchID         *string
	TevkifatCenterID *string
	TevkifatTitleID  *string
	MemberGroupID    *string
	ProfessionID     *string

	DutyUnit              *string
	InstitutionAddress    *string
	InstitutionProvinceID *string
	InstitutionDistrictID *string
	InstitutionRegNo      *string
	StaffTitleCode        *string

	Source    string
	Status    string
	CreatedBy *string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
