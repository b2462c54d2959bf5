package member

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sendikahq/sendika/pkg/constants"
)

// CreateDTO is the single-member create payload on the admin API. The bulk
// import path has its own row validator and does not go through this type.
type CreateDTO struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	NationalID      string `json:"nationalId" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Email           string `json:"email"`
	MotherName      string `json:"motherName" validate:"required"`
	FatherName      string `json:"fatherName" validate:"required"`
	BirthDate       string `json:"birthDate" validate:"required"`
	Birthplace      string `json:"birthplace" validate:"required"`
	Gender          string `json:"gender" validate:"required"`
	EducationStatus string `json:"educationStatus" validate:"required"`

	ProvinceID    string `json:"provinceId" validate:"required"`
	DistrictID    string `json:"districtId" validate:"required"`
	InstitutionID string `json:"institutionId" validate:"required"`

	BranchID         string `json:"branchId"`
	TevkifatCenterID string `json:"tevkifatCenterId"`
	TevkifatTitleID  string `json:"tevkifatTitleId"`
	MemberGroupID    string `json:"memberGroupId"`
	ProfessionID     string `json:"professionId"`

	DutyUnit              string `json:"dutyUnit"`
	InstitutionAddress    string `json:"institutionAddress"`
	InstitutionProvinceID string `json:"institutionProvinceId"`
	InstitutionDistrictID string `json:"institutionDistrictId"`
	InstitutionRegNo      string `json:"institutionRegNo"`
	StaffTitleCode        string `json:"staffTitleCode"`
}

func (d *CreateDTO) Normalize() {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.NationalID = strings.TrimSpace(d.NationalID)
	d.Phone = NormalizePhone(d.Phone)
	d.Email = strings.TrimSpace(d.Email)
	d.MotherName = strings.TrimSpace(d.MotherName)
	d.FatherName = strings.TrimSpace(d.FatherName)
	d.BirthDate = strings.TrimSpace(d.BirthDate)
	d.Birthplace = strings.TrimSpace(d.Birthplace)
}

var dtoFieldKeys = map[string]string{
	"FirstName":       "firstName",
	"LastName":        "lastName",
	"NationalID":      "nationalId",
	"Phone":           "phone",
	"MotherName":      "motherName",
	"FatherName":      "fatherName",
	"BirthDate":       "birthDate",
	"Birthplace":      "birthplace",
	"Gender":          "gender",
	"EducationStatus": "educationStatus",
	"ProvinceID":      "provinceId",
	"DistrictID":      "districtId",
	"InstitutionID":   "institutionId",
}

// Ok validates the payload and returns field-keyed messages.
func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	errs := make(map[string]string)
	if err := constants.Validate.Struct(d); err != nil {
		var validatorErrs validator.ValidationErrors
		if errors.As(err, &validatorErrs) {
			for _, fieldErr := range validatorErrs {
				key, ok := dtoFieldKeys[fieldErr.Field()]
				if !ok {
					key = fieldErr.Field()
				}
				errs[key] = "is required"
			}
		}
	}

	if d.NationalID != "" && !IsValidNationalID(d.NationalID) {
		errs["nationalId"] = "must be exactly 11 digits"
	}
	if d.Phone != "" && !IsValidPhone(d.Phone) {
		errs["phone"] = "must be a valid phone number"
	}
	if d.Email != "" && !IsValidEmail(d.Email) {
		errs["email"] = "must be a valid email address"
	}
	if d.BirthDate != "" && !IsValidBirthDate(d.BirthDate) {
		errs["birthDate"] = "must be in YYYY-MM-DD format"
	}
	if d.Gender != "" {
		if _, ok := ParseGender(d.Gender); !ok {
			errs["gender"] = "is not a recognized gender"
		}
	}
	if d.EducationStatus != "" {
		if _, ok := ParseEducation(d.EducationStatus); !ok {
			errs["educationStatus"] = "is not a recognized education status"
		}
	}

	return errs, len(errs) == 0
}

// ToEntity builds the record a manual admin create persists.
func (d *CreateDTO) ToEntity(actorID string) Member {
	gender, _ := ParseGender(d.Gender)
	education, _ := ParseEducation(d.EducationStatus)
	return Member{
		FirstName:             d.FirstName,
		LastName:              d.LastName,
		NationalID:            d.NationalID,
		Phone:                 d.Phone,
		Email:                 d.Email,
		MotherName:            d.MotherName,
		FatherName:            d.FatherName,
		BirthDate:             d.BirthDate,
		Birthplace:            d.Birthplace,
		Gender:                gender,
		EducationStatus:       education,
		ProvinceID:            d.ProvinceID,
		DistrictID:            d.DistrictID,
		InstitutionID:         d.InstitutionID,
		BranchID:              d.BranchID,
		TevkifatCenterID:      d.TevkifatCenterID,
		TevkifatTitleID:       d.TevkifatTitleID,
		MemberGroupID:         d.MemberGroupID,
		ProfessionID:          d.ProfessionID,
		DutyUnit:              d.DutyUnit,
		InstitutionAddress:    d.InstitutionAddress,
		InstitutionProvinceID: d.InstitutionProvinceID,
		InstitutionDistrictID: d.InstitutionDistrictID,
		InstitutionRegNo:      d.InstitutionRegNo,
		StaffTitleCode:        d.StaffTitleCode,
		Source:                SourceManual,
		Status:                StatusPending,
		CreatedBy:             actorID,
	}
}
