package mappers

import (
	"time"

	"github.com/sendikahq/sendika/modules/members/domain/aggregates/member"
)

type MemberViewModel struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	NationalID      string `json:"nationalId"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	MotherName      string `json:"motherName"`
	FatherName      string `json:"fatherName"`
	BirthDate       string `json:"birthDate"`
	Birthplace      string `json:"birthplace"`
	Gender          string `json:"gender"`
	EducationStatus string `json:"educationStatus"`

	ProvinceID    string `json:"provinceId"`
	DistrictID    string `json:"districtId"`
	InstitutionID string `json:"institutionId"`

	BranchID         string `json:"branchId,omitempty"`
	TevkifatCenterID string `json:"tevkifatCenterId,omitempty"`
	TevkifatTitleID  string `json:"tevkifatTitleId,omitempty"`
	MemberGroupID    string `json:"memberGroupId,omitempty"`
	ProfessionID     string `json:"professionId,omitempty"`

	DutyUnit              string `json:"dutyUnit,omitempty"`
	InstitutionAddress    string `json:"institutionAddress,omitempty"`
	InstitutionProvinceID string `json:"institutionProvinceId,omitempty"`
	InstitutionDistrictID string `json:"institutionDistrictId,omitempty"`
	InstitutionRegNo      string `json:"institutionRegNo,omitempty"`
	StaffTitleCode        string `json:"staffTitleCode,omitempty"`

	Source    string `json:"source"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func ToMemberViewModel(m member.Member) MemberViewModel {
	return MemberViewModel{
		ID:                    m.ID,
		FirstName:             m.FirstName,
		LastName:              m.LastName,
		NationalID:            m.NationalID,
		Phone:                 m.Phone,
		Email:                 m.Email,
		MotherName:            m.MotherName,
		FatherName:            m.FatherName,
		BirthDate:             m.BirthDate,
		Birthplace:            m.Birthplace,
		Gender:                string(m.Gender),
		EducationStatus:       string(m.EducationStatus),
		ProvinceID:            m.ProvinceID,
		DistrictID:            m.DistrictID,
		InstitutionID:         m.InstitutionID,
		BranchID:              m.BranchID,
		TevkifatCenterID:      m.TevkifatCenterID,
		TevkifatTitleID:       m.TevkifatTitleID,
		MemberGroupID:         m.MemberGroupID,
		ProfessionID:          m.ProfessionID,
		DutyUnit:              m.DutyUnit,
		InstitutionAddress:    m.InstitutionAddress,
		InstitutionProvinceID: m.InstitutionProvinceID,
		InstitutionDistrictID: m.InstitutionDistrictID,
		InstitutionRegNo:      m.InstitutionRegNo,
		StaffTitleCode:        m.StaffTitleCode,
		Source:                string(m.Source),
		Status:                string(m.Status),
		CreatedAt:             m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             m.UpdatedAt.Format(time.RFC3339),
	}
}
