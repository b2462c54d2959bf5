package persistence

import (
	"github.com/sendikahq/sendika/modules/members/domain/aggregates/member"
)

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toRow(m member.Member) memberRow {
	return memberRow{
		ID:                    m.ID,
		FirstName:             m.FirstName,
		LastName:              m.LastName,
		NationalID:            m.NationalID,
		Phone:                 m.Phone,
		Email:                 nullable(m.Email),
		MotherName:            m.MotherName,
		FatherName:            m.FatherName,
		BirthDate:             m.BirthDate,
		Birthplace:            m.Birthplace,
		Gender:                string(m.Gender),
		EducationStatus:       string(m.EducationStatus),
		ProvinceID:            m.ProvinceID,
		DistrictID:            m.DistrictID,
		InstitutionID:         m.InstitutionID,
		BranchID:              nullable(m.BranchID),
		TevkifatCenterID:      nullable(m.TevkifatCenterID),
		TevkifatTitleID:       nullable(m.TevkifatTitleID),
		MemberGroupID:         nullable(m.MemberGroupID),
		ProfessionID:          nullable(m.ProfessionID),
		DutyUnit:              nullable(m.DutyUnit),
		InstitutionAddress:    nullable(m.InstitutionAddress),
		InstitutionProvinceID: nullable(m.InstitutionProvinceID),
		InstitutionDistrictID: nullable(m.InstitutionDistrictID),
		InstitutionRegNo:      nullable(m.InstitutionRegNo),
		StaffTitleCode:        nullable(m.StaffTitleCode),
		Source:                string(m.Source),
		Status:                string(m.Status),
		CreatedBy:             nullable(m.CreatedBy),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
		DeletedAt:             m.DeletedAt,
	}
}

func toDomain(r memberRow) member.Member {
	return member.Member{
		ID:                    r.ID,
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		NationalID:            r.NationalID,
		Phone:                 r.Phone,
		Email:                 orEmpty(r.Email),
		MotherName:            r.MotherName,
		FatherName:            r.FatherName,
		BirthDate:             r.BirthDate,
		Birthplace:            r.Birthplace,
		Gender:                member.Gender(r.Gender),
		EducationStatus:       member.Education(r.EducationStatus),
		ProvinceID:            r.ProvinceID,
		DistrictID:            r.DistrictID,
		InstitutionID:         r.InstitutionID,
		BranchID:              orEmpty(r.BranchID),
		TevkifatCenterID:      orEmpty(r.TevkifatCenterID),
		TevkifatTitleID:       orEmpty(r.TevkifatTitleID),
		MemberGroupID:         orEmpty(r.MemberGroupID),
		ProfessionID:          orEmpty(r.ProfessionID),
		DutyUnit:              orEmpty(r.DutyUnit),
		InstitutionAddress:    orEmpty(r.InstitutionAddress),
		InstitutionProvinceID: orEmpty(r.InstitutionProvinceID),
		InstitutionDistrictID: orEmpty(r.InstitutionDistrictID),
		InstitutionRegNo:      orEmpty(r.InstitutionRegNo),
		StaffTitleCode:        orEmpty(r.StaffTitleCode),
		Source:                member.Source(r.Source),
		Status:                member.Status(r.Status),
		CreatedBy:             orEmpty(r.CreatedBy),
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
		DeletedAt:             r.DeletedAt,
	}
}
