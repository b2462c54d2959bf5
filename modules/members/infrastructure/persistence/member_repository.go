package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sendikahq/sendika/modules/members/domain/aggregates/member"
	"github.com/sendikahq/sendika/pkg/composables"
	"github.com/sendikahq/sendika/pkg/ids"
)

const (
	memberColumns = `
		m.id,
		m.first_name,
		m.last_name,
		m.national_id,
		m.phone,
		m.email,
		m.mother_name,
		m.father_name,
		m.birth_date,
		m.birthplace,
		m.gender,
		m.education_status,
		m.province_id,
		m.district_id,
		m.institution_id,
		m.branch_id,
		m.tevkifat_center_id,
		m.tevkifat_title_id,
		m.member_group_id,
		m.profession_id,
		m.duty_unit,
		m.institution_address,
		m.institution_province_id,
		m.institution_district_id,
		m.institution_reg_no,
		m.staff_title_code,
		m.source,
		m.status,
		m.created_by,
		m.created_at,
		m.updated_at,
		m.deleted_at`

	memberFindQuery = `SELECT ` + memberColumns + ` FROM members m`

	memberCountQuery = `SELECT COUNT(m.id) FROM members m`

	memberInsertQuery = `
		INSERT INTO members (
			id, first_name, last_name, national_id, phone, email,
			mother_name, father_name, birth_date, birthplace,
			gender, education_status,
			province_id, district_id, institution_id,
			branch_id, tevkifat_center_id, tevkifat_title_id,
			member_group_id, profession_id,
			duty_unit, institution_address,
			institution_province_id, institution_district_id,
			institution_reg_no, staff_title_code,
			source, status, created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31
		)`

	memberUpdateQuery = `
		UPDATE members SET
			first_name = $2, last_name = $3, national_id = $4, phone = $5,
			email = $6, mother_name = $7, father_name = $8, birth_date = $9,
			birthplace = $10, gender = $11, education_status = $12,
			province_id = $13, district_id = $14, institution_id = $15,
			branch_id = $16, tevkifat_center_id = $17, tevkifat_title_id = $18,
			member_group_id = $19, profession_id = $20,
			duty_unit = $21, institution_address = $22,
			institution_province_id = $23, institution_district_id = $24,
			institution_reg_no = $25, staff_title_code = $26,
			source = $27, status = $28, updated_at = $29
		WHERE id = $1 AND deleted_at IS NULL`

	memberMarkDeletedQuery = `UPDATE members SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	memberNationalIDsQuery = `SELECT national_id FROM members WHERE deleted_at IS NULL`
)

type PgMemberRepository struct{}

func NewMemberRepository() member.Repository {
	return &PgMemberRepository{}
}

func scanMemberRow(row pgx.Row) (memberRow, error) {
	var r memberRow
	err := row.Scan(
		&r.ID, &r.FirstName, &r.LastName, &r.NationalID, &r.Phone, &r.Email,
		&r.MotherName, &r.FatherName, &r.BirthDate, &r.Birthplace,
		&r.Gender, &r.EducationStatus,
		&r.ProvinceID, &r.DistrictID, &r.InstitutionID,
		&r.BranchID, &r.TevkifatCenterID, &r.TevkifatTitleID,
		&r.MemberGroupID, &r.ProfessionID,
		&r.DutyUnit, &r.InstitutionAddress,
		&r.InstitutionProvinceID, &r.InstitutionDistrictID,
		&r.InstitutionRegNo, &r.StaffTitleCode,
		&r.Source, &r.Status, &r.CreatedBy,
		&r.CreatedAt, &r.UpdatedAt, &r.DeletedAt,
	)
	return r, err
}

func (g *PgMemberRepository) GetPaginated(ctx context.Context, params *member.FindParams) ([]member.Member, int64, error) {
	if params == nil {
		params = &member.FindParams{}
	}

	conn, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	where := []string{"m.deleted_at IS NULL"}
	args := []any{}
	if q := strings.TrimSpace(params.Q); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(m.first_name ILIKE $%d OR m.last_name ILIKE $%d OR m.national_id ILIKE $%d)", n, n, n))
	}
	if params.Status != "" {
		args = append(args, string(params.Status))
		where = append(where, fmt.Sprintf("m.status = $%d", len(args)))
	}
	whereClause := " WHERE " + strings.Join(where, " AND ")

	countQuery := memberCountQuery + whereClause
	var total int64
	if err := conn.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, gerrors.Wrap(err, "counting members")
	}

	args = append(args, limit, offset)
	listQuery := memberFindQuery + whereClause +
		fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := conn.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, gerrors.Wrap(err, "listing members")
	}
	defer rows.Close()

	out := make([]member.Member, 0, limit)
	for rows.Next() {
		r, err := scanMemberRow(rows)
		if err != nil {
			return nil, 0, gerrors.Wrap(err, "scanning member")
		}
		out = append(out, toDomain(r))
	}
	return out, total, rows.Err()
}

func (g *PgMemberRepository) GetByID(ctx context.Context, id string) (member.Member, error) {
	conn, err := composables.UseTx(ctx)
	if err != nil {
		return member.Member{}, err
	}

	r, err := scanMemberRow(conn.QueryRow(ctx, memberFindQuery+` WHERE m.id = $1 AND m.deleted_at IS NULL`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.Member{}, member.ErrNotFound
		}
		return member.Member{}, gerrors.Wrap(err, "fetching member")
	}
	return toDomain(r), nil
}

func (g *PgMemberRepository) Create(ctx context.Context, m member.Member) (member.Member, error) {
	conn, err := composables.UseTx(ctx)
	if err != nil {
		return member.Member{}, err
	}

	if m.ID == "" {
		m.ID = ids.New()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	r := toRow(m)
	_, err = conn.Exec(ctx, memberInsertQuery,
		r.ID, r.FirstName, r.LastName, r.NationalID, r.Phone, r.Email,
		r.MotherName, r.FatherName, r.BirthDate, r.Birthplace,
		r.Gender, r.EducationStatus,
		r.ProvinceID, r.DistrictID, r.InstitutionID,
		r.BranchID, r.TevkifatCenterID, r.TevkifatTitleID,
		r.MemberGroupID, r.ProfessionID,
		r.DutyUnit, r.InstitutionAddress,
		r.InstitutionProvinceID, r.InstitutionDistrictID,
		r.InstitutionRegNo, r.StaffTitleCode,
		r.Source, r.Status, r.CreatedBy, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return member.Member{}, member.ErrDuplicateNationalID
		}
		return member.Member{}, gerrors.Wrap(err, "inserting member")
	}
	return m, nil
}

func (g *PgMemberRepository) Update(ctx context.Context, m member.Member) error {
	conn, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	m.UpdatedAt = time.Now().UTC()
	r := toRow(m)
	tag, err := conn.Exec(ctx, memberUpdateQuery,
		r.ID, r.FirstName, r.LastName, r.NationalID, r.Phone,
		r.Email, r.MotherName, r.FatherName, r.BirthDate,
		r.Birthplace, r.Gender, r.EducationStatus,
		r.ProvinceID, r.DistrictID, r.InstitutionID,
		r.BranchID, r.TevkifatCenterID, r.TevkifatTitleID,
		r.MemberGroupID, r.ProfessionID,
		r.DutyUnit, r.InstitutionAddress,
		r.InstitutionProvinceID, r.InstitutionDistrictID,
		r.InstitutionRegNo, r.StaffTitleCode,
		r.Source, r.Status, r.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return member.ErrDuplicateNationalID
		}
		return gerrors.Wrap(err, "updating member")
	}
	if tag.RowsAffected() == 0 {
		return member.ErrNotFound
	}
	return nil
}

func (g *PgMemberRepository) MarkDeleted(ctx context.Context, id string) error {
	conn, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := conn.Exec(ctx, memberMarkDeletedQuery, id)
	if err != nil {
		return gerrors.Wrap(err, "marking member deleted")
	}
	if tag.RowsAffected() == 0 {
		return member.ErrNotFound
	}
	return nil
}

func (g *PgMemberRepository) NationalIDs(ctx context.Context) (map[string]struct{}, error) {
	conn, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, memberNationalIDsQuery)
	if err != nil {
		return nil, gerrors.Wrap(err, "listing national ids")
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var nationalID string
		if err := rows.Scan(&nationalID); err != nil {
			return nil, gerrors.Wrap(err, "scanning national id")
		}
		out[nationalID] = struct{}{}
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
