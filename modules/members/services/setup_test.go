package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sendikahq/sendika/modules/catalog/domain/entities/reference"
	"github.com/sendikahq/sendika/modules/members/domain/aggregates/member"
)

// passThrough replaces the transaction helpers so service tests run without
// a database pool in the context.
func passThrough(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func overrideTx() func() {
	origTx, origSavepoint := inTx, inSavepoint
	inTx = passThrough
	inSavepoint = passThrough
	return func() {
		inTx = origTx
		inSavepoint = origSavepoint
	}
}

// memoryMemberRepo is an in-memory member.Repository keyed by national id.
type memoryMemberRepo struct {
	mu      sync.Mutex
	seq     int
	members map[string]member.Member // national id -> member

	createErr func(m member.Member) error
}

func newMemoryMemberRepo() *memoryMemberRepo {
	return &memoryMemberRepo{members: map[string]member.Member{}}
}

func (r *memoryMemberRepo) GetPaginated(_ context.Context, params *member.FindParams) ([]member.Member, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]member.Member, 0, len(r.members))
	for _, m := range r.members {
		if params != nil && params.Status != "" && m.Status != params.Status {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *memoryMemberRepo) GetByID(_ context.Context, id string) (member.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return member.Member{}, member.ErrNotFound
}

func (r *memoryMemberRepo) Create(_ context.Context, m member.Member) (member.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		if err := r.createErr(m); err != nil {
			return member.Member{}, err
		}
	}
	if _, exists := r.members[m.NationalID]; exists {
		return member.Member{}, member.ErrDuplicateNationalID
	}
	if m.ID == "" {
		r.seq++
		m.ID = fmt.Sprintf("c%024d", r.seq)
	}
	r.members[m.NationalID] = m
	return m, nil
}

func (r *memoryMemberRepo) Update(_ context.Context, m member.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for nationalID, existing := range r.members {
		if existing.ID == m.ID {
			delete(r.members, nationalID)
			r.members[m.NationalID] = m
			return nil
		}
	}
	return member.ErrNotFound
}

func (r *memoryMemberRepo) MarkDeleted(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for nationalID, existing := range r.members {
		if existing.ID == id {
			delete(r.members, nationalID)
			return nil
		}
	}
	return member.ErrNotFound
}

func (r *memoryMemberRepo) NationalIDs(context.Context) (map[string]struct{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]struct{}, len(r.members))
	for nationalID := range r.members {
		out[nationalID] = struct{}{}
	}
	return out, nil
}

func (r *memoryMemberRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

// staticCatalogRepo serves a fixed reference snapshot.
type staticCatalogRepo struct {
	provinces       []reference.Item
	districts       []reference.District
	institutions    []reference.Item
	branches        []reference.Item
	professions     []reference.Item
	tevkifatCenters []reference.Item
	tevkifatTitles  []reference.Item
	memberGroups    []reference.Item
}

func (r *staticCatalogRepo) Provinces(context.Context) ([]reference.Item, error) {
	return r.provinces, nil
}

func (r *staticCatalogRepo) Districts(context.Context) ([]reference.District, error) {
	return r.districts, nil
}

func (r *staticCatalogRepo) Institutions(context.Context) ([]reference.Item, error) {
	return r.institutions, nil
}

func (r *staticCatalogRepo) Branches(context.Context) ([]reference.Item, error) {
	return r.branches, nil
}

func (r *staticCatalogRepo) Professions(context.Context) ([]reference.Item, error) {
	return r.professions, nil
}

func (r *staticCatalogRepo) TevkifatCenters(context.Context) ([]reference.Item, error) {
	return r.tevkifatCenters, nil
}

func (r *staticCatalogRepo) TevkifatTitles(context.Context) ([]reference.Item, error) {
	return r.tevkifatTitles, nil
}

func (r *staticCatalogRepo) MemberGroups(context.Context) ([]reference.Item, error) {
	return r.memberGroups, nil
}

func fixtureCatalogRepo() *staticCatalogRepo {
	return &staticCatalogRepo{
		provinces: []reference.Item{
			{ID: "c000000000000000000000001", Name: "İstanbul"},
			{ID: "c000000000000000000000002", Name: "Ankara"},
		},
		districts: []reference.District{
			{ID: "c000000000000000000000011", Name: "Kadıköy", ProvinceID: "c000000000000000000000001", ProvinceName: "İstanbul"},
			{ID: "c000000000000000000000012", Name: "Çankaya", ProvinceID: "c000000000000000000000002", ProvinceName: "Ankara"},
		},
		institutions:    []reference.Item{{ID: "c000000000000000000000021", Name: "Milli Eğitim Bakanlığı"}},
		branches:        []reference.Item{{ID: "c000000000000000000000031", Name: "İstanbul Şubesi"}},
		professions:     []reference.Item{{ID: "c000000000000000000000041", Name: "Öğretmen"}},
		tevkifatCenters: []reference.Item{{ID: "c000000000000000000000051", Name: "Merkez Saymanlık"}},
		tevkifatTitles:  []reference.Item{{ID: "c000000000000000000000061", Name: "Memur"}},
		memberGroups:    []reference.Item{{ID: "c000000000000000000000071", Name: "Genel"}},
	}
}
