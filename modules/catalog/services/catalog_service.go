package services

import (
	"context"

	"github.com/sendikahq/sendika/modules/catalog/domain/entities/reference"
)

type CatalogService struct {
	repo reference.Repository
}

func NewCatalogService(repo reference.Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Provinces(ctx context.Context) ([]reference.Item, error) {
	return s.repo.Provinces(ctx)
}

func (s *CatalogService) Districts(ctx context.Context) ([]reference.District, error) {
	return s.repo.Districts(ctx)
}

func (s *CatalogService) Institutions(ctx context.Context) ([]reference.Item, error) {
	return s.repo.Institutions(ctx)
}

func (s *CatalogService) Branches(ctx context.Context) ([]reference.Item, error) {
	return s.repo.Branches(ctx)
}

func (s *CatalogService) Professions(ctx context.Context) ([]reference.Item, error) {
	return s.repo.Professions(ctx)
}

func (s *CatalogService) TevkifatCenters(ctx context.Context) ([]reference.Item, error) {
	return s.repo.TevkifatCenters(ctx)
}

func (s *CatalogService) TevkifatTitles(ctx context.Context) ([]reference.Item, error) {
	return s.repo.TevkifatTitles(ctx)
}

func (s *CatalogService) MemberGroups(ctx context.Context) ([]reference.Item, error) {
	return s.repo.MemberGroups(ctx)
}
