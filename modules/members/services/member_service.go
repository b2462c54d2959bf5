package services

import (
	"context"
	"strings"

	gerrors "github.com/go-faster/errors"

	"github.com/sendikahq/sendika/modules/members/domain/aggregates/member"
	"github.com/sendikahq/sendika/pkg/composables"
	"github.com/sendikahq/sendika/pkg/eventbus"
)

// Transaction helpers are indirected so service tests can run without a
// database pool in the context.
var (
	inTx        = composables.InTx
	inSavepoint = composables.InSavepoint
)

type MemberService struct {
	repo      member.Repository
	publisher eventbus.EventBus
}

func NewMemberService(repo member.Repository, publisher eventbus.EventBus) *MemberService {
	return &MemberService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *MemberService) GetPaginated(ctx context.Context, params *member.FindParams) ([]member.Member, int64, error) {
	if params != nil {
		params.Q = strings.TrimSpace(params.Q)
	}
	return s.repo.GetPaginated(ctx, params)
}

func (s *MemberService) GetByID(ctx context.Context, id string) (member.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MemberService) Create(ctx context.Context, dto *member.CreateDTO, actorID string) (member.Member, error) {
	if dto == nil {
		return member.Member{}, gerrors.New("missing dto")
	}

	var created member.Member
	err := inTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, dto.ToEntity(actorID))
		return err
	})
	if err != nil {
		return member.Member{}, err
	}
	s.publisher.Publish(&member.CreatedEvent{Member: created})
	return created, nil
}

func (s *MemberService) Update(ctx context.Context, m member.Member) error {
	err := inTx(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, m)
	})
	if err != nil {
		return err
	}
	s.publisher.Publish(&member.UpdatedEvent{Member: m})
	return nil
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	err := inTx(ctx, func(txCtx context.Context) error {
		return s.repo.MarkDeleted(txCtx, id)
	})
	if err != nil {
		return err
	}
	s.publisher.Publish(&member.DeletedEvent{ID: id})
	return nil
}
