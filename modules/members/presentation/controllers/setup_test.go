package controllers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/sendikahq/sendika/modules/catalog/domain/entities/reference"
	"github.com/sendikahq/sendika/modules/members/domain/aggregates/member"
	"github.com/sendikahq/sendika/modules/members/importing"
	"github.com/sendikahq/sendika/modules/members/services"
	"github.com/sendikahq/sendika/pkg/eventbus"
	"github.com/sendikahq/sendika/pkg/server"
)

// stubMemberRepo backs the read-only controller paths; write paths are
// covered by the service tests.
type stubMemberRepo struct {
	members []member.Member
}

func (r *stubMemberRepo) GetPaginated(context.Context, *member.FindParams) ([]member.Member, int64, error) {
	return r.members, int64(len(r.members)), nil
}

func (r *stubMemberRepo) GetByID(_ context.Context, id string) (member.Member, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return member.Member{}, member.ErrNotFound
}

func (r *stubMemberRepo) Create(_ context.Context, m member.Member) (member.Member, error) {
	return m, nil
}

func (r *stubMemberRepo) Update(context.Context, member.Member) error { return nil }

func (r *stubMemberRepo) MarkDeleted(context.Context, string) error { return nil }

func (r *stubMemberRepo) NationalIDs(context.Context) (map[string]struct{}, error) {
	return map[string]struct{}{}, nil
}

type stubCatalogRepo struct{}

func (stubCatalogRepo) Provinces(context.Context) ([]reference.Item, error) {
	return []reference.Item{{ID: "c000000000000000000000001", Name: "İstanbul"}}, nil
}

func (stubCatalogRepo) Districts(context.Context) ([]reference.District, error) {
	return []reference.District{{
		ID: "c000000000000000000000011", Name: "Kadıköy",
		ProvinceID: "c000000000000000000000001", ProvinceName: "İstanbul",
	}}, nil
}

func (stubCatalogRepo) Institutions(context.Context) ([]reference.Item, error) {
	return []reference.Item{{ID: "c000000000000000000000021", Name: "Milli Eğitim Bakanlığı"}}, nil
}

func (stubCatalogRepo) Branches(context.Context) ([]reference.Item, error) { return nil, nil }

func (stubCatalogRepo) Professions(context.Context) ([]reference.Item, error) { return nil, nil }

func (stubCatalogRepo) TevkifatCenters(context.Context) ([]reference.Item, error) { return nil, nil }

func (stubCatalogRepo) TevkifatTitles(context.Context) ([]reference.Item, error) { return nil, nil }

func (stubCatalogRepo) MemberGroups(context.Context) ([]reference.Item, error) { return nil, nil }

func testRouter(t *testing.T, controllers ...server.Controller) http.Handler {
	t.Helper()
	return server.NewHTTPServer(controllers, nil).Router()
}

func newTestServices(repo *stubMemberRepo, limits importing.Limits) (*services.MemberService, *services.ImportService) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	bus := eventbus.NewEventPublisher(logger)
	return services.NewMemberService(repo, bus),
		services.NewImportService(repo, stubCatalogRepo{}, bus, logger, limits)
}

// multipartFile builds a multipart body with the CSV under the "file" field.
func multipartFile(t *testing.T, csv []byte, extraFields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "uyeler.csv")
	require.NoError(t, err)
	_, err = part.Write(csv)
	require.NoError(t, err)
	for key, value := range extraFields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func doRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
