package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sendikahq/sendika/modules/members/domain/aggregates/member"
	"github.com/sendikahq/sendika/modules/members/presentation/mappers"
	"github.com/sendikahq/sendika/modules/members/services"
	"github.com/sendikahq/sendika/pkg/composables"
	"github.com/sendikahq/sendika/pkg/server"
)

type MemberAPIController struct {
	members  *services.MemberService
	basePath string
}

func NewMemberAPIController(members *services.MemberService) server.Controller {
	return &MemberAPIController{
		members:  members,
		basePath: "/api/members",
	}
}

func (c *MemberAPIController) Key() string {
	return c.basePath
}

func (c *MemberAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *MemberAPIController) List(w http.ResponseWriter, r *http.Request) {
	params := &member.FindParams{
		Q:      r.URL.Query().Get("q"),
		Status: member.Status(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.Limit = v
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.Offset = v
		}
	}

	members, total, err := c.members.GetPaginated(r.Context(), params)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("member list failed")
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}

	items := make([]mappers.MemberViewModel, 0, len(members))
	for _, m := range members {
		items = append(items, mappers.ToMemberViewModel(m))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
	})
}

func (c *MemberAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	m, err := c.members.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			writeAPIError(w, http.StatusNotFound, "MEMBER_NOT_FOUND", "member not found")
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("member fetch failed")
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.ToMemberViewModel(m))
}

func (c *MemberAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto member.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, http.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		return
	}
	if fieldErrs, ok := dto.Ok(); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"code":   "MEMBER_VALIDATION_FAILED",
			"fields": fieldErrs,
		})
		return
	}

	actorID, _ := composables.UseUser(r.Context())
	created, err := c.members.Create(r.Context(), &dto, actorID)
	if err != nil {
		if errors.Is(err, member.ErrDuplicateNationalID) {
			writeAPIError(w, http.StatusConflict, "MEMBER_DUPLICATE_NATIONAL_ID", "national id is already registered")
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("member create failed")
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, mappers.ToMemberViewModel(created))
}

// Update replaces the editable fields of a member. Import provenance
// (source, status, creator, timestamps) is carried over from the stored row.
func (c *MemberAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var dto member.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, http.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		return
	}
	if fieldErrs, ok := dto.Ok(); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"code":   "MEMBER_VALIDATION_FAILED",
			"fields": fieldErrs,
		})
		return
	}

	existing, err := c.members.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			writeAPIError(w, http.StatusNotFound, "MEMBER_NOT_FOUND", "member not found")
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("member fetch failed")
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}

	updated := dto.ToEntity(existing.CreatedBy)
	updated.ID = existing.ID
	updated.Source = existing.Source
	updated.Status = existing.Status
	updated.CreatedAt = existing.CreatedAt

	if err := c.members.Update(r.Context(), updated); err != nil {
		switch {
		case errors.Is(err, member.ErrNotFound):
			writeAPIError(w, http.StatusNotFound, "MEMBER_NOT_FOUND", "member not found")
		case errors.Is(err, member.ErrDuplicateNationalID):
			writeAPIError(w, http.StatusConflict, "MEMBER_DUPLICATE_NATIONAL_ID", "national id is already registered")
		default:
			composables.UseLogger(r.Context()).WithError(err).Error("member update failed")
			writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, mappers.ToMemberViewModel(updated))
}

func (c *MemberAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := c.members.Delete(r.Context(), id); err != nil {
		if errors.Is(err, member.ErrNotFound) {
			writeAPIError(w, http.StatusNotFound, "MEMBER_NOT_FOUND", "member not found")
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("member delete failed")
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
