package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sendikahq/sendika/modules/catalog/domain/entities/reference"
	"github.com/sendikahq/sendika/modules/catalog/services"
	"github.com/sendikahq/sendika/pkg/composables"
	"github.com/sendikahq/sendika/pkg/server"
)

type CatalogAPIController struct {
	catalog  *services.CatalogService
	basePath string
}

func NewCatalogAPIController(catalog *services.CatalogService) server.Controller {
	return &CatalogAPIController{
		catalog:  catalog,
		basePath: "/api/catalog",
	}
}

func (c *CatalogAPIController) Key() string {
	return c.basePath
}

func (c *CatalogAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/provinces", c.listItems(c.catalog.Provinces)).Methods(http.MethodGet)
	router.HandleFunc("/districts", c.Districts).Methods(http.MethodGet)
	router.HandleFunc("/institutions", c.listItems(c.catalog.Institutions)).Methods(http.MethodGet)
	router.HandleFunc("/branches", c.listItems(c.catalog.Branches)).Methods(http.MethodGet)
	router.HandleFunc("/professions", c.listItems(c.catalog.Professions)).Methods(http.MethodGet)
	router.HandleFunc("/tevkifat-centers", c.listItems(c.catalog.TevkifatCenters)).Methods(http.MethodGet)
	router.HandleFunc("/tevkifat-titles", c.listItems(c.catalog.TevkifatTitles)).Methods(http.MethodGet)
	router.HandleFunc("/member-groups", c.listItems(c.catalog.MemberGroups)).Methods(http.MethodGet)
}

type itemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type districtResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProvinceID   string `json:"provinceId"`
	ProvinceName string `json:"provinceName"`
}

func (c *CatalogAPIController) listItems(list func(context.Context) ([]reference.Item, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			composables.UseLogger(r.Context()).WithError(err).Error("catalog list failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		out := make([]itemResponse, 0, len(items))
		for _, item := range items {
			out = append(out, itemResponse{ID: item.ID, Name: item.Name})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (c *CatalogAPIController) Districts(w http.ResponseWriter, r *http.Request) {
	districts, err := c.catalog.Districts(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("district list failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	out := make([]districtResponse, 0, len(districts))
	for _, d := range districts {
		out = append(out, districtResponse{
			ID:           d.ID,
			Name:         d.Name,
			ProvinceID:   d.ProvinceID,
			ProvinceName: d.ProvinceName,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
