package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sendikahq/sendika/modules/members/importing"
	"github.com/sendikahq/sendika/modules/members/services"
	"github.com/sendikahq/sendika/pkg/composables"
	"github.com/sendikahq/sendika/pkg/server"
)

type MemberImportController struct {
	imports  *services.ImportService
	basePath string
	maxBody  int64
}

func NewMemberImportController(imports *services.ImportService, maxBody int64) server.Controller {
	return &MemberImportController{
		imports:  imports,
		basePath: "/api/members/import",
		maxBody:  maxBody,
	}
}

func (c *MemberImportController) Key() string {
	return c.basePath
}

func (c *MemberImportController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.Import).Methods(http.MethodPost)
	router.HandleFunc("/validate", c.Validate).Methods(http.MethodPost)
	router.HandleFunc("/template", c.Template).Methods(http.MethodGet)
	router.HandleFunc("/sample", c.Sample).Methods(http.MethodGet)
}

// readFile pulls the uploaded CSV out of the multipart body, capped a bit
// above the import limit so the size check fires before the body limit.
func (c *MemberImportController) readFile(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, c.maxBody+4096)
	file, _, err := r.FormFile("file")
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "IMPORT_FILE_MISSING", "multipart field \"file\" is required")
		return nil, false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "IMPORT_FILE_UNREADABLE", "uploaded file could not be read")
		return nil, false
	}
	return data, true
}

func (c *MemberImportController) Validate(w http.ResponseWriter, r *http.Request) {
	data, ok := c.readFile(w, r)
	if !ok {
		return
	}

	report, err := c.imports.Validate(r.Context(), data)
	if err != nil {
		if writeImportError(w, err) {
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("import validate failed")
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (c *MemberImportController) Import(w http.ResponseWriter, r *http.Request) {
	data, ok := c.readFile(w, r)
	if !ok {
		return
	}

	skipErrors := false
	if raw := r.FormValue("skipErrors"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "IMPORT_INVALID_FLAG", "skipErrors must be a boolean")
			return
		}
		skipErrors = v
	}

	actorID, _ := composables.UseUser(r.Context())
	result, err := c.imports.Import(r.Context(), data, skipErrors, actorID)
	if err != nil {
		if writeImportError(w, err) {
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("import failed")
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (c *MemberImportController) Template(w http.ResponseWriter, r *http.Request) {
	data, err := c.imports.SampleData(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("template export failed")
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="uye-sablonu.csv"`)
	_, _ = w.Write(importing.TemplateCSV(data))
}

func (c *MemberImportController) Sample(w http.ResponseWriter, r *http.Request) {
	data, err := c.imports.SampleData(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("sample export failed")
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}
	workbook, err := importing.SampleWorkbook(data)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("sample workbook failed")
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="uye-ornek.xlsx"`)
	_, _ = w.Write(workbook)
}
