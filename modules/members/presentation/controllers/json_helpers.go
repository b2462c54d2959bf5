package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sendikahq/sendika/modules/members/importing"
	"github.com/sendikahq/sendika/pkg/serrors"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Code: code, Message: message})
}

// writeImportError maps the pipeline's error taxonomy onto HTTP: coded file
// errors are bad requests, a validation abort is unprocessable and carries
// every row issue, anything else is a 500.
func writeImportError(w http.ResponseWriter, err error) bool {
	var coded *serrors.Base
	if errors.As(err, &coded) {
		writeAPIError(w, http.StatusBadRequest, coded.Code, coded.Message)
		return true
	}
	var validation *importing.ValidationError
	if errors.As(err, &validation) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"code":    "IMPORT_VALIDATION_FAILED",
			"message": validation.Error(),
			"errors":  validation.Issues,
		})
		return true
	}
	return false
}
