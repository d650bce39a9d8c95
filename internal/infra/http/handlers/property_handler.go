package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/imobi-crm/internal/usecase"
)

type PropertyHandler struct {
	CreateUC *usecase.CreatePropertyUseCase
	Repo     usecase.PropertyRepository
}

func NewPropertyHandler(createUC *usecase.CreatePropertyUseCase, repo usecase.PropertyRepository) *PropertyHandler {
	return &PropertyHandler{
		CreateUC: createUC,
		Repo:     repo,
	}
}

// Create (POST /properties): JSON com os dados do anúncio; imagens vão
// depois em multipart pelo endpoint de imagens ou junto no campo
// 'images' quando o form é multipart.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreatePropertyInput

	contentType := r.Header.Get("Content-Type")
	if len(contentType) >= 19 && contentType[:19] == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "multipart inválido")
			return
		}
		if err := json.Unmarshal([]byte(r.FormValue("payload")), &input); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "campo 'payload' deve ser o JSON do anúncio")
			return
		}
		files, err := readUploadedFiles(r, "images")
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
			return
		}
		input.Images = files
	} else {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
			return
		}
	}

	property, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, property)
}

// Get (GET /properties/{id})
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	property, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

// List (GET /properties)
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.Repo.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "falha ao listar imóveis")
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

// Update (PUT /properties/{id})
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	property, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(property); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}
	if err := property.Validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Repo.Update(r.Context(), property); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

// Delete (DELETE /properties/{id})
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
