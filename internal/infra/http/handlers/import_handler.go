package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/imobi-crm/internal/infra/http/middleware"
	"github.com/xavierca1/imobi-crm/internal/infra/integration/storage"
	"github.com/xavierca1/imobi-crm/internal/spreadsheet"
	"github.com/xavierca1/imobi-crm/internal/usecase"
)

// Limite do multipart em memória: planilhas de tabela de vendas são
// pequenas, fotos de empreendimento nem tanto.
const maxUploadBytes = 32 << 20

type ImportHandler struct {
	ImportUC *usecase.ImportReleaseUseCase
	Releases usecase.ReleaseRepository
}

func NewImportHandler(importUC *usecase.ImportReleaseUseCase, releases usecase.ReleaseRepository) *ImportHandler {
	return &ImportHandler{
		ImportUC: importUC,
		Releases: releases,
	}
}

// ParseSpreadsheet (POST /releases/import): recebe o .xlsx, detecta o
// cabeçalho e devolve colunas + linhas + rascunho de descrição para a
// tela de mapeamento. Nada é persistido aqui.
func (h *ImportHandler) ParseSpreadsheet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "envie o arquivo no campo 'file' (multipart/form-data)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "campo 'file' ausente")
		return
	}
	defer file.Close()

	if header.Size == 0 {
		writeErrorResponse(w, http.StatusBadRequest, "EMPTY_FILE", "o arquivo enviado está vazio")
		return
	}

	table, err := spreadsheet.Parse(file)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrNoHeader) || errors.Is(err, spreadsheet.ErrEmptyWorkbook) {
			writeErrorResponse(w, http.StatusUnprocessableEntity, "NO_HEADER", err.Error())
			return
		}
		writeErrorResponse(w, http.StatusBadRequest, "UNREADABLE_WORKBOOK", err.Error())
		return
	}

	items := make([]map[string]string, 0, len(table.Rows))
	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		items = append(items, table.RowMap(row))
		rows = append(rows, []string(row))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"columns":     table.Columns,
		"items":       items,
		"rows":        rows,
		"description": table.Preamble,
	})
}

// CreateRelease (POST /releases): aplica o mapeamento do operador e
// persiste o empreendimento com as unidades normalizadas.
func (h *ImportHandler) CreateRelease(w http.ResponseWriter, r *http.Request) {
	var input usecase.ImportReleaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.ImportUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordImport(output.UnitCount)
	writeJSON(w, http.StatusCreated, output)
}

// GetRelease (GET /releases/{id})
func (h *ImportHandler) GetRelease(w http.ResponseWriter, r *http.Request) {
	release, err := h.Releases.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, release)
}

// DeleteRelease (DELETE /releases/{id})
func (h *ImportHandler) DeleteRelease(w http.ResponseWriter, r *http.Request) {
	if err := h.Releases.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AttachImages (POST /releases/{id}/images): segunda etapa da
// importação. Se falhar, o empreendimento continua existindo sem as
// fotos; o operador reenvia.
func (h *ImportHandler) AttachImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "envie as imagens em multipart/form-data")
		return
	}

	files, err := readUploadedFiles(r, "images")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
		return
	}
	if len(files) == 0 {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "nenhuma imagem no campo 'images'")
		return
	}

	urls, err := h.ImportUC.AttachImages(r.Context(), chi.URLParam(r, "id"), files)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"image_urls": urls})
}

func readUploadedFiles(r *http.Request, field string) ([]storage.File, error) {
	var files []storage.File
	if r.MultipartForm == nil {
		return nil, nil
	}
	for _, header := range r.MultipartForm.File[field] {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, storage.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	return files, nil
}
