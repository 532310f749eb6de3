package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// uploadField is the multipart form field that carries the file.
const uploadField = "file"

// AttachmentHandler handles task attachment uploads and downloads. Bodies
// are streamed; nothing is buffered in memory beyond the multipart reader.
type AttachmentHandler struct {
	svc ports.TaskService
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(svc ports.TaskService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// ListAttachments handles GET /api/v1/tasks/{id}/attachments.
func (h *AttachmentHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	atts, err := h.svc.ListAttachments(r.Context(), p, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAttachmentListResponse(atts))
}

// UploadAttachment handles POST /api/v1/tasks/{id}/attachments with a
// multipart body whose "file" part holds the content.
func (h *AttachmentHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	mr, err := r.MultipartReader()
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "must be multipart/form-data"},
		})
		return
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			dto.WriteErrorResponse(w, r, &domain.ValidationError{
				Fields: map[string]string{"body": "malformed multipart body"},
			})
			return
		}
		if part.FormName() != uploadField {
			_ = part.Close()
			continue
		}

		att, err := h.svc.UploadAttachment(r.Context(), p, id, ports.AttachmentUpload{
			FileName:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Body:        part,
		})
		_ = part.Close()
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, dto.ToAttachmentResponse(att))
		return
	}

	dto.WriteErrorResponse(w, r, &domain.ValidationError{
		Fields: map[string]string{uploadField: domain.MsgRequired},
	})
}

// DownloadAttachment handles GET /api/v1/attachments/{id}.
func (h *AttachmentHandler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	att, body, err := h.svc.OpenAttachment(r.Context(), p, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", att.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(att.Size, 10))
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": att.FileName}))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		slog.ErrorContext(r.Context(), "attachment download interrupted",
			slog.Int64("attachment_id", id),
			slog.Any("error", err),
		)
	}
}
