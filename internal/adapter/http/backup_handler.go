package http

import (
	"net/http"
	"time"

	backupDomain "rentora-backend/internal/domain/backup"
	"rentora-backend/internal/usecase/backup"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type BackupHandler struct{ uc *backup.Usecase }

func NewBackupHandler(uc *backup.Usecase) *BackupHandler { return &BackupHandler{uc: uc} }

type createBackupReq struct {
	Type        string     `json:"type"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

type sweepReq struct {
	TrashDays  int `json:"trash_days" validate:"required,gte=1"`
	DeleteDays int `json:"delete_days" validate:"required,gte=1"`
}

func (h *BackupHandler) CreateBackup(c echo.Context) error {
	var req createBackupReq
	_ = c.Bind(&req) // empty body means a manual backup
	typ := backupDomain.Type(req.Type)
	if typ != "" && typ != backupDomain.TypeManual && typ != backupDomain.TypeScheduled {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid backup type"})
	}
	rec, err := h.uc.Create(c.Request().Context(), typ, req.ScheduledAt)
	if err != nil {
		return respondErr(c, err)
	}
	// Export failures ride on the record's status, not the HTTP status.
	return c.JSON(http.StatusCreated, rec)
}

func (h *BackupHandler) ListBackups(c echo.Context) error {
	var (
		out []*backupDomain.DatabaseBackup
		err error
	)
	if c.QueryParam("scope") == "trash" {
		out, err = h.uc.ListTrashed(c.Request().Context())
	} else {
		out, err = h.uc.ListActive(c.Request().Context())
	}
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BackupHandler) TrashBackup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid backup id"})
	}
	rec, err := h.uc.SoftDelete(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *BackupHandler) RestoreBackup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid backup id"})
	}
	rec, err := h.uc.Restore(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *BackupHandler) PermanentlyDeleteBackup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid backup id"})
	}
	if err := h.uc.PermanentlyDelete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BackupHandler) Sweep(c echo.Context) error {
	var req sweepReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.uc.RetentionSweep(c.Request().Context(), req.TrashDays, req.DeleteDays)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
