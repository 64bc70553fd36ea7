package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/Emerchan23/sisvendas1-sub004/backup"
)

// BackupHandler exposes the backup scheduler.
type BackupHandler struct {
	svc *backup.Service
}

func NewBackupHandler(svc *backup.Service) *BackupHandler {
	return &BackupHandler{svc: svc}
}

// Status reports the scheduler state
// @Summary      Backup status
// @Tags         backups
// @Produce      json
// @Success      200  {object}  Response{data=backup.Status}
// @Router       /backups/status [get]
// @Security     BearerAuth
func (h *BackupHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Status())
}

// Start starts the scheduler
// @Summary      Start backups
// @Tags         backups
// @Produce      json
// @Success      200  {object}  Response{data=backup.Status}
// @Router       /backups/start [post]
// @Security     BearerAuth
func (h *BackupHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.svc.Start()
	writeJSON(w, http.StatusOK, h.svc.Status())
}

// Stop stops the scheduler
// @Summary      Stop backups
// @Tags         backups
// @Produce      json
// @Success      200  {object}  Response{data=backup.Status}
// @Router       /backups/stop [post]
// @Security     BearerAuth
func (h *BackupHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.svc.Stop()
	writeJSON(w, http.StatusOK, h.svc.Status())
}

// Run runs a backup cycle now
// @Summary      Run backup
// @Description  Export, validate and clean up immediately, independent of the schedule.
// @Tags         backups
// @Produce      json
// @Success      200  {object}  Response{data=backup.RunResult}
// @Failure      500  {object}  Response{error=string}
// @Router       /backups/run [post]
// @Security     BearerAuth
func (h *BackupHandler) Run(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ForceCheck(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Logs returns the recent run log
// @Summary      Backup logs
// @Tags         backups
// @Produce      json
// @Success      200  {object}  Response{data=[]backup.LogEntry}
// @Router       /backups/logs [get]
// @Security     BearerAuth
func (h *BackupHandler) Logs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Logs())
}

// Validations returns recent validation results
// @Summary      Backup validations
// @Tags         backups
// @Produce      json
// @Success      200  {object}  Response{data=[]backup.ValidationResult}
// @Router       /backups/validations [get]
// @Security     BearerAuth
func (h *BackupHandler) Validations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ValidationHistory())
}

// Files lists stored backups
// @Summary      List backup files
// @Tags         backups
// @Produce      json
// @Success      200  {object}  Response{data=[]backup.FileInfo}
// @Router       /backups [get]
// @Security     BearerAuth
func (h *BackupHandler) Files(w http.ResponseWriter, r *http.Request) {
	files, err := h.svc.Files()
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// Validate checks one stored backup
// @Summary      Validate backup file
// @Tags         backups
// @Produce      json
// @Param        name  path      string  true  "Backup file name"
// @Success      200   {object}  Response{data=backup.ValidationResult}
// @Failure      400   {object}  Response{error=string}
// @Failure      404   {object}  Response{error=string}
// @Router       /backups/{name}/validate [post]
// @Security     BearerAuth
func (h *BackupHandler) Validate(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Validate(chi.URLParam(r, "name"))
	if errors.Is(err, os.ErrNotExist) {
		writeError(w, http.StatusNotFound, "backup not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}
