package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"docdash/internal/service"
	"docdash/internal/upload"
)

type summaryRequest struct {
	Summary string `json:"summary"`
}

// sessionID validates the :id path parameter. The result is copied out of
// the request buffer because the upload service keeps it past the request.
func sessionID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return utils.CopyString(id), true
}

// OpenUpload godoc
// @Summary Open an upload session
// @Tags uploads
// @Produce json
// @Success 201 {object} service.UploadSession
// @Failure 503 {object} errorPayload
// @Router /uploads [post]
func OpenUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := svc.Open(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Location("/uploads/" + sess.ID)
		return c.Status(fiber.StatusCreated).JSON(sess)
	}
}

// GetUpload godoc
// @Summary Get an upload session
// @Tags uploads
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} service.UploadSession
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /uploads/{id} [get]
func GetUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := sessionID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		sess, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sess)
	}
}

// SelectUploadFile godoc
// @Summary Select the file to upload
// @Description Accepts multipart/form-data (field "file") or JSON {"name","size"}.
// @Description Only the file name and size are kept; content is discarded.
// @Tags uploads
// @Accept mpfd,json
// @Produce json
// @Param id path string true "session id"
// @Param file formData file false "document"
// @Success 200 {object} service.UploadSession
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /uploads/{id}/file [put]
func SelectUploadFile(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := sessionID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var ref upload.FileRef
		if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			fh, err := c.FormFile("file")
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
			}
			ref = upload.FileRef{Name: fh.Filename, Size: fh.Size}
		} else if err := c.BodyParser(&ref); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		if strings.TrimSpace(ref.Name) == "" {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		if ref.Size < 0 {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "size must not be negative")
		}

		sess, err := svc.SelectFile(c.UserContext(), id, ref)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sess)
	}
}

// SetUploadSummary godoc
// @Summary Set the optional summary
// @Tags uploads
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body summaryRequest true "summary text"
// @Success 200 {object} service.UploadSession
// @Failure 409 {object} errorPayload
// @Router /uploads/{id}/summary [put]
func SetUploadSummary(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := sessionID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req summaryRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		sess, err := svc.SetSummary(c.UserContext(), id, req.Summary)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sess)
	}
}

// StartUpload godoc
// @Summary Start the simulated upload
// @Description Completes after the configured delay; poll the session for the result.
// @Tags uploads
// @Produce json
// @Param id path string true "session id"
// @Success 202 {object} service.UploadSession
// @Failure 409 {object} errorPayload
// @Router /uploads/{id}/start [post]
func StartUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := sessionID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		sess, err := svc.Start(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(sess)
	}
}

// CancelUpload godoc
// @Summary Cancel an in-flight upload
// @Tags uploads
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} service.UploadSession
// @Router /uploads/{id}/cancel [post]
func CancelUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := sessionID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		sess, err := svc.Cancel(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sess)
	}
}

// CloseUpload godoc
// @Summary Tear down an upload session
// @Tags uploads
// @Param id path string true "session id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /uploads/{id} [delete]
func CloseUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := sessionID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Close(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
