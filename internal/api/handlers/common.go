package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/yoospeak/internal/services"
	"github.com/yoockh/yoospeak/internal/utils"
)

type APIError struct {
	Error   bool       `json:"error"`
	Message string     `json:"message"`
	Type    string     `json:"type"`
	Code    utils.Code `json:"code"`
	Stage   string     `json:"stage,omitempty"`
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if !errors.As(err, &ae) {
		c.AbortWithStatusJSON(status, APIError{
			Error:   true,
			Message: http.StatusText(status),
			Type:    utils.Kind(utils.CodeInternal),
			Code:    utils.CodeInternal,
		})
		return
	}

	body := APIError{
		Error:   true,
		Message: ae.Message,
		Type:    utils.Kind(ae.Code),
		Code:    ae.Code,
	}
	// upstream causes are reported so callers can tell which provider broke
	if (ae.Code == utils.CodeUpstream || ae.Code == utils.CodeTimeout) && ae.Err != nil {
		body.Message = ae.Message + ": " + ae.Err.Error()
	}
	var se *services.StageError
	if errors.As(err, &se) {
		body.Stage = se.Stage
	}
	c.AbortWithStatusJSON(status, body)
}

// readAudio reads the multipart "audio" field after validating its name and size.
func readAudio(c *gin.Context, op string, maxBytes int64) (data []byte, filename, mimetype string, err error) {
	fh, err := c.FormFile("audio")
	if err != nil {
		return nil, "", "", utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'audio'", err)
	}
	if err := utils.ValidateAudioFile(fh.Filename, fh.Size, maxBytes); err != nil {
		return nil, "", "", err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", "", utils.E(utils.CodeInternal, op, "failed to open upload", err)
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, "", "", utils.E(utils.CodeInternal, op, "failed to read upload", err)
	}
	return data, fh.Filename, fh.Header.Get("Content-Type"), nil
}
