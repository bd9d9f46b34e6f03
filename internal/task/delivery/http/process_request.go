package http

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

// processAddReq binds the add task body and the day path param.
func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.DayKey = c.Param("day")
	return req, nil
}

// processUpdateReq binds the update body and the day/id path params.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.DayKey = c.Param("day")
	req.ID = c.Param("id")
	return req, nil
}

// processToggleReq binds the optional toggle body and the day/id path params.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, errInvalidBody
		}
	}
	req.DayKey = c.Param("day")
	req.ID = c.Param("id")
	return req, nil
}

// processCalendarReq binds the calendar query parameters.
func (h *handler) processCalendarReq(c *gin.Context) (calendarReq, error) {
	var req calendarReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

// processImportReq extracts the uploaded spreadsheet.
func (h *handler) processImportReq(c *gin.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, errMissingFile
	}
	return fh, nil
}
