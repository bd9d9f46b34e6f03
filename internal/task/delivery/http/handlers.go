package http

import (
	"github.com/gin-gonic/gin"

	"my-daily-planner/internal/sheet"
	"my-daily-planner/internal/task"
	"my-daily-planner/pkg/response"
)

// Today godoc
// @Summary     Today's checklist
// @Description Returns the tasks of the current civil day (Asia/Jakarta).
// @Tags        Planner
// @Produce     json
// @Success     200 {object} dayResp
// @Router      /api/v1/planner/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Today(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Today: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(output))
}

// Day godoc
// @Summary     Checklist of a day
// @Description Returns the tasks of one day with planned/actual totals and progress.
// @Tags        Planner
// @Produce     json
// @Param       day path string true "Day key (YYYY-MM-DD)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/days/{day} [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListDay(ctx, c.Param("day"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(output))
}

// Add godoc
// @Summary     Add a task
// @Description Appends a pending task to a day.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       day  path string true "Day key (YYYY-MM-DD)"
// @Param       body body addReq true "Task data"
// @Success     200  {object} taskMutationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/days/{day}/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskMutationResp(output))
}

// Update godoc
// @Summary     Edit a task
// @Description Replaces text, planning time, actual time and result link.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       day  path string    true "Day key (YYYY-MM-DD)"
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields"
// @Success     200  {object} taskMutationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/planner/days/{day}/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskMutationResp(output))
}

// Toggle godoc
// @Summary     Complete or reopen a task
// @Description Completing a task without an actual time requires actual_time in the body.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       day  path string    true  "Day key (YYYY-MM-DD)"
// @Param       id   path string    true  "Task ID"
// @Param       body body toggleReq false "Actual time and result link"
// @Success     200  {object} taskMutationResp
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     422  {object} response.Resp "Actual time required"
// @Router      /api/v1/planner/days/{day}/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Toggle(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskMutationResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Planner
// @Produce     json
// @Param       day path string true "Day key (YYYY-MM-DD)"
// @Param       id  path string true "Task ID"
// @Success     200 {object} dayResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/days/{day}/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Delete(ctx, c.Param("day"), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(output))
}

// Calendar godoc
// @Summary     Month calendar
// @Description Sunday-first month grid with task markers. Defaults to the current month.
// @Tags        Planner
// @Produce     json
// @Param       month    query string false "Month (YYYY-MM)"
// @Param       selected query string false "Selected day (YYYY-MM-DD)"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Calendar(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCalendarResp(output))
}

// Export godoc
// @Summary     Export a month to .xlsx
// @Tags        Planner
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       month query string false "Month (YYYY-MM)"
// @Success     200 {file} file "Workbook"
// @Failure     404 {object} response.Resp "No tasks in month"
// @Router      /api/v1/planner/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Export(ctx, c.Query("month"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Attachment(c, output.FileName, sheet.ContentType, output.Content)
}

// Import godoc
// @Summary     Import tasks from .xlsx or .xls
// @Description Appends every row with a DD/MM/YYYY date and a task text. Other rows are skipped.
// @Tags        Planner
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Spreadsheet"
// @Success     200 {object} importResp
// @Failure     415 {object} response.Resp "Unsupported file extension"
// @Failure     422 {object} response.Resp "No valid rows"
// @Router      /api/v1/planner/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	fh, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.l.Errorf(ctx, "http.Import Open: %v", err)
		response.Error(c, errMissingFile)
		return
	}
	defer f.Close()

	output, err := h.uc.Import(ctx, task.ImportInput{FileName: fh.Filename, File: f})
	if err != nil {
		h.l.Warnf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}
