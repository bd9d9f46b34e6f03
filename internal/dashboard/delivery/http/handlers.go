package http

import (
	"github.com/gin-gonic/gin"

	"my-daily-planner/pkg/response"
)

// Summary godoc
// @Summary     Generate a range summary
// @Description Aggregates the tasks of a range and resets any AI narrative for it.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body rangeReq true "Range (yesterday, today, last-7-days, this-month)"
// @Success     200  {object} summaryResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/summary [POST]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	r, err := h.processRangeBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Summarize(ctx, r)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Analysis godoc
// @Summary     Generate the AI narrative
// @Description Asks the AI service to analyse the last summary of a range.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body rangeReq true "Range"
// @Success     200  {object} analysisResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "No summary yet, or an analysis is running"
// @Failure     502  {object} response.Resp "AI service rejected the key or failed"
// @Failure     503  {object} response.Resp "AI service not configured"
// @Router      /api/v1/dashboard/analysis [POST]
func (h *handler) Analysis(c *gin.Context) {
	ctx := c.Request.Context()

	r, err := h.processRangeBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, r)
	if err != nil {
		h.l.Warnf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalysisResp(output))
}

// Report godoc
// @Summary     Download the summary report
// @Description Plain-text rendering of the last summary of a range, with the AI narrative when available.
// @Tags        Dashboard
// @Produce     plain
// @Param       range query string true "Range"
// @Success     200 {string} string "Report file"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "No summary yet"
// @Router      /api/v1/dashboard/report [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	r, err := h.processRangeQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Report(ctx, r)
	if err != nil {
		h.l.Warnf(ctx, "uc.Report: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Attachment(c, output.FileName, "text/plain; charset=utf-8", []byte(output.Content))
}
