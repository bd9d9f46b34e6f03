package http

import (
	"github.com/gin-gonic/gin"

	"my-daily-planner/pkg/datemath"
)

// processRangeBody binds {"range": "..."} from a JSON body.
func (h *handler) processRangeBody(c *gin.Context) (datemath.Range, error) {
	var req rangeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", errInvalidRange
	}
	r, err := req.toRange()
	if err != nil {
		return "", errInvalidRange
	}
	return r, nil
}

// processRangeQuery binds ?range=... from the query string.
func (h *handler) processRangeQuery(c *gin.Context) (datemath.Range, error) {
	var req rangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return "", errInvalidRange
	}
	r, err := req.toRange()
	if err != nil {
		return "", errInvalidRange
	}
	return r, nil
}
