package controllers

import (
	"errors"
	"strconv"

	"github.com/AlexMaina05/Comande/pkg/resp"
	"github.com/AlexMaina05/Comande/services"
	"github.com/gin-gonic/gin"
)

// respondErr maps the domain error taxonomy onto HTTP statuses:
// validation → 400, missing entity → 404, uniqueness conflict and illegal
// status change → 409. Anything else is a 500.
func respondErr(c *gin.Context, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		resp.BadRequest(c, ve.Error())
		return
	}
	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		resp.NotFound(c, nf.Error())
		return
	}
	var cf *services.ConflictError
	if errors.As(err, &cf) {
		resp.Conflict(c, cf.Error())
		return
	}
	var it *services.InvalidTransitionError
	if errors.As(err, &it) {
		resp.Conflict(c, it.Error())
		return
	}
	resp.ServerError(c, err)
}

// idParam parses a numeric path parameter. Non-numeric ids behave like
// missing resources, the way integer-typed routes do.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		resp.NotFound(c, "not found")
		return 0, false
	}
	return uint(id), true
}
