package http

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"maya-nlp/internal/nlp"
	"maya-nlp/pkg/response"
)

// Analyze godoc
// @Summary     Extract entities from a command
// @Description Returns task, temporal and duration entities for a voice-assistant command.
// @Tags        NLP
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Command text and optional backend"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Failure     503  {object} response.Resp "Backend Unavailable"
// @Router      /api/v1/nlp/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.svc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "svc.Analyze: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Backends godoc
// @Summary     List extraction backends
// @Description Returns the configured backends in fallback order.
// @Tags        NLP
// @Produce     json
// @Success     200 {object} backendsResp
// @Router      /api/v1/nlp/backends [GET]
func (h *handler) Backends(c *gin.Context) {
	response.OK(c, h.newBackendsResp(h.svc.Backends()))
}

// DucklingRaw godoc
// @Summary     Raw Duckling parse
// @Description Local debugging passthrough returning Duckling's unprocessed response.
// @Tags        NLP
// @Accept      json
// @Produce     json
// @Param       body body ducklingRawReq true "Text to parse"
// @Success     200  {object} ducklingRawResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Backend Unavailable"
// @Router      /api/v1/nlp/duckling/raw [POST]
func (h *handler) DucklingRaw(c *gin.Context) {
	ctx := c.Request.Context()

	if h.raw == nil {
		response.ServiceUnavailable(c, "duckling backend not configured")
		return
	}

	req, err := h.processDucklingRawReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	body, err := h.raw.Raw(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "raw.Raw: %v", err)
		response.ServiceUnavailable(c, nlp.ErrBackendUnavailable.Error())
		return
	}
	if !json.Valid(body) {
		h.l.Errorf(ctx, "raw.Raw: invalid JSON from duckling")
		response.ServiceUnavailable(c, nlp.ErrBackendUnavailable.Error())
		return
	}

	response.OK(c, ducklingRawResp{Result: body})
}

func (h *handler) respondError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	response.InternalError(c, err)
}
