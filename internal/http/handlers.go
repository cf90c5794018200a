package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/containerno/internal/core"
	"github.com/example/containerno/internal/metrics"
)

type Handlers struct {
	svc     *core.Service
	baseURL string
}

func NewHandlers(svc *core.Service, baseURL string) *Handlers {
	return &Handlers{svc: svc, baseURL: baseURL}
}

// ---- endpoints ----

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handlers) Generate(c *gin.Context) {
	var in core.GenerateRequest
	// An empty body means one fully random number.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid json body")
			return
		}
	}
	numbers, err := h.svc.Generate(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidCount):
			jsonError(c, http.StatusBadRequest, err.Error())
		case core.IsExhausted(err):
			jsonError(c, http.StatusConflict, err.Error())
		default:
			jsonError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}
	metrics.RecordGenerated(len(numbers))
	c.JSON(http.StatusOK, gin.H{"numbers": numbers})
}

func (h *Handlers) ValidatePath(c *gin.Context) {
	h.validate(c, c.Param("code"))
}

func (h *Handlers) ValidateBody(c *gin.Context) {
	var in struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid json body")
		return
	}
	h.validate(c, in.Code)
}

// A well-formed request always gets 200; an invalid number is a result,
// not an error.
func (h *Handlers) validate(c *gin.Context, code string) {
	v := h.svc.Validate(c.Request.Context(), code)
	result := v.Reason
	if v.Valid {
		result = "valid"
	}
	metrics.RecordValidation(result)
	c.JSON(http.StatusOK, v)
}

func (h *Handlers) CheckDigit(c *gin.Context) {
	cn, err := h.svc.CheckDigit(c.Request.Context(),
		c.Query("owner"), c.Query("category"), c.Query("serial"))
	if err != nil {
		if core.IsInvalidInput(err) {
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
		jsonError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"check_digit":  cn.CheckDigit,
		"number":       cn.Number,
		"validate_url": h.baseURL + "/api/validate/" + cn.Number,
	})
}

// ---- helpers ----

func jsonError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
