package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"health-backend/internal/models"
	"health-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// CreateProfile handles POST /api/profile/. The payload is an untyped JSON
// object; unknown keys are ignored and missing string keys default to "".
// Numeric keys follow the legacy contract: a value that is absent or falsy
// (0, null, "") is stored as NULL.
func (h *Handler) CreateProfile(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid JSON"})
		return
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid JSON"})
		return
	}

	profile := models.PatientProfile{
		FirstName: strings.TrimSpace(stringField(data, "first_name")),
		LastName:  strings.TrimSpace(stringField(data, "last_name")),
		Age:       intField(data, "age"),
		HeightCm:  numberField(data, "height_cm"),
		WeightKg:  numberField(data, "weight_kg"),
		Notes:     truncateRunes(stringField(data, "notes"), models.MaxNotesLen),
	}

	if err := h.store.CreateProfile(c.Request.Context(), &profile); err != nil {
		switch {
		case errors.Is(err, store.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		case errors.Is(err, store.ErrConstraintViolation):
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "profile already exists"})
		default:
			h.log.Error().Err(err).Msg("create profile failed")
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": profile.ID})
}

// GetProfile handles GET /api/profile/:id.
func (h *Handler) GetProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid profile id"})
		return
	}

	profile, err := h.store.GetProfile(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "profile not found"})
			return
		}
		h.log.Error().Err(err).Uint64("id", id).Msg("get profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListProfiles handles GET /api/profiles/, a plain read of the schema.
func (h *Handler) ListProfiles(c *gin.Context) {
	profiles, err := h.store.ListProfiles(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list profiles failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles, "total": len(profiles)})
}

// stringField reads a string value, defaulting to "" for absent or
// non-string values.
func stringField(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

// intField reads a truthy number as an int. JSON numbers decode as float64;
// zero and non-numbers coerce to absent, and fractional values truncate
// toward zero, matching the legacy integer coercion.
func intField(data map[string]any, key string) *int {
	v := numberField(data, key)
	if v == nil {
		return nil
	}
	n := int(math.Trunc(*v))
	return &n
}

// numberField reads a truthy number, coercing falsy values to absent.
func numberField(data map[string]any, key string) *float64 {
	v, ok := data[key].(float64)
	if !ok || v == 0 {
		return nil
	}
	return &v
}

// truncateRunes limits s to max characters, not bytes.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
