package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/or-harmony/internal/httperr"
)

// ======================================================
// HELPERS
// ======================================================

// fail writes err and logs it when the cause is on our side.
func fail(c *gin.Context, log *zap.Logger, err error) {
	if httperr.IsKind(err, httperr.KindStore) {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	httperr.FromError(c, err)
}

func invalidBody(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Malformed request body.")
}

// idParam parses the :id path parameter, writing 400 when it is not a UUID.
func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.FromError(c, httperr.ErrValidation("invalid_id", "id"))
		return uuid.Nil, false
	}
	return id, true
}

// uuidQuery parses an optional query parameter. An absent value yields nil.
func uuidQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.FromError(c, httperr.ErrValidation("invalid_"+name, name))
		return nil, false
	}
	return &id, true
}

func boolQuery(c *gin.Context, name string) *bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(name))) {
	case "true", "1", "yes":
		v := true
		return &v
	case "false", "0", "no":
		v := false
		return &v
	}
	return nil
}

func uuidOrNil(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

// bodyUUID parses an id carried in a JSON body. Empty means absent.
func bodyUUID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, httperr.ErrValidation("invalid_"+field, field)
	}
	return id, nil
}

// bodyUUIDPtr is bodyUUID for partial updates.
func bodyUUIDPtr(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := bodyUUID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
