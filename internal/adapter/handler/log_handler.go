package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/field-tracker/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/field-tracker/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/field-tracker/internal/pkg/httputil"
)

type LogHandler struct {
	feed LogFeed
}

func NewLogHandler(feed LogFeed) *LogHandler {
	return &LogHandler{feed: feed}
}

// List returns the feed oldest first. tail limits the result to the newest
// entries.
func (h *LogHandler) List(c *gin.Context) {
	var req request.LogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	messages := h.feed.Messages()
	if req.Tail > 0 && req.Tail < len(messages) {
		messages = messages[len(messages)-req.Tail:]
	}
	if messages == nil {
		messages = []string{}
	}

	httputil.OK(c, response.LogsResponse{Messages: messages})
}
