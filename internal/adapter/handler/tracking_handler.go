package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/field-tracker/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/field-tracker/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/field-tracker/internal/domain"
	"github.com/marcos-nsantos/field-tracker/internal/pkg/apperror"
	"github.com/marcos-nsantos/field-tracker/internal/pkg/httputil"
	"github.com/marcos-nsantos/field-tracker/internal/usecase/tracking"
)

const streamBuffer = 16

type TrackingHandler struct {
	trackingSvc TrackingService
	pusher      SamplePusher
}

func NewTrackingHandler(trackingSvc TrackingService, pusher SamplePusher) *TrackingHandler {
	return &TrackingHandler{trackingSvc: trackingSvc, pusher: pusher}
}

func (h *TrackingHandler) Status(c *gin.Context) {
	httputil.OK(c, response.StatusFromSnapshot(h.trackingSvc.Snapshot()))
}

func (h *TrackingHandler) Position(c *gin.Context) {
	httputil.OK(c, response.PositionFromCoordinate(h.trackingSvc.Snapshot().Position))
}

func (h *TrackingHandler) Track(c *gin.Context) {
	snap := h.trackingSvc.Snapshot()
	httputil.OK(c, response.TrackResponse{
		Recording: snap.Recording,
		Points:    response.PositionsFromCoordinates(h.trackingSvc.Track()),
	})
}

// Stream sends every position update as a server-sent event until the client
// goes away.
func (h *TrackingHandler) Stream(c *gin.Context) {
	positions, cancel := h.trackingSvc.WatchPositions(streamBuffer)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case pos, ok := <-positions:
			if !ok {
				return
			}
			c.SSEvent("position", response.PositionFromCoordinate(pos))
			c.Writer.Flush()
		}
	}
}

func (h *TrackingHandler) StartSession(c *gin.Context) {
	h.command(c, tracking.CommandSessionStart)
}

func (h *TrackingHandler) StopSession(c *gin.Context) {
	h.command(c, tracking.CommandSessionStop)
}

func (h *TrackingHandler) Pause(c *gin.Context) {
	h.command(c, tracking.CommandAppPaused)
}

func (h *TrackingHandler) Resume(c *gin.Context) {
	h.command(c, tracking.CommandAppResumed)
}

func (h *TrackingHandler) PushSample(c *gin.Context) {
	var req request.SampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	if err := h.pusher.Push(c.Request.Context(), req.ToSample()); err != nil {
		switch {
		case errors.Is(err, domain.ErrWatchNotFound):
			httputil.HandleError(c, apperror.Conflict("no active position watch"))
		case errors.Is(err, domain.ErrInvalidSample):
			httputil.HandleError(c, apperror.BadRequest("sample has no latitude"))
		default:
			httputil.HandleError(c, apperror.Internal(err))
		}
		return
	}

	c.Status(http.StatusAccepted)
}

func (h *TrackingHandler) command(c *gin.Context, cmd tracking.Command) {
	if err := h.trackingSvc.Submit(c.Request.Context(), tracking.CommandEvent(cmd)); err != nil {
		if errors.Is(err, domain.ErrEventLoopStopped) {
			httputil.HandleError(c, apperror.Unavailable("tracking is shutting down"))
			return
		}
		httputil.HandleError(c, apperror.Internal(err))
		return
	}

	httputil.OK(c, response.StatusFromSnapshot(h.trackingSvc.Snapshot()))
}
