package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventhive/server/internal/helpers"
	"github.com/eventhive/server/internal/models"
	"github.com/eventhive/server/internal/services"
	"github.com/eventhive/server/internal/uploads"
	"github.com/eventhive/server/internal/validators"
)

func currentUser(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}
	claims, ok := userClaims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, false
	}
	return claims, true
}

func parseEventID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := helpers.StringTrim(c.Param("id"))
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid event ID format"))
		return primitive.NilObjectID, false
	}
	return id, true
}

func CreateEvent(es *services.EventService, store *uploads.Store, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		fields := map[string]string{
			"title":   c.PostForm("title"),
			"content": c.PostForm("content"),
		}
		if errs := validators.Check(validators.EventRules, fields); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed.",
				"errors":  errs,
			})
			return
		}

		fh, err := c.FormFile("eventImage")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("No file selected"))
			return
		}

		imageURL, err := store.Save(c.Request.Context(), fh, uploads.KindEventImage)
		if err != nil {
			logger.Error("event image upload failed", "error", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to upload event image."))
			return
		}

		ticketPrice, _ := strconv.ParseFloat(c.PostForm("ticketPrice"), 64)

		input := services.CreateEventInput{
			Title:            c.PostForm("title"),
			Content:          c.PostForm("content"),
			EventImage:       imageURL,
			Category:         c.PostForm("category"),
			TicketPrice:      ticketPrice,
			EventDate:        c.PostForm("eventDate"),
			Location:         c.PostForm("location"),
			SpecialApperence: c.PostForm("specialApperence"),
		}

		event, err := es.CreateEvent(c.Request.Context(), input, claims.UserID)
		if err != nil {
			logger.Error("create event failed", "error", err, "user_id", claims.UserID)
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to create the event."))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"event":   event,
			"success": true,
			"message": "Your event is published.",
		})
	}
}

func UpdateEvent(es *services.EventService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := parseEventID(c)
		if !ok {
			return
		}

		var update models.EventUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to update the event."))
			return
		}

		fields := map[string]string{
			"title":   update.Title,
			"content": update.Content,
		}
		if errs := validators.Check(validators.EventRules, fields); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed.",
				"errors":  errs,
			})
			return
		}

		event, err := es.UpdateEvent(c.Request.Context(), id, claims.UserID, update)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrEventNotFound):
				c.JSON(http.StatusNotFound, models.ErrorResponse("Event not found."))
			case errors.Is(err, services.ErrNotOwner):
				c.JSON(http.StatusUnauthorized, models.ErrorResponse("event doesn't belong to you."))
			default:
				logger.Error("update event failed", "error", err, "event_id", id.Hex())
				c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to update the event."))
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"event":   event,
			"success": true,
			"message": "event updated successfully.",
		})
	}
}

func DeleteEvent(es *services.EventService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := parseEventID(c)
		if !ok {
			return
		}

		if err := es.DeleteEvent(c.Request.Context(), id, claims.UserID); err != nil {
			switch {
			case errors.Is(err, models.ErrEventNotFound):
				c.JSON(http.StatusNotFound, models.ErrorResponse("Event not found."))
			case errors.Is(err, services.ErrNotOwner):
				c.JSON(http.StatusUnauthorized, models.ErrorResponse("event doesn't belong to you."))
			default:
				logger.Error("delete event failed", "error", err, "event_id", id.Hex())
				c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to delete the event."))
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "event deleted successfully.",
		})
	}
}

func ListEvents(es *services.EventService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// limit/offset are optional; without them the full collection is
		// returned, as this API has always done.
		limitInt, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
		if err != nil || limitInt < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
			return
		}
		offsetInt, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offsetInt < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
			return
		}

		events, err := es.ListEvents(c.Request.Context(), offsetInt, limitInt)
		if err != nil {
			logger.Error("list events failed", "error", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to fetch events."))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"events":  events,
			"success": true,
			"message": "Events fetched successfully.",
		})
	}
}

func GetEventByID(es *services.EventService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseEventID(c)
		if !ok {
			return
		}

		event, err := es.GetEventByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrEventNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("Event not found."))
				return
			}
			logger.Error("get event failed", "error", err, "event_id", id.Hex())
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to fetch events."))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"event":   event,
			"success": true,
			"message": "Event fetched successfully.",
		})
	}
}

func ListEventsByCategory(es *services.EventService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := helpers.StringTrim(c.Param("category"))

		events, err := es.ListEventsByCategory(c.Request.Context(), category)
		if err != nil {
			logger.Error("list events by category failed", "error", err, "category", category)
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to fetch events."))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"events":  events,
			"success": true,
			"message": "Events fetched successfully.",
		})
	}
}

func SearchEvents(es *services.EventService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prefer ?title=; fall back to a JSON body for parity with clients of
		// the old API, which sent the search term in a GET body.
		title := c.Query("title")
		if title == "" {
			var body struct {
				Title string `json:"title"`
			}
			if err := c.ShouldBindJSON(&body); err == nil {
				title = body.Title
			}
		}

		events, err := es.SearchEventsByTitle(c.Request.Context(), title)
		if err != nil {
			logger.Error("search events failed", "error", err, "title", title)
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to fetch events."))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"events":  events,
			"success": true,
			"message": "Events fetched successfully.",
		})
	}
}

func LikeEvent(es *services.EventService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := parseEventID(c)
		if !ok {
			return
		}

		if err := es.LikeEvent(c.Request.Context(), id, claims.UserID); err != nil {
			switch {
			case errors.Is(err, models.ErrEventNotFound):
				c.JSON(http.StatusNotFound, models.ErrorResponse("event not found."))
			case errors.Is(err, models.ErrAlreadyLiked):
				c.JSON(http.StatusConflict, models.ErrorResponse("You have already liked this event."))
			default:
				logger.Error("like event failed", "error", err, "event_id", id.Hex())
				c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to like the event. Please try again later."))
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "You liked this event.",
		})
	}
}

func CommentEvent(es *services.EventService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := parseEventID(c)
		if !ok {
			return
		}

		var body struct {
			Comment string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to comment the event. Please try again later."))
			return
		}

		if err := es.CommentEvent(c.Request.Context(), id, claims.UserID, body.Comment); err != nil {
			if errors.Is(err, models.ErrEventNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("event not found."))
				return
			}
			logger.Error("comment event failed", "error", err, "event_id", id.Hex())
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Unable to comment the event. Please try again later."))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "You commented this event.",
		})
	}
}
