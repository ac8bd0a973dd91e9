package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sanketgaikwad/portfolio-api/adapters/event"
	"github.com/sanketgaikwad/portfolio-api/internal/application/store"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/contact"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

// ContactPublisher hands new submissions to the notification relay.
// Publishing is fire-and-forget; the visitor's request never waits on it.
type ContactPublisher interface {
	PublishContactEvent(ctx context.Context, payload event.ContactEventPayload) error
}

type ContactHandler struct {
	store     *store.Store
	publisher ContactPublisher
	logger    logger.Logger
}

func NewContactHandler(st *store.Store, publisher ContactPublisher, log logger.Logger) *ContactHandler {
	return &ContactHandler{
		store:     st,
		publisher: publisher,
		logger:    log,
	}
}

// CreateContact is the one public write: visitors submit the contact form
// without authenticating.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact payload", err))
		return
	}

	created, err := h.store.Contacts().Add(c.Request.Context(), contact.New(req.Name, req.Email, req.Message))
	if err != nil {
		c.Error(err)
		return
	}

	if h.publisher != nil {
		payload := event.ContactEventPayload{
			ContactID: created.ID,
			Name:      created.Name,
			Email:     created.Email,
			Message:   created.Message,
			Received:  created.Received,
		}
		go func() {
			if err := h.publisher.PublishContactEvent(context.Background(), payload); err != nil {
				h.logger.Error("Failed to publish contact event", err,
					zap.String("contact_id", payload.ContactID.String()))
			}
		}()
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message received", "id": created.ID})
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	snap := h.store.Snapshot()
	if snap == nil {
		c.JSON(http.StatusOK, []contact.Contact{})
		return
	}
	c.JSON(http.StatusOK, snap.Contacts)
}

// MarkRead flips the read flag on one submission. Unknown ids fall through
// as a no-op, matching collection update semantics.
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact ID", err))
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact payload", err))
		return
	}

	snap := h.store.Snapshot()
	if snap == nil {
		c.Error(apperror.NewNotFound("contact", id.String()))
		return
	}
	var existing *contact.Contact
	for i := range snap.Contacts {
		if snap.Contacts[i].ID == id {
			existing = &snap.Contacts[i]
			break
		}
	}
	if existing == nil {
		c.Error(apperror.NewNotFound("contact", id.String()))
		return
	}

	existing.Read = req.Read
	if err := h.store.Contacts().Update(c.Request.Context(), *existing); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact ID", err))
		return
	}

	if err := h.store.Contacts().Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
