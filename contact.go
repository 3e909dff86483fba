package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ContactCollection is the name of the table contact messages land in.
const ContactCollection = "contacts"

const (
	// SentSettleDelay is how long the disabled sending state stays up after a
	// successful write before the sent state loads.
	SentSettleDelay = 500 * time.Millisecond
	// SentResetDelay is how long the sent state stays up before the button goes idle.
	SentResetDelay = 3 * time.Second
)

// ContactForm is what visitors submit. Only presence is checked, the same
// as the browser's required attributes.
type ContactForm struct {
	Name    string `form:"name" json:"name" validate:"required"`
	Email   string `form:"email" json:"email" validate:"required"`
	Subject string `form:"subject" json:"subject" validate:"required"`
	Message string `form:"message" json:"message" validate:"required"`
}

// ContactRecord is the single document written per submission.
type ContactRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ButtonState string

const (
	ButtonIdle    ButtonState = "idle"
	ButtonSending ButtonState = "sending"
	ButtonSent    ButtonState = "sent"
)

func (b ButtonState) Label() string {
	switch b {
	case ButtonSending:
		return "Message Sending"
	case ButtonSent:
		return "Message Sent"
	}
	return "Send Message"
}

// Disabled reports whether the submit control accepts clicks.
func (b ButtonState) Disabled() bool {
	return b != ButtonIdle
}

// next is the state the form moves to on its own, and after how long.
// Idle has no follow-up.
func (b ButtonState) next() (ButtonState, time.Duration, bool) {
	switch b {
	case ButtonSending:
		return ButtonSent, SentSettleDelay, true
	case ButtonSent:
		return ButtonIdle, SentResetDelay, true
	}
	return "", 0, false
}

// parseButtonState only lets callers ask for the states that follow a write
// through the chain; anything else is idle.
func parseButtonState(raw string) ButtonState {
	if ButtonState(raw) == ButtonSent {
		return ButtonSent
	}
	return ButtonIdle
}

var ErrInvalidContact = errors.New("invalid contact form")

// ContactService turns submitted forms into stored records.
type ContactService struct {
	store    ContactStore
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

func NewContactService(store ContactStore) *ContactService {
	return &ContactService{
		store:    store,
		validate: validator.New(),
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// Submit validates the form and writes exactly one record. Nothing is retried.
func (cs *ContactService) Submit(ctx context.Context, form ContactForm) (*ContactRecord, error) {
	if err := cs.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}
	rec := &ContactRecord{
		ID:        cs.newID(),
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
		CreatedAt: cs.now().UTC(),
	}
	if err := cs.store.CreateContact(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// formTransition is a delayed reload of the form into State.
type formTransition struct {
	State ButtonState
	Delay time.Duration
}

// contactFormView drives contact-form.html. Field values are always empty:
// the form resets after every attempt.
type contactFormView struct {
	State ButtonState
	Next  *formTransition
}

func newContactFormView(state ButtonState) contactFormView {
	v := contactFormView{State: state}
	if next, delay, ok := state.next(); ok {
		v.Next = &formTransition{State: next, Delay: delay}
	}
	return v
}

// HTMX contact form endpoint - idle by default, ?state=sent while the
// sent label is up
func (s *server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", newContactFormView(parseButtonState(c.Query("state"))))
}

// Handle contact form submission with HTMX
func (s *server) handleContactSubmit(c *gin.Context) {
	// Every outcome answers 200 so htmx swaps in the empty form.
	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("Contact form bind failed: %v", err)
		c.HTML(http.StatusOK, "contact-form.html", newContactFormView(ButtonIdle))
		return
	}

	rec, err := s.contacts.Submit(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, ErrInvalidContact) {
			log.Printf("Contact form rejected: %v", err)
		} else {
			// visitors only see the button go back to idle
			log.Printf("Error sending message: %v", err)
		}
		c.HTML(http.StatusOK, "contact-form.html", newContactFormView(ButtonIdle))
		return
	}

	log.Printf("Message sent successfully with ID: %s", rec.ID)
	c.HTML(http.StatusOK, "contact-form.html", newContactFormView(ButtonSending))
}

// JSON contact endpoint for non-HTMX clients
func (s *server) handleContactAPI(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := s.contacts.Submit(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, ErrInvalidContact) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, subject and message are required"})
			return
		}
		log.Printf("Error sending message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": rec.ID, "createdAt": rec.CreatedAt})
}
