package graphql

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
	"github.com/BaseMax/travel-planner-graphql/internal/ids"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return ids.IsValid(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type signupInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createTripInput struct {
	Destination   string    `json:"destination" validate:"required"`
	FromDate      time.Time `json:"fromDate" validate:"required"`
	ToDate        time.Time `json:"toDate" validate:"required,gtfield=FromDate"`
	Collaborators []string  `json:"collaborators" validate:"omitempty,dive,objectid"`
}

type updateTripInput struct {
	ID          string     `json:"id" validate:"required,objectid"`
	Destination *string    `json:"destination"`
	FromDate    *time.Time `json:"fromDate"`
	ToDate      *time.Time `json:"toDate"`
}

type createNoteInput struct {
	TripID  string `json:"tripId" validate:"required,objectid"`
	Content string `json:"content" validate:"required"`
}

type updateNoteInput struct {
	TripID  string `json:"tripId" validate:"required,objectid"`
	NoteID  string `json:"noteId" validate:"required,objectid"`
	Content string `json:"content" validate:"required"`
}

type searchTripInput struct {
	Destination *string    `json:"destination"`
	FromDate    *time.Time `json:"fromDate"`
	ToDate      *time.Time `json:"toDate"`
}

// validateInput runs struct validation and collapses all field failures
// into one error carrying the user-facing messages.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, messageFor(fe))
	}
	return errors.New(strings.Join(msgs, ", "))
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "eqfield":
		return "Passwords do not match!"
	case "email":
		return fe.Field() + " must be an email"
	case "gtfield":
		return fe.Field() + " date isn't correct with fromDate"
	case "objectid":
		if strings.HasPrefix(fe.Field(), "collaborators") {
			return "collaborators must be an array of valid MongoDB ObjectIDs"
		}
		return fe.Field() + " must be a valid id"
	default:
		return fe.Field() + " should not be empty"
	}
}

// Argument decoding helpers. graphql-go hands resolvers input objects as
// map[string]interface{} with scalar coercion already applied.

func objectArg(args map[string]interface{}, key string) map[string]interface{} {
	m, _ := args[key].(map[string]interface{})
	return m
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringPtrField(m map[string]interface{}, key string) *string {
	if s, ok := m[key].(string); ok {
		return &s
	}
	return nil
}

func timeField(m map[string]interface{}, key string) time.Time {
	t, _ := m[key].(time.Time)
	return t
}

func timePtrField(m map[string]interface{}, key string) *time.Time {
	if t, ok := m[key].(time.Time); ok {
		return &t
	}
	return nil
}

func stringSliceField(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// idArg parses a bare id argument, rejecting anything that is not a
// well-formed object id before the store is touched.
func idArg(args map[string]interface{}, key string) (string, error) {
	s, _ := args[key].(string)
	if !ids.IsValid(s) {
		return "", domain.ErrInvalidID
	}
	return s, nil
}
