package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"event-calendar/internal/model"
)

// Field names as they appear on the wire and in the form.
const (
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldStartDateTime = "startDateTime"
	FieldEndDateTime   = "endDateTime"
	FieldLocation      = "location"
)

const (
	DefaultLocationMaxLength = 255

	tagNotBlank   = "notblank"
	tagDateTime   = "event_datetime"
	tagLocation   = "location_max"
	tagAfterStart = "after_start"
)

// Bounds of the date picker the form was designed around.
var (
	MinDateTime = time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC)
	MaxDateTime = time.Date(2038, 1, 18, 3, 14, 0, 0, time.UTC)
)

// Options tunes the rules whose canonical value is not settled.
type Options struct {
	// AllowEqualEnd accepts end == start. By default end must be strictly after start.
	AllowEqualEnd bool
	// LocationMaxLength caps location in runes. Zero means DefaultLocationMaxLength.
	LocationMaxLength int
}

// Validator checks event forms. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	opts     Options
}

// New builds a Validator with the given options.
func New(opts Options) *Validator {
	if opts.LocationMaxLength <= 0 {
		opts.LocationMaxLength = DefaultLocationMaxLength
	}

	v := &Validator{
		validate: validator.New(),
		opts:     opts,
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for reserved tag names.
	_ = v.validate.RegisterValidation(tagNotBlank, notBlank)
	_ = v.validate.RegisterValidation(tagDateTime, withinWindow)
	_ = v.validate.RegisterValidation(tagLocation, func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) <= v.opts.LocationMaxLength
	})
	v.validate.RegisterStructValidation(v.endAfterStart, model.EventForm{})

	return v
}

// Validate checks the whole form snapshot. It returns nil when the form is valid.
func (v *Validator) Validate(form model.EventForm) Errors {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "form", Message: err.Error()}}
	}

	out := make(Errors, 0, len(verrs))
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		out = append(out, FieldError{Field: fe.Field(), Message: v.message(fe)})
	}
	return out
}

// ValidateField re-validates a single field against the live snapshot.
// Changing the start time also re-checks the end time, which depends on it.
func (v *Validator) ValidateField(form model.EventForm, field string) Errors {
	all := v.Validate(form)
	if all == nil {
		return nil
	}

	var out Errors
	for _, fe := range all {
		if fe.Field == field || (field == FieldStartDateTime && fe.Field == FieldEndDateTime) {
			out = append(out, fe)
		}
	}
	return out
}

func (v *Validator) endAfterStart(sl validator.StructLevel) {
	form := sl.Current().Interface().(model.EventForm)
	if form.StartDateTime == "" || form.EndDateTime == "" {
		return
	}

	start, err := model.ParseDateTime(form.StartDateTime, time.UTC)
	if err != nil {
		return
	}
	end, err := model.ParseDateTime(form.EndDateTime, time.UTC)
	if err != nil {
		return
	}

	if end.After(start) || (v.opts.AllowEqualEnd && end.Equal(start)) {
		return
	}
	sl.ReportError(form.EndDateTime, FieldEndDateTime, "EndDateTime", tagAfterStart, "")
}

func (v *Validator) message(fe validator.FieldError) string {
	switch fe.Field() {
	case FieldTitle:
		switch fe.Tag() {
		case "required":
			return "Title is required"
		case tagNotBlank:
			return "Title must not be empty or only spaces"
		case "max":
			return "Title must be less than 255 characters"
		}
	case FieldDescription:
		return "Description must be less than 5000 characters"
	case FieldStartDateTime:
		return dateTimeMessage("Start", fe.Tag())
	case FieldEndDateTime:
		if fe.Tag() == tagAfterStart {
			if v.opts.AllowEqualEnd {
				return "End date and time must not be before start date and time"
			}
			return "End date and time must be after start date and time"
		}
		return dateTimeMessage("End", fe.Tag())
	case FieldLocation:
		return fmt.Sprintf("Location must be less than %d characters", v.opts.LocationMaxLength)
	}
	return "Invalid value"
}

func dateTimeMessage(which, tag string) string {
	if tag == "required" {
		return which + " date and time is required"
	}
	return fmt.Sprintf("%s date and time must be a valid date between %s and %s",
		which, MinDateTime.Format("2006-01-02"), MaxDateTime.Format("2006-01-02"))
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// withinWindow parses the value as a naive UTC timestamp and checks the picker bounds.
func withinWindow(fl validator.FieldLevel) bool {
	t, err := model.ParseDateTime(fl.Field().String(), time.UTC)
	if err != nil {
		return false
	}
	return !t.Before(MinDateTime) && !t.After(MaxDateTime)
}
