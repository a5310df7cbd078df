package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/anshulj07/sciquel-test/internal/domain"
)

const (
	maxEmailLength  = 254
	maxLocalLength  = 64
	maxDomainLength = 254
	maxLabelLength  = 63
)

// The top-level domain must be at least two letters or a punycode label.
var tldRegex = regexp.MustCompile(`(?i)\.(\p{L}{2,}|xn[a-z0-9-]{2,})$`)

// Validator provides validation methods for comment submissions.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// submission holds the raw decoded values of the three comment keys.
type submission struct {
	Name    any `json:"name"`
	Email   any `json:"email"`
	Comment any `json:"comment"`
}

// ValidateSubmission validates the fields of a decoded JSON object and
// returns the Comment they describe. Keys are matched exactly.
//
// A field that is absent, null, false, zero or "" is missing. All required
// fields are checked before the email, so a submission with a missing name
// and a malformed email reports the missing field. Values that are present
// but not strings are an invalid format.
func (v *Validator) ValidateSubmission(fields map[string]any) (domain.Comment, error) {
	s := submission{
		Name:    fields["name"],
		Email:   fields["email"],
		Comment: fields["comment"],
	}

	err := validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.By(present("name_required"))),
		validation.Field(&s.Email, validation.By(present("email_required"))),
		validation.Field(&s.Comment, validation.By(present("comment_required"))),
	)
	if err != nil {
		return domain.Comment{}, &domain.SubmitError{Kind: domain.KindMissingFields, Cause: err}
	}

	email, ok := s.Email.(string)
	if !ok {
		return domain.Comment{}, domain.InvalidFormat(fmt.Errorf("email is %T, not a string", s.Email))
	}
	if err := v.ValidateEmail(email); err != nil {
		return domain.Comment{}, err
	}

	name, ok := s.Name.(string)
	if !ok {
		return domain.Comment{}, domain.InvalidFormat(fmt.Errorf("name is %T, not a string", s.Name))
	}
	comment, ok := s.Comment.(string)
	if !ok {
		return domain.Comment{}, domain.InvalidFormat(fmt.Errorf("comment is %T, not a string", s.Comment))
	}

	return domain.Comment{Name: name, Email: email, Comment: comment}, nil
}

// ValidateEmail checks the address syntax without any DNS lookup.
// is.Email would also resolve the domain, so only is.EmailFormat is used,
// tightened with length limits and a required top-level domain.
func (v *Validator) ValidateEmail(email string) error {
	err := validation.Validate(email,
		validation.Required.Error("email_required"),
		validation.Length(0, maxEmailLength).Error("email_too_long"),
		is.EmailFormat.Error("invalid_email_format"),
		validation.By(emailPartLengths),
		validation.Match(tldRegex).Error("invalid_email_tld"),
	)
	if err != nil {
		return &domain.SubmitError{
			Kind:  domain.KindInvalidEmail,
			Cause: validation.Errors{"email": err},
		}
	}
	return nil
}

// FailedFields lists the fields rejected by validation, sorted by name.
// It returns nil for errors that did not come from field validation.
func FailedFields(err error) []string {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return nil
	}

	fields := make([]string, 0, len(ve))
	for field, fieldErr := range ve {
		if fieldErr != nil {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)
	return fields
}

func present(message string) validation.RuleFunc {
	return func(value any) error {
		if !truthy(value) {
			return validation.ErrRequired.SetMessage(message)
		}
		return nil
	}
}

// truthy reports whether a decoded JSON value reads as true in a boolean
// context. Empty arrays and objects count as present.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, _ := v.Float64()
		return f != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

func emailPartLengths(value any) error {
	email, _ := value.(string)
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return nil
	}

	local, host := email[:at], email[at+1:]
	if len(local) > maxLocalLength {
		return validation.NewError("validation_email_local_length", "local_part_too_long")
	}
	if len(host) > maxDomainLength {
		return validation.NewError("validation_email_domain_length", "domain_too_long")
	}
	for _, label := range strings.Split(host, ".") {
		if len(label) > maxLabelLength {
			return validation.NewError("validation_email_label_length", "domain_label_too_long")
		}
	}
	return nil
}
