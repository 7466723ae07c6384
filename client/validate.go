package client

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasDigit  = regexp.MustCompile(`\d`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration passwords need letters and digits.
	_ = v.RegisterValidation("passwd", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return hasLetter.MatchString(s) && hasDigit.MatchString(s)
	})

	v.RegisterStructValidation(reviewStructValidation, ReviewHotelRequest{})
	v.RegisterStructValidation(hotelStructValidation, CreateHotelRequest{})
	v.RegisterStructValidation(hotelUpdateStructValidation, UpdateHotelRequest{})
	return v
}

// Rejecting without a reason is the one cross-field rule on reviews.
func reviewStructValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(ReviewHotelRequest)
	if req.Action == "reject" && strings.TrimSpace(req.RejectReason) == "" {
		sl.ReportError(req.RejectReason, "reject_reason", "RejectReason", "required_if_reject", "")
	}
}

// The listing price must equal the cheapest room type price.
func hotelStructValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateHotelRequest)
	if len(req.RoomTypes) == 0 {
		return // covered by the min=1 tag
	}
	min := req.RoomTypes[0].Price
	for _, r := range req.RoomTypes[1:] {
		if r.Price < min {
			min = r.Price
		}
	}
	if req.Price != min {
		sl.ReportError(req.Price, "price", "Price", "min_room_price", "")
	}
}

// On a partial edit the price rule only binds when an explicit price is
// sent alongside new room types; an omitted price is recomputed
// server-side.
func hotelUpdateStructValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(UpdateHotelRequest)
	if len(req.RoomTypes) == 0 || req.Price == nil {
		return
	}
	min := req.RoomTypes[0].Price
	for _, r := range req.RoomTypes[1:] {
		if r.Price < min {
			min = r.Price
		}
	}
	if *req.Price != min {
		sl.ReportError(req.Price, "price", "Price", "min_room_price", "")
	}
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("needs at least %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return "must be formatted as YYYY-MM-DD"
	case "passwd":
		return "must contain both letters and digits"
	case "required_if_reject":
		return "is required when rejecting"
	case "min_room_price":
		return "must equal the cheapest room type price"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func issuePath(fe validator.FieldError) string {
	// StructNamespace looks like "CreateHotelRequest.RoomTypes[0].Price";
	// drop the type prefix and report json-ish lower-case segments.
	ns := fe.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

// checkShape validates v against its declared tags, converting validator
// errors into the readable issue list the rest of the pipeline surfaces.
func checkShape(v any) *ValidationError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return &ValidationError{Issues: []Issue{{Path: "payload", Message: err.Error()}}}
	}

	issues := make([]Issue, 0, len(ferrs))
	for _, fe := range ferrs {
		issues = append(issues, Issue{Path: issuePath(fe), Message: issueMessage(fe)})
	}
	return &ValidationError{Issues: issues}
}
