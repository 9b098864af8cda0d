package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/tournament-standings/internal/model"
)

// newValidator reports fields by their JSON names so errors line up with the input document.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateTournament checks the structural guarantees the engine assumes but never checks itself.
func validateTournament(v *validator.Validate, t *model.Tournament) error {
	err := v.Struct(t)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ferrs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		ferrs = append(ferrs, FieldError{Field: fieldPath(fe), Message: describe(fe)})
	}
	return NewInvalidInputError(ferrs)
}

// fieldPath drops the root struct name: "Tournament.matches[0].score1" -> "matches[0].score1".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "nefield":
		return "players must differ"
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(fe.Param(), " ", "|"))
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
