package venues

import (
	"errors"
	"fmt"
	"sync"

	"venuebuilder/internal/seating"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type bindingTag struct {
	name string
	fn   validator.Func
}

var builderTags = []bindingTag{
	{"stand_shape", func(fl validator.FieldLevel) bool { return seating.IsValidShape(fl.Field().String()) }},
	{"node_status", func(fl validator.FieldLevel) bool { return seating.IsValidStatus(fl.Field().String()) }},
	{"seat_status", func(fl validator.FieldLevel) bool { return seating.IsValidSeatStatus(fl.Field().String()) }},
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the builder's binding tags to gin's validator.
// Safe to call more than once; every call reports the first outcome.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		registerErr = registerTags(v, builderTags)
	})
	return registerErr
}

func registerTags(v *validator.Validate, tags []bindingTag) error {
	var errs []error
	for _, tag := range tags {
		if err := v.RegisterValidation(tag.name, tag.fn); err != nil {
			errs = append(errs, fmt.Errorf("tag %q: %w", tag.name, err))
		}
	}
	return errors.Join(errs...)
}
