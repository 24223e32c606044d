package confidence

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/uyouii/confidence-interval/common"
	"github.com/uyouii/confidence-interval/model"
)

var validate = newValidator()

// Options replaces the optional arguments of the estimate.
// The zero value is invalid, start from DefaultOptions.
type Options struct {
	// probability that the population mean falls inside the interval
	ConfidenceLevel float64 `json:"confidence_level" yaml:"confidence_level" validate:"gt=0,lt=1"`
	// use StudentsT for small samples, Normal for big samples
	Distribution model.Distribution `json:"distribution" yaml:"distribution" validate:"distribution"`
}

func DefaultOptions() Options {
	return Options{
		ConfidenceLevel: DefaultConfidenceLevel,
		Distribution:    DefaultDistribution,
	}
}

func (o Options) WithConfidenceLevel(level float64) Options {
	o.ConfidenceLevel = level
	return o
}

func (o Options) WithDistribution(distribution model.Distribution) Options {
	o.Distribution = distribution
	return o
}

func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	fieldErr := fieldErrors[0]
	switch fieldErr.Field() {
	case "confidence_level":
		return common.NewInvalidArgument("confidence_level", o.ConfidenceLevel,
			"must be in the open interval (0, 1)")
	case "distribution":
		return common.NewInvalidArgument("distribution", int(o.Distribution),
			"unknown distribution", model.AllDistributionNames()...)
	}
	return common.NewInvalidArgument(fieldErr.Field(), fieldErr.Value(), "failed on "+fieldErr.Tag())
}

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("distribution", func(fl validator.FieldLevel) bool {
		distribution, ok := fl.Field().Interface().(model.Distribution)
		return ok && distribution.Valid()
	})
	if err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}
