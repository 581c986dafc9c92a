// Package bind provides JSON bind and validation helpers for handlers and adapter options
package bind

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"

	perr "authorcheck/internal/platform/errors"
	"authorcheck/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// DefaultMaxBytes caps request bodies when the caller passes no limit
const DefaultMaxBytes int64 = 1 << 20

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		// short messages for min and gt
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "gt", "{0} must be greater than {1}")

		registerEndpoint(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc { return Init() }

// Validate runs struct validation on v and maps the first failure to a validation error
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return perr.Wrapf(inv, perr.ErrorCodeValidation, "validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// ParseJSONLenient decodes JSON into T and never fails: an empty, oversized, malformed or
// wrong-typed body yields the zero value. Content-Type is ignored and unknown fields are allowed.
// Fields decoded before an error are discarded so a half-read body never leaks through
func ParseJSONLenient[T any](r *http.Request, maxBytes int64) T {
	var zero T
	if r.Body == nil {
		return zero
	}
	log := logger.C(r.Context())
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Debug().Err(err).Msg("failed to close request body")
		}
	}()
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	b, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
	if err != nil || int64(len(b)) > maxBytes {
		log.Debug().Err(err).Int("bytes", len(b)).Msg("lenient bind: unreadable body")
		return zero
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return zero
	}

	var dst T
	if err := json.Unmarshal(b, &dst); err != nil {
		log.Debug().Err(err).Msg("lenient bind: body ignored")
		return zero
	}
	return dst
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return "", inv.Error()
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// endpoint accepts absolute http or https URLs with a host
func registerEndpoint(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("endpoint", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil || u.Host == "" {
			return false
		}
		return u.Scheme == "http" || u.Scheme == "https"
	})
	_ = v.RegisterTranslation("endpoint", trans,
		func(ut ut.Translator) error {
			return ut.Add("endpoint", "{0} must be an http or https URL", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("endpoint", fe.Field())
			return msg
		},
	)
}
