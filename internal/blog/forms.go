package blog

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Accepted pub_date layouts, as sent by datetime-local and date inputs.
var pubDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

var validate = newValidator()

var errorMessages = map[string]string{
	"required": "This field is required.",
	"email":    "Enter a valid email address.",
	"min":      "Ensure this value has at least %s characters.",
	"max":      "Ensure this value has at most %s characters.",
	"eqfield":  "The two password fields didn't match.",
	"username": "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.",
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.Split(f.Tag.Get("form"), ",")[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Errorf("register username validation: %w", err))
	}

	return v
}

// validateForm checks a form struct and reports failures keyed by form field name.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fields[e.Field()] = fieldMessage(e)
	}

	return &ValidationError{Fields: fields}
}

func fieldMessage(e validator.FieldError) string {
	msg, ok := errorMessages[e.Tag()]
	if !ok {
		return fmt.Sprintf("Invalid value (%s).", e.Tag())
	}

	if strings.Contains(msg, "%s") {
		return fmt.Sprintf(msg, e.Param())
	}

	return msg
}

type PostForm struct {
	Title       string `form:"title" validate:"required,max=256"`
	Text        string `form:"text" validate:"required"`
	PubDate     string `form:"pub_date" validate:"required"`
	CategoryID  *int   `form:"category"`
	LocationID  *int   `form:"location"`
	IsPublished bool   `form:"is_published"`
	// Image is the stored path of a freshly uploaded image, if any.
	Image *string `form:"-"`
	// ClearImage drops the current image when no new one is uploaded.
	ClearImage bool `form:"image_clear"`
}

// PostFormFrom fills a form with the current values of post.
func PostFormFrom(post Post) PostForm {
	return PostForm{
		Title:       post.Title,
		Text:        post.Text,
		PubDate:     post.PubDate.Format(pubDateLayouts[0]),
		CategoryID:  post.CategoryID,
		LocationID:  post.LocationID,
		IsPublished: post.IsPublished,
	}
}

func parsePubDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range pubDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, newValidationError("pub_date", "Enter a valid date/time.")
}

type CommentForm struct {
	Text string `form:"text" validate:"required"`
}

type ProfileForm struct {
	Username  string `form:"username" validate:"required,max=150,username"`
	FirstName string `form:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" validate:"max=150"`
	Email     string `form:"email" validate:"omitempty,email,max=254"`
}

// ProfileFormFrom fills a form with the current values of user.
func ProfileFormFrom(user User) ProfileForm {
	return ProfileForm{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

type RegisterForm struct {
	Username        string `form:"username" validate:"required,max=150,username"`
	Email           string `form:"email" validate:"omitempty,email,max=254"`
	Password        string `form:"password1" validate:"required,min=8"`
	PasswordConfirm string `form:"password2" validate:"required,eqfield=Password"`
}

type PasswordChangeForm struct {
	OldPassword        string `form:"old_password" validate:"required"`
	NewPassword        string `form:"new_password1" validate:"required,min=8"`
	NewPasswordConfirm string `form:"new_password2" validate:"required,eqfield=NewPassword"`
}
