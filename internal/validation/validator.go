package validation

import (
	"fmt"
	"regexp"

	"github.com/marketing-site-api/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// FieldError reports one invalid input field
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(errs []FieldError, field, value string) []FieldError {
	if value == "" {
		errs = append(errs, FieldError{Field: field, Message: field + " is required"})
	}
	return errs
}

// ValidateCreateUser validates a createUser payload
func ValidateCreateUser(in *models.CreateUserInput) []FieldError {
	var errs []FieldError

	if in.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(in.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "invalid email format", Value: in.Email})
	}

	if in.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	} else if len(in.Password) < models.MinPasswordLength {
		errs = append(errs, FieldError{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", models.MinPasswordLength),
		})
	}

	errs = required(errs, "first_name", in.FirstName)
	errs = required(errs, "last_name", in.LastName)

	if in.Role != "" && !models.ValidRoles[in.Role] {
		errs = append(errs, FieldError{Field: "role", Message: "invalid role, must be one of: admin, client", Value: in.Role})
	}

	return errs
}

// ValidateCreateProduct validates a createProduct payload
func ValidateCreateProduct(in *models.CreateProductInput) []FieldError {
	var errs []FieldError

	errs = required(errs, "name", in.Name)
	errs = required(errs, "description", in.Description)
	errs = required(errs, "short_description", in.ShortDescription)
	errs = required(errs, "category", in.Category)

	if in.Price <= 0 {
		errs = append(errs, FieldError{Field: "price", Message: "price must be positive", Value: in.Price})
	}

	return errs
}

// ValidateCreateBlogPost validates a createBlogPost payload
func ValidateCreateBlogPost(in *models.CreateBlogPostInput) []FieldError {
	var errs []FieldError

	errs = required(errs, "title", in.Title)
	errs = validateSlug(errs, in.Slug)
	errs = required(errs, "content", in.Content)
	errs = required(errs, "excerpt", in.Excerpt)

	if in.AuthorID <= 0 {
		errs = append(errs, FieldError{Field: "author_id", Message: "author_id is required"})
	}

	return errs
}

// ValidateCreateCaseStudy validates a createCaseStudy payload
func ValidateCreateCaseStudy(in *models.CreateCaseStudyInput) []FieldError {
	var errs []FieldError

	errs = required(errs, "title", in.Title)
	errs = validateSlug(errs, in.Slug)
	errs = required(errs, "client_name", in.ClientName)
	errs = required(errs, "industry", in.Industry)
	errs = required(errs, "problem", in.Problem)
	errs = required(errs, "solution", in.Solution)
	errs = required(errs, "results", in.Results)

	if in.ProductID <= 0 {
		errs = append(errs, FieldError{Field: "product_id", Message: "product_id is required"})
	}

	return errs
}

// ValidateCreateTestimonial validates a createTestimonial payload
func ValidateCreateTestimonial(in *models.CreateTestimonialInput) []FieldError {
	var errs []FieldError

	errs = required(errs, "content", in.Content)
	errs = required(errs, "author_name", in.AuthorName)
	errs = required(errs, "author_title", in.AuthorTitle)
	errs = required(errs, "author_company", in.AuthorCompany)

	if in.Rating < models.MinRating || in.Rating > models.MaxRating {
		errs = append(errs, FieldError{
			Field:   "rating",
			Message: fmt.Sprintf("rating must be between %d and %d", models.MinRating, models.MaxRating),
			Value:   in.Rating,
		})
	}

	if in.ProductID <= 0 {
		errs = append(errs, FieldError{Field: "product_id", Message: "product_id is required"})
	}

	return errs
}

// ValidateCreateAnalyticsEvent validates a createAnalyticsEvent payload
func ValidateCreateAnalyticsEvent(in *models.CreateAnalyticsEventInput) []FieldError {
	var errs []FieldError

	if in.EventType == "" {
		errs = append(errs, FieldError{Field: "event_type", Message: "event_type is required"})
	} else if !models.ValidEventTypes[in.EventType] {
		errs = append(errs, FieldError{
			Field:   "event_type",
			Message: "invalid event_type, must be one of: page_view, product_view, contact_form, download, signup",
			Value:   string(in.EventType),
		})
	}

	if in.EntityType != nil && !models.ValidEntityTypes[*in.EntityType] {
		errs = append(errs, FieldError{
			Field:   "entity_type",
			Message: "invalid entity_type, must be one of: product, blog_post, case_study, landing_page",
			Value:   string(*in.EntityType),
		})
	}

	errs = required(errs, "session_id", in.SessionID)
	errs = required(errs, "ip_address", in.IPAddress)
	errs = required(errs, "user_agent", in.UserAgent)

	return errs
}

// ValidateCreateContactSubmission validates a createContactSubmission payload
func ValidateCreateContactSubmission(in *models.CreateContactSubmissionInput) []FieldError {
	var errs []FieldError

	errs = required(errs, "name", in.Name)

	if in.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(in.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "invalid email format", Value: in.Email})
	}

	errs = required(errs, "message", in.Message)

	if in.ProductID != nil && *in.ProductID <= 0 {
		errs = append(errs, FieldError{Field: "product_id", Message: "product_id must be positive", Value: *in.ProductID})
	}

	return errs
}

// ValidateCreateDocumentation validates a createDocumentation payload
func ValidateCreateDocumentation(in *models.CreateDocumentationInput) []FieldError {
	var errs []FieldError

	errs = required(errs, "title", in.Title)
	errs = validateSlug(errs, in.Slug)
	errs = required(errs, "content", in.Content)
	errs = required(errs, "category", in.Category)

	if in.ProductID <= 0 {
		errs = append(errs, FieldError{Field: "product_id", Message: "product_id is required"})
	}

	return errs
}

func validateSlug(errs []FieldError, slug string) []FieldError {
	if slug == "" {
		return append(errs, FieldError{Field: "slug", Message: "slug is required"})
	}
	if !slugRegex.MatchString(slug) {
		return append(errs, FieldError{
			Field:   "slug",
			Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)",
			Value:   slug,
		})
	}
	return errs
}
