package handler

import "github.com/galeria/admin-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        *domain.User `json:"user"`
}

type registerRequest struct {
	Name                 string `json:"name"                  validate:"required,max=255"`
	Email                string `json:"email"                 validate:"required,email,max=255"`
	Password             string `json:"password"              validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Role                 string `json:"role"                  validate:"omitempty,oneof=admin user"`
}

// --- Users ---

type updateUserRequest struct {
	Name                 *string `json:"name"                  validate:"omitempty,max=255"`
	Email                *string `json:"email"                 validate:"omitempty,email,max=255"`
	Role                 *string `json:"role"                  validate:"omitempty,oneof=admin user"`
	Password             *string `json:"password"              validate:"omitempty,min=6"`
	PasswordConfirmation *string `json:"password_confirmation"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type usersResponse struct {
	Users []*domain.User `json:"users"`
}

// --- Activities ---

type activityRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
	Site        string `json:"site"        validate:"max=255"`
}

type activityResponse struct {
	Activity *domain.Activity `json:"activity"`
}

type activitiesResponse struct {
	Activities []*domain.Activity `json:"activities"`
}

// --- Galleries ---

type galleryRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Date  string `json:"date"  validate:"required,datetime=2006-01-02"`
	Site  string `json:"site"  validate:"max=255"`
}

type galleryResponse struct {
	Gallery *domain.Gallery `json:"gallery"`
}

type galleriesResponse struct {
	Galleries []*domain.Gallery `json:"galleries"`
}

// --- Photos ---

type updatePhotoRequest struct {
	Title     *string `json:"title"      validate:"omitempty,max=255"`
	GalleryID *string `json:"gallery_id" validate:"omitempty"`
}

type photoResponse struct {
	Photo *domain.Photo `json:"photo"`
}

type photosResponse struct {
	Photos []*domain.Photo `json:"photos"`
}
