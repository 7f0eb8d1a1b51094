package app

import (
	"errors"
	"fmt"
	"net/http"

	"cinebook/api"
	"cinebook/internal/domain"
)

func (app *Application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.RegisterRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user := domain.User{
		Username: input.Username,
		Email:    input.Email,
	}

	err = user.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			logger.Warn("registration attempt for existing username or email")
			// do not reveal which field collided to avoid user enumeration attacks
			app.badRequestResponse(w, r, fmt.Errorf("invalid input data"))
		default:
			logger.Error("failed to create user", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	go func() {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic occurred during sending welcome mail", "panic", err)
			}
		}()

		data := map[string]any{
			"username": user.Username,
		}

		err := app.mailer.Send(user.Email, "user_welcome.tmpl", data)
		if err != nil {
			logger.Error("failed to send welcome email", "error", err)
		}
	}()

	resp := api.UserResponse{
		Id:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
	if userId != 0 {
		resp := api.AlreadyLoggedInResponse{
			Message: "You are already logged in",
		}

		err := app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	var input api.LoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("login validation failed")
		app.invalidCredentialsResponse(w, r)
		return
	}

	user, err := app.userRepo.GetByUsername(r.Context(), input.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("login attempt for non-existent user")
			app.invalidCredentialsResponse(w, r)
		default:
			logger.Error("failed to get user by username during login", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	matches, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !matches {
		logger.Warn("login failed due to incorrect password")
		app.invalidCredentialsResponse(w, r)
		return
	}

	// To help prevent session fixation attacks we should renew the session token after any privilege level change.
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyUserId.String(), user.ID)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
	if userId == 0 {
		app.notFoundResponse(w, r)
		return
	}

	app.sessionManager.Destroy(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
