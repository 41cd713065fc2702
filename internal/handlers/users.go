package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-support-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserLister lists the directory.
type UserLister interface {
	List(ctx context.Context, token string) ([]models.User, error)
}

// UserGetter fetches one user.
type UserGetter interface {
	Get(ctx context.Context, token string, pid int64) (*models.User, error)
}

// UserCreator adds a user.
type UserCreator interface {
	Create(ctx context.Context, token string, user models.User) (*models.User, error)
}

// RankUpdater changes a user's rank.
type RankUpdater interface {
	UpdateRank(ctx context.Context, token string, pid int64, rank models.Rank) (*models.User, error)
}

// NameUpdater changes a user's name.
type NameUpdater interface {
	UpdateName(ctx context.Context, token string, pid int64, name string) (*models.User, error)
}

// UserRemover deletes a user.
type UserRemover interface {
	Remove(ctx context.Context, token string, pid int64) (*models.User, error)
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} models.DataResponse{data=[]models.User}
// @Failure 400 {object} models.ErrorResponse
// @Router /users [get]
// @Security XAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		users, err := svc.List(ctx, jwt.TokenFromContext(ctx))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, users)
	}
}

// NewGetUserHandler returns an HTTP handler fetching one user by pid.
// @Summary Get user
// @Tags users
// @Produce json
// @Param pid path int true "User pid"
// @Success 200 {object} models.DataResponse{data=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Router /users/{pid} [get]
// @Security XAuth
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		pid, err := pathInt(r, "pid")
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.Get(ctx, jwt.TokenFromContext(ctx), pid)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, user)
	}
}

// NewCreateUserHandler returns an HTTP handler adding a user.
// @Summary Create user
// @Description Stores a user under its pid. The rank must be one of the known ranks.
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.User true "User"
// @Success 200 {object} models.DataResponse{data=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Router /users [post]
// @Security XAuth
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var user models.User
		if err := decodeBody(r, &user); err != nil {
			writeError(w, r, err)
			return
		}

		created, err := svc.Create(ctx, jwt.TokenFromContext(ctx), user)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, created)
	}
}

// NewUpdateRankHandler returns an HTTP handler changing only the rank.
// @Summary Update rank
// @Description Body is the bare JSON string of the new rank. Returns the user as stored afterwards.
// @Tags users
// @Accept json
// @Produce json
// @Param pid path int true "User pid"
// @Param rank body string true "New rank" example(SupportTeam2)
// @Success 200 {object} models.DataResponse{data=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Router /users/rank/{pid} [patch]
// @Security XAuth
func NewUpdateRankHandler(svc RankUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		pid, err := pathInt(r, "pid")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var rank models.Rank
		if err := decodeBody(r, &rank); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.UpdateRank(ctx, jwt.TokenFromContext(ctx), pid, rank)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, user)
	}
}

// NewUpdateNameHandler returns an HTTP handler changing only the name.
// @Summary Update name
// @Description Body is the bare JSON string of the new name. Returns the user as stored afterwards.
// @Tags users
// @Accept json
// @Produce json
// @Param pid path int true "User pid"
// @Param name body string true "New name" example(John Smith)
// @Success 200 {object} models.DataResponse{data=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Router /users/name/{pid} [patch]
// @Security XAuth
func NewUpdateNameHandler(svc NameUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		pid, err := pathInt(r, "pid")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var name string
		if err := decodeBody(r, &name); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.UpdateName(ctx, jwt.TokenFromContext(ctx), pid, name)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, user)
	}
}

// NewRemoveUserHandler returns an HTTP handler deleting a user.
// @Summary Remove user
// @Tags users
// @Produce json
// @Param pid path int true "User pid"
// @Success 200 {object} models.DataResponse{data=models.User} "The removed user"
// @Failure 400 {object} models.ErrorResponse
// @Router /users/{pid} [delete]
// @Security XAuth
func NewRemoveUserHandler(svc UserRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		pid, err := pathInt(r, "pid")
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.Remove(ctx, jwt.TokenFromContext(ctx), pid)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, user)
	}
}
