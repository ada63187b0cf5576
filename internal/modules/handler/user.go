package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barchasb-io/barchasb/internal/modules/model"
	"github.com/barchasb-io/barchasb/internal/modules/serializer"
	"github.com/barchasb-io/barchasb/internal/modules/service"
)

type UserHandler struct {
	users   service.UserService
	reports service.ReportService
}

func NewUserHandler(users service.UserService, reports service.ReportService) *UserHandler {
	return &UserHandler{users: users, reports: reports}
}

type SignupReq struct {
	Name     string `json:"name" binding:"required,min=1,max=64" example:"alice"`
	Password string `json:"password" binding:"required" example:"Secur3!pass"`
}

type SignupResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Signup godoc
//
//	@Summary		Sign up
//	@Description	Create a new user account
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.SignupReq	true	"Signup payload"
//	@Success		201		{object}	handler.SignupResp
//	@Router			/users/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	req := SignupReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr("", err))
		return
	}
	if err := validatePassword(req.Password); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err.Error(), nil))
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Name, req.Password, 0)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, serializer.Err(http.StatusBadRequest, "user already exists", err))
			return
		}
		c.JSON(http.StatusBadRequest, serializer.Err(http.StatusBadRequest, "signup failed", err))
		return
	}

	c.JSON(http.StatusCreated, SignupResp{ID: user.ID.String(), Name: user.Name})
}

type LoginReq struct {
	Name     string `json:"name" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"Secur3!pass"`
}

type LoginResp struct {
	AccessToken string `json:"access_token"`
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Verify credentials and issue an access token
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.LoginReq	true	"Login payload"
//	@Success		200		{object}	handler.LoginResp
//	@Router			/users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr("", err))
		return
	}

	_, token, err := h.users.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, serializer.AuthErr("invalid credentials"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, LoginResp{AccessToken: token})
}

type LogoutResp struct {
	ID          string `json:"id"`
	Result      string `json:"result"`
	AccessToken string `json:"access_token"`
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Tokens are stateless; the response carries a pre-expired token for the client to discard the live one
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	handler.LogoutResp
//	@Router			/users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	token, err := h.users.Logout(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "logout failed", err))
		return
	}

	c.JSON(http.StatusOK, LogoutResp{ID: user.ID.String(), Result: "Logged out", AccessToken: token})
}

type UserResp struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Points     int    `json:"points"`
	LabelCount int    `json:"label_count"`
}

func newUserResp(u *model.User) UserResp {
	return UserResp{ID: u.ID.String(), Name: u.Name, Points: u.Points, LabelCount: u.LabeledCount}
}

// GetUser godoc
//
//	@Summary		Get current user
//	@Description	Return the profile of the authenticated user
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	handler.UserResp
//	@Router			/users/user [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	fresh, err := h.users.GetByID(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("user not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, newUserResp(fresh))
}

type RenameReq struct {
	NewName string `json:"new_name" binding:"required,min=1,max=64" example:"alice2"`
}

// Rename godoc
//
//	@Summary		Rename current user
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.RenameReq	true	"Rename payload"
//	@Security		BearerAuth
//	@Success		200	{object}	handler.UserResp
//	@Router			/users/user [put]
func (h *UserHandler) Rename(c *gin.Context) {
	req := RenameReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr("", err))
		return
	}

	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	updated, err := h.users.Rename(c.Request.Context(), user.ID, req.NewName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("user not found", err))
		case errors.Is(err, service.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, serializer.Err(http.StatusBadRequest, "name already taken", err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		}
		return
	}

	c.JSON(http.StatusOK, newUserResp(updated))
}

type ChangePasswordReq struct {
	NewPassword string `json:"new_password" binding:"required" example:"An0ther!pass"`
}

type ChangePasswordResp struct {
	ID     string `json:"id"`
	Result string `json:"result"`
}

// ChangePassword godoc
//
//	@Summary		Change password
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.ChangePasswordReq	true	"ChangePassword payload"
//	@Security		BearerAuth
//	@Success		200	{object}	handler.ChangePasswordResp
//	@Router			/users/user/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	req := ChangePasswordReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr("", err))
		return
	}
	if err := validatePassword(req.NewPassword); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr(err.Error(), nil))
		return
	}

	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	updated, err := h.users.ChangePassword(c.Request.Context(), user.ID, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("user not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, ChangePasswordResp{ID: updated.ID.String(), Result: "Password updated"})
}

type LeaderboardEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Points       int    `json:"points"`
	LabeledCount int    `json:"labeled_count"`
}

// Leaderboard godoc
//
//	@Summary		Leaderboard
//	@Description	All users ordered by points descending
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	handler.LeaderboardEntry
//	@Router			/users/leaderboard [get]
func (h *UserHandler) Leaderboard(c *gin.Context) {
	users, err := h.users.Leaderboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(http.StatusBadRequest, "failed to fetch leaderboard", err))
		return
	}

	out := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		out = append(out, LeaderboardEntry{
			ID:           u.ID.String(),
			Name:         u.Name,
			Points:       u.Points,
			LabeledCount: u.LabeledCount,
		})
	}
	c.JSON(http.StatusOK, out)
}

// MyReports godoc
//
//	@Summary		Reports by current user
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	model.Report
//	@Router			/users/reports [get]
func (h *UserHandler) MyReports(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	reports, err := h.reports.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, reports)
}
