package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/docflow/docflow-backend/dto"
	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/usecases"
)

func handleRegister(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.RegisterBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewAuthUsecase()
		_, err := usecase.Register(ctx, models.CreateUser{
			Name:     body.Name,
			Email:    body.Email,
			Password: body.Password,
		})
		if presentError(ctx, c, err) {
			return
		}

		presentSuccess(c, http.StatusCreated, nil, "User Registeration Successfull")
	}
}

func handleLogin(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.LoginBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewAuthUsecase()
		token, user, err := usecase.Login(ctx, body.Email, body.Password)
		if presentError(ctx, c, err) {
			return
		}

		presentSuccess(c, http.StatusOK, dto.LoginResponse{
			Token: token,
			User:  dto.AdaptUserDto(user),
		}, "login successfully")
	}
}
