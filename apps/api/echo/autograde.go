package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ripoti/core/autograde"
)

type autogradeApi struct {
	svc *autograde.Service
}

func registerAutogradeAPI(g *echo.Group, svc *autograde.Service) {
	api := autogradeApi{svc: svc}

	g.GET("/logs", api.query)
}

func (api *autogradeApi) query(ctx echo.Context) error {
	filter := autograde.QueryFilter{
		Course:     ctx.QueryParam("course"),
		Assignment: ctx.QueryParam("assignment"),
		Status:     ctx.QueryParam("status"),
	}
	logs, err := api.svc.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying autograde logs")
	}
	return ctx.JSON(http.StatusOK, logs)
}
