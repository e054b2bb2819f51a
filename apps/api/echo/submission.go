package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ripoti/core/submission"
)

type submissionApi struct {
	svc      *submission.Service
	validate *validator.Validate
}

func registerSubmissionAPI(g *echo.Group, svc *submission.Service, validate *validator.Validate) {
	api := submissionApi{
		svc:      svc,
		validate: validate,
	}

	sg := g.Group("/submissions")
	sg.GET("", api.queue)
	sg.PUT("/:id/blocked", api.setBlocked)
	sg.PUT("/:id/comment", api.saveComment)
	sg.DELETE("/:id/comment", api.deleteComment)
}

func submissionID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return 0, errHttpBadParam
	}
	return id, nil
}

// Handlers

func (api *submissionApi) queue(ctx echo.Context) error {
	queue, err := api.svc.Queue(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching submissions queue")
	}
	return ctx.JSON(http.StatusOK, queue)
}

func (api *submissionApi) setBlocked(ctx echo.Context) error {
	id, err := submissionID(ctx)
	if err != nil {
		return err
	}

	var data BlockedRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to BlockedRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.svc.SetBlocked(ctx.Request().Context(), id, *data.Blocked); err != nil {
		return errors.Wrap(err, "setting blocked flag")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *submissionApi) saveComment(ctx echo.Context) error {
	id, err := submissionID(ctx)
	if err != nil {
		return err
	}

	var data CommentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CommentRequest")
	}

	if err := api.svc.SaveComment(ctx.Request().Context(), id, data.Comment); err != nil {
		return errors.Wrap(err, "saving comment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *submissionApi) deleteComment(ctx echo.Context) error {
	id, err := submissionID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.DeleteComment(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting comment")
	}
	return ctx.NoContent(http.StatusNoContent)
}
