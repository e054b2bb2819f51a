package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ripoti/core/report"
)

type reportApi struct {
	svc *report.Service
}

func registerReportAPI(g *echo.Group, svc *report.Service) {
	api := reportApi{svc: svc}

	rg := g.Group("/reports")
	rg.GET("/cohorts", api.queryCohorts)
	rg.GET("/cohorts/:id", api.retrieve)
	rg.GET("/cohorts/:id/export", api.export)
}

// Handlers

func (api *reportApi) queryCohorts(ctx echo.Context) error {
	cohorts, err := api.svc.Cohorts(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying cohorts")
	}
	return ctx.JSON(http.StatusOK, cohorts)
}

func (api *reportApi) retrieve(ctx echo.Context) error {
	learners, err := api.svc.Report(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "computing cohort report")
	}
	return ctx.JSON(http.StatusOK, learners)
}

func (api *reportApi) export(ctx echo.Context) error {
	filename, content, err := api.svc.ExportCSV(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "exporting cohort report")
	}
	if content == "" { // no report data: no file is produced
		return ctx.NoContent(http.StatusNoContent)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}
