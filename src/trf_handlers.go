package main

import (
	"ctms/src/services"
	"ctms/src/types"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondAppError maps the engine's error taxonomy onto HTTP statuses and
// renders the error envelope.
func respondAppError(ctx *gin.Context, err error) {
	var appErr *types.AppError
	if !errors.As(err, &appErr) {
		appErr = types.WrapSystemError(err)
	}
	status := http.StatusInternalServerError
	switch appErr.Code {
	case types.INVALID_DATE_FORMAT, types.INVALID_DATE_RANGE, types.INVALID_LEVEL, types.INVALID_REASON:
		status = http.StatusBadRequest
	case types.TRF_NOT_FOUND, types.NO_HOTELS:
		status = http.StatusNotFound
	case types.INVALID_STATUS, types.INVALID_SEQUENCE, types.NO_FLIGHTS, types.NO_ROOMS:
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Printf("unhandled error: %s", appErr.Error())
	}
	ctx.JSON(status, gin.H{"error": gin.H{"code": appErr.Code, "message": appErr.Message}})
}

func trfHandlers(g *gin.RouterGroup, trfs *services.TRFService) *gin.RouterGroup {
	g.
		POST("/trfs", func(ctx *gin.Context) {
			var body types.CreateTRFRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			trf, err := trfs.CreateDraft(&body)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": trf})
		}).
		POST("/trfs/:number/submit", func(ctx *gin.Context) {
			var params types.TRFURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			trf, err := trfs.Submit(params.Number)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": trf})
		}).
		POST("/trfs/:number/approve", func(ctx *gin.Context) {
			var params types.TRFURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.ApproveTRFRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			trf, err := trfs.Approve(params.Number, types.ApprovalLevel(body.Level), body.Comments)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": trf})
		}).
		POST("/trfs/:number/reject", func(ctx *gin.Context) {
			var params types.TRFURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.RejectTRFRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			trf, err := trfs.Reject(params.Number, types.ApprovalLevel(body.Level), body.Reason)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": trf})
		}).
		POST("/trfs/:number/complete", func(ctx *gin.Context) {
			var params types.TRFURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CompleteTRFRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			trf, err := trfs.MarkCompleted(params.Number, body.Comments, body.Force)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": trf})
		}).
		GET("/trfs/:number", func(ctx *gin.Context) {
			var params types.TRFURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			trf, err := trfs.Get(params.Number)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": trf})
		}).
		GET("/trfs/:number/status", func(ctx *gin.Context) {
			var params types.TRFURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			overview, err := trfs.StatusOverview(params.Number)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": overview})
		}).
		GET("/trfs", func(ctx *gin.Context) {
			var query types.TRFListQueryFilters
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			list, err := trfs.ListByEmployee(query.EmployeeID, query.Status)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": list, "count": len(list)})
		}).
		GET("/approvals/pending/:level", func(ctx *gin.Context) {
			level := types.ApprovalLevel(ctx.Params.ByName("level"))
			list, err := trfs.PendingForLevel(level)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": list, "count": len(list)})
		}).
		GET("/tracking/trfs", func(ctx *gin.Context) {
			list, err := trfs.TrackAll()
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": list, "count": len(list)})
		})
	return g
}
