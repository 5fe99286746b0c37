package main

import (
	"ctms/src/fare"
	"ctms/src/services"
	"ctms/src/types"
	"ctms/src/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// deskHandlers are the travel desk's booking endpoints: inventory search,
// confirmation and the availability calendars.
func deskHandlers(g *gin.RouterGroup, flights *services.FlightService, hotels *services.HotelService) *gin.RouterGroup {
	g.
		GET("/flights/search", func(ctx *gin.Context) {
			var query types.FlightSearchQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			date, err := utils.ParseDate(query.Date)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			options, err := flights.Search(query.Origin, query.Destination, date, fare.NormalizeCabin(query.CabinClass), query.MaxResults)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": options, "count": len(options)})
		}).
		POST("/flights/confirm", func(ctx *gin.Context) {
			var body types.ConfirmFlightRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := flights.Confirm(&body)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/flights/calendar", func(ctx *gin.Context) {
			var query types.FlightCalendarQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			start, err := utils.ParseDate(query.StartDate)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			calendar, err := flights.Calendar(query.Origin, query.Destination, start, query.Days, fare.NormalizeCabin(query.CabinClass))
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": calendar})
		}).
		GET("/hotels/search", func(ctx *gin.Context) {
			var query types.HotelSearchQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			checkIn, err := utils.ParseDate(query.CheckIn)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			checkOut, err := utils.ParseDate(query.CheckOut)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			options, err := hotels.Search(query.City, checkIn, checkOut, query.MinRating, query.MaxResults)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": options, "count": len(options)})
		}).
		POST("/hotels/confirm", func(ctx *gin.Context) {
			var body types.ConfirmHotelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := hotels.Confirm(&body)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/hotels/calendar", func(ctx *gin.Context) {
			var query types.HotelCalendarQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			start, err := utils.ParseDate(query.StartDate)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			calendar, err := hotels.Calendar(query.City, start, query.Days)
			if err != nil {
				respondAppError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": calendar})
		})
	return g
}
