package api

import (
	"time"

	"buget/middleware"
	"buget/service"

	"github.com/gin-gonic/gin"
)

const dataFormat = "2006-01-02"

// parseData parses a YYYY-MM-DD date in local time.
func parseData(s string) (time.Time, error) {
	return time.ParseInLocation(dataFormat, s, time.Local)
}

// connectedIDs resolves the pooled owner set for the request user and
// writes the error response itself on failure.
func connectedIDs(c *gin.Context) ([]uint, bool) {
	ids, err := service.ConnectedUserIDs(middleware.GetCurrentUserID(c))
	if err != nil {
		InternalError(c, "Interogarea conexiunilor a esuat: "+err.Error())
		return nil, false
	}
	return ids, true
}
