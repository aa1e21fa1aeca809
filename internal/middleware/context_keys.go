package middleware

import "github.com/gin-gonic/gin"

// actorIDHeader carries the identifier of the operator performing a request.
// There is no account system; the header exists so audit fields record who
// touched a record (a store terminal id, a batch job name).
const actorIDHeader = "X-Actor-ID"

// anonymousActor is recorded when no actor header is supplied.
const anonymousActor = "anonymous"

// GetActorID retrieves the acting operator's identifier from the request.
func GetActorID(c *gin.Context) string {
	actor := c.GetHeader(actorIDHeader)
	if actor == "" {
		return anonymousActor
	}
	return actor
}
