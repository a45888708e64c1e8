package middleware

import "github.com/gin-gonic/gin"

// RequestObserver records request counts and latency.
type RequestObserver interface {
	RequestStarted() func(method, route string, status int)
}

// Metrics reports every request labelled with its route template.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := observer.RequestStarted()
		c.Next()
		done(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
