package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
)

type requestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics учитывает запрос по шаблону маршрута, а не по фактическому пути,
// чтобы идентификаторы не размножали метки.
func Metrics(m requestObserver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
