package metrics

import (
	"net/http/pprof"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GetHandler serves the Prometheus scrape endpoint and the pprof profiles the
// console actually gets inspected with. Runtime gauges are refreshed on every
// scrape rather than on a timer, so an idle process costs nothing.
func GetHandler(router *gin.RouterGroup, m Manager) {
	router.GET("/metrics", collectRuntimeGauges(m), gin.WrapH(promhttp.Handler()))

	pprofGroup := router.Group("/debug/pprof")
	{
		pprofGroup.GET("/", gin.WrapF(pprof.Index))
		pprofGroup.GET("/profile", gin.WrapF(pprof.Profile))
		pprofGroup.GET("/allocs", gin.WrapH(pprof.Handler("allocs")))
		pprofGroup.GET("/block", gin.WrapH(pprof.Handler("block")))
		pprofGroup.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
		pprofGroup.GET("/heap", gin.WrapH(pprof.Handler("heap")))
		pprofGroup.GET("/mutex", gin.WrapH(pprof.Handler("mutex")))
	}
}

func collectRuntimeGauges(m Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)

		m.SetGauge("app_go_routines", float64(runtime.NumGoroutine()))
		m.SetGauge("app_sys_memory_alloc", float64(stats.Alloc))
		m.SetGauge("app_sys_total_alloc", float64(stats.TotalAlloc))
		m.SetGauge("app_go_numGC", float64(stats.NumGC))
		m.SetGauge("app_go_sys", float64(stats.Sys))

		ctx.Next()
	}
}
