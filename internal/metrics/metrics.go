// Package metrics expone métricas Prometheus de la API de la liga.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registra las métricas de autenticación, aprovisionamiento y HTTP.
type Collector struct {
	loginOK          prometheus.Counter
	loginFail        prometheus.Counter
	signupDenegado   prometheus.Counter
	usuariosCreados  prometheus.Counter
	fallosParciales  *prometheus.CounterVec
	httpStatus       *prometheus.CounterVec
	latenciaPeticion prometheus.Histogram
}

// NewCollector crea el Collector y registra sus métricas en el registro dado.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loginOK: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_login_success_total",
			Help: "Inicios de sesión exitosos",
		}),
		loginFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_login_fail_total",
			Help: "Inicios de sesión rechazados",
		}),
		signupDenegado: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_signup_denied_total",
			Help: "Registros denegados por falta de privilegio",
		}),
		usuariosCreados: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_usuarios_creados_total",
			Help: "Usuarios aprovisionados completamente",
		}),
		fallosParciales: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "liga_aprovisionamiento_fallo_parcial_total",
			Help: "Aprovisionamientos abortados a mitad, por paso",
		}, []string{"paso"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "liga_http_status_total",
			Help: "Respuestas HTTP por código de estado",
		}, []string{"status_code"}),
		latenciaPeticion: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "liga_http_latency_seconds",
			Help:    "Latencia de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.loginOK,
		c.loginFail,
		c.signupDenegado,
		c.usuariosCreados,
		c.fallosParciales,
		c.httpStatus,
		c.latenciaPeticion,
	)

	return c
}

// RecordLogin registra un intento de login según su resultado.
func (c *Collector) RecordLogin(ok bool) {
	if ok {
		c.loginOK.Inc()
		return
	}
	c.loginFail.Inc()
}

// RecordSignupDenegado registra un registro denegado por privilegio.
func (c *Collector) RecordSignupDenegado() {
	c.signupDenegado.Inc()
}

// RecordUsuarioCreado registra un aprovisionamiento completo.
func (c *Collector) RecordUsuarioCreado() {
	c.usuariosCreados.Inc()
}

// RecordFalloParcial registra un aprovisionamiento abortado en el paso dado
// ("cuenta", "rol", "ficha", "asignacion").
func (c *Collector) RecordFalloParcial(paso string) {
	c.fallosParciales.WithLabelValues(paso).Inc()
}

// RecordHTTP registra una respuesta HTTP y su latencia.
func (c *Collector) RecordHTTP(statusCode int, duration time.Duration) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	c.latenciaPeticion.Observe(duration.Seconds())
}

// Handler devuelve el handler HTTP para el scrape de Prometheus.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
