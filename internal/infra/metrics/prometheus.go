package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// APIMetrics gerencia métricas da API e do domínio
type APIMetrics struct {
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	activeRequests  *prometheus.GaugeVec
	errorsTotal     *prometheus.CounterVec

	denunciasRegistradas *prometheus.CounterVec
	sugestoesRegistradas prometheus.Counter
	protocoloColisoes    prometheus.Counter
}

// NewAPIMetrics cria e registra métricas do prometheus
func NewAPIMetrics() *APIMetrics {
	return &APIMetrics{
		requestCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "denuncias_requests_total",
				Help: "Total number of HTTP requests by path, method, and status code",
			},
			[]string{"path", "method", "status"},
		),

		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "denuncias_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		activeRequests: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "denuncias_active_requests",
				Help: "Number of in-flight requests being processed",
			},
			[]string{"path", "method"},
		),

		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "denuncias_errors_total",
				Help: "Total number of errors by type",
			},
			[]string{"path", "method", "error_type"},
		),

		denunciasRegistradas: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "denuncias_registradas_total",
				Help: "Total de denúncias registradas, por urgência",
			},
			[]string{"urgencia"},
		),

		sugestoesRegistradas: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sugestoes_registradas_total",
				Help: "Total de sugestões registradas",
			},
		),

		protocoloColisoes: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "denuncias_protocolo_colisoes_total",
				Help: "Total de colisões de protocolo detectadas no insert",
			},
		),
	}
}

// RequestStarted registra o início de uma requisição
func (m *APIMetrics) RequestStarted(path, method string) {
	m.activeRequests.WithLabelValues(path, method).Inc()
}

// RequestCompleted registra a conclusão de uma requisição
func (m *APIMetrics) RequestCompleted(path, method, status string, duration time.Duration) {
	m.requestCounter.WithLabelValues(path, method, status).Inc()
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
	m.activeRequests.WithLabelValues(path, method).Dec()
}

// RequestError registra um erro de requisição
func (m *APIMetrics) RequestError(path, method, errorType string) {
	m.errorsTotal.WithLabelValues(path, method, errorType).Inc()
}

// DenunciaRegistrada registra a criação de uma denúncia
func (m *APIMetrics) DenunciaRegistrada(urgencia string) {
	m.denunciasRegistradas.WithLabelValues(urgencia).Inc()
}

// SugestaoRegistrada registra a criação de uma sugestão
func (m *APIMetrics) SugestaoRegistrada() {
	m.sugestoesRegistradas.Inc()
}

// ProtocoloColisao registra uma colisão de protocolo resolvida com retry
func (m *APIMetrics) ProtocoloColisao() {
	m.protocoloColisoes.Inc()
}
