package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор прометеус-метрик сервиса
type Metrics struct {
	service string

	// HTTP
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// База данных
	dbQueryDuration   *prometheus.HistogramVec
	dbConnectionsOpen *prometheus.GaugeVec
	dbConnectionsIdle *prometheus.GaugeVec

	// Диалоги и бронирования
	turnsTotal         *prometheus.CounterVec
	bookingsTotal      *prometheus.CounterVec
	cancellationsTotal *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в дефолтном реестре
func New(service string) *Metrics {
	return &Metrics{
		service: service,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		dbConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		}, []string{"service"}),

		dbConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		}, []string{"service"}),

		turnsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "conversation_turns_total",
			Help: "Total number of processed conversation turns by intent",
		}, []string{"service", "intent"}),

		bookingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "appointments_booked_total",
			Help: "Total number of successfully booked appointments",
		}, []string{"service"}),

		cancellationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "appointments_cancelled_total",
			Help: "Total number of successfully cancelled appointments",
		}, []string{"service"}),

		notificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of outbound notifications by kind and outcome",
		}, []string{"service", "kind", "outcome"}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(m.service, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, path).Observe(seconds)
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(seconds)
}

// SetDBConnections обновляет gauge-метрики пула соединений
func (m *Metrics) SetDBConnections(open, idle int) {
	m.dbConnectionsOpen.WithLabelValues(m.service).Set(float64(open))
	m.dbConnectionsIdle.WithLabelValues(m.service).Set(float64(idle))
}

// IncTurn фиксирует обработанную реплику диалога
func (m *Metrics) IncTurn(intent string) {
	m.turnsTotal.WithLabelValues(m.service, intent).Inc()
}

// IncBooking фиксирует успешное бронирование
func (m *Metrics) IncBooking() {
	m.bookingsTotal.WithLabelValues(m.service).Inc()
}

// IncCancellation фиксирует успешную отмену
func (m *Metrics) IncCancellation() {
	m.cancellationsTotal.WithLabelValues(m.service).Inc()
}

// IncNotification фиксирует результат отправки уведомления
func (m *Metrics) IncNotification(kind, outcome string) {
	m.notificationsTotal.WithLabelValues(m.service, kind, outcome).Inc()
}
