package service

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	keysCreatedTotal   *prometheus.CounterVec
	signaturesTotal    prometheus.Counter
	verificationsTotal *prometheus.CounterVec
)

func initMetrics() {
	metricsOnce.Do(func() {
		keysCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sigil_keys_created_total",
			Help: "Keys created, by key type.",
		}, []string{"key_type"})

		signaturesTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sigil_signatures_created_total",
			Help: "Detached signatures produced.",
		})

		verificationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sigil_verifications_total",
			Help: "Signature verifications, by outcome.",
		}, []string{"result"})

		registerCollector(keysCreatedTotal)
		registerCollector(signaturesTotal)
		registerCollector(verificationsTotal)
	})
}

// registerCollector registers with the default registry, tolerating a
// collector already registered by a previous Service in the same process.
func registerCollector(c prometheus.Collector) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			panic(err)
		}
	}
}

func recordKeyCreated(keyType string) {
	if keysCreatedTotal != nil {
		keysCreatedTotal.WithLabelValues(keyType).Inc()
	}
}

func recordSignature() {
	if signaturesTotal != nil {
		signaturesTotal.Inc()
	}
}

func recordVerification(valid bool) {
	if verificationsTotal == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	verificationsTotal.WithLabelValues(result).Inc()
}
