package storemetrics

import (
	"time"

	"github.com/astroya/consultation-service/pkg/metrics"
)

// DefaultInterval период опроса хранилищ по умолчанию
const DefaultInterval = 15 * time.Second

// RuleStore источник статистики таблицы правил доступности
type RuleStore interface {
	Count() int
}

// LedgerStore источник статистики журнала бронирований
type LedgerStore interface {
	Stats() (dates int, slots int)
}

// Collector периодически снимает статистику in-memory хранилищ в метрики
type Collector struct {
	rules    RuleStore
	ledger   LedgerStore
	metrics  *metrics.Metrics
	interval time.Duration
}

// New создает коллектор с заданным интервалом опроса
func New(rules RuleStore, ledger LedgerStore, m *metrics.Metrics, interval time.Duration) *Collector {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Collector{
		rules:    rules,
		ledger:   ledger,
		metrics:  m,
		interval: interval,
	}
}

// StartWithDefault создает коллектор с DefaultInterval и сразу запускает его
func StartWithDefault(rules RuleStore, ledger LedgerStore, m *metrics.Metrics, stopCh <-chan struct{}) *Collector {
	c := New(rules, ledger, m, DefaultInterval)
	c.Start(stopCh)
	return c
}

// Start запускает фоновый сбор. Останавливается закрытием stopCh
func (c *Collector) Start(stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		// Первый снимок сразу, не дожидаясь тикера
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-stopCh:
				return
			}
		}
	}()
}

func (c *Collector) collect() {
	c.metrics.SetAvailabilityRules(c.rules.Count())

	dates, slots := c.ledger.Stats()
	c.metrics.SetBookedSlots(dates, slots)
}
