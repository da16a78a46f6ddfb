package systems

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/decker502/lanedefense/pkg/systems"

// Metrics 模拟计数器
// nil *Metrics 是合法的，所有记录方法都是空操作
type Metrics struct {
	enemiesSpawned   metric.Int64Counter
	enemiesKilled    metric.Int64Counter
	breaches         metric.Int64Counter
	defendersPlaced  metric.Int64Counter
	defendersEaten   metric.Int64Counter
	projectilesFired metric.Int64Counter
	sunCredited      metric.Int64Counter
}

// NewGlobalMetrics 使用全局 MeterProvider 创建计数器
// 未安装 provider 时全局 meter 为 no-op
func NewGlobalMetrics() (*Metrics, error) {
	return NewMetrics(otel.Meter(instrumentationName))
}

// NewMetrics 使用指定 meter 创建计数器
func NewMetrics(m metric.Meter) (*Metrics, error) {
	var err error
	counter := func(name, desc string) metric.Int64Counter {
		if err != nil {
			return nil
		}
		c, cerr := m.Int64Counter(name, metric.WithDescription(desc))
		if cerr != nil {
			err = fmt.Errorf("creating %s counter: %w", name, cerr)
		}
		return c
	}

	ms := &Metrics{
		enemiesSpawned:   counter("lanedefense.enemies.spawned", "Total enemies spawned"),
		enemiesKilled:    counter("lanedefense.enemies.killed", "Total enemies killed by projectiles"),
		breaches:         counter("lanedefense.rows.breached", "Total enemies that reached the defended edge"),
		defendersPlaced:  counter("lanedefense.defenders.placed", "Total defenders placed"),
		defendersEaten:   counter("lanedefense.defenders.eaten", "Total defenders eaten by enemies"),
		projectilesFired: counter("lanedefense.projectiles.fired", "Total projectiles fired"),
		sunCredited:      counter("lanedefense.sun.credited", "Total sun credited to the ledger"),
	}
	if err != nil {
		return nil, err
	}
	return ms, nil
}

func (m *Metrics) add(c metric.Int64Counter, n int64, attrs ...attribute.KeyValue) {
	if m == nil || c == nil {
		return
	}
	c.Add(context.Background(), n, metric.WithAttributes(attrs...))
}

func (m *Metrics) enemySpawned(enemy string) {
	if m == nil {
		return
	}
	m.add(m.enemiesSpawned, 1, attribute.String("enemy", enemy))
}

func (m *Metrics) enemyKilled(enemy string) {
	if m == nil {
		return
	}
	m.add(m.enemiesKilled, 1, attribute.String("enemy", enemy))
}

func (m *Metrics) rowBreached(row int) {
	if m == nil {
		return
	}
	m.add(m.breaches, 1, attribute.Int("row", row))
}

func (m *Metrics) defenderPlaced(defender string) {
	if m == nil {
		return
	}
	m.add(m.defendersPlaced, 1, attribute.String("defender", defender))
}

func (m *Metrics) defenderEaten(defender string) {
	if m == nil {
		return
	}
	m.add(m.defendersEaten, 1, attribute.String("defender", defender))
}

func (m *Metrics) projectileFired(defender string) {
	if m == nil {
		return
	}
	m.add(m.projectilesFired, 1, attribute.String("defender", defender))
}

func (m *Metrics) sunCreditedBy(source string, amount int) {
	if m == nil {
		return
	}
	m.add(m.sunCredited, int64(amount), attribute.String("source", source))
}
