package phy

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes PHY Prometheus metrics. All methods are nil-safe so a nil
// *Collector disables metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	PpdusBuilt      *prometheus.CounterVec
	ModesRegistered prometheus.Gauge
	Airtime         prometheus.Counter
}

// NewCollector registers PHY metrics against the provided registerer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	ppdus := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "phy_ppdus_built_total",
		Help: "Number of PPDUs built, by modulation class.",
	}, []string{"modulation"})
	if err := reg.Register(ppdus); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, fmt.Errorf("collector phy_ppdus_built_total already registered with incompatible type")
			}
			ppdus = existing
		} else {
			return nil, err
		}
	}

	modes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "phy_modes_registered",
		Help: "Number of modes in the mode registry.",
	})
	modes, err := registerGauge(reg, modes, "phy_modes_registered")
	if err != nil {
		return nil, err
	}

	airtime := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sim_airtime_seconds_total",
		Help: "Cumulative airtime of simulated transmissions.",
	})
	airtime, err = registerCounter(reg, airtime, "sim_airtime_seconds_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		PpdusBuilt:      ppdus,
		ModesRegistered: modes,
		Airtime:         airtime,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// IncPpdusBuilt counts one PPDU of the given class.
func (c *Collector) IncPpdusBuilt(class ModulationClass) {
	if c == nil || c.PpdusBuilt == nil {
		return
	}
	c.PpdusBuilt.WithLabelValues(class.String()).Inc()
}

// SetModesRegistered updates the registry size gauge.
func (c *Collector) SetModesRegistered(n int) {
	if c == nil || c.ModesRegistered == nil {
		return
	}
	c.ModesRegistered.Set(float64(n))
}

// AddAirtime accumulates simulated airtime.
func (c *Collector) AddAirtime(d time.Duration) {
	if c == nil || c.Airtime == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	c.Airtime.Add(d.Seconds())
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
