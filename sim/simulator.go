package sim

import (
	"fmt"
	"math"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wifi-sim/wifi-sim/phy"
	"github.com/wifi-sim/wifi-sim/phy/erp"
	"github.com/wifi-sim/wifi-sim/sim/trace"
)

var (
	apAddress  = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	staAddress = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02}
)

// Simulator puts a stream of ERP-OFDM PPDUs on the air back to back and
// accounts their airtime. It is a single-goroutine discrete-event loop.
type Simulator struct {
	Clock   time.Duration
	Horizon time.Duration
	Metrics *Metrics
	Trace   *trace.SimulationTrace

	cfg         WorkloadConfig
	env         *phy.Environment
	device      *phy.Device
	modes       []*phy.Mode
	rng         *PartitionedRNG
	events      *EventHeap
	nextEventID int64
	started     int
}

// NewSimulator validates cfg and binds a new device to env, which must
// already have ERP-OFDM registered.
func NewSimulator(cfg WorkloadConfig, env *phy.Environment) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	band, _ := phy.ParseBand(cfg.Band)
	device := phy.NewDevice(env, band)
	if _, err := device.Entity(phy.ModClassErpOfdm); err != nil {
		return nil, fmt.Errorf("new simulator: %w", err)
	}

	modes := make([]*phy.Mode, 0, len(cfg.RatesMbps))
	for _, r := range cfg.RatesMbps {
		mode, err := erp.ModeForRate(env.Modes, rateBps(r))
		if err != nil {
			return nil, fmt.Errorf("new simulator: %w", err)
		}
		modes = append(modes, mode)
	}

	horizon := time.Duration(math.MaxInt64)
	if cfg.HorizonUs > 0 {
		horizon = time.Duration(cfg.HorizonUs) * time.Microsecond
	}
	level := trace.TraceLevel(cfg.Trace)
	if level == "" {
		level = trace.TraceLevelNone
	}

	return &Simulator{
		Horizon: horizon,
		Metrics: &Metrics{},
		Trace:   trace.NewSimulationTrace(trace.TraceConfig{Level: level, RunID: env.RunID.String()}),
		cfg:     cfg,
		env:     env,
		device:  device,
		modes:   modes,
		rng:     NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		events:  NewEventHeap(),
	}, nil
}

// Device returns the PHY device the simulator transmits from.
func (sim *Simulator) Device() *phy.Device {
	return sim.device
}

// Schedule adds ev to the event queue.
func (sim *Simulator) Schedule(ev Event) {
	sim.events.Schedule(ev)
}

func (sim *Simulator) newEventID() int64 {
	id := sim.nextEventID
	sim.nextEventID++
	return id
}

// Run executes events until the workload is exhausted or the horizon is passed.
func (sim *Simulator) Run() {
	log := logrus.WithField("run", sim.env.RunID)
	if sim.cfg.Transmissions == 0 {
		log.Warn("workload has no transmissions; nothing to simulate")
	} else {
		sim.Schedule(&TxStartEvent{time: sim.Clock, id: sim.newEventID()})
	}
	log.Infof("starting simulation: %d PPDUs, band=%s, %d candidate modes",
		sim.cfg.Transmissions, sim.device.Band(), len(sim.modes))

	for sim.events.Len() > 0 {
		ev := sim.events.PopNext()
		if ev.Timestamp() > sim.Horizon {
			sim.Clock = sim.Horizon
			break
		}
		sim.Clock = ev.Timestamp()
		ev.Execute(sim)
	}
	sim.Metrics.SimEndedTime = sim.Clock
	log.Infof("simulation ended at %v after %d PPDUs", sim.Clock, sim.Metrics.Transmissions)
}

func (sim *Simulator) startTransmission(now time.Duration) {
	sim.started++
	mode := sim.modes[sim.rng.ForSubsystem(SubsystemMode).Intn(len(sim.modes))]
	size := sim.cfg.Payload.Min + sim.rng.ForSubsystem(SubsystemPayload).Intn(sim.cfg.Payload.Max-sim.cfg.Payload.Min+1)

	txVector := phy.NewTxVector(mode, sim.cfg.ChannelWidth, sim.cfg.GuardIntervalNs, sim.cfg.Nss)
	entity, err := sim.device.EntityFor(txVector)
	if err != nil {
		panic(fmt.Sprintf("Simulator.startTransmission: %v", err))
	}
	dataRate, err := entity.DataRateFromTxVector(txVector, phy.SuStaID)
	if err != nil {
		panic(fmt.Sprintf("Simulator.startTransmission: %v", err))
	}

	psdu := phy.NewPsdu(staAddress, apAddress, make([]byte, size))
	duration := phy.TxDuration(entity, psdu.Size(), txVector, sim.device.Band())
	ppdu := entity.BuildPpdu(phy.SingleUser(psdu), txVector, duration)

	if sim.Trace.Enabled() {
		sim.Trace.RecordTransmission(trace.TxRecord{
			UID:       ppdu.UID,
			Clock:     now,
			Mode:      mode.Name(),
			DataRate:  dataRate,
			PsduBytes: psdu.Size(),
			Duration:  duration,
		})
	}
	sim.Schedule(&TxEndEvent{time: now + duration, id: sim.newEventID(), ppdu: ppdu, duration: duration})
}

func (sim *Simulator) endTransmission(now time.Duration, ppdu *phy.Ppdu, duration time.Duration) {
	sim.Metrics.Transmissions++
	sim.Metrics.PayloadBytes += int64(ppdu.Psdu().Size())
	sim.Metrics.Airtime += duration
	sim.env.Metrics.AddAirtime(duration)

	if sim.started < sim.cfg.Transmissions {
		ifs := time.Duration(sim.cfg.InterframeSpaceUs) * time.Microsecond
		sim.Schedule(&TxStartEvent{time: now + ifs, id: sim.newEventID()})
	}
}
