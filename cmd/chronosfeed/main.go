// Command chronosfeed is the CLI front end: it reads a file of
// concatenated ITCH 5.0 messages, decodes them with pkg/itch, applies
// Add Order / Order Executed records to a pkg/book order book, and
// fans out fills and top-of-book snapshots to the ambient sinks
// (internal/feed). None of this file is part of the hot-path core —
// per spec §1 the PCAP/file reader and transport demux are external
// collaborators; this main is the simplest possible stand-in for one.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nats-io/nats.go"

	"github.com/divitsinghall/Chronos-ITCH/internal/feed"
	"github.com/divitsinghall/Chronos-ITCH/internal/telemetry"
	"github.com/divitsinghall/Chronos-ITCH/pkg/book"
	"github.com/divitsinghall/Chronos-ITCH/pkg/itch"
)

func main() {
	inputPath := flag.String("input", "", "path to a file of concatenated ITCH 5.0 messages")
	metricsAddr := flag.String("metrics-addr", ":9090", "listen address for the Prometheus /metrics endpoint")
	natsURL := flag.String("nats-url", "", "NATS server URL for execution fan-out (empty disables)")
	natsSubject := flag.String("nats-subject", "chronos.executions", "NATS subject to publish executions on")
	wsAddr := flag.String("ws-addr", "", "listen address for WebSocket book snapshots (empty disables)")
	poolCapacity := flag.Int("pool-capacity", 1<<20, "order pool capacity")
	prod := flag.Bool("prod", false, "use a production (JSON) logger instead of a development one")
	flag.Parse()

	logger := newLogger(*prod)
	defer logger.Sync()

	if *inputPath == "" {
		logger.Fatal("missing required -input flag")
	}

	telemetry.Register(prometheus.DefaultRegisterer)
	go serveMetrics(*metricsAddr, logger)

	var natsSink *feed.NATSSink
	if *natsURL != "" {
		nc, err := nats.Connect(*natsURL)
		if err != nil {
			logger.Fatal("nats connect failed", zap.Error(err), zap.String("url", *natsURL))
		}
		defer nc.Close()
		natsSink = feed.NewNATSSink(nc, *natsSubject)
		logger.Info("publishing executions to nats", zap.String("url", *natsURL), zap.String("subject", *natsSubject))
	}

	var wsHub *feed.WSHub
	if *wsAddr != "" {
		wsHub = feed.NewWSHub()
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", wsHub.ServeHTTP)
		go func() {
			if err := http.ListenAndServe(*wsAddr, mux); err != nil {
				logger.Error("websocket server stopped", zap.Error(err))
			}
		}()
		logger.Info("serving book snapshots over websocket", zap.String("addr", *wsAddr))
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		logger.Fatal("failed to read input file", zap.Error(err), zap.String("path", *inputPath))
	}
	telemetry.DecodeBatchBytes.Observe(float64(len(data)))

	pool := book.NewPool(*poolCapacity)
	ob := book.NewOrderBook(pool)

	sink := &feedSink{
		logger: logger,
		book:   ob,
		nats:   natsSink,
	}

	consumed := itch.ParseStream(data, sink)
	logger.Info("parse stream complete",
		zap.Int("bytes_consumed", consumed),
		zap.Int("bytes_total", len(data)),
		zap.Int("order_count", ob.OrderCount()),
	)
	if consumed < len(data) {
		logger.Warn("stream halted before end of file",
			zap.Int("bytes_remaining", len(data)-consumed),
		)
	}
	telemetry.OrderCount.Set(float64(ob.OrderCount()))

	if wsHub != nil {
		wsHub.PublishSnapshot(ob)
	}
}

func newLogger(prod bool) *zap.Logger {
	var logger *zap.Logger
	if prod {
		logger = zap.Must(zap.NewProduction())
	} else {
		cfg := zap.NewDevelopmentConfig()
		logger = zap.Must(cfg.Build())
	}
	return logger
}

func serveMetrics(addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}

// feedSink implements itch.Sink, translating decoded messages into
// book operations and ambient side effects (logging, metrics, NATS
// fan-out). This translation layer is explicitly outside the core per
// spec §1/§2 — pkg/itch and pkg/book never reference each other.
type feedSink struct {
	itch.DefaultSink

	logger *zap.Logger
	book   *book.OrderBook
	nats   *feed.NATSSink

	// resting holds the order_refs this sink has had accepted by the
	// book, so an Order Executed record for any other order_ref is
	// logged and skipped.
	resting map[uint64]struct{}
}

func (s *feedSink) OnAddOrder(a itch.AddOrder) {
	telemetry.MessagesDecoded.WithLabelValues("A").Inc()

	id := a.OrderRef()
	side := book.Sell
	if a.IsBuy() {
		side = book.Buy
	}

	if s.resting == nil {
		s.resting = make(map[uint64]struct{})
	}

	ok := s.book.AddOrder(id, uint64(a.Price()), a.Shares(), side, s.onExecution)
	if !ok {
		s.logger.Warn("add order rejected", zap.Uint64("order_ref", id))
		return
	}
	s.resting[id] = struct{}{}
	telemetry.OrderCount.Set(float64(s.book.OrderCount()))
}

func (s *feedSink) OnOrderExecuted(e itch.OrderExecuted) {
	telemetry.MessagesDecoded.WithLabelValues("E").Inc()

	id := e.OrderRef()
	if _, tracked := s.resting[id]; !tracked {
		s.logger.Warn("execution for unknown order", zap.Uint64("order_ref", id))
		return
	}

	// A feed-reported execution removes exchange-side liquidity this
	// core did not itself match; the simplest faithful local
	// projection is to drop the order entirely and let any remaining
	// shares be re-announced by a later Add Order, mirroring how a
	// book rebuilt purely from public ITCH traffic treats executions
	// as authoritative removals rather than local re-matches.
	if s.book.CancelOrder(id) {
		delete(s.resting, id)
		telemetry.OrderCount.Set(float64(s.book.OrderCount()))
	}
}

func (s *feedSink) OnUnknown(msgType byte, raw []byte) {
	telemetry.MessagesUnknown.Inc()
	s.logger.Debug("skipped unmodeled message type",
		zap.String("type", string(msgType)),
		zap.Int("len", len(raw)),
	)
}

func (s *feedSink) onExecution(exec book.Execution) {
	telemetry.Executions.WithLabelValues(exec.MakerSide.String()).Inc()
	s.logger.Info("execution",
		zap.Uint64("maker_id", exec.MakerID),
		zap.Uint64("taker_id", exec.TakerID),
		zap.Uint64("price", exec.Price),
		zap.Uint32("qty", exec.Qty),
		zap.String("maker_side", exec.MakerSide.String()),
	)
	if s.nats != nil {
		s.nats.Publish(exec)
	}
}
