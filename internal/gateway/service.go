package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/signbridge-labs/signbridge-core/internal/assets"
	"github.com/signbridge-labs/signbridge-core/internal/bus"
	"github.com/signbridge-labs/signbridge-core/internal/config"
	"github.com/signbridge-labs/signbridge-core/internal/history"
	"github.com/signbridge-labs/signbridge-core/internal/match"
	"github.com/signbridge-labs/signbridge-core/internal/protocol"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Service bridges the bus and the matcher: final transcripts come in,
// sign render events go out. Partial transcripts are never matched.
type Service struct {
	cfg     config.GatewayConfig
	bus     *bus.Client
	matcher *match.Matcher
	library *assets.Library
	store   *history.Store
	logger  *slog.Logger
	sub     *nats.Subscription
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	matchCounter metric.Int64Counter
}

func NewService(parent context.Context, cfg config.GatewayConfig, busClient *bus.Client, matcher *match.Matcher, library *assets.Library, store *history.Store, logger *slog.Logger) *Service {
	ctx, cancel := context.WithCancel(parent)
	s := &Service{
		cfg:     cfg,
		bus:     busClient,
		matcher: matcher,
		library: library,
		store:   store,
		logger:  logger.With(slog.String("component", "gateway")),
		ctx:     ctx,
		cancel:  cancel,
	}
	meter := otel.Meter("github.com/signbridge-labs/signbridge-core/gateway")
	counter, err := meter.Int64Counter("signbridge.gateway.matches",
		metric.WithDescription("Transcripts matched into sign sequences, by method"))
	if err != nil {
		s.logger.Warn("failed to initialize match counter", slog.String("error", err.Error()))
	} else {
		s.matchCounter = counter
	}
	return s
}

func (s *Service) Start() error {
	if !s.cfg.Enabled {
		return nil
	}
	sub, err := s.bus.Conn().Subscribe(protocol.SubjectTranscriptFinal, s.handleTranscript)
	if err != nil {
		return err
	}
	s.sub = sub
	return nil
}

func (s *Service) Close() {
	s.cancel()
	if s.sub != nil {
		_ = s.sub.Drain()
	}
	s.wg.Wait()
}

func (s *Service) Healthy() bool {
	return !s.cfg.Enabled || s.sub != nil
}

func (s *Service) handleTranscript(msg *nats.Msg) {
	var transcript protocol.Transcript
	if err := json.Unmarshal(msg.Data, &transcript); err != nil {
		s.logger.Warn("gateway failed to decode transcript", slogError(err))
		return
	}
	if transcript.Partial || transcript.Text == "" {
		return
	}

	resp, err := s.matcher.Match(s.ctx, transcript.Text, transcript.UseAI)
	if err != nil {
		// Blank transcripts and the like: nothing to render.
		s.logger.Warn("gateway match failed", slogError(err))
		return
	}
	if s.library != nil {
		s.library.Annotate(resp.Signs)
	}
	if s.matchCounter != nil {
		s.matchCounter.Add(s.ctx, 1, metric.WithAttributes(attribute.String("method", resp.Method)))
	}

	render := protocol.SignRender{
		SessionID: transcript.SessionID,
		Text:      resp.Text,
		Method:    resp.Method,
		Signs:     resp.Signs,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publishRender(render); err != nil {
		s.logger.Warn("gateway failed to publish sign render", slogError(err))
	}

	s.recordHistory(transcript.SessionID, resp)
}

func (s *Service) publishRender(render protocol.SignRender) error {
	data, err := json.Marshal(render)
	if err != nil {
		return err
	}
	return s.bus.Conn().Publish(protocol.SubjectSignRender, data)
}

func (s *Service) recordHistory(sessionID string, resp match.Response) {
	if s.store == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		s.logger.Warn("gateway failed to marshal history payload", slogError(err))
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
		defer cancel()
		if err := s.store.AppendSession(ctx, sessionID, s.cfg.PrivacyScope); err != nil {
			s.logger.Warn("gateway failed to record session", slogError(err))
			return
		}
		rec := history.Record{
			SessionID: sessionID,
			Utterance: resp.Text,
			Method:    resp.Method,
			SignCount: len(resp.Signs),
			Payload:   payload,
			Privacy:   s.cfg.PrivacyScope,
		}
		if err := s.store.AppendMatch(ctx, rec); err != nil {
			s.logger.Warn("gateway failed to record match", slogError(err))
		}
	}()
}

func slogError(err error) slog.Attr {
	return slog.String("error", err.Error())
}
